// Package web embeds the page templates and builds the Fiber view engine.
package web

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/gofiber/template/html/v2"
)

// Layout is the template every page renders inside.
const Layout = "layouts/main"

//go:embed views
var viewsFS embed.FS

// NewEngine returns a template engine over the embedded views.
func NewEngine() (*html.Engine, error) {
	sub, err := fs.Sub(viewsFS, "views")
	if err != nil {
		return nil, err
	}
	return html.NewFileSystem(http.FS(sub), ".html"), nil
}
