package insights

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/spec-kit/air-quality-dashboard/internal/theme"
)

const (
	chartWidth  = "600px"
	chartHeight = "300px"
	seriesName  = "PM2.5"
)

type renderer interface {
	Render(w io.Writer) error
}

// Render writes the dataset as a standalone chart page styled for the given theme.
func Render(w io.Writer, d Dataset, style theme.Style) error {
	var chart renderer
	switch d.Kind {
	case ChartBar:
		chart = barChart(d, style)
	case ChartLine:
		chart = lineChart(d, style)
	default:
		return fmt.Errorf("unsupported chart kind %q", d.Kind)
	}
	return chart.Render(w)
}

func globalOptions(d Dataset, style theme.Style) []charts.GlobalOpts {
	return []charts.GlobalOpts{
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle:       d.Heading,
			Width:           chartWidth,
			Height:          chartHeight,
			Theme:           style.ChartTheme,
			BackgroundColor: style.Background,
		}),
		charts.WithTitleOpts(opts.Title{Title: d.Title}),
		charts.WithXAxisOpts(opts.XAxis{Name: d.XLabel}),
		charts.WithYAxisOpts(opts.YAxis{Name: d.YLabel}),
	}
}

func barChart(d Dataset, style theme.Style) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(globalOptions(d, style)...)

	items := make([]opts.BarData, 0, len(d.Values))
	for i, v := range d.Values {
		items = append(items, opts.BarData{
			Name:      d.Labels[i],
			Value:     v,
			ItemStyle: &opts.ItemStyle{Color: d.colorAt(i)},
		})
	}
	bar.SetXAxis(d.Labels).AddSeries(seriesName, items)
	return bar
}

func lineChart(d Dataset, style theme.Style) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(globalOptions(d, style)...)

	items := make([]opts.LineData, 0, len(d.Values))
	for i, v := range d.Values {
		items = append(items, opts.LineData{Name: d.Labels[i], Value: v, Symbol: "circle"})
	}
	color := d.colorAt(0)
	line.SetXAxis(d.Labels).AddSeries(seriesName, items,
		charts.WithItemStyleOpts(opts.ItemStyle{Color: color}),
		charts.WithLineStyleOpts(opts.LineStyle{Color: color, Width: 2}),
	)
	return line
}
