package dto

// SignUpRequest is the sign-up form.
type SignUpRequest struct {
	Username string `form:"username" json:"username"`
	Password string `form:"password" json:"password"`
}

// NavigateRequest selects a page.
type NavigateRequest struct {
	Page string `form:"page" json:"page"`
}

// ThemeRequest selects light or dark mode.
type ThemeRequest struct {
	Mode string `form:"mode" json:"mode"`
}
