package folio

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"

	"github.com/eringen/folio/nav"
	"github.com/eringen/folio/views"
)

// Render writes a templ component as an HTTP 200 HTML response.
func Render(c echo.Context, cmp templ.Component) error {
	return RenderStatus(c, http.StatusOK, cmp)
}

// RenderStatus writes a templ component with a specific HTTP status code.
func RenderStatus(c echo.Context, code int, cmp templ.Component) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(code)
	return cmp.Render(c.Request().Context(), c.Response().Writer)
}

// wantsFragment reports whether the client asked for the page body only,
// either through htmx or ?partial=1.
func wantsFragment(c echo.Context) bool {
	return c.Request().Header.Get("HX-Request") == "true" || c.QueryParam("partial") == "1"
}

// renderSelection routes sel and writes either the bare fragment or the full
// document around it.
func (a *App) renderSelection(c echo.Context, sel nav.Selection) error {
	body, err := a.Router.Route(sel)
	if err != nil {
		return err
	}
	c.Response().Header().Add(echo.HeaderVary, "HX-Request")
	if wantsFragment(c) {
		return Render(c, body)
	}
	return Render(c, views.Page(a.site, sel, body))
}
