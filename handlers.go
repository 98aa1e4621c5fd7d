package folio

import (
	"errors"
	"io/fs"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eringen/folio/nav"
	"github.com/eringen/folio/views"
)

func (a *App) handleHome(c echo.Context) error {
	return a.renderSelection(c, nav.Home)
}

func (a *App) handlePage(c echo.Context) error {
	sel, err := nav.Parse(c.Param("page"))
	if err != nil {
		if errors.Is(err, nav.ErrInvalidSelection) {
			return RenderStatus(c, http.StatusNotFound, views.NotFound(a.site))
		}
		return err
	}
	// The home page lives at "/" only.
	if sel == nav.Home {
		return c.Redirect(http.StatusMovedPermanently, "/")
	}
	return a.renderSelection(c, sel)
}

func (a *App) handleSitemap(c echo.Context) error {
	return a.renderSitemap(c)
}

func (a *App) handleFavicon(c echo.Context) error {
	icon, err := fs.ReadFile(EmbeddedAssets, "embedded/favicon.svg")
	if err != nil {
		return err
	}
	return c.Blob(http.StatusOK, "image/svg+xml", icon)
}

func (a *App) handleRobots(c echo.Context) error {
	body := "User-agent: *\nAllow: /\n\nSitemap: " + a.Config.URL + "/sitemap.xml\n"
	return c.String(http.StatusOK, body)
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	he, ok := err.(*echo.HTTPError)
	if ok && he.Code == http.StatusNotFound {
		_ = RenderStatus(c, http.StatusNotFound, views.NotFound(a.site))
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		a.log.Error("server error", "method", c.Request().Method, "uri", c.Request().RequestURI, "err", err)
		_ = RenderStatus(c, code, views.ServerError(a.site))
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
