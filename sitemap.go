package folio

import (
	"encoding/xml"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eringen/folio/nav"
	"github.com/eringen/folio/views"
)

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc      string `xml:"loc"`
	Priority string `xml:"priority,omitempty"`
}

// sitemapURLs lists every page in menu order.
func sitemapURLs(base string) []sitemapURL {
	var urls []sitemapURL
	for _, sel := range nav.All() {
		if sel == nav.Home {
			urls = append(urls, sitemapURL{Loc: views.BuildURL(base), Priority: "1.0"})
			continue
		}
		urls = append(urls, sitemapURL{Loc: views.BuildURL(base, sel.Slug()), Priority: "0.8"})
	}
	return urls
}

func (a *App) renderSitemap(c echo.Context) error {
	sitemap := sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  sitemapURLs(a.Config.URL),
	}
	c.Response().Header().Set(echo.HeaderContentType, "application/xml; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	c.Response().Write([]byte(xml.Header))
	return xml.NewEncoder(c.Response()).Encode(sitemap)
}
