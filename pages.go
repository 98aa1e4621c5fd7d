package folio

import (
	"github.com/a-h/templ"

	"github.com/eringen/folio/assets"
	"github.com/eringen/folio/nav"
	"github.com/eringen/folio/views"
)

// newRouter maps every menu selection to its renderer. The home page reads
// the resume and portrait from disk each time it renders.
func (a *App) newRouter() (*nav.Router, error) {
	return nav.NewRouter(map[nav.Selection]nav.RenderFunc{
		nav.Home: func() templ.Component {
			return views.Home(a.site, a.homeData())
		},
		nav.About:      views.About,
		nav.Skills:     views.Skills,
		nav.Projects:   views.Projects,
		nav.Experience: views.Experience,
		nav.Contact:    views.Contact,
	})
}

func (a *App) homeData() views.HomeData {
	return views.HomeData{
		Resume:   assets.LoadDownload(a.resolver, a.Config.ResumePath, assets.MIMEOctetStream, a.log),
		Portrait: a.portraits.Render(a.Config.PortraitPath, a.Config.PortraitSize),
	}
}

// RenderPage returns the markup for sel without going through HTTP. With
// partial set only the page body is rendered.
func (a *App) RenderPage(sel nav.Selection, partial bool) (templ.Component, error) {
	if err := a.setup(); err != nil {
		return nil, err
	}
	body, err := a.Router.Route(sel)
	if err != nil {
		return nil, err
	}
	if partial {
		return body, nil
	}
	return views.Page(a.site, sel, body), nil
}
