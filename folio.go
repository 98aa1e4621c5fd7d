// Package folio serves a single-page personal portfolio built with Go, Echo,
// and templ: home, about, skills, projects, experience and contact.
//
// Each request picks one page from the navigation menu, the router
// dispatches it to exactly one renderer, and the result is written as HTML.
// The optional resume and portrait are read from disk on every render.
package folio

import (
	"fmt"
	"io/fs"
	"net/http"
	"sync"

	"github.com/labstack/echo/v4"

	"github.com/eringen/folio/assets"
	"github.com/eringen/folio/imaging"
	"github.com/eringen/folio/logger"
	"github.com/eringen/folio/nav"
	"github.com/eringen/folio/views"
)

// App is the central folio application. It wires together the asset helpers,
// the page router, middleware and the Echo server.
type App struct {
	Config SiteConfig
	Echo   *echo.Echo
	Router *nav.Router

	log       *logger.Logger
	resolver  *assets.Resolver
	portraits *imaging.Renderer
	limiter   *RenderLimiter

	themeOnce sync.Once
	themeErr  error
	site      views.Site

	setupOnce sync.Once
	setupErr  error
}

// New creates a new folio App with the given configuration.
func New(cfg SiteConfig, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config: cfg,
		Echo:   echo.New(),
	}

	for _, opt := range opts {
		opt(a)
	}

	if a.log == nil {
		log, err := logger.New(a.Config.LogMode)
		if err != nil {
			log = logger.Nop()
		}
		a.log = log
	}
	a.resolver = assets.NewResolver(a.Config.AssetDir)
	return a
}

// initTheme applies the fixed visual theme. It runs at most once per App,
// before any page renders.
func (a *App) initTheme() error {
	a.themeOnce.Do(func() {
		theme := views.DefaultTheme()
		gradient, err := theme.Gradient()
		if err != nil {
			a.themeErr = fmt.Errorf("folio: init theme: %w", err)
			return
		}
		a.site = views.Site{
			Name:        a.Config.Name,
			URL:         a.Config.URL,
			Description: a.Config.Description,
			Year:        a.Config.Year,
			Theme:       theme,
		}
		a.portraits = imaging.NewRenderer(a.resolver, a.Config.Name, gradient, a.log)
	})
	return a.themeErr
}

// setup builds the theme, router, middleware and routes exactly once.
func (a *App) setup() error {
	a.setupOnce.Do(func() {
		if err := a.Config.Validate(); err != nil {
			a.setupErr = err
			return
		}
		if err := a.initTheme(); err != nil {
			a.setupErr = err
			return
		}
		router, err := a.newRouter()
		if err != nil {
			a.setupErr = fmt.Errorf("folio: build router: %w", err)
			return
		}
		a.Router = router
		a.limiter = NewRenderLimiter(a.Config.RenderLimit, a.Config.RenderWindow)

		a.Echo.HideBanner = true
		a.setupMiddleware()
		a.setupRoutes()
	})
	return a.setupErr
}

// Handler returns the fully configured HTTP handler without starting a listener.
func (a *App) Handler() (http.Handler, error) {
	if err := a.setup(); err != nil {
		return nil, err
	}
	return a.Echo, nil
}

// Start sets up the app and serves until the listener fails.
func (a *App) Start() error {
	if err := a.setup(); err != nil {
		return err
	}
	a.log.Info("folio listening", "addr", a.Config.Addr, "assets", a.Config.AssetDir)
	if err := a.Echo.Start(a.Config.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (a *App) setupRoutes() {
	e := a.Echo

	// Embedded theme assets are served under /public/ ahead of the user's static dir.
	embeddedFS, _ := fs.Sub(EmbeddedAssets, "embedded")
	embeddedHandler := http.FileServer(http.FS(embeddedFS))
	e.GET("/public/theme.css", echo.WrapHandler(http.StripPrefix("/public/", embeddedHandler)))
	e.GET("/public/favicon.svg", echo.WrapHandler(http.StripPrefix("/public/", embeddedHandler)))

	e.Static("/public", a.Config.StaticDir)
	e.GET("/favicon.svg", a.handleFavicon)
	e.GET("/robots.txt", a.handleRobots)
	e.GET("/sitemap.xml", a.handleSitemap)

	e.GET("/", a.handleHome, a.limitRenders)
	e.GET("/:page/", a.handlePage, a.limitRenders)
}

// Close releases background resources. Call this when the app is shutting down.
func (a *App) Close() error {
	if a.limiter != nil {
		a.limiter.Stop()
	}
	a.log.Sync()
	return nil
}
