package folio

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/eringen/folio/logger"
)

// SiteConfig holds all configuration for a folio site.
type SiteConfig struct {
	Name        string `koanf:"name"`        // Owner's name (default "Jane Doe")
	URL         string `koanf:"url"`         // Canonical URL (default "http://localhost:3000")
	Description string `koanf:"description"` // Meta description
	Year        int    `koanf:"year"`        // Footer copyright year (default current year)

	Addr      string `koanf:"addr"`       // Listen address (default ":3000")
	AssetDir  string `koanf:"asset_dir"`  // Root for resume/portrait lookups (default ".")
	StaticDir string `koanf:"static_dir"` // User static files under /public (default "public")

	ResumePath   string `koanf:"resume_path"`   // Relative to AssetDir (default "resume.pdf")
	PortraitPath string `koanf:"portrait_path"` // Relative to AssetDir (default "portrait.jpeg")
	PortraitSize int    `koanf:"portrait_size"` // Bounding box in px (default 300)

	LogMode string `koanf:"log_mode"` // "dev" or "prod" (default "dev")

	RenderLimit  int           `koanf:"render_limit"`  // Page renders per IP per window (default 120, negative disables)
	RenderWindow time.Duration `koanf:"render_window"` // Limiter window (default 1m)
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "Jane Doe"
	}
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	c.URL = strings.TrimSuffix(c.URL, "/")
	if c.Year == 0 {
		c.Year = time.Now().Year()
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.AssetDir == "" {
		c.AssetDir = "."
	}
	if c.StaticDir == "" {
		c.StaticDir = "public"
	}
	if c.ResumePath == "" {
		c.ResumePath = "resume.pdf"
	}
	if c.PortraitPath == "" {
		c.PortraitPath = "portrait.jpeg"
	}
	if c.PortraitSize == 0 {
		c.PortraitSize = 300
	}
	if c.LogMode == "" {
		c.LogMode = "dev"
	}
	if c.RenderLimit == 0 {
		c.RenderLimit = 120
	}
	if c.RenderWindow == 0 {
		c.RenderWindow = time.Minute
	}
}

// Validate reports configuration values that cannot work. A negative
// render_limit is allowed and turns the limiter off.
func (c *SiteConfig) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("folio: addr is required")
	}
	if c.PortraitSize < 0 {
		return fmt.Errorf("folio: portrait_size must be positive, got %d", c.PortraitSize)
	}
	if c.RenderWindow < 0 {
		return fmt.Errorf("folio: render_window must be positive, got %s", c.RenderWindow)
	}
	return nil
}

// LoadConfig reads an optional YAML file at path, then overlays FOLIO_*
// environment variables (FOLIO_RESUME_PATH -> resume_path). Defaults fill
// whatever is left.
func LoadConfig(path string) (SiteConfig, error) {
	k := koanf.New(".")

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return SiteConfig{}, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return SiteConfig{}, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider("FOLIO_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "FOLIO_"))
	}), nil); err != nil {
		return SiteConfig{}, fmt.Errorf("loading env overrides: %w", err)
	}

	var cfg SiteConfig
	if err := k.Unmarshal("", &cfg); err != nil {
		return SiteConfig{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	cfg.setDefaults()
	if err := cfg.Validate(); err != nil {
		return SiteConfig{}, err
	}
	return cfg, nil
}

// Option configures additional App behavior.
type Option func(*App)

// WithLogger replaces the logger built from SiteConfig.LogMode.
func WithLogger(log *logger.Logger) Option {
	return func(a *App) {
		a.log = log
	}
}

// WithStaticDir sets the directory for user-owned static assets (default "public").
func WithStaticDir(dir string) Option {
	return func(a *App) {
		a.Config.StaticDir = dir
	}
}
