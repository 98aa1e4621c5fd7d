package views

import (
	"fmt"

	"github.com/eringen/folio/imaging"
)

// Theme is the fixed visual theme applied to every page.
type Theme struct {
	Title      string // suffix of the home page <title>
	Icon       string // shown in the favicon and nav brand
	Accent     string // "#RRGGBB"
	AccentDeep string // "#RRGGBB", gradient end
	Stylesheet string // URL of the theme CSS
}

// DefaultTheme returns the portfolio's purple gradient theme.
func DefaultTheme() Theme {
	return Theme{
		Title:      "Portfolio",
		Icon:       "🚀",
		Accent:     "#667eea",
		AccentDeep: "#764ba2",
		Stylesheet: "/public/theme.css",
	}
}

// Gradient converts the accent pair into the placeholder glyph fill.
func (t Theme) Gradient() (imaging.Gradient, error) {
	from, err := imaging.ParseHex(t.Accent)
	if err != nil {
		return imaging.Gradient{}, fmt.Errorf("theme accent: %w", err)
	}
	to, err := imaging.ParseHex(t.AccentDeep)
	if err != nil {
		return imaging.Gradient{}, fmt.Errorf("theme accent deep: %w", err)
	}
	return imaging.Gradient{From: from, To: to}, nil
}

func (t Theme) gradientCSS() string {
	return fmt.Sprintf("linear-gradient(45deg, %s, %s)", t.Accent, t.AccentDeep)
}
