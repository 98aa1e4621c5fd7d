package imaging

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"image/color"
	"strings"
	"sync"
	"unicode"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
)

// Gradient is the two-stop fill of the placeholder glyph, drawn at 45deg.
type Gradient struct {
	From color.NRGBA
	To   color.NRGBA
}

// glyphFont is parsed once per process.
var glyphFont struct {
	once sync.Once
	font *truetype.Font
	err  error
}

func loadGlyphFont() (*truetype.Font, error) {
	glyphFont.once.Do(func() {
		glyphFont.font, glyphFont.err = truetype.Parse(gobold.TTF)
	})
	return glyphFont.font, glyphFont.err
}

// Placeholder draws a size x size PNG: a gradient circle with initials
// centred in white at size/3 px.
func Placeholder(initials string, size int, g Gradient) ([]byte, error) {
	if size <= 0 {
		size = DefaultMaxDimension
	}
	f, err := loadGlyphFont()
	if err != nil {
		return nil, fmt.Errorf("parse glyph font: %w", err)
	}

	s := float64(size)
	dc := gg.NewContext(size, size)

	dc.DrawCircle(s/2, s/2, s/2)
	dc.Clip()

	grad := gg.NewLinearGradient(0, s, s, 0)
	grad.AddColorStop(0, g.From)
	grad.AddColorStop(1, g.To)
	dc.SetFillStyle(grad)
	dc.DrawRectangle(0, 0, s, s)
	dc.Fill()

	face := truetype.NewFace(f, &truetype.Options{
		Size:    float64(clampMin(size/3, 1)),
		DPI:     72,
		Hinting: font.HintingNone,
	})
	defer face.Close()
	dc.SetFontFace(face)
	dc.SetColor(color.White)
	dc.DrawStringAnchored(initials, s/2, s/2, 0.5, 0.35)

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// Initials returns two uppercase letters for name: the first letters of its
// first and last words, or the first two letters of a single word. Missing
// positions are "?".
func Initials(name string) string {
	words := strings.FieldsFunc(name, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	var out []rune
	switch len(words) {
	case 0:
	case 1:
		out = []rune(words[0])
		if len(out) > 2 {
			out = out[:2]
		}
	default:
		out = []rune{[]rune(words[0])[0], []rune(words[len(words)-1])[0]}
	}
	for len(out) < 2 {
		out = append(out, '?')
	}
	for i, r := range out {
		out[i] = unicode.ToUpper(r)
	}
	return string(out)
}

// ParseHex parses "#RRGGBB" (the '#' is optional) into an opaque colour.
func ParseHex(s string) (color.NRGBA, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return color.NRGBA{}, fmt.Errorf("expected 6 hex chars, got %q", s)
	}
	raw, err := hex.DecodeString(s)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid hex %q: %w", s, err)
	}
	return color.NRGBA{R: raw[0], G: raw[1], B: raw[2], A: 0xff}, nil
}
