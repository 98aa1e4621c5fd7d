// Package imaging turns the optional profile photo into a bounded PNG
// thumbnail, degrading to a generated initials glyph when the photo is
// missing or unusable.
package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"strings"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"github.com/eringen/folio/assets"
	"github.com/eringen/folio/logger"
)

// DefaultMaxDimension is used when Render is given a non-positive bound.
const DefaultMaxDimension = 300

// Image is an embeddable PNG. Placeholder is set when Data holds the
// generated initials glyph rather than the real photo.
type Image struct {
	Data        []byte
	Width       int
	Height      int
	Placeholder bool
	Initials    string
}

// DataURI returns the image as a data URI for an <img> src.
func (i Image) DataURI() string {
	return assets.DataURI("image/png", i.Data)
}

// Renderer produces profile images from an asset source.
type Renderer struct {
	source   assets.Source
	initials string
	gradient Gradient
	log      *logger.Logger
}

// NewRenderer returns a Renderer. initials is normalised with Initials.
func NewRenderer(source assets.Source, initials string, gradient Gradient, log *logger.Logger) *Renderer {
	return &Renderer{
		source:   source,
		initials: Initials(initials),
		gradient: gradient,
		log:      log.With("component", "imaging"),
	}
}

// Render loads name and fits it inside a maxDimension square. It never fails:
// absent, unreadable and undecodable assets all yield the placeholder.
func (r *Renderer) Render(name string, maxDimension int) Image {
	if maxDimension <= 0 {
		maxDimension = DefaultMaxDimension
	}

	data, err := r.source.Resolve(name)
	if err != nil {
		if !errors.Is(err, assets.ErrAbsent) {
			r.log.Warn("profile image unreadable", "path", name, "error", err)
		}
		return r.placeholder(maxDimension)
	}

	img, err := decode(data)
	if err != nil {
		r.log.Warn("profile image decode failed", "path", name, "detected", assets.DetectMIME(data), "error", err)
		return r.placeholder(maxDimension)
	}

	thumb := fit(img, maxDimension)
	var buf bytes.Buffer
	if err := png.Encode(&buf, thumb); err != nil {
		r.log.Error("profile image encode failed", "path", name, "error", err)
		return r.placeholder(maxDimension)
	}
	b := thumb.Bounds()
	return Image{
		Data:     buf.Bytes(),
		Width:    b.Dx(),
		Height:   b.Dy(),
		Initials: r.initials,
	}
}

func (r *Renderer) placeholder(size int) Image {
	data, err := Placeholder(r.initials, size, r.gradient)
	if err != nil {
		// Views draw a CSS circle when Data is empty.
		r.log.Error("placeholder glyph failed", "error", err)
		data = nil
	}
	return Image{
		Data:        data,
		Width:       size,
		Height:      size,
		Placeholder: true,
		Initials:    r.initials,
	}
}

// decode sniffs data before handing it to the registered image decoders.
func decode(data []byte) (image.Image, error) {
	if mime := assets.DetectMIME(data); !strings.HasPrefix(mime, "image/") {
		return nil, fmt.Errorf("unsupported content type %s", mime)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return img, nil
}

// fit downscales img so its longer edge is at most max, keeping the aspect
// ratio. Images already inside the bound are returned unchanged.
func fit(img image.Image, max int) image.Image {
	bounds := img.Bounds()
	w, h := Bounded(bounds.Dx(), bounds.Dy(), max)
	if w == bounds.Dx() && h == bounds.Dy() {
		return img
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}

// Bounded returns the size of a w x h image shrunk to fit a max x max box.
// It never enlarges, and neither edge drops below one pixel.
func Bounded(w, h, max int) (int, int) {
	if w <= max && h <= max {
		return w, h
	}
	if w >= h {
		return max, clampMin((h*max+w/2)/w, 1)
	}
	return clampMin((w*max+h/2)/h, 1), max
}

func clampMin(v, min int) int {
	if v < min {
		return min
	}
	return v
}
