package views

import (
	"github.com/eringen/folio/assets"
	"github.com/eringen/folio/imaging"
)

// Site holds site-wide settings. The host builds it once from its config
// and passes it to every page so nothing is read from globals.
type Site struct {
	Name        string // owner's display name
	URL         string // canonical base URL
	Description string // meta description
	Year        int    // copyright year in the footer
	Theme       Theme
}

// PageMeta carries per-page metadata into the <head>.
type PageMeta struct {
	Title       string
	Description string
	URL         string // canonical
}

// HomeData is what the home page needs from the asset helpers. A nil Resume
// switches the page to its alternate call-to-action.
type HomeData struct {
	Resume   *assets.DownloadLink
	Portrait imaging.Image
}
