package nav

import (
	"fmt"

	"github.com/a-h/templ"
)

// RenderFunc produces the markup for one page.
type RenderFunc func() templ.Component

// Router dispatches a Selection to exactly one RenderFunc.
type Router struct {
	routes [numSelections]RenderFunc
}

// NewRouter builds a Router from routes. Every Selection must have a handler;
// a missing or nil handler, or a key outside the enum, is an error.
func NewRouter(routes map[Selection]RenderFunc) (*Router, error) {
	r := &Router{}
	for sel, fn := range routes {
		if !sel.Valid() {
			return nil, fmt.Errorf("%w: route for %d", ErrInvalidSelection, int(sel))
		}
		if fn == nil {
			return nil, fmt.Errorf("nav: nil handler for %s", sel)
		}
		r.routes[sel] = fn
	}
	for _, sel := range All() {
		if r.routes[sel] == nil {
			return nil, fmt.Errorf("nav: no handler for %s", sel)
		}
	}
	return r, nil
}

// Route returns the component for sel.
func (r *Router) Route(sel Selection) (templ.Component, error) {
	if !sel.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSelection, int(sel))
	}
	return r.routes[sel](), nil
}
