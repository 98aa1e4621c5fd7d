// Package nav defines the portfolio's closed set of pages and the router
// that dispatches a selected page to its renderer.
package nav

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidSelection is returned for any label or value outside the six pages.
var ErrInvalidSelection = errors.New("nav: invalid selection")

// Selection identifies the active page. The zero value is Home.
type Selection int

const (
	Home Selection = iota
	About
	Skills
	Projects
	Experience
	Contact

	numSelections
)

var labels = [numSelections]string{
	Home:       "Home",
	About:      "About",
	Skills:     "Skills",
	Projects:   "Projects",
	Experience: "Experience",
	Contact:    "Contact",
}

// All returns every selection in menu order.
func All() []Selection {
	out := make([]Selection, 0, numSelections)
	for s := Home; s < numSelections; s++ {
		out = append(out, s)
	}
	return out
}

// Valid reports whether s is one of the six pages.
func (s Selection) Valid() bool {
	return s >= Home && s < numSelections
}

// String returns the menu label.
func (s Selection) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Selection(%d)", int(s))
	}
	return labels[s]
}

// Slug returns the lowercase URL segment for s, e.g. "projects".
func (s Selection) Slug() string {
	if !s.Valid() {
		return ""
	}
	return strings.ToLower(labels[s])
}

// Path returns the canonical request path for s. Home lives at "/".
func (s Selection) Path() string {
	if s == Home || !s.Valid() {
		return "/"
	}
	return "/" + s.Slug() + "/"
}

// Parse maps a menu label or slug (case-insensitive) to its Selection.
// An empty string selects Home.
func Parse(label string) (Selection, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return Home, nil
	}
	for s := Home; s < numSelections; s++ {
		if strings.EqualFold(label, labels[s]) {
			return s, nil
		}
	}
	return Home, fmt.Errorf("%w: %q", ErrInvalidSelection, label)
}
