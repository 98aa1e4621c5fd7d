package views

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/url"
	"path"
	"strings"

	"github.com/a-h/templ"

	"github.com/eringen/folio/content"
)

// markup accumulates a component's HTML before it is written out in one go.
type markup struct {
	bytes.Buffer
}

func (m *markup) raw(parts ...string) {
	for _, p := range parts {
		m.WriteString(p)
	}
}

// text writes s HTML-escaped; safe for element bodies and quoted attributes.
func (m *markup) text(s string) {
	m.WriteString(templ.EscapeString(s))
}

func component(build func(ctx context.Context, m *markup) error) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var m markup
		if err := build(ctx, &m); err != nil {
			return err
		}
		_, err := w.Write(m.Bytes())
		return err
	})
}

// BuildURL joins a base URL with path segments, ensuring a trailing slash.
func BuildURL(base string, pathSegments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	u.Path = path.Join(u.Path, path.Join(pathSegments...))
	if len(pathSegments) > 0 && !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u.String()
}

// BadgeClass returns the CSS classes for a skill badge.
func BadgeClass(level content.Level) string {
	return "skill-badge skill-badge-" + string(level)
}

// PersonJsonLD produces a Schema.org Person JSON-LD block for the owner.
func PersonJsonLD(site Site) string {
	data := map[string]interface{}{
		"@context": "https://schema.org",
		"@type":    "Person",
		"name":     site.Name,
		"url":      BuildURL(site.URL),
		"jobTitle": content.Headline,
	}
	var sameAs []string
	for _, c := range content.Contacts() {
		if strings.HasPrefix(c.Href, "https://") {
			sameAs = append(sameAs, c.Href)
		}
	}
	if len(sameAs) > 0 {
		data["sameAs"] = sameAs
	}
	if site.Description != "" {
		data["description"] = site.Description
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}
