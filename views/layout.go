package views

import (
	"context"
	"strconv"

	"github.com/a-h/templ"

	"github.com/eringen/folio/nav"
)

// noSelection highlights no menu item; used by error pages.
const noSelection nav.Selection = -1

// Page renders a full HTML document around body with the nav menu showing
// active as selected.
func Page(site Site, active nav.Selection, body templ.Component) templ.Component {
	return component(func(ctx context.Context, m *markup) error {
		meta := pageMeta(site, active)
		m.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"/>`)
		m.raw(`<meta name="viewport" content="width=device-width, initial-scale=1"/>`)
		m.raw(`<title>`)
		m.text(meta.Title)
		m.raw(`</title>`)
		if meta.Description != "" {
			m.raw(`<meta name="description" content="`)
			m.text(meta.Description)
			m.raw(`"/>`)
		}
		m.raw(`<link rel="canonical" href="`)
		m.text(meta.URL)
		m.raw(`"/><link rel="icon" href="/favicon.svg" type="image/svg+xml"/>`)
		m.raw(`<link rel="stylesheet" href="`)
		m.text(site.Theme.Stylesheet)
		m.raw(`"/><script type="application/ld+json">`, PersonJsonLD(site), `</script></head><body>`)
		writeNav(m, site, active)
		m.raw(`<main id="page" class="main">`)
		if err := body.Render(ctx, m); err != nil {
			return err
		}
		m.raw(`</main>`)
		writeFooter(m, site)
		m.raw(`</body></html>`)
		return nil
	})
}

func pageMeta(site Site, active nav.Selection) PageMeta {
	meta := PageMeta{
		Title:       site.Name + " | " + site.Theme.Title,
		Description: site.Description,
		URL:         BuildURL(site.URL),
	}
	if active.Valid() && active != nav.Home {
		meta.Title = site.Name + " | " + active.String()
		meta.URL = BuildURL(site.URL, active.Slug())
	}
	return meta
}

func writeNav(m *markup, site Site, active nav.Selection) {
	m.raw(`<nav class="menu" aria-label="Main"><span class="menu-brand">`)
	m.text(site.Theme.Icon)
	m.raw(`</span><ul class="menu-items">`)
	for _, s := range nav.All() {
		class := "nav-link"
		if s == active {
			class += " nav-link-selected"
		}
		m.raw(`<li><a class="`, class, `" href="`, s.Path(), `"`)
		if s == active {
			m.raw(` aria-current="page"`)
		}
		m.raw(`>`)
		m.text(s.String())
		m.raw(`</a></li>`)
	}
	m.raw(`</ul></nav>`)
}

func writeFooter(m *markup, site Site) {
	m.raw(`<footer class="footer"><hr/><p>© `, strconv.Itoa(site.Year), ` `)
	m.text(site.Name)
	m.raw(`. All rights reserved.</p><p class="footer-note">Built with Go, Echo &amp; templ</p></footer>`)
}

// NotFound is the 404 page.
func NotFound(site Site) templ.Component {
	return Page(site, noSelection, component(func(ctx context.Context, m *markup) error {
		m.raw(`<section class="page page-error"><h1 class="section-header">Page not found</h1>`)
		m.raw(`<p>There is nothing here. Try one of the pages in the menu, or go <a href="/">home</a>.</p></section>`)
		return nil
	}))
}

// ServerError is the 500 page.
func ServerError(site Site) templ.Component {
	return Page(site, noSelection, component(func(ctx context.Context, m *markup) error {
		m.raw(`<section class="page page-error"><h1 class="section-header">Something went wrong</h1>`)
		m.raw(`<p>The page could not be rendered. Please try again shortly.</p></section>`)
		return nil
	}))
}
