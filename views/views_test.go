package views

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"

	"github.com/eringen/folio/assets"
	"github.com/eringen/folio/content"
	"github.com/eringen/folio/imaging"
	"github.com/eringen/folio/nav"
)

func testSite() Site {
	return Site{
		Name:        "Jane Doe",
		URL:         "https://jane.example.com",
		Description: "Portfolio of Jane Doe",
		Year:        2025,
		Theme:       DefaultTheme(),
	}
}

func render(t *testing.T, cmp templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	if err := cmp.Render(context.Background(), &buf); err != nil {
		t.Fatalf("Render: %v", err)
	}
	return buf.String()
}

func placeholderPortrait() imaging.Image {
	return imaging.Image{Width: 300, Height: 300, Placeholder: true, Initials: "JD"}
}

func TestHomeWithoutResumeShowsCallToAction(t *testing.T) {
	out := render(t, Home(testSite(), HomeData{Portrait: placeholderPortrait()}))

	for _, want := range []string{"Get in Touch", "View Projects", `href="/contact/"`, `href="/projects/"`} {
		if !strings.Contains(out, want) {
			t.Errorf("home missing %q", want)
		}
	}
	if strings.Contains(out, "download=") {
		t.Error("home without resume must not contain a download link")
	}
	if strings.Contains(out, "data:application/octet-stream") {
		t.Error("home without resume must not embed a data URI link")
	}
}

func TestHomeWithResumeShowsDownload(t *testing.T) {
	link := assets.EncodeDownload([]byte("%PDF-1.4"), "resume.pdf", assets.MIMEOctetStream)
	out := render(t, Home(testSite(), HomeData{Resume: &link, Portrait: placeholderPortrait()}))

	if !strings.Contains(out, `href="`+link.URI+`"`) {
		t.Error("home missing resume data URI")
	}
	if !strings.Contains(out, `download="resume.pdf"`) {
		t.Error("home missing download attribute")
	}
	if strings.Contains(out, "Get in Touch") {
		t.Error("home with resume should not show the alternate call-to-action")
	}
}

func TestHomePortrait(t *testing.T) {
	img := imaging.Image{Data: []byte{1, 2, 3}, Width: 150, Height: 300, Initials: "JD"}
	out := render(t, Home(testSite(), HomeData{Portrait: img}))
	if !strings.Contains(out, `src="`+img.DataURI()+`"`) {
		t.Error("home missing portrait data URI")
	}
	if !strings.Contains(out, `width="150" height="300"`) {
		t.Error("home missing portrait dimensions")
	}

	out = render(t, Home(testSite(), HomeData{Portrait: placeholderPortrait()}))
	if !strings.Contains(out, `<span style="font-size: 100px; color: white;">JD</span>`) {
		t.Error("empty portrait should fall back to the CSS initials circle")
	}
}

func TestContactHasFiveRows(t *testing.T) {
	out := render(t, Contact())
	if n := strings.Count(out, `<tr class="contact-row">`); n != 5 {
		t.Fatalf("contact rows = %d, want 5", n)
	}
	for _, method := range []string{"Email", "Phone", "LinkedIn", "Github", "Response Time"} {
		if !strings.Contains(out, "<td>"+method+"</td>") {
			t.Errorf("contact missing row %q", method)
		}
	}
}

func TestSkillsBadges(t *testing.T) {
	out := render(t, Skills())
	want := len(content.Languages()) + len(content.Frameworks()) + len(content.Tools())
	if n := strings.Count(out, `class="skill-badge skill-badge-`); n != want {
		t.Errorf("badge count = %d, want %d", n, want)
	}
	if !strings.Contains(out, "Frameworks &amp; Libraries") {
		t.Error("skills missing frameworks heading")
	}
	if !strings.Contains(out, ">Advanced</span>") {
		t.Error("tools grid should show title-cased levels")
	}
}

func TestProjectsAndExperience(t *testing.T) {
	out := render(t, Projects())
	if n := strings.Count(out, `class="project-card"`); n != len(content.Projects()) {
		t.Errorf("project cards = %d, want %d", n, len(content.Projects()))
	}

	out = render(t, Experience())
	bullets := 0
	for _, e := range content.Experiences() {
		bullets += len(e.Bullets)
		if !strings.Contains(out, templ.EscapeString(e.Company)) {
			t.Errorf("experience missing company %q", e.Company)
		}
	}
	if n := strings.Count(out, "<li>"); n != bullets {
		t.Errorf("bullets = %d, want %d", n, bullets)
	}
}

func TestAboutRendersMarkdown(t *testing.T) {
	out := render(t, About())
	if !strings.Contains(out, "<strong>machine learning</strong>") {
		t.Error("about should render markdown emphasis")
	}
	if !strings.Contains(out, "Quick Stats") || !strings.Contains(out, "Interests") {
		t.Error("about missing stats or interests")
	}
}

func TestRenderersIdempotent(t *testing.T) {
	site := testSite()
	home := HomeData{Portrait: placeholderPortrait()}
	cmps := map[string]func() templ.Component{
		"home":       func() templ.Component { return Home(site, home) },
		"about":      About,
		"skills":     Skills,
		"projects":   Projects,
		"experience": Experience,
		"contact":    Contact,
	}
	for name, fn := range cmps {
		first := render(t, fn())
		second := render(t, fn())
		if first != second {
			t.Errorf("%s: rendering twice produced different markup", name)
		}
		if first == "" {
			t.Errorf("%s: empty markup", name)
		}
	}
}

func TestPageLayout(t *testing.T) {
	out := render(t, Page(testSite(), nav.Skills, Skills()))

	if !strings.HasPrefix(out, "<!DOCTYPE html>") {
		t.Error("page should start with doctype")
	}
	if !strings.Contains(out, "<title>Jane Doe | Skills</title>") {
		t.Error("page title should name the active page")
	}
	if !strings.Contains(out, `<a class="nav-link nav-link-selected" href="/skills/" aria-current="page">Skills</a>`) {
		t.Error("active nav item not highlighted")
	}
	if n := strings.Count(out, `class="nav-link`); n != len(nav.All()) {
		t.Errorf("nav items = %d, want %d", n, len(nav.All()))
	}
	if !strings.Contains(out, "© 2025 Jane Doe. All rights reserved.") {
		t.Error("footer missing copyright")
	}
	if !strings.Contains(out, `<link rel="canonical" href="https://jane.example.com/skills/"/>`) {
		t.Error("canonical URL should point at the page")
	}
}

func TestErrorPagesHighlightNothing(t *testing.T) {
	out := render(t, NotFound(testSite()))
	if strings.Contains(out, "nav-link-selected") {
		t.Error("404 page should not highlight a nav item")
	}
	if !strings.Contains(out, "Page not found") {
		t.Error("404 page missing heading")
	}
}

func TestThemeGradient(t *testing.T) {
	g, err := DefaultTheme().Gradient()
	if err != nil {
		t.Fatalf("Gradient: %v", err)
	}
	if g.From.R != 0x66 || g.To.B != 0xa2 {
		t.Errorf("Gradient = %+v", g)
	}
	bad := DefaultTheme()
	bad.Accent = "purple"
	if _, err := bad.Gradient(); err == nil {
		t.Error("expected error for non-hex accent")
	}
}

func TestPersonJsonLD(t *testing.T) {
	out := PersonJsonLD(testSite())
	for _, want := range []string{`"@type":"Person"`, `"name":"Jane Doe"`, `"url":"https://jane.example.com"`, `https://github.com/janedoe`} {
		if !strings.Contains(out, want) {
			t.Errorf("json-ld missing %s: %s", want, out)
		}
	}
}
