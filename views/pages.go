package views

import (
	"context"
	"strconv"

	"github.com/a-h/templ"

	"github.com/eringen/folio/content"
	"github.com/eringen/folio/imaging"
	"github.com/eringen/folio/nav"
)

// Home renders the landing page: intro, CV download (or the alternate
// call-to-action when there is no CV) and the portrait.
func Home(site Site, data HomeData) templ.Component {
	return component(func(ctx context.Context, m *markup) error {
		m.raw(`<section class="page page-home"><div class="columns columns-2-1"><div>`)
		m.raw(`<h1 class="title-text">`)
		m.text(site.Name)
		m.raw(`</h1><h2 class="subtitle-text">`)
		m.text(content.Headline)
		m.raw(`</h2><div class="card"><p style="font-size: 1.2rem; line-height: 1.8;">`)
		m.text(content.Intro)
		m.raw(`</p></div>`)
		if data.Resume != nil {
			m.raw(`<a class="btn btn-primary" style="background: `, site.Theme.gradientCSS(), `;" href="`)
			m.text(data.Resume.URI)
			m.raw(`" download="`)
			m.text(data.Resume.Filename)
			m.raw(`">📄 Download CV</a>`)
		} else {
			m.raw(`<div class="cta" style="margin-top: 2rem;">`)
			m.raw(`<a class="btn btn-primary" style="background: `, site.Theme.gradientCSS(), `;" href="`, nav.Contact.Path(), `">Get in Touch</a>`)
			m.raw(`<a class="btn btn-outline" href="`, nav.Projects.Path(), `">View Projects</a></div>`)
		}
		m.raw(`</div><div class="portrait">`)
		writePortrait(m, site, data.Portrait)
		m.raw(`</div></div></section>`)
		return nil
	})
}

func writePortrait(m *markup, site Site, img imaging.Image) {
	if len(img.Data) == 0 {
		size := strconv.Itoa(img.Width)
		m.raw(`<div class="portrait-placeholder" style="width: `, size, `px; height: `, size, `px; background: `,
			site.Theme.gradientCSS(), `; border-radius: 50%; display: flex; align-items: center; justify-content: center; margin: 0 auto;">`)
		m.raw(`<span style="font-size: `, strconv.Itoa(img.Width/3), `px; color: white;">`)
		m.text(img.Initials)
		m.raw(`</span></div>`)
		return
	}
	class := "portrait-img"
	if img.Placeholder {
		class += " portrait-placeholder"
	}
	m.raw(`<img class="`, class, `" src="`, img.DataURI(), `" width="`, strconv.Itoa(img.Width),
		`" height="`, strconv.Itoa(img.Height), `" alt="`)
	m.text(site.Name)
	m.raw(`"/>`)
}

// About renders the biography, education timeline, stats and interests.
func About() templ.Component {
	return component(func(ctx context.Context, m *markup) error {
		m.raw(`<section class="page page-about"><h1 class="section-header">About Me</h1><div class="columns columns-3-2"><div class="card">`)
		for _, s := range content.About() {
			m.raw(`<h3>`)
			m.text(s.Heading)
			m.raw(`</h3>`)
			if err := Markdown(s.Body).Render(ctx, m); err != nil {
				return err
			}
		}
		m.raw(`<h3>Education</h3>`)
		for _, e := range content.Schooling() {
			m.raw(`<div class="timeline-item"><h4>`)
			m.text(e.School)
			m.raw(`</h4><p><strong>`)
			m.text(e.Degree)
			m.raw(`</strong> | `)
			m.text(e.Period)
			m.raw(`</p><p>`)
			m.text(e.Focus)
			m.raw(`</p></div>`)
		}
		m.raw(`</div><div><div class="card"><h3>Quick Stats</h3>`)
		m.raw(`<div style="display: grid; grid-template-columns: 1fr 1fr; gap: 1.5rem; margin-top: 1rem;">`)
		for _, s := range content.Stats() {
			m.raw(`<div style="text-align: center;"><h2 class="stat-value">`)
			m.text(s.Value)
			m.raw(`</h2><p>`)
			m.text(s.Label)
			m.raw(`</p></div>`)
		}
		m.raw(`</div></div><div class="card"><h3>Interests</h3><div class="pills">`)
		for _, i := range content.Interests() {
			m.raw(`<span class="pill">`)
			m.text(i)
			m.raw(`</span>`)
		}
		m.raw(`</div></div></div></div></section>`)
		return nil
	})
}

// frameworkSplit is where the frameworks table breaks into its second card.
const frameworkSplit = 3

// Skills renders language badges, framework badges in two cards and the
// tools grid.
func Skills() templ.Component {
	return component(func(ctx context.Context, m *markup) error {
		m.raw(`<section class="page page-skills"><h1 class="section-header">Technical Skills</h1>`)

		m.raw(`<h3>🚀 Programming Languages</h3>`)
		writeBadgeCard(m, content.Languages())

		m.raw(`<h3>⚡ Frameworks &amp; Libraries</h3><div class="columns columns-2">`)
		frameworks := content.Frameworks()
		split := min(frameworkSplit, len(frameworks))
		writeBadgeCard(m, frameworks[:split])
		writeBadgeCard(m, frameworks[split:])
		m.raw(`</div>`)

		m.raw(`<h3>🛠️ Tools &amp; Platforms</h3><div class="columns columns-4">`)
		for _, tool := range content.Tools() {
			m.raw(`<div class="tool-tile"><div class="tool-name">`)
			m.text(tool.Name)
			m.raw(`</div><div style="margin-top: 0.5rem;"><span class="`)
			m.text(BadgeClass(tool.Level))
			m.raw(`" style="padding: 0.2rem 0.8rem; font-size: 0.8rem;">`)
			m.text(tool.Level.Title())
			m.raw(`</span></div></div>`)
		}
		m.raw(`</div></section>`)
		return nil
	})
}

func writeBadgeCard(m *markup, skills []content.Skill) {
	m.raw(`<div class="card"><div class="badges">`)
	for _, s := range skills {
		m.raw(`<span class="`)
		m.text(BadgeClass(s.Level))
		m.raw(`">`)
		m.text(s.Name)
		m.raw(`</span>`)
	}
	m.raw(`</div></div>`)
}

// Projects renders one card per featured project.
func Projects() templ.Component {
	return component(func(ctx context.Context, m *markup) error {
		m.raw(`<section class="page page-projects"><h1 class="section-header">Featured Projects</h1><div class="columns columns-2">`)
		for _, p := range content.Projects() {
			m.raw(`<div class="project-card"><h3>`)
			m.text(p.Title)
			m.raw(`</h3><p>`)
			m.text(p.Summary)
			m.raw(`</p><div class="tags">`)
			for _, tag := range p.Tags {
				m.raw(`<span class="tag">`)
				m.text(tag)
				m.raw(`</span>`)
			}
			m.raw(`</div></div>`)
		}
		m.raw(`</div></section>`)
		return nil
	})
}

// Experience renders the work history, one card per role.
func Experience() templ.Component {
	return component(func(ctx context.Context, m *markup) error {
		m.raw(`<section class="page page-experience"><h1 class="section-header">Professional Experience</h1>`)
		for _, e := range content.Experiences() {
			m.raw(`<div class="card experience"><div style="display: flex; justify-content: space-between; align-items: start;"><div>`)
			m.raw(`<h3 style="margin: 0;">`)
			m.text(e.Title)
			m.raw(`</h3><h4 class="company">`)
			m.text(e.Company)
			m.raw(`</h4></div><span class="period">`)
			m.text(e.Period)
			m.raw(`</span></div><ul style="margin-top: 1rem;">`)
			for _, b := range e.Bullets {
				m.raw(`<li>`)
				m.text(b)
				m.raw(`</li>`)
			}
			m.raw(`</ul></div>`)
		}
		m.raw(`</section>`)
		return nil
	})
}

// Contact renders the contact summary table.
func Contact() templ.Component {
	return component(func(ctx context.Context, m *markup) error {
		m.raw(`<section class="page page-contact"><h1 class="section-header">Get in Touch</h1><h3>📋 Contact Summary</h3>`)
		m.raw(`<table class="contact-table"><thead><tr><th>Method</th><th>Details</th></tr></thead><tbody>`)
		for _, c := range content.Contacts() {
			m.raw(`<tr class="contact-row"><td>`)
			m.text(c.Method)
			m.raw(`</td><td>`)
			if c.Href != "" {
				m.raw(`<a href="`)
				m.text(c.Href)
				m.raw(`">`)
				m.text(c.Details)
				m.raw(`</a>`)
			} else {
				m.text(c.Details)
			}
			m.raw(`</td></tr>`)
		}
		m.raw(`</tbody></table></section>`)
		return nil
	})
}
