// Package content holds the portfolio's static copy. Every table is read
// only at render time and never mutated.
package content

import "strings"

// Level is a cosmetic proficiency tag. Levels carry no ordering.
type Level string

const (
	Beginner     Level = "beginner"
	Intermediate Level = "intermediate"
	Advanced     Level = "advanced"
	Expert       Level = "expert"
)

// Valid reports whether l is one of the four known tags.
func (l Level) Valid() bool {
	switch l {
	case Beginner, Intermediate, Advanced, Expert:
		return true
	}
	return false
}

// Title returns the display label, e.g. "Advanced".
func (l Level) Title() string {
	s := string(l)
	if s == "" {
		return ""
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// Skill is one badge on the skills page.
type Skill struct {
	Name  string
	Level Level
}

// Project is a card on the projects page.
type Project struct {
	Title   string
	Summary string
	Tags    []string
}

// Experience is one role on the experience timeline.
type Experience struct {
	Title   string
	Company string
	Period  string
	Bullets []string
}

// ContactMethod is one row of the contact table. Href is optional.
type ContactMethod struct {
	Method  string
	Details string
	Href    string
}

// Education is an entry on the about page's timeline.
type Education struct {
	School string
	Degree string
	Period string
	Focus  string
}

// Stat is a headline number on the about page.
type Stat struct {
	Value string
	Label string
}

// Section is a heading plus Markdown body.
type Section struct {
	Heading string
	Body    string
}
