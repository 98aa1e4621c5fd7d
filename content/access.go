package content

import "slices"

// The tables are read-only. Each accessor returns a fresh copy, so callers
// may modify the result without affecting later renders.

func Languages() []Skill  { return slices.Clone(languages) }
func Frameworks() []Skill { return slices.Clone(frameworks) }
func Tools() []Skill      { return slices.Clone(tools) }

func Projects() []Project {
	out := slices.Clone(projects)
	for i := range out {
		out[i].Tags = slices.Clone(out[i].Tags)
	}
	return out
}

func Experiences() []Experience {
	out := slices.Clone(experiences)
	for i := range out {
		out[i].Bullets = slices.Clone(out[i].Bullets)
	}
	return out
}

// Contacts returns the contact summary. The array type fixes it at five rows.
func Contacts() [5]ContactMethod { return contacts }

func About() []Section       { return slices.Clone(about) }
func Schooling() []Education { return slices.Clone(schooling) }
func Stats() []Stat          { return slices.Clone(stats) }
func Interests() []string    { return slices.Clone(interests) }
