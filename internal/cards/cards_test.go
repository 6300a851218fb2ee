package cards

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zachkp/portfolio/internal/content"
)

func project(stack ...string) content.Project {
	return content.Project{ID: 7, Title: "Mail", Category: "CLI Tools", TechStack: stack}
}

func TestProjectTagTruncation(t *testing.T) {
	tests := []struct {
		name     string
		stack    []string
		tags     []string
		overflow int
		badge    string
	}{
		{"empty", nil, nil, 0, ""},
		{"one", []string{"Go"}, []string{"Go"}, 0, ""},
		{"exactly three", []string{"Go", "Gin", "HTMX"}, []string{"Go", "Gin", "HTMX"}, 0, ""},
		{"four", []string{"Go", "Gin", "HTMX", "SQLite"}, []string{"Go", "Gin", "HTMX"}, 1, "+1"},
		{"six", []string{"a", "b", "c", "d", "e", "f"}, []string{"a", "b", "c"}, 3, "+3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Project(project(tt.stack...))
			assert.Equal(t, tt.tags, c.Tags)
			assert.Equal(t, tt.overflow, c.Overflow)
			assert.Equal(t, tt.badge, c.Badge())
		})
	}
}

func TestProjectCardKeepsFullStackOnRecord(t *testing.T) {
	p := project("a", "b", "c", "d")
	Project(p)
	assert.Len(t, p.TechStack, 4)
}

func TestSkillWidth(t *testing.T) {
	tests := []struct {
		proficiency int
		width       int
	}{
		{0, 0},
		{45, 45},
		{100, 100},
		{-10, 0},
		{130, 100},
	}
	for _, tt := range tests {
		c := Skill(content.Skill{Name: "Go", Proficiency: tt.proficiency, Category: "Backend", Description: "d"})
		assert.Equal(t, tt.width, c.Width, "proficiency %d", tt.proficiency)
		assert.Equal(t, tt.proficiency, c.Proficiency)
		assert.Equal(t, "d", c.Tooltip)
	}
}

func TestExperienceKeepsOrder(t *testing.T) {
	e := content.Experience{
		ID:      1,
		Title:   "Manager",
		Bullets: []string{"first", "second", "third", "fourth", "fifth", "sixth"},
		Skills:  []string{"z", "a", "m"},
		Variant: content.VariantLeadership,
	}
	c := Experience(e)
	assert.Equal(t, e.Bullets, c.Bullets)
	assert.Equal(t, e.Skills, c.Skills)
	assert.Equal(t, content.VariantLeadership, c.Variant)
}

func TestModalClosedWhenNothingSelected(t *testing.T) {
	m := Modal(nil)
	assert.False(t, m.Open)
	assert.Empty(t, m.Links)
}

func TestModalLinks(t *testing.T) {
	tests := []struct {
		name   string
		live   string
		github string
		labels []string
	}{
		{"neither", "", "", nil},
		{"live only", "https://example.com", "", []string{LabelLive}},
		{"source only", "", "https://github.com/Zachkp", []string{LabelSource}},
		{"both", "https://example.com", "https://github.com/Zachkp", []string{LabelLive, LabelSource}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := project("Go", "Gin", "HTMX", "SQLite")
			p.LiveURL = tt.live
			p.GithubURL = tt.github
			p.Features = []string{"one", "two"}

			m := Modal(&p)
			require.True(t, m.Open)
			assert.Equal(t, p.TechStack, m.TechStack)
			assert.Equal(t, p.Features, m.Features)

			var labels []string
			for _, l := range m.Links {
				labels = append(labels, l.Label)
				assert.NotEmpty(t, l.URL)
			}
			assert.Equal(t, tt.labels, labels)
		})
	}
}
