// Package cards turns single portfolio records into the view models the
// section templates render. Every function here is pure.
package cards

import (
	"strconv"

	"github.com/Zachkp/portfolio/internal/content"
)

// MaxProjectTags is how many tech-stack tags a project card shows before
// collapsing the rest into a "+N" badge.
const MaxProjectTags = 3

// Link labels shown in the project modal.
const (
	LabelLive   = "Live Demo"
	LabelSource = "Source Code"
)

// ExperienceCard is the timeline card of one experience entry.
type ExperienceCard struct {
	ID           int      `json:"id"`
	Title        string   `json:"title"`
	Organization string   `json:"organization"`
	Location     string   `json:"location"`
	Period       string   `json:"period"`
	Bullets      []string `json:"bullets"`
	Skills       []string `json:"skills"`
	Variant      string   `json:"variant"`
	Image        string   `json:"image"`
}

// Experience builds the card for e. Bullets and skills keep their order and
// are never truncated.
func Experience(e content.Experience) ExperienceCard {
	return ExperienceCard{
		ID:           e.ID,
		Title:        e.Title,
		Organization: e.Organization,
		Location:     e.Location,
		Period:       e.Period,
		Bullets:      e.Bullets,
		Skills:       e.Skills,
		Variant:      e.Variant,
		Image:        e.Image,
	}
}

// SkillCard is one tile of the skills grid.
type SkillCard struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Proficiency int    `json:"proficiency"`
	Width       int    `json:"width"`
	Tooltip     string `json:"tooltip"`
}

// Skill builds the card for s.
func Skill(s content.Skill) SkillCard {
	return SkillCard{
		Name:        s.Name,
		Category:    s.Category,
		Proficiency: s.Proficiency,
		Width:       Width(s.Proficiency),
		Tooltip:     s.Description,
	}
}

// Width maps a proficiency to the indicator width in percent of the track,
// clamped to [0, 100].
func Width(proficiency int) int {
	return min(max(proficiency, 0), 100)
}

// ProjectCard is the grid card of one project.
type ProjectCard struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
	Overflow    int      `json:"overflow"`
}

// Project builds the card for p, showing at most MaxProjectTags tags.
func Project(p content.Project) ProjectCard {
	c := ProjectCard{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Image:       p.Image,
		Category:    p.Category,
		Tags:        p.TechStack,
	}
	if len(p.TechStack) > MaxProjectTags {
		c.Tags = p.TechStack[:MaxProjectTags]
		c.Overflow = len(p.TechStack) - MaxProjectTags
	}
	return c
}

// Badge returns the "+N" summary of the hidden tags, or "" when every tag is
// shown.
func (c ProjectCard) Badge() string {
	if c.Overflow <= 0 {
		return ""
	}
	return "+" + strconv.Itoa(c.Overflow)
}

// Link is an external link button in the project modal.
type Link struct {
	Kind  string `json:"kind"`
	Label string `json:"label"`
	URL   string `json:"url"`
}

// ProjectModal is the detail dialog. It is open exactly when a project is
// selected.
type ProjectModal struct {
	Open            bool     `json:"open"`
	ID              int      `json:"id,omitempty"`
	Title           string   `json:"title,omitempty"`
	LongDescription string   `json:"long_description,omitempty"`
	Image           string   `json:"image,omitempty"`
	Features        []string `json:"features,omitempty"`
	TechStack       []string `json:"tech_stack,omitempty"`
	Links           []Link   `json:"links,omitempty"`
}

// Modal builds the detail dialog for the selected project, or a closed
// dialog when selected is nil.
func Modal(selected *content.Project) ProjectModal {
	if selected == nil {
		return ProjectModal{}
	}
	return ProjectModal{
		Open:            true,
		ID:              selected.ID,
		Title:           selected.Title,
		LongDescription: selected.LongDescription,
		Image:           selected.Image,
		Features:        selected.Features,
		TechStack:       selected.TechStack,
		Links:           Links(*selected),
	}
}

// Links returns the link buttons for p. A missing URL drops its button.
func Links(p content.Project) []Link {
	var links []Link
	if p.LiveURL != "" {
		links = append(links, Link{Kind: "live", Label: LabelLive, URL: p.LiveURL})
	}
	if p.GithubURL != "" {
		links = append(links, Link{Kind: "source", Label: LabelSource, URL: p.GithubURL})
	}
	return links
}
