package sections

import (
	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/visibility"
)

// Page is one visitor's view of the portfolio: the three sections mounted on
// a shared intersection registry.
type Page struct {
	registry   *visibility.Registry
	Skills     *Skills
	Projects   *Projects
	Experience *Experience
}

// PageView is the render snapshot of every section.
type PageView struct {
	Skills     SkillsView     `json:"skills"`
	Projects   ProjectsView   `json:"projects"`
	Experience ExperienceView `json:"experience"`
}

// NewPage builds and mounts the sections over lib.
func NewPage(lib *content.Library) *Page {
	p := &Page{
		registry:   visibility.NewRegistry(),
		Skills:     NewSkills(lib.Skills),
		Projects:   NewProjects(lib.Projects),
		Experience: NewExperience(lib.Experience),
	}
	for _, s := range p.all() {
		s.Mount(p.registry)
	}
	return p
}

// Section returns the section with the given name.
func (p *Page) Section(name string) (Section, error) {
	switch name {
	case NameSkills:
		return p.Skills, nil
	case NameProjects:
		return p.Projects, nil
	case NameExperience:
		return p.Experience, nil
	}
	return nil, ErrUnknownSection
}

// Observe delivers an intersection entry for the named section and reports
// whether this entry is the one that made it visible.
func (p *Page) Observe(name string, ratio float64) (bool, error) {
	s, err := p.Section(name)
	if err != nil {
		return false, err
	}
	before := s.Visible()
	p.registry.Deliver(visibility.Entry{Target: name, Ratio: ratio})
	return !before && s.Visible(), nil
}

// RevealAll marks every section visible, as a static render does.
func (p *Page) RevealAll() {
	for _, s := range p.all() {
		s.MarkVisible()
	}
}

// Close unmounts every section.
func (p *Page) Close() {
	for _, s := range p.all() {
		s.Unmount()
	}
}

// View renders every section.
func (p *Page) View() PageView {
	return PageView{
		Skills:     p.Skills.View(),
		Projects:   p.Projects.View(),
		Experience: p.Experience.View(),
	}
}

func (p *Page) all() []Section {
	return []Section{p.Skills, p.Projects, p.Experience}
}
