package sections

import (
	"github.com/Zachkp/portfolio/internal/cards"
	"github.com/Zachkp/portfolio/internal/content"
)

// Projects is the project showcase. Besides the category filter it owns the
// selected project, which governs the detail modal: open exactly when a
// project is selected.
type Projects struct {
	base[content.Project]
	records  []content.Project
	selected *content.Project
}

// ProjectsView is the render snapshot of the projects section.
type ProjectsView struct {
	Header
	Cards []cards.ProjectCard `json:"cards"`
	Modal cards.ProjectModal  `json:"modal"`
}

// NewProjects builds the section over records.
func NewProjects(records []content.Project) *Projects {
	return &Projects{
		base:    newBase(NameProjects, "03.", "My Projects", records, content.ProjectCategory),
		records: records,
	}
}

// SelectRecord opens the modal on the project with the given id. An unknown
// id leaves the selection unchanged.
func (s *Projects) SelectRecord(id int) (content.Project, error) {
	for _, p := range s.records {
		if p.ID == id {
			selected := p
			s.selected = &selected
			return selected, nil
		}
	}
	return content.Project{}, ErrProjectNotFound
}

// ClearSelection closes the modal.
func (s *Projects) ClearSelection() {
	s.selected = nil
}

// Selected returns the selected project, or nil.
func (s *Projects) Selected() *content.Project {
	return s.selected
}

// ModalOpen reports whether a project is selected.
func (s *Projects) ModalOpen() bool {
	return s.selected != nil
}

// Modal renders the detail dialog alone.
func (s *Projects) Modal() cards.ProjectModal {
	return cards.Modal(s.selected)
}

// Details renders a detail dialog for every project in collection order,
// for pages that cannot ask the server to open one.
func (s *Projects) Details() []cards.ProjectModal {
	out := make([]cards.ProjectModal, 0, len(s.records))
	for i := range s.records {
		out = append(out, cards.Modal(&s.records[i]))
	}
	return out
}

// View renders the current state.
func (s *Projects) View() ProjectsView {
	visible := s.list.Visible()
	out := make([]cards.ProjectCard, 0, len(visible))
	for _, p := range visible {
		out = append(out, cards.Project(p))
	}
	return ProjectsView{Header: s.header(), Cards: out, Modal: s.Modal()}
}
