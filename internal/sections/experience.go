package sections

import (
	"github.com/Zachkp/portfolio/internal/cards"
	"github.com/Zachkp/portfolio/internal/content"
)

// Experience is the timeline section, filtered by variant.
type Experience struct {
	base[content.Experience]
}

// ExperienceView is the render snapshot of the experience section.
type ExperienceView struct {
	Header
	Cards []cards.ExperienceCard `json:"cards"`
}

// NewExperience builds the section over records.
func NewExperience(records []content.Experience) *Experience {
	s := &Experience{base: newBase(NameExperience, "04.", "Experience", records, content.ExperienceVariant)}
	s.label = titleLabel
	return s
}

// View renders the current state.
func (s *Experience) View() ExperienceView {
	visible := s.list.Visible()
	out := make([]cards.ExperienceCard, 0, len(visible))
	for _, e := range visible {
		out = append(out, cards.Experience(e))
	}
	return ExperienceView{Header: s.header(), Cards: out}
}
