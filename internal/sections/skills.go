package sections

import (
	"github.com/Zachkp/portfolio/internal/cards"
	"github.com/Zachkp/portfolio/internal/content"
)

// Skills is the skills grid, filtered by category.
type Skills struct {
	base[content.Skill]
}

// SkillsView is the render snapshot of the skills section.
type SkillsView struct {
	Header
	Cards []cards.SkillCard `json:"cards"`
}

// NewSkills builds the section over records.
func NewSkills(records []content.Skill) *Skills {
	return &Skills{base: newBase(NameSkills, "02.", "Skills & Expertise", records, content.SkillCategory)}
}

// View renders the current state.
func (s *Skills) View() SkillsView {
	visible := s.list.Visible()
	out := make([]cards.SkillCard, 0, len(visible))
	for _, sk := range visible {
		out = append(out, cards.Skill(sk))
	}
	return SkillsView{Header: s.header(), Cards: out}
}
