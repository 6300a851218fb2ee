// Package content holds the portfolio records rendered by the site sections.
//
// Records are defined once, either from the literal defaults in this package
// or from a replacement YAML file, and are treated as read-only afterwards.
package content

// Experience variants.
const (
	VariantProfessional = "professional"
	VariantLeadership   = "leadership"
)

// Experience is one entry of the experience timeline.
type Experience struct {
	ID           int      `json:"id" koanf:"id" validate:"required"`
	Title        string   `json:"title" koanf:"title" validate:"required"`
	Organization string   `json:"organization" koanf:"organization" validate:"required"`
	Location     string   `json:"location" koanf:"location"`
	Period       string   `json:"period" koanf:"period"`
	Bullets      []string `json:"bullets" koanf:"bullets"`
	Skills       []string `json:"skills" koanf:"skills"`
	Variant      string   `json:"variant" koanf:"variant" validate:"oneof=professional leadership"`
	Image        string   `json:"image" koanf:"image"`
}

// Project is one entry of the project showcase. An empty LiveURL or GithubURL
// means the project has no such link.
type Project struct {
	ID              int      `json:"id" koanf:"id" validate:"required"`
	Title           string   `json:"title" koanf:"title" validate:"required"`
	Description     string   `json:"description" koanf:"description"`
	LongDescription string   `json:"long_description" koanf:"long_description"`
	Image           string   `json:"image" koanf:"image"`
	TechStack       []string `json:"tech_stack" koanf:"tech_stack"`
	Category        string   `json:"category" koanf:"category" validate:"required"`
	LiveURL         string   `json:"live_url,omitempty" koanf:"live_url" validate:"omitempty,url"`
	GithubURL       string   `json:"github_url,omitempty" koanf:"github_url" validate:"omitempty,url"`
	Features        []string `json:"features" koanf:"features"`
}

// Skill is one tile of the skills grid. Name is the key.
type Skill struct {
	Name        string `json:"name" koanf:"name" validate:"required"`
	Proficiency int    `json:"proficiency" koanf:"proficiency" validate:"gte=0,lte=100"`
	Category    string `json:"category" koanf:"category" validate:"required"`
	Description string `json:"description" koanf:"description"`
}

// Library groups the three record collections served by the site.
type Library struct {
	Experience []Experience `json:"experience" koanf:"experience" validate:"dive"`
	Projects   []Project    `json:"projects" koanf:"projects" validate:"dive"`
	Skills     []Skill      `json:"skills" koanf:"skills" validate:"dive"`
}

// ExperienceVariant returns the filter key of an experience entry.
func ExperienceVariant(e Experience) string { return e.Variant }

// ProjectCategory returns the filter key of a project.
func ProjectCategory(p Project) string { return p.Category }

// SkillCategory returns the filter key of a skill.
func SkillCategory(s Skill) string { return s.Category }

// FindProject looks a project up by id.
func (l *Library) FindProject(id int) (Project, bool) {
	for _, p := range l.Projects {
		if p.ID == id {
			return p, true
		}
	}
	return Project{}, false
}
