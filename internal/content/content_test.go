package content

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	lib := Default()
	require.NoError(t, Validate(lib))
	assert.NotEmpty(t, lib.Experience)
	assert.NotEmpty(t, lib.Projects)
	assert.NotEmpty(t, lib.Skills)
}

func TestDefaultReturnsFreshCopy(t *testing.T) {
	a := Default()
	a.Projects[0].Title = "changed"
	assert.NotEqual(t, "changed", Default().Projects[0].Title)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Library)
		problem string
	}{
		{
			name:    "duplicate project id",
			mutate:  func(l *Library) { l.Projects[1].ID = l.Projects[0].ID },
			problem: "duplicate project id",
		},
		{
			name:    "duplicate experience id",
			mutate:  func(l *Library) { l.Experience[1].ID = l.Experience[0].ID },
			problem: "duplicate experience id",
		},
		{
			name:    "duplicate skill name",
			mutate:  func(l *Library) { l.Skills[1].Name = l.Skills[0].Name },
			problem: "duplicate skill",
		},
		{
			name:    "proficiency above range",
			mutate:  func(l *Library) { l.Skills[0].Proficiency = 140 },
			problem: "Proficiency",
		},
		{
			name:    "negative proficiency",
			mutate:  func(l *Library) { l.Skills[0].Proficiency = -5 },
			problem: "Proficiency",
		},
		{
			name:    "unknown variant",
			mutate:  func(l *Library) { l.Experience[0].Variant = "volunteer" },
			problem: "Variant",
		},
		{
			name:    "malformed link",
			mutate:  func(l *Library) { l.Projects[0].GithubURL = "not a url" },
			problem: "GithubURL",
		},
		{
			name:    "missing category",
			mutate:  func(l *Library) { l.Projects[0].Category = "" },
			problem: "Category",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lib := Default()
			tt.mutate(lib)

			err := Validate(lib)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalid))
			assert.Contains(t, err.Error(), tt.problem)
		})
	}
}

func TestValidateReportsEveryProblem(t *testing.T) {
	lib := Default()
	lib.Skills[0].Proficiency = 101
	lib.Projects[1].ID = lib.Projects[0].ID

	err := Validate(lib)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Proficiency")
	assert.Contains(t, err.Error(), "duplicate project id")
}

func TestValidateAllowsMissingLinks(t *testing.T) {
	lib := Default()
	for i := range lib.Projects {
		lib.Projects[i].LiveURL = ""
		lib.Projects[i].GithubURL = ""
	}
	assert.NoError(t, Validate(lib))
}

func TestLoadWithoutFileUsesDefaults(t *testing.T) {
	lib, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), lib)
}

func TestLoadReplacesNamedCollections(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.yaml")
	doc := `
projects:
  - id: 10
    title: Link Shortener
    category: Web
    tech_stack: [Go, Gin, SQLite, HTMX, Tailwind CSS]
    live_url: https://example.com
    features:
      - Short codes
      - Click counts
  - id: 11
    title: Dotfiles
    category: Tools
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	lib, err := Load(path)
	require.NoError(t, err)

	require.Len(t, lib.Projects, 2)
	assert.Equal(t, 10, lib.Projects[0].ID)
	assert.Equal(t, "Link Shortener", lib.Projects[0].Title)
	assert.Equal(t, []string{"Go", "Gin", "SQLite", "HTMX", "Tailwind CSS"}, lib.Projects[0].TechStack)
	assert.Equal(t, "https://example.com", lib.Projects[0].LiveURL)
	assert.Empty(t, lib.Projects[1].GithubURL)

	assert.Equal(t, Default().Experience, lib.Experience)
	assert.Equal(t, Default().Skills, lib.Skills)
}

func TestLoadRejectsInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.yaml")
	doc := `
skills:
  - name: Go
    proficiency: 120
    category: Backend
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalid))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read content file")
}

func TestFindProject(t *testing.T) {
	lib := Default()

	p, ok := lib.FindProject(3)
	require.True(t, ok)
	assert.Equal(t, "Game Recommender", p.Title)

	_, ok = lib.FindProject(999)
	assert.False(t, ok)
}
