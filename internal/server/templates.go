package server

import (
	"embed"
	"html/template"
	"io"
	"net/url"

	"github.com/dustin/go-humanize"

	"github.com/Zachkp/portfolio/internal/sections"
)

//go:embed templates/*.html
var templateFS embed.FS

// Templates parses the embedded templates. Interactive templates carry the
// HTMX attributes that talk back to the server; static ones do not.
func Templates(interactive bool) (*template.Template, error) {
	funcs := template.FuncMap{
		"interactive": func() bool { return interactive },
		"query":       url.QueryEscape,
		"ago":         humanize.Time,
		"comma":       humanize.Comma,
	}
	return template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
}

// RenderStatic writes a self-contained page with every section revealed and
// one native dialog per project.
func RenderStatic(w io.Writer, page *sections.Page, title string) error {
	tmpl, err := Templates(false)
	if err != nil {
		return err
	}
	page.RevealAll()
	return tmpl.ExecuteTemplate(w, "index.html", map[string]any{
		"title":   title,
		"page":    page.View(),
		"dialogs": page.Projects.Details(),
	})
}
