// Package sections composes the visibility gate, the category filter and the
// record cards into the three portfolio sections. Each section owns its state
// and changes it only through the transition methods defined here.
package sections

import (
	"errors"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Zachkp/portfolio/internal/filter"
	"github.com/Zachkp/portfolio/internal/visibility"
)

// Section names double as the root element id of each section.
const (
	NameSkills     = "skills"
	NameProjects   = "projects"
	NameExperience = "experience"
)

// Names lists the sections in page order.
var Names = []string{NameSkills, NameProjects, NameExperience}

var (
	ErrUnknownSection  = errors.New("unknown section")
	ErrProjectNotFound = errors.New("project not found")
)

// Section is the behavior shared by every section.
type Section interface {
	Name() string
	Mount(w visibility.Watcher)
	Unmount()
	MarkVisible()
	Visible() bool
	SelectCategory(label string)
	ActiveCategory() string
	Categories() []string
}

// Tab is one category filter button.
type Tab struct {
	Label  string `json:"label"`
	Value  string `json:"value"`
	Active bool   `json:"active"`
}

// Header carries the state every section template needs.
type Header struct {
	Name    string `json:"name"`
	Number  string `json:"number"`
	Heading string `json:"heading"`
	Visible bool   `json:"visible"`
	Class   string `json:"class"`
	Active  string `json:"active"`
	Tabs    []Tab  `json:"tabs"`
}

type base[T any] struct {
	name    string
	number  string
	heading string
	gate    *visibility.Gate
	list    *filter.List[T]
	label   func(string) string
}

func newBase[T any](name, number, heading string, records []T, key func(T) string) base[T] {
	return base[T]{
		name:    name,
		number:  number,
		heading: heading,
		gate:    visibility.NewGate(name, visibility.DefaultThreshold),
		list:    filter.New(records, key),
		label:   func(s string) string { return s },
	}
}

func (b *base[T]) Name() string { return b.name }

// Mount arms the section's visibility gate on w.
func (b *base[T]) Mount(w visibility.Watcher) { b.gate.Mount(w) }

// Unmount disarms the gate if it is still watching.
func (b *base[T]) Unmount() { b.gate.Unmount() }

// MarkVisible injects a fully visible intersection entry.
func (b *base[T]) MarkVisible() {
	b.gate.Notify(visibility.Entry{Target: b.name, Ratio: 1})
}

func (b *base[T]) Visible() bool { return b.gate.Visible() }

func (b *base[T]) SelectCategory(label string) { b.list.SelectCategory(label) }

func (b *base[T]) ActiveCategory() string { return b.list.Active() }

func (b *base[T]) Categories() []string { return b.list.Categories() }

func (b *base[T]) header() Header {
	cats := b.list.Categories()
	tabs := make([]Tab, 0, len(cats))
	for _, c := range cats {
		tabs = append(tabs, Tab{Label: b.label(c), Value: c, Active: b.list.IsActive(c)})
	}
	return Header{
		Name:    b.name,
		Number:  b.number,
		Heading: b.heading,
		Visible: b.gate.Visible(),
		Class:   b.gate.Class(),
		Active:  b.list.Active(),
		Tabs:    tabs,
	}
}

// titleLabel capitalizes variant values such as "professional" for display.
// A Caser keeps state, so each call gets its own.
func titleLabel(s string) string {
	return cases.Title(language.English).String(s)
}
