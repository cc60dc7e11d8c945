// Package selection models what the home screen is showing: the active
// profession, the typed query and whether the search field is engaged.
//
// State is a plain value. Transitions return a new State and never touch
// the catalog, so the home screen can be tested without rendering.
package selection

import (
	"strings"

	"github.com/abordi-ai/abordi/internal/catalog"
	"github.com/abordi-ai/abordi/internal/filter"
)

// DisplayMode is derived from State and the catalog; it is never stored.
type DisplayMode int

const (
	// ModeBrowse shows the profession picker, its filtered tools and its prompts.
	ModeBrowse DisplayMode = iota
	// ModeGlobalSearch shows matches from every profession.
	ModeGlobalSearch
	// ModeEmptyCatalog is used when there is nothing to select.
	ModeEmptyCatalog
)

func (m DisplayMode) String() string {
	switch m {
	case ModeBrowse:
		return "browse"
	case ModeGlobalSearch:
		return "global-search"
	case ModeEmptyCatalog:
		return "empty-catalog"
	default:
		return "unknown"
	}
}

// State is the per-screen selection. Selected holds a profession name.
type State struct {
	Selected     string `json:"selectedProfession" yaml:"selectedProfession"`
	Query        string `json:"searchQuery" yaml:"searchQuery"`
	SearchActive bool   `json:"searchActive" yaml:"searchActive"`
}

// New selects the first profession when the catalog has any.
func New(c *catalog.Catalog) State {
	if c.Empty() {
		return State{}
	}
	return State{Selected: c.Professions[0].Name}
}

// SelectProfession switches to the named profession and clears the query.
// An unknown name leaves the state untouched.
func (s State) SelectProfession(c *catalog.Catalog, name string) State {
	if _, ok := filter.LookupProfession(c, name); !ok {
		return s
	}
	s.Selected = name
	s.Query = ""
	return s
}

// ChangeQuery replaces the query without engaging or releasing search.
func (s State) ChangeQuery(text string) State {
	s.Query = text
	return s
}

// FocusSearch marks the search field as engaged.
func (s State) FocusSearch() State {
	s.SearchActive = true
	return s
}

// ClearSearch empties the query and returns to browsing.
func (s State) ClearSearch() State {
	s.Query = ""
	s.SearchActive = false
	return s
}

// Mode reports which view the state maps to.
func (s State) Mode(c *catalog.Catalog) DisplayMode {
	if c.Empty() {
		return ModeEmptyCatalog
	}
	if s.SearchActive && strings.TrimSpace(s.Query) != "" {
		return ModeGlobalSearch
	}
	return ModeBrowse
}

// Profession resolves the selected profession, if any.
func (s State) Profession(c *catalog.Catalog) *catalog.Profession {
	p, _ := filter.LookupProfession(c, s.Selected)
	return p
}

// FilteredTools is the selected profession's tools narrowed by the query.
func (s State) FilteredTools(c *catalog.Catalog) []catalog.Tool {
	return filter.ProfessionTools(s.Profession(c), s.Query)
}

// SearchResults is the catalog-wide search for the query.
func (s State) SearchResults(c *catalog.Catalog) []filter.Match {
	return filter.GlobalTools(c, s.Query)
}
