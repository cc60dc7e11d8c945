// Package catalog holds the curated directory of AI tools and prompt
// suggestions, grouped by profession.
//
// A Catalog is loaded once and then only read. The embedded dataset is
// available through Default; an alternative file can be loaded with Load.
package catalog

import (
	_ "embed"
	"fmt"
	"sync"
	"unicode"
)

// Tool is an external destination recommended for a profession.
type Tool struct {
	Name        string `yaml:"name" json:"name" toml:"name"`
	Description string `yaml:"description" json:"description" toml:"description"`
	URL         string `yaml:"url" json:"url" toml:"url"`
}

// Prompt is a suggested request. The title is both the label and the payload.
type Prompt struct {
	Title string `yaml:"title" json:"title" toml:"title"`
}

// Profession groups tools and prompts under a unique name.
type Profession struct {
	Name    string   `yaml:"name" json:"name" toml:"name"`
	Tools   []Tool   `yaml:"tools" json:"tools" toml:"tools"`
	Prompts []Prompt `yaml:"prompts" json:"prompts" toml:"prompts"`
}

// Initial returns the upper-cased first letter of the name, used as an avatar.
func (p Profession) Initial() string {
	for _, r := range p.Name {
		return string(unicode.ToUpper(r))
	}
	return "?"
}

// FindPrompt returns the prompt with exactly the given title.
func (p Profession) FindPrompt(title string) (*Prompt, bool) {
	for i := range p.Prompts {
		if p.Prompts[i].Title == title {
			return &p.Prompts[i], true
		}
	}
	return nil, false
}

// Catalog is the root collection. Profession order is display order.
type Catalog struct {
	Professions []Profession `yaml:"professions" json:"professions" toml:"professions"`
}

// Names returns the profession names in catalog order.
func (c *Catalog) Names() []string {
	if c == nil {
		return nil
	}
	names := make([]string, 0, len(c.Professions))
	for _, p := range c.Professions {
		names = append(names, p.Name)
	}
	return names
}

// Empty reports whether the catalog has no professions.
func (c *Catalog) Empty() bool {
	return c == nil || len(c.Professions) == 0
}

//go:embed catalog.yaml
var embedded []byte

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the embedded catalog. It is parsed on first use and shared
// for the lifetime of the process; callers must not modify it.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := Parse(embedded, FormatYAML)
		if err != nil {
			panic(fmt.Sprintf("embedded catalog: %v", err))
		}
		defaultCatalog = c
	})
	return defaultCatalog
}
