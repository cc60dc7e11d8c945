// Package filter decides which catalog tools are displayed for a profession
// and a free-text query. Every function is pure and never fails: an unknown
// profession or a query without matches yields an empty result.
package filter

import (
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/abordi-ai/abordi/internal/catalog"
)

// Match is a tool found by a catalog-wide search, tagged with the
// profession that lists it.
type Match struct {
	Tool       catalog.Tool `yaml:"tool" json:"tool"`
	Profession string       `yaml:"profession" json:"profession"`
}

func normalize(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

func matches(t catalog.Tool, needle string) bool {
	return strings.Contains(strings.ToLower(t.Name), needle) ||
		strings.Contains(strings.ToLower(t.Description), needle)
}

// ProfessionTools returns the tools of p whose name or description contains
// query, ignoring case. A blank query returns p.Tools as is.
func ProfessionTools(p *catalog.Profession, query string) []catalog.Tool {
	if p == nil {
		return nil
	}
	needle := normalize(query)
	if needle == "" {
		return p.Tools
	}
	var out []catalog.Tool
	for _, t := range p.Tools {
		if matches(t, needle) {
			out = append(out, t)
		}
	}
	return out
}

// GlobalTools searches every profession in catalog order. A blank query
// returns nothing. Tools listed by several professions appear once per
// profession.
func GlobalTools(c *catalog.Catalog, query string) []Match {
	needle := normalize(query)
	if needle == "" || c == nil {
		return nil
	}
	var out []Match
	for _, p := range c.Professions {
		for _, t := range p.Tools {
			if matches(t, needle) {
				out = append(out, Match{Tool: t, Profession: p.Name})
			}
		}
	}
	return out
}

// LookupProfession finds a profession by exact name.
func LookupProfession(c *catalog.Catalog, name string) (*catalog.Profession, bool) {
	if c == nil {
		return nil, false
	}
	for i := range c.Professions {
		if c.Professions[i].Name == name {
			return &c.Professions[i], true
		}
	}
	return nil, false
}

// AllToolsByName flattens the catalog keeping the first tool seen for each
// name. Later tools with the same name are dropped even when their
// description or URL differ.
func AllToolsByName(c *catalog.Catalog) []catalog.Tool {
	if c == nil {
		return nil
	}
	seen := make(map[string]struct{})
	var out []catalog.Tool
	for _, p := range c.Professions {
		for _, t := range p.Tools {
			if _, dup := seen[t.Name]; dup {
				continue
			}
			seen[t.Name] = struct{}{}
			out = append(out, t)
		}
	}
	return out
}

// Suggest returns up to n profession names that fuzzily resemble name,
// best match first.
func Suggest(c *catalog.Catalog, name string, n int) []string {
	name = strings.TrimSpace(name)
	if name == "" || n <= 0 {
		return nil
	}
	names := c.Names()
	found := fuzzy.Find(name, names)
	var out []string
	for _, m := range found {
		if len(out) == n {
			break
		}
		out = append(out, names[m.Index])
	}
	return out
}
