package catalog

import (
	"fmt"
	"net/url"
	"strings"
)

// ValidationError lists every defect found in a catalog.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	if len(e.Problems) == 1 {
		return "invalid catalog: " + e.Problems[0]
	}
	return fmt.Sprintf("invalid catalog (%d problems):\n  %s",
		len(e.Problems), strings.Join(e.Problems, "\n  "))
}

// Validate checks that every record carries its required fields and that
// profession names are unique. Tool names may repeat across professions.
func Validate(c *Catalog) error {
	var problems []string
	add := func(format string, args ...any) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	seen := make(map[string]int)
	for i, p := range c.Professions {
		path := fmt.Sprintf("professions[%d]", i)
		if strings.TrimSpace(p.Name) == "" {
			add("%s.name is empty", path)
		} else if j, dup := seen[p.Name]; dup {
			add("%s.name %q duplicates professions[%d]", path, p.Name, j)
		} else {
			seen[p.Name] = i
		}

		for k, t := range p.Tools {
			tp := fmt.Sprintf("%s.tools[%d]", path, k)
			if strings.TrimSpace(t.Name) == "" {
				add("%s.name is empty", tp)
			}
			if strings.TrimSpace(t.Description) == "" {
				add("%s.description is empty", tp)
			}
			if !absoluteURL(t.URL) {
				add("%s.url %q is not an absolute URL", tp, t.URL)
			}
		}

		for k, pr := range p.Prompts {
			if strings.TrimSpace(pr.Title) == "" {
				add("%s.prompts[%d].title is empty", path, k)
			}
		}
	}

	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}

func absoluteURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}
