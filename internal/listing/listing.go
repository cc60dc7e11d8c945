// Package listing is the tools screen: the tools recommended for a
// profession or a prompt, reached by navigation from the home screen or
// launched directly from the command line.
package listing

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/abordi-ai/abordi/internal/catalog"
	"github.com/abordi-ai/abordi/internal/filter"
	"github.com/abordi-ai/abordi/internal/messages"
)

// Route is the registry path of the tools screen.
const Route = "tools"

// Navigation parameter names.
const (
	ParamPrompt     = "prompt"
	ParamProfession = "profession"
)

const (
	allToolsHeader     = "All AI Tools"
	promptSubtitle     = "Recommended for this prompt"
	workflowSubtitle   = "Tools to enhance your workflow"
	recommendedHeading = "Recommended Tools"
	noToolsHeading     = "No tools available"
)

// Params select what the screen lists. Both fields are optional.
type Params struct {
	Prompt     string
	Profession string
}

// ParamsFrom reads Params from navigation parameters.
func ParamsFrom(p messages.Params) Params {
	return Params{
		Prompt:     p.Get(ParamPrompt),
		Profession: p.Get(ParamProfession),
	}
}

// Messages converts Params back to navigation parameters, omitting blanks.
func (p Params) Messages() messages.Params {
	out := messages.Params{}
	if p.Prompt != "" {
		out[ParamPrompt] = p.Prompt
	}
	if p.Profession != "" {
		out[ParamProfession] = p.Profession
	}
	return out
}

// Listing is what the tools screen displays.
type Listing struct {
	Header     string
	Subtitle   string
	Tools      []catalog.Tool
	Profession *catalog.Profession // nil when the profession did not resolve
	Prompt     *catalog.Prompt     // nil unless the prompt belongs to Profession
}

// Resolve never fails. An unknown or missing profession falls back to
// every tool in the catalog, one per name.
func Resolve(c *catalog.Catalog, p Params) Listing {
	var l Listing

	prof, ok := filter.LookupProfession(c, p.Profession)
	if ok {
		l.Profession = prof
		l.Tools = prof.Tools
		if pr, found := prof.FindPrompt(p.Prompt); found {
			l.Prompt = pr
		}
	} else {
		l.Tools = filter.AllToolsByName(c)
	}

	switch {
	case p.Prompt != "":
		l.Header = p.Prompt
	case ok:
		l.Header = prof.Name + " Tools"
	default:
		l.Header = allToolsHeader
	}

	l.Subtitle = workflowSubtitle
	if l.Prompt != nil {
		l.Subtitle = promptSubtitle
	}
	return l
}

// Heading is the title of the tool section.
func (l Listing) Heading() string {
	if len(l.Tools) == 0 {
		return noToolsHeading
	}
	return recommendedHeading
}

// Markdown renders the listing as a markdown document.
func (l Listing) Markdown() string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n_%s_\n\n", l.Header, l.Subtitle)
	if l.Prompt != nil {
		fmt.Fprintf(&b, "> **Prompt:** %s\n\n", l.Prompt.Title)
	}
	fmt.Fprintf(&b, "## %s\n\n", l.Heading())
	for _, t := range l.Tools {
		fmt.Fprintf(&b, "- **%s**: %s <%s>\n", t.Name, t.Description, t.URL)
	}
	return b.String()
}

// Render renders the listing for a terminal with the named glamour style.
// "auto" picks a style from the terminal background.
func Render(l Listing, style string, width int) (string, error) {
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(width)}
	if style == "" || style == "auto" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(style))
	}

	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", fmt.Errorf("creating renderer: %w", err)
	}
	out, err := r.Render(l.Markdown())
	if err != nil {
		return "", fmt.Errorf("rendering listing: %w", err)
	}
	return out, nil
}
