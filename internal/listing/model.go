package listing

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/abordi-ai/abordi/internal/catalog"
	"github.com/abordi-ai/abordi/internal/messages"
	"github.com/abordi-ai/abordi/internal/registry"
	"github.com/abordi-ai/abordi/internal/styles"
	"github.com/abordi-ai/abordi/internal/webview"
)

func init() {
	registry.Register(registry.Route{
		Path:  Route,
		Title: "Tools",
		New: func(env registry.Env, p messages.Params) tea.Model {
			return New(env.Catalog, ParamsFrom(p))
		},
	})
}

// Model is the tools screen model.
type Model struct {
	listing Listing
	cursor  int
}

func New(c *catalog.Catalog, p Params) Model {
	return Model{listing: Resolve(c, p)}
}

// Listing returns what the screen displays.
func (m Model) Listing() Listing {
	return m.listing
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	tools := m.listing.Tools
	switch key.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "q", "esc":
		return m, messages.Back
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(tools)-1 {
			m.cursor++
		}
	case "enter", " ", "o":
		if len(tools) > 0 {
			return m, messages.Open(tools[m.cursor].URL)
		}
	case "w":
		if len(tools) > 0 {
			t := tools[m.cursor]
			return m, messages.Navigate(webview.Route, webview.Params(t.URL, t.Name, ""))
		}
	}
	return m, nil
}

func (m Model) View() string {
	l := m.listing
	content := styles.Title.Render(l.Header) + "\n"
	content += styles.Subtitle.Render(l.Subtitle) + "\n\n"

	if l.Prompt != nil {
		content += styles.PromptCard.Render(
			styles.Dimmed.Render("Prompt")+"\n"+l.Prompt.Title,
		) + "\n\n"
	}

	content += styles.Section.Render(l.Heading()) + "\n\n"
	for i, t := range l.Tools {
		content += row(i == m.cursor, t)
	}

	content += "\n" + styles.Help.Render("↑↓/jk navigate  enter open  w view page  esc/q back")
	return styles.Box.Render(content)
}

// row pads the name before styling it so escape codes never count
// toward the column width.
func row(selected bool, t catalog.Tool) string {
	cursor := "  "
	nameStyle := lipgloss.NewStyle()
	descStyle := styles.Dimmed
	if selected {
		cursor = styles.Selected.Render("> ")
		nameStyle = styles.Selected
		descStyle = styles.Subtitle
	}
	return cursor + nameStyle.Render(fmt.Sprintf("%-14s", t.Name)) + " " + descStyle.Render(t.Description) + "\n"
}
