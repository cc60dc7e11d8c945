// Package webview is the page viewer screen. A terminal cannot embed a
// browser engine, so the screen shows the destination as a full-screen card
// and hands the page itself to the system browser on request.
package webview

import (
	"net/url"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/abordi-ai/abordi/internal/messages"
	"github.com/abordi-ai/abordi/internal/registry"
	"github.com/abordi-ai/abordi/internal/styles"
)

// Route is the registry path of the viewer.
const Route = "webview"

// Navigation parameter names. ParamURL carries a percent-escaped URL.
const (
	ParamURL   = "url"
	ParamName  = "name"
	ParamTitle = "title"
)

func init() {
	registry.Register(registry.Route{
		Path:  Route,
		Title: "Page",
		New: func(_ registry.Env, p messages.Params) tea.Model {
			return New(p)
		},
	})
}

// Params builds navigation parameters for rawURL, escaping it. Spaces become
// %20 so Decode never has to treat '+' as anything but a literal.
func Params(rawURL, name, title string) messages.Params {
	p := messages.Params{ParamURL: strings.ReplaceAll(url.QueryEscape(rawURL), "+", "%20")}
	if name != "" {
		p[ParamName] = name
	}
	if title != "" {
		p[ParamTitle] = title
	}
	return p
}

// Decode unescapes the url parameter. '+' is kept as is. When the value is
// not valid escaping the raw value is returned alongside the error.
func Decode(raw string) (string, error) {
	u, err := url.PathUnescape(raw)
	if err != nil {
		return raw, err
	}
	return u, nil
}

// Model is the viewer screen.
type Model struct {
	url      string
	name     string
	title    string
	badInput bool
}

func New(p messages.Params) Model {
	u, err := Decode(p.Get(ParamURL))
	return Model{
		url:      u,
		name:     p.Get(ParamName),
		title:    p.Get(ParamTitle),
		badInput: err != nil,
	}
}

// URL is the decoded destination.
func (m Model) URL() string {
	return m.url
}

// Header is the name, else the title, else the host of the URL.
func (m Model) Header() string {
	switch {
	case m.name != "":
		return m.name
	case m.title != "":
		return m.title
	}
	if u, err := url.Parse(m.url); err == nil && u.Host != "" {
		return u.Host
	}
	return "Page"
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc", "q", "backspace", "left", "h":
		return m, messages.Back
	case "enter", "o":
		if m.url != "" {
			return m, messages.Open(m.url)
		}
	case "c", "y":
		if m.url != "" {
			u := m.url
			return m, func() tea.Msg { return messages.CopyURLMsg{URL: u} }
		}
	}
	return m, nil
}

func (m Model) View() string {
	content := styles.Dimmed.Render("← ") + styles.Title.Render("▣ "+m.Header()) + "\n"
	if m.title != "" && m.title != m.Header() {
		content += styles.Subtitle.Render(m.title) + "\n"
	}
	content += "\n"

	if m.url == "" {
		content += styles.Err.Render("No page to show.") + "\n"
	} else {
		content += styles.Link.Render(m.url) + "\n"
		if m.badInput {
			content += styles.Err.Render("The link could not be decoded; showing it as received.") + "\n"
		}
	}

	content += "\n" + styles.Help.Render("enter/o open in browser  c copy link  esc back")
	return styles.Box.Render(content)
}
