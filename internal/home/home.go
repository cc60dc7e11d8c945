package home

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/abordi-ai/abordi/internal/catalog"
	"github.com/abordi-ai/abordi/internal/filter"
	"github.com/abordi-ai/abordi/internal/listing"
	"github.com/abordi-ai/abordi/internal/messages"
	"github.com/abordi-ai/abordi/internal/registry"
	"github.com/abordi-ai/abordi/internal/selection"
	"github.com/abordi-ai/abordi/internal/styles"
	"github.com/abordi-ai/abordi/internal/webview"
)

const footer = "© 2025 Abordi AI - Smart tools for professionals"

type section int

const (
	sectionTools section = iota
	sectionPrompts
)

// Model is the home screen model.
type Model struct {
	catalog      *catalog.Catalog
	assistantURL string
	state        selection.State
	input        textinput.Model
	section      section
	cursor       int
}

func New(env registry.Env) Model {
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.CharLimit = 100
	ti.Width = 40

	if env.Catalog == nil {
		env.Catalog = &catalog.Catalog{}
	}
	assistant := env.AssistantURL
	if assistant == "" {
		assistant = catalog.DefaultAssistantURL
	}

	return Model{
		catalog:      env.Catalog,
		assistantURL: assistant,
		state:        selection.New(env.Catalog),
		input:        ti,
	}
}

// State returns the current selection.
func (m Model) State() selection.State {
	return m.state
}

// Mode is the display mode for the current selection.
func (m Model) Mode() selection.DisplayMode {
	return m.state.Mode(m.catalog)
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.input.Focused() {
		if key, ok := msg.(tea.KeyMsg); ok {
			return m.handleInputKey(key)
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	if key, ok := msg.(tea.KeyMsg); ok {
		return m.handleKey(key)
	}
	return m, nil
}

func (m Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.clearSearch()
		return m, nil
	case "enter", "down", "tab":
		m.input.Blur()
		m.section = sectionTools
		m.cursor = 0
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if v := m.input.Value(); v != m.state.Query {
		m.state = m.state.ChangeQuery(v)
		m.section = sectionTools
		m.cursor = 0
	}
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	mode := m.Mode()

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "/":
		if mode == selection.ModeEmptyCatalog {
			return m, nil
		}
		m.state = m.state.FocusSearch()
		m.input.Placeholder = "Search all tools"
		m.input.SetValue(m.state.Query)
		m.input.CursorEnd()
		cmd := m.input.Focus()
		return m, cmd

	case "f":
		if mode != selection.ModeBrowse {
			return m, nil
		}
		if m.state.SearchActive {
			m.state = m.state.ClearSearch()
		}
		m.input.Placeholder = "Filter " + m.state.Selected + " tools"
		m.input.SetValue(m.state.Query)
		m.input.CursorEnd()
		cmd := m.input.Focus()
		return m, cmd

	case "esc":
		if m.state.SearchActive || m.state.Query != "" {
			m.clearSearch()
		}

	case "left", "h":
		if mode == selection.ModeBrowse {
			m.shiftProfession(-1)
		}
	case "right", "l":
		if mode == selection.ModeBrowse {
			m.shiftProfession(1)
		}
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		if mode == selection.ModeBrowse {
			n, _ := strconv.Atoi(msg.String())
			if n <= len(m.catalog.Professions) {
				m.selectProfession(m.catalog.Professions[n-1].Name)
			}
		}

	case "tab":
		if mode == selection.ModeBrowse {
			if m.section == sectionTools && len(m.prompts()) > 0 {
				m.section = sectionPrompts
			} else {
				m.section = sectionTools
			}
			m.cursor = 0
		}

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < m.itemCount()-1 {
			m.cursor++
		}

	case "enter", " ":
		return m, m.activate()
	case "w":
		return m, m.viewPage()
	}

	return m, nil
}

func (m *Model) clearSearch() {
	m.state = m.state.ClearSearch()
	m.input.Reset()
	m.input.Blur()
	m.section = sectionTools
	m.cursor = 0
}

func (m *Model) selectProfession(name string) {
	next := m.state.SelectProfession(m.catalog, name)
	if next == m.state {
		return
	}
	m.state = next
	m.input.SetValue(m.state.Query)
	m.section = sectionTools
	m.cursor = 0
}

func (m *Model) shiftProfession(delta int) {
	n := len(m.catalog.Professions)
	if n == 0 {
		return
	}
	idx := 0
	for i, p := range m.catalog.Professions {
		if p.Name == m.state.Selected {
			idx = i
			break
		}
	}
	idx = (idx + delta + n) % n
	m.selectProfession(m.catalog.Professions[idx].Name)
}

func (m Model) tools() []catalog.Tool {
	return m.state.FilteredTools(m.catalog)
}

func (m Model) matches() []filter.Match {
	return m.state.SearchResults(m.catalog)
}

func (m Model) prompts() []catalog.Prompt {
	if p := m.state.Profession(m.catalog); p != nil {
		return p.Prompts
	}
	return nil
}

func (m Model) itemCount() int {
	switch {
	case m.Mode() == selection.ModeGlobalSearch:
		return len(m.matches())
	case m.section == sectionPrompts:
		return len(m.prompts())
	default:
		return len(m.tools())
	}
}

// selectedTool returns the tool under the cursor in either display mode.
func (m Model) selectedTool() (catalog.Tool, bool) {
	switch m.Mode() {
	case selection.ModeGlobalSearch:
		if found := m.matches(); m.cursor < len(found) {
			return found[m.cursor].Tool, true
		}
	case selection.ModeBrowse:
		if m.section == sectionTools {
			if tools := m.tools(); m.cursor < len(tools) {
				return tools[m.cursor], true
			}
		}
	}
	return catalog.Tool{}, false
}

func (m Model) selectedPrompt() (catalog.Prompt, bool) {
	if m.Mode() != selection.ModeBrowse || m.section != sectionPrompts {
		return catalog.Prompt{}, false
	}
	if prompts := m.prompts(); m.cursor < len(prompts) {
		return prompts[m.cursor], true
	}
	return catalog.Prompt{}, false
}

// activate opens the selected tool, or lists the tools for the selected prompt.
func (m Model) activate() tea.Cmd {
	if t, ok := m.selectedTool(); ok {
		return messages.Open(t.URL)
	}
	if p, ok := m.selectedPrompt(); ok {
		params := listing.Params{Prompt: p.Title, Profession: m.state.Selected}
		return messages.Navigate(listing.Route, params.Messages())
	}
	return nil
}

// viewPage shows the selected tool in the page viewer. A prompt is shown as
// a question to the chat assistant.
func (m Model) viewPage() tea.Cmd {
	if t, ok := m.selectedTool(); ok {
		return messages.Navigate(webview.Route, webview.Params(t.URL, t.Name, ""))
	}
	if p, ok := m.selectedPrompt(); ok {
		u := catalog.PromptURL(m.assistantURL, p.Title)
		return messages.Navigate(webview.Route, webview.Params(u, "", p.Title))
	}
	return nil
}

func (m Model) View() string {
	content := styles.Title.Render("Abordi AI Tools") + "\n"
	content += styles.Subtitle.Render("Find the perfect tools for your workflow") + "\n\n"

	mode := m.Mode()
	if m.input.Focused() || m.state.Query != "" {
		content += m.input.View() + "\n\n"
	}

	switch mode {
	case selection.ModeEmptyCatalog:
		content += styles.Dimmed.Render("No professions available.") + "\n"
	case selection.ModeGlobalSearch:
		content += m.viewSearch()
	default:
		content += m.viewBrowse()
	}

	content += "\n" + styles.Footer.Render(footer) + "\n"
	content += styles.Help.Render(m.helpLine(mode))
	return styles.Box.Render(content)
}

func (m Model) viewBrowse() string {
	content := styles.Subtitle.Render("Choose Your Profession") + "\n"
	var chips []string
	for i, p := range m.catalog.Professions {
		avatar, name := styles.Avatar, styles.Profession
		if p.Name == m.state.Selected {
			avatar, name = styles.ActiveAvatar, styles.Selected
		}
		chips = append(chips, fmt.Sprintf("%d %s %s", i+1, avatar.Render(p.Initial()), name.Render(p.Name)))
	}
	content += strings.Join(chips, "  ") + "\n\n"

	content += styles.Section.Render("Recommended AI Tools") + "\n"
	tools := m.tools()
	if len(tools) == 0 {
		content += styles.Dimmed.Render(fmt.Sprintf("  No tools match %q.", strings.TrimSpace(m.state.Query))) + "\n"
	}
	for i, t := range tools {
		content += m.row(m.section == sectionTools && i == m.cursor, t.Name, t.Description, "")
	}

	content += "\n" + styles.PromptSection.Render("Recommended Prompts") + "\n"
	for i, p := range m.prompts() {
		content += m.row(m.section == sectionPrompts && i == m.cursor, p.Title, "", "")
	}
	return content
}

func (m Model) viewSearch() string {
	found := m.matches()
	content := styles.Section.Render(fmt.Sprintf("Search Results (%d)", len(found))) + "\n"
	if len(found) == 0 {
		content += styles.Dimmed.Render(fmt.Sprintf("  No tools match %q.", strings.TrimSpace(m.state.Query))) + "\n"
	}
	for i, r := range found {
		content += m.row(i == m.cursor, r.Tool.Name, r.Tool.Description, r.Profession)
	}
	return content
}

func (m Model) row(selected bool, name, desc, tag string) string {
	cursor := "  "
	nameStyle := lipgloss.NewStyle()
	descStyle := styles.Dimmed
	if selected && !m.input.Focused() {
		cursor = styles.Selected.Render("> ")
		nameStyle = styles.Selected
		descStyle = styles.Subtitle
	}
	line := cursor + nameStyle.Render(fmt.Sprintf("%-14s", name))
	if tag != "" {
		line += " " + styles.Tag.Render("["+tag+"]")
	}
	if desc != "" {
		line += " " + descStyle.Render(desc)
	}
	return line + "\n"
}

func (m Model) helpLine(mode selection.DisplayMode) string {
	switch {
	case m.input.Focused():
		return "type to search  enter done  esc clear"
	case mode == selection.ModeGlobalSearch:
		return "↑↓/jk navigate  enter open  w view page  / edit search  esc clear  q quit"
	case mode == selection.ModeEmptyCatalog:
		return "q quit"
	default:
		return "←→/hl profession  tab tools/prompts  ↑↓/jk navigate  enter select  w view page  / search  f filter  q quit"
	}
}
