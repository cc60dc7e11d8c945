package app

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/abordi-ai/abordi/internal/home"
	"github.com/abordi-ai/abordi/internal/linkopen"
	"github.com/abordi-ai/abordi/internal/messages"
	"github.com/abordi-ai/abordi/internal/registry"
	"github.com/abordi-ai/abordi/internal/styles"
)

// Deps are the platform collaborators the app hands URLs to.
type Deps struct {
	Opener linkopen.Opener
	Copier linkopen.Copier
	Logger *zap.Logger
}

func (d Deps) withDefaults() Deps {
	if d.Opener == nil {
		d.Opener = linkopen.Browser{}
	}
	if d.Copier == nil {
		d.Copier = linkopen.Clipboard{}
	}
	if d.Logger == nil {
		d.Logger = zap.NewNop()
	}
	return d
}

const homeTitle = "Home"

// Model is the top-level application model. Screens form a stack: navigation
// pushes, BackMsg pops, and popping the last screen quits. titles runs
// parallel to stack.
type Model struct {
	env        registry.Env
	deps       Deps
	stack      []tea.Model
	titles     []string
	status     string
	windowSize tea.WindowSizeMsg
}

// New starts on the home screen.
func New(env registry.Env, deps Deps) Model {
	return Model{
		env:   env,
		deps:  deps.withDefaults(),
		stack:  []tea.Model{home.New(env)},
		titles: []string{homeTitle},
	}
}

// NewAt starts directly on a registered route, for command-line launches.
// An unknown route starts on the home screen.
func NewAt(env registry.Env, deps Deps, route string, params messages.Params) Model {
	m := New(env, deps)
	if r := registry.Get(route); r != nil {
		m.stack = []tea.Model{r.New(env, params)}
		m.titles = []string{r.Title}
	}
	return m
}

func (m Model) current() tea.Model {
	return m.stack[len(m.stack)-1]
}

// Depth is the number of screens on the stack.
func (m Model) Depth() int {
	return len(m.stack)
}

// Breadcrumb is the route titles from the first screen to the current one.
func (m Model) Breadcrumb() string {
	return strings.Join(m.titles, " › ")
}

func (m Model) Init() tea.Cmd {
	return m.current().Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.windowSize = ws
	}

	if key, ok := msg.(tea.KeyMsg); ok {
		if key.String() == "ctrl+c" {
			return m, tea.Quit
		}
		m.status = ""
	}

	switch msg := msg.(type) {
	case messages.BackMsg:
		if len(m.stack) == 1 {
			return m, tea.Quit
		}
		m.stack = m.stack[:len(m.stack)-1]
		m.titles = m.titles[:len(m.titles)-1]
		m.deps.Logger.Debug("navigate back", zap.Int("depth", len(m.stack)))
		return m, m.resize()

	case messages.NavigateMsg:
		r := registry.Get(msg.Route)
		if r == nil {
			m.deps.Logger.Warn("unknown route", zap.String("route", msg.Route))
			return m, nil
		}
		screen := r.New(m.env, msg.Params)
		m.stack = append(m.stack[:len(m.stack):len(m.stack)], screen)
		m.titles = append(m.titles[:len(m.titles):len(m.titles)], r.Title)
		m.deps.Logger.Info("navigate",
			zap.String("route", msg.Route),
			zap.String("title", r.Title),
			zap.Any("params", msg.Params),
		)
		return m, tea.Batch(screen.Init(), m.resize())

	case messages.OpenURLMsg:
		return m, linkopen.OpenCmd(m.deps.Opener, m.deps.Logger, msg.URL)

	case messages.CopyURLMsg:
		return m, linkopen.CopyCmd(m.deps.Copier, m.deps.Logger, msg.URL)

	case messages.StatusMsg:
		m.status = msg.Text
		return m, nil
	}

	updated, cmd := m.current().Update(msg)
	stack := append([]tea.Model(nil), m.stack...)
	stack[len(stack)-1] = updated
	m.stack = stack
	return m, cmd
}

func (m Model) resize() tea.Cmd {
	if m.windowSize.Width == 0 && m.windowSize.Height == 0 {
		return nil
	}
	ws := m.windowSize
	return func() tea.Msg { return ws }
}

func (m Model) View() string {
	view := m.current().View()
	if len(m.titles) > 1 {
		view = styles.Dimmed.Render(m.Breadcrumb()) + "\n" + view
	}
	if m.status != "" {
		view += "\n" + styles.Status.Render(m.status)
	}
	return view
}
