package listing

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"

	"github.com/abordi-ai/abordi/internal/catalog"
	"github.com/abordi-ai/abordi/internal/messages"
	"github.com/abordi-ai/abordi/internal/registry"
	"github.com/abordi-ai/abordi/internal/webview"
)

func keyRune(r rune) tea.KeyMsg        { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}} }
func keyType(t tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: t} }

func TestRegisteredRoute(t *testing.T) {
	r := registry.Get(Route)
	if r == nil {
		t.Fatal("tools route not registered")
	}
	env := registry.Env{Catalog: catalog.Default()}
	m, ok := r.New(env, messages.Params{ParamProfession: "Designer"}).(Model)
	if !ok {
		t.Fatalf("expected listing.Model")
	}
	if m.Listing().Header != "Designer Tools" {
		t.Errorf("header = %q", m.Listing().Header)
	}
}

func TestScreen_CursorBounds(t *testing.T) {
	m := New(catalog.Default(), Params{Profession: "Designer"})

	r, _ := m.Update(keyRune('k'))
	m = r.(Model)
	if m.cursor != 0 {
		t.Fatalf("cursor should stay at 0, got %d", m.cursor)
	}
	for i := 0; i < 5; i++ {
		r, _ = m.Update(keyType(tea.KeyDown))
		m = r.(Model)
	}
	if m.cursor != 2 {
		t.Fatalf("cursor should stop at last tool, got %d", m.cursor)
	}
}

func TestScreen_EnterOpensSelectedTool(t *testing.T) {
	m := New(catalog.Default(), Params{Profession: "Designer"})
	r, _ := m.Update(keyRune('j'))
	m = r.(Model)

	_, cmd := m.Update(keyType(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected open cmd")
	}
	msg, ok := cmd().(messages.OpenURLMsg)
	if !ok {
		t.Fatalf("expected OpenURLMsg")
	}
	if msg.URL != "https://www.figma.com" {
		t.Errorf("url = %q", msg.URL)
	}
}

func TestScreen_WNavigatesToViewer(t *testing.T) {
	m := New(catalog.Default(), Params{Profession: "Designer"})

	_, cmd := m.Update(keyRune('w'))
	if cmd == nil {
		t.Fatal("expected navigate cmd")
	}
	nav, ok := cmd().(messages.NavigateMsg)
	if !ok {
		t.Fatalf("expected NavigateMsg")
	}
	if nav.Route != webview.Route {
		t.Errorf("route = %q", nav.Route)
	}
	if nav.Params.Get(webview.ParamURL) != "https%3A%2F%2Fopenai.com%2Fdall-e-3" {
		t.Errorf("url param = %q", nav.Params.Get(webview.ParamURL))
	}
	if nav.Params.Get(webview.ParamName) != "DALL-E" {
		t.Errorf("name param = %q", nav.Params.Get(webview.ParamName))
	}
}

func TestScreen_EmptyListingIgnoresEnter(t *testing.T) {
	m := New(&catalog.Catalog{}, Params{})

	if _, cmd := m.Update(keyType(tea.KeyEnter)); cmd != nil {
		t.Error("expected no cmd with nothing to open")
	}
	if !strings.Contains(m.View(), "No tools available") {
		t.Error("expected empty heading in view")
	}
}

func TestScreen_EscGoesBack(t *testing.T) {
	m := New(catalog.Default(), Params{})

	_, cmd := m.Update(keyType(tea.KeyEsc))
	if cmd == nil {
		t.Fatal("expected back cmd")
	}
	if _, ok := cmd().(messages.BackMsg); !ok {
		t.Error("expected BackMsg")
	}
}

func TestRow_SelectedAlignsWithUnselected(t *testing.T) {
	saved := lipgloss.ColorProfile()
	lipgloss.SetColorProfile(termenv.TrueColor)
	t.Cleanup(func() { lipgloss.SetColorProfile(saved) })

	tool := catalog.Tool{Name: "Figma", Description: "Design user interfaces"}
	selected, plain := row(true, tool), row(false, tool)

	if selected == plain {
		t.Fatal("expected the selected row to be styled")
	}
	if lipgloss.Width(selected) != lipgloss.Width(plain) {
		t.Errorf("selected row is %d columns wide, unselected %d", lipgloss.Width(selected), lipgloss.Width(plain))
	}
	descAt := func(s string) int {
		return strings.Index(ansi.Strip(s), tool.Description)
	}
	if descAt(selected) != descAt(plain) {
		t.Errorf("description starts at column %d when selected, %d otherwise", descAt(selected), descAt(plain))
	}
}
