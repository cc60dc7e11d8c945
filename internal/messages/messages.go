package messages

import tea "github.com/charmbracelet/bubbletea"

// Params are the named navigation parameters handed to a route.
type Params map[string]string

// Get returns the value for key, or "" when absent.
func (p Params) Get(key string) string {
	if p == nil {
		return ""
	}
	return p[key]
}

// BackMsg is sent by a screen when it wants to return to the previous one.
type BackMsg struct{}

// NavigateMsg asks the app to push the screen registered under Route.
type NavigateMsg struct {
	Route  string
	Params Params
}

// OpenURLMsg hands a URL to the system link opener. Nothing is reported
// back to the screen that sent it.
type OpenURLMsg struct {
	URL string
}

// CopyURLMsg puts a URL on the system clipboard.
type CopyURLMsg struct {
	URL string
}

// StatusMsg is a one-line notice shown under the current screen.
type StatusMsg struct {
	Text string
}

// Back returns a command emitting BackMsg.
func Back() tea.Msg {
	return BackMsg{}
}

// Navigate returns a command emitting a NavigateMsg.
func Navigate(route string, params Params) tea.Cmd {
	return func() tea.Msg {
		return NavigateMsg{Route: route, Params: params}
	}
}

// Open returns a command emitting an OpenURLMsg.
func Open(url string) tea.Cmd {
	return func() tea.Msg {
		return OpenURLMsg{URL: url}
	}
}
