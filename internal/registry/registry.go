package registry

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/abordi-ai/abordi/internal/catalog"
	"github.com/abordi-ai/abordi/internal/messages"
)

// Env is what every screen is built from.
type Env struct {
	Catalog      *catalog.Catalog
	AssistantURL string
}

// Route defines a screen that can be navigated to by path. Title names the
// screen in the app's breadcrumb.
type Route struct {
	Path  string
	Title string
	New   func(env Env, params messages.Params) tea.Model
}

var routes []Route

// Register adds a route to the registry. A later registration with the
// same path replaces the earlier one.
func Register(r Route) {
	for i := range routes {
		if routes[i].Path == r.Path {
			routes[i] = r
			return
		}
	}
	routes = append(routes, r)
}

// Get returns the route with the given path, or nil if not found.
func Get(path string) *Route {
	for i := range routes {
		if routes[i].Path == path {
			return &routes[i]
		}
	}
	return nil
}
