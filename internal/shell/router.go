// Package shell holds the application shell: the view registry, the
// single active-view selection, and the session-only presentation flags
// that travel with it. Shell state is never persisted; every process
// starts on the dashboard with the sidebar open and the light theme.
package shell

import (
	"io"

	"github.com/rs/zerolog"
)

// View identifiers. The set is closed; selection accepts any string but
// rendering an id outside this set produces no output.
const (
	ViewDashboard  = "dashboard"
	ViewKanban     = "kanban"
	ViewNotes      = "notes"
	ViewVault      = "vault"
	ViewMusic      = "music"
	ViewRecorder   = "recorder"
	ViewMarket     = "crypto"
	ViewFinance    = "finance"
	ViewWorldClock = "worldclock"
	ViewPassword   = "password"
	ViewQR         = "qrcode"
	ViewStopwatch  = "stopwatch"
	ViewDevTools   = "devtools"
)

// ViewOrder is the sidebar order.
var ViewOrder = []string{
	ViewDashboard,
	ViewKanban,
	ViewNotes,
	ViewVault,
	ViewMusic,
	ViewRecorder,
	ViewMarket,
	ViewFinance,
	ViewWorldClock,
	ViewPassword,
	ViewQR,
	ViewStopwatch,
	ViewDevTools,
}

// View is one registered screen. Render writes the view's current
// content; dark is the active theme flag and the only styling signal a
// view receives.
type View interface {
	ID() string
	Render(w io.Writer, dark bool) error
}

// Router owns view selection and the session presentation flags.
type Router struct {
	views   map[string]View
	active  string
	sidebar bool
	dark    bool
	log     zerolog.Logger
}

// NewRouter starts on the dashboard with the sidebar open.
func NewRouter(log zerolog.Logger) *Router {
	return &Router{
		views:   make(map[string]View),
		active:  ViewDashboard,
		sidebar: true,
		log:     log,
	}
}

// Register adds a view under its own id, replacing any previous
// registration for that id.
func (r *Router) Register(v View) {
	r.views[v.ID()] = v
}

// Select switches the active view unconditionally. Selecting an
// unknown id succeeds; the mismatch surfaces only at render time.
func (r *Router) Select(id string) {
	r.active = id
}

// Active returns the currently selected view id.
func (r *Router) Active() string {
	return r.active
}

// Render writes the active view. An active id with no registered view
// writes nothing and is not an error; the shell stays usable and the
// next Select recovers.
func (r *Router) Render(w io.Writer) error {
	v, ok := r.views[r.active]
	if !ok {
		r.log.Warn().Str("view", r.active).Msg("no view registered for active id")
		return nil
	}
	return v.Render(w, r.dark)
}

// ToggleSidebar flips the sidebar flag and returns the new value.
func (r *Router) ToggleSidebar() bool {
	r.sidebar = !r.sidebar
	return r.sidebar
}

// Sidebar reports whether the sidebar is open.
func (r *Router) Sidebar() bool {
	return r.sidebar
}

// SetDark sets the theme flag for this session.
func (r *Router) SetDark(dark bool) {
	r.dark = dark
}

// Dark reports the active theme flag.
func (r *Router) Dark() bool {
	return r.dark
}
