// Package gallery is an interactive host that walks every widget kind through
// its interaction states and shows the style the active theme resolves.
package gallery

import (
	"io"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/themekit/internal/logger"
	"github.com/alexisbeaulieu97/themekit/internal/style"
	"github.com/alexisbeaulieu97/themekit/internal/theme"
)

const (
	defaultSwatchWidth = 40
	minSwatchWidth     = 16
	// listWidth is the space reserved left of the swatch for the kind list.
	listWidth = 20
)

// Options configures a gallery Model.
type Options struct {
	// Output selects the colour profile of swatches. Nil uses the default.
	Output io.Writer
	Logger *logger.Logger
}

// Model holds the gallery's selection. The style itself is resolved again on
// every View so a theme swap shows up immediately.
type Model struct {
	manager *theme.Manager
	kinds   []style.Kind

	kindIdx  int
	stateIdx int
	checked  bool

	width    int
	output   io.Writer
	keys     keyMap
	help     help.Model
	log      *logger.Logger
	errMsg   string
	quitting bool
}

// NewModel builds a gallery around manager's active theme.
func NewModel(manager *theme.Manager, opts Options) Model {
	if manager == nil {
		manager = theme.NewManager(nil, opts.Logger)
	}
	return Model{
		manager: manager,
		kinds:   style.Kinds(),
		width:   defaultSwatchWidth,
		output:  opts.Output,
		keys:    defaultKeyMap(),
		help:    help.New(),
		log:     opts.Logger.WithComponent("gallery"),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Kind is the widget kind currently shown.
func (m Model) Kind() style.Kind {
	return m.kinds[m.kindIdx]
}

// State is the interaction state currently shown. Single-style kinds report
// an empty state.
func (m Model) State() string {
	states := m.Kind().States()
	if len(states) == 0 {
		return ""
	}
	return states[m.stateIdx%len(states)]
}

// Checked reports the checkbox flag passed to checkable kinds.
func (m Model) Checked() bool {
	return m.checked
}

// Theme is the name of the active theme.
func (m Model) Theme() string {
	return m.manager.Active().Name()
}

// Quitting reports whether the user asked to leave.
func (m Model) Quitting() bool {
	return m.quitting
}

// Resolve returns the record for the current selection.
func (m Model) Resolve() (any, error) {
	return theme.ResolveNamed(m.manager.Active(), m.Kind(), m.State(), m.checked)
}
