package theme

import (
	"errors"
	"sort"
	"strings"
	"sync"

	"github.com/alexisbeaulieu97/themekit/internal/logger"
	themeerrors "github.com/alexisbeaulieu97/themekit/pkg/errors"
)

var (
	// ErrUnknownTheme is returned when no sheet is registered under a name.
	ErrUnknownTheme = errors.New("theme not registered")
	// ErrDuplicateTheme is returned when a name is already taken.
	ErrDuplicateTheme = errors.New("theme already registered")
	// ErrUnnamedTheme is returned when a sheet reports an empty name.
	ErrUnnamedTheme = errors.New("theme has no name")
)

// Registry keeps every style sheet a host can choose from, keyed by name.
type Registry struct {
	mu     sync.RWMutex
	sheets map[string]StyleSheet
	log    *logger.Logger
}

// NewRegistry returns a registry preloaded with the built-in themes.
func NewRegistry(log *logger.Logger) *Registry {
	r := &Registry{
		sheets: make(map[string]StyleSheet),
		log:    log.WithComponent("theme.registry"),
	}
	for _, builtin := range Builtins() {
		// Built-in names are distinct and non-empty.
		_ = r.Register(builtin.Theme())
	}
	return r
}

// Register adds sheet under its Name.
func (r *Registry) Register(sheet StyleSheet) error {
	if sheet == nil {
		return themeerrors.NewThemeError("", ErrUnnamedTheme)
	}
	name := strings.TrimSpace(sheet.Name())
	if name == "" {
		return themeerrors.NewThemeError("", ErrUnnamedTheme)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.sheets[name]; exists {
		return themeerrors.NewThemeError(name, ErrDuplicateTheme)
	}
	r.sheets[name] = sheet

	r.log.WithFields(map[string]any{"theme": name}).Debug("theme registered")
	return nil
}

// Get returns the sheet registered under name.
func (r *Registry) Get(name string) (StyleSheet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sheet, ok := r.sheets[strings.TrimSpace(name)]
	if !ok {
		return nil, themeerrors.NewThemeError(name, ErrUnknownTheme)
	}
	return sheet, nil
}

// Names lists registered theme names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.sheets))
	for name := range r.sheets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Sheets returns the registered sheets ordered by name.
func (r *Registry) Sheets() []StyleSheet {
	names := r.Names()

	r.mu.RLock()
	defer r.mu.RUnlock()

	sheets := make([]StyleSheet, 0, len(names))
	for _, name := range names {
		if sheet, ok := r.sheets[name]; ok {
			sheets = append(sheets, sheet)
		}
	}
	return sheets
}
