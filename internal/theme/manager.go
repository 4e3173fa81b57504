package theme

import (
	"sync"

	"github.com/alexisbeaulieu97/themekit/internal/logger"
)

// Manager owns the one active style sheet of a host. Swapping the sheet
// replaces the whole reference, so a reader always sees a complete sheet.
type Manager struct {
	mu       sync.RWMutex
	active   StyleSheet
	registry *Registry
	log      *logger.Logger
}

// NewManager starts with the built-in default theme active.
func NewManager(registry *Registry, log *logger.Logger) *Manager {
	if registry == nil {
		registry = NewRegistry(log)
	}
	return &Manager{
		active:   DefaultDark.Theme(),
		registry: registry,
		log:      log.WithComponent("theme.manager"),
	}
}

// Active returns the current sheet.
func (m *Manager) Active() StyleSheet {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.active
}

// Select activates the sheet registered under name. On failure the active
// sheet is left unchanged.
func (m *Manager) Select(name string) error {
	sheet, err := m.registry.Get(name)
	if err != nil {
		m.log.WithFields(map[string]any{"theme": name}).Error(err, "theme selection failed")
		return err
	}
	m.Use(sheet)
	return nil
}

// Use activates sheet directly without consulting the registry.
func (m *Manager) Use(sheet StyleSheet) {
	if sheet == nil {
		return
	}
	m.mu.Lock()
	previous := m.active
	m.active = sheet
	m.mu.Unlock()

	m.log.WithFields(map[string]any{"from": previous.Name(), "to": sheet.Name()}).Debug("active theme swapped")
}

// Registry exposes the sheets the manager selects from.
func (m *Manager) Registry() *Registry {
	return m.registry
}
