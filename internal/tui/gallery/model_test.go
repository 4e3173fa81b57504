package gallery

import (
	"bytes"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/themekit/internal/color"
	"github.com/alexisbeaulieu97/themekit/internal/style"
	"github.com/alexisbeaulieu97/themekit/internal/theme"
)

func newTestModel(t *testing.T, manager *theme.Manager) Model {
	t.Helper()
	return NewModel(manager, Options{Output: &bytes.Buffer{}})
}

func press(t *testing.T, m Model, msgs ...tea.KeyMsg) Model {
	t.Helper()
	for _, msg := range msgs {
		updated, _ := m.Update(msg)
		m = updated.(Model)
	}
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewModelStartsOnFirstKind(t *testing.T) {
	m := newTestModel(t, nil)
	assert.Equal(t, style.KindContainer, m.Kind())
	assert.Empty(t, m.State())
	assert.False(t, m.Checked())
	assert.Equal(t, "Default Dark", m.Theme())
	assert.Nil(t, m.Init())
}

func TestKindNavigationWraps(t *testing.T) {
	m := newTestModel(t, nil)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, style.KindRadio, m.Kind())
	assert.Equal(t, "active", m.State())

	m = press(t, m, tea.KeyMsg{Type: tea.KeyUp}, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, style.KindRule, m.Kind())

	m = press(t, m, runes("j"))
	assert.Equal(t, style.KindContainer, m.Kind())
}

func TestStateCyclingFollowsKind(t *testing.T) {
	m := newTestModel(t, nil)
	// container -> radio -> text_input -> button
	m = press(t, m, runes("j"), runes("j"), runes("j"))
	require.Equal(t, style.KindButton, m.Kind())

	m = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, "hovered", m.State())
	m = press(t, m, runes("l"))
	assert.Equal(t, "pressed", m.State())
	m = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, "active", m.State())
	m = press(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, "pressed", m.State())

	record, err := m.Resolve()
	require.NoError(t, err)
	assert.Equal(t, theme.Default().Button(style.ButtonPressed), record)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, style.KindScrollable, m.Kind())
	assert.Equal(t, "active", m.State(), "changing kind resets the state")
}

func TestSingleStyleKindsIgnoreStateKeys(t *testing.T) {
	m := newTestModel(t, nil)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyRight}, tea.KeyMsg{Type: tea.KeyLeft})

	assert.Equal(t, style.KindContainer, m.Kind())
	assert.Empty(t, m.State())
	record, err := m.Resolve()
	require.NoError(t, err)
	assert.Equal(t, theme.Default().Container(), record)
}

func TestCheckToggle(t *testing.T) {
	m := newTestModel(t, nil)
	for m.Kind() != style.KindCheckbox {
		m = press(t, m, runes("j"))
	}

	record, err := m.Resolve()
	require.NoError(t, err)
	assert.Equal(t, theme.Default().Colors().Surface(), record.(style.Checkbox).Background)

	m = press(t, m, runes("c"))
	assert.True(t, m.Checked())
	record, err = m.Resolve()
	require.NoError(t, err)
	assert.Equal(t, theme.Default().Colors().Active(), record.(style.Checkbox).Background)
	assert.Contains(t, m.View(), "checked: true")
}

func TestThemeCyclingUsesRegistry(t *testing.T) {
	colors, err := theme.NewPalette(theme.PaletteSpec{
		Surface:    theme.Ptr(color.FromRGB8(0xEE, 0xEE, 0xEE)),
		Background: theme.Ptr(color.White),
		Accent:     theme.Ptr(color.FromRGB8(0x00, 0x80, 0xFF)),
		Active:     theme.Ptr(color.FromRGB8(0x20, 0x40, 0xA0)),
		Hovered:    theme.Ptr(color.FromRGB8(0x30, 0x50, 0xB0)),
		Text:       theme.Ptr(color.Black),
	})
	require.NoError(t, err)
	light, err := theme.NewTheme("Light", "", false, colors)
	require.NoError(t, err)

	reg := theme.NewRegistry(nil)
	require.NoError(t, reg.Register(light))
	manager := theme.NewManager(reg, nil)

	m := newTestModel(t, manager)
	m = press(t, m, runes("t"))
	assert.Equal(t, "Light", m.Theme())
	assert.Contains(t, m.View(), "Light")

	record, err := m.Resolve()
	require.NoError(t, err)
	assert.Equal(t, color.White, record.(style.Container).Background)

	m = press(t, m, runes("t"))
	assert.Equal(t, "Default Dark", m.Theme())
}

func TestHelpToggle(t *testing.T) {
	m := newTestModel(t, nil)
	assert.NotContains(t, m.View(), "toggle checked")
	m = press(t, m, runes("?"))
	assert.Contains(t, m.View(), "toggle checked")
}

func TestQuitKeys(t *testing.T) {
	for _, msg := range []tea.KeyMsg{{Type: tea.KeyCtrlC}, runes("q")} {
		m := newTestModel(t, nil)
		updated, cmd := m.Update(msg)
		m = updated.(Model)

		require.NotNil(t, cmd)
		assert.IsType(t, tea.QuitMsg{}, cmd())
		assert.True(t, m.Quitting())
		assert.Empty(t, m.View())
	}
}

func TestWindowSizeSetsSwatchWidth(t *testing.T) {
	m := newTestModel(t, nil)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m = updated.(Model)
	assert.Equal(t, 76, m.width)

	updated, _ = m.Update(tea.WindowSizeMsg{Width: 10, Height: 40})
	m = updated.(Model)
	assert.Equal(t, minSwatchWidth, m.width)
}

func TestViewShowsSelection(t *testing.T) {
	m := newTestModel(t, nil)
	m = press(t, m, runes("j"), runes("l"))

	view := m.View()
	assert.Contains(t, view, "Default Dark")
	assert.Contains(t, view, "(●) Radio")
	assert.Contains(t, view, "state: hovered")
	assert.Contains(t, view, "quit")
}
