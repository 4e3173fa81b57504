// Package theme turns a six-colour palette into concrete drawing attributes for
// each widget kind.
//
// A host holds any value satisfying StyleSheet and asks it for a style record
// whenever a widget is drawn or changes state:
//
//	sheet := theme.DefaultDark.Theme()
//	btn := sheet.Button(style.ButtonHovered)
//
// Resolution is pure. The same sheet and state always yield the same record,
// and nothing a caller does to that record affects the sheet.
package theme

import (
	"github.com/alexisbeaulieu97/themekit/internal/color"
	"github.com/alexisbeaulieu97/themekit/internal/style"
	"github.com/alexisbeaulieu97/themekit/internal/validate"
)

// StyleSheet is the capability set a host needs from a theme: one entry point
// per widget kind.
type StyleSheet interface {
	Name() string
	Container() style.Container
	Radio(state style.RadioState) style.Radio
	TextInput(state style.TextInputState) style.TextInput
	TextInputColors() style.TextInputColors
	Button(state style.ButtonState) style.Button
	Scrollable(state style.ScrollableState) style.Scrollbar
	Slider(state style.SliderState) style.Slider
	ProgressBar() style.ProgressBar
	Checkbox(state style.CheckboxState, checked bool) style.Checkbox
	Rule() style.Rule
}

// Theme is a named palette. It implements StyleSheet.
type Theme struct {
	name        string
	description string
	dark        bool
	colors      Palette
}

var _ StyleSheet = Theme{}

type themeFields struct {
	Name        string `validate:"required,trimmed,min=1,max=64"`
	Description string `validate:"max=256"`
}

// NewTheme builds a Theme around an already validated palette. An empty
// description means the theme has none.
func NewTheme(name, description string, dark bool, colors Palette) (Theme, error) {
	if err := validate.Struct(themeFields{Name: name, Description: description}); err != nil {
		return Theme{}, err
	}
	return Theme{name: name, description: description, dark: dark, colors: colors}, nil
}

func (t Theme) Name() string { return t.name }

// Description reports the optional human description.
func (t Theme) Description() (string, bool) {
	return t.description, t.description != ""
}

// Dark is informational; resolution never reads it.
func (t Theme) Dark() bool { return t.dark }

func (t Theme) Colors() Palette { return t.colors }

// Default returns the shipped dark theme.
func Default() Theme {
	colors := MustPalette(PaletteSpec{
		Surface:    Ptr(color.FromRGB8(0x40, 0x44, 0x4B)),
		Accent:     Ptr(color.FromRGB8(0x6F, 0xFF, 0xE9)),
		Active:     Ptr(color.FromRGB8(0x72, 0x89, 0xDA)),
		Hovered:    Ptr(color.FromRGB8(0x67, 0x7B, 0xC4)),
		Background: Ptr(color.FromRGB8(0x36, 0x39, 0x3F)),
		Text:       Ptr(color.White),
	})
	return Theme{
		name:        "Default Dark",
		description: "The default dark theme based on the iced styling example",
		dark:        true,
		colors:      colors,
	}
}

// Builtin identifies a theme that ships with the module.
type Builtin int

const (
	DefaultDark Builtin = iota
)

// Builtins lists every shipped theme.
func Builtins() []Builtin {
	return []Builtin{DefaultDark}
}

// Theme returns the shipped theme's value.
func (b Builtin) Theme() Theme {
	// DefaultDark is the only shipped theme.
	return Default()
}

func (b Builtin) String() string {
	return b.Theme().Name()
}
