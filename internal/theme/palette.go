package theme

import (
	"github.com/alexisbeaulieu97/themekit/internal/color"
	"github.com/alexisbeaulieu97/themekit/internal/validate"
)

// PaletteSpec collects the six semantic colours before validation. A nil slot
// means the colour was never supplied.
type PaletteSpec struct {
	Surface    *color.Color `validate:"required"`
	Background *color.Color `validate:"required"`
	Accent     *color.Color `validate:"required"`
	Active     *color.Color `validate:"required"`
	Hovered    *color.Color `validate:"required"`
	Text       *color.Color `validate:"required"`
}

// Palette is the immutable set of semantic colours a theme resolves from.
type Palette struct {
	surface    color.Color
	background color.Color
	accent     color.Color
	active     color.Color
	hovered    color.Color
	text       color.Color
}

// NewPalette validates spec and freezes it into a Palette. Every slot must be
// set and every component must lie in [0,1].
func NewPalette(spec PaletteSpec) (Palette, error) {
	if err := validate.Struct(spec); err != nil {
		return Palette{}, err
	}
	return Palette{
		surface:    *spec.Surface,
		background: *spec.Background,
		accent:     *spec.Accent,
		active:     *spec.Active,
		hovered:    *spec.Hovered,
		text:       *spec.Text,
	}, nil
}

// MustPalette is NewPalette for literal palettes; it panics on invalid input.
func MustPalette(spec PaletteSpec) Palette {
	p, err := NewPalette(spec)
	if err != nil {
		panic(err)
	}
	return p
}

func (p Palette) Surface() color.Color    { return p.surface }
func (p Palette) Background() color.Color { return p.background }
func (p Palette) Accent() color.Color     { return p.accent }
func (p Palette) Active() color.Color     { return p.active }
func (p Palette) Hovered() color.Color    { return p.hovered }
func (p Palette) Text() color.Color       { return p.text }

// Spec returns an editable copy of the palette, the starting point for
// deriving a variant.
func (p Palette) Spec() PaletteSpec {
	surface, background, accent := p.surface, p.background, p.accent
	active, hovered, text := p.active, p.hovered, p.text
	return PaletteSpec{
		Surface:    &surface,
		Background: &background,
		Accent:     &accent,
		Active:     &active,
		Hovered:    &hovered,
		Text:       &text,
	}
}

// Ptr returns a pointer to c, for filling a PaletteSpec inline.
func Ptr(c color.Color) *color.Color {
	return &c
}
