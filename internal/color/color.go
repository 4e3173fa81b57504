// Package color holds the RGBA value type shared by palettes and resolved
// style records.
package color

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	themeerrors "github.com/alexisbeaulieu97/themekit/pkg/errors"
)

// Color is a linear RGBA value with every component in [0,1].
type Color struct {
	R float32 `validate:"gte=0,lte=1"`
	G float32 `validate:"gte=0,lte=1"`
	B float32 `validate:"gte=0,lte=1"`
	A float32 `validate:"gte=0,lte=1"`
}

var (
	White       = Color{R: 1, G: 1, B: 1, A: 1}
	Black       = Color{R: 0, G: 0, B: 0, A: 1}
	Transparent = Color{}
)

// FromRGB8 builds an opaque colour from 8-bit channels.
func FromRGB8(r, g, b uint8) Color {
	return Color{
		R: float32(r) / 255,
		G: float32(g) / 255,
		B: float32(b) / 255,
		A: 1,
	}
}

// FromRGB builds an opaque colour from unit-range channels.
func FromRGB(r, g, b float32) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// WithAlpha returns a copy of c with only the alpha channel replaced.
func (c Color) WithAlpha(a float32) Color {
	c.A = a
	return c
}

// ParseHex accepts #RRGGBB or #RRGGBBAA, with or without the leading '#'.
func ParseHex(value string) (Color, error) {
	s := strings.TrimSpace(value)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}

	var alpha uint64 = 0xFF
	switch len(s) {
	case 7:
	case 9:
		parsed, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return Color{}, themeerrors.NewParseError(value, fmt.Errorf("invalid alpha channel: %w", err))
		}
		alpha = parsed
		s = s[:7]
	default:
		return Color{}, themeerrors.NewParseError(value, fmt.Errorf("expected #RRGGBB or #RRGGBBAA"))
	}

	parsed, err := colorful.Hex(s)
	if err != nil {
		return Color{}, themeerrors.NewParseError(value, err)
	}

	return Color{
		R: float32(parsed.R),
		G: float32(parsed.G),
		B: float32(parsed.B),
		A: float32(alpha) / 255,
	}, nil
}

// Hex formats the colour channels as #RRGGBB, ignoring alpha.
func (c Color) Hex() string {
	return strings.ToUpper(c.colorful().Clamped().Hex())
}

// HexA formats the colour as #RRGGBBAA.
func (c Color) HexA() string {
	return fmt.Sprintf("%s%02X", c.Hex(), channelByte(c.A))
}

// String implements fmt.Stringer.
func (c Color) String() string {
	return c.HexA()
}

// MarshalText emits the #RRGGBBAA form so JSON and YAML keep the alpha channel.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.HexA()), nil
}

// Over composites c onto an opaque backdrop. The result is opaque.
func (c Color) Over(backdrop Color) Color {
	blended := backdrop.colorful().BlendRgb(c.colorful(), float64(c.A))
	return Color{
		R: float32(blended.R),
		G: float32(blended.G),
		B: float32(blended.B),
		A: 1,
	}
}

// Lipgloss converts the colour channels to a lipgloss colour. Alpha is dropped;
// composite with Over first when translucency matters.
func (c Color) Lipgloss() lipgloss.Color {
	return lipgloss.Color(c.Hex())
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{R: float64(c.R), G: float64(c.G), B: float64(c.B)}
}

func channelByte(v float32) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 0xFF
	default:
		return uint8(v*255 + 0.5)
	}
}
