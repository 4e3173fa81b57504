package render

import (
	"github.com/alexisbeaulieu97/themekit/internal/color"
	"github.com/alexisbeaulieu97/themekit/internal/style"
)

// Headline returns the colour that identifies a record at a glance: the fill
// a user would name when describing the widget. It is used by plain-text
// output where no swatch can be drawn.
func Headline(record any) (color.Color, bool) {
	switch r := record.(type) {
	case style.Container:
		return r.Background, true
	case style.Button:
		return r.Background, true
	case style.Radio:
		return r.DotColor, true
	case style.Checkbox:
		return r.Background, true
	case style.TextInput:
		return r.BorderColor, true
	case style.Scrollbar:
		return r.Scroller.Color, true
	case style.Slider:
		return r.Handle.Color, true
	case style.ProgressBar:
		return r.Bar, true
	case style.Rule:
		return r.Color, true
	default:
		return color.Color{}, false
	}
}
