package theme

import (
	"github.com/alexisbeaulieu97/themekit/internal/color"
	"github.com/alexisbeaulieu97/themekit/internal/style"
)

const (
	textInputBorderRadius float32 = 2.0
	textInputFocusBorder  float32 = 1.0
	textInputHoverAlpha   float32 = 0.3

	scrollbarBorderRadius float32 = 2.0
	scrollerBorderRadius  float32 = 2.0
	scrollbarHoverAlpha   float32 = 0.5

	sliderHandleRadius float32 = 9.0
	sliderRailAlpha    float32 = 0.1
)

// dragColor is fixed and deliberately independent of the palette.
var dragColor = color.FromRGB(0.85, 0.85, 0.85)

// placeholderColor is the grey used for empty text fields.
var placeholderColor = color.FromRGB(0.4, 0.4, 0.4)

// TextInput resolves a text field frame. Focused layers on active and hovered
// layers on focused.
func (t Theme) TextInput(state style.TextInputState) style.TextInput {
	s := t.textInputActive()
	if state == style.TextInputActive {
		return s
	}
	s = style.Apply(s, t.textInputFocus())
	if state == style.TextInputFocused {
		return s
	}
	return style.Apply(s, t.textInputHover())
}

// TextInputColors resolves the content colours of a text field.
func (t Theme) TextInputColors() style.TextInputColors {
	return style.TextInputColors{
		Placeholder: placeholderColor,
		Value:       color.White,
		Selection:   t.colors.accent,
	}
}

func (t Theme) textInputActive() style.TextInput {
	return style.TextInput{
		Background:   t.colors.surface,
		BorderRadius: textInputBorderRadius,
		BorderWidth:  0,
		BorderColor:  color.Transparent,
	}
}

func (t Theme) textInputFocus() style.Override[style.TextInput] {
	return func(s style.TextInput) style.TextInput {
		s.BorderWidth = textInputFocusBorder
		s.BorderColor = t.colors.accent
		return s
	}
}

func (t Theme) textInputHover() style.Override[style.TextInput] {
	return func(s style.TextInput) style.TextInput {
		s.BorderWidth = textInputFocusBorder
		s.BorderColor = t.colors.accent.WithAlpha(textInputHoverAlpha)
		return s
	}
}

// Scrollable resolves a scrollbar. Dragging layers on hovered.
func (t Theme) Scrollable(state style.ScrollableState) style.Scrollbar {
	s := t.scrollableActive()
	if state == style.ScrollableActive {
		return s
	}
	s = style.Apply(s, t.scrollableHover())
	if state == style.ScrollableHovered {
		return s
	}
	return style.Apply(s, scrollableDrag())
}

func (t Theme) scrollableActive() style.Scrollbar {
	return style.Scrollbar{
		Background:   t.colors.surface,
		BorderRadius: scrollbarBorderRadius,
		BorderWidth:  0,
		BorderColor:  color.Transparent,
		Scroller: style.Scroller{
			Color:        t.colors.active,
			BorderRadius: scrollerBorderRadius,
			BorderWidth:  0,
			BorderColor:  color.Transparent,
		},
	}
}

func (t Theme) scrollableHover() style.Override[style.Scrollbar] {
	return func(s style.Scrollbar) style.Scrollbar {
		s.Background = t.colors.surface.WithAlpha(scrollbarHoverAlpha)
		s.Scroller.Color = t.colors.hovered
		return s
	}
}

func scrollableDrag() style.Override[style.Scrollbar] {
	return func(s style.Scrollbar) style.Scrollbar {
		s.Scroller.Color = dragColor
		return s
	}
}

// Slider resolves a slider. Dragging layers on hovered.
func (t Theme) Slider(state style.SliderState) style.Slider {
	s := t.sliderActive()
	if state == style.SliderActive {
		return s
	}
	s = style.Apply(s, t.sliderHover())
	if state == style.SliderHovered {
		return s
	}
	return style.Apply(s, sliderDrag())
}

func (t Theme) sliderActive() style.Slider {
	return style.Slider{
		RailColors: [2]color.Color{t.colors.active, t.colors.active.WithAlpha(sliderRailAlpha)},
		Handle: style.Handle{
			Shape:       style.CircleHandle(sliderHandleRadius),
			Color:       t.colors.active,
			BorderWidth: 0,
			BorderColor: color.Transparent,
		},
	}
}

func (t Theme) sliderHover() style.Override[style.Slider] {
	return func(s style.Slider) style.Slider {
		s.Handle.Color = t.colors.hovered
		return s
	}
}

func sliderDrag() style.Override[style.Slider] {
	return func(s style.Slider) style.Slider {
		s.Handle.Color = dragColor
		return s
	}
}
