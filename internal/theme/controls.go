package theme

import (
	"github.com/alexisbeaulieu97/themekit/internal/color"
	"github.com/alexisbeaulieu97/themekit/internal/style"
)

const (
	buttonBorderRadius   float32 = 3.0
	buttonPressedBorder  float32 = 1.0
	radioBorderWidth     float32 = 1.0
	radioHoverAlpha      float32 = 0.5
	checkboxBorderRadius float32 = 2.0
	checkboxBorderWidth  float32 = 1.0
	checkboxHoverAlpha   float32 = 0.8
)

// Button resolves a push button. Hovered layers on active and pressed layers
// on hovered.
func (t Theme) Button(state style.ButtonState) style.Button {
	s := t.buttonActive()
	if state == style.ButtonActive {
		return s
	}
	s = style.Apply(s, t.buttonHover())
	if state == style.ButtonHovered {
		return s
	}
	return style.Apply(s, buttonPress())
}

func (t Theme) buttonActive() style.Button {
	return style.Button{
		ShadowOffset: style.Vector{},
		Background:   t.colors.active,
		BorderRadius: buttonBorderRadius,
		BorderWidth:  0,
		BorderColor:  color.Transparent,
		TextColor:    t.colors.text,
	}
}

func (t Theme) buttonHover() style.Override[style.Button] {
	return func(s style.Button) style.Button {
		s.Background = t.colors.hovered
		s.TextColor = t.colors.text
		return s
	}
}

func buttonPress() style.Override[style.Button] {
	return func(s style.Button) style.Button {
		s.BorderWidth = buttonPressedBorder
		s.BorderColor = color.White
		return s
	}
}

// Radio resolves a radio button.
func (t Theme) Radio(state style.RadioState) style.Radio {
	s := t.radioActive()
	if state == style.RadioActive {
		return s
	}
	return style.Apply(s, t.radioHover())
}

func (t Theme) radioActive() style.Radio {
	return style.Radio{
		Background:  t.colors.surface,
		DotColor:    t.colors.active,
		BorderWidth: radioBorderWidth,
		BorderColor: t.colors.active,
		TextColor:   t.colors.text,
	}
}

func (t Theme) radioHover() style.Override[style.Radio] {
	return func(s style.Radio) style.Radio {
		s.Background = t.colors.surface.WithAlpha(radioHoverAlpha)
		return s
	}
}

// Checkbox resolves a checkbox. The fill is picked from checked before the
// hover alpha is applied.
func (t Theme) Checkbox(state style.CheckboxState, checked bool) style.Checkbox {
	s := t.checkboxActive(checked)
	if state == style.CheckboxActive {
		return s
	}
	return style.Apply(s, t.checkboxHover(checked))
}

func (t Theme) checkboxFill(checked bool) color.Color {
	if checked {
		return t.colors.active
	}
	return t.colors.surface
}

func (t Theme) checkboxActive(checked bool) style.Checkbox {
	return style.Checkbox{
		Background:     t.checkboxFill(checked),
		CheckmarkColor: t.colors.text,
		BorderRadius:   checkboxBorderRadius,
		BorderWidth:    checkboxBorderWidth,
		BorderColor:    t.colors.active,
		TextColor:      t.colors.text,
	}
}

func (t Theme) checkboxHover(checked bool) style.Override[style.Checkbox] {
	return func(s style.Checkbox) style.Checkbox {
		s.Background = t.checkboxFill(checked).WithAlpha(checkboxHoverAlpha)
		return s
	}
}
