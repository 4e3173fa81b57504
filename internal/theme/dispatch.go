package theme

import (
	"github.com/alexisbeaulieu97/themekit/internal/style"
)

// ResolveNamed resolves a widget kind from a textual state name, for hosts
// such as the CLI that receive states as strings. An empty state selects the
// rest state. Single-style kinds reject any state other than empty or "active".
// The returned value is one of the style record types.
func ResolveNamed(sheet StyleSheet, kind style.Kind, state string, checked bool) (any, error) {
	switch kind {
	case style.KindContainer, style.KindProgressBar, style.KindRule:
		if err := style.ParseSingleState(state); err != nil {
			return nil, err
		}
		return resolveSingle(sheet, kind), nil
	case style.KindRadio:
		s, err := style.ParseRadioState(state)
		if err != nil {
			return nil, err
		}
		return sheet.Radio(s), nil
	case style.KindTextInput:
		s, err := style.ParseTextInputState(state)
		if err != nil {
			return nil, err
		}
		return sheet.TextInput(s), nil
	case style.KindButton:
		s, err := style.ParseButtonState(state)
		if err != nil {
			return nil, err
		}
		return sheet.Button(s), nil
	case style.KindScrollable:
		s, err := style.ParseScrollableState(state)
		if err != nil {
			return nil, err
		}
		return sheet.Scrollable(s), nil
	case style.KindSlider:
		s, err := style.ParseSliderState(state)
		if err != nil {
			return nil, err
		}
		return sheet.Slider(s), nil
	case style.KindCheckbox:
		s, err := style.ParseCheckboxState(state)
		if err != nil {
			return nil, err
		}
		return sheet.Checkbox(s, checked), nil
	default:
		return nil, style.ErrUnknownKind
	}
}

func resolveSingle(sheet StyleSheet, kind style.Kind) any {
	switch kind {
	case style.KindProgressBar:
		return sheet.ProgressBar()
	case style.KindRule:
		return sheet.Rule()
	default:
		return sheet.Container()
	}
}
