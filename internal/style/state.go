package style

import (
	"strings"

	themeerrors "github.com/alexisbeaulieu97/themekit/pkg/errors"
)

// Each widget kind has its own state type. The level field is unexported so the
// exported values below are the only states a caller can name; the zero value
// of every type is its rest state.

// RadioState is the interaction state of a radio button.
type RadioState struct{ level uint8 }

var (
	RadioActive  = RadioState{0}
	RadioHovered = RadioState{1}
)

// TextInputState is the interaction state of a text field.
type TextInputState struct{ level uint8 }

var (
	TextInputActive  = TextInputState{0}
	TextInputFocused = TextInputState{1}
	TextInputHovered = TextInputState{2}
)

// ButtonState is the interaction state of a push button.
type ButtonState struct{ level uint8 }

var (
	ButtonActive  = ButtonState{0}
	ButtonHovered = ButtonState{1}
	ButtonPressed = ButtonState{2}
)

// ScrollableState is the interaction state of a scrollbar.
type ScrollableState struct{ level uint8 }

var (
	ScrollableActive   = ScrollableState{0}
	ScrollableHovered  = ScrollableState{1}
	ScrollableDragging = ScrollableState{2}
)

// SliderState is the interaction state of a slider.
type SliderState struct{ level uint8 }

var (
	SliderActive   = SliderState{0}
	SliderHovered  = SliderState{1}
	SliderDragging = SliderState{2}
)

// CheckboxState is the interaction state of a checkbox. Whether the box is
// checked is passed alongside it.
type CheckboxState struct{ level uint8 }

var (
	CheckboxActive  = CheckboxState{0}
	CheckboxHovered = CheckboxState{1}
)

var (
	radioStateNames      = []string{"active", "hovered"}
	textInputStateNames  = []string{"active", "focused", "hovered"}
	buttonStateNames     = []string{"active", "hovered", "pressed"}
	scrollableStateNames = []string{"active", "hovered", "dragging"}
	sliderStateNames     = []string{"active", "hovered", "dragging"}
	checkboxStateNames   = []string{"active", "hovered"}
	singleStateNames     = []string{"active"}
)

func (s RadioState) String() string      { return radioStateNames[s.level] }
func (s TextInputState) String() string  { return textInputStateNames[s.level] }
func (s ButtonState) String() string     { return buttonStateNames[s.level] }
func (s ScrollableState) String() string { return scrollableStateNames[s.level] }
func (s SliderState) String() string     { return sliderStateNames[s.level] }
func (s CheckboxState) String() string   { return checkboxStateNames[s.level] }

// ParseRadioState maps a state name to its RadioState.
func ParseRadioState(name string) (RadioState, error) {
	level, err := parseLevel(name, radioStateNames)
	return RadioState{level}, err
}

// ParseTextInputState maps a state name to its TextInputState.
func ParseTextInputState(name string) (TextInputState, error) {
	level, err := parseLevel(name, textInputStateNames)
	return TextInputState{level}, err
}

// ParseButtonState maps a state name to its ButtonState.
func ParseButtonState(name string) (ButtonState, error) {
	level, err := parseLevel(name, buttonStateNames)
	return ButtonState{level}, err
}

// ParseScrollableState maps a state name to its ScrollableState.
func ParseScrollableState(name string) (ScrollableState, error) {
	level, err := parseLevel(name, scrollableStateNames)
	return ScrollableState{level}, err
}

// ParseSliderState maps a state name to its SliderState.
func ParseSliderState(name string) (SliderState, error) {
	level, err := parseLevel(name, sliderStateNames)
	return SliderState{level}, err
}

// ParseCheckboxState maps a state name to its CheckboxState.
func ParseCheckboxState(name string) (CheckboxState, error) {
	level, err := parseLevel(name, checkboxStateNames)
	return CheckboxState{level}, err
}

// ParseSingleState accepts the only state of a single-style kind.
func ParseSingleState(name string) error {
	_, err := parseLevel(name, singleStateNames)
	return err
}

// An empty name selects the rest state.
func parseLevel(name string, names []string) (uint8, error) {
	norm := strings.ToLower(strings.TrimSpace(name))
	if norm == "" {
		return 0, nil
	}
	for i, candidate := range names {
		if candidate == norm {
			return uint8(i), nil
		}
	}
	return 0, themeerrors.NewParseError(name, ErrUnknownState)
}
