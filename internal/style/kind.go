package style

import (
	"errors"
	"strings"

	themeerrors "github.com/alexisbeaulieu97/themekit/pkg/errors"
)

var (
	// ErrUnknownKind is returned when a widget kind name is not recognised.
	ErrUnknownKind = errors.New("unknown widget kind")
	// ErrUnknownState is returned when a state name is outside a kind's states.
	ErrUnknownState = errors.New("unknown interaction state")
)

// Kind identifies a widget family a theme can style.
type Kind int

const (
	KindContainer Kind = iota
	KindRadio
	KindTextInput
	KindButton
	KindScrollable
	KindSlider
	KindProgressBar
	KindCheckbox
	KindRule
)

var kindNames = [...]string{
	KindContainer:   "container",
	KindRadio:       "radio",
	KindTextInput:   "text_input",
	KindButton:      "button",
	KindScrollable:  "scrollable",
	KindSlider:      "slider",
	KindProgressBar: "progress_bar",
	KindCheckbox:    "checkbox",
	KindRule:        "rule",
}

// Kinds lists every widget kind in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, len(kindNames))
	for i := range kindNames {
		kinds[i] = Kind(i)
	}
	return kinds
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// ParseKind maps a name such as "button" or "text-input" to its Kind.
func ParseKind(name string) (Kind, error) {
	norm := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
	for i, candidate := range kindNames {
		if candidate == norm {
			return Kind(i), nil
		}
	}
	return 0, themeerrors.NewParseError(name, ErrUnknownKind)
}

// States lists the interaction state names the kind accepts. Single-style
// kinds return nil.
func (k Kind) States() []string {
	var names []string
	switch k {
	case KindRadio:
		names = radioStateNames
	case KindTextInput:
		names = textInputStateNames
	case KindButton:
		names = buttonStateNames
	case KindScrollable:
		names = scrollableStateNames
	case KindSlider:
		names = sliderStateNames
	case KindCheckbox:
		names = checkboxStateNames
	default:
		return nil
	}
	return append([]string(nil), names...)
}

// Checkable reports whether the kind carries a checked overlay.
func (k Kind) Checkable() bool {
	return k == KindCheckbox
}
