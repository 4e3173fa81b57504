package style

import (
	"encoding/json"
	"math"
)

type handleShapeKind uint8

const (
	handleCircle handleShapeKind = iota
	handleRectangle
)

// HandleShape is either a circle or a rounded rectangle.
type HandleShape struct {
	kind         handleShapeKind
	radius       float32
	width        uint16
	borderRadius float32
}

// CircleHandle returns a circular handle with the given radius.
func CircleHandle(radius float32) HandleShape {
	return HandleShape{kind: handleCircle, radius: radius}
}

// RectangleHandle returns a rectangular handle.
func RectangleHandle(width uint16, borderRadius float32) HandleShape {
	return HandleShape{kind: handleRectangle, width: width, borderRadius: borderRadius}
}

// Circle reports the radius when the shape is a circle.
func (s HandleShape) Circle() (radius float32, ok bool) {
	if s.kind != handleCircle {
		return 0, false
	}
	return s.radius, true
}

// Rectangle reports the geometry when the shape is a rectangle.
func (s HandleShape) Rectangle() (width uint16, borderRadius float32, ok bool) {
	if s.kind != handleRectangle {
		return 0, 0, false
	}
	return s.width, s.borderRadius, true
}

type handleShapeView struct {
	Kind         string  `json:"kind" yaml:"kind"`
	Radius       float32 `json:"radius,omitempty" yaml:"radius,omitempty"`
	Width        uint16  `json:"width,omitempty" yaml:"width,omitempty"`
	BorderRadius float32 `json:"border_radius,omitempty" yaml:"border_radius,omitempty"`
}

func (s HandleShape) view() handleShapeView {
	if s.kind == handleRectangle {
		return handleShapeView{Kind: "rectangle", Width: s.width, BorderRadius: s.borderRadius}
	}
	return handleShapeView{Kind: "circle", Radius: s.radius}
}

// MarshalJSON implements json.Marshaler.
func (s HandleShape) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.view())
}

// MarshalYAML implements yaml.Marshaler.
func (s HandleShape) MarshalYAML() (any, error) {
	return s.view(), nil
}

type fillModeKind uint8

const (
	fillFull fillModeKind = iota
	fillPercent
	fillPadded
	fillAsymmetric
)

// FillMode controls how much of the available space a rule occupies.
type FillMode struct {
	kind    fillModeKind
	percent float32
	first   uint16
	second  uint16
}

// FillFull spans the whole space.
func FillFull() FillMode {
	return FillMode{kind: fillFull}
}

// FillPercent spans a centred percentage of the space.
func FillPercent(percent float32) FillMode {
	return FillMode{kind: fillPercent, percent: percent}
}

// FillPadded leaves the same padding on both ends.
func FillPadded(padding uint16) FillMode {
	return FillMode{kind: fillPadded, first: padding, second: padding}
}

// FillAsymmetric leaves distinct padding on the leading and trailing ends.
func FillAsymmetric(first, second uint16) FillMode {
	return FillMode{kind: fillAsymmetric, first: first, second: second}
}

// Padding reports the symmetric padding when the mode is FillPadded.
func (m FillMode) Padding() (uint16, bool) {
	if m.kind != fillPadded {
		return 0, false
	}
	return m.first, true
}

// Fill returns the offset and length of the line inside space.
func (m FillMode) Fill(space float32) (offset, length float32) {
	switch m.kind {
	case fillPercent:
		if m.percent >= 100 {
			return 0, space
		}
		length = float32(math.Round(float64(space * m.percent / 100)))
		return float32(math.Round(float64((space - length) / 2))), length
	case fillPadded:
		if m.first == 0 {
			return 0, space
		}
		padding := float32(m.first)
		return padding, max(space-2*padding, 0)
	case fillAsymmetric:
		first, second := float32(m.first), float32(m.second)
		return first, max(space-first-second, 0)
	default:
		return 0, space
	}
}

type fillModeView struct {
	Kind    string  `json:"kind" yaml:"kind"`
	Percent float32 `json:"percent,omitempty" yaml:"percent,omitempty"`
	First   uint16  `json:"first,omitempty" yaml:"first,omitempty"`
	Second  uint16  `json:"second,omitempty" yaml:"second,omitempty"`
}

func (m FillMode) view() fillModeView {
	switch m.kind {
	case fillPercent:
		return fillModeView{Kind: "percent", Percent: m.percent}
	case fillPadded:
		return fillModeView{Kind: "padded", First: m.first, Second: m.second}
	case fillAsymmetric:
		return fillModeView{Kind: "asymmetric_padding", First: m.first, Second: m.second}
	default:
		return fillModeView{Kind: "full"}
	}
}

// MarshalJSON implements json.Marshaler.
func (m FillMode) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.view())
}

// MarshalYAML implements yaml.Marshaler.
func (m FillMode) MarshalYAML() (any, error) {
	return m.view(), nil
}
