// Package style defines the resolved drawing records a theme produces for each
// widget kind, together with the closed set of interaction states each kind
// accepts.
//
// Records are plain values. A host receives a fresh copy on every resolution
// and may discard it as soon as the widget is drawn.
package style

import (
	"github.com/alexisbeaulieu97/themekit/internal/color"
)

// Vector is a 2D offset in logical pixels.
type Vector struct {
	X float32 `json:"x" yaml:"x"`
	Y float32 `json:"y" yaml:"y"`
}

// Container styles a plain box.
type Container struct {
	Background   color.Color `json:"background" yaml:"background"`
	TextColor    color.Color `json:"text_color" yaml:"text_color"`
	BorderRadius float32     `json:"border_radius" yaml:"border_radius"`
	BorderWidth  float32     `json:"border_width" yaml:"border_width"`
	BorderColor  color.Color `json:"border_color" yaml:"border_color"`
}

// Radio styles a radio button and its dot.
type Radio struct {
	Background  color.Color `json:"background" yaml:"background"`
	DotColor    color.Color `json:"dot_color" yaml:"dot_color"`
	BorderWidth float32     `json:"border_width" yaml:"border_width"`
	BorderColor color.Color `json:"border_color" yaml:"border_color"`
	TextColor   color.Color `json:"text_color" yaml:"text_color"`
}

// TextInput styles the frame of a text field.
type TextInput struct {
	Background   color.Color `json:"background" yaml:"background"`
	BorderRadius float32     `json:"border_radius" yaml:"border_radius"`
	BorderWidth  float32     `json:"border_width" yaml:"border_width"`
	BorderColor  color.Color `json:"border_color" yaml:"border_color"`
}

// TextInputColors are the state-independent colours of a text field's content.
type TextInputColors struct {
	Placeholder color.Color `json:"placeholder" yaml:"placeholder"`
	Value       color.Color `json:"value" yaml:"value"`
	Selection   color.Color `json:"selection" yaml:"selection"`
}

// Button styles a push button.
type Button struct {
	ShadowOffset Vector      `json:"shadow_offset" yaml:"shadow_offset"`
	Background   color.Color `json:"background" yaml:"background"`
	BorderRadius float32     `json:"border_radius" yaml:"border_radius"`
	BorderWidth  float32     `json:"border_width" yaml:"border_width"`
	BorderColor  color.Color `json:"border_color" yaml:"border_color"`
	TextColor    color.Color `json:"text_color" yaml:"text_color"`
}

// Scroller styles the draggable thumb of a scrollbar.
type Scroller struct {
	Color        color.Color `json:"color" yaml:"color"`
	BorderRadius float32     `json:"border_radius" yaml:"border_radius"`
	BorderWidth  float32     `json:"border_width" yaml:"border_width"`
	BorderColor  color.Color `json:"border_color" yaml:"border_color"`
}

// Scrollbar styles a scrollable area's track and thumb.
type Scrollbar struct {
	Background   color.Color `json:"background" yaml:"background"`
	BorderRadius float32     `json:"border_radius" yaml:"border_radius"`
	BorderWidth  float32     `json:"border_width" yaml:"border_width"`
	BorderColor  color.Color `json:"border_color" yaml:"border_color"`
	Scroller     Scroller    `json:"scroller" yaml:"scroller"`
}

// Handle styles the knob of a slider.
type Handle struct {
	Shape       HandleShape `json:"shape" yaml:"shape"`
	Color       color.Color `json:"color" yaml:"color"`
	BorderWidth float32     `json:"border_width" yaml:"border_width"`
	BorderColor color.Color `json:"border_color" yaml:"border_color"`
}

// Slider styles a slider rail and handle. RailColors holds the filled and the
// remaining part of the rail, in that order.
type Slider struct {
	RailColors [2]color.Color `json:"rail_colors" yaml:"rail_colors"`
	Handle     Handle         `json:"handle" yaml:"handle"`
}

// ProgressBar styles a progress indicator.
type ProgressBar struct {
	Background   color.Color `json:"background" yaml:"background"`
	Bar          color.Color `json:"bar" yaml:"bar"`
	BorderRadius float32     `json:"border_radius" yaml:"border_radius"`
}

// Checkbox styles a checkbox square and its label.
type Checkbox struct {
	Background     color.Color `json:"background" yaml:"background"`
	CheckmarkColor color.Color `json:"checkmark_color" yaml:"checkmark_color"`
	BorderRadius   float32     `json:"border_radius" yaml:"border_radius"`
	BorderWidth    float32     `json:"border_width" yaml:"border_width"`
	BorderColor    color.Color `json:"border_color" yaml:"border_color"`
	TextColor      color.Color `json:"text_color" yaml:"text_color"`
}

// Rule styles a horizontal or vertical divider.
type Rule struct {
	Color    color.Color `json:"color" yaml:"color"`
	Width    uint16      `json:"width" yaml:"width"`
	Radius   float32     `json:"radius" yaml:"radius"`
	FillMode FillMode    `json:"fill_mode" yaml:"fill_mode"`
}
