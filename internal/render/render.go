// Package render draws resolved style records as terminal swatches so a theme
// can be inspected without a graphical toolkit.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/themekit/internal/color"
	"github.com/alexisbeaulieu97/themekit/internal/style"
	"github.com/alexisbeaulieu97/themekit/internal/theme"
)

const defaultWidth = 40

// Options configures a Swatches renderer.
type Options struct {
	// Width is the number of cells wide bars and rules span.
	Width int
	// Output selects the colour profile. Nil uses lipgloss' default renderer.
	Output io.Writer
}

// Swatches renders the records of one style sheet.
type Swatches struct {
	sheet    theme.StyleSheet
	renderer *lipgloss.Renderer
	backdrop color.Color
	width    int
}

// New returns a renderer for sheet. Translucent colours are composited onto
// the sheet's container background.
func New(sheet theme.StyleSheet, opts Options) *Swatches {
	width := opts.Width
	if width <= 0 {
		width = defaultWidth
	}
	renderer := lipgloss.DefaultRenderer()
	if opts.Output != nil {
		renderer = lipgloss.NewRenderer(opts.Output)
	}
	return &Swatches{
		sheet:    sheet,
		renderer: renderer,
		backdrop: sheet.Container().Background.Over(color.Black),
		width:    width,
	}
}

// Width reports the span used for bars and rules.
func (s *Swatches) Width() int {
	return s.width
}

// Kind resolves kind in state against the sheet and renders the record.
func (s *Swatches) Kind(kind style.Kind, state string, checked bool) (string, error) {
	record, err := theme.ResolveNamed(s.sheet, kind, state, checked)
	if err != nil {
		return "", err
	}

	switch r := record.(type) {
	case style.Container:
		return s.container(r), nil
	case style.Button:
		return s.button(r), nil
	case style.Radio:
		return s.radio(r), nil
	case style.Checkbox:
		return s.checkbox(r, checked), nil
	case style.TextInput:
		// ResolveNamed already accepted the name.
		st, _ := style.ParseTextInputState(state)
		return s.textInput(r, s.sheet.TextInputColors(), st), nil
	case style.Scrollbar:
		return s.scrollbar(r), nil
	case style.Slider:
		return s.slider(r), nil
	case style.ProgressBar:
		return s.progressBar(r), nil
	case style.Rule:
		return s.rule(r), nil
	default:
		return "", fmt.Errorf("render: unsupported record %T", record)
	}
}

// Preview renders every kind in every state, one kind per block.
func (s *Swatches) Preview() (string, error) {
	title := s.style().Bold(true).Foreground(s.flat(s.sheet.Container().TextColor))
	label := s.style().Faint(true)

	blocks := []string{title.Render(s.sheet.Name())}
	for _, kind := range style.Kinds() {
		states := kind.States()
		if states == nil {
			states = []string{""}
		}

		rows := []string{label.Render(kind.String())}
		for _, state := range states {
			checks := []bool{false}
			if kind.Checkable() {
				checks = []bool{false, true}
			}
			for _, checked := range checks {
				swatch, err := s.Kind(kind, state, checked)
				if err != nil {
					return "", err
				}
				rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Center, label.Render(caption(state, kind.Checkable(), checked)), " ", swatch))
			}
		}
		blocks = append(blocks, lipgloss.JoinVertical(lipgloss.Left, rows...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, blocks...), nil
}

func caption(state string, checkable, checked bool) string {
	if state == "" {
		state = "default"
	}
	if checkable {
		if checked {
			state += "+checked"
		} else {
			state += "+unchecked"
		}
	}
	return fmt.Sprintf("%-20s", state)
}

func (s *Swatches) style() lipgloss.Style {
	return s.renderer.NewStyle()
}

// flat composites c onto the backdrop and drops alpha.
func (s *Swatches) flat(c color.Color) lipgloss.Color {
	return c.Over(s.backdrop).Lipgloss()
}

func (s *Swatches) bordered(base lipgloss.Style, width, radius float32, c color.Color) lipgloss.Style {
	switch {
	case width <= 0:
		return base
	case width >= 2:
		return base.Border(lipgloss.ThickBorder()).BorderForeground(s.flat(c))
	case radius > 0:
		return base.Border(lipgloss.RoundedBorder()).BorderForeground(s.flat(c))
	default:
		return base.Border(lipgloss.NormalBorder()).BorderForeground(s.flat(c))
	}
}

func (s *Swatches) container(c style.Container) string {
	box := s.style().
		Background(s.flat(c.Background)).
		Foreground(s.flat(c.TextColor)).
		Width(s.width).
		Padding(0, 1)
	return s.bordered(box, c.BorderWidth, c.BorderRadius, c.BorderColor).Render("Container")
}

func (s *Swatches) button(b style.Button) string {
	btn := s.style().
		Background(s.flat(b.Background)).
		Foreground(s.flat(b.TextColor)).
		Padding(0, 2)
	return s.bordered(btn, b.BorderWidth, b.BorderRadius, b.BorderColor).Render("Button")
}

func (s *Swatches) radio(r style.Radio) string {
	ring := s.style().Background(s.flat(r.Background)).Foreground(s.flat(r.BorderColor))
	dot := s.style().Background(s.flat(r.Background)).Foreground(s.flat(r.DotColor))
	text := s.style().Foreground(s.flat(r.TextColor))
	return ring.Render("(") + dot.Render("●") + ring.Render(")") + " " + text.Render("Radio")
}

func (s *Swatches) checkbox(c style.Checkbox, checked bool) string {
	frame := s.style().Background(s.flat(c.Background)).Foreground(s.flat(c.BorderColor))
	mark := s.style().Background(s.flat(c.Background)).Foreground(s.flat(c.CheckmarkColor))
	text := s.style().Foreground(s.flat(c.TextColor))

	glyph := " "
	if checked {
		glyph = "✓"
	}
	return frame.Render("[") + mark.Render(glyph) + frame.Render("]") + " " + text.Render("Checkbox")
}

func (s *Swatches) textInput(t style.TextInput, colors style.TextInputColors, state style.TextInputState) string {
	field := s.style().
		Background(s.flat(t.Background)).
		Width(s.width).
		Padding(0, 1)
	field = s.bordered(field, t.BorderWidth, t.BorderRadius, t.BorderColor)

	if state == style.TextInputActive {
		return field.Foreground(s.flat(colors.Placeholder)).Render("Type something...")
	}
	selected := s.style().Background(s.flat(colors.Selection)).Foreground(s.flat(colors.Value))
	value := s.style().Background(s.flat(t.Background)).Foreground(s.flat(colors.Value))
	return field.Render(selected.Render("theme") + value.Render("kit"))
}

func (s *Swatches) scrollbar(b style.Scrollbar) string {
	thumb := s.width / 3
	track := s.style().Background(s.flat(b.Background)).Render(strings.Repeat(" ", s.width-thumb))
	scroller := s.style().Background(s.flat(b.Scroller.Color)).Render(strings.Repeat(" ", thumb))
	return scroller + track
}

func (s *Swatches) slider(sl style.Slider) string {
	half := s.width / 2
	filled := s.style().Foreground(s.flat(sl.RailColors[0])).Render(strings.Repeat("━", half))
	rest := s.style().Foreground(s.flat(sl.RailColors[1])).Render(strings.Repeat("━", s.width-half-1))

	glyph := "●"
	if _, _, ok := sl.Handle.Shape.Rectangle(); ok {
		glyph = "█"
	}
	handle := s.style().Foreground(s.flat(sl.Handle.Color)).Render(glyph)
	return filled + handle + rest
}

// progressFraction is the share of the bar drawn as completed.
const progressFraction = 0.6

func (s *Swatches) progressBar(p style.ProgressBar) string {
	done := int(float64(s.width) * progressFraction)
	bar := s.style().Background(s.flat(p.Bar)).Render(strings.Repeat(" ", done))
	rest := s.style().Background(s.flat(p.Background)).Render(strings.Repeat(" ", s.width-done))
	return bar + rest
}

func (s *Swatches) rule(r style.Rule) string {
	offset, length := r.FillMode.Fill(float32(s.width))
	glyph := "─"
	if r.Width >= 2 {
		glyph = "━"
	}
	line := s.style().Foreground(s.flat(r.Color)).Render(strings.Repeat(glyph, int(length)))
	return strings.Repeat(" ", int(offset)) + line
}
