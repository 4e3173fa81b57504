package theme

import (
	"math/rand/v2"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/themekit/internal/color"
	"github.com/alexisbeaulieu97/themekit/internal/style"
)

var nearWhite = color.Color{R: 0.85, G: 0.85, B: 0.85, A: 1}

func TestDefaultButtonGoldenValues(t *testing.T) {
	t.Parallel()

	btn := Default().Button(style.ButtonActive)
	assert.Equal(t, "#7289DA", btn.Background.Hex())
	assert.Equal(t, float32(1), btn.Background.A)
	assert.Equal(t, color.White, btn.TextColor)
	assert.Equal(t, float32(0), btn.BorderWidth)
	assert.Equal(t, float32(3), btn.BorderRadius)
	assert.Equal(t, color.Transparent, btn.BorderColor)
	assert.Equal(t, style.Vector{}, btn.ShadowOffset)
}

func TestButtonChain(t *testing.T) {
	t.Parallel()

	theme := Default()
	colors := theme.Colors()

	active := theme.Button(style.ButtonActive)
	hovered := theme.Button(style.ButtonHovered)
	pressed := theme.Button(style.ButtonPressed)

	assert.Equal(t, style.Apply(active, theme.buttonHover()), hovered)
	assert.Equal(t, colors.Hovered(), hovered.Background)
	assert.Equal(t, colors.Text(), hovered.TextColor)

	assert.Equal(t, float32(1), pressed.BorderWidth)
	assert.Equal(t, color.White, pressed.BorderColor)

	withoutBorder := pressed
	withoutBorder.BorderWidth = hovered.BorderWidth
	withoutBorder.BorderColor = hovered.BorderColor
	assert.Equal(t, hovered, withoutBorder, "pressed may only change the border")
}

func TestRadioStates(t *testing.T) {
	t.Parallel()

	theme := Default()
	colors := theme.Colors()

	active := theme.Radio(style.RadioActive)
	assert.Equal(t, style.Radio{
		Background:  colors.Surface(),
		DotColor:    colors.Active(),
		BorderWidth: 1,
		BorderColor: colors.Active(),
		TextColor:   colors.Text(),
	}, active)

	hovered := theme.Radio(style.RadioHovered)
	assert.Equal(t, colors.Surface().WithAlpha(0.5), hovered.Background)
	assert.Equal(t, style.Apply(active, theme.radioHover()), hovered)

	hovered.Background = active.Background
	assert.Equal(t, active, hovered)
}

func TestTextInputStates(t *testing.T) {
	t.Parallel()

	theme := Default()
	colors := theme.Colors()

	active := theme.TextInput(style.TextInputActive)
	assert.Equal(t, style.TextInput{
		Background:   colors.Surface(),
		BorderRadius: 2,
		BorderWidth:  0,
		BorderColor:  color.Transparent,
	}, active)

	focused := theme.TextInput(style.TextInputFocused)
	assert.Equal(t, style.Apply(active, theme.textInputFocus()), focused)
	assert.Equal(t, float32(1), focused.BorderWidth)
	assert.Equal(t, colors.Accent(), focused.BorderColor)

	hovered := theme.TextInput(style.TextInputHovered)
	assert.Equal(t, style.Apply(focused, theme.textInputHover()), hovered)
	assert.Equal(t, float32(1), hovered.BorderWidth)
	assert.Equal(t, colors.Accent().WithAlpha(0.3), hovered.BorderColor)
	assert.Equal(t, active.Background, hovered.Background)
	assert.Equal(t, active.BorderRadius, hovered.BorderRadius)
}

func TestTextInputColors(t *testing.T) {
	t.Parallel()

	theme := Default()
	colors := theme.TextInputColors()
	assert.Equal(t, color.FromRGB(0.4, 0.4, 0.4), colors.Placeholder)
	assert.Equal(t, color.White, colors.Value)
	assert.Equal(t, theme.Colors().Accent(), colors.Selection)
}

func TestScrollableStates(t *testing.T) {
	t.Parallel()

	theme := Default()
	colors := theme.Colors()

	active := theme.Scrollable(style.ScrollableActive)
	assert.Equal(t, colors.Surface(), active.Background)
	assert.Equal(t, float32(2), active.BorderRadius)
	assert.Equal(t, style.Scroller{Color: colors.Active(), BorderRadius: 2, BorderColor: color.Transparent}, active.Scroller)

	hovered := theme.Scrollable(style.ScrollableHovered)
	assert.Equal(t, style.Apply(active, theme.scrollableHover()), hovered)
	assert.Equal(t, colors.Surface().WithAlpha(0.5), hovered.Background)
	assert.Equal(t, colors.Hovered(), hovered.Scroller.Color)
	assert.Equal(t, active.Scroller.BorderRadius, hovered.Scroller.BorderRadius)

	dragging := theme.Scrollable(style.ScrollableDragging)
	assert.Equal(t, style.Apply(hovered, scrollableDrag()), dragging)
	assert.Equal(t, nearWhite, dragging.Scroller.Color)
	assert.Equal(t, hovered.Background, dragging.Background, "dragging inherits the hovered track")
}

func TestSliderStates(t *testing.T) {
	t.Parallel()

	theme := Default()
	colors := theme.Colors()

	active := theme.Slider(style.SliderActive)
	assert.Equal(t, [2]color.Color{colors.Active(), colors.Active().WithAlpha(0.1)}, active.RailColors)
	radius, ok := active.Handle.Shape.Circle()
	require.True(t, ok)
	assert.Equal(t, float32(9), radius)
	assert.Equal(t, colors.Active(), active.Handle.Color)
	assert.Equal(t, float32(0), active.Handle.BorderWidth)
	assert.Equal(t, color.Transparent, active.Handle.BorderColor)

	hovered := theme.Slider(style.SliderHovered)
	assert.Equal(t, style.Apply(active, theme.sliderHover()), hovered)
	assert.Equal(t, colors.Hovered(), hovered.Handle.Color)

	dragging := theme.Slider(style.SliderDragging)
	assert.Equal(t, style.Apply(hovered, sliderDrag()), dragging)
	assert.Equal(t, nearWhite, dragging.Handle.Color)
	assert.Equal(t, active.RailColors, dragging.RailColors)
}

func TestCheckboxBranch(t *testing.T) {
	t.Parallel()

	theme := Default()
	colors := theme.Colors()

	checked := theme.Checkbox(style.CheckboxActive, true)
	unchecked := theme.Checkbox(style.CheckboxActive, false)
	assert.Equal(t, colors.Active(), checked.Background)
	assert.Equal(t, colors.Surface(), unchecked.Background)

	for _, c := range []style.Checkbox{checked, unchecked} {
		assert.Equal(t, colors.Text(), c.CheckmarkColor)
		assert.Equal(t, colors.Text(), c.TextColor)
		assert.Equal(t, float32(2), c.BorderRadius)
		assert.Equal(t, float32(1), c.BorderWidth)
		assert.Equal(t, colors.Active(), c.BorderColor)
	}

	hoveredChecked := theme.Checkbox(style.CheckboxHovered, true)
	hoveredUnchecked := theme.Checkbox(style.CheckboxHovered, false)
	assert.Equal(t, colors.Active().WithAlpha(0.8), hoveredChecked.Background)
	assert.Equal(t, colors.Surface().WithAlpha(0.8), hoveredUnchecked.Background)
	assert.Equal(t, style.Apply(checked, theme.checkboxHover(true)), hoveredChecked)
	assert.Equal(t, style.Apply(unchecked, theme.checkboxHover(false)), hoveredUnchecked)
}

func TestSingleStyleKinds(t *testing.T) {
	t.Parallel()

	theme := Default()
	colors := theme.Colors()

	assert.Equal(t, style.Container{
		Background:  colors.Background(),
		TextColor:   colors.Text(),
		BorderColor: color.Transparent,
	}, theme.Container())

	assert.Equal(t, style.ProgressBar{
		Background:   colors.Surface(),
		Bar:          colors.Active(),
		BorderRadius: 10,
	}, theme.ProgressBar())

	rule := theme.Rule()
	assert.Equal(t, colors.Surface(), rule.Color)
	assert.Equal(t, uint16(2), rule.Width)
	assert.Equal(t, float32(1), rule.Radius)
	assert.Equal(t, style.FillPadded(15), rule.FillMode)
}

func TestDragColourIgnoresPalette(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(7, 11))
	randomColour := func() *color.Color {
		return Ptr(color.Color{R: rng.Float32(), G: rng.Float32(), B: rng.Float32(), A: rng.Float32()})
	}

	palettes := []PaletteSpec{
		Default().Colors().Spec(),
		{Surface: Ptr(color.Black), Background: Ptr(color.Black), Accent: Ptr(color.Black), Active: Ptr(color.Black), Hovered: Ptr(color.Black), Text: Ptr(color.Black)},
		{Surface: Ptr(nearWhite), Background: Ptr(nearWhite), Accent: Ptr(nearWhite), Active: Ptr(nearWhite), Hovered: Ptr(nearWhite), Text: Ptr(nearWhite)},
	}
	for i := 0; i < 32; i++ {
		palettes = append(palettes, PaletteSpec{
			Surface: randomColour(), Background: randomColour(), Accent: randomColour(),
			Active: randomColour(), Hovered: randomColour(), Text: randomColour(),
		})
	}

	for _, spec := range palettes {
		colors, err := NewPalette(spec)
		require.NoError(t, err)
		theme, err := NewTheme("Random", "", false, colors)
		require.NoError(t, err)

		assert.Equal(t, nearWhite, theme.Slider(style.SliderDragging).Handle.Color)
		assert.Equal(t, nearWhite, theme.Scrollable(style.ScrollableDragging).Scroller.Color)
	}
}

func TestResolutionIsDeterministic(t *testing.T) {
	t.Parallel()

	theme := Default()
	for _, kind := range style.Kinds() {
		states := kind.States()
		if states == nil {
			states = []string{""}
		}
		for _, state := range states {
			for _, checked := range []bool{false, true} {
				first, err := ResolveNamed(theme, kind, state, checked)
				require.NoError(t, err)
				second, err := ResolveNamed(theme, kind, state, checked)
				require.NoError(t, err)
				assert.Equal(t, first, second, "%s/%s", kind, state)
			}
		}
	}
}

func TestResolutionIsTotal(t *testing.T) {
	t.Parallel()

	// Fields allowed to be zero by design: widths, radii and offsets that the
	// style fixes at zero, and deliberately transparent borders.
	zeroAllowed := map[string]bool{
		"BorderWidth":  true,
		"BorderRadius": true,
		"ShadowOffset": true,
		"BorderColor":  true,
		"FillMode":     true,
		"Shape":        true,
	}

	theme := Default()
	for _, kind := range style.Kinds() {
		states := kind.States()
		if states == nil {
			states = []string{""}
		}
		for _, state := range states {
			record, err := ResolveNamed(theme, kind, state, true)
			require.NoError(t, err)
			assertPopulated(t, reflect.ValueOf(record), kind.String()+"/"+state, zeroAllowed)
		}
	}
}

func assertPopulated(t *testing.T, v reflect.Value, path string, zeroAllowed map[string]bool) {
	t.Helper()

	for i := 0; i < v.NumField(); i++ {
		field := v.Type().Field(i)
		value := v.Field(i)
		if value.Kind() == reflect.Struct && field.Type != reflect.TypeOf(color.Color{}) && field.IsExported() && !zeroAllowed[field.Name] {
			assertPopulated(t, value, path+"."+field.Name, zeroAllowed)
			continue
		}
		if zeroAllowed[field.Name] {
			continue
		}
		assert.False(t, value.IsZero(), "%s.%s is unset", path, field.Name)
	}
}

func TestResolutionDoesNotMutateTheme(t *testing.T) {
	t.Parallel()

	theme := Default()
	btn := theme.Button(style.ButtonActive)
	btn.Background = color.Black

	assert.Equal(t, Default(), theme)
	assert.Equal(t, theme.Colors().Active(), theme.Button(style.ButtonActive).Background)
}
