package color

import (
	"encoding/json"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	themeerrors "github.com/alexisbeaulieu97/themekit/pkg/errors"
)

func TestFromRGB8(t *testing.T) {
	t.Parallel()

	c := FromRGB8(0x72, 0x89, 0xDA)
	assert.Equal(t, float32(0x72)/255, c.R)
	assert.Equal(t, float32(0x89)/255, c.G)
	assert.Equal(t, float32(0xDA)/255, c.B)
	assert.Equal(t, float32(1), c.A)
	assert.Equal(t, "#7289DA", c.Hex())
}

func TestWithAlphaKeepsChannels(t *testing.T) {
	t.Parallel()

	base := FromRGB8(0x40, 0x44, 0x4B)
	faded := base.WithAlpha(0.5)

	assert.Equal(t, base.R, faded.R)
	assert.Equal(t, base.G, faded.G)
	assert.Equal(t, base.B, faded.B)
	assert.Equal(t, float32(0.5), faded.A)
	assert.Equal(t, float32(1), base.A, "original value must not change")
}

func TestParseHex(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  Color
	}{
		{name: "with hash", input: "#6FFFE9", want: FromRGB8(0x6F, 0xFF, 0xE9)},
		{name: "without hash", input: "36393f", want: FromRGB8(0x36, 0x39, 0x3F)},
		{name: "with alpha", input: "#FFFFFF00", want: White.WithAlpha(0)},
		{name: "padded", input: "  #000000 ", want: Black},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseHex(tt.input)
			require.NoError(t, err)
			assert.InDelta(t, tt.want.R, got.R, 1e-6)
			assert.InDelta(t, tt.want.G, got.G, 1e-6)
			assert.InDelta(t, tt.want.B, got.B, 1e-6)
			assert.InDelta(t, tt.want.A, got.A, 1e-6)
		})
	}
}

func TestParseHexRejectsMalformedInput(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"", "#12345", "#GGHHII", "#112233ZZ", "#1122334455"} {
		_, err := ParseHex(input)
		var parseErr *themeerrors.ParseError
		require.ErrorAs(t, err, &parseErr, "input %q", input)
		assert.Equal(t, input, parseErr.Input)
	}
}

func TestHexA(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "#FFFFFFFF", White.HexA())
	assert.Equal(t, "#00000000", Transparent.HexA())
	assert.Equal(t, "#6FFFE94D", FromRGB8(0x6F, 0xFF, 0xE9).WithAlpha(0.3).HexA())
}

func TestMarshalTextInJSON(t *testing.T) {
	t.Parallel()

	payload := struct {
		Fill Color `json:"fill"`
	}{Fill: FromRGB8(0x40, 0x44, 0x4B).WithAlpha(0.5)}

	data, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{"fill":"#40444B80"}`, string(data))
}

func TestOverBlendsTowardsBackdrop(t *testing.T) {
	t.Parallel()

	backdrop := Black
	assert.Equal(t, White, White.Over(backdrop))
	assert.Equal(t, backdrop, Transparent.Over(backdrop))

	half := White.WithAlpha(0.5).Over(backdrop)
	assert.InDelta(t, 0.5, half.R, 1e-6)
	assert.InDelta(t, 0.5, half.G, 1e-6)
	assert.InDelta(t, 0.5, half.B, 1e-6)
	assert.Equal(t, float32(1), half.A)
}

func TestLipgloss(t *testing.T) {
	t.Parallel()

	assert.Equal(t, lipgloss.Color("#677BC4"), FromRGB8(0x67, 0x7B, 0xC4).Lipgloss())
}
