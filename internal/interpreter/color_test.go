package interpreter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColorFromRGB(t *testing.T) {
	tests := []struct {
		rgb  [3]uint8
		want Color
		ok   bool
	}{
		{[3]uint8{0xff, 0xc0, 0xc0}, Chromatic(Red, Light), true},
		{[3]uint8{0xff, 0x00, 0x00}, Chromatic(Red, Normal), true},
		{[3]uint8{0xc0, 0x00, 0xc0}, Chromatic(Magenta, Dark), true},
		{[3]uint8{0x00, 0xc0, 0xc0}, Chromatic(Cyan, Dark), true},
		{[3]uint8{0xff, 0xff, 0xff}, White, true},
		{[3]uint8{0x00, 0x00, 0x00}, Black, true},
		{[3]uint8{0x12, 0x34, 0x56}, Black, false},
	}
	for _, tt := range tests {
		got, ok := ColorFromRGB(tt.rgb[0], tt.rgb[1], tt.rgb[2])
		assert.Equal(t, tt.ok, ok, "rgb %x", tt.rgb)
		if tt.ok {
			assert.Equal(t, tt.want, got, "rgb %x", tt.rgb)
		}
	}
}

func TestColorComponents(t *testing.T) {
	c := Chromatic(Blue, Dark)
	assert.True(t, c.IsChromatic())
	assert.Equal(t, Blue, c.Hue())
	assert.Equal(t, Dark, c.Lightness())
	assert.Equal(t, "DARK BLUE", c.String())
	assert.False(t, White.IsChromatic())
	assert.False(t, Black.IsChromatic())
}

func TestColorCodes(t *testing.T) {
	for l := Light; l <= Dark; l++ {
		for h := Red; h <= Magenta; h++ {
			c := Chromatic(h, l)
			got, err := ParseColorCode(c.Code())
			require.NoError(t, err)
			assert.Equal(t, c, got)
		}
	}
	assert.Equal(t, "nR", Chromatic(Red, Normal).Code())
	assert.Equal(t, "lM", Chromatic(Magenta, Light).Code())
	assert.Equal(t, "W", White.Code())
	assert.Equal(t, "K", Black.Code())

	for _, bad := range []string{"", "x", "nX", "qR", "nRR"} {
		_, err := ParseColorCode(bad)
		assert.Error(t, err, bad)
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		from, to Color
		want     Opcode
	}{
		{Chromatic(Red, Normal), Chromatic(Red, Normal), OpPass},
		{Chromatic(Red, Light), Chromatic(Red, Normal), OpPush},
		{Chromatic(Red, Normal), Chromatic(Red, Light), OpPop},
		{Chromatic(Red, Dark), Chromatic(Yellow, Dark), OpAdd},
		{Chromatic(Magenta, Dark), Chromatic(Red, Light), OpSubtract},
		{Chromatic(Yellow, Light), Chromatic(Green, Dark), OpMultiply},
		{Chromatic(Blue, Normal), Chromatic(Red, Normal), OpDivide},
		{Chromatic(Green, Light), Chromatic(Blue, Normal), OpModulo},
		{Chromatic(Cyan, Dark), Chromatic(Magenta, Normal), OpNot},
		{Chromatic(Red, Normal), Chromatic(Cyan, Normal), OpGreater},
		{Chromatic(Yellow, Light), Chromatic(Blue, Normal), OpPointer},
		{Chromatic(Magenta, Light), Chromatic(Green, Dark), OpSwitch},
		{Chromatic(Red, Normal), Chromatic(Blue, Normal), OpDuplicate},
		{Chromatic(Cyan, Light), Chromatic(Yellow, Normal), OpRoll},
		{Chromatic(Red, Normal), Chromatic(Blue, Light), OpInNumber},
		{Chromatic(Red, Normal), Chromatic(Magenta, Normal), OpInChar},
		{Chromatic(Yellow, Dark), Chromatic(Red, Light), OpOutNumber},
		{Chromatic(Magenta, Normal), Chromatic(Blue, Light), OpOutChar},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Decode(tt.from, tt.to), "%v -> %v", tt.from, tt.to)
	}
}
