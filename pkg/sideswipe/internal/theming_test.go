package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/veandco/go-sdl2/sdl"
)

func TestHexToColor(t *testing.T) {
	assert.Equal(t, sdl.Color{R: 0xAB, G: 0xCD, B: 0xEF, A: 255}, HexToColor(0xABCDEF))
	assert.Equal(t, sdl.Color{A: 255}, HexToColor(0x000000))
}

func TestThemeRoundTrip(t *testing.T) {
	original := GetTheme()
	defer SetTheme(original)

	want := original
	want.AccentColor = HexToColor(0x123456)
	SetTheme(want)

	assert.Equal(t, want, GetTheme())
}
