// Package internal contains the infrastructure for the sideswipe library:
// logging, theming, drag tracking, haptic rumble, touch input, and texture
// helpers. Types and functions in this package are not part of the public API.
package internal

import (
	"github.com/veandco/go-sdl2/sdl"
)

// Theme defines the concrete colors behind the semantic color roles that
// action descriptors reference, plus the fonts used to render action buttons.
// Colors are typically loaded from CFW theme files (see platform/cannoli).
type Theme struct {
	ErrorColor      sdl.Color // Destructive actions (delete)
	WarningColor    sdl.Color // Attention actions (favorite)
	PrimaryColor    sdl.Color // Default informational actions (edit, share)
	AccentColor     sdl.Color // Secondary emphasis actions (archive)
	NeutralColor    sdl.Color // Low-emphasis actions (more)
	BackgroundColor sdl.Color // Row background behind the content surface

	FontPath     string // Path to the label font
	IconFontPath string // Path to the icon glyph font
}

var currentTheme Theme

// SetTheme sets the active theme for the library.
func SetTheme(theme Theme) {
	currentTheme = theme
}

// GetTheme returns the currently active theme.
func GetTheme() Theme {
	return currentTheme
}

// HexToColor converts a 0xRRGGBB value to an opaque sdl.Color.
func HexToColor(hex uint32) sdl.Color {
	return sdl.Color{
		R: uint8(hex >> 16),
		G: uint8(hex >> 8),
		B: uint8(hex),
		A: 255,
	}
}
