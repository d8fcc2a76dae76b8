package internal

import (
	"github.com/veandco/go-sdl2/ttf"
)

// FontSet holds the fonts action buttons render with: a text font for labels
// and an icon font whose glyphs come from pkg/sideswipe/constants.
type FontSet struct {
	Label *ttf.Font
	Icon  *ttf.Font
}

var fonts FontSet

// InitFonts loads the label and icon fonts at the given sizes. Either path
// may be empty, in which case that font stays nil and the renderer skips the
// corresponding element.
func InitFonts(labelPath, iconPath string, labelSize, iconSize int) error {
	if !ttf.WasInit() {
		if err := ttf.Init(); err != nil {
			return err
		}
	}

	if labelPath != "" {
		font, err := ttf.OpenFont(labelPath, labelSize)
		if err != nil {
			return err
		}
		fonts.Label = font
	}

	if iconPath != "" {
		font, err := ttf.OpenFont(iconPath, iconSize)
		if err != nil {
			return err
		}
		fonts.Icon = font
	}

	return nil
}

// Fonts returns the active font set.
func Fonts() FontSet {
	return fonts
}

// CloseFonts releases the loaded fonts.
func CloseFonts() {
	if fonts.Label != nil {
		fonts.Label.Close()
		fonts.Label = nil
	}
	if fonts.Icon != nil {
		fonts.Icon.Close()
		fonts.Icon = nil
	}
}
