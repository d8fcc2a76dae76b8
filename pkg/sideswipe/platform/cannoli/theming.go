// Package cannoli provides theming support for the Cannoli custom firmware.
// Cannoli is a community-developed CFW for retro handheld gaming devices.
package cannoli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/BrandonKowalski/sideswipe/pkg/sideswipe/internal"
)

// InitCannoliTheme creates a theme with Cannoli's default role colors and the
// specified fonts.
func InitCannoliTheme(fontPath, iconFontPath string) internal.Theme {
	return internal.Theme{
		ErrorColor:      internal.HexToColor(0xE53935),
		WarningColor:    internal.HexToColor(0xFB8C00),
		PrimaryColor:    internal.HexToColor(0x1E88E5),
		AccentColor:     internal.HexToColor(0x008080),
		NeutralColor:    internal.HexToColor(0x757575),
		BackgroundColor: internal.HexToColor(0xFFFFFF),
		FontPath:        fontPath,
		IconFontPath:    iconFontPath,
	}
}

type themeFile struct {
	Error      string `toml:"error"`
	Warning    string `toml:"warning"`
	Primary    string `toml:"primary"`
	Accent     string `toml:"accent"`
	Neutral    string `toml:"neutral"`
	Background string `toml:"background"`

	FontPath     string `toml:"font_path"`
	IconFontPath string `toml:"icon_font_path"`
}

// LoadTheme reads a Cannoli theme file and overlays it on the default theme.
// Colors are hex strings ("#008080" or "0x008080"); omitted keys keep their
// defaults.
func LoadTheme(path string) (internal.Theme, error) {
	theme := InitCannoliTheme("", "")

	var file themeFile
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return theme, fmt.Errorf("cannoli theme %s: %w", path, err)
	}

	apply := func(raw string, set func(uint32)) error {
		if raw == "" {
			return nil
		}
		value, err := parseHexColor(raw)
		if err != nil {
			return fmt.Errorf("cannoli theme %s: %w", path, err)
		}
		set(value)
		return nil
	}

	steps := []struct {
		raw string
		set func(uint32)
	}{
		{file.Error, func(v uint32) { theme.ErrorColor = internal.HexToColor(v) }},
		{file.Warning, func(v uint32) { theme.WarningColor = internal.HexToColor(v) }},
		{file.Primary, func(v uint32) { theme.PrimaryColor = internal.HexToColor(v) }},
		{file.Accent, func(v uint32) { theme.AccentColor = internal.HexToColor(v) }},
		{file.Neutral, func(v uint32) { theme.NeutralColor = internal.HexToColor(v) }},
		{file.Background, func(v uint32) { theme.BackgroundColor = internal.HexToColor(v) }},
	}
	for _, step := range steps {
		if err := apply(step.raw, step.set); err != nil {
			return theme, err
		}
	}

	if file.FontPath != "" {
		theme.FontPath = file.FontPath
	}
	if file.IconFontPath != "" {
		theme.IconFontPath = file.IconFontPath
	}

	return theme, nil
}

func parseHexColor(raw string) (uint32, error) {
	trimmed := strings.TrimPrefix(strings.TrimPrefix(raw, "#"), "0x")
	if len(trimmed) != 6 {
		return 0, fmt.Errorf("invalid color %q: want RRGGBB", raw)
	}
	value, err := strconv.ParseUint(trimmed, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid color %q: %w", raw, err)
	}
	return uint32(value), nil
}
