package sideswipe

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/sideswipe/pkg/sideswipe/constants"
	"github.com/BrandonKowalski/sideswipe/pkg/sideswipe/internal"
)

// ActionColor is a resolved action color: either an explicit color supplied
// by the descriptor or a semantic role looked up in the theme at render time.
// Explicit wins when both are set.
type ActionColor struct {
	Role     ColorRole
	Explicit *sdl.Color
}

// Concrete returns the drawable color under the active theme.
func (c ActionColor) Concrete() sdl.Color {
	if c.Explicit != nil {
		return *c.Explicit
	}
	theme := internal.GetTheme()
	switch c.Role {
	case ColorRoleError:
		return theme.ErrorColor
	case ColorRoleWarning:
		return theme.WarningColor
	case ColorRolePrimary:
		return theme.PrimaryColor
	case ColorRoleAccent:
		return theme.AccentColor
	case ColorRoleNeutral:
		return theme.NeutralColor
	default:
		// Only reachable for an invalid custom descriptor, which the
		// button refuses to build. Neutral keeps rendering defined.
		return theme.NeutralColor
	}
}

// ResolvedAction is the render-ready view of a descriptor: every attribute
// defaulted per the precedence rules. It is recomputed on demand and never
// stored beyond the frame or activation that needed it.
type ResolvedAction struct {
	Label  string
	Icon   IconRef
	Color  ActionColor
	Haptic HapticIntensity
}

// Resolve computes the effective attributes of a descriptor. Each attribute
// resolves independently: the descriptor's explicit value wins, then the
// preset for the descriptor's type, then a hard fallback (generic label and
// icon, light haptics). Color has no hard fallback; a custom descriptor
// without an explicit color is a configuration error caught by Validate,
// not papered over here.
func Resolve(d ActionDescriptor) ResolvedAction {
	preset, hasPreset := presetFor(d.Type)

	var r ResolvedAction

	switch {
	case d.Label != "":
		r.Label = d.Label
	case hasPreset:
		r.Label = presetLabel(preset.labelID, preset.fallback)
	default:
		r.Label = presetLabel("action.generic", "Action")
	}

	switch {
	case !d.Icon.IsZero():
		r.Icon = d.Icon
	case hasPreset:
		r.Icon = preset.icon
	default:
		r.Icon = GlyphIcon(constants.IconGestureTap)
	}

	switch {
	case d.Color != nil:
		r.Color = ActionColor{Explicit: d.Color}
	case hasPreset:
		r.Color = ActionColor{Role: preset.role}
	}

	switch {
	case d.Haptic != hapticUnset:
		r.Haptic = d.Haptic
	case hasPreset:
		r.Haptic = preset.haptic
	default:
		r.Haptic = HapticLight
	}

	return r
}
