package sideswipe

import (
	"github.com/BrandonKowalski/sideswipe/pkg/sideswipe/constants"
)

// HapticIntensity selects the strength of the tactile feedback played when
// an action activates. The zero value means "unset" so that descriptor
// overrides can be told apart from an explicit light setting.
type HapticIntensity int

const (
	hapticUnset HapticIntensity = iota
	HapticLight
	HapticMedium
	HapticHeavy
)

func (i HapticIntensity) String() string {
	switch i {
	case HapticLight:
		return "light"
	case HapticMedium:
		return "medium"
	case HapticHeavy:
		return "heavy"
	default:
		return "unset"
	}
}

// ColorRole names a semantic slot in the active theme. The concrete color is
// resolved at render time so the same descriptor adapts to theme changes.
type ColorRole int

const (
	ColorRoleNone ColorRole = iota
	ColorRoleError
	ColorRoleWarning
	ColorRolePrimary
	ColorRoleAccent
	ColorRoleNeutral
)

func (r ColorRole) String() string {
	switch r {
	case ColorRoleError:
		return "error"
	case ColorRoleWarning:
		return "warning"
	case ColorRolePrimary:
		return "primary"
	case ColorRoleAccent:
		return "accent"
	case ColorRoleNeutral:
		return "neutral"
	default:
		return "none"
	}
}

// presetEntry is the built-in attribute set for one non-custom action type.
// The table is process-wide constant state; presetFor is the only reader.
type presetEntry struct {
	labelID  string
	fallback string
	icon     IconRef
	role     ColorRole
	haptic   HapticIntensity
}

// presetFor returns the preset for a non-custom action type. The switch is
// exhaustive over the built-in types, so a missing preset cannot happen for
// them; ok is false only for ActionCustom (and out-of-range values, which
// Validate rejects before they get here).
func presetFor(t ActionType) (presetEntry, bool) {
	switch t {
	case ActionDelete:
		return presetEntry{
			labelID:  "action.delete",
			fallback: "Delete",
			icon:     GlyphIcon(constants.IconTrash),
			role:     ColorRoleError,
			haptic:   HapticHeavy,
		}, true
	case ActionArchive:
		return presetEntry{
			labelID:  "action.archive",
			fallback: "Archive",
			icon:     GlyphIcon(constants.IconArchive),
			role:     ColorRoleAccent,
			haptic:   HapticMedium,
		}, true
	case ActionEdit:
		return presetEntry{
			labelID:  "action.edit",
			fallback: "Edit",
			icon:     GlyphIcon(constants.IconPencil),
			role:     ColorRolePrimary,
			haptic:   HapticLight,
		}, true
	case ActionShare:
		return presetEntry{
			labelID:  "action.share",
			fallback: "Share",
			icon:     GlyphIcon(constants.IconShareVariant),
			role:     ColorRolePrimary,
			haptic:   HapticLight,
		}, true
	case ActionFavorite:
		return presetEntry{
			labelID:  "action.favorite",
			fallback: "Favorite",
			icon:     GlyphIcon(constants.IconHeart),
			role:     ColorRoleWarning,
			haptic:   HapticLight,
		}, true
	case ActionMore:
		return presetEntry{
			labelID:  "action.more",
			fallback: "More",
			icon:     GlyphIcon(constants.IconDotsHorizontal),
			role:     ColorRoleNeutral,
			haptic:   HapticLight,
		}, true
	default:
		return presetEntry{}, false
	}
}
