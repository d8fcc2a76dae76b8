package sideswipe

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
)

// ActionType identifies one of the built-in swipe actions, or ActionCustom
// for application-defined actions. Built-in types carry preset label, icon,
// color role, and haptic intensity; custom actions must supply all three
// visual attributes themselves.
type ActionType int

const (
	ActionDelete ActionType = iota
	ActionArchive
	ActionEdit
	ActionShare
	ActionFavorite
	ActionMore
	ActionCustom
)

func (t ActionType) String() string {
	switch t {
	case ActionDelete:
		return "delete"
	case ActionArchive:
		return "archive"
	case ActionEdit:
		return "edit"
	case ActionShare:
		return "share"
	case ActionFavorite:
		return "favorite"
	case ActionMore:
		return "more"
	case ActionCustom:
		return "custom"
	default:
		return "unknown"
	}
}

// Handler is the side-effecting operation an action button invokes. A slow
// handler may block; the button runs it off the input path and ignores
// repeated activations until it returns.
type Handler func() error

// IconRef references an action icon: either a glyph from the icon font or a
// path to an SVG file rasterized at render time. A zero IconRef means "no
// override" on a descriptor.
type IconRef struct {
	Glyph   string
	SVGPath string
}

// GlyphIcon references a code point in the configured icon font, typically
// one of the constants in pkg/sideswipe/constants.
func GlyphIcon(glyph string) IconRef {
	return IconRef{Glyph: glyph}
}

// SVGIcon references an SVG file on disk, rendered white at a fixed size.
func SVGIcon(path string) IconRef {
	return IconRef{SVGPath: path}
}

// IsZero reports whether the reference points at nothing.
func (r IconRef) IsZero() bool {
	return r.Glyph == "" && r.SVGPath == ""
}

// ActionDescriptor configures one swipe action. Label, Icon, Color, and
// Haptic override the preset attributes of Type when set; for ActionCustom
// the three visual attributes are required, not optional (see Validate).
type ActionDescriptor struct {
	Type    ActionType
	Label   string          // optional override; preset label when empty
	Icon    IconRef         // optional override; preset icon when zero
	Color   *sdl.Color      // optional override; preset color role when nil
	Haptic  HapticIntensity // optional override; preset intensity when unset
	Handler Handler         // required

	DisableHaptics bool // skip haptic feedback on activation
}

// Validate reports whether the descriptor is renderable and activatable.
// Every descriptor needs a handler; a custom descriptor additionally needs a
// non-empty label, icon, and color, because custom actions have no preset to
// fall back to and are never silently defaulted.
func (d ActionDescriptor) Validate() error {
	if d.Type < ActionDelete || d.Type > ActionCustom {
		return NewConfigurationError("validate", fmt.Errorf("unknown action type %d", int(d.Type)))
	}
	if d.Handler == nil {
		return NewConfigurationError("validate", fmt.Errorf("%s action has no handler", d.Type))
	}
	if d.Type != ActionCustom {
		return nil
	}

	var missing []string
	if d.Label == "" {
		missing = append(missing, "label")
	}
	if d.Icon.IsZero() {
		missing = append(missing, "icon")
	}
	if d.Color == nil {
		missing = append(missing, "color")
	}
	if len(missing) > 0 {
		return NewConfigurationError("validate", fmt.Errorf("custom action missing %v", missing))
	}
	return nil
}
