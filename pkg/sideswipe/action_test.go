package sideswipe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/sideswipe/pkg/sideswipe/constants"
)

func noopHandler() error { return nil }

func validCustom() ActionDescriptor {
	return ActionDescriptor{
		Type:    ActionCustom,
		Label:   "Snooze",
		Icon:    GlyphIcon(constants.IconGestureTap),
		Color:   &sdl.Color{R: 90, G: 60, B: 200, A: 255},
		Handler: noopHandler,
	}
}

func TestValidatePresetNeedsOnlyHandler(t *testing.T) {
	for _, typ := range []ActionType{ActionDelete, ActionArchive, ActionEdit, ActionShare, ActionFavorite, ActionMore} {
		t.Run(typ.String(), func(t *testing.T) {
			d := ActionDescriptor{Type: typ, Handler: noopHandler}
			assert.NoError(t, d.Validate())
		})
	}
}

func TestValidateRejectsMissingHandler(t *testing.T) {
	d := ActionDescriptor{Type: ActionDelete}
	err := d.Validate()

	require.Error(t, err)
	assert.True(t, IsConfigurationError(err))
}

func TestValidateRejectsUnknownType(t *testing.T) {
	d := ActionDescriptor{Type: ActionType(42), Handler: noopHandler}
	assert.Error(t, d.Validate())
}

func TestValidateCustomRequiresAllAttributes(t *testing.T) {
	full := validCustom()
	require.NoError(t, full.Validate())

	missingLabel := full
	missingLabel.Label = ""
	assert.Error(t, missingLabel.Validate())

	missingIcon := full
	missingIcon.Icon = IconRef{}
	assert.Error(t, missingIcon.Validate())

	missingColor := full
	missingColor.Color = nil
	assert.Error(t, missingColor.Validate())
}

func TestValidateCustomReportsEveryMissingAttribute(t *testing.T) {
	d := ActionDescriptor{Type: ActionCustom, Handler: noopHandler}
	err := d.Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "label")
	assert.Contains(t, err.Error(), "icon")
	assert.Contains(t, err.Error(), "color")
}

func TestIconRefIsZero(t *testing.T) {
	assert.True(t, IconRef{}.IsZero())
	assert.False(t, GlyphIcon(constants.IconTrash).IsZero())
	assert.False(t, SVGIcon("/tmp/icon.svg").IsZero())
}
