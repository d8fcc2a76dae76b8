package sideswipe

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFactoriesBuildValidDescriptors(t *testing.T) {
	cases := map[ActionType]ActionDescriptor{
		ActionDelete:   DeleteAction(noopHandler),
		ActionArchive:  ArchiveAction(noopHandler),
		ActionEdit:     EditAction(noopHandler),
		ActionShare:    ShareAction(noopHandler),
		ActionFavorite: FavoriteAction(noopHandler),
		ActionMore:     MoreAction(noopHandler),
	}

	for typ, d := range cases {
		assert.Equal(t, typ, d.Type)
		assert.NoError(t, d.Validate())
		assert.False(t, d.DisableHaptics)
	}
}
