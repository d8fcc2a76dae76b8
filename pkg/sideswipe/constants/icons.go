package constants

// Icon glyphs for use with icon fonts (Material Design Icons).
// These Unicode code points render as icons when used with the icon font
// configured at Init time.
const (
	IconTrash          = "\U000F01B4" // Trash can (delete)
	IconArchive        = "\U000F0103" // Archive box
	IconPencil         = "\U000F03EB" // Pencil (edit)
	IconShareVariant   = "\U000F0497" // Share arrow
	IconHeart          = "\U000F02D1" // Heart (favorite)
	IconDotsHorizontal = "\U000F01D8" // Three horizontal dots (more)

	IconGestureTap = "\U000F0A3F" // Tap gesture, generic action fallback
)
