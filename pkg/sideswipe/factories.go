package sideswipe

// Factories for the built-in action types. Each returns a descriptor that
// relies entirely on the preset attributes, with haptics enabled. Use a
// literal ActionDescriptor when overrides are needed.

func DeleteAction(handler Handler) ActionDescriptor {
	return ActionDescriptor{Type: ActionDelete, Handler: handler}
}

func ArchiveAction(handler Handler) ActionDescriptor {
	return ActionDescriptor{Type: ActionArchive, Handler: handler}
}

func EditAction(handler Handler) ActionDescriptor {
	return ActionDescriptor{Type: ActionEdit, Handler: handler}
}

func ShareAction(handler Handler) ActionDescriptor {
	return ActionDescriptor{Type: ActionShare, Handler: handler}
}

func FavoriteAction(handler Handler) ActionDescriptor {
	return ActionDescriptor{Type: ActionFavorite, Handler: handler}
}

func MoreAction(handler Handler) ActionDescriptor {
	return ActionDescriptor{Type: ActionMore, Handler: handler}
}
