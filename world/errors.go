package world

import "errors"

var (
	// ErrChunkExists is returned when a chunk is created twice for the same
	// chunk coordinate.
	ErrChunkExists = errors.New("chunk already exists")

	// ErrPortalExists is returned when a portal source tile is already taken.
	ErrPortalExists = errors.New("portal already exists")
)
