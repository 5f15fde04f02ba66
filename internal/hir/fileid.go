package hir

import (
	"github.com/google/uuid"

	"github.com/orizon-lang/hirstore/internal/position"
)

// NewSyntheticFileID mints a position.FileID from the first four bytes of a
// random UUID. It exists for tests and demo harnesses that need many distinct
// files for the location resolver's multi-file scenarios and would
// otherwise have to hand-pick small integers carefully enough that they
// never collide; it carries no weight for any invariant the store itself
// enforces.
func NewSyntheticFileID() position.FileID {
	id := uuid.New()

	return position.FileID(id[0])<<24 |
		position.FileID(id[1])<<16 |
		position.FileID(id[2])<<8 |
		position.FileID(id[3])
}
