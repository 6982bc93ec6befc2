package repository

import (
	"github.com/google/uuid"

	"github.com/arjunpx/fuelbill-api/internal/domain/entity"
)

// BillRepository is the session-scoped store for the single BillRecord
// each session owns. Implementations seed a missing record from the
// default bill, so Fetch and Mutate always operate on a live record.
type BillRepository interface {
	// Fetch returns the session's record, seeding it if absent.
	Fetch(sessionID uuid.UUID) entity.BillRecord
	// Mutate applies fn to the session's record under the store lock
	// and returns the updated copy.
	Mutate(sessionID uuid.UUID, fn func(rec *entity.BillRecord)) entity.BillRecord
	// Replace swaps in a fully validated record.
	Replace(sessionID uuid.UUID, rec entity.BillRecord)
	// Remove discards the session's record.
	Remove(sessionID uuid.UUID)
}
