package repository

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/arjunpx/fuelbill-api/internal/domain/entity"
)

func newTestStore() *MemoryBillStore {
	return NewMemoryBillStore(MemoryBillStoreConfig{
		Seed: func() entity.BillRecord {
			return entity.NewDefaultBill(time.Date(2025, 3, 14, 9, 26, 0, 0, time.UTC))
		},
	})
}

func TestFetchSeedsMissingSession(t *testing.T) {
	store := newTestStore()
	id := uuid.New()

	rec := store.Fetch(id)
	if rec.StationName != "Bharat Petroleum" {
		t.Errorf("seeded station = %q, want Bharat Petroleum", rec.StationName)
	}

	// Same session keeps the same record across calls.
	store.Mutate(id, func(r *entity.BillRecord) { r.StationName = "Edited" })
	if got := store.Fetch(id).StationName; got != "Edited" {
		t.Errorf("station after mutate = %q, want Edited", got)
	}
}

func TestSessionsAreIsolated(t *testing.T) {
	store := newTestStore()
	a, b := uuid.New(), uuid.New()

	store.Mutate(a, func(r *entity.BillRecord) { r.ReceiptNumber = "A-1" })
	if got := store.Fetch(b).ReceiptNumber; got == "A-1" {
		t.Error("session b sees session a's edits")
	}
}

func TestRemoveResetsToSeed(t *testing.T) {
	store := newTestStore()
	id := uuid.New()

	store.Mutate(id, func(r *entity.BillRecord) { r.ReceiptNumber = "X" })
	store.Remove(id)
	if got := store.Fetch(id).ReceiptNumber; got != "3294" {
		t.Errorf("record after remove = %q, want reseeded 3294", got)
	}
}

func TestCleanupEvictsIdleSessions(t *testing.T) {
	store := NewMemoryBillStore(MemoryBillStoreConfig{EntryTTL: time.Millisecond})
	id := uuid.New()
	store.Mutate(id, func(r *entity.BillRecord) { r.ReceiptNumber = "X" })

	time.Sleep(5 * time.Millisecond)
	store.cleanup()

	if got := store.Fetch(id).ReceiptNumber; got == "X" {
		t.Error("idle session survived cleanup")
	}
}
