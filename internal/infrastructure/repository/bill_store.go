package repository

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/arjunpx/fuelbill-api/internal/domain/entity"
	"github.com/arjunpx/fuelbill-api/internal/domain/repository"
)

// billEntry pairs a session's record with its last access time so
// idle sessions can be evicted.
type billEntry struct {
	record   entity.BillRecord
	lastSeen time.Time
}

// MemoryBillStore keeps every session's BillRecord in memory. There is
// deliberately no database behind it: a bill lives exactly as long as
// its session. Stale entries are swept by a background loop.
type MemoryBillStore struct {
	mu      sync.Mutex
	entries map[uuid.UUID]*billEntry
	seed    func() entity.BillRecord
	ttl     time.Duration
}

// MemoryBillStoreConfig holds construction options for the store.
type MemoryBillStoreConfig struct {
	Seed            func() entity.BillRecord
	EntryTTL        time.Duration
	CleanupInterval time.Duration
}

// NewMemoryBillStore creates the in-memory session store and starts
// its cleanup goroutine when a TTL is configured.
func NewMemoryBillStore(cfg MemoryBillStoreConfig) *MemoryBillStore {
	seed := cfg.Seed
	if seed == nil {
		seed = func() entity.BillRecord { return entity.NewDefaultBill(time.Now()) }
	}

	s := &MemoryBillStore{
		entries: make(map[uuid.UUID]*billEntry),
		seed:    seed,
		ttl:     cfg.EntryTTL,
	}

	if cfg.EntryTTL > 0 && cfg.CleanupInterval > 0 {
		go s.cleanupLoop(cfg.CleanupInterval)
	}

	return s
}

var _ repository.BillRepository = (*MemoryBillStore)(nil)

// Fetch returns the session's record, seeding it if absent.
func (s *MemoryBillStore) Fetch(sessionID uuid.UUID) entity.BillRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.entry(sessionID).record
}

// Mutate applies fn under the store lock and returns the result.
func (s *MemoryBillStore) Mutate(sessionID uuid.UUID, fn func(rec *entity.BillRecord)) entity.BillRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	e := s.entry(sessionID)
	fn(&e.record)
	return e.record
}

// Replace swaps in a fully validated record.
func (s *MemoryBillStore) Replace(sessionID uuid.UUID, rec entity.BillRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[sessionID] = &billEntry{record: rec, lastSeen: time.Now()}
}

// Remove discards the session's record.
func (s *MemoryBillStore) Remove(sessionID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, sessionID)
}

// entry returns the live entry for a session, seeding and stamping it.
// Callers must hold s.mu.
func (s *MemoryBillStore) entry(sessionID uuid.UUID) *billEntry {
	e, ok := s.entries[sessionID]
	if !ok {
		e = &billEntry{record: s.seed()}
		s.entries[sessionID] = e
	}
	e.lastSeen = time.Now()
	return e
}

func (s *MemoryBillStore) cleanupLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		s.cleanup()
	}
}

func (s *MemoryBillStore) cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := time.Now().Add(-s.ttl)
	for id, e := range s.entries {
		if e.lastSeen.Before(cutoff) {
			delete(s.entries, id)
		}
	}
}
