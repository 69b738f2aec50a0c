package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"go_certify/internal/model"
)

// MemoryStore is an in-memory Store used by tests and by local
// development without a database
type MemoryStore struct {
	mu      sync.RWMutex
	records []model.Certificate
	nextID  int
	now     func() time.Time

	// InsertCalls counts Insert invocations, including failed ones,
	// so tests can assert that validation short-circuits storage
	InsertCalls int
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{nextID: 1, now: time.Now}
}

// Insert durably creates one certificate record
func (s *MemoryStore) Insert(ctx context.Context, record *model.Certificate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.InsertCalls++

	for _, existing := range s.records {
		if existing.CertificateNumber == record.CertificateNumber ||
			existing.ReferenceNumber == record.ReferenceNumber {
			return ErrDuplicate
		}
	}

	record.ID = s.nextID
	s.nextID++
	record.CreatedAt = s.now()
	record.UpdatedAt = record.CreatedAt
	s.records = append(s.records, *record)
	return nil
}

// FindByNumber returns the active record with the given number
func (s *MemoryStore) FindByNumber(ctx context.Context, certificateNumber string) (*model.Certificate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, record := range s.records {
		if record.CertificateNumber == certificateNumber && record.IsActive {
			found := record
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

// FindAll returns records newest first, capped at limit
func (s *MemoryStore) FindAll(ctx context.Context, limit int) ([]model.Certificate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 || limit > DefaultListLimit {
		limit = DefaultListLimit
	}

	out := make([]model.Certificate, len(s.records))
	copy(out, s.records)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// UpdateActive toggles the active flag for one certificate
func (s *MemoryStore) UpdateActive(ctx context.Context, certificateNumber string, isActive bool) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var modified int64
	for i := range s.records {
		if s.records[i].CertificateNumber == certificateNumber && s.records[i].IsActive != isActive {
			s.records[i].IsActive = isActive
			s.records[i].UpdatedAt = s.now()
			modified++
		}
	}
	return modified, nil
}
