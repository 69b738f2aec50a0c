// Package store persists certificate records. The Store interface is
// implemented by a MySQL-backed store for production and an in-memory
// store for tests.
package store

import (
	"context"
	"errors"

	"go_certify/internal/model"
)

var (
	// ErrNotFound is returned when no active record matches the lookup
	ErrNotFound = errors.New("certificate not found")
	// ErrDuplicate is returned when an insert collides with an existing
	// certificate or reference number
	ErrDuplicate = errors.New("duplicate identifier")
)

// DefaultListLimit caps administrative listings; the source scanned the
// whole collection, which does not survive growth.
const DefaultListLimit = 500

// Store is the persistence boundary for certificate records
type Store interface {
	// Insert durably creates one record and fills in store-assigned
	// fields (ID, CreatedAt). Identifier collisions map to ErrDuplicate.
	Insert(ctx context.Context, record *model.Certificate) error

	// FindByNumber returns the active record with the given certificate
	// number, or ErrNotFound. Inactive records are invisible here: the
	// public lookup path must not distinguish deactivated from absent.
	FindByNumber(ctx context.Context, certificateNumber string) (*model.Certificate, error)

	// FindAll returns records sorted by creation time descending,
	// capped at limit (DefaultListLimit when limit <= 0).
	FindAll(ctx context.Context, limit int) ([]model.Certificate, error)

	// UpdateActive toggles the active flag and reports how many rows
	// changed. Idempotent: toggling to the current value changes zero.
	UpdateActive(ctx context.Context, certificateNumber string, isActive bool) (int64, error)
}
