package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"go_certify/internal/model"
)

// MySQLStore implements Store on top of a gorm MySQL connection
type MySQLStore struct {
	db      *gorm.DB
	timeout time.Duration
}

// NewMySQLStore creates a MySQL-backed store. Every call runs under the
// given timeout so a stalled database fails the request, not the process.
func NewMySQLStore(db *gorm.DB, timeout time.Duration) *MySQLStore {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &MySQLStore{db: db, timeout: timeout}
}

func (s *MySQLStore) withDeadline(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.timeout)
}

// Insert durably creates one certificate record
func (s *MySQLStore) Insert(ctx context.Context, record *model.Certificate) error {
	ctx, cancel := s.withDeadline(ctx)
	defer cancel()

	if err := s.db.WithContext(ctx).Create(record).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicate
		}
		return fmt.Errorf("failed to insert certificate: %w", err)
	}
	return nil
}

// FindByNumber returns the active record with the given number
func (s *MySQLStore) FindByNumber(ctx context.Context, certificateNumber string) (*model.Certificate, error) {
	ctx, cancel := s.withDeadline(ctx)
	defer cancel()

	var record model.Certificate
	err := s.db.WithContext(ctx).
		Where("certificate_number = ? AND is_active = ?", certificateNumber, true).
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find certificate: %w", err)
	}
	return &record, nil
}

// FindAll returns records newest first, capped at limit
func (s *MySQLStore) FindAll(ctx context.Context, limit int) ([]model.Certificate, error) {
	ctx, cancel := s.withDeadline(ctx)
	defer cancel()

	if limit <= 0 || limit > DefaultListLimit {
		limit = DefaultListLimit
	}

	var records []model.Certificate
	err := s.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list certificates: %w", err)
	}
	return records, nil
}

// UpdateActive toggles the active flag for one certificate
func (s *MySQLStore) UpdateActive(ctx context.Context, certificateNumber string, isActive bool) (int64, error) {
	ctx, cancel := s.withDeadline(ctx)
	defer cancel()

	result := s.db.WithContext(ctx).
		Model(&model.Certificate{}).
		Where("certificate_number = ?", certificateNumber).
		Update("is_active", isActive)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to update certificate status: %w", result.Error)
	}
	return result.RowsAffected, nil
}
