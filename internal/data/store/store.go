package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/hqlam/laptopshop/internal/pkg/logger"
)

type opKind int

const (
	opAdd opKind = iota
	opUpdate
	opDelete
)

func (k opKind) String() string {
	switch k {
	case opAdd:
		return "add"
	case opUpdate:
		return "update"
	case opDelete:
		return "delete"
	}
	return "unknown"
}

type change[T any] struct {
	kind opKind
	row  *T
}

// Store is a unit of work over exactly one entity type. Reads go straight to
// the underlying store; Add, Update and Delete only stage changes in memory
// until Commit flushes them atomically. A Store is bound to one logical
// session and is not safe for concurrent use.
type Store[T any] struct {
	db      *gorm.DB
	log     *logger.Logger
	pending []change[T]
}

// New returns a store for T bound to the given connection.
func New[T any](db *gorm.DB, baseLog *logger.Logger) *Store[T] {
	var zero T
	return &Store[T]{db: db, log: baseLog.With("store", fmt.Sprintf("%T", zero))}
}

// GetAll returns every persisted row of T, materialized eagerly.
func (s *Store[T]) GetAll(ctx context.Context) ([]T, error) {
	var out []T
	if err := s.db.WithContext(ctx).Find(&out).Error; err != nil {
		return nil, mapError(err)
	}
	return out, nil
}

// GetByID looks up a single row by integer primary key. A miss is a nil
// result, not an error. Entities with composite keys (LaptopSupplier) are not
// addressable this way; use Find.
func (s *Store[T]) GetByID(ctx context.Context, id uint) (*T, error) {
	var out T
	err := s.db.WithContext(ctx).First(&out, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, mapError(err)
	}
	return &out, nil
}

// Find returns all rows satisfying the AND-combined filters.
func (s *Store[T]) Find(ctx context.Context, filters ...Filter) ([]T, error) {
	tx, err := applyFilters(s.db.WithContext(ctx).Model(new(T)), filters)
	if err != nil {
		return nil, err
	}
	var out []T
	if err := tx.Find(&out).Error; err != nil {
		return nil, mapError(err)
	}
	return out, nil
}

// Add stages an insert. Nothing is persisted until Commit.
func (s *Store[T]) Add(row *T) {
	if row == nil {
		return
	}
	s.pending = append(s.pending, change[T]{kind: opAdd, row: row})
}

// Update stages an update of all attributes of the row sharing row's primary
// key.
func (s *Store[T]) Update(row *T) {
	if row == nil {
		return
	}
	s.pending = append(s.pending, change[T]{kind: opUpdate, row: row})
}

// Delete stages a removal.
func (s *Store[T]) Delete(row *T) {
	if row == nil {
		return
	}
	s.pending = append(s.pending, change[T]{kind: opDelete, row: row})
}

// DeleteByID resolves the row and stages its removal. When no row exists the
// call is a silent no-op.
func (s *Store[T]) DeleteByID(ctx context.Context, id uint) error {
	row, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if row == nil {
		s.log.Debug("delete of missing id is a no-op", "id", id)
		return nil
	}
	s.Delete(row)
	return nil
}

// Pending reports how many staged changes await Commit.
func (s *Store[T]) Pending() int {
	return len(s.pending)
}

// Reset discards the staged change-set without touching persisted state.
func (s *Store[T]) Reset() {
	s.pending = nil
}

// Commit flushes the staged change-set as one transaction and returns the
// number of rows affected. On any failure the transaction rolls back,
// previously committed state is untouched, and the staged set is kept intact
// so the caller can correct and retry.
func (s *Store[T]) Commit(ctx context.Context) (int64, error) {
	if len(s.pending) == 0 {
		return 0, nil
	}
	var affected int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, c := range s.pending {
			var res *gorm.DB
			switch c.kind {
			case opAdd:
				res = tx.Create(c.row)
			case opUpdate:
				res = tx.Save(c.row)
			case opDelete:
				res = tx.Delete(c.row)
			}
			if res.Error != nil {
				return fmt.Errorf("%s: %w", c.kind, res.Error)
			}
			affected += res.RowsAffected
		}
		return nil
	})
	if err != nil {
		s.log.Warn("commit rejected, staged change-set retained", "staged", len(s.pending), "error", err)
		return 0, mapError(err)
	}
	s.log.Debug("commit applied", "staged", len(s.pending), "rows", affected)
	s.pending = nil
	return affected, nil
}
