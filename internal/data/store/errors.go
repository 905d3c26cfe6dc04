package store

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrConstraint reports a uniqueness, foreign-key, non-null or check
	// breach surfaced at commit time. The whole staged change-set was rolled
	// back.
	ErrConstraint = errors.New("store: constraint violation")
	// ErrConnectivity reports an unreachable or failing underlying store.
	ErrConnectivity = errors.New("store: connectivity failure")
	// ErrFilter reports a malformed filter passed to Find.
	ErrFilter = errors.New("store: invalid filter")
)

// mapError classifies driver failures into the store taxonomy. Lookup misses
// never arrive here; they are nil results, not errors.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrConstraint) || errors.Is(err, ErrConnectivity) || errors.Is(err, ErrFilter) {
		return err
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		code := strings.TrimSpace(pgErr.Code)
		switch {
		case code == "23505", code == "23503", code == "23502", code == "23514":
			return fmt.Errorf("%w: %v", ErrConstraint, err)
		case strings.HasPrefix(code, "08"):
			return fmt.Errorf("%w: %v", ErrConnectivity, err)
		}
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "unique constraint failed"),
		strings.Contains(msg, "foreign key constraint failed"),
		strings.Contains(msg, "not null constraint failed"),
		strings.Contains(msg, "check constraint failed"),
		strings.Contains(msg, "duplicate key"):
		return fmt.Errorf("%w: %v", ErrConstraint, err)
	case strings.Contains(msg, "database is locked"),
		strings.Contains(msg, "unable to open database"),
		strings.Contains(msg, "connection refused"),
		strings.Contains(msg, "bad connection"):
		return fmt.Errorf("%w: %v", ErrConnectivity, err)
	}
	return err
}
