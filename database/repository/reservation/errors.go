package reservationRepo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
)

// Store failure taxonomy surfaced to the booking pipeline. None of these are
// retried here; the caller turns them into a user-facing persistence error.
var (
	ErrPermissionDenied = errors.New("reservation store rejected the write (permission denied)")
	ErrUnavailable      = errors.New("reservation store unavailable")
	ErrNotFound         = errors.New("reservation not found")
)

const mongoUnauthorizedCode = 13

// wrapStoreError maps driver errors onto the repository taxonomy.
func wrapStoreError(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	case errors.Is(err, context.DeadlineExceeded) || mongo.IsTimeout(err) || mongo.IsNetworkError(err):
		return fmt.Errorf("%s: %w: %v", op, ErrUnavailable, err)
	}

	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) && cmdErr.Code == mongoUnauthorizedCode {
		return fmt.Errorf("%s: %w: %v", op, ErrPermissionDenied, err)
	}

	var writeErr mongo.WriteException
	if errors.As(err, &writeErr) {
		for _, we := range writeErr.WriteErrors {
			if we.Code == mongoUnauthorizedCode {
				return fmt.Errorf("%s: %w: %v", op, ErrPermissionDenied, err)
			}
		}
	}

	return fmt.Errorf("%s: reservation store error: %w", op, err)
}
