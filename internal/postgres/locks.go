package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/lib/pq"
)

// LockKey acquires an advisory lock on the given key for the duration of the
// surrounding transaction. Used to serialize totals recomputation per
// quotation. Auto released on tx commit/rollback.
// Must be called inside a transaction.
func (c *Client) LockKey(ctx context.Context, key string) error {
	tx := c.TxFromContext(ctx)
	if tx == nil {
		return fmt.Errorf("LockKey must be called inside transaction")
	}

	_, err := tx.ExecContext(ctx, `
		SELECT pg_advisory_xact_lock(hashtext($1))
	`, key)
	if err != nil {
		if isLockTimeoutError(err) {
			return fmt.Errorf("failed to acquire lock on %s: %w", key, err)
		}
		return fmt.Errorf("failed to acquire lock: %w", err)
	}

	return nil
}

// TryLockKey attempts to acquire the advisory lock without waiting. Returns
// false when another transaction holds it.
func (c *Client) TryLockKey(ctx context.Context, key string) (bool, error) {
	tx := c.TxFromContext(ctx)
	if tx == nil {
		return false, fmt.Errorf("TryLockKey must be called inside transaction")
	}

	var acquired bool
	err := tx.QueryRowContext(ctx, `
		SELECT pg_try_advisory_xact_lock(hashtext($1))
	`, key).Scan(&acquired)
	if err != nil {
		return false, fmt.Errorf("failed to try lock: %w", err)
	}
	return acquired, nil
}

// isLockTimeoutError checks if the error is a PostgreSQL lock timeout error
// Uses PostgreSQL error codes for reliable detection
func isLockTimeoutError(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		// 55P03 = lock_not_available
		return pqErr.Code == "55P03"
	}
	return false
}
