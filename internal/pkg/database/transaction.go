package database

import "context"

// TxManager runs a function within a single atomic unit of work. The
// PostgreSQL implementation wraps a database transaction; the in-memory
// implementation used in tests serializes on a lock and restores a snapshot
// on failure. Repositories called with the context passed to fn take part
// in the same unit of work.
type TxManager interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}
