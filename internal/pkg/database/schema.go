package database

import (
	"context"
	_ "embed"
	"fmt"
)

//go:embed schema.sql
var schemaDDL string

// EnsureSchema applies the embedded DDL. All statements are idempotent
// (CREATE TABLE IF NOT EXISTS), so this is safe to run on every startup.
func EnsureSchema(ctx context.Context, db *DB) error {
	tx, err := db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("begin schema transaction: %w", err)
	}

	if _, err := tx.Exec(ctx, schemaDDL); err != nil {
		_ = tx.Rollback(ctx)
		return fmt.Errorf("apply schema: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit schema: %w", err)
	}

	return nil
}
