package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateSearchIndexes creates the PostgreSQL expression indexes that Ent
// cannot express in schema definitions. Also invoked by the test harness
// after Ent auto-migration so integration tests see the same constraints
// production gets from the SQL migrations.
func CreateSearchIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	// Full-text search over memory fact bodies.
	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_memory_facts_text_gin
		ON memory_facts USING gin(to_tsvector('english', text))`)
	if err != nil {
		return fmt.Errorf("failed to create memory_facts GIN index: %w", err)
	}

	// Fact writes are idempotent by (user_id, subject_id, text); md5 keeps
	// long fact bodies inside btree key limits.
	_, err = db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS memory_facts_user_subject_text_key
		ON memory_facts (user_id, subject_id, md5(text))`)
	if err != nil {
		return fmt.Errorf("failed to create memory_facts idempotence index: %w", err)
	}

	return nil
}
