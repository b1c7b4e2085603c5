package migration

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go.uber.org/zap"
)

type migrationStep struct {
	Name string
	SQL  string
}

var steps = []migrationStep{
	{
		Name: "create_extension_uuid_ossp",
		SQL:  `CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	},
	{
		Name: "create_table_conversation_messages",
		SQL: `CREATE TABLE IF NOT EXISTS conversation_messages (
  id          UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  customer_id TEXT        NOT NULL,
  role        TEXT        NOT NULL CHECK (role IN ('user', 'assistant')),
  content     TEXT        NOT NULL,
  metadata    JSONB       NOT NULL DEFAULT '{}'::jsonb,
  created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_conversation_messages_customer_id",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_conversation_messages_customer_id ON conversation_messages (customer_id);`,
	},
	{
		Name: "create_index_conversation_messages_created_at",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_conversation_messages_created_at ON conversation_messages (customer_id, created_at);`,
	},
}

// EnsureMigrated checks whether the conversation_messages table exists and
// runs the migration steps if it does not. The sentinel check keeps restarts
// idempotent without a migrations table.
func EnsureMigrated(ctx context.Context, db *sql.DB, log *zap.Logger) error {
	start := time.Now()

	var exists bool
	if err := db.QueryRowContext(ctx, "SELECT to_regclass('public.conversation_messages') IS NOT NULL").Scan(&exists); err != nil {
		log.Error("db_migration_failed",
			zap.String("component", "database"),
			zap.Error(err),
			zap.Int64("duration_ms", time.Since(start).Milliseconds()))
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		log.Info("db_migration_skip",
			zap.String("component", "database"),
			zap.String("msg", "schema already exists, skipping migration"),
			zap.Int64("duration_ms", time.Since(start).Milliseconds()))
		return nil
	}

	for _, step := range steps {
		stepStart := time.Now()
		if _, err := db.ExecContext(ctx, step.SQL); err != nil {
			log.Error("db_migration_failed",
				zap.String("component", "database"),
				zap.String("migration_step", step.Name),
				zap.Error(err),
				zap.Int64("duration_ms", time.Since(start).Milliseconds()))
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}
		log.Info("db_migration_step",
			zap.String("component", "database"),
			zap.String("migration_step", step.Name),
			zap.Int64("step_duration_ms", time.Since(stepStart).Milliseconds()))
	}

	log.Info("db_migration_success",
		zap.String("component", "database"),
		zap.Int64("duration_ms", time.Since(start).Milliseconds()))

	return nil
}
