package migration

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"time"
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
		Name: "create_table_accounts",
		SQL: `CREATE TABLE IF NOT EXISTS accounts (
  id           UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  login_id     TEXT        NOT NULL UNIQUE,
  secret_hash  TEXT        NOT NULL,
  display_name TEXT        NOT NULL,
  role         TEXT        NOT NULL CHECK (role IN ('admin', 'user')),
  created_at   TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_archived_accounts",
		SQL: `CREATE TABLE IF NOT EXISTS archived_accounts (
  id           UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  login_id     TEXT        NOT NULL,
  secret_hash  TEXT        NOT NULL,
  display_name TEXT        NOT NULL,
  role         TEXT        NOT NULL,
  archived_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_documents",
		SQL: `CREATE TABLE IF NOT EXISTS documents (
  id            UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  account_id    UUID        NOT NULL REFERENCES accounts (id),
  doc_type      TEXT        NOT NULL,
  storage_url   TEXT        NOT NULL UNIQUE,
  owner_name    TEXT        NOT NULL,
  resource_kind TEXT        NOT NULL,
  expires_at    DATE,
  created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_archived_documents",
		SQL: `CREATE TABLE IF NOT EXISTS archived_documents (
  id            UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  account_id    UUID        NOT NULL REFERENCES archived_accounts (id),
  doc_type      TEXT        NOT NULL,
  storage_url   TEXT        NOT NULL UNIQUE,
  owner_name    TEXT        NOT NULL,
  resource_kind TEXT        NOT NULL,
  expires_at    DATE,
  created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_company_documents",
		SQL: `CREATE TABLE IF NOT EXISTS company_documents (
  id            UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  doc_type      TEXT        NOT NULL,
  storage_url   TEXT        NOT NULL UNIQUE,
  resource_kind TEXT        NOT NULL,
  expires_at    DATE,
  created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_documents_account_id",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_documents_account_id ON documents (account_id);`,
	},
	{
		Name: "create_index_documents_doc_type",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_documents_doc_type ON documents (doc_type);`,
	},
	{
		Name: "create_index_archived_documents_account_id",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_archived_documents_account_id ON archived_documents (account_id);`,
	},
}

// EnsureMigrated checks if the 'accounts' table exists and runs migrations if it doesn't.
func EnsureMigrated(ctx context.Context, db *sql.DB, loc *time.Location, dbHost string) error {
	start := time.Now()

	logJSON(loc, map[string]any{
		"component": "database",
		"event":     "db_migration_check",
		"status":    "starting",
		"db_host":   dbHost,
	})

	var exists bool
	query := "SELECT to_regclass('public.accounts') IS NOT NULL"
	err := db.QueryRowContext(ctx, query).Scan(&exists)
	if err != nil {
		logJSON(loc, map[string]any{
			"component":     "database",
			"event":         "db_migration_failed",
			"status":        "error",
			"error_message": fmt.Sprintf("failed to check sentinel table: %v", err),
			"db_host":       dbHost,
			"duration_ms":   time.Since(start).Milliseconds(),
		})
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		logJSON(loc, map[string]any{
			"component":   "database",
			"event":       "db_migration_skip",
			"status":      "success",
			"msg":         "schema already exists, skipping migration",
			"db_host":     dbHost,
			"duration_ms": time.Since(start).Milliseconds(),
		})
		return nil
	}

	logJSON(loc, map[string]any{
		"component": "database",
		"event":     "db_migration_start",
		"status":    "in_progress",
		"db_host":   dbHost,
	})

	for _, step := range steps {
		stepStart := time.Now()
		_, err := db.ExecContext(ctx, step.SQL)
		if err != nil {
			logJSON(loc, map[string]any{
				"component":        "database",
				"event":            "db_migration_failed",
				"status":           "error",
				"migration_step":   step.Name,
				"error_message":    err.Error(),
				"db_host":          dbHost,
				"duration_ms":      time.Since(start).Milliseconds(),
				"step_duration_ms": time.Since(stepStart).Milliseconds(),
			})
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		logJSON(loc, map[string]any{
			"component":        "database",
			"event":            "db_migration_step",
			"status":           "success",
			"migration_step":   step.Name,
			"db_host":          dbHost,
			"step_duration_ms": time.Since(stepStart).Milliseconds(),
		})
	}

	logJSON(loc, map[string]any{
		"component":   "database",
		"event":       "db_migration_success",
		"status":      "success",
		"db_host":     dbHost,
		"duration_ms": time.Since(start).Milliseconds(),
	})

	return nil
}

func logJSON(loc *time.Location, data map[string]any) {
	data["ts"] = time.Now().In(loc).Format(time.RFC3339Nano)
	if _, ok := data["level"]; !ok {
		if data["status"] == "error" {
			data["level"] = "error"
		} else {
			data["level"] = "info"
		}
	}

	b, err := json.Marshal(data)
	if err != nil {
		log.Printf("failed to marshal migration log: %v", err)
		return
	}
	log.SetFlags(0)
	log.Println(string(b))
}
