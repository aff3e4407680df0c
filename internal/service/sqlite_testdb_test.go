package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// stripPostgresDefaults rewrites migrator DDL so the Postgres-only
// gen_random_uuid() column default never reaches SQLite, which rejects
// function-call defaults at CREATE TABLE time. Services always assign
// Id via uuid.New(), so no test insert relies on the DB-side default.
func stripPostgresDefaults(t *testing.T, db *gorm.DB) {
	t.Helper()
	err := db.Callback().Raw().Before("gorm:raw").Register("test:strip_pg_defaults", func(tx *gorm.DB) {
		sql := tx.Statement.SQL.String()
		if strings.Contains(sql, "DEFAULT gen_random_uuid()") {
			tx.Statement.SQL.Reset()
			tx.Statement.SQL.WriteString(strings.ReplaceAll(sql, "DEFAULT gen_random_uuid()", ""))
		}
	})
	require.NoError(t, err)
}
