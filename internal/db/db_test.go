package db_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thrivelog/thrivelog/internal/db"
	"github.com/thrivelog/thrivelog/internal/db/dbtest"
)

func TestMigrationsApplyAndRollBack(t *testing.T) {
	conn := dbtest.New(t)

	version, err := db.MigrationVersion(conn.DB, "sqlite")
	require.NoError(t, err)
	assert.Equal(t, int64(4), version)

	for _, table := range []string{"users", "habits", "mbti_profiles", "journal_entries"} {
		var n int
		require.NoError(t, conn.Get(&n, `SELECT COUNT(*) FROM `+table))
		assert.Zero(t, n, table)
	}

	require.NoError(t, db.MigrateDown(conn.DB, "sqlite"))
	version, err = db.MigrationVersion(conn.DB, "sqlite")
	require.NoError(t, err)
	assert.Equal(t, int64(3), version)

	require.NoError(t, db.RunMigrations(conn.DB, "sqlite"))
}

func TestCloseNil(t *testing.T) {
	assert.NoError(t, db.Close(nil))
}
