package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLitePoolNeverRecyclesItsConnection(t *testing.T) {
	assert.Equal(t, 1, sqlitePool.maxOpen)
	assert.Zero(t, sqlitePool.maxLifetime)
	assert.NotZero(t, postgresPool.maxLifetime)
}

func TestNewSQLiteDBKeepsMemoryDatabase(t *testing.T) {
	db, err := NewSQLiteDB(":memory:")
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	assert.Equal(t, 1, sqlDB.Stats().MaxOpenConnections)

	require.NoError(t, db.Exec("CREATE TABLE notes (body TEXT)").Error)
	for i := 0; i < 3; i++ {
		require.NoError(t, db.Exec("INSERT INTO notes (body) VALUES (?)", "kept").Error)
	}

	var count int64
	require.NoError(t, db.Raw("SELECT COUNT(*) FROM notes").Scan(&count).Error)
	assert.EqualValues(t, 3, count)
}
