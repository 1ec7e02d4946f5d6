package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetTableColumns(t *testing.T) {
	db, err := Connect(Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)

	err = db.Exec("CREATE TABLE test_slots (slot_key TEXT PRIMARY KEY, data BLOB NOT NULL, updated_at DATETIME)").Error
	require.NoError(t, err)

	columns, err := GetTableColumns(db, "test_slots")
	require.NoError(t, err)
	require.Len(t, columns, 3)

	colMap := make(map[string]ColumnInfo)
	for _, col := range columns {
		colMap[col.Field] = col
	}

	assert.Equal(t, "text", colMap["slot_key"].Type)
	assert.Equal(t, "PRI", colMap["slot_key"].Key)
	assert.Equal(t, "blob", colMap["data"].Type)
	assert.Equal(t, "NO", colMap["data"].Null)
	assert.Equal(t, "datetime", colMap["updated_at"].Type)

	// PRAGMA table_info returns an empty result for unknown tables.
	cols, err := GetTableColumns(db, "non_existent")
	assert.NoError(t, err)
	assert.Empty(t, cols)
}

func TestMissingColumns(t *testing.T) {
	db, err := Connect(Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, db.Exec("CREATE TABLE partial (slot_key TEXT, data BLOB)").Error)

	missing, err := MissingColumns(db, "partial", "slot_key", "DATA", "updated_at")
	require.NoError(t, err)
	assert.Equal(t, []string{"updated_at"}, missing)

	missing, err = MissingColumns(db, "absent", "slot_key")
	require.NoError(t, err)
	assert.Equal(t, []string{"slot_key"}, missing)
}
