package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnect(t *testing.T) {
	t.Run("Invalid Connection", func(t *testing.T) {
		cfg := Config{
			Driver:         "mysql",
			Host:           "localhost",
			Port:           9999, // Unused port
			User:           "root",
			Password:       "wrongpassword",
			Name:           "inventory",
			TimeoutSeconds: 1,
		}

		db, err := Connect(cfg)
		assert.Error(t, err)
		assert.Nil(t, db)
	})

	t.Run("Unsupported Driver", func(t *testing.T) {
		db, err := Connect(Config{Driver: "oracle"})
		assert.ErrorContains(t, err, "unsupported database driver")
		assert.Nil(t, db)
	})

	t.Run("SQLite In Memory", func(t *testing.T) {
		db, err := Connect(Config{Driver: "sqlite", Name: ":memory:"})
		require.NoError(t, err)
		assert.Equal(t, "sqlite", db.Dialector.Name())
	})
}

func TestConfig_DSN(t *testing.T) {
	mysqlCfg := Config{Driver: "mysql", Host: "db", Port: 3307, User: "inv", Password: "p@ss/word", Name: "stock", TimeoutSeconds: 5}
	assert.Equal(t,
		"inv:p%40ss%2Fword@tcp(db:3307)/stock?charset=utf8mb4&parseTime=True&loc=UTC&timeout=5s&readTimeout=5s&writeTimeout=5s",
		mysqlCfg.DSN())

	assert.Equal(t, "data/inventory.db", Config{Driver: "sqlite", Name: "data/inventory.db"}.DSN())
	assert.Equal(t, 30, Config{}.Timeout())
}
