package testutil

import (
	"testing"

	"github.com/arcanusdsp/server/cache"
	"github.com/arcanusdsp/server/config"
	dbadapter "github.com/arcanusdsp/server/db"
	"github.com/arcanusdsp/server/model"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// SetupTestDB creates an in-memory sqlite DB holding the darkstar schema
// and the site's own tables. It requires no external services.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := dbadapter.Open(config.DatabaseConfig{
		Mode:       dbadapter.ModeSQLite,
		SQLitePath: ":memory:",
	})
	require.NoError(t, err, "SetupTestDB: Open")
	require.NoError(t, model.MigrateDarkstar(db), "SetupTestDB: MigrateDarkstar")
	require.NoError(t, model.MigrateOwned(db), "SetupTestDB: MigrateOwned")
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

// SetupTestCache creates a LocalCache (no Redis required).
func SetupTestCache(t *testing.T) cache.Cache {
	t.Helper()
	c, err := cache.NewCache(cache.CacheConfig{}) // empty RedisAddr → LocalCache
	require.NoError(t, err, "SetupTestCache: NewCache")
	t.Cleanup(c.Close)
	return c
}

// Seed inserts rows, failing the test on the first error.
func Seed(t *testing.T, db *gorm.DB, rows ...interface{}) {
	t.Helper()
	for _, r := range rows {
		require.NoError(t, db.Create(r).Error, "Seed %T", r)
	}
}
