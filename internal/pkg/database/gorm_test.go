package database

import (
	"SimpleBlog/internal/api/config"
	"SimpleBlog/internal/model"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestNewGormDBSqlite(t *testing.T) {
	cfg := &config.DBConfig{
		Driver:      "sqlite",
		DSN:         filepath.Join(t.TempDir(), "app.db"),
		MaxIdle:     1,
		MaxOpen:     1,
		MaxLifetime: 1,
	}
	db, err := NewGormDB(cfg)
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	for _, table := range []string{"users", "categories", "posts", "post_categories"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}
	assert.True(t, db.Migrator().HasColumn(&model.Post{}, "version"))

	// DSN 未带 pragma 时同样拒绝悬空引用
	err = db.Create(&model.PostCategory{PostID: 42, CategoryID: 7}).Error
	assert.ErrorIs(t, err, gorm.ErrForeignKeyViolated)
}

func TestWithForeignKeys(t *testing.T) {
	assert.Equal(t, "blog.db?_pragma=foreign_keys(1)", withForeignKeys("blog.db"))
	assert.Equal(t, "blog.db?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)", withForeignKeys("blog.db?_pragma=busy_timeout(5000)"))
	assert.Equal(t, "blog.db?_pragma=foreign_keys(0)", withForeignKeys("blog.db?_pragma=foreign_keys(0)"))
}

func TestNewGormDBUnknownDriver(t *testing.T) {
	_, err := NewGormDB(&config.DBConfig{Driver: "oracle", DSN: "x"})
	require.Error(t, err)
}

func TestTempDBEnforcesForeignKeys(t *testing.T) {
	db := CreateTempDB(t)
	err := db.Create(&model.PostCategory{PostID: 42, CategoryID: 7}).Error
	require.Error(t, err)
}
