package database

import (
	"SimpleBlog/internal/model"
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// CreateTempDB 为单个测试创建独立的 SQLite 库并完成迁移, 测试结束自动关闭
func CreateTempDB(t testing.TB) *gorm.DB {
	t.Helper()

	dsn := withForeignKeys(filepath.Join(t.TempDir(), "blog.db") + "?_pragma=busy_timeout(5000)")
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open temp db: %v", err)
	}
	if err = db.AutoMigrate(model.All()...); err != nil {
		t.Fatalf("migrate temp db: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}
