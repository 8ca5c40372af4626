package sqlite

import (
	"time"

	"github.com/glebarez/sqlite"
	"github.com/labstack/gommon/log"
	"gorm.io/gorm"
	"pocketnotes/internal/domain/entity"
)

// Init opens (or creates) the sqlite database at dbPath and migrates the
// note table. Pass ":memory:" for an ephemeral store, e.g. in tests.
func Init(dbPath string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(&entity.Note{})
	if err != nil {
		return nil, err
	}

	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}

// Flush commits pending WAL pages to the main database file. It is
// idempotent and safe to call with nothing pending, so hosts can invoke it
// on suspend/terminate as a "persist now" hook. The repository also calls it
// after every mutation.
func Flush(db *gorm.DB) bool {
	if err := db.Exec("PRAGMA wal_checkpoint(TRUNCATE)").Error; err != nil {
		log.Errorf("failed to checkpoint sqlite store: %v", err)
		return false
	}
	return true
}
