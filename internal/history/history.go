// Package history persists one row per transpilation run to a local
// SQLite database, so "pytocpp history" can list what was compiled when
// and with how many diagnostics.
package history

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Run is one recorded invocation.
type Run struct {
	ID          uint `gorm:"primarykey"`
	SourcePath  string
	SourceHash  string
	Diagnostics int
	Success     bool
	CreatedAt   time.Time
}

type Store struct {
	db *gorm.DB
}

// Open opens (and migrates) the database at path.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating history directory: %w", err)
		}
	}
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("opening history database: %w", err)
	}
	if err := db.AutoMigrate(&Run{}); err != nil {
		return nil, fmt.Errorf("migrating history database: %w", err)
	}
	return &Store{db: db}, nil
}

// DefaultPath places the database under the user cache directory, falling
// back to the working directory when none is available.
func DefaultPath() string {
	if cache, err := os.UserCacheDir(); err == nil {
		return filepath.Join(cache, "pytocpp", "history.db")
	}
	return ".pytocpp-history.db"
}

// Hash fingerprints the source content so identical re-runs are
// recognizable in the listing.
func Hash(source string) string {
	sum := sha256.Sum256([]byte(source))
	return hex.EncodeToString(sum[:8])
}

func (s *Store) Record(run *Run) error {
	return s.db.Create(run).Error
}

// List returns the most recent runs, newest first.
func (s *Store) List(limit int) ([]Run, error) {
	var runs []Run
	err := s.db.Order("created_at desc, id desc").Limit(limit).Find(&runs).Error
	return runs, err
}
