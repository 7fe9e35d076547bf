// Package persistence moves the product collection to and from disk: a
// binary snapshot that keeps every field, and a seven-column CSV that does
// not.
package persistence

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

var (
	// ErrPersistenceUnavailable is matched by every file-level failure.
	ErrPersistenceUnavailable = errors.New("persistence unavailable")

	ErrDataDir            = fmt.Errorf("%w: cannot create data directory", ErrPersistenceUnavailable)
	ErrSnapshotUnreadable = fmt.Errorf("%w: snapshot unreadable", ErrPersistenceUnavailable)
	ErrSnapshotWrite      = fmt.Errorf("%w: snapshot not written", ErrPersistenceUnavailable)
	ErrCSVNotFound        = fmt.Errorf("%w: csv file not found", ErrPersistenceUnavailable)
	ErrCSVUnreadable      = fmt.Errorf("%w: csv file unreadable", ErrPersistenceUnavailable)
	ErrCSVWrite           = fmt.Errorf("%w: csv file not written", ErrPersistenceUnavailable)
)

// FileStore keeps the snapshot and CSV files under a single data directory.
type FileStore struct {
	dataDir      string
	snapshotFile string
	logger       *zap.Logger
}

// NewFileStore creates a FileStore rooted at dataDir. The directory is
// created lazily by each operation.
func NewFileStore(dataDir, snapshotFile string, logger *zap.Logger) *FileStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FileStore{
		dataDir:      dataDir,
		snapshotFile: snapshotFile,
		logger:       logger.Named("persistence"),
	}
}

// DataDir returns the directory holding every file of the store.
func (s *FileStore) DataDir() string {
	return s.dataDir
}

// SnapshotPath returns the location of the snapshot file.
func (s *FileStore) SnapshotPath() string {
	return filepath.Join(s.dataDir, s.snapshotFile)
}

func (s *FileStore) ensureDataDir() error {
	if err := os.MkdirAll(s.dataDir, 0o755); err != nil {
		return fmt.Errorf("%w: %w", ErrDataDir, err)
	}
	return nil
}
