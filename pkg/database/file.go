package database

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"cinema-showtime/internal/data/entity"

	"go.uber.org/zap"
)

// FileStorage keeps the state in a single JSON file. Save overwrites the
// file in place.
type FileStorage struct {
	path string
	log  *zap.Logger
}

func NewFileStorage(path string, log *zap.Logger) *FileStorage {
	return &FileStorage{
		path: path,
		log:  log.With(zap.String("storage", "file")),
	}
}

func (s *FileStorage) Load(ctx context.Context) (*entity.Snapshot, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		s.log.Info("No data file, starting empty", zap.String("path", s.path))
		return entity.NewSnapshot(), nil
	}
	if err != nil {
		s.log.Error("Failed to read data file", zap.Error(err), zap.String("path", s.path))
		return entity.NewSnapshot(), &PersistenceError{Op: OpRead, Location: s.path, Err: err}
	}

	snapshot, err := decodeSnapshot(s.path, data)
	if err != nil {
		s.log.Error("Failed to decode data file", zap.Error(err), zap.String("path", s.path))
		return entity.NewSnapshot(), err
	}

	s.log.Info("State loaded",
		zap.String("path", s.path),
		zap.Int("movies", len(snapshot.Movies)),
		zap.Int("showtimes", len(snapshot.Showtimes)),
		zap.Int("bookings", len(snapshot.Bookings)),
	)

	return snapshot, nil
}

func (s *FileStorage) Save(ctx context.Context, snapshot *entity.Snapshot) error {
	data, err := encodeSnapshot(snapshot)
	if err != nil {
		return &PersistenceError{Op: OpEncode, Location: s.path, Err: err}
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return &PersistenceError{Op: OpWrite, Location: s.path, Err: err}
		}
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		s.log.Error("Failed to write data file", zap.Error(err), zap.String("path", s.path))
		return &PersistenceError{Op: OpWrite, Location: s.path, Err: err}
	}

	s.log.Info("State saved", zap.String("path", s.path), zap.Int("bytes", len(data)))
	return nil
}

func (s *FileStorage) Close() {}
