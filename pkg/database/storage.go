package database

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"cinema-showtime/internal/data/entity"
	"cinema-showtime/pkg/utils"

	"go.uber.org/zap"
)

// Storage persists the whole cinema state as one document.
//
// Load returns an empty snapshot and a nil error when no document exists
// yet. When a document exists but cannot be read or decoded, Load still
// returns an empty snapshot together with a *PersistenceError so the
// caller can report it and carry on.
type Storage interface {
	Load(ctx context.Context) (*entity.Snapshot, error)
	Save(ctx context.Context, snapshot *entity.Snapshot) error
	Close()
}

type PersistenceOp string

const (
	OpRead     PersistenceOp = "read"
	OpDecode   PersistenceOp = "decode"
	OpValidate PersistenceOp = "validate"
	OpEncode   PersistenceOp = "encode"
	OpWrite    PersistenceOp = "write"
)

type PersistenceError struct {
	Op       PersistenceOp
	Location string
	Err      error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence %s %s: %v", e.Op, e.Location, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// IsPersistenceError reports whether err carries a *PersistenceError.
func IsPersistenceError(err error) bool {
	var pe *PersistenceError
	return errors.As(err, &pe)
}

// NewStorage picks the backend named by cfg.Storage.Driver.
func NewStorage(cfg *utils.Config, log *zap.Logger) (Storage, error) {
	switch cfg.Storage.Driver {
	case "", "file":
		return NewFileStorage(cfg.Storage.DataFile, log), nil
	case "postgres":
		db, err := InitDB(cfg.Database)
		if err != nil {
			return nil, err
		}
		storage := NewPostgresStorage(db, log)
		if err := storage.EnsureSchema(context.Background()); err != nil {
			db.Close()
			return nil, err
		}
		return storage, nil
	case "redis":
		client, err := InitRedis(cfg.Redis)
		if err != nil {
			return nil, err
		}
		return NewRedisStorage(client, cfg.Redis.Key, log), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}

func encodeSnapshot(snapshot *entity.Snapshot) ([]byte, error) {
	if snapshot == nil {
		snapshot = entity.NewSnapshot()
	}
	return json.MarshalIndent(snapshot, "", "  ")
}

// decodeSnapshot parses a document and checks it against the entity
// constraints. Missing top-level arrays are treated as empty.
func decodeSnapshot(location string, data []byte) (*entity.Snapshot, error) {
	var snapshot entity.Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, &PersistenceError{Op: OpDecode, Location: location, Err: err}
	}

	if snapshot.Movies == nil {
		snapshot.Movies = []*entity.Movie{}
	}
	if snapshot.Showtimes == nil {
		snapshot.Showtimes = []*entity.Showtime{}
	}
	if snapshot.Bookings == nil {
		snapshot.Bookings = []*entity.Booking{}
	}

	if errs := utils.ValidateStruct(snapshot); len(errs) > 0 {
		return nil, &PersistenceError{
			Op:       OpValidate,
			Location: location,
			Err:      fmt.Errorf("%w: %s", entity.ErrValidation, utils.FormatValidationErrors(errs)),
		}
	}

	return &snapshot, nil
}
