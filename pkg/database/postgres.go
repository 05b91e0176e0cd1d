package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cinema-showtime/internal/data/entity"
	"cinema-showtime/pkg/utils"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// PgxIface is the subset of the pgx pool used by PostgresStorage.
type PgxIface interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Close()
}

// DB wrapper struct
type DB struct {
	pool *pgxpool.Pool
}

// QueryRow implements PgxIface
func (db *DB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return db.pool.QueryRow(ctx, sql, args...)
}

// Exec implements PgxIface
func (db *DB) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return db.pool.Exec(ctx, sql, args...)
}

// Close implements PgxIface
func (db *DB) Close() {
	db.pool.Close()
}

// InitDB opens a connection pool and pings it.
func InitDB(config utils.DatabaseConfig) (PgxIface, error) {
	// Build connection string
	connStr := fmt.Sprintf("user=%s password=%s dbname=%s sslmode=disable host=%s port=%s",
		config.User, config.Password, config.Name, config.Host, config.Port)

	// Parse config
	poolConfig, err := pgxpool.ParseConfig(connStr)
	if err != nil {
		return nil, fmt.Errorf("parse pool config: %w", err)
	}

	// Pool configuration
	poolConfig.MaxConns = config.MaxConns
	poolConfig.MinConns = 1
	poolConfig.MaxConnLifetime = 30 * time.Minute
	poolConfig.MaxConnIdleTime = 5 * time.Minute
	poolConfig.HealthCheckPeriod = 1 * time.Minute
	poolConfig.ConnConfig.ConnectTimeout = 5 * time.Second

	// Create connection pool
	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}

	// Test connection
	pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database failed: %w", err)
	}

	return &DB{pool: pool}, nil
}

const (
	stateRowID = 1

	createStateTable = `
		CREATE TABLE IF NOT EXISTS cinema_state (
			id         INTEGER PRIMARY KEY,
			document   JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`
)

// PostgresStorage keeps the state document in a single jsonb row.
type PostgresStorage struct {
	db  PgxIface
	log *zap.Logger
}

func NewPostgresStorage(db PgxIface, log *zap.Logger) *PostgresStorage {
	return &PostgresStorage{
		db:  db,
		log: log.With(zap.String("storage", "postgres")),
	}
}

func (s *PostgresStorage) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.Exec(ctx, createStateTable); err != nil {
		s.log.Error("Failed to create state table", zap.Error(err))
		return fmt.Errorf("create state table: %w", err)
	}
	return nil
}

func (s *PostgresStorage) Load(ctx context.Context) (*entity.Snapshot, error) {
	query := `SELECT document FROM cinema_state WHERE id = $1`

	var document []byte
	err := s.db.QueryRow(ctx, query, stateRowID).Scan(&document)
	if errors.Is(err, pgx.ErrNoRows) {
		s.log.Info("No stored state, starting empty")
		return entity.NewSnapshot(), nil
	}
	if err != nil {
		s.log.Error("Failed to read state row", zap.Error(err))
		return entity.NewSnapshot(), &PersistenceError{Op: OpRead, Location: "cinema_state", Err: err}
	}

	snapshot, err := decodeSnapshot("cinema_state", document)
	if err != nil {
		s.log.Error("Failed to decode state row", zap.Error(err))
		return entity.NewSnapshot(), err
	}

	return snapshot, nil
}

func (s *PostgresStorage) Save(ctx context.Context, snapshot *entity.Snapshot) error {
	document, err := encodeSnapshot(snapshot)
	if err != nil {
		return &PersistenceError{Op: OpEncode, Location: "cinema_state", Err: err}
	}

	query := `
		INSERT INTO cinema_state (id, document, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (id) DO UPDATE SET document = EXCLUDED.document, updated_at = EXCLUDED.updated_at
	`

	if _, err := s.db.Exec(ctx, query, stateRowID, document); err != nil {
		s.log.Error("Failed to write state row", zap.Error(err))
		return &PersistenceError{Op: OpWrite, Location: "cinema_state", Err: err}
	}

	s.log.Info("State saved", zap.Int("bytes", len(document)))
	return nil
}

func (s *PostgresStorage) Close() {
	s.db.Close()
}
