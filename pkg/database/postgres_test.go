package database

import (
	"context"
	"errors"
	"testing"

	"cinema-showtime/internal/data/entity"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeRow struct {
	document []byte
	err      error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*dest[0].(*[]byte) = r.document
	return nil
}

type fakeDB struct {
	document []byte
	readErr  error
	execErr  error
	execs    int
	closed   bool
}

func (db *fakeDB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	if db.readErr != nil {
		return fakeRow{err: db.readErr}
	}
	if db.document == nil {
		return fakeRow{err: pgx.ErrNoRows}
	}
	return fakeRow{document: db.document}
}

func (db *fakeDB) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	db.execs++
	if db.execErr != nil {
		return pgconn.CommandTag{}, db.execErr
	}
	if len(args) == 2 {
		db.document = args[1].([]byte)
		return pgconn.NewCommandTag("INSERT 0 1"), nil
	}
	return pgconn.NewCommandTag("CREATE TABLE"), nil
}

func (db *fakeDB) Close() {
	db.closed = true
}

func TestPostgresStorage_EmptyTable(t *testing.T) {
	storage := NewPostgresStorage(&fakeDB{}, zap.NewNop())

	snapshot, err := storage.Load(context.Background())

	require.NoError(t, err)
	assert.Equal(t, entity.NewSnapshot(), snapshot)
}

func TestPostgresStorage_RoundTrip(t *testing.T) {
	db := &fakeDB{}
	storage := NewPostgresStorage(db, zap.NewNop())
	want := sampleSnapshot(t)

	require.NoError(t, storage.EnsureSchema(context.Background()))
	require.NoError(t, storage.Save(context.Background(), want))
	got, err := storage.Load(context.Background())

	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, 2, db.execs)

	storage.Close()
	assert.True(t, db.closed)
}

func TestPostgresStorage_Errors(t *testing.T) {
	boom := errors.New("connection reset")

	_, err := NewPostgresStorage(&fakeDB{readErr: boom}, zap.NewNop()).Load(context.Background())
	var pe *PersistenceError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, OpRead, pe.Op)
	assert.ErrorIs(t, err, boom)

	snapshot, err := NewPostgresStorage(&fakeDB{document: []byte("[]")}, zap.NewNop()).Load(context.Background())
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, OpDecode, pe.Op)
	assert.Equal(t, entity.NewSnapshot(), snapshot)

	err = NewPostgresStorage(&fakeDB{execErr: boom}, zap.NewNop()).Save(context.Background(), sampleSnapshot(t))
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, OpWrite, pe.Op)

	err = NewPostgresStorage(&fakeDB{execErr: boom}, zap.NewNop()).EnsureSchema(context.Background())
	assert.ErrorIs(t, err, boom)
}
