package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"cinema-showtime/internal/data/entity"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeRedis struct {
	values map[string]string
	getErr error
	setErr error
	closed bool
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{values: map[string]string{}}
}

func (f *fakeRedis) Get(ctx context.Context, key string) *redis.StringCmd {
	if f.getErr != nil {
		return redis.NewStringResult("", f.getErr)
	}
	v, ok := f.values[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeRedis) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	if f.setErr != nil {
		return redis.NewStatusResult("", f.setErr)
	}
	f.values[key] = string(value.([]byte))
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeRedis) Close() error {
	f.closed = true
	return nil
}

func TestRedisStorage_MissingKey(t *testing.T) {
	storage := NewRedisStorage(newFakeRedis(), "cinema:state", zap.NewNop())

	snapshot, err := storage.Load(context.Background())

	require.NoError(t, err)
	assert.Equal(t, entity.NewSnapshot(), snapshot)
}

func TestRedisStorage_RoundTrip(t *testing.T) {
	client := newFakeRedis()
	storage := NewRedisStorage(client, "cinema:state", zap.NewNop())
	want := sampleSnapshot(t)

	require.NoError(t, storage.Save(context.Background(), want))
	assert.Contains(t, client.values, "cinema:state")

	got, err := storage.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)

	storage.Close()
	assert.True(t, client.closed)
}

func TestRedisStorage_Errors(t *testing.T) {
	boom := errors.New("i/o timeout")
	var pe *PersistenceError

	client := newFakeRedis()
	client.getErr = boom
	_, err := NewRedisStorage(client, "k", zap.NewNop()).Load(context.Background())
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, OpRead, pe.Op)

	client = newFakeRedis()
	client.values["k"] = "not json"
	snapshot, err := NewRedisStorage(client, "k", zap.NewNop()).Load(context.Background())
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, OpDecode, pe.Op)
	assert.Equal(t, entity.NewSnapshot(), snapshot)

	client = newFakeRedis()
	client.setErr = boom
	err = NewRedisStorage(client, "k", zap.NewNop()).Save(context.Background(), entity.NewSnapshot())
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, OpWrite, pe.Op)
	assert.ErrorIs(t, err, boom)
}
