package usecase

import (
	"context"
	"path/filepath"
	"testing"

	"cinema-showtime/internal/data/repository"
	"cinema-showtime/internal/dto/request"
	"cinema-showtime/pkg/database"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type testEnv struct {
	repo    *repository.Repository
	storage *database.FileStorage
	svc     *Service
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	log := zap.NewNop()
	repo := repository.NewRepository(nil, log)
	storage := database.NewFileStorage(filepath.Join(t.TempDir(), "cinema_data.json"), log)

	return &testEnv{
		repo:    repo,
		storage: storage,
		svc:     NewService(repo, storage, log),
	}
}

// seedShowtime adds one movie and one showtime and returns the showtime id.
func (e *testEnv) seedShowtime(t *testing.T) int {
	t.Helper()
	ctx := context.Background()

	movie, err := e.svc.Movie.AddMovie(ctx, &request.MovieRequest{Title: "Dune", DurationMin: 155, Genre: "Sci-Fi"})
	require.NoError(t, err)

	showtime, err := e.svc.Showtime.AddShowtime(ctx, &request.ShowtimeRequest{MovieID: movie.MovieID, StartTime: "2024-01-01 18:00"})
	require.NoError(t, err)

	return showtime.ShowtimeID
}
