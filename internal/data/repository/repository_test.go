package repository

import (
	"context"
	"testing"

	"cinema-showtime/internal/data/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewRepository_EmptyCounters(t *testing.T) {
	repo := NewRepository(nil, zap.NewNop())

	movieID, showtimeID, bookingID := repo.NextIDs()
	assert.Equal(t, 1, movieID)
	assert.Equal(t, 1, showtimeID)
	assert.Equal(t, 10001, bookingID)

	snapshot := repo.Snapshot()
	assert.NotNil(t, snapshot.Movies)
	assert.NotNil(t, snapshot.Showtimes)
	assert.NotNil(t, snapshot.Bookings)
}

func TestNewRepository_CountersFromData(t *testing.T) {
	snapshot := &entity.Snapshot{
		Movies: []*entity.Movie{{MovieID: 7}, {MovieID: 3}},
		Showtimes: []*entity.Showtime{
			{ShowtimeID: 2, MovieID: 7, Seats: entity.NewSeatGrid()},
			{ShowtimeID: 12, MovieID: 3, Seats: entity.NewSeatGrid()},
		},
		Bookings: []*entity.Booking{{BookingID: 10040}, {BookingID: 10005}},
	}

	repo := NewRepository(snapshot, zap.NewNop())

	movieID, showtimeID, bookingID := repo.NextIDs()
	assert.Equal(t, 8, movieID)
	assert.Equal(t, 13, showtimeID)
	assert.Equal(t, 10041, bookingID)
}

func TestNewRepository_BookingCounterNeverBelowFirstID(t *testing.T) {
	snapshot := entity.NewSnapshot()
	snapshot.Bookings = []*entity.Booking{{BookingID: 42}}

	_, _, bookingID := NewRepository(snapshot, zap.NewNop()).NextIDs()

	assert.Equal(t, 10001, bookingID)
}

func TestMovieRepository_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(nil, zap.NewNop())

	first := &entity.Movie{Title: "Dune", DurationMin: 155, Genre: "Sci-Fi"}
	second := &entity.Movie{Title: "Heat", DurationMin: 170, Genre: "Crime"}
	require.NoError(t, repo.Movie.Create(ctx, first))
	require.NoError(t, repo.Movie.Create(ctx, second))

	assert.Equal(t, 1, first.MovieID)
	assert.Equal(t, 2, second.MovieID)

	found, err := repo.Movie.FindByID(ctx, 2)
	require.NoError(t, err)
	assert.Same(t, second, found)

	missing, err := repo.Movie.FindByID(ctx, 99)
	require.NoError(t, err)
	assert.Nil(t, missing)

	all, err := repo.Movie.FindAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []*entity.Movie{first, second}, all)
}

func TestShowtimeRepository_FilterByMovie(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(nil, zap.NewNop())

	for _, movieID := range []int{1, 2, 1} {
		require.NoError(t, repo.Showtime.Create(ctx, &entity.Showtime{MovieID: movieID, Seats: entity.NewSeatGrid()}))
	}

	all, err := repo.Showtime.FindAll(ctx, nil)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{all[0].ShowtimeID, all[1].ShowtimeID, all[2].ShowtimeID})

	movieID := 1
	filtered, err := repo.Showtime.FindAll(ctx, &movieID)
	require.NoError(t, err)
	require.Len(t, filtered, 2)
	assert.Equal(t, 1, filtered[0].ShowtimeID)
	assert.Equal(t, 3, filtered[1].ShowtimeID)
}

func TestBookingRepository_CreateDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(nil, zap.NewNop())

	a := &entity.Booking{ShowtimeID: 1, CustomerName: "Alice"}
	b := &entity.Booking{ShowtimeID: 1, CustomerName: "Bob"}
	require.NoError(t, repo.Booking.Create(ctx, a))
	require.NoError(t, repo.Booking.Create(ctx, b))
	assert.Equal(t, 10001, a.BookingID)
	assert.Equal(t, 10002, b.BookingID)

	require.NoError(t, repo.Booking.Delete(ctx, 10001))
	assert.ErrorIs(t, repo.Booking.Delete(ctx, 10001), entity.ErrNotFound)

	all, err := repo.Booking.FindAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []*entity.Booking{b}, all)

	// ids are never reused within a run
	c := &entity.Booking{ShowtimeID: 1}
	require.NoError(t, repo.Booking.Create(ctx, c))
	assert.Equal(t, 10003, c.BookingID)
}
