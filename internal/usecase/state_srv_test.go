package usecase

import (
	"context"
	"testing"

	"cinema-showtime/internal/data/repository"
	"cinema-showtime/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestStateService_SaveThenLoad(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	showtimeID := env.seedShowtime(t)

	_, err := env.svc.Booking.BookSeats(ctx, &request.BookingRequest{ShowtimeID: showtimeID, CustomerName: "Alice", SeatNumbers: []string{"A1", "A2"}})
	require.NoError(t, err)
	_, err = env.svc.Booking.BookSeats(ctx, &request.BookingRequest{ShowtimeID: showtimeID, CustomerName: "Bob", SeatNumbers: []string{"F7"}})
	require.NoError(t, err)
	require.NoError(t, env.svc.Booking.CancelBooking(ctx, 10001))

	require.NoError(t, env.svc.State.Save(ctx))

	loaded, err := env.storage.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, env.repo.Snapshot(), loaded)

	reloaded := repository.NewRepository(loaded, zap.NewNop())
	movieID, nextShowtimeID, bookingID := reloaded.NextIDs()
	assert.Equal(t, 2, movieID)
	assert.Equal(t, 2, nextShowtimeID)
	// 10001 was cancelled, so the counter follows the highest live booking
	assert.Equal(t, 10003, bookingID)

	svc := NewService(reloaded, env.storage, zap.NewNop())
	_, err = svc.Booking.BookSeats(ctx, &request.BookingRequest{ShowtimeID: showtimeID, SeatNumbers: []string{"F7"}})
	assert.Error(t, err)
	booking, err := svc.Booking.BookSeats(ctx, &request.BookingRequest{ShowtimeID: showtimeID, SeatNumbers: []string{"A1"}})
	require.NoError(t, err)
	assert.Equal(t, 10003, booking.BookingID)
}
