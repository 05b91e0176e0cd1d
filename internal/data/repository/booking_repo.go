package repository

import (
	"context"
	"fmt"

	"cinema-showtime/internal/data/entity"

	"go.uber.org/zap"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	FindByID(ctx context.Context, id int) (*entity.Booking, error)
	FindAll(ctx context.Context) ([]*entity.Booking, error)
	Delete(ctx context.Context, id int) error
}

type bookingRepository struct {
	state *state
	log   *zap.Logger
}

func newBookingRepository(st *state, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		state: st,
		log:   log.With(zap.String("repository", "booking")),
	}
}

// Create assigns the next booking id and appends the booking. Seat
// ownership is the caller's job.
func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	booking.BookingID = r.state.nextBookingID
	r.state.nextBookingID++
	r.state.bookings = append(r.state.bookings, booking)

	r.log.Debug("Booking stored",
		zap.Int("booking_id", booking.BookingID),
		zap.Int("showtime_id", booking.ShowtimeID),
	)
	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id int) (*entity.Booking, error) {
	for _, b := range r.state.bookings {
		if b.BookingID == id {
			return b, nil
		}
	}
	return nil, nil
}

func (r *bookingRepository) FindAll(ctx context.Context) ([]*entity.Booking, error) {
	return append([]*entity.Booking{}, r.state.bookings...), nil
}

func (r *bookingRepository) Delete(ctx context.Context, id int) error {
	for i, b := range r.state.bookings {
		if b.BookingID == id {
			r.state.bookings = append(r.state.bookings[:i], r.state.bookings[i+1:]...)
			r.log.Debug("Booking removed", zap.Int("booking_id", id))
			return nil
		}
	}
	return fmt.Errorf("booking %d: %w", id, entity.ErrNotFound)
}
