package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"cinema-showtime/internal/data/entity"
	"cinema-showtime/internal/data/repository"
	"cinema-showtime/internal/dto/request"
	"cinema-showtime/internal/dto/response"
	"cinema-showtime/pkg/utils"

	"go.uber.org/zap"
)

type BookingService interface {
	BookSeats(ctx context.Context, req *request.BookingRequest) (*response.BookingResponse, error)
	CancelBooking(ctx context.Context, bookingID int) error
	ListBookings(ctx context.Context) ([]response.BookingResponse, error)
}

type bookingService struct {
	repo *repository.Repository
	log  *zap.Logger
	now  func() time.Time
}

func NewBookingService(repo *repository.Repository, log *zap.Logger) BookingService {
	return &bookingService{
		repo: repo,
		log:  log.With(zap.String("service", "booking")),
		now:  time.Now,
	}
}

// BookSeats reserves every requested seat or none of them. All seats are
// checked for existence and then for availability before the grid is
// touched.
func (s *bookingService) BookSeats(ctx context.Context, req *request.BookingRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Book seats validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", entity.ErrValidation, utils.FormatValidationErrors(errs))
	}

	showtime, err := s.repo.Showtime.FindByID(ctx, req.ShowtimeID)
	if err != nil {
		return nil, fmt.Errorf("find showtime: %w", err)
	}
	if showtime == nil {
		return nil, fmt.Errorf("showtime %d: %w", req.ShowtimeID, entity.ErrNotFound)
	}

	seatIDs, err := normalizeSeats(showtime.Seats, req.SeatNumbers)
	if err != nil {
		s.log.Warn("Book seats rejected",
			zap.Error(err),
			zap.Int("showtime_id", showtime.ShowtimeID),
			zap.Strings("seats", req.SeatNumbers),
		)
		return nil, err
	}

	var taken []string
	for _, id := range seatIDs {
		if status, _ := showtime.Seats.Status(id); status == entity.SeatStatusBooked {
			taken = append(taken, id)
		}
	}
	if len(taken) > 0 {
		s.log.Warn("Book seats rejected - seats taken",
			zap.Int("showtime_id", showtime.ShowtimeID),
			zap.Strings("seats", taken),
		)
		return nil, fmt.Errorf("seat %s: %w", strings.Join(taken, ", "), entity.ErrSeatUnavailable)
	}

	booking := &entity.Booking{
		ShowtimeID:   showtime.ShowtimeID,
		CustomerName: strings.TrimSpace(req.CustomerName),
		SeatNumbers:  seatIDs,
		Timestamp:    entity.FormatTimestamp(s.now()),
	}

	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		s.log.Error("Failed to create booking", zap.Error(err), zap.Int("showtime_id", showtime.ShowtimeID))
		return nil, fmt.Errorf("create booking: %w", err)
	}

	// every id passed normalizeSeats, so SetStatus cannot fail here
	for _, id := range seatIDs {
		showtime.Seats.SetStatus(id, entity.SeatStatusBooked, &booking.BookingID)
	}

	s.log.Info("Booking created",
		zap.Int("booking_id", booking.BookingID),
		zap.Int("showtime_id", showtime.ShowtimeID),
		zap.String("customer", booking.CustomerName),
		zap.Strings("seats", seatIDs),
	)

	movie, _ := s.repo.Movie.FindByID(ctx, showtime.MovieID)
	resp := response.BookingToResponse(booking, showtime, movie)
	return &resp, nil
}

// CancelBooking frees the booking's seats and drops it from the ledger.
// When the showtime is gone the seats are skipped but the booking is still
// removed.
func (s *bookingService) CancelBooking(ctx context.Context, bookingID int) error {
	booking, err := s.repo.Booking.FindByID(ctx, bookingID)
	if err != nil {
		return fmt.Errorf("find booking: %w", err)
	}
	if booking == nil {
		return fmt.Errorf("booking %d: %w", bookingID, entity.ErrNotFound)
	}

	showtime, err := s.repo.Showtime.FindByID(ctx, booking.ShowtimeID)
	if err != nil {
		return fmt.Errorf("find showtime: %w", err)
	}

	released := 0
	if showtime != nil {
		for _, id := range booking.SeatNumbers {
			if showtime.Seats.Release(id, booking.BookingID) {
				released++
			}
		}
	} else {
		s.log.Warn("Cancelling booking of missing showtime",
			zap.Int("booking_id", bookingID),
			zap.Int("showtime_id", booking.ShowtimeID),
		)
	}

	if err := s.repo.Booking.Delete(ctx, bookingID); err != nil {
		s.log.Error("Failed to delete booking", zap.Error(err), zap.Int("booking_id", bookingID))
		return fmt.Errorf("delete booking: %w", err)
	}

	s.log.Info("Booking cancelled",
		zap.Int("booking_id", bookingID),
		zap.Int("showtime_id", booking.ShowtimeID),
		zap.Int("seats_released", released),
	)

	return nil
}

func (s *bookingService) ListBookings(ctx context.Context) ([]response.BookingResponse, error) {
	bookings, err := s.repo.Booking.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get bookings", zap.Error(err))
		return nil, fmt.Errorf("get bookings: %w", err)
	}

	bookingResponses := make([]response.BookingResponse, len(bookings))
	for i, booking := range bookings {
		var movie *entity.Movie
		showtime, _ := s.repo.Showtime.FindByID(ctx, booking.ShowtimeID)
		if showtime != nil {
			movie, _ = s.repo.Movie.FindByID(ctx, showtime.MovieID)
		}
		bookingResponses[i] = response.BookingToResponse(booking, showtime, movie)
	}

	return bookingResponses, nil
}

// normalizeSeats canonicalizes the requested ids, drops repeats keeping the
// first occurrence and checks that each one is part of the grid.
func normalizeSeats(grid entity.SeatGrid, raw []string) ([]string, error) {
	seen := make(map[string]bool, len(raw))
	seatIDs := make([]string, 0, len(raw))

	for _, r := range raw {
		id, err := entity.NormalizeSeatID(r)
		if err != nil {
			return nil, err
		}
		if !grid.Has(id) {
			return nil, fmt.Errorf("seat %s: %w", id, entity.ErrInvalidSeat)
		}
		if seen[id] {
			continue
		}
		seen[id] = true
		seatIDs = append(seatIDs, id)
	}

	return seatIDs, nil
}
