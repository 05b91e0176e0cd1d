package usecase

import (
	"cinema-showtime/internal/data/repository"
	"cinema-showtime/pkg/database"

	"go.uber.org/zap"
)

type Service struct {
	Movie    MovieService
	Showtime ShowtimeService
	Booking  BookingService
	State    StateService
}

func NewService(repo *repository.Repository, storage database.Storage, log *zap.Logger) *Service {
	return &Service{
		Movie:    NewMovieService(repo, log),
		Showtime: NewShowtimeService(repo, log),
		Booking:  NewBookingService(repo, log),
		State:    NewStateService(repo, storage, log),
	}
}
