package usecase

import (
	"context"
	"fmt"
	"strings"

	"cinema-showtime/internal/data/entity"
	"cinema-showtime/internal/data/repository"
	"cinema-showtime/internal/dto/request"
	"cinema-showtime/internal/dto/response"
	"cinema-showtime/pkg/utils"

	"go.uber.org/zap"
)

type ShowtimeService interface {
	AddShowtime(ctx context.Context, req *request.ShowtimeRequest) (*response.ShowtimeResponse, error)
	ListShowtimes(ctx context.Context, movieID *int) ([]response.ShowtimeResponse, error)
	GetShowtime(ctx context.Context, showtimeID int) (*response.ShowtimeResponse, error)
	GetSeatMap(ctx context.Context, showtimeID int) (*response.SeatMapResponse, error)
}

type showtimeService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewShowtimeService(repo *repository.Repository, log *zap.Logger) ShowtimeService {
	return &showtimeService{
		repo: repo,
		log:  log.With(zap.String("service", "showtime")),
	}
}

// AddShowtime schedules a movie on a fresh grid. The start time is stored
// as given.
func (s *showtimeService) AddShowtime(ctx context.Context, req *request.ShowtimeRequest) (*response.ShowtimeResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Add showtime validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", entity.ErrValidation, utils.FormatValidationErrors(errs))
	}

	movie, err := s.repo.Movie.FindByID(ctx, req.MovieID)
	if err != nil {
		return nil, fmt.Errorf("find movie: %w", err)
	}
	if movie == nil {
		return nil, fmt.Errorf("movie %d: %w", req.MovieID, entity.ErrNotFound)
	}

	screen := strings.TrimSpace(req.Screen)
	if screen == "" {
		screen = entity.DefaultScreen
	}

	showtime := &entity.Showtime{
		MovieID:   movie.MovieID,
		StartTime: strings.TrimSpace(req.StartTime),
		Screen:    screen,
		Seats:     entity.NewSeatGrid(),
	}

	if err := s.repo.Showtime.Create(ctx, showtime); err != nil {
		s.log.Error("Failed to create showtime", zap.Error(err), zap.Int("movie_id", movie.MovieID))
		return nil, fmt.Errorf("create showtime: %w", err)
	}

	s.log.Info("Showtime added",
		zap.Int("showtime_id", showtime.ShowtimeID),
		zap.Int("movie_id", movie.MovieID),
		zap.String("start_time", showtime.StartTime),
		zap.String("screen", showtime.Screen),
	)

	resp := response.ShowtimeToResponse(showtime, movie)
	return &resp, nil
}

func (s *showtimeService) ListShowtimes(ctx context.Context, movieID *int) ([]response.ShowtimeResponse, error) {
	showtimes, err := s.repo.Showtime.FindAll(ctx, movieID)
	if err != nil {
		s.log.Error("Failed to get showtimes", zap.Error(err), zap.Intp("movie_id", movieID))
		return nil, fmt.Errorf("get showtimes: %w", err)
	}

	showtimeResponses := make([]response.ShowtimeResponse, len(showtimes))
	for i, showtime := range showtimes {
		// a dangling movie reference still lists, titled "???"
		movie, _ := s.repo.Movie.FindByID(ctx, showtime.MovieID)
		showtimeResponses[i] = response.ShowtimeToResponse(showtime, movie)
	}

	return showtimeResponses, nil
}

func (s *showtimeService) GetShowtime(ctx context.Context, showtimeID int) (*response.ShowtimeResponse, error) {
	showtime, err := s.findShowtime(ctx, showtimeID)
	if err != nil {
		return nil, err
	}

	movie, _ := s.repo.Movie.FindByID(ctx, showtime.MovieID)
	resp := response.ShowtimeToResponse(showtime, movie)
	return &resp, nil
}

func (s *showtimeService) GetSeatMap(ctx context.Context, showtimeID int) (*response.SeatMapResponse, error) {
	showtime, err := s.findShowtime(ctx, showtimeID)
	if err != nil {
		return nil, err
	}

	seatMap := response.ShowtimeToSeatMap(showtime)
	return &seatMap, nil
}

func (s *showtimeService) findShowtime(ctx context.Context, showtimeID int) (*entity.Showtime, error) {
	showtime, err := s.repo.Showtime.FindByID(ctx, showtimeID)
	if err != nil {
		return nil, fmt.Errorf("find showtime: %w", err)
	}
	if showtime == nil {
		return nil, fmt.Errorf("showtime %d: %w", showtimeID, entity.ErrNotFound)
	}
	return showtime, nil
}
