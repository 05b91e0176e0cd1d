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

type MovieService interface {
	AddMovie(ctx context.Context, req *request.MovieRequest) (*response.MovieResponse, error)
	ListMovies(ctx context.Context) ([]response.MovieResponse, error)
}

type movieService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewMovieService(repo *repository.Repository, log *zap.Logger) MovieService {
	return &movieService{
		repo: repo,
		log:  log.With(zap.String("service", "movie")),
	}
}

func (s *movieService) AddMovie(ctx context.Context, req *request.MovieRequest) (*response.MovieResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Add movie validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", entity.ErrValidation, utils.FormatValidationErrors(errs))
	}

	movie := &entity.Movie{
		Title:       strings.TrimSpace(req.Title),
		DurationMin: req.DurationMin,
		Genre:       strings.TrimSpace(req.Genre),
	}

	if err := s.repo.Movie.Create(ctx, movie); err != nil {
		s.log.Error("Failed to create movie", zap.Error(err), zap.String("title", movie.Title))
		return nil, fmt.Errorf("create movie: %w", err)
	}

	s.log.Info("Movie added",
		zap.Int("movie_id", movie.MovieID),
		zap.String("title", movie.Title),
		zap.Int("duration_min", movie.DurationMin),
	)

	resp := response.MovieToResponse(movie)
	return &resp, nil
}

func (s *movieService) ListMovies(ctx context.Context) ([]response.MovieResponse, error) {
	movies, err := s.repo.Movie.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get movies", zap.Error(err))
		return nil, fmt.Errorf("get movies: %w", err)
	}

	movieResponses := make([]response.MovieResponse, len(movies))
	for i, movie := range movies {
		movieResponses[i] = response.MovieToResponse(movie)
	}

	return movieResponses, nil
}
