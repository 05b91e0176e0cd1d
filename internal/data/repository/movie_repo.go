package repository

import (
	"context"

	"cinema-showtime/internal/data/entity"

	"go.uber.org/zap"
)

type MovieRepository interface {
	Create(ctx context.Context, movie *entity.Movie) error
	FindByID(ctx context.Context, id int) (*entity.Movie, error)
	FindAll(ctx context.Context) ([]*entity.Movie, error)
}

type movieRepository struct {
	state *state
	log   *zap.Logger
}

func newMovieRepository(st *state, log *zap.Logger) MovieRepository {
	return &movieRepository{
		state: st,
		log:   log.With(zap.String("repository", "movie")),
	}
}

// Create assigns the next movie id and appends the movie.
func (r *movieRepository) Create(ctx context.Context, movie *entity.Movie) error {
	movie.MovieID = r.state.nextMovieID
	r.state.nextMovieID++
	r.state.movies = append(r.state.movies, movie)

	r.log.Debug("Movie stored", zap.Int("movie_id", movie.MovieID))
	return nil
}

// FindByID returns nil, nil when no movie has the id.
func (r *movieRepository) FindByID(ctx context.Context, id int) (*entity.Movie, error) {
	for _, m := range r.state.movies {
		if m.MovieID == id {
			return m, nil
		}
	}
	return nil, nil
}

func (r *movieRepository) FindAll(ctx context.Context) ([]*entity.Movie, error) {
	return append([]*entity.Movie{}, r.state.movies...), nil
}
