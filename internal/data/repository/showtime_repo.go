package repository

import (
	"context"

	"cinema-showtime/internal/data/entity"

	"go.uber.org/zap"
)

type ShowtimeRepository interface {
	Create(ctx context.Context, showtime *entity.Showtime) error
	FindByID(ctx context.Context, id int) (*entity.Showtime, error)
	// FindAll lists showtimes in insertion order, only those of movieID when it is set.
	FindAll(ctx context.Context, movieID *int) ([]*entity.Showtime, error)
}

type showtimeRepository struct {
	state *state
	log   *zap.Logger
}

func newShowtimeRepository(st *state, log *zap.Logger) ShowtimeRepository {
	return &showtimeRepository{
		state: st,
		log:   log.With(zap.String("repository", "showtime")),
	}
}

func (r *showtimeRepository) Create(ctx context.Context, showtime *entity.Showtime) error {
	showtime.ShowtimeID = r.state.nextShowtimeID
	r.state.nextShowtimeID++
	r.state.showtimes = append(r.state.showtimes, showtime)

	r.log.Debug("Showtime stored",
		zap.Int("showtime_id", showtime.ShowtimeID),
		zap.Int("movie_id", showtime.MovieID),
	)
	return nil
}

func (r *showtimeRepository) FindByID(ctx context.Context, id int) (*entity.Showtime, error) {
	for _, s := range r.state.showtimes {
		if s.ShowtimeID == id {
			return s, nil
		}
	}
	return nil, nil
}

func (r *showtimeRepository) FindAll(ctx context.Context, movieID *int) ([]*entity.Showtime, error) {
	showtimes := make([]*entity.Showtime, 0, len(r.state.showtimes))
	for _, s := range r.state.showtimes {
		if movieID == nil || s.MovieID == *movieID {
			showtimes = append(showtimes, s)
		}
	}
	return showtimes, nil
}
