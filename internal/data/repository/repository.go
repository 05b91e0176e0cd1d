package repository

import (
	"cinema-showtime/internal/data/entity"

	"go.uber.org/zap"
)

const (
	firstMovieID    = 1
	firstShowtimeID = 1
)

// state is the in-memory data owned by one Repository. It is not safe for
// concurrent use; callers run one operation at a time.
type state struct {
	movies    []*entity.Movie
	showtimes []*entity.Showtime
	bookings  []*entity.Booking

	nextMovieID    int
	nextShowtimeID int
	nextBookingID  int
}

type Repository struct {
	Movie    MovieRepository
	Showtime ShowtimeRepository
	Booking  BookingRepository

	state *state
}

// NewRepository takes ownership of the snapshot's entities. Id counters are
// derived from the data (highest id + 1, never below the first id of each
// kind) so hand-edited documents keep working.
func NewRepository(snapshot *entity.Snapshot, log *zap.Logger) *Repository {
	if snapshot == nil {
		snapshot = entity.NewSnapshot()
	}

	st := &state{
		movies:         append([]*entity.Movie{}, snapshot.Movies...),
		showtimes:      append([]*entity.Showtime{}, snapshot.Showtimes...),
		bookings:       append([]*entity.Booking{}, snapshot.Bookings...),
		nextMovieID:    firstMovieID,
		nextShowtimeID: firstShowtimeID,
		nextBookingID:  entity.FirstBookingID,
	}

	for _, m := range st.movies {
		st.nextMovieID = max(st.nextMovieID, m.MovieID+1)
	}
	for _, s := range st.showtimes {
		st.nextShowtimeID = max(st.nextShowtimeID, s.ShowtimeID+1)
	}
	for _, b := range st.bookings {
		st.nextBookingID = max(st.nextBookingID, b.BookingID+1)
	}

	return &Repository{
		Movie:    newMovieRepository(st, log),
		Showtime: newShowtimeRepository(st, log),
		Booking:  newBookingRepository(st, log),
		state:    st,
	}
}

// Snapshot returns the current state in insertion order, ready to be saved.
func (r *Repository) Snapshot() *entity.Snapshot {
	return &entity.Snapshot{
		Movies:    append([]*entity.Movie{}, r.state.movies...),
		Showtimes: append([]*entity.Showtime{}, r.state.showtimes...),
		Bookings:  append([]*entity.Booking{}, r.state.bookings...),
	}
}

// NextIDs reports the ids the next movie, showtime and booking will get.
func (r *Repository) NextIDs() (movieID, showtimeID, bookingID int) {
	return r.state.nextMovieID, r.state.nextShowtimeID, r.state.nextBookingID
}
