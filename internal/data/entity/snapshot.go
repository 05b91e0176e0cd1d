package entity

// Snapshot is the full persisted state: every movie, showtime (with its
// seat grid) and booking, in insertion order.
type Snapshot struct {
	Movies    []*Movie    `json:"movies" validate:"dive,required"`
	Showtimes []*Showtime `json:"showtimes" validate:"dive,required"`
	Bookings  []*Booking  `json:"bookings" validate:"dive,required"`
}

func NewSnapshot() *Snapshot {
	return &Snapshot{
		Movies:    []*Movie{},
		Showtimes: []*Showtime{},
		Bookings:  []*Booking{},
	}
}
