package entity

const DefaultScreen = "Main"

type Showtime struct {
	ShowtimeID int      `json:"showtime_id" validate:"min=1"`
	MovieID    int      `json:"movie_id" validate:"min=1"`
	StartTime  string   `json:"start_time"` // opaque, e.g. "2024-01-01 18:00"
	Screen     string   `json:"screen"`
	Seats      SeatGrid `json:"seats" validate:"required,dive,required"`
}
