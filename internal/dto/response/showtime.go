package response

import (
	"cinema-showtime/internal/data/entity"
)

// UnknownMovieTitle is shown for a showtime whose movie no longer resolves.
const UnknownMovieTitle = "???"

type ShowtimeResponse struct {
	ShowtimeID     int    `json:"showtime_id"`
	MovieID        int    `json:"movie_id"`
	MovieTitle     string `json:"movie_title"`
	StartTime      string `json:"start_time"`
	Screen         string `json:"screen"`
	AvailableSeats int    `json:"available_seats"`
}

type SeatResponse struct {
	SeatID    string            `json:"seat_id"`
	Status    entity.SeatStatus `json:"status"`
	BookingID *int              `json:"booking_id"`
}

type SeatRowResponse struct {
	Row   string         `json:"row"`
	Seats []SeatResponse `json:"seats"`
}

// SeatMapResponse lays the grid out row by row, columns in ascending order.
type SeatMapResponse struct {
	ShowtimeID int               `json:"showtime_id"`
	StartTime  string            `json:"start_time"`
	Screen     string            `json:"screen"`
	Columns    []int             `json:"columns"`
	Rows       []SeatRowResponse `json:"rows"`
}

// Helper converters
func ShowtimeToResponse(showtime *entity.Showtime, movie *entity.Movie) ShowtimeResponse {
	title := UnknownMovieTitle
	if movie != nil {
		title = movie.Title
	}

	return ShowtimeResponse{
		ShowtimeID:     showtime.ShowtimeID,
		MovieID:        showtime.MovieID,
		MovieTitle:     title,
		StartTime:      showtime.StartTime,
		Screen:         showtime.Screen,
		AvailableSeats: showtime.Seats.CountAvailable(),
	}
}

func ShowtimeToSeatMap(showtime *entity.Showtime) SeatMapResponse {
	columns := entity.SeatColumns()
	rows := make([]SeatRowResponse, 0, len(entity.SeatRows()))

	for _, row := range entity.SeatRows() {
		seats := make([]SeatResponse, 0, len(columns))
		for _, col := range columns {
			id := entity.SeatID(row, col)
			seat, ok := showtime.Seats[id]
			if !ok || seat == nil {
				continue
			}
			var owner *int
			if seat.BookingID != nil {
				v := *seat.BookingID
				owner = &v
			}
			seats = append(seats, SeatResponse{SeatID: id, Status: seat.Status, BookingID: owner})
		}
		rows = append(rows, SeatRowResponse{Row: row, Seats: seats})
	}

	return SeatMapResponse{
		ShowtimeID: showtime.ShowtimeID,
		StartTime:  showtime.StartTime,
		Screen:     showtime.Screen,
		Columns:    columns,
		Rows:       rows,
	}
}
