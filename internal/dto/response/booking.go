package response

import (
	"cinema-showtime/internal/data/entity"
)

// UnknownBookingTitle is shown for a booking whose showtime or movie no longer resolves.
const UnknownBookingTitle = "?"

type BookingResponse struct {
	BookingID    int      `json:"booking_id"`
	ShowtimeID   int      `json:"showtime_id"`
	MovieTitle   string   `json:"movie_title"`
	StartTime    string   `json:"start_time,omitempty"`
	CustomerName string   `json:"customer_name"`
	SeatNumbers  []string `json:"seat_numbers"`
	Timestamp    string   `json:"timestamp"`
}

// Helper converters
func BookingToResponse(booking *entity.Booking, showtime *entity.Showtime, movie *entity.Movie) BookingResponse {
	resp := BookingResponse{
		BookingID:    booking.BookingID,
		ShowtimeID:   booking.ShowtimeID,
		MovieTitle:   UnknownBookingTitle,
		CustomerName: booking.CustomerName,
		SeatNumbers:  append([]string{}, booking.SeatNumbers...),
		Timestamp:    booking.Timestamp,
	}

	if showtime != nil {
		resp.StartTime = showtime.StartTime
		if movie != nil {
			resp.MovieTitle = movie.Title
		}
	}

	return resp
}
