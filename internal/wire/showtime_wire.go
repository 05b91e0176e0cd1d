package wire

import (
	"cinema-showtime/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireShowtime(r chi.Router, showtimeHandler *adaptor.ShowtimeHandler) {
	r.Route("/api/showtimes", func(r chi.Router) {
		r.Get("/", showtimeHandler.GetShowtimes)         // GET /api/showtimes?movie_id=
		r.Post("/", showtimeHandler.CreateShowtime)      // POST /api/showtimes
		r.Get("/{id}", showtimeHandler.GetShowtimeByID)  // GET /api/showtimes/{id}
		r.Get("/{id}/seats", showtimeHandler.GetSeatMap) // GET /api/showtimes/{id}/seats
	})
}
