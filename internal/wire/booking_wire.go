package wire

import (
	"cinema-showtime/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireBooking(r chi.Router, bookingHandler *adaptor.BookingHandler, stateHandler *adaptor.StateHandler) {
	// POST /api/bookings - Book seats for a showtime
	r.Post("/api/bookings", bookingHandler.CreateBooking)

	// DELETE /api/bookings/{id} - Cancel booking and free its seats
	r.Delete("/api/bookings/{id}", bookingHandler.CancelBooking)

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin", func(r chi.Router) {
		// GET /api/admin/bookings - View all bookings
		r.Get("/bookings", bookingHandler.GetBookings)

		// POST /api/admin/save - Persist the current state
		r.Post("/save", stateHandler.Save)
	})
}
