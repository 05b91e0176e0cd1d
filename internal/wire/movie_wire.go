package wire

import (
	"cinema-showtime/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireMovie(r chi.Router, movieHandler *adaptor.MovieHandler) {
	// GET /api/movies - List movies in the order they were added
	r.Get("/api/movies", movieHandler.GetMovies)

	// POST /api/movies - Add movie
	r.Post("/api/movies", movieHandler.CreateMovie)
}
