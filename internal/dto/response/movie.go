package response

import (
	"cinema-showtime/internal/data/entity"
)

type MovieResponse struct {
	MovieID     int    `json:"movie_id"`
	Title       string `json:"title"`
	DurationMin int    `json:"duration_min"`
	Genre       string `json:"genre"`
}

// Helper converters
func MovieToResponse(movie *entity.Movie) MovieResponse {
	return MovieResponse{
		MovieID:     movie.MovieID,
		Title:       movie.Title,
		DurationMin: movie.DurationMin,
		Genre:       movie.Genre,
	}
}
