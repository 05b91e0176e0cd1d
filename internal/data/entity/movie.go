package entity

type Movie struct {
	MovieID     int    `json:"movie_id" validate:"min=1"`
	Title       string `json:"title"`
	DurationMin int    `json:"duration_min"`
	Genre       string `json:"genre"`
}
