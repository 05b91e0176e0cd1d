package request

type MovieRequest struct {
	Title       string `json:"title" validate:"max=200"`
	DurationMin int    `json:"duration_min" validate:"required,min=1"`
	Genre       string `json:"genre" validate:"max=50"`
}
