package request

type ShowtimeRequest struct {
	MovieID   int    `json:"movie_id"`
	StartTime string `json:"start_time"`
	Screen    string `json:"screen,omitempty"` // empty means the main screen
}
