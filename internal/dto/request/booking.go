package request

type BookingRequest struct {
	ShowtimeID   int      `json:"showtime_id"`
	CustomerName string   `json:"customer_name" validate:"max=100"`
	SeatNumbers  []string `json:"seat_numbers" validate:"required,min=1,dive,required"`
}
