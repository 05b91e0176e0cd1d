package entity

import "time"

// TimestampLayout is the format of Booking.Timestamp.
const TimestampLayout = "2006-01-02 15:04:05"

// FirstBookingID is the id handed to the first booking of an empty ledger.
const FirstBookingID = 10001

type Booking struct {
	BookingID    int      `json:"booking_id" validate:"min=1"`
	ShowtimeID   int      `json:"showtime_id" validate:"min=1"`
	CustomerName string   `json:"customer_name"`
	SeatNumbers  []string `json:"seat_numbers"`
	Timestamp    string   `json:"timestamp"`
}

func FormatTimestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}
