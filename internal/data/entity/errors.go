package entity

import "errors"

var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidSeat     = errors.New("invalid seat")
	ErrSeatUnavailable = errors.New("already booked")
)

var (
	ErrValidation = errors.New("validation failed")
)
