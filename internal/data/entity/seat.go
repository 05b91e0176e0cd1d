package entity

import (
	"fmt"
	"strconv"
	"strings"
)

type SeatStatus string

const (
	SeatStatusAvailable SeatStatus = "available"
	SeatStatusBooked    SeatStatus = "booked"
)

const (
	seatRows    = "ABCDEFGHIJ"
	seatColumns = 10
)

type Seat struct {
	Status    SeatStatus `json:"status" validate:"oneof=available booked"`
	BookingID *int       `json:"booking_id"`
}

// SeatGrid maps a seat identifier (row letter + column, e.g. "A1") to its
// state. The booking id on a seat is a back-reference into the ledger.
type SeatGrid map[string]*Seat

// SeatRows returns the row letters in display order.
func SeatRows() []string {
	rows := make([]string, len(seatRows))
	for i, r := range seatRows {
		rows[i] = string(r)
	}
	return rows
}

// SeatColumns returns the column numbers in display order.
func SeatColumns() []int {
	cols := make([]int, seatColumns)
	for i := range cols {
		cols[i] = i + 1
	}
	return cols
}

func SeatID(row string, column int) string {
	return fmt.Sprintf("%s%d", row, column)
}

// NewSeatGrid builds the fixed 10x10 grid A1..J10 with every seat available.
func NewSeatGrid() SeatGrid {
	grid := make(SeatGrid, len(seatRows)*seatColumns)
	for _, row := range SeatRows() {
		for _, col := range SeatColumns() {
			grid[SeatID(row, col)] = &Seat{Status: SeatStatusAvailable}
		}
	}
	return grid
}

// NormalizeSeatID accepts user input such as " b07" and returns the
// canonical identifier "B7". It does not check grid membership.
func NormalizeSeatID(raw string) (string, error) {
	s := strings.ToUpper(strings.TrimSpace(raw))
	if len(s) < 2 || s[0] < 'A' || s[0] > 'Z' {
		return "", fmt.Errorf("seat %q: %w", raw, ErrInvalidSeat)
	}

	digits := s[1:]
	if strings.IndexFunc(digits, func(r rune) bool { return r < '0' || r > '9' }) >= 0 {
		return "", fmt.Errorf("seat %q: %w", raw, ErrInvalidSeat)
	}

	col, err := strconv.Atoi(digits)
	if err != nil || col < 1 {
		return "", fmt.Errorf("seat %q: %w", raw, ErrInvalidSeat)
	}

	return SeatID(s[:1], col), nil
}

// SeatIDs returns the identifiers of the standard layout present in this
// grid, row by row.
func (g SeatGrid) SeatIDs() []string {
	ids := make([]string, 0, len(g))
	for _, row := range SeatRows() {
		for _, col := range SeatColumns() {
			id := SeatID(row, col)
			if _, ok := g[id]; ok {
				ids = append(ids, id)
			}
		}
	}
	return ids
}

func (g SeatGrid) Has(seatID string) bool {
	_, ok := g[seatID]
	return ok
}

func (g SeatGrid) Status(seatID string) (SeatStatus, error) {
	seat, ok := g[seatID]
	if !ok || seat == nil {
		return "", fmt.Errorf("seat %s: %w", seatID, ErrInvalidSeat)
	}
	return seat.Status, nil
}

// SetStatus overwrites a seat's state. owner must be nil when status is
// available.
func (g SeatGrid) SetStatus(seatID string, status SeatStatus, owner *int) error {
	seat, ok := g[seatID]
	if !ok || seat == nil {
		return fmt.Errorf("seat %s: %w", seatID, ErrInvalidSeat)
	}

	seat.Status = status
	seat.BookingID = nil
	if status == SeatStatusBooked && owner != nil {
		id := *owner
		seat.BookingID = &id
	}

	return nil
}

// Release frees a seat held by bookingID. Seats that are unknown or owned
// by someone else are left untouched and false is returned.
func (g SeatGrid) Release(seatID string, bookingID int) bool {
	seat, ok := g[seatID]
	if !ok || seat == nil || seat.BookingID == nil || *seat.BookingID != bookingID {
		return false
	}

	seat.Status = SeatStatusAvailable
	seat.BookingID = nil
	return true
}

func (g SeatGrid) CountAvailable() int {
	n := 0
	for _, seat := range g {
		if seat != nil && seat.Status == SeatStatusAvailable {
			n++
		}
	}
	return n
}
