package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"cinema-showtime/internal/data/entity"
	"cinema-showtime/internal/dto/request"
	"cinema-showtime/internal/dto/response"
	"cinema-showtime/internal/usecase"

	"go.uber.org/zap"
)

const (
	seatBooked    = "██"
	seatAvailable = "░░"
	menuRule      = "════════════════════════════════════════════════════════════"
)

// Menu is the interactive front end. It reads one answer per line and
// stops at "Exit & Save" or at end of input, saving state either way.
type Menu struct {
	in      *bufio.Scanner
	out     io.Writer
	service *usecase.Service
	log     *zap.Logger
}

func NewMenu(in io.Reader, out io.Writer, service *usecase.Service, log *zap.Logger) *Menu {
	return &Menu{
		in:      bufio.NewScanner(in),
		out:     out,
		service: service,
		log:     log.With(zap.String("handler", "menu")),
	}
}

func (m *Menu) Run(ctx context.Context) error {
	for {
		m.printMenu()

		choice, err := m.prompt("→ ")
		if err != nil {
			return m.exit(ctx, err)
		}

		switch choice {
		case "1":
			err = m.addMovie(ctx)
		case "2":
			err = m.addShowtime(ctx)
		case "3":
			err = m.showMovies(ctx)
		case "4":
			err = m.showShowtimes(ctx)
		case "5":
			err = m.showSeatMap(ctx)
		case "6":
			err = m.bookSeats(ctx)
		case "7":
			err = m.cancelBooking(ctx)
		case "8":
			err = m.showBookings(ctx)
		case "9":
			return m.exit(ctx, nil)
		default:
			m.println("Invalid choice.")
		}

		if err != nil {
			return m.exit(ctx, err)
		}
	}
}

// exit saves state. io.EOF from the input counts as a normal exit.
func (m *Menu) exit(ctx context.Context, cause error) error {
	if cause != nil && !errors.Is(cause, io.EOF) {
		m.log.Error("Menu stopped", zap.Error(cause))
	}

	if err := m.service.State.Save(ctx); err != nil {
		m.printf("Failed to save data: %v\n", err)
		return err
	}

	m.println("Data saved. Goodbye!")
	if errors.Is(cause, io.EOF) {
		return nil
	}
	return cause
}

func (m *Menu) printMenu() {
	m.println("")
	m.println(menuRule)
	m.println("          CINEMA TICKET BOOKING SYSTEM")
	m.println(menuRule)
	m.println(" 1. Add movie")
	m.println(" 2. Add showtime")
	m.println(" 3. View movies")
	m.println(" 4. View showtimes")
	m.println(" 5. View seat map")
	m.println(" 6. Book seats")
	m.println(" 7. Cancel booking")
	m.println(" 8. View all bookings (admin)")
	m.println(" 9. Exit & Save")
	m.println(menuRule)
}

func (m *Menu) addMovie(ctx context.Context) error {
	title, err := m.prompt("Movie title: ")
	if err != nil {
		return err
	}
	rawDuration, err := m.prompt("Duration (minutes): ")
	if err != nil {
		return err
	}
	genre, err := m.prompt("Genre: ")
	if err != nil {
		return err
	}

	duration, convErr := strconv.Atoi(rawDuration)
	if convErr != nil {
		m.println("Invalid input.")
		return nil
	}

	movie, err := m.service.Movie.AddMovie(ctx, &request.MovieRequest{
		Title:       title,
		DurationMin: duration,
		Genre:       genre,
	})
	if err != nil {
		return m.report(err, "Invalid input.")
	}

	m.printf("Movie added → ID: %d\n", movie.MovieID)
	return nil
}

func (m *Menu) addShowtime(ctx context.Context) error {
	movies, err := m.service.Movie.ListMovies(ctx)
	if err != nil {
		return err
	}
	if len(movies) == 0 {
		m.println("No movies yet.")
		return nil
	}
	m.printMovies(movies)

	rawID, err := m.prompt("Movie ID: ")
	if err != nil {
		return err
	}
	movieID, convErr := strconv.Atoi(rawID)
	if convErr != nil {
		m.println("Invalid input.")
		return nil
	}

	startTime, err := m.prompt("Showtime (YYYY-MM-DD HH:MM): ")
	if err != nil {
		return err
	}
	screen, err := m.prompt(fmt.Sprintf("Screen [%s]: ", entity.DefaultScreen))
	if err != nil {
		return err
	}

	showtime, err := m.service.Showtime.AddShowtime(ctx, &request.ShowtimeRequest{
		MovieID:   movieID,
		StartTime: startTime,
		Screen:    screen,
	})
	if err != nil {
		return m.report(err, "Movie not found.")
	}

	m.printf("Showtime added → ID: %d\n", showtime.ShowtimeID)
	return nil
}

func (m *Menu) showMovies(ctx context.Context) error {
	movies, err := m.service.Movie.ListMovies(ctx)
	if err != nil {
		return err
	}
	if len(movies) == 0 {
		m.println("No movies available.")
		return nil
	}
	m.printMovies(movies)
	return nil
}

func (m *Menu) printMovies(movies []response.MovieResponse) {
	m.println("\nAvailable Movies:")
	for _, movie := range movies {
		m.printf("  %3d | %-30s | %-12s | %d min\n", movie.MovieID, movie.Title, movie.Genre, movie.DurationMin)
	}
}

func (m *Menu) showShowtimes(ctx context.Context) error {
	showtimes, err := m.service.Showtime.ListShowtimes(ctx, nil)
	if err != nil {
		return err
	}

	m.println("\nShowtimes:")
	if len(showtimes) == 0 {
		m.println("No showtimes found.")
		return nil
	}
	for _, s := range showtimes {
		m.printf("  %3d | %-30s | %s | Screen %s\n", s.ShowtimeID, s.MovieTitle, s.StartTime, s.Screen)
	}
	return nil
}

func (m *Menu) showSeatMap(ctx context.Context) error {
	rawID, err := m.prompt("Showtime ID: ")
	if err != nil {
		return err
	}
	showtimeID, convErr := strconv.Atoi(rawID)
	if convErr != nil {
		m.println("Invalid ID.")
		return nil
	}

	return m.printSeatMap(ctx, showtimeID)
}

func (m *Menu) printSeatMap(ctx context.Context, showtimeID int) error {
	seatMap, err := m.service.Showtime.GetSeatMap(ctx, showtimeID)
	if err != nil {
		return m.report(err, "Showtime not found.")
	}

	m.printf("\nSeat Map – Showtime %d (%s)\n", seatMap.ShowtimeID, seatMap.StartTime)

	header := make([]string, 0, len(seatMap.Columns))
	for _, col := range seatMap.Columns {
		header = append(header, fmt.Sprintf("%2d", col))
	}
	m.println("  " + strings.Join(header, " "))

	for _, row := range seatMap.Rows {
		line := []string{row.Row}
		for _, seat := range row.Seats {
			symbol := seatAvailable
			if seat.Status == entity.SeatStatusBooked {
				symbol = seatBooked
			}
			line = append(line, symbol)
		}
		m.println(strings.Join(line, " "))
	}
	return nil
}

func (m *Menu) bookSeats(ctx context.Context) error {
	if err := m.showShowtimes(ctx); err != nil {
		return err
	}

	rawID, err := m.prompt("\nShowtime ID: ")
	if err != nil {
		return err
	}
	showtimeID, convErr := strconv.Atoi(rawID)
	if convErr != nil {
		m.println("Invalid input.")
		return nil
	}

	if _, err := m.service.Showtime.GetShowtime(ctx, showtimeID); err != nil {
		return m.report(err, "Showtime not found.")
	}
	if err := m.printSeatMap(ctx, showtimeID); err != nil {
		return err
	}

	rawSeats, err := m.prompt("Seats (comma separated e.g. A1,B2,C3): ")
	if err != nil {
		return err
	}
	customer, err := m.prompt("Your name: ")
	if err != nil {
		return err
	}

	booking, err := m.service.Booking.BookSeats(ctx, &request.BookingRequest{
		ShowtimeID:   showtimeID,
		CustomerName: customer,
		SeatNumbers:  splitSeats(rawSeats),
	})
	if err != nil {
		return m.report(err, "Showtime not found.")
	}

	m.printf("\nBooking successful! Booking ID: %d\n", booking.BookingID)
	return nil
}

// splitSeats breaks a comma separated answer into seat ids, skipping blanks.
func splitSeats(raw string) []string {
	seats := []string{}
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			seats = append(seats, part)
		}
	}
	return seats
}

func (m *Menu) cancelBooking(ctx context.Context) error {
	rawID, err := m.prompt("Booking ID: ")
	if err != nil {
		return err
	}
	bookingID, convErr := strconv.Atoi(rawID)
	if convErr != nil {
		m.println("Invalid booking ID.")
		return nil
	}

	if err := m.service.Booking.CancelBooking(ctx, bookingID); err != nil {
		return m.report(err, "Booking not found.")
	}

	m.printf("Booking %d cancelled successfully.\n", bookingID)
	return nil
}

func (m *Menu) showBookings(ctx context.Context) error {
	bookings, err := m.service.Booking.ListBookings(ctx)
	if err != nil {
		return err
	}
	if len(bookings) == 0 {
		m.println("No bookings yet.")
		return nil
	}

	m.println("\nAll Bookings:")
	for _, b := range bookings {
		m.printf("  %d | %-20s | %-25s | %s | Seats: %s\n",
			b.BookingID, b.CustomerName, b.MovieTitle, b.Timestamp, strings.Join(b.SeatNumbers, ", "))
	}
	return nil
}

// report prints a user-facing message for domain errors and hands anything
// else back to Run.
func (m *Menu) report(err error, notFound string) error {
	switch {
	case errors.Is(err, entity.ErrNotFound):
		m.println(notFound)
	case errors.Is(err, entity.ErrInvalidSeat),
		errors.Is(err, entity.ErrSeatUnavailable),
		errors.Is(err, entity.ErrValidation):
		m.printf("Error: %v\n", err)
	default:
		return err
	}
	return nil
}

// prompt writes label and returns the next trimmed line, or io.EOF once
// input is exhausted.
func (m *Menu) prompt(label string) (string, error) {
	fmt.Fprint(m.out, label)
	if !m.in.Scan() {
		if err := m.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(m.in.Text()), nil
}

func (m *Menu) println(s string) {
	fmt.Fprintln(m.out, s)
}

func (m *Menu) printf(format string, args ...any) {
	fmt.Fprintf(m.out, format, args...)
}
