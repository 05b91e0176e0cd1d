package wire

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"cinema-showtime/internal/data/repository"
	"cinema-showtime/internal/dto/response"
	"cinema-showtime/internal/usecase"
	"cinema-showtime/pkg/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Errors  json.RawMessage `json:"errors"`
}

type testServer struct {
	handler http.Handler
	storage *database.FileStorage
}

func setupServer(t *testing.T) *testServer {
	t.Helper()
	log := zap.NewNop()
	storage := database.NewFileStorage(filepath.Join(t.TempDir(), "cinema_data.json"), log)
	service := usecase.NewService(repository.NewRepository(nil, log), storage, log)

	return &testServer{
		handler: Wiring(service, log).Router,
		storage: storage,
	}
}

func (s *testServer) do(t *testing.T, method, path string, body any) (int, envelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.handler.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return w.Code, env
}

func (s *testServer) seed(t *testing.T) {
	t.Helper()

	code, _ := s.do(t, http.MethodPost, "/api/movies", map[string]any{"title": "Dune", "duration_min": 155, "genre": "Sci-Fi"})
	require.Equal(t, http.StatusCreated, code)

	code, _ = s.do(t, http.MethodPost, "/api/showtimes", map[string]any{"movie_id": 1, "start_time": "2024-01-01 18:00"})
	require.Equal(t, http.StatusCreated, code)
}

func TestHealth(t *testing.T) {
	s := setupServer(t)

	w := httptest.NewRecorder()
	s.handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestMovies(t *testing.T) {
	s := setupServer(t)

	code, env := s.do(t, http.MethodPost, "/api/movies", map[string]any{"title": "Dune", "duration_min": 155, "genre": "Sci-Fi"})
	require.Equal(t, http.StatusCreated, code)
	var movie response.MovieResponse
	require.NoError(t, json.Unmarshal(env.Data, &movie))
	assert.Equal(t, 1, movie.MovieID)

	code, env = s.do(t, http.MethodPost, "/api/movies", map[string]any{"title": "Bad", "duration_min": 0})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.False(t, env.Status)
	assert.Contains(t, string(env.Errors), "DurationMin")

	code, env = s.do(t, http.MethodGet, "/api/movies", nil)
	require.Equal(t, http.StatusOK, code)
	var movies []response.MovieResponse
	require.NoError(t, json.Unmarshal(env.Data, &movies))
	require.Len(t, movies, 1)
	assert.Equal(t, "Dune", movies[0].Title)
}

func TestShowtimes(t *testing.T) {
	s := setupServer(t)
	s.seed(t)

	code, _ := s.do(t, http.MethodPost, "/api/showtimes", map[string]any{"movie_id": 9, "start_time": "x"})
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = s.do(t, http.MethodPost, "/api/showtimes", map[string]any{"movie_id": 0, "start_time": "x"})
	assert.Equal(t, http.StatusNotFound, code)

	code, env := s.do(t, http.MethodGet, "/api/showtimes?movie_id=1", nil)
	require.Equal(t, http.StatusOK, code)
	var showtimes []response.ShowtimeResponse
	require.NoError(t, json.Unmarshal(env.Data, &showtimes))
	require.Len(t, showtimes, 1)
	assert.Equal(t, "Main", showtimes[0].Screen)
	assert.Equal(t, 100, showtimes[0].AvailableSeats)

	code, _ = s.do(t, http.MethodGet, "/api/showtimes?movie_id=abc", nil)
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = s.do(t, http.MethodGet, "/api/showtimes/1", nil)
	assert.Equal(t, http.StatusOK, code)

	code, _ = s.do(t, http.MethodGet, "/api/showtimes/2", nil)
	assert.Equal(t, http.StatusNotFound, code)

	code, env = s.do(t, http.MethodGet, "/api/showtimes/1/seats", nil)
	require.Equal(t, http.StatusOK, code)
	var seatMap response.SeatMapResponse
	require.NoError(t, json.Unmarshal(env.Data, &seatMap))
	assert.Len(t, seatMap.Rows, 10)
	assert.Len(t, seatMap.Columns, 10)
}

func TestBookingFlow(t *testing.T) {
	s := setupServer(t)
	s.seed(t)

	code, env := s.do(t, http.MethodPost, "/api/bookings", map[string]any{"showtime_id": 1, "customer_name": "Alice", "seat_numbers": []string{"A1", "A2"}})
	require.Equal(t, http.StatusCreated, code)
	var booking response.BookingResponse
	require.NoError(t, json.Unmarshal(env.Data, &booking))
	assert.Equal(t, 10001, booking.BookingID)

	code, _ = s.do(t, http.MethodPost, "/api/bookings", map[string]any{"showtime_id": 1, "customer_name": "Bob", "seat_numbers": []string{"A2", "A3"}})
	assert.Equal(t, http.StatusConflict, code)

	code, _ = s.do(t, http.MethodPost, "/api/bookings", map[string]any{"showtime_id": 1, "customer_name": "Bob", "seat_numbers": []string{"Q1"}})
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = s.do(t, http.MethodPost, "/api/bookings", map[string]any{"showtime_id": 1, "seat_numbers": []string{}})
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = s.do(t, http.MethodPost, "/api/bookings", map[string]any{"showtime_id": 5, "seat_numbers": []string{"A5"}})
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = s.do(t, http.MethodPost, "/api/bookings", map[string]any{"showtime_id": -1, "seat_numbers": []string{"A5"}})
	assert.Equal(t, http.StatusNotFound, code)

	code, env = s.do(t, http.MethodGet, "/api/admin/bookings", nil)
	require.Equal(t, http.StatusOK, code)
	var bookings []response.BookingResponse
	require.NoError(t, json.Unmarshal(env.Data, &bookings))
	require.Len(t, bookings, 1)
	assert.Equal(t, "Dune", bookings[0].MovieTitle)

	code, _ = s.do(t, http.MethodDelete, "/api/bookings/10001", nil)
	assert.Equal(t, http.StatusOK, code)

	code, _ = s.do(t, http.MethodDelete, "/api/bookings/10001", nil)
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = s.do(t, http.MethodDelete, "/api/bookings/abc", nil)
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestSave(t *testing.T) {
	s := setupServer(t)
	s.seed(t)

	code, env := s.do(t, http.MethodPost, "/api/admin/save", nil)
	require.Equal(t, http.StatusOK, code)
	assert.True(t, env.Status)

	snapshot, err := s.storage.Load(t.Context())
	require.NoError(t, err)
	assert.Len(t, snapshot.Movies, 1)
	assert.Len(t, snapshot.Showtimes, 1)
}

func TestInvalidBody(t *testing.T) {
	s := setupServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/movies", bytes.NewBufferString("{"))
	w := httptest.NewRecorder()
	s.handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
