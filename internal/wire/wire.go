package wire

import (
	"net/http"
	"sync"

	"cinema-showtime/internal/adaptor"
	"cinema-showtime/internal/usecase"
	"cinema-showtime/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App menyimpan semua dependencies
type App struct {
	Router *chi.Mux
	// Lock guards the in-memory state; every request holds it.
	Lock sync.Locker
}

// Wiring builds handlers on top of the services and mounts every route.
func Wiring(service *usecase.Service, logger *zap.Logger) *App {
	handler := adaptor.NewHandler(service, logger)
	lock := &sync.Mutex{}

	return &App{
		Router: setupRouter(handler, lock, logger),
		Lock:   lock,
	}
}

// setupRouter konfigurasi Chi router
func setupRouter(handler *adaptor.Handler, lock sync.Locker, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	// the core holds no locks, so requests run one at a time
	r.Use(middleware.Serialize(lock))

	// Apply routes
	wireMovie(r, handler.Movie)
	wireShowtime(r, handler.Showtime)
	wireBooking(r, handler.Booking, handler.State)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
