package wire

import (
	"net/http"

	"retreat-booking/internal/adaptor"
	"retreat-booking/internal/data/repository"
	"retreat-booking/internal/usecase"
	"retreat-booking/pkg/middleware"
	"retreat-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type App struct {
	Router *chi.Mux
}

// Wiring builds the service and handler graph and mounts the router.
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, config, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(handler *adaptor.Handler, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	// Apply routes
	wireRetreat(r, handler.Retreat, handler.Schedule)
	wireReservation(r, handler.Reservation)
	wireSchedule(r, handler.Schedule)
	wireGuest(r, handler.Guest)
	wireLedger(r, handler.Ledger)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
