package routers

import (
	"pathlab-client/internal/app/config"
	"pathlab-client/internal/app/delivery/http/controllers"
	"pathlab-client/internal/app/delivery/http/middlewares"
	"pathlab-client/internal/app/services/mockstore"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// NewRouter wires the mock API end to end: seeded store, middlewares,
// controllers, routes. The integration tests mount the result straight
// into httptest.
func NewRouter(internalConfig *config.InternalConfig, logger *zap.Logger) (*chi.Mux, *mockstore.Store) {
	store := mockstore.NewStore()
	mw := middlewares.NewMiddlewares(logger, store, internalConfig)

	ctrl := &Controllers{
		Auth:      controllers.NewAuthController(logger, store, internalConfig),
		Patient:   controllers.NewPatientController(logger, store),
		Portal:    controllers.NewPortalController(logger, store),
		Test:      controllers.NewTestController(logger, store),
		Booking:   controllers.NewBookingController(logger, store),
		Sample:    controllers.NewSampleController(logger, store),
		Result:    controllers.NewResultController(logger, store),
		Payment:   controllers.NewPaymentController(logger, store),
		Report:    controllers.NewReportController(logger, store),
		Dashboard: controllers.NewDashboardController(logger, store),
	}

	router := chi.NewRouter()
	SetupRoutes(router, internalConfig, mw, ctrl)
	return router, store
}
