package routers

import (
	"pathlab-client/internal/app/config"
	"pathlab-client/internal/app/delivery/http/controllers"
	"pathlab-client/internal/app/delivery/http/middlewares"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

type Controllers struct {
	Auth      *controllers.AuthController
	Patient   *controllers.PatientController
	Portal    *controllers.PortalController
	Test      *controllers.TestController
	Booking   *controllers.BookingController
	Sample    *controllers.SampleController
	Result    *controllers.ResultController
	Payment   *controllers.PaymentController
	Report    *controllers.ReportController
	Dashboard *controllers.DashboardController
}

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	ctrl *Controllers,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	// Rate limiting middleware using httprate
	rateLimiter := httprate.LimitByIP(internalConfig.Mock.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestLogger)

	router.Route(internalConfig.Mock.EndpointPrefix, func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			attachAuthRoutes(r, middlewares, ctrl.Auth)
		})

		r.Route("/patients", func(r chi.Router) {
			attachPatientRoutes(r, middlewares, ctrl.Patient, ctrl.Portal)
		})

		r.Route("/tests", func(r chi.Router) {
			attachTestRoutes(r, middlewares, ctrl.Test)
		})

		r.Route("/bookings", func(r chi.Router) {
			attachBookingRoutes(r, middlewares, ctrl.Booking, ctrl.Result)
		})

		r.Route("/samples", func(r chi.Router) {
			attachSampleRoutes(r, middlewares, ctrl.Sample)
		})

		r.Route("/payments", func(r chi.Router) {
			attachPaymentRoutes(r, middlewares, ctrl.Payment)
		})

		r.Route("/reports", func(r chi.Router) {
			attachReportRoutes(r, middlewares, ctrl.Report)
		})

		r.Route("/dashboard", func(r chi.Router) {
			attachDashboardRoutes(r, middlewares, ctrl.Dashboard)
		})
	})
}
