package routers

import (
	"pathlab-client/internal/app/delivery/http/controllers"
	"pathlab-client/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachDashboardRoutes(router chi.Router, mw *middlewares.Middlewares, dashboardController *controllers.DashboardController) {
	router.Use(mw.AuthMiddleware, mw.RequireStaff)

	router.Get("/stats", dashboardController.Stats)
	router.Get("/monthly-bookings", dashboardController.MonthlyBookings)
	router.Get("/test-distribution", dashboardController.TestDistribution)
	router.Get("/recent-activity", dashboardController.RecentActivity)
}
