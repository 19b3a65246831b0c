package routers

import (
	"pathlab-client/internal/app/delivery/http/controllers"
	"pathlab-client/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachReportRoutes(router chi.Router, mw *middlewares.Middlewares, reportController *controllers.ReportController) {
	router.Use(mw.AuthMiddleware, mw.RequireStaff)

	router.Get("/all", reportController.FindAll)
	router.Post("/", reportController.Create)
	router.Get("/{reportID}", reportController.FindByID)
	router.Get("/{reportID}/download", reportController.Download)
}
