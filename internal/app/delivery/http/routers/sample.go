package routers

import (
	"pathlab-client/internal/app/delivery/http/controllers"
	"pathlab-client/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachSampleRoutes(router chi.Router, mw *middlewares.Middlewares, sampleController *controllers.SampleController) {
	router.Use(mw.AuthMiddleware, mw.RequireStaff)

	router.Get("/", sampleController.FindAll)
	router.Post("/", sampleController.Create)
	router.Get("/{sampleID}", sampleController.FindByID)
	router.Put("/{sampleID}", sampleController.Update)
	router.Delete("/{sampleID}", sampleController.Delete)
}
