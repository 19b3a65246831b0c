package routers

import (
	"pathlab-client/internal/app/delivery/http/controllers"
	"pathlab-client/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachTestRoutes(router chi.Router, mw *middlewares.Middlewares, testController *controllers.TestController) {
	router.Use(mw.AuthMiddleware)

	// The catalog is readable by any authenticated user; mutations are
	// staff-only.
	router.Get("/", testController.FindAll)
	router.Get("/parameters/{testID}", testController.FindParameters)
	router.Get("/{testID}", testController.FindByID)

	router.With(mw.RequireStaff).Post("/", testController.Create)
	router.With(mw.RequireStaff).Put("/{testID}", testController.Update)
	router.With(mw.RequireStaff).Delete("/{testID}", testController.Delete)
}
