package routers

import (
	"pathlab-client/internal/app/delivery/http/controllers"
	"pathlab-client/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachBookingRoutes(
	router chi.Router,
	mw *middlewares.Middlewares,
	bookingController *controllers.BookingController,
	resultController *controllers.ResultController,
) {
	router.Use(mw.AuthMiddleware, mw.RequireStaff)

	router.Get("/", bookingController.FindAll)
	router.Post("/", bookingController.Create)
	router.Get("/{bookingID}", bookingController.FindByID)
	router.Put("/{bookingID}", bookingController.Update)
	router.Delete("/{bookingID}", bookingController.Delete)
	router.Get("/{bookingID}/tests", bookingController.FindTests)

	// Results live under the booking resource.
	router.Get("/{bookingID}/results", resultController.FindByBookingID)
	router.Get("/{bookingID}/results/pdf", resultController.DownloadPDF)
	router.Post("/{bookingID}/tests/{testID}/results", resultController.Save)
	router.Put("/{bookingID}/tests/{testID}/results", resultController.Update)
	router.Delete("/{bookingID}/tests/{testID}/results", resultController.Delete)
}
