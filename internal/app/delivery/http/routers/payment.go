package routers

import (
	"pathlab-client/internal/app/delivery/http/controllers"
	"pathlab-client/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachPaymentRoutes(router chi.Router, mw *middlewares.Middlewares, paymentController *controllers.PaymentController) {
	router.Use(mw.AuthMiddleware, mw.RequireStaff)

	router.Get("/", paymentController.FindAll)
	router.Post("/", paymentController.Create)
	router.Get("/{paymentID}", paymentController.FindByID)
	router.Put("/{paymentID}", paymentController.Update)
	router.Delete("/{paymentID}", paymentController.Delete)
	router.Get("/{paymentID}/invoice/pdf", paymentController.DownloadInvoicePDF)
}
