package routers

import (
	"pathlab-client/internal/app/delivery/http/controllers"
	"pathlab-client/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, middlewares *middlewares.Middlewares, authController *controllers.AuthController) {
	router.With(middlewares.LoginRateLimiter()).Post("/login", authController.Login)
	router.With(middlewares.AuthMiddleware).Post("/logout", authController.Logout)
	router.Post("/register/patient", authController.RegisterPatient)
	router.Post("/register/user", authController.RegisterUser)
	router.Get("/verify-email", authController.VerifyEmail)
	router.Post("/forgot-password", authController.ForgotPassword)
	router.Post("/reset-password", authController.ResetPassword)
}
