package routers

import (
	"net/http"
	"pathlab-client/internal/app/delivery/http/controllers"
	"pathlab-client/internal/app/delivery/http/middlewares"
	"pathlab-client/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

// The patient resource doubles as the patient portal: static segments
// (/dashboard, /profile, ...) serve the logged-in patient, numeric IDs
// serve staff, and PUT /{id} dispatches on the caller's userType because
// the production API reuses that slot for the portal's booking-tests
// update.
func attachPatientRoutes(
	router chi.Router,
	mw *middlewares.Middlewares,
	patientController *controllers.PatientController,
	portalController *controllers.PortalController,
) {
	router.Use(mw.AuthMiddleware)

	router.With(mw.RequireStaff).Get("/", patientController.FindAll)
	router.With(mw.RequireStaff).Post("/", patientController.Create)

	router.With(mw.RequirePatient).Get("/dashboard", portalController.Dashboard)
	router.With(mw.RequirePatient).Get("/bookings", portalController.Bookings)
	router.With(mw.RequirePatient).Get("/payments", portalController.Payments)
	router.With(mw.RequirePatient).Get("/profile", portalController.Profile)
	router.With(mw.RequirePatient).Put("/profile", portalController.UpdateProfile)

	router.With(mw.RequireStaff).Get("/{patientID}", patientController.FindByID)
	router.With(mw.RequireStaff).Delete("/{patientID}", patientController.Delete)
	router.Put("/{patientID}", func(w http.ResponseWriter, r *http.Request) {
		if claims, ok := middlewares.ClaimsFromContext(r.Context()); ok && claims.UserType == constvars.UserTypePatient {
			r = cloneWithParam(r, "bookingID", chi.URLParam(r, "patientID"))
			portalController.UpdateBookingTests(w, r)
			return
		}
		patientController.Update(w, r)
	})
}

// cloneWithParam re-labels a chi URL parameter so a shared route slot can
// feed handlers that expect different parameter names.
func cloneWithParam(r *http.Request, name, value string) *http.Request {
	routeCtx := chi.RouteContext(r.Context())
	routeCtx.URLParams.Add(name, value)
	return r
}
