package controllers

import (
	"net/http"
	"pathlab-client/internal/app/delivery/http/middlewares"
	"pathlab-client/internal/app/services/mockstore"
	"pathlab-client/internal/pkg/constvars"
	"pathlab-client/internal/pkg/dto/requests"
	"pathlab-client/internal/pkg/exceptions"
	"pathlab-client/internal/pkg/utils"

	"go.uber.org/zap"
)

// PortalController serves the patient's own data, scoped by the token
// subject rather than a path parameter.
type PortalController struct {
	Log   *zap.Logger
	Store *mockstore.Store
}

func NewPortalController(logger *zap.Logger, store *mockstore.Store) *PortalController {
	return &PortalController{Log: logger, Store: store}
}

func (ctrl *PortalController) email(r *http.Request) (string, error) {
	claims, ok := middlewares.ClaimsFromContext(r.Context())
	if !ok {
		return "", exceptions.ErrTokenMissing(nil)
	}
	return claims.Email, nil
}

func (ctrl *PortalController) Dashboard(w http.ResponseWriter, r *http.Request) {
	email, err := ctrl.email(r)
	if err != nil {
		utils.WriteErrorResponse(ctrl.Log, w, err)
		return
	}
	dashboard, err := ctrl.Store.PatientDashboard(email)
	if err != nil {
		utils.WriteErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.WriteJSONResponse(w, constvars.StatusOK, dashboard)
}

func (ctrl *PortalController) Bookings(w http.ResponseWriter, r *http.Request) {
	email, err := ctrl.email(r)
	if err != nil {
		utils.WriteErrorResponse(ctrl.Log, w, err)
		return
	}
	bookings, err := ctrl.Store.PatientBookings(email)
	if err != nil {
		utils.WriteErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.WriteJSONResponse(w, constvars.StatusOK, bookings)
}

func (ctrl *PortalController) Payments(w http.ResponseWriter, r *http.Request) {
	email, err := ctrl.email(r)
	if err != nil {
		utils.WriteErrorResponse(ctrl.Log, w, err)
		return
	}
	payments, err := ctrl.Store.PatientPayments(email)
	if err != nil {
		utils.WriteErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.WriteJSONResponse(w, constvars.StatusOK, payments)
}

func (ctrl *PortalController) Profile(w http.ResponseWriter, r *http.Request) {
	email, err := ctrl.email(r)
	if err != nil {
		utils.WriteErrorResponse(ctrl.Log, w, err)
		return
	}
	profile, err := ctrl.Store.PatientProfile(email)
	if err != nil {
		utils.WriteErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.WriteJSONResponse(w, constvars.StatusOK, profile)
}

func (ctrl *PortalController) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	email, err := ctrl.email(r)
	if err != nil {
		utils.WriteErrorResponse(ctrl.Log, w, err)
		return
	}
	request := new(requests.UpdateProfileRequest)
	if err := parseBody(r, request); err != nil {
		utils.WriteErrorResponse(ctrl.Log, w, err)
		return
	}
	profile, err := ctrl.Store.UpdatePatientProfile(email, request)
	if err != nil {
		utils.WriteErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.WriteJSONResponse(w, constvars.StatusOK, profile)
}

func (ctrl *PortalController) UpdateBookingTests(w http.ResponseWriter, r *http.Request) {
	email, err := ctrl.email(r)
	if err != nil {
		utils.WriteErrorResponse(ctrl.Log, w, err)
		return
	}
	bookingID, err := parseIDParam(r, "bookingID")
	if err != nil {
		utils.WriteErrorResponse(ctrl.Log, w, err)
		return
	}
	request := new(requests.UpdateBookingTestsRequest)
	if err := parseBody(r, request); err != nil {
		utils.WriteErrorResponse(ctrl.Log, w, err)
		return
	}
	booking, err := ctrl.Store.UpdateOwnBookingTests(email, bookingID, request)
	if err != nil {
		utils.WriteErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.WriteJSONResponse(w, constvars.StatusOK, booking)
}
