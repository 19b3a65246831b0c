package controllers

import (
	"net/http"
	"pathlab-client/internal/app/services/mockstore"
	"pathlab-client/internal/pkg/constvars"
	"pathlab-client/internal/pkg/dto/requests"
	"pathlab-client/internal/pkg/dto/responses"
	"pathlab-client/internal/pkg/utils"

	"go.uber.org/zap"
)

type BookingController struct {
	Log   *zap.Logger
	Store *mockstore.Store
}

func NewBookingController(logger *zap.Logger, store *mockstore.Store) *BookingController {
	return &BookingController{Log: logger, Store: store}
}

func (ctrl *BookingController) FindAll(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSONResponse(w, constvars.StatusOK, ctrl.Store.ListBookings())
}

func (ctrl *BookingController) FindByID(w http.ResponseWriter, r *http.Request) {
	bookingID, err := parseIDParam(r, "bookingID")
	if err != nil {
		utils.WriteErrorResponse(ctrl.Log, w, err)
		return
	}
	booking, err := ctrl.Store.FindBookingByID(bookingID)
	if err != nil {
		utils.WriteErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.WriteJSONResponse(w, constvars.StatusOK, booking)
}

func (ctrl *BookingController) Create(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateBookingRequest)
	if err := parseBody(r, request); err != nil {
		utils.WriteErrorResponse(ctrl.Log, w, err)
		return
	}
	booking, err := ctrl.Store.CreateBooking(request)
	if err != nil {
		utils.WriteErrorResponse(ctrl.Log, w, err)
		return
	}
	ctrl.Log.Info("BookingController.Create succeeded",
		zap.Int64(constvars.LoggingBookingIDKey, booking.ID),
	)
	utils.WriteJSONResponse(w, constvars.StatusCreated, booking)
}

func (ctrl *BookingController) Update(w http.ResponseWriter, r *http.Request) {
	bookingID, err := parseIDParam(r, "bookingID")
	if err != nil {
		utils.WriteErrorResponse(ctrl.Log, w, err)
		return
	}
	request := new(requests.UpdateBookingRequest)
	if err := parseBody(r, request); err != nil {
		utils.WriteErrorResponse(ctrl.Log, w, err)
		return
	}
	booking, err := ctrl.Store.UpdateBooking(bookingID, request)
	if err != nil {
		utils.WriteErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.WriteJSONResponse(w, constvars.StatusOK, booking)
}

func (ctrl *BookingController) Delete(w http.ResponseWriter, r *http.Request) {
	bookingID, err := parseIDParam(r, "bookingID")
	if err != nil {
		utils.WriteErrorResponse(ctrl.Log, w, err)
		return
	}
	if err := ctrl.Store.DeleteBooking(bookingID); err != nil {
		utils.WriteErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.WriteJSONResponse(w, constvars.StatusOK, responses.MessageResponse{Message: constvars.MsgResourceDeleted})
}

func (ctrl *BookingController) FindTests(w http.ResponseWriter, r *http.Request) {
	bookingID, err := parseIDParam(r, "bookingID")
	if err != nil {
		utils.WriteErrorResponse(ctrl.Log, w, err)
		return
	}
	bookingTests, err := ctrl.Store.ListBookingTests(bookingID)
	if err != nil {
		utils.WriteErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.WriteJSONResponse(w, constvars.StatusOK, bookingTests)
}
