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

type ResultController struct {
	Log   *zap.Logger
	Store *mockstore.Store
}

func NewResultController(logger *zap.Logger, store *mockstore.Store) *ResultController {
	return &ResultController{Log: logger, Store: store}
}

func (ctrl *ResultController) resultIDs(r *http.Request) (int64, int64, error) {
	bookingID, err := parseIDParam(r, "bookingID")
	if err != nil {
		return 0, 0, err
	}
	testID, err := parseIDParam(r, "testID")
	if err != nil {
		return 0, 0, err
	}
	return bookingID, testID, nil
}

func (ctrl *ResultController) Save(w http.ResponseWriter, r *http.Request) {
	bookingID, testID, err := ctrl.resultIDs(r)
	if err != nil {
		utils.WriteErrorResponse(ctrl.Log, w, err)
		return
	}
	request := new(requests.SaveTestResultsRequest)
	if err := parseBody(r, request); err != nil {
		utils.WriteErrorResponse(ctrl.Log, w, err)
		return
	}
	saved, err := ctrl.Store.SaveResults(bookingID, testID, request)
	if err != nil {
		utils.WriteErrorResponse(ctrl.Log, w, err)
		return
	}
	ctrl.Log.Info("ResultController.Save succeeded",
		zap.Int64(constvars.LoggingBookingIDKey, bookingID),
		zap.Int64(constvars.LoggingTestIDKey, testID),
	)
	utils.WriteJSONResponse(w, constvars.StatusCreated, saved)
}

func (ctrl *ResultController) Update(w http.ResponseWriter, r *http.Request) {
	bookingID, testID, err := ctrl.resultIDs(r)
	if err != nil {
		utils.WriteErrorResponse(ctrl.Log, w, err)
		return
	}
	request := new(requests.SaveTestResultsRequest)
	if err := parseBody(r, request); err != nil {
		utils.WriteErrorResponse(ctrl.Log, w, err)
		return
	}
	saved, err := ctrl.Store.UpdateResults(bookingID, testID, request)
	if err != nil {
		utils.WriteErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.WriteJSONResponse(w, constvars.StatusOK, saved)
}

func (ctrl *ResultController) FindByBookingID(w http.ResponseWriter, r *http.Request) {
	bookingID, err := parseIDParam(r, "bookingID")
	if err != nil {
		utils.WriteErrorResponse(ctrl.Log, w, err)
		return
	}
	bookingResults, err := ctrl.Store.FindResultsByBookingID(bookingID)
	if err != nil {
		utils.WriteErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.WriteJSONResponse(w, constvars.StatusOK, bookingResults)
}

func (ctrl *ResultController) Delete(w http.ResponseWriter, r *http.Request) {
	bookingID, testID, err := ctrl.resultIDs(r)
	if err != nil {
		utils.WriteErrorResponse(ctrl.Log, w, err)
		return
	}
	if err := ctrl.Store.DeleteResults(bookingID, testID); err != nil {
		utils.WriteErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.WriteJSONResponse(w, constvars.StatusOK, responses.MessageResponse{Message: constvars.MsgResourceDeleted})
}

func (ctrl *ResultController) DownloadPDF(w http.ResponseWriter, r *http.Request) {
	bookingID, err := parseIDParam(r, "bookingID")
	if err != nil {
		utils.WriteErrorResponse(ctrl.Log, w, err)
		return
	}
	content, err := ctrl.Store.ResultsPDF(bookingID)
	if err != nil {
		utils.WriteErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.WritePDFResponse(w, content)
}
