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

type PaymentController struct {
	Log   *zap.Logger
	Store *mockstore.Store
}

func NewPaymentController(logger *zap.Logger, store *mockstore.Store) *PaymentController {
	return &PaymentController{Log: logger, Store: store}
}

func (ctrl *PaymentController) FindAll(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSONResponse(w, constvars.StatusOK, ctrl.Store.ListPayments())
}

func (ctrl *PaymentController) FindByID(w http.ResponseWriter, r *http.Request) {
	paymentID, err := parseIDParam(r, "paymentID")
	if err != nil {
		utils.WriteErrorResponse(ctrl.Log, w, err)
		return
	}
	payment, err := ctrl.Store.FindPaymentByID(paymentID)
	if err != nil {
		utils.WriteErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.WriteJSONResponse(w, constvars.StatusOK, payment)
}

func (ctrl *PaymentController) Create(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreatePaymentRequest)
	if err := parseBody(r, request); err != nil {
		utils.WriteErrorResponse(ctrl.Log, w, err)
		return
	}
	payment, err := ctrl.Store.CreatePayment(request)
	if err != nil {
		utils.WriteErrorResponse(ctrl.Log, w, err)
		return
	}
	ctrl.Log.Info("PaymentController.Create succeeded",
		zap.Int64(constvars.LoggingPaymentIDKey, payment.ID),
	)
	utils.WriteJSONResponse(w, constvars.StatusCreated, payment)
}

func (ctrl *PaymentController) Update(w http.ResponseWriter, r *http.Request) {
	paymentID, err := parseIDParam(r, "paymentID")
	if err != nil {
		utils.WriteErrorResponse(ctrl.Log, w, err)
		return
	}
	request := new(requests.UpdatePaymentRequest)
	if err := parseBody(r, request); err != nil {
		utils.WriteErrorResponse(ctrl.Log, w, err)
		return
	}
	payment, err := ctrl.Store.UpdatePayment(paymentID, request)
	if err != nil {
		utils.WriteErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.WriteJSONResponse(w, constvars.StatusOK, payment)
}

func (ctrl *PaymentController) Delete(w http.ResponseWriter, r *http.Request) {
	paymentID, err := parseIDParam(r, "paymentID")
	if err != nil {
		utils.WriteErrorResponse(ctrl.Log, w, err)
		return
	}
	if err := ctrl.Store.DeletePayment(paymentID); err != nil {
		utils.WriteErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.WriteJSONResponse(w, constvars.StatusOK, responses.MessageResponse{Message: constvars.MsgResourceDeleted})
}

func (ctrl *PaymentController) DownloadInvoicePDF(w http.ResponseWriter, r *http.Request) {
	paymentID, err := parseIDParam(r, "paymentID")
	if err != nil {
		utils.WriteErrorResponse(ctrl.Log, w, err)
		return
	}
	content, err := ctrl.Store.InvoicePDF(paymentID)
	if err != nil {
		utils.WriteErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.WritePDFResponse(w, content)
}
