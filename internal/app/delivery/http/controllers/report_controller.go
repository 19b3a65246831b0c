package controllers

import (
	"net/http"
	"pathlab-client/internal/app/services/mockstore"
	"pathlab-client/internal/pkg/constvars"
	"pathlab-client/internal/pkg/dto/requests"
	"pathlab-client/internal/pkg/utils"

	"go.uber.org/zap"
)

type ReportController struct {
	Log   *zap.Logger
	Store *mockstore.Store
}

func NewReportController(logger *zap.Logger, store *mockstore.Store) *ReportController {
	return &ReportController{Log: logger, Store: store}
}

func (ctrl *ReportController) FindAll(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSONResponse(w, constvars.StatusOK, ctrl.Store.ListReports())
}

func (ctrl *ReportController) FindByID(w http.ResponseWriter, r *http.Request) {
	reportID, err := parseIDParam(r, "reportID")
	if err != nil {
		utils.WriteErrorResponse(ctrl.Log, w, err)
		return
	}
	report, err := ctrl.Store.FindReportByID(reportID)
	if err != nil {
		utils.WriteErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.WriteJSONResponse(w, constvars.StatusOK, report)
}

func (ctrl *ReportController) Create(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateReportRequest)
	if err := parseBody(r, request); err != nil {
		utils.WriteErrorResponse(ctrl.Log, w, err)
		return
	}
	report, err := ctrl.Store.CreateReport(request)
	if err != nil {
		utils.WriteErrorResponse(ctrl.Log, w, err)
		return
	}
	ctrl.Log.Info("ReportController.Create succeeded",
		zap.Int64(constvars.LoggingReportIDKey, report.ID),
	)
	utils.WriteJSONResponse(w, constvars.StatusCreated, report)
}

func (ctrl *ReportController) Download(w http.ResponseWriter, r *http.Request) {
	reportID, err := parseIDParam(r, "reportID")
	if err != nil {
		utils.WriteErrorResponse(ctrl.Log, w, err)
		return
	}
	content, err := ctrl.Store.ReportPDF(reportID)
	if err != nil {
		utils.WriteErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.WritePDFResponse(w, content)
}
