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

type PatientController struct {
	Log   *zap.Logger
	Store *mockstore.Store
}

func NewPatientController(logger *zap.Logger, store *mockstore.Store) *PatientController {
	return &PatientController{Log: logger, Store: store}
}

func (ctrl *PatientController) FindAll(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSONResponse(w, constvars.StatusOK, ctrl.Store.ListPatients())
}

func (ctrl *PatientController) FindByID(w http.ResponseWriter, r *http.Request) {
	patientID, err := parseIDParam(r, "patientID")
	if err != nil {
		utils.WriteErrorResponse(ctrl.Log, w, err)
		return
	}
	patient, err := ctrl.Store.FindPatientByID(patientID)
	if err != nil {
		utils.WriteErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.WriteJSONResponse(w, constvars.StatusOK, patient)
}

func (ctrl *PatientController) Create(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreatePatientRequest)
	if err := parseBody(r, request); err != nil {
		utils.WriteErrorResponse(ctrl.Log, w, err)
		return
	}
	patient, err := ctrl.Store.CreatePatient(request)
	if err != nil {
		utils.WriteErrorResponse(ctrl.Log, w, err)
		return
	}
	ctrl.Log.Info("PatientController.Create succeeded",
		zap.Int64(constvars.LoggingPatientIDKey, patient.ID),
	)
	utils.WriteJSONResponse(w, constvars.StatusCreated, patient)
}

func (ctrl *PatientController) Update(w http.ResponseWriter, r *http.Request) {
	patientID, err := parseIDParam(r, "patientID")
	if err != nil {
		utils.WriteErrorResponse(ctrl.Log, w, err)
		return
	}
	request := new(requests.UpdatePatientRequest)
	if err := parseBody(r, request); err != nil {
		utils.WriteErrorResponse(ctrl.Log, w, err)
		return
	}
	patient, err := ctrl.Store.UpdatePatient(patientID, request)
	if err != nil {
		utils.WriteErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.WriteJSONResponse(w, constvars.StatusOK, patient)
}

func (ctrl *PatientController) Delete(w http.ResponseWriter, r *http.Request) {
	patientID, err := parseIDParam(r, "patientID")
	if err != nil {
		utils.WriteErrorResponse(ctrl.Log, w, err)
		return
	}
	if err := ctrl.Store.DeletePatient(patientID); err != nil {
		utils.WriteErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.WriteJSONResponse(w, constvars.StatusOK, responses.MessageResponse{Message: constvars.MsgResourceDeleted})
}
