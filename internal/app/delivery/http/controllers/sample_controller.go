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

type SampleController struct {
	Log   *zap.Logger
	Store *mockstore.Store
}

func NewSampleController(logger *zap.Logger, store *mockstore.Store) *SampleController {
	return &SampleController{Log: logger, Store: store}
}

func (ctrl *SampleController) FindAll(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSONResponse(w, constvars.StatusOK, ctrl.Store.ListSamples())
}

func (ctrl *SampleController) FindByID(w http.ResponseWriter, r *http.Request) {
	sampleID, err := parseIDParam(r, "sampleID")
	if err != nil {
		utils.WriteErrorResponse(ctrl.Log, w, err)
		return
	}
	sample, err := ctrl.Store.FindSampleByID(sampleID)
	if err != nil {
		utils.WriteErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.WriteJSONResponse(w, constvars.StatusOK, sample)
}

func (ctrl *SampleController) Create(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateSampleRequest)
	if err := parseBody(r, request); err != nil {
		utils.WriteErrorResponse(ctrl.Log, w, err)
		return
	}
	sample, err := ctrl.Store.CreateSample(request)
	if err != nil {
		utils.WriteErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.WriteJSONResponse(w, constvars.StatusCreated, sample)
}

func (ctrl *SampleController) Update(w http.ResponseWriter, r *http.Request) {
	sampleID, err := parseIDParam(r, "sampleID")
	if err != nil {
		utils.WriteErrorResponse(ctrl.Log, w, err)
		return
	}
	request := new(requests.UpdateSampleRequest)
	if err := parseBody(r, request); err != nil {
		utils.WriteErrorResponse(ctrl.Log, w, err)
		return
	}
	sample, err := ctrl.Store.UpdateSample(sampleID, request)
	if err != nil {
		utils.WriteErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.WriteJSONResponse(w, constvars.StatusOK, sample)
}

func (ctrl *SampleController) Delete(w http.ResponseWriter, r *http.Request) {
	sampleID, err := parseIDParam(r, "sampleID")
	if err != nil {
		utils.WriteErrorResponse(ctrl.Log, w, err)
		return
	}
	if err := ctrl.Store.DeleteSample(sampleID); err != nil {
		utils.WriteErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.WriteJSONResponse(w, constvars.StatusOK, responses.MessageResponse{Message: constvars.MsgResourceDeleted})
}
