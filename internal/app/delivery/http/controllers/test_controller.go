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

type TestController struct {
	Log   *zap.Logger
	Store *mockstore.Store
}

func NewTestController(logger *zap.Logger, store *mockstore.Store) *TestController {
	return &TestController{Log: logger, Store: store}
}

func (ctrl *TestController) FindAll(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSONResponse(w, constvars.StatusOK, ctrl.Store.ListTests())
}

func (ctrl *TestController) FindByID(w http.ResponseWriter, r *http.Request) {
	testID, err := parseIDParam(r, "testID")
	if err != nil {
		utils.WriteErrorResponse(ctrl.Log, w, err)
		return
	}
	test, err := ctrl.Store.FindTestByID(testID)
	if err != nil {
		utils.WriteErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.WriteJSONResponse(w, constvars.StatusOK, test)
}

func (ctrl *TestController) Create(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateTestRequest)
	if err := parseBody(r, request); err != nil {
		utils.WriteErrorResponse(ctrl.Log, w, err)
		return
	}
	test, err := ctrl.Store.CreateTest(request)
	if err != nil {
		utils.WriteErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.WriteJSONResponse(w, constvars.StatusCreated, test)
}

func (ctrl *TestController) Update(w http.ResponseWriter, r *http.Request) {
	testID, err := parseIDParam(r, "testID")
	if err != nil {
		utils.WriteErrorResponse(ctrl.Log, w, err)
		return
	}
	request := new(requests.UpdateTestRequest)
	if err := parseBody(r, request); err != nil {
		utils.WriteErrorResponse(ctrl.Log, w, err)
		return
	}
	test, err := ctrl.Store.UpdateTest(testID, request)
	if err != nil {
		utils.WriteErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.WriteJSONResponse(w, constvars.StatusOK, test)
}

func (ctrl *TestController) Delete(w http.ResponseWriter, r *http.Request) {
	testID, err := parseIDParam(r, "testID")
	if err != nil {
		utils.WriteErrorResponse(ctrl.Log, w, err)
		return
	}
	if err := ctrl.Store.DeleteTest(testID); err != nil {
		utils.WriteErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.WriteJSONResponse(w, constvars.StatusOK, responses.MessageResponse{Message: constvars.MsgResourceDeleted})
}

func (ctrl *TestController) FindParameters(w http.ResponseWriter, r *http.Request) {
	testID, err := parseIDParam(r, "testID")
	if err != nil {
		utils.WriteErrorResponse(ctrl.Log, w, err)
		return
	}
	parameters, err := ctrl.Store.ListTestParameters(testID)
	if err != nil {
		utils.WriteErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.WriteJSONResponse(w, constvars.StatusOK, parameters)
}
