package controllers

import (
	"net/http"
	"pathlab-client/internal/app/services/mockstore"
	"pathlab-client/internal/pkg/constvars"
	"pathlab-client/internal/pkg/utils"
	"strconv"

	"go.uber.org/zap"
)

type DashboardController struct {
	Log   *zap.Logger
	Store *mockstore.Store
}

func NewDashboardController(logger *zap.Logger, store *mockstore.Store) *DashboardController {
	return &DashboardController{Log: logger, Store: store}
}

func (ctrl *DashboardController) Stats(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSONResponse(w, constvars.StatusOK, ctrl.Store.DashboardStats())
}

func (ctrl *DashboardController) MonthlyBookings(w http.ResponseWriter, r *http.Request) {
	months, _ := strconv.Atoi(r.URL.Query().Get("months"))
	utils.WriteJSONResponse(w, constvars.StatusOK, ctrl.Store.MonthlyBookings(months))
}

func (ctrl *DashboardController) TestDistribution(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSONResponse(w, constvars.StatusOK, ctrl.Store.TestDistribution())
}

func (ctrl *DashboardController) RecentActivity(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	utils.WriteJSONResponse(w, constvars.StatusOK, ctrl.Store.RecentActivity(limit))
}
