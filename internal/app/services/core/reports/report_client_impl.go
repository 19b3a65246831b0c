package reports

import (
	"context"
	"pathlab-client/internal/app/contracts"
	"pathlab-client/internal/pkg/constvars"
	"pathlab-client/internal/pkg/dto/requests"
	"pathlab-client/internal/pkg/dto/responses"
	"pathlab-client/internal/pkg/exceptions"
	"pathlab-client/internal/pkg/utils"
	"strconv"

	"go.uber.org/zap"
)

type reportClient struct {
	RestClient contracts.RestClient
	Log        *zap.Logger
}

func NewReportClient(restClient contracts.RestClient, logger *zap.Logger) contracts.ReportClient {
	return &reportClient{RestClient: restClient, Log: logger}
}

func (c *reportClient) ListReports(ctx context.Context) ([]responses.Report, error) {
	var reports []responses.Report
	if err := c.RestClient.Get(ctx, constvars.EndpointReports+"/all", &reports); err != nil {
		return nil, err
	}
	return reports, nil
}

func (c *reportClient) FindReportByID(ctx context.Context, reportID int64) (*responses.Report, error) {
	report := new(responses.Report)
	path := constvars.EndpointReports + "/" + strconv.FormatInt(reportID, 10)
	if err := c.RestClient.Get(ctx, path, report); err != nil {
		return nil, err
	}
	return report, nil
}

func (c *reportClient) CreateReport(ctx context.Context, request *requests.CreateReportRequest) (*responses.Report, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}
	report := new(responses.Report)
	if err := c.RestClient.Post(ctx, constvars.EndpointReports, request, report); err != nil {
		return nil, err
	}
	return report, nil
}

func (c *reportClient) DownloadReport(ctx context.Context, reportID int64) ([]byte, error) {
	path := constvars.EndpointReports + "/" + strconv.FormatInt(reportID, 10) + "/download"
	_, data, err := c.RestClient.GetBytes(ctx, path)
	if err != nil {
		return nil, err
	}
	return data, nil
}
