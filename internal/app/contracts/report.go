package contracts

import (
	"context"
	"pathlab-client/internal/pkg/dto/requests"
	"pathlab-client/internal/pkg/dto/responses"
)

type ReportClient interface {
	ListReports(ctx context.Context) ([]responses.Report, error)
	FindReportByID(ctx context.Context, reportID int64) (*responses.Report, error)
	CreateReport(ctx context.Context, request *requests.CreateReportRequest) (*responses.Report, error)
	DownloadReport(ctx context.Context, reportID int64) ([]byte, error)
}
