package contracts

import (
	"context"
	"pathlab-client/internal/pkg/dto/requests"
	"pathlab-client/internal/pkg/dto/responses"
)

type ResultClient interface {
	SaveResults(ctx context.Context, bookingID, testID int64, request *requests.SaveTestResultsRequest) (*responses.SaveTestResults, error)
	UpdateResults(ctx context.Context, bookingID, testID int64, request *requests.SaveTestResultsRequest) (*responses.SaveTestResults, error)
	FindResultsByBookingID(ctx context.Context, bookingID int64) (*responses.BookingResults, error)
	DeleteResults(ctx context.Context, bookingID, testID int64) error
	DownloadResultsPDF(ctx context.Context, bookingID int64) ([]byte, error)
}
