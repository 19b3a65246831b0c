package results

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

type resultClient struct {
	RestClient contracts.RestClient
	Log        *zap.Logger
}

func NewResultClient(restClient contracts.RestClient, logger *zap.Logger) contracts.ResultClient {
	return &resultClient{RestClient: restClient, Log: logger}
}

func resultsPath(bookingID, testID int64) string {
	return constvars.EndpointBookings + "/" + strconv.FormatInt(bookingID, 10) +
		"/tests/" + strconv.FormatInt(testID, 10) + "/results"
}

func (c *resultClient) SaveResults(ctx context.Context, bookingID, testID int64, request *requests.SaveTestResultsRequest) (*responses.SaveTestResults, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}
	saved := new(responses.SaveTestResults)
	if err := c.RestClient.Post(ctx, resultsPath(bookingID, testID), request, saved); err != nil {
		return nil, err
	}
	return saved, nil
}

func (c *resultClient) UpdateResults(ctx context.Context, bookingID, testID int64, request *requests.SaveTestResultsRequest) (*responses.SaveTestResults, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}
	saved := new(responses.SaveTestResults)
	if err := c.RestClient.Put(ctx, resultsPath(bookingID, testID), request, saved); err != nil {
		return nil, err
	}
	return saved, nil
}

// FindResultsByBookingID fetches the result sheet and flags every parameter
// value against its applicable reference range before handing it back.
func (c *resultClient) FindResultsByBookingID(ctx context.Context, bookingID int64) (*responses.BookingResults, error) {
	bookingResults := new(responses.BookingResults)
	path := constvars.EndpointBookings + "/" + strconv.FormatInt(bookingID, 10) + "/results"
	if err := c.RestClient.Get(ctx, path, bookingResults); err != nil {
		return nil, err
	}
	EvaluateBookingResults(bookingResults)
	return bookingResults, nil
}

func (c *resultClient) DeleteResults(ctx context.Context, bookingID, testID int64) error {
	return c.RestClient.Delete(ctx, resultsPath(bookingID, testID), nil)
}

func (c *resultClient) DownloadResultsPDF(ctx context.Context, bookingID int64) ([]byte, error) {
	path := constvars.EndpointBookings + "/" + strconv.FormatInt(bookingID, 10) + "/results/pdf"
	_, data, err := c.RestClient.GetBytes(ctx, path)
	if err != nil {
		return nil, err
	}
	return data, nil
}
