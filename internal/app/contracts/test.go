package contracts

import (
	"context"
	"pathlab-client/internal/pkg/dto/requests"
	"pathlab-client/internal/pkg/dto/responses"
)

type TestCatalogClient interface {
	ListTests(ctx context.Context) ([]responses.Test, error)
	FindTestByID(ctx context.Context, testID int64) (*responses.Test, error)
	CreateTest(ctx context.Context, request *requests.CreateTestRequest) (*responses.Test, error)
	UpdateTest(ctx context.Context, testID int64, request *requests.UpdateTestRequest) (*responses.Test, error)
	DeleteTest(ctx context.Context, testID int64) error
	ListTestParameters(ctx context.Context, testID int64) ([]responses.TestParameter, error)
}
