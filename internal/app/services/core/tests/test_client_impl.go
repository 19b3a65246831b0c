package tests

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

type testCatalogClient struct {
	RestClient contracts.RestClient
	Log        *zap.Logger
}

func NewTestCatalogClient(restClient contracts.RestClient, logger *zap.Logger) contracts.TestCatalogClient {
	return &testCatalogClient{RestClient: restClient, Log: logger}
}

func (c *testCatalogClient) ListTests(ctx context.Context) ([]responses.Test, error) {
	var tests []responses.Test
	if err := c.RestClient.Get(ctx, constvars.EndpointTests, &tests); err != nil {
		return nil, err
	}
	return tests, nil
}

func (c *testCatalogClient) FindTestByID(ctx context.Context, testID int64) (*responses.Test, error) {
	test := new(responses.Test)
	path := constvars.EndpointTests + "/" + strconv.FormatInt(testID, 10)
	if err := c.RestClient.Get(ctx, path, test); err != nil {
		return nil, err
	}
	return test, nil
}

func (c *testCatalogClient) CreateTest(ctx context.Context, request *requests.CreateTestRequest) (*responses.Test, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}
	test := new(responses.Test)
	if err := c.RestClient.Post(ctx, constvars.EndpointTests, request, test); err != nil {
		return nil, err
	}
	return test, nil
}

func (c *testCatalogClient) UpdateTest(ctx context.Context, testID int64, request *requests.UpdateTestRequest) (*responses.Test, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}
	test := new(responses.Test)
	path := constvars.EndpointTests + "/" + strconv.FormatInt(testID, 10)
	if err := c.RestClient.Put(ctx, path, request, test); err != nil {
		return nil, err
	}
	return test, nil
}

func (c *testCatalogClient) DeleteTest(ctx context.Context, testID int64) error {
	path := constvars.EndpointTests + "/" + strconv.FormatInt(testID, 10)
	return c.RestClient.Delete(ctx, path, nil)
}

func (c *testCatalogClient) ListTestParameters(ctx context.Context, testID int64) ([]responses.TestParameter, error) {
	var parameters []responses.TestParameter
	path := constvars.EndpointTests + "/parameters/" + strconv.FormatInt(testID, 10)
	if err := c.RestClient.Get(ctx, path, &parameters); err != nil {
		return nil, err
	}
	return parameters, nil
}
