package samples

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

type sampleClient struct {
	RestClient contracts.RestClient
	Log        *zap.Logger
}

func NewSampleClient(restClient contracts.RestClient, logger *zap.Logger) contracts.SampleClient {
	return &sampleClient{RestClient: restClient, Log: logger}
}

func (c *sampleClient) ListSamples(ctx context.Context) ([]responses.Sample, error) {
	var samples []responses.Sample
	if err := c.RestClient.Get(ctx, constvars.EndpointSamples, &samples); err != nil {
		return nil, err
	}
	return samples, nil
}

func (c *sampleClient) FindSampleByID(ctx context.Context, sampleID int64) (*responses.Sample, error) {
	sample := new(responses.Sample)
	path := constvars.EndpointSamples + "/" + strconv.FormatInt(sampleID, 10)
	if err := c.RestClient.Get(ctx, path, sample); err != nil {
		return nil, err
	}
	return sample, nil
}

func (c *sampleClient) CreateSample(ctx context.Context, request *requests.CreateSampleRequest) (*responses.Sample, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}
	sample := new(responses.Sample)
	if err := c.RestClient.Post(ctx, constvars.EndpointSamples, request, sample); err != nil {
		return nil, err
	}
	return sample, nil
}

func (c *sampleClient) UpdateSample(ctx context.Context, sampleID int64, request *requests.UpdateSampleRequest) (*responses.Sample, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}
	sample := new(responses.Sample)
	path := constvars.EndpointSamples + "/" + strconv.FormatInt(sampleID, 10)
	if err := c.RestClient.Put(ctx, path, request, sample); err != nil {
		return nil, err
	}
	return sample, nil
}

func (c *sampleClient) DeleteSample(ctx context.Context, sampleID int64) error {
	path := constvars.EndpointSamples + "/" + strconv.FormatInt(sampleID, 10)
	return c.RestClient.Delete(ctx, path, nil)
}
