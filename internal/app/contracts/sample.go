package contracts

import (
	"context"
	"pathlab-client/internal/pkg/dto/requests"
	"pathlab-client/internal/pkg/dto/responses"
)

type SampleClient interface {
	ListSamples(ctx context.Context) ([]responses.Sample, error)
	FindSampleByID(ctx context.Context, sampleID int64) (*responses.Sample, error)
	CreateSample(ctx context.Context, request *requests.CreateSampleRequest) (*responses.Sample, error)
	UpdateSample(ctx context.Context, sampleID int64, request *requests.UpdateSampleRequest) (*responses.Sample, error)
	DeleteSample(ctx context.Context, sampleID int64) error
}
