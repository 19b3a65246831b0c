package patients

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

type patientClient struct {
	RestClient contracts.RestClient
	Log        *zap.Logger
}

func NewPatientClient(restClient contracts.RestClient, logger *zap.Logger) contracts.PatientClient {
	return &patientClient{RestClient: restClient, Log: logger}
}

func (c *patientClient) ListPatients(ctx context.Context) ([]responses.PatientSummary, error) {
	var patients []responses.PatientSummary
	if err := c.RestClient.Get(ctx, constvars.EndpointPatients, &patients); err != nil {
		return nil, err
	}
	return patients, nil
}

func (c *patientClient) FindPatientByID(ctx context.Context, patientID int64) (*responses.PatientSummary, error) {
	patient := new(responses.PatientSummary)
	path := constvars.EndpointPatients + "/" + strconv.FormatInt(patientID, 10)
	if err := c.RestClient.Get(ctx, path, patient); err != nil {
		return nil, err
	}
	return patient, nil
}

func (c *patientClient) CreatePatient(ctx context.Context, request *requests.CreatePatientRequest) (*responses.PatientSummary, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}
	patient := new(responses.PatientSummary)
	if err := c.RestClient.Post(ctx, constvars.EndpointPatients, request, patient); err != nil {
		return nil, err
	}
	return patient, nil
}

func (c *patientClient) UpdatePatient(ctx context.Context, patientID int64, request *requests.UpdatePatientRequest) (*responses.PatientSummary, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}
	patient := new(responses.PatientSummary)
	path := constvars.EndpointPatients + "/" + strconv.FormatInt(patientID, 10)
	if err := c.RestClient.Put(ctx, path, request, patient); err != nil {
		return nil, err
	}
	return patient, nil
}

func (c *patientClient) DeletePatient(ctx context.Context, patientID int64) error {
	path := constvars.EndpointPatients + "/" + strconv.FormatInt(patientID, 10)
	return c.RestClient.Delete(ctx, path, nil)
}
