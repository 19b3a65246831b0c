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

// portalClient serves the logged-in patient's own view. The backend scopes
// every one of these endpoints to the authenticated account.
type portalClient struct {
	RestClient contracts.RestClient
	Log        *zap.Logger
}

func NewPatientPortalClient(restClient contracts.RestClient, logger *zap.Logger) contracts.PatientPortalClient {
	return &portalClient{RestClient: restClient, Log: logger}
}

func (c *portalClient) Dashboard(ctx context.Context) (*responses.PatientDashboard, error) {
	dashboard := new(responses.PatientDashboard)
	if err := c.RestClient.Get(ctx, constvars.EndpointPatients+"/dashboard", dashboard); err != nil {
		return nil, err
	}
	return dashboard, nil
}

func (c *portalClient) Bookings(ctx context.Context) ([]responses.PatientBooking, error) {
	var bookings []responses.PatientBooking
	if err := c.RestClient.Get(ctx, constvars.EndpointPatients+"/bookings", &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (c *portalClient) Payments(ctx context.Context) ([]responses.PatientPayment, error) {
	var payments []responses.PatientPayment
	if err := c.RestClient.Get(ctx, constvars.EndpointPatients+"/payments", &payments); err != nil {
		return nil, err
	}
	return payments, nil
}

func (c *portalClient) Profile(ctx context.Context) (*responses.PatientProfile, error) {
	profile := new(responses.PatientProfile)
	if err := c.RestClient.Get(ctx, constvars.EndpointPatients+"/profile", profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (c *portalClient) UpdateProfile(ctx context.Context, request *requests.UpdateProfileRequest) (*responses.PatientProfile, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}
	profile := new(responses.PatientProfile)
	if err := c.RestClient.Put(ctx, constvars.EndpointPatients+"/profile", request, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (c *portalClient) UpdateBookingTests(ctx context.Context, bookingID int64, request *requests.UpdateBookingTestsRequest) (*responses.PatientBooking, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}
	booking := new(responses.PatientBooking)
	path := constvars.EndpointPatients + "/" + strconv.FormatInt(bookingID, 10)
	if err := c.RestClient.Put(ctx, path, request, booking); err != nil {
		return nil, err
	}
	return booking, nil
}
