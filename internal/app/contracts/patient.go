package contracts

import (
	"context"
	"pathlab-client/internal/pkg/dto/requests"
	"pathlab-client/internal/pkg/dto/responses"
)

type PatientClient interface {
	ListPatients(ctx context.Context) ([]responses.PatientSummary, error)
	FindPatientByID(ctx context.Context, patientID int64) (*responses.PatientSummary, error)
	CreatePatient(ctx context.Context, request *requests.CreatePatientRequest) (*responses.PatientSummary, error)
	UpdatePatient(ctx context.Context, patientID int64, request *requests.UpdatePatientRequest) (*responses.PatientSummary, error)
	DeletePatient(ctx context.Context, patientID int64) error
}

// PatientPortalClient covers the self-service endpoints a logged-in
// patient uses instead of the staff resources.
type PatientPortalClient interface {
	Dashboard(ctx context.Context) (*responses.PatientDashboard, error)
	Bookings(ctx context.Context) ([]responses.PatientBooking, error)
	Payments(ctx context.Context) ([]responses.PatientPayment, error)
	Profile(ctx context.Context) (*responses.PatientProfile, error)
	UpdateProfile(ctx context.Context, request *requests.UpdateProfileRequest) (*responses.PatientProfile, error)
	UpdateBookingTests(ctx context.Context, bookingID int64, request *requests.UpdateBookingTestsRequest) (*responses.PatientBooking, error)
}
