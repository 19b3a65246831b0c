package contracts

import (
	"context"
	"pathlab-client/internal/pkg/dto/requests"
	"pathlab-client/internal/pkg/dto/responses"
)

type AuthClient interface {
	Login(ctx context.Context, request *requests.LoginRequest) (*responses.JwtResponse, error)
	// Logout is best-effort; the backend replies with plain text.
	Logout(ctx context.Context) (string, error)
	RegisterPatient(ctx context.Context, request *requests.RegisterPatientRequest) (*responses.MessageResponse, error)
	RegisterUser(ctx context.Context, request *requests.RegisterUserRequest) (*responses.MessageResponse, error)
	VerifyEmail(ctx context.Context, token string) (*responses.MessageResponse, error)
	ForgotPassword(ctx context.Context, request *requests.ForgotPasswordRequest) (*responses.MessageResponse, error)
	ResetPassword(ctx context.Context, request *requests.ResetPasswordRequest) (*responses.MessageResponse, error)
}
