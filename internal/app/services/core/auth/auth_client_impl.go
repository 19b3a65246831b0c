package auth

import (
	"context"
	"net/url"
	"pathlab-client/internal/app/contracts"
	"pathlab-client/internal/pkg/constvars"
	"pathlab-client/internal/pkg/dto/requests"
	"pathlab-client/internal/pkg/dto/responses"
	"pathlab-client/internal/pkg/exceptions"
	"pathlab-client/internal/pkg/utils"

	"go.uber.org/zap"
)

type authClient struct {
	RestClient contracts.RestClient
	Log        *zap.Logger
}

func NewAuthClient(restClient contracts.RestClient, logger *zap.Logger) contracts.AuthClient {
	return &authClient{RestClient: restClient, Log: logger}
}

func (c *authClient) Login(ctx context.Context, request *requests.LoginRequest) (*responses.JwtResponse, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}
	response := new(responses.JwtResponse)
	if err := c.RestClient.Post(ctx, constvars.EndpointAuthLogin, request, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *authClient) Logout(ctx context.Context) (string, error) {
	// The backend answers logout with plain text, not JSON.
	var message string
	if err := c.RestClient.Post(ctx, constvars.EndpointAuthLogout, nil, &message); err != nil {
		return "", err
	}
	return message, nil
}

func (c *authClient) RegisterPatient(ctx context.Context, request *requests.RegisterPatientRequest) (*responses.MessageResponse, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}
	response := new(responses.MessageResponse)
	if err := c.RestClient.Post(ctx, constvars.EndpointAuthRegisterPatient, request, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *authClient) RegisterUser(ctx context.Context, request *requests.RegisterUserRequest) (*responses.MessageResponse, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}
	response := new(responses.MessageResponse)
	if err := c.RestClient.Post(ctx, constvars.EndpointAuthRegisterUser, request, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *authClient) VerifyEmail(ctx context.Context, token string) (*responses.MessageResponse, error) {
	response := new(responses.MessageResponse)
	path := constvars.EndpointAuthVerifyEmail + "?token=" + url.QueryEscape(token)
	if err := c.RestClient.Get(ctx, path, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *authClient) ForgotPassword(ctx context.Context, request *requests.ForgotPasswordRequest) (*responses.MessageResponse, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}
	response := new(responses.MessageResponse)
	if err := c.RestClient.Post(ctx, constvars.EndpointAuthForgotPassword, request, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *authClient) ResetPassword(ctx context.Context, request *requests.ResetPasswordRequest) (*responses.MessageResponse, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}
	response := new(responses.MessageResponse)
	if err := c.RestClient.Post(ctx, constvars.EndpointAuthResetPassword, request, response); err != nil {
		return nil, err
	}
	return response, nil
}
