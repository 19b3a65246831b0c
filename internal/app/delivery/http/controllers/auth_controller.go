package controllers

import (
	"net/http"
	"pathlab-client/internal/app/config"
	"pathlab-client/internal/app/delivery/http/middlewares"
	"pathlab-client/internal/app/services/mockstore"
	"pathlab-client/internal/pkg/constvars"
	"pathlab-client/internal/pkg/dto/requests"
	"pathlab-client/internal/pkg/dto/responses"
	"pathlab-client/internal/pkg/exceptions"
	"pathlab-client/internal/pkg/utils"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthController struct {
	Log            *zap.Logger
	Store          *mockstore.Store
	InternalConfig *config.InternalConfig
}

func NewAuthController(logger *zap.Logger, store *mockstore.Store, internalConfig *config.InternalConfig) *AuthController {
	return &AuthController{
		Log:            logger,
		Store:          store,
		InternalConfig: internalConfig,
	}
}

func (ctrl *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	request := new(requests.LoginRequest)
	if err := parseBody(r, request); err != nil {
		utils.WriteErrorResponse(ctrl.Log, w, err)
		return
	}

	account, err := ctrl.Store.Authenticate(request.Email, request.Password, request.UserType)
	if err != nil {
		ctrl.Log.Warn("AuthController.Login rejected credentials",
			zap.String(constvars.LoggingEmailKey, request.Email),
		)
		utils.WriteErrorResponse(ctrl.Log, w, err)
		return
	}

	ttl := time.Duration(ctrl.InternalConfig.Mock.AccessTokenTTLInSec) * time.Second
	token, err := utils.GenerateAccessToken(account.Email, account.UserType, uuid.NewString(), ctrl.InternalConfig.Mock.JWTSecret, ttl)
	if err != nil {
		utils.WriteErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("AuthController.Login succeeded",
		zap.String(constvars.LoggingEmailKey, account.Email),
		zap.String(constvars.LoggingUserTypeKey, account.UserType),
	)
	utils.WriteJSONResponse(w, constvars.StatusOK, responses.JwtResponse{
		AccessToken: token,
		TokenType:   constvars.MsgTokenTypeBearer,
		ExpiresIn:   int64(ttl.Seconds()),
	})
}

// Logout revokes the presented token and answers in plain text, matching
// the production contract.
func (ctrl *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	if claims, ok := middlewares.ClaimsFromContext(r.Context()); ok && claims.TokenID != "" {
		ctrl.Store.RevokeToken(claims.TokenID)
	}
	utils.WriteTextResponse(w, constvars.StatusOK, constvars.MsgLoggedOut)
}

func (ctrl *AuthController) RegisterPatient(w http.ResponseWriter, r *http.Request) {
	request := new(requests.RegisterPatientRequest)
	if err := parseBody(r, request); err != nil {
		utils.WriteErrorResponse(ctrl.Log, w, err)
		return
	}

	if _, err := ctrl.Store.RegisterPatient(request); err != nil {
		utils.WriteErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.WriteJSONResponse(w, constvars.StatusCreated, responses.MessageResponse{Message: constvars.MsgRegistrationAccepted})
}

// RegisterUser creates a staff account; an existing admin has to vouch for
// it with their own credentials.
func (ctrl *AuthController) RegisterUser(w http.ResponseWriter, r *http.Request) {
	request := new(requests.RegisterUserRequest)
	if err := parseBody(r, request); err != nil {
		utils.WriteErrorResponse(ctrl.Log, w, err)
		return
	}

	admin, err := ctrl.Store.Authenticate(request.AdminEmail, request.AdminPassword, constvars.UserTypeStaff)
	if err != nil || admin.Role != constvars.StaffRoleAdmin {
		utils.WriteErrorResponse(ctrl.Log, w, exceptions.WrapWithoutError(
			constvars.StatusForbidden,
			constvars.ErrClientNotAuthorized,
			constvars.ErrDevAdminCredentialsInvalid,
		))
		return
	}

	if _, err := ctrl.Store.RegisterUser(request); err != nil {
		utils.WriteErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.WriteJSONResponse(w, constvars.StatusCreated, responses.MessageResponse{Message: constvars.MsgRegistrationAccepted})
}

func (ctrl *AuthController) VerifyEmail(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		utils.WriteErrorResponse(ctrl.Log, w, exceptions.ErrResourceNotFound("verification token"))
		return
	}
	if err := ctrl.Store.VerifyEmail(token); err != nil {
		utils.WriteErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.WriteJSONResponse(w, constvars.StatusOK, responses.MessageResponse{Message: constvars.MsgEmailVerified})
}

// ForgotPassword answers identically for known and unknown emails.
func (ctrl *AuthController) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	request := new(requests.ForgotPasswordRequest)
	if err := parseBody(r, request); err != nil {
		utils.WriteErrorResponse(ctrl.Log, w, err)
		return
	}
	ctrl.Store.CreateResetToken(request.Email)
	utils.WriteJSONResponse(w, constvars.StatusOK, responses.MessageResponse{Message: constvars.MsgPasswordResetSent})
}

func (ctrl *AuthController) ResetPassword(w http.ResponseWriter, r *http.Request) {
	request := new(requests.ResetPasswordRequest)
	if err := parseBody(r, request); err != nil {
		utils.WriteErrorResponse(ctrl.Log, w, err)
		return
	}
	if err := ctrl.Store.ResetPassword(request.Token, request.NewPassword); err != nil {
		utils.WriteErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.WriteJSONResponse(w, constvars.StatusOK, responses.MessageResponse{Message: constvars.MsgPasswordResetDone})
}
