package requests

// LoginRequest carries the credentials plus an optional userType hint. The
// hint only filters which account table the backend checks first; the role
// of the resulting session always comes from the issued token.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	UserType string `json:"userType,omitempty" validate:"omitempty,user_type"`
}

type RegisterPatientRequest struct {
	Name          string `json:"name" validate:"required"`
	Gender        string `json:"gender" validate:"required,gender"`
	DateOfBirth   string `json:"dateOfBirth" validate:"required,datetime=2006-01-02"`
	ContactNumber string `json:"contactNumber,omitempty"`
	Email         string `json:"email" validate:"required,email"`
	Password      string `json:"password" validate:"required,password"`
	Address       string `json:"address,omitempty"`
}

type RegisterUserRequest struct {
	Name          string `json:"name" validate:"required"`
	Email         string `json:"email" validate:"required,email"`
	Password      string `json:"password" validate:"required,password"`
	Role          string `json:"role" validate:"required,role"`
	AdminEmail    string `json:"adminEmail,omitempty" validate:"omitempty,email"`
	AdminPassword string `json:"adminPassword,omitempty"`
}

type ForgotPasswordRequest struct {
	Email    string `json:"email" validate:"required,email"`
	UserType string `json:"userType,omitempty" validate:"omitempty,user_type"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,password"`
}
