package requests

type CreatePatientRequest struct {
	Name          string `json:"name" validate:"required"`
	Gender        string `json:"gender" validate:"required,gender"`
	DateOfBirth   string `json:"dateOfBirth" validate:"required,datetime=2006-01-02"`
	ContactNumber string `json:"contactNumber,omitempty"`
	Email         string `json:"email" validate:"required,email"`
	Password      string `json:"password" validate:"required,password"`
	Address       string `json:"address,omitempty"`
}

type UpdatePatientRequest struct {
	Name          string `json:"name" validate:"required"`
	Gender        string `json:"gender" validate:"required,gender"`
	DateOfBirth   string `json:"dateOfBirth" validate:"required,datetime=2006-01-02"`
	ContactNumber string `json:"contactNumber,omitempty"`
	Email         string `json:"email" validate:"required,email"`
	Password      string `json:"password,omitempty" validate:"omitempty,password"`
	Address       string `json:"address,omitempty"`
}

// UpdateProfileRequest is the patient portal self-service subset.
type UpdateProfileRequest struct {
	Name          string `json:"name,omitempty"`
	ContactNumber string `json:"contactNumber,omitempty"`
	Address       string `json:"address,omitempty"`
}

type UpdateBookingTestsRequest struct {
	TestIDs []int64 `json:"testIds" validate:"required,min=1"`
}
