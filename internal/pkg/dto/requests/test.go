package requests

type TestParameterPayload struct {
	Name           string `json:"name" validate:"required"`
	Unit           string `json:"unit,omitempty"`
	RefRangeMale   string `json:"refRangeMale,omitempty"`
	RefRangeFemale string `json:"refRangeFemale,omitempty"`
	RefRangeChild  string `json:"refRangeChild,omitempty"`
}

type CreateTestRequest struct {
	TestName    string                 `json:"testName" validate:"required"`
	Description string                 `json:"description,omitempty"`
	SampleType  string                 `json:"sampleType" validate:"required,oneof=blood urine saliva tissue other"`
	Price       float64                `json:"price" validate:"required,gt=0"`
	Parameters  []TestParameterPayload `json:"parameters,omitempty" validate:"omitempty,dive"`
}

type UpdateTestRequest struct {
	TestName    string                 `json:"testName" validate:"required"`
	Description string                 `json:"description,omitempty"`
	SampleType  string                 `json:"sampleType" validate:"required,oneof=blood urine saliva tissue other"`
	Price       float64                `json:"price" validate:"required,gt=0"`
	Parameters  []TestParameterPayload `json:"parameters,omitempty" validate:"omitempty,dive"`
}
