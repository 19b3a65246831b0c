package responses

type TestParameter struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Unit           string `json:"unit,omitempty"`
	RefRangeMale   string `json:"refRangeMale,omitempty"`
	RefRangeFemale string `json:"refRangeFemale,omitempty"`
	RefRangeChild  string `json:"refRangeChild,omitempty"`
}

type Test struct {
	ID          int64           `json:"id"`
	TestName    string          `json:"testName"`
	Description string          `json:"description,omitempty"`
	SampleType  string          `json:"sampleType"`
	Price       float64         `json:"price"`
	Parameters  []TestParameter `json:"parameters,omitempty"`
}
