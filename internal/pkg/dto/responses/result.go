package responses

type ResultPatientInfo struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Age    int    `json:"age"`
	Gender string `json:"gender"`
}

type ParameterResult struct {
	ParameterID    int64  `json:"parameterId"`
	Name           string `json:"name"`
	Unit           string `json:"unit,omitempty"`
	RefRangeMale   string `json:"refRangeMale,omitempty"`
	RefRangeFemale string `json:"refRangeFemale,omitempty"`
	RefRangeChild  string `json:"refRangeChild,omitempty"`
	Value          string `json:"value"`
	Status         string `json:"status,omitempty"`
}

type TestResultGroup struct {
	TestID          int64             `json:"testId"`
	SampleID        int64             `json:"sampleId,omitempty"`
	TestName        string            `json:"testName"`
	TestDescription string            `json:"testDescription,omitempty"`
	Interpretation  string            `json:"interpretation,omitempty"`
	Parameters      []ParameterResult `json:"parameters"`
}

type BookingResults struct {
	BookingID int64             `json:"bookingId"`
	Patient   ResultPatientInfo `json:"patient"`
	Tests     []TestResultGroup `json:"tests"`
}

type SavedResultEntry struct {
	ParameterID int64  `json:"parameterId"`
	Value       string `json:"value"`
}

type SaveTestResults struct {
	BookingID    int64              `json:"bookingId"`
	TestID       int64              `json:"testId"`
	EnteredBy    int64              `json:"enteredBy"`
	CreatedAt    string             `json:"createdAt,omitempty"`
	SavedResults []SavedResultEntry `json:"savedResults"`
}
