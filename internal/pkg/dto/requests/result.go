package requests

type ResultEntry struct {
	ParameterID int64  `json:"parameterId" validate:"required,gt=0"`
	Value       string `json:"value" validate:"required"`
}

// SaveTestResultsRequest is the body for both saving and updating results;
// booking and test IDs travel in the URL path.
type SaveTestResultsRequest struct {
	EnteredBy      int64         `json:"enteredBy" validate:"required,gt=0"`
	Interpretation string        `json:"interpretation,omitempty"`
	Results        []ResultEntry `json:"results" validate:"required,min=1,dive"`
}
