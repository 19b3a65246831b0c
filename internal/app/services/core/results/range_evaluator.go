package results

import (
	"pathlab-client/internal/pkg/constvars"
	"pathlab-client/internal/pkg/dto/responses"
	"regexp"
	"strconv"
	"strings"
)

var numericRangePattern = regexp.MustCompile(constvars.RegexNumericRange)

// SelectReferenceRange picks the range a value is judged against: the child
// range for patients under the age threshold, otherwise the range matching
// the patient's gender. Falls back to the male range for unknown genders.
// An empty selected range is returned as-is, so the value ends up unflagged
// rather than judged against a range meant for someone else.
func SelectReferenceRange(age int, gender, male, female, child string) string {
	if age < constvars.ChildAgeThreshold {
		return child
	}
	if strings.EqualFold(gender, constvars.GenderFemale) {
		return female
	}
	return male
}

// EvaluateStatus compares a measured value against a "low-high" range.
// Anything non-numeric on either side yields no flag.
func EvaluateStatus(value, refRange string) string {
	measured, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return ""
	}
	bounds := numericRangePattern.FindStringSubmatch(refRange)
	if bounds == nil {
		return ""
	}
	low, err := strconv.ParseFloat(bounds[1], 64)
	if err != nil {
		return ""
	}
	high, err := strconv.ParseFloat(bounds[2], 64)
	if err != nil {
		return ""
	}
	switch {
	case measured < low:
		return constvars.ResultStatusLow
	case measured > high:
		return constvars.ResultStatusHigh
	default:
		return constvars.ResultStatusNormal
	}
}

// EvaluateBookingResults stamps a status on every parameter result in place.
func EvaluateBookingResults(bookingResults *responses.BookingResults) {
	if bookingResults == nil {
		return
	}
	patient := bookingResults.Patient
	for i := range bookingResults.Tests {
		parameters := bookingResults.Tests[i].Parameters
		for j := range parameters {
			refRange := SelectReferenceRange(
				patient.Age,
				patient.Gender,
				parameters[j].RefRangeMale,
				parameters[j].RefRangeFemale,
				parameters[j].RefRangeChild,
			)
			parameters[j].Status = EvaluateStatus(parameters[j].Value, refRange)
		}
	}
}
