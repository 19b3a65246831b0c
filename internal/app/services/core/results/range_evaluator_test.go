package results

import (
	"pathlab-client/internal/pkg/constvars"
	"pathlab-client/internal/pkg/dto/responses"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectReferenceRange(t *testing.T) {
	testCases := []struct {
		name   string
		age    int
		gender string
		want   string
	}{
		{name: "child gets the child range regardless of gender", age: 10, gender: "F", want: "child"},
		{name: "adult female gets the female range", age: 30, gender: "F", want: "female"},
		{name: "adult male gets the male range", age: 30, gender: "M", want: "male"},
		{name: "unknown gender falls back to male", age: 30, gender: "O", want: "male"},
		{name: "seventeen is still a child", age: 17, gender: "M", want: "child"},
		{name: "eighteen is an adult", age: 18, gender: "M", want: "male"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := SelectReferenceRange(tc.age, tc.gender, "male", "female", "child")
			assert.Equal(t, tc.want, got)
		})
	}

	t.Run("empty child range stays empty for a child", func(t *testing.T) {
		assert.Equal(t, "", SelectReferenceRange(10, "F", "male", "female", ""))
	})

	t.Run("empty female range stays empty for an adult female", func(t *testing.T) {
		assert.Equal(t, "", SelectReferenceRange(30, "F", "male", "", "child"))
	})
}

func TestEvaluateStatus(t *testing.T) {
	testCases := []struct {
		name     string
		value    string
		refRange string
		want     string
	}{
		{name: "below range", value: "11.2", refRange: "12.0-15.5", want: constvars.ResultStatusLow},
		{name: "inside range", value: "13.1", refRange: "12.0-15.5", want: constvars.ResultStatusNormal},
		{name: "above range", value: "16.0", refRange: "12.0-15.5", want: constvars.ResultStatusHigh},
		{name: "boundary low is normal", value: "12.0", refRange: "12.0-15.5", want: constvars.ResultStatusNormal},
		{name: "boundary high is normal", value: "15.5", refRange: "12.0-15.5", want: constvars.ResultStatusNormal},
		{name: "integer range", value: "150", refRange: "125-200", want: constvars.ResultStatusNormal},
		{name: "non-numeric value yields no flag", value: "clear", refRange: "12.0-15.5", want: ""},
		{name: "non-numeric range yields no flag", value: "13.1", refRange: "clear", want: ""},
		{name: "empty range yields no flag", value: "13.1", refRange: "", want: ""},
		{name: "whitespace around the value is tolerated", value: " 13.1 ", refRange: "12.0-15.5", want: constvars.ResultStatusNormal},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, EvaluateStatus(tc.value, tc.refRange))
		})
	}
}

func TestEvaluateBookingResults(t *testing.T) {
	t.Run("stamps statuses using the patient's age and gender", func(t *testing.T) {
		bookingResults := &responses.BookingResults{
			BookingID: 1,
			Patient:   responses.ResultPatientInfo{ID: 4, Name: "Jane Doe", Age: 35, Gender: "F"},
			Tests: []responses.TestResultGroup{
				{
					TestID: 5,
					Parameters: []responses.ParameterResult{
						{Name: "Hemoglobin", Value: "11.2", RefRangeMale: "13.5-17.5", RefRangeFemale: "12.0-15.5", RefRangeChild: "11.0-14.0"},
						{Name: "WBC Count", Value: "7.2", RefRangeMale: "4.5-11.0", RefRangeFemale: "4.5-11.0", RefRangeChild: "5.0-13.0"},
						{Name: "Appearance", Value: "clear", RefRangeMale: "clear", RefRangeFemale: "clear", RefRangeChild: "clear"},
					},
				},
			},
		}

		EvaluateBookingResults(bookingResults)

		parameters := bookingResults.Tests[0].Parameters
		assert.Equal(t, constvars.ResultStatusLow, parameters[0].Status)
		assert.Equal(t, constvars.ResultStatusNormal, parameters[1].Status)
		assert.Empty(t, parameters[2].Status)
	})

	t.Run("a child is judged against the child range", func(t *testing.T) {
		bookingResults := &responses.BookingResults{
			Patient: responses.ResultPatientInfo{Age: 9, Gender: "M"},
			Tests: []responses.TestResultGroup{
				{
					Parameters: []responses.ParameterResult{
						// Low for an adult male, normal for a child.
						{Value: "12.5", RefRangeMale: "13.5-17.5", RefRangeFemale: "12.0-15.5", RefRangeChild: "11.0-14.0"},
					},
				},
			},
		}

		EvaluateBookingResults(bookingResults)
		assert.Equal(t, constvars.ResultStatusNormal, bookingResults.Tests[0].Parameters[0].Status)
	})

	t.Run("a child with no child range is left unflagged", func(t *testing.T) {
		bookingResults := &responses.BookingResults{
			Patient: responses.ResultPatientInfo{Age: 9, Gender: "M"},
			Tests: []responses.TestResultGroup{
				{
					Parameters: []responses.ParameterResult{
						{Value: "12.5", RefRangeMale: "13.5-17.5", RefRangeFemale: "12.0-15.5", RefRangeChild: ""},
					},
				},
			},
		}

		EvaluateBookingResults(bookingResults)
		assert.Empty(t, bookingResults.Tests[0].Parameters[0].Status)
	})

	t.Run("nil input is a no-op", func(t *testing.T) {
		assert.NotPanics(t, func() { EvaluateBookingResults(nil) })
	})
}
