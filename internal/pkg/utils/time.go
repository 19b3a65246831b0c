package utils

import "time"

const dateLayout = "2006-01-02"

// CalculateAge returns full years between an ISO date of birth and now.
// Unparseable input yields 0.
func CalculateAge(dateOfBirth string) int {
	dob, err := time.Parse(dateLayout, dateOfBirth)
	if err != nil {
		return 0
	}
	now := time.Now()
	age := now.Year() - dob.Year()
	if now.YearDay() < dob.YearDay() {
		age--
	}
	if age < 0 {
		return 0
	}
	return age
}
