package utils

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9!#$%&'*+/=?^_` + "`" + `{|}~-]+(?:\.[a-zA-Z0-9!#$%&'*+/=?^_` + "`" + `{|}~-]+)*@(?:[a-zA-Z0-9](?:[a-zA-Z0-9-]*[a-zA-Z0-9])?\.)+[a-zA-Z0-9](?:[a-zA-Z0-9-]*[a-zA-Z0-9])?$`)

	phoneRegexes = []*regexp.Regexp{
		regexp.MustCompile(`^\+[1-9]\d{7,14}$`), // E.164
		regexp.MustCompile(`^1?\d{10}$`),        // NANP digits, optional leading 1
	}

	phoneSeparators = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "", ".", "")
)

func ValidateEmail(email string) (bool, error) {
	if !emailRegex.MatchString(email) {
		return false, fmt.Errorf("error: email format incorrect")
	}
	return true, nil
}

// ValidatePhone accepts E.164 numbers and US numbers written with the usual
// separators, e.g. "(503) 669-4191".
func ValidatePhone(phone string) (bool, error) {
	cleaned := NormalizePhone(phone)
	for _, regex := range phoneRegexes {
		if regex.MatchString(cleaned) {
			return true, nil
		}
	}
	return false, fmt.Errorf("phone format incorrect")
}

// NormalizePhone strips separators and converts bare US numbers to E.164.
func NormalizePhone(phone string) string {
	cleaned := phoneSeparators.Replace(strings.TrimSpace(phone))
	if strings.HasPrefix(cleaned, "+") {
		return cleaned
	}
	switch len(cleaned) {
	case 10:
		return "+1" + cleaned
	case 11:
		if strings.HasPrefix(cleaned, "1") {
			return "+" + cleaned
		}
	}
	return cleaned
}

// ValidateDateOfBirth expects YYYY-MM-DD and rejects dates in the future.
func ValidateDateOfBirth(dob string, now time.Time) (time.Time, error) {
	parsed, err := time.Parse("2006-01-02", dob)
	if err != nil {
		return time.Time{}, fmt.Errorf("date of birth must be YYYY-MM-DD")
	}
	if parsed.After(now) {
		return time.Time{}, fmt.Errorf("date of birth cannot be in the future")
	}
	return parsed, nil
}

// AgeOn returns the age in whole years on the given day.
func AgeOn(dob, on time.Time) int {
	age := on.Year() - dob.Year()
	if on.Month() < dob.Month() || (on.Month() == dob.Month() && on.Day() < dob.Day()) {
		age--
	}
	return age
}
