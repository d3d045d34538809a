package domain

import "time"

const (
	MinimumAge = 18
	DateLayout = "2006-01-02"
)

// RegistrationForm is the raw signup input as submitted by the client.
type RegistrationForm struct {
	Name        string `json:"name" validate:"required,min=2,max=255"`
	Email       string `json:"email" validate:"required,email"`
	DateOfBirth string `json:"date_of_birth" validate:"required"`
	CountryCode string `json:"country_code" validate:"required,countrycode"`
	PhoneNumber string `json:"phone_number" validate:"required,min=7,max=15,number"`
}

// Registration is a RegistrationForm that passed validation.
type Registration struct {
	Name        string
	Email       string
	DateOfBirth time.Time
	CountryCode string
	PhoneNumber string
}

// Upload is an optional profile picture attached to the signup form.
type Upload struct {
	Filename    string
	ContentType string
	Data        []byte
}

type RegistrationResult struct {
	UserID    int64
	EmailSent bool
}

// AgeOn returns the number of full years between birth and day.
func AgeOn(birth, day time.Time) int {
	years := day.Year() - birth.Year()
	if day.Month() < birth.Month() || (day.Month() == birth.Month() && day.Day() < birth.Day()) {
		years--
	}
	return years
}
