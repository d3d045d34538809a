package service

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/vibe-gaming/registration/internal/domain"

	"github.com/go-playground/validator/v10"
)

// ValidateRegistration normalizes form and checks it against the signup
// rules. A malformed date_of_birth fails fast with ErrInvalidDateFormat,
// every other violation is collected into domain.ValidationErrors.
func ValidateRegistration(v *validator.Validate, form domain.RegistrationForm, today time.Time) (domain.Registration, error) {
	form.Name = strings.TrimSpace(form.Name)
	form.Email = normalizeEmail(form.Email)
	form.DateOfBirth = strings.TrimSpace(form.DateOfBirth)
	form.CountryCode = strings.TrimSpace(form.CountryCode)
	form.PhoneNumber = strings.TrimSpace(form.PhoneNumber)

	var (
		dob  time.Time
		err  error
		errs domain.ValidationErrors
	)

	if form.DateOfBirth != "" {
		dob, err = time.Parse(domain.DateLayout, form.DateOfBirth)
		if err != nil {
			return domain.Registration{}, ErrInvalidDateFormat
		}
	}

	if err := v.Struct(form); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return domain.Registration{}, fmt.Errorf("validate registration form failed: %w", err)
		}
		for _, fe := range fieldErrs {
			errs = append(errs, domain.ValidationError{
				Field: fe.Field(),
				Tag:   fe.Tag(),
				Param: fe.Param(),
			})
		}
	}

	if !dob.IsZero() && domain.AgeOn(dob, today) < domain.MinimumAge {
		errs = append(errs, domain.ValidationError{
			Field: "date_of_birth",
			Tag:   "adult",
			Param: strconv.Itoa(domain.MinimumAge),
		})
	}

	if len(errs) > 0 {
		return domain.Registration{}, errs
	}

	return domain.Registration{
		Name:        form.Name,
		Email:       form.Email,
		DateOfBirth: dob,
		CountryCode: form.CountryCode,
		PhoneNumber: form.PhoneNumber,
	}, nil
}

// normalizeEmail trims the address and lowercases its domain. The local part
// is kept as typed; uniqueness is case-insensitive in the users table anyway.
func normalizeEmail(email string) string {
	email = strings.TrimSpace(email)
	at := strings.LastIndexByte(email, '@')
	if at < 0 {
		return email
	}
	return email[:at+1] + strings.ToLower(email[at+1:])
}
