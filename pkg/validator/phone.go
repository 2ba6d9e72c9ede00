package validator

import (
	"errors"
	"fmt"
	"regexp"
)

var (
	// ErrEmptyPhone indicates the phone number is empty
	ErrEmptyPhone = errors.New("phone number cannot be empty")

	// ErrUnknownCountry indicates the selected country code is not in the table
	ErrUnknownCountry = errors.New("unknown country code")
)

// Country associates a dialing code with the phone-number pattern its
// numbers must match. The table is configuration data: callers can pass
// their own set, and DefaultCountries only covers what the form offers.
type Country struct {
	Code    string
	Name    string
	Pattern *regexp.Regexp
}

// DefaultCountries is the closed set offered by the employee form.
// TODO: confirm the intended country list with stakeholders; the +69
// entry was carried over as-is from the form's original table.
var DefaultCountries = []Country{
	{Code: "+91", Name: "India", Pattern: regexp.MustCompile(`^\d{10}$`)},
	{Code: "+1", Name: "USA", Pattern: regexp.MustCompile(`^\d{10}$`)},
	{Code: "+44", Name: "UK", Pattern: regexp.MustCompile(`^\d{10}$`)},
	{Code: "+69", Name: "kailasa", Pattern: regexp.MustCompile(`^\d{9}$`)},
}

// PhoneValidator validates phone numbers against a country-code table
type PhoneValidator struct {
	countries []Country
}

// NewPhoneValidator creates a phone validator. With no arguments it uses
// DefaultCountries.
func NewPhoneValidator(countries ...Country) *PhoneValidator {
	if len(countries) == 0 {
		countries = DefaultCountries
	}
	return &PhoneValidator{countries: countries}
}

// Countries returns the configured country table in declaration order
func (v *PhoneValidator) Countries() []Country {
	return v.countries
}

// Country looks up a country by dialing code
func (v *PhoneValidator) Country(code string) (Country, bool) {
	for _, c := range v.countries {
		if c.Code == code {
			return c, true
		}
	}
	return Country{}, false
}

// Validate checks a phone number against the pattern for the selected
// country code
func (v *PhoneValidator) Validate(countryCode, phone string) error {
	if phone == "" {
		return ErrEmptyPhone
	}

	country, ok := v.Country(countryCode)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownCountry, countryCode)
	}

	if !country.Pattern.MatchString(phone) {
		return fmt.Errorf("invalid phone number for %s", country.Name)
	}

	return nil
}

// IsValid is a convenience method that returns true if the phone number
// is valid for the selected country
func (v *PhoneValidator) IsValid(countryCode, phone string) bool {
	return v.Validate(countryCode, phone) == nil
}
