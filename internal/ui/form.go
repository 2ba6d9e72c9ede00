package ui

import (
	"strings"
	"time"

	"github.com/empresa-hr/employee-records-backend/internal/models"
	"github.com/empresa-hr/employee-records-backend/pkg/client"
	"github.com/empresa-hr/employee-records-backend/pkg/validator"
)

// Departments is the closed set offered by the form. The server does
// not enforce it.
var Departments = []string{"HR", "Engineering", "Marketing"}

// DefaultCountryCode preselects the country dropdown
const DefaultCountryCode = "+91"

// EmployeeCreator submits a new employee to the API
type EmployeeCreator interface {
	AddEmployee(e client.NewEmployee) (*client.SuccessResponse, error)
}

// FormFields are the pending values of the add-employee form
type FormFields struct {
	Name          string
	EmployeeID    string
	Email         string
	PhoneNumber   string
	CountryCode   string
	Department    string
	DateOfJoining string
	Role          string
}

// FormState is the add-employee form: pending fields, a per-field error
// map, and the last operation message. Validation runs synchronously on
// submit and short-circuits the network call when any rule fails.
type FormState struct {
	Fields  FormFields
	Errors  map[string]string
	Message string

	phones   *validator.PhoneValidator
	notifier Notifier
	now      func() time.Time
}

// NewFormState creates an empty form with the default country selected
func NewFormState(phones *validator.PhoneValidator, notifier Notifier) *FormState {
	return &FormState{
		Fields:   FormFields{CountryCode: DefaultCountryCode},
		Errors:   map[string]string{},
		phones:   phones,
		notifier: notifier,
		now:      time.Now,
	}
}

// SetField updates one pending field by its form name
func (f *FormState) SetField(name, value string) {
	switch name {
	case "name":
		f.Fields.Name = value
	case "employee_id":
		f.Fields.EmployeeID = value
	case "email":
		f.Fields.Email = value
	case "phone_number":
		f.Fields.PhoneNumber = value
	case "country_code":
		f.Fields.CountryCode = value
	case "department":
		f.Fields.Department = value
	case "date_of_joining":
		f.Fields.DateOfJoining = value
	case "role":
		f.Fields.Role = value
	}
}

// Reset clears the form back to its initial state
func (f *FormState) Reset() {
	f.Fields = FormFields{CountryCode: DefaultCountryCode}
	f.Errors = map[string]string{}
}

// Validate applies every field rule, filling the error map and raising
// a notification per failing rule. It returns true when the form may be
// submitted. The date rule uses the local clock: joining dates later
// than tomorrow are rejected.
func (f *FormState) Validate() bool {
	f.Errors = map[string]string{}

	if f.Fields.Name == "" {
		f.fail("name", "Name is required.")
	}
	if f.Fields.EmployeeID == "" {
		f.fail("employee_id", "Employee ID is required.")
	}
	if !strings.Contains(f.Fields.Email, "@") {
		f.fail("email", "Invalid email.")
	}
	if err := f.phones.Validate(f.Fields.CountryCode, f.Fields.PhoneNumber); err != nil {
		msg := "Invalid phone number."
		if country, ok := f.phones.Country(f.Fields.CountryCode); ok {
			msg = "Invalid phone number for " + country.Name
		}
		f.fail("phone_number", msg)
	}
	if f.Fields.Department == "" {
		f.fail("department", "Department is required.")
	}
	if !f.dateWithinRange() {
		f.fail("date_of_joining", "Date is required")
	}
	if f.Fields.Role == "" {
		f.fail("role", "Role is required.")
	}

	return len(f.Errors) == 0
}

// Submit validates and, if every rule passes, posts the form. On success
// the form is cleared and a success notification raised; on failure the
// server error payload becomes both the persisted message and a
// notification. The form stays usable either way.
func (f *FormState) Submit(api EmployeeCreator) bool {
	f.Message = ""
	if !f.Validate() {
		return false
	}

	resp, err := api.AddEmployee(client.NewEmployee{
		Name:          f.Fields.Name,
		EmployeeID:    f.Fields.EmployeeID,
		Email:         f.Fields.Email,
		PhoneNumber:   f.Fields.PhoneNumber,
		CountryCode:   f.Fields.CountryCode,
		Department:    f.Fields.Department,
		DateOfJoining: f.Fields.DateOfJoining,
		Role:          f.Fields.Role,
	})
	if err != nil {
		f.Message = err.Error()
		f.notifier.Notify(Error, f.Message)
		return false
	}

	f.Message = resp.Message
	f.Reset()
	f.notifier.Notify(Success, resp.Message)
	return true
}

func (f *FormState) fail(field, message string) {
	f.Errors[field] = message
	f.notifier.Notify(Error, message)
}

// dateWithinRange reports whether the joining date is present, parseable
// and not later than tomorrow on the local clock.
func (f *FormState) dateWithinRange() bool {
	if f.Fields.DateOfJoining == "" {
		return false
	}
	t, err := models.ParseDate(f.Fields.DateOfJoining)
	if err != nil {
		return false
	}
	// ISO dates compare correctly as strings
	max := f.now().AddDate(0, 0, 1).Format(models.DateFormat)
	return t.Format(models.DateFormat) <= max
}
