package ui

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/empresa-hr/employee-records-backend/pkg/client"
	"github.com/empresa-hr/employee-records-backend/pkg/validator"
)

type recordingNotifier struct {
	levels   []Level
	messages []string
}

func (n *recordingNotifier) Notify(level Level, message string) {
	n.levels = append(n.levels, level)
	n.messages = append(n.messages, message)
}

type fakeCreator struct {
	resp  *client.SuccessResponse
	err   error
	calls []client.NewEmployee
}

func (f *fakeCreator) AddEmployee(e client.NewEmployee) (*client.SuccessResponse, error) {
	f.calls = append(f.calls, e)
	return f.resp, f.err
}

func newTestForm(notifier Notifier) *FormState {
	f := NewFormState(validator.NewPhoneValidator(), notifier)
	// Fixed clock so the date rule is deterministic
	f.now = func() time.Time {
		return time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	}
	return f
}

func fillValidForm(f *FormState) {
	f.SetField("name", "A")
	f.SetField("employee_id", "E1")
	f.SetField("email", "a@x.com")
	f.SetField("phone_number", "1234567890")
	f.SetField("department", "HR")
	f.SetField("date_of_joining", "2024-01-01")
	f.SetField("role", "Dev")
}

func TestFormSubmitSuccess(t *testing.T) {
	notifier := &recordingNotifier{}
	form := newTestForm(notifier)
	fillValidForm(form)

	api := &fakeCreator{resp: &client.SuccessResponse{Message: "Employee added successfully", EmployeeID: "E1"}}

	require.True(t, form.Submit(api))

	require.Len(t, api.calls, 1)
	assert.Equal(t, "E1", api.calls[0].EmployeeID)
	assert.Equal(t, "+91", api.calls[0].CountryCode)
	assert.Equal(t, "2024-01-01", api.calls[0].DateOfJoining)

	// Form cleared back to its initial state
	assert.Equal(t, "", form.Fields.Name)
	assert.Equal(t, DefaultCountryCode, form.Fields.CountryCode)
	assert.Empty(t, form.Errors)
	assert.Equal(t, "Employee added successfully", form.Message)
	require.Len(t, notifier.levels, 1)
	assert.Equal(t, Success, notifier.levels[0])
}

func TestFormValidationBlocksNetworkCall(t *testing.T) {
	t.Run("date later than tomorrow", func(t *testing.T) {
		notifier := &recordingNotifier{}
		form := newTestForm(notifier)
		fillValidForm(form)
		form.SetField("date_of_joining", "2024-06-17") // tomorrow is 2024-06-16

		api := &fakeCreator{}
		assert.False(t, form.Submit(api))

		assert.Empty(t, api.calls)
		assert.Equal(t, "Date is required", form.Errors["date_of_joining"])
	})

	t.Run("tomorrow itself is allowed", func(t *testing.T) {
		form := newTestForm(&recordingNotifier{})
		fillValidForm(form)
		form.SetField("date_of_joining", "2024-06-16")

		api := &fakeCreator{resp: &client.SuccessResponse{Message: "ok"}}
		assert.True(t, form.Submit(api))
		assert.Len(t, api.calls, 1)
	})

	t.Run("phone pattern follows selected country", func(t *testing.T) {
		form := newTestForm(&recordingNotifier{})
		fillValidForm(form)

		assert.True(t, form.Validate(), "1234567890 should pass for +91")

		form.SetField("country_code", "+69") // nine-digit pattern
		assert.False(t, form.Validate())
		assert.Equal(t, "Invalid phone number for kailasa", form.Errors["phone_number"])
	})

	t.Run("email must contain at sign", func(t *testing.T) {
		form := newTestForm(&recordingNotifier{})
		fillValidForm(form)
		form.SetField("email", "not-an-email")

		api := &fakeCreator{}
		assert.False(t, form.Submit(api))
		assert.Empty(t, api.calls)
		assert.Equal(t, "Invalid email.", form.Errors["email"])
	})

	t.Run("every failing rule notifies", func(t *testing.T) {
		notifier := &recordingNotifier{}
		form := newTestForm(notifier)

		api := &fakeCreator{}
		assert.False(t, form.Submit(api))

		assert.Empty(t, api.calls)
		// name, employee_id, email, phone, department, date, role
		assert.Len(t, form.Errors, 7)
		assert.Len(t, notifier.messages, 7)
	})
}

func TestFormSubmitServerFailure(t *testing.T) {
	notifier := &recordingNotifier{}
	form := newTestForm(notifier)
	fillValidForm(form)

	api := &fakeCreator{err: errors.New("Database insertion failed: duplicate key")}

	assert.False(t, form.Submit(api))

	// The failure is persisted and notified; fields stay editable
	assert.Equal(t, "Database insertion failed: duplicate key", form.Message)
	assert.Equal(t, "A", form.Fields.Name)
	require.Len(t, notifier.levels, 1)
	assert.Equal(t, Error, notifier.levels[0])

	// The form stays usable: fixing nothing and resubmitting calls again
	api.err = nil
	api.resp = &client.SuccessResponse{Message: "Employee added successfully"}
	assert.True(t, form.Submit(api))
	assert.Len(t, api.calls, 2)
}

func TestFormReset(t *testing.T) {
	form := newTestForm(&recordingNotifier{})
	fillValidForm(form)
	form.Errors["name"] = "stale"

	form.Reset()

	assert.Equal(t, FormFields{CountryCode: DefaultCountryCode}, form.Fields)
	assert.Empty(t, form.Errors)
}
