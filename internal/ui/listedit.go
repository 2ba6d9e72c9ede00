package ui

import (
	"github.com/empresa-hr/employee-records-backend/internal/models"
	"github.com/empresa-hr/employee-records-backend/pkg/client"
)

// EmployeeUpdater submits an inline edit to the API
type EmployeeUpdater interface {
	UpdateEmployee(employeeID string, fields client.EmployeeFields) (*client.SuccessResponse, error)
}

// EmployeeDeleter removes an employee via the API
type EmployeeDeleter interface {
	DeleteEmployee(employeeID string) (*client.SuccessResponse, error)
}

// Draft is the in-progress edited copy of a record while a row is in
// edit mode. EmployeeID identifies the row and is not editable.
type Draft struct {
	EmployeeID    string
	Name          string
	Email         string
	PhoneNumber   string
	Department    string
	DateOfJoining string
	Role          string
}

// draftOf copies a record into an editable draft
func draftOf(e models.Employee) Draft {
	d := Draft{
		EmployeeID:  e.EmployeeID,
		Name:        e.Name,
		Email:       e.Email,
		PhoneNumber: e.PhoneNumber.String,
		Department:  e.Department.String,
		Role:        e.Role.String,
	}
	if e.DateOfJoining.Valid {
		d.DateOfJoining = e.DateOfJoining.Time.Format(models.DateFormat)
	}
	return d
}

// ListState is the list/edit table. It does not fetch: the owner hands
// it the current employee list, a refresh callback, and a loading flag.
// The component is either viewing (no draft) or editing (exactly one
// draft). The draft is a single optional slot: starting to edit another
// row overwrites any previous draft.
type ListState struct {
	Employees []models.Employee
	Loading   bool

	draft    *Draft
	refresh  func() error
	notifier Notifier
}

// NewListState creates a list in viewing mode
func NewListState(refresh func() error, notifier Notifier) *ListState {
	return &ListState{
		refresh:  refresh,
		notifier: notifier,
	}
}

// SetEmployees replaces the rendered list (called by the owner after a
// fetch)
func (s *ListState) SetEmployees(employees []models.Employee) {
	s.Employees = employees
}

// SetLoading toggles the owner-provided loading flag
func (s *ListState) SetLoading(loading bool) {
	s.Loading = loading
}

// Editing returns the current draft, or nil while viewing
func (s *ListState) Editing() *Draft {
	return s.draft
}

// Edit copies the record into the draft slot, entering edit mode. A
// previous draft, if any, is discarded.
func (s *ListState) Edit(e models.Employee) {
	d := draftOf(e)
	s.draft = &d
}

// Change mutates one draft field by its form name. It is a no-op while
// viewing or for the immutable employee_id.
func (s *ListState) Change(field, value string) {
	if s.draft == nil {
		return
	}
	switch field {
	case "name":
		s.draft.Name = value
	case "email":
		s.draft.Email = value
	case "phone_number":
		s.draft.PhoneNumber = value
	case "department":
		s.draft.Department = value
	case "date_of_joining":
		s.draft.DateOfJoining = value
	case "role":
		s.draft.Role = value
	}
}

// Save submits the draft. On success the list is refreshed, the draft
// cleared, and a success notification raised; on failure the component
// stays in edit mode with a failure notification.
func (s *ListState) Save(api EmployeeUpdater) bool {
	if s.draft == nil {
		return false
	}

	_, err := api.UpdateEmployee(s.draft.EmployeeID, client.EmployeeFields{
		Name:          s.draft.Name,
		Email:         s.draft.Email,
		PhoneNumber:   s.draft.PhoneNumber,
		Department:    s.draft.Department,
		DateOfJoining: s.draft.DateOfJoining,
		Role:          s.draft.Role,
	})
	if err != nil {
		s.notifier.Notify(Error, "Failed to update employee")
		return false
	}

	s.doRefresh()
	s.notifier.Notify(Success, "Employee details updated successfully!")
	s.draft = nil
	return true
}

// Cancel discards the draft and returns to viewing
func (s *ListState) Cancel() {
	s.draft = nil
}

// Delete removes a record after an explicit confirmation step. Declining
// the confirmation leaves everything untouched.
func (s *ListState) Delete(api EmployeeDeleter, e models.Employee, confirm func(models.Employee) bool) bool {
	if !confirm(e) {
		return false
	}

	if _, err := api.DeleteEmployee(e.EmployeeID); err != nil {
		s.notifier.Notify(Error, "Failed to delete employee")
		return false
	}

	s.doRefresh()
	s.notifier.Notify(Success, "Employee deleted successfully!")
	return true
}

func (s *ListState) doRefresh() {
	if s.refresh == nil {
		return
	}
	if err := s.refresh(); err != nil {
		s.notifier.Notify(Error, "Failed to refresh employee list")
	}
}
