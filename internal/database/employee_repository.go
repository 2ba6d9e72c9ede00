package database

import (
	"github.com/empresa-hr/employee-records-backend/internal/models"
)

// EmployeeRepository handles database operations for employee records.
// Every operation is a single parameterized statement; there are no
// transactions and no retries, so concurrent mutations on the same
// business key race at the storage layer's row-level consistency.
type EmployeeRepository struct {
	db DB
}

// NewEmployeeRepository creates a new employee repository
func NewEmployeeRepository(db DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

// NewEmployee carries the client-supplied fields for an insert. The
// internal id is assigned by the database and never settable here.
type NewEmployee struct {
	Name          string
	EmployeeID    string
	Email         string
	PhoneNumber   string
	Department    string
	DateOfJoining string
	Role          string
}

// EmployeeFields are the mutable attributes overwritten by an update.
// employee_id itself is immutable after creation.
type EmployeeFields struct {
	Name          string
	Email         string
	PhoneNumber   string
	Department    string
	DateOfJoining string
	Role          string
}

// ListAll retrieves every employee record in storage order
func (r *EmployeeRepository) ListAll() ([]models.Employee, error) {
	var employees []models.Employee
	query := `SELECT * FROM employees`
	if err := r.db.Select(&employees, query); err != nil {
		return nil, classifyError(err)
	}
	return employees, nil
}

// Insert creates a new employee row. A duplicate employee_id or email
// violates a unique constraint and surfaces as *DuplicateKeyError; any
// other failure surfaces as *StorageError.
func (r *EmployeeRepository) Insert(e NewEmployee) error {
	query := `
		INSERT INTO employees (name, employee_id, email, phone_number, department, date_of_joining, role)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	date, err := models.NormalizeDate(e.DateOfJoining)
	if err != nil {
		return &StorageError{Message: err.Error()}
	}

	if _, err := r.db.Exec(query, e.Name, e.EmployeeID, e.Email, e.PhoneNumber, e.Department, date, e.Role); err != nil {
		return classifyError(err)
	}
	return nil
}

// UpdateByEmployeeID overwrites the mutable fields of the row matching
// the business key. The date is normalized to YYYY-MM-DD before writing.
// Returns the affected-row count; zero means no such employee.
func (r *EmployeeRepository) UpdateByEmployeeID(employeeID string, f EmployeeFields) (int64, error) {
	query := `
		UPDATE employees
		SET name = $1, email = $2, phone_number = $3, department = $4, date_of_joining = $5, role = $6
		WHERE employee_id = $7
	`
	date, err := models.NormalizeDate(f.DateOfJoining)
	if err != nil {
		return 0, &StorageError{Message: err.Error()}
	}

	result, err := r.db.Exec(query, f.Name, f.Email, f.PhoneNumber, f.Department, date, f.Role, employeeID)
	if err != nil {
		return 0, classifyError(err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, &StorageError{Message: err.Error()}
	}
	return rows, nil
}

// DeleteByEmployeeID removes the row matching the business key. Returns
// the affected-row count; zero means no such employee. Deletion is
// permanent and immediate.
func (r *EmployeeRepository) DeleteByEmployeeID(employeeID string) (int64, error) {
	query := `DELETE FROM employees WHERE employee_id = $1`

	result, err := r.db.Exec(query, employeeID)
	if err != nil {
		return 0, classifyError(err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, &StorageError{Message: err.Error()}
	}
	return rows, nil
}
