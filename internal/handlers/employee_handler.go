package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/empresa-hr/employee-records-backend/internal/database"
	"github.com/empresa-hr/employee-records-backend/internal/models"
)

// EmployeeHandler handles the employee CRUD routes. Handlers are
// state-free: each request validates its input, delegates to the
// repository, and maps the outcome onto the response contract.
type EmployeeHandler struct {
	employeeRepo *database.EmployeeRepository
	logger       *logrus.Logger
}

// NewEmployeeHandler creates a new employee handler
func NewEmployeeHandler(employeeRepo *database.EmployeeRepository, logger *logrus.Logger) *EmployeeHandler {
	return &EmployeeHandler{
		employeeRepo: employeeRepo,
		logger:       logger,
	}
}

// AddEmployeeRequest mirrors the browser form payload. country_code is
// submitted by the form but only used client-side, so it is accepted
// and ignored here.
type AddEmployeeRequest struct {
	Name          string `json:"name"`
	EmployeeID    string `json:"employee_id"`
	Email         string `json:"email"`
	PhoneNumber   string `json:"phone_number"`
	CountryCode   string `json:"country_code"`
	Department    string `json:"department"`
	DateOfJoining string `json:"date_of_joining"`
	Role          string `json:"role"`
}

// UpdateEmployeeRequest carries the mutable fields of a record. The
// business key comes from the URL, never the body.
type UpdateEmployeeRequest struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	PhoneNumber   string `json:"phone_number"`
	Department    string `json:"department"`
	DateOfJoining string `json:"date_of_joining"`
	Role          string `json:"role"`
}

// GetEmployees returns the full employee list
// GET /get-employees
func (h *EmployeeHandler) GetEmployees(c *gin.Context) {
	employees, err := h.employeeRepo.ListAll()
	if err != nil {
		h.logStorageFailure("fetch employees", err)
		c.JSON(http.StatusInternalServerError, storageErrorBody("Error fetching employees", err))
		return
	}

	if employees == nil {
		employees = []models.Employee{}
	}
	c.JSON(http.StatusOK, employees)
}

// AddEmployee inserts a new employee record
// POST /add-employee
func (h *EmployeeHandler) AddEmployee(c *gin.Context) {
	var req AddEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	if req.Name == "" || req.EmployeeID == "" || req.Email == "" || req.PhoneNumber == "" ||
		req.Department == "" || req.DateOfJoining == "" || req.Role == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required"})
		return
	}

	err := h.employeeRepo.Insert(database.NewEmployee{
		Name:          req.Name,
		EmployeeID:    req.EmployeeID,
		Email:         req.Email,
		PhoneNumber:   req.PhoneNumber,
		Department:    req.Department,
		DateOfJoining: req.DateOfJoining,
		Role:          req.Role,
	})

	h.respondOutcome(c, outcome{
		employeeID:     req.EmployeeID,
		successStatus:  http.StatusCreated,
		successMessage: "Employee added successfully",
		failureMessage: "Database insertion failed",
		rows:           1,
		err:            err,
	})
}

// UpdateEmployee overwrites the mutable fields of the record matching
// the business key. Field presence is not validated here: the route
// trusts its caller, which lets partial-looking payloads through on
// purpose (the whole row is still overwritten).
// PUT /update-employee/:employee_id
func (h *EmployeeHandler) UpdateEmployee(c *gin.Context) {
	employeeID := c.Param("employee_id")

	var req UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	rows, err := h.employeeRepo.UpdateByEmployeeID(employeeID, database.EmployeeFields{
		Name:          req.Name,
		Email:         req.Email,
		PhoneNumber:   req.PhoneNumber,
		Department:    req.Department,
		DateOfJoining: req.DateOfJoining,
		Role:          req.Role,
	})

	h.respondOutcome(c, outcome{
		employeeID:     employeeID,
		successStatus:  http.StatusOK,
		successMessage: "Employee updated successfully",
		failureMessage: "Error updating employee",
		rows:           rows,
		err:            err,
	})
}

// DeleteEmployee removes the record matching the business key
// DELETE /delete-employee/:employee_id
func (h *EmployeeHandler) DeleteEmployee(c *gin.Context) {
	employeeID := c.Param("employee_id")

	rows, err := h.employeeRepo.DeleteByEmployeeID(employeeID)

	h.respondOutcome(c, outcome{
		employeeID:     employeeID,
		successStatus:  http.StatusOK,
		successMessage: "Employee deleted successfully",
		failureMessage: "Error deleting employee",
		rows:           rows,
		err:            err,
	})
}

// outcome is the result of a mutating repository call plus the response
// text for this route.
type outcome struct {
	employeeID     string
	successStatus  int
	successMessage string
	failureMessage string
	rows           int64
	err            error
}

// respondOutcome maps a repository outcome (success, not-found,
// duplicate-key, storage-error) onto the shared HTTP response contract.
// Status codes are the only error-discrimination channel clients get:
// 404 for a missing business key, 500 for any storage failure with the
// native diagnostic passed through.
func (h *EmployeeHandler) respondOutcome(c *gin.Context, o outcome) {
	switch {
	case o.err != nil:
		h.logStorageFailure(o.failureMessage, o.err)
		c.JSON(http.StatusInternalServerError, storageErrorBody(o.failureMessage, o.err))
	case o.rows == 0:
		c.JSON(http.StatusNotFound, gin.H{"error": "Employee not found"})
	default:
		c.JSON(o.successStatus, gin.H{
			"message":    o.successMessage,
			"employeeId": o.employeeID,
		})
	}
}

// storageErrorBody builds the 500 payload, passing the native error
// code through when the driver provided one.
func storageErrorBody(message string, err error) gin.H {
	body := gin.H{"error": message}

	var dup *database.DuplicateKeyError
	var storage *database.StorageError
	switch {
	case errors.As(err, &dup):
		body["errorCode"] = dup.Code
		body["details"] = dup.Message
	case errors.As(err, &storage):
		if storage.Code != "" {
			body["errorCode"] = storage.Code
		}
		body["details"] = storage.Message
	default:
		body["details"] = err.Error()
	}
	return body
}

// logStorageFailure logs a storage failure with full native detail
func (h *EmployeeHandler) logStorageFailure(action string, err error) {
	fields := logrus.Fields{}

	var dup *database.DuplicateKeyError
	var storage *database.StorageError
	switch {
	case errors.As(err, &dup):
		fields["error_code"] = dup.Code
		fields["details"] = dup.Message
	case errors.As(err, &storage):
		fields["error_code"] = storage.Code
		fields["details"] = storage.Message
	}

	h.logger.WithError(err).WithFields(fields).Errorf("Storage failure: %s", action)
}
