package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/empresa-hr/employee-records-backend/internal/database"
)

// setupTestRouter builds the real route table over a mocked database
func setupTestRouter(t *testing.T) (*gin.Engine, sqlmock.Sqlmock) {
	gin.SetMode(gin.TestMode)

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	db := &database.PostgresDB{DB: sqlx.NewDb(mockDB, "sqlmock")}

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	handler := NewEmployeeHandler(database.NewEmployeeRepository(db), logger)

	router := gin.New()
	router.GET("/get-employees", handler.GetEmployees)
	router.POST("/add-employee", handler.AddEmployee)
	router.PUT("/update-employee/:employee_id", handler.UpdateEmployee)
	router.DELETE("/delete-employee/:employee_id", handler.DeleteEmployee)

	return router, mock
}

func doJSON(router *gin.Engine, method, path string, payload interface{}) *httptest.ResponseRecorder {
	var body io.Reader
	if payload != nil {
		data, _ := json.Marshal(payload)
		body = bytes.NewBuffer(data)
	}
	req, _ := http.NewRequest(method, path, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func employeeRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "name", "employee_id", "email", "phone_number",
		"department", "date_of_joining", "role",
	})
}

func validAddPayload() map[string]string {
	return map[string]string{
		"name":            "A",
		"employee_id":     "E1",
		"email":           "a@x.com",
		"phone_number":    "1234567890",
		"country_code":    "+91",
		"department":      "HR",
		"date_of_joining": "2024-01-01",
		"role":            "Dev",
	}
}

func TestGetEmployees(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		router, mock := setupTestRouter(t)

		joined := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		mock.ExpectQuery(`SELECT \* FROM employees`).
			WillReturnRows(employeeRows().
				AddRow(1, "A", "E1", "a@x.com", "1234567890", "HR", joined, "Dev"))

		w := doJSON(router, http.MethodGet, "/get-employees", nil)

		assert.Equal(t, http.StatusOK, w.Code)

		var employees []map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &employees))
		require.Len(t, employees, 1)
		assert.Equal(t, "E1", employees[0]["employee_id"])
		assert.Equal(t, "a@x.com", employees[0]["email"])
		assert.Equal(t, "2024-01-01", employees[0]["date_of_joining"])

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Empty List Is An Array", func(t *testing.T) {
		router, mock := setupTestRouter(t)

		mock.ExpectQuery(`SELECT \* FROM employees`).
			WillReturnRows(employeeRows())

		w := doJSON(router, http.MethodGet, "/get-employees", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "[]", w.Body.String())

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Storage Error", func(t *testing.T) {
		router, mock := setupTestRouter(t)

		mock.ExpectQuery(`SELECT \* FROM employees`).
			WillReturnError(fmt.Errorf("connection refused"))

		w := doJSON(router, http.MethodGet, "/get-employees", nil)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "Error fetching employees", body["error"])
		assert.Contains(t, body["details"], "connection refused")

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestAddEmployee(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		router, mock := setupTestRouter(t)

		mock.ExpectExec(`INSERT INTO employees`).
			WithArgs("A", "E1", "a@x.com", "1234567890", "HR", "2024-01-01", "Dev").
			WillReturnResult(sqlmock.NewResult(1, 1))

		w := doJSON(router, http.MethodPost, "/add-employee", validAddPayload())

		assert.Equal(t, http.StatusCreated, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "Employee added successfully", body["message"])
		assert.Equal(t, "E1", body["employeeId"])

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Missing Field", func(t *testing.T) {
		router, mock := setupTestRouter(t)

		payload := validAddPayload()
		delete(payload, "role")

		w := doJSON(router, http.MethodPost, "/add-employee", payload)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "All fields are required", body["error"])

		// The repository is never reached
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Empty Field", func(t *testing.T) {
		router, mock := setupTestRouter(t)

		payload := validAddPayload()
		payload["email"] = ""

		w := doJSON(router, http.MethodPost, "/add-employee", payload)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "All fields are required", body["error"])

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Duplicate Key", func(t *testing.T) {
		router, mock := setupTestRouter(t)

		mock.ExpectExec(`INSERT INTO employees`).
			WithArgs("A", "E1", "a@x.com", "1234567890", "HR", "2024-01-01", "Dev").
			WillReturnError(&pq.Error{
				Code:    "23505",
				Message: `duplicate key value violates unique constraint "employees_email_key"`,
			})

		w := doJSON(router, http.MethodPost, "/add-employee", validAddPayload())

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "Database insertion failed", body["error"])
		assert.Equal(t, "23505", body["errorCode"])
		assert.Contains(t, body["details"], "employees_email_key")

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUpdateEmployee(t *testing.T) {
	updatePayload := map[string]string{
		"name":            "A",
		"email":           "a@x.com",
		"phone_number":    "1234567890",
		"department":      "HR",
		"date_of_joining": "2024-01-01",
		"role":            "Lead",
	}

	t.Run("Success", func(t *testing.T) {
		router, mock := setupTestRouter(t)

		mock.ExpectExec(`UPDATE employees`).
			WithArgs("A", "a@x.com", "1234567890", "HR", "2024-01-01", "Lead", "E1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		w := doJSON(router, http.MethodPut, "/update-employee/E1", updatePayload)

		assert.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "Employee updated successfully", body["message"])
		assert.Equal(t, "E1", body["employeeId"])

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Normalizes Timestamp Date", func(t *testing.T) {
		router, mock := setupTestRouter(t)

		payload := map[string]string{}
		for k, v := range updatePayload {
			payload[k] = v
		}
		payload["date_of_joining"] = "2024-01-01T08:15:00Z"

		mock.ExpectExec(`UPDATE employees`).
			WithArgs("A", "a@x.com", "1234567890", "HR", "2024-01-01", "Lead", "E1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		w := doJSON(router, http.MethodPut, "/update-employee/E1", payload)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not Found", func(t *testing.T) {
		router, mock := setupTestRouter(t)

		mock.ExpectExec(`UPDATE employees`).
			WithArgs("A", "a@x.com", "1234567890", "HR", "2024-01-01", "Lead", "GHOST").
			WillReturnResult(sqlmock.NewResult(0, 0))

		w := doJSON(router, http.MethodPut, "/update-employee/GHOST", updatePayload)

		assert.Equal(t, http.StatusNotFound, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "Employee not found", body["error"])

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Storage Error", func(t *testing.T) {
		router, mock := setupTestRouter(t)

		mock.ExpectExec(`UPDATE employees`).
			WithArgs("A", "a@x.com", "1234567890", "HR", "2024-01-01", "Lead", "E1").
			WillReturnError(fmt.Errorf("connection reset"))

		w := doJSON(router, http.MethodPut, "/update-employee/E1", updatePayload)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "Error updating employee", body["error"])

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDeleteEmployee(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		router, mock := setupTestRouter(t)

		mock.ExpectExec(`DELETE FROM employees WHERE employee_id`).
			WithArgs("E1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		w := doJSON(router, http.MethodDelete, "/delete-employee/E1", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "Employee deleted successfully", body["message"])
		assert.Equal(t, "E1", body["employeeId"])

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not Found", func(t *testing.T) {
		router, mock := setupTestRouter(t)

		mock.ExpectExec(`DELETE FROM employees WHERE employee_id`).
			WithArgs("GHOST").
			WillReturnResult(sqlmock.NewResult(0, 0))

		w := doJSON(router, http.MethodDelete, "/delete-employee/GHOST", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "Employee not found", body["error"])

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

// TestEmployeeLifecycle walks a record through add, list, update and
// delete against the full route table.
func TestEmployeeLifecycle(t *testing.T) {
	router, mock := setupTestRouter(t)

	joined := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectExec(`INSERT INTO employees`).
		WithArgs("A", "E1", "a@x.com", "1234567890", "HR", "2024-01-01", "Dev").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectQuery(`SELECT \* FROM employees`).
		WillReturnRows(employeeRows().
			AddRow(1, "A", "E1", "a@x.com", "1234567890", "HR", joined, "Dev"))
	mock.ExpectExec(`UPDATE employees`).
		WithArgs("A", "a@x.com", "1234567890", "HR", "2024-01-01", "Lead", "E1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT \* FROM employees`).
		WillReturnRows(employeeRows().
			AddRow(1, "A", "E1", "a@x.com", "1234567890", "HR", joined, "Lead"))
	mock.ExpectExec(`DELETE FROM employees WHERE employee_id`).
		WithArgs("E1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT \* FROM employees`).
		WillReturnRows(employeeRows())

	// Add
	w := doJSON(router, http.MethodPost, "/add-employee", validAddPayload())
	require.Equal(t, http.StatusCreated, w.Code)

	// List contains the record with the submitted fields
	w = doJSON(router, http.MethodGet, "/get-employees", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var employees []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &employees))
	require.Len(t, employees, 1)
	assert.Equal(t, "A", employees[0]["name"])
	assert.Equal(t, "Dev", employees[0]["role"])

	// Update the role
	w = doJSON(router, http.MethodPut, "/update-employee/E1", map[string]string{
		"name": "A", "email": "a@x.com", "phone_number": "1234567890",
		"department": "HR", "date_of_joining": "2024-01-01", "role": "Lead",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, http.MethodGet, "/get-employees", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &employees))
	require.Len(t, employees, 1)
	assert.Equal(t, "Lead", employees[0]["role"])

	// Delete
	w = doJSON(router, http.MethodDelete, "/delete-employee/E1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, http.MethodGet, "/get-employees", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &employees))
	assert.Empty(t, employees)

	assert.NoError(t, mock.ExpectationsWereMet())
}
