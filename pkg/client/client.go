// Package client is the HTTP API client the form and list components
// submit through. Calls are fire-and-await: one request per user action,
// no retries, no timeout, and every failure is surfaced immediately to
// the caller.
package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/empresa-hr/employee-records-backend/internal/models"
)

// Client talks to the employee records API
type Client struct {
	baseURL string
	client  *http.Client
}

// New creates an API client for the given base URL
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{},
	}
}

// NewEmployee is the add-employee payload, mirroring the browser form.
// country_code travels with the form data even though the server only
// stores the other seven fields.
type NewEmployee struct {
	Name          string `json:"name"`
	EmployeeID    string `json:"employee_id"`
	Email         string `json:"email"`
	PhoneNumber   string `json:"phone_number"`
	CountryCode   string `json:"country_code"`
	Department    string `json:"department"`
	DateOfJoining string `json:"date_of_joining"`
	Role          string `json:"role"`
}

// EmployeeFields is the update-employee payload. The business key goes
// in the URL, not the body.
type EmployeeFields struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	PhoneNumber   string `json:"phone_number"`
	Department    string `json:"department"`
	DateOfJoining string `json:"date_of_joining"`
	Role          string `json:"role"`
}

// SuccessResponse is the body returned by the mutating endpoints
type SuccessResponse struct {
	Message    string `json:"message"`
	EmployeeID string `json:"employeeId"`
}

// ErrorPayload is the error body returned by the server
type ErrorPayload struct {
	Error     string `json:"error"`
	ErrorCode string `json:"errorCode,omitempty"`
	Details   string `json:"details,omitempty"`
}

// APIError carries the HTTP status and the server's error payload so
// the UI can surface it both as a message and a notification.
type APIError struct {
	StatusCode int
	Payload    ErrorPayload
}

func (e *APIError) Error() string {
	if e.Payload.Details != "" {
		return fmt.Sprintf("%s: %s", e.Payload.Error, e.Payload.Details)
	}
	if e.Payload.Error != "" {
		return e.Payload.Error
	}
	return fmt.Sprintf("request failed with status %d", e.StatusCode)
}

// ListEmployees fetches the full employee list
// GET /get-employees
func (c *Client) ListEmployees() ([]models.Employee, error) {
	resp, err := c.client.Get(c.baseURL + "/get-employees")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch employees: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp.StatusCode, body)
	}

	var employees []models.Employee
	if err := json.Unmarshal(body, &employees); err != nil {
		return nil, fmt.Errorf("failed to parse employee list: %w", err)
	}
	return employees, nil
}

// AddEmployee submits a new employee record
// POST /add-employee
func (c *Client) AddEmployee(e NewEmployee) (*SuccessResponse, error) {
	return c.mutate(http.MethodPost, "/add-employee", e, http.StatusCreated)
}

// UpdateEmployee overwrites the record matching the business key
// PUT /update-employee/:employee_id
func (c *Client) UpdateEmployee(employeeID string, fields EmployeeFields) (*SuccessResponse, error) {
	return c.mutate(http.MethodPut, "/update-employee/"+employeeID, fields, http.StatusOK)
}

// DeleteEmployee removes the record matching the business key
// DELETE /delete-employee/:employee_id
func (c *Client) DeleteEmployee(employeeID string) (*SuccessResponse, error) {
	return c.mutate(http.MethodDelete, "/delete-employee/"+employeeID, nil, http.StatusOK)
}

// mutate issues a mutating request and decodes the shared success or
// error body shape.
func (c *Client) mutate(method, path string, payload interface{}, wantStatus int) (*SuccessResponse, error) {
	var reqBody io.Reader
	if payload != nil {
		jsonData, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != wantStatus {
		return nil, apiError(resp.StatusCode, body)
	}

	var success SuccessResponse
	if err := json.Unmarshal(body, &success); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	return &success, nil
}

func apiError(status int, body []byte) error {
	apiErr := &APIError{StatusCode: status}
	// Best effort: a proxy may return a non-JSON body
	_ = json.Unmarshal(body, &apiErr.Payload)
	return apiErr
}
