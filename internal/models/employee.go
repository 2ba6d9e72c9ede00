package models

import (
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// DateFormat is the calendar-date granularity used for date_of_joining.
const DateFormat = "2006-01-02"

// NullString wraps sql.NullString to provide proper JSON marshaling
type NullString struct {
	sql.NullString
}

// NewNullString builds a valid NullString from a plain string
func NewNullString(s string) NullString {
	return NullString{sql.NullString{String: s, Valid: true}}
}

// MarshalJSON implements json.Marshaler
func (ns NullString) MarshalJSON() ([]byte, error) {
	if ns.Valid {
		return json.Marshal(ns.String)
	}
	return json.Marshal(nil)
}

// UnmarshalJSON implements json.Unmarshaler
func (ns *NullString) UnmarshalJSON(data []byte) error {
	var s *string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s != nil {
		ns.Valid = true
		ns.String = *s
	} else {
		ns.Valid = false
	}
	return nil
}

// Date wraps sql.NullTime and marshals at calendar-date granularity
// (YYYY-MM-DD), which is how date_of_joining is stored and exchanged.
type Date struct {
	sql.NullTime
}

// NewDate builds a valid Date truncated to its calendar day
func NewDate(t time.Time) Date {
	year, month, day := t.Date()
	return Date{sql.NullTime{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC), Valid: true}}
}

// MarshalJSON implements json.Marshaler
func (d Date) MarshalJSON() ([]byte, error) {
	if d.Valid {
		return json.Marshal(d.Time.Format(DateFormat))
	}
	return json.Marshal(nil)
}

// UnmarshalJSON implements json.Unmarshaler
func (d *Date) UnmarshalJSON(data []byte) error {
	var s *string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == nil || *s == "" {
		d.Valid = false
		return nil
	}
	t, err := ParseDate(*s)
	if err != nil {
		return err
	}
	d.Time = t
	d.Valid = true
	return nil
}

// Value implements driver.Valuer
func (d Date) Value() (driver.Value, error) {
	if !d.Valid {
		return nil, nil
	}
	return d.Time.Format(DateFormat), nil
}

// ParseDate accepts a calendar date or a full timestamp and truncates it
// to the calendar day. Timestamps show up when clients echo back values
// they received from a date picker or a previous fetch.
func ParseDate(s string) (time.Time, error) {
	for _, layout := range []string{DateFormat, time.RFC3339, "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			year, month, day := t.Date()
			return time.Date(year, month, day, 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q: expected %s", s, DateFormat)
}

// NormalizeDate formats any accepted date input as YYYY-MM-DD
func NormalizeDate(s string) (string, error) {
	t, err := ParseDate(s)
	if err != nil {
		return "", err
	}
	return t.Format(DateFormat), nil
}

// Employee represents a single employee record.
// The internal id is system-generated and never used for lookups; the
// business key clients address records by is employee_id.
type Employee struct {
	ID            int64      `json:"id" db:"id"`
	Name          string     `json:"name" db:"name"`
	EmployeeID    string     `json:"employee_id" db:"employee_id"`
	Email         string     `json:"email" db:"email"`
	PhoneNumber   NullString `json:"phone_number" db:"phone_number"`
	Department    NullString `json:"department" db:"department"`
	DateOfJoining Date       `json:"date_of_joining" db:"date_of_joining"`
	Role          NullString `json:"role" db:"role"`
}
