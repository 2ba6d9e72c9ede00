package database

// createEmployeesTable is the one-time bootstrap DDL. The id column is the
// internal identity; employee_id is the business key clients look records
// up by. employee_id and email carry unique constraints, so duplicate
// inserts fail at the storage layer.
const createEmployeesTable = `
CREATE TABLE IF NOT EXISTS employees (
	id SERIAL PRIMARY KEY,
	name VARCHAR(100) NOT NULL,
	employee_id VARCHAR(50) UNIQUE NOT NULL,
	email VARCHAR(100) UNIQUE NOT NULL,
	phone_number VARCHAR(20),
	department VARCHAR(100),
	date_of_joining DATE,
	role VARCHAR(100)
)`

// EnsureSchema creates the employees table if it does not already exist
func EnsureSchema(db DB) error {
	if _, err := db.Exec(createEmployeesTable); err != nil {
		return classifyError(err)
	}
	return nil
}
