// init-schema is the one-time bootstrap that creates the employees
// table. It runs standalone: a failure here is logged and reported via
// the exit code, but nothing else depends on this process staying up.
package main

import (
	"flag"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/empresa-hr/employee-records-backend/internal/config"
	"github.com/empresa-hr/employee-records-backend/internal/database"
)

func main() {
	var dbURLFlag string
	flag.StringVar(&dbURLFlag, "database-url", "", "PostgreSQL connection string (overrides DATABASE_URL)")
	flag.Parse()

	logger := logrus.New()
	logger.SetOutput(os.Stdout)

	// Try loading .env from current working directory (optional)
	_ = godotenv.Load()

	dbURL := dbURLFlag
	if dbURL == "" {
		dbURL = os.Getenv("DATABASE_URL")
	}
	if dbURL == "" {
		logger.Fatal("DATABASE_URL is not set and -database-url was not provided")
	}

	// Build minimal database config without loading full app config
	dbCfg := config.DatabaseConfig{
		URL:                dbURL,
		MaxConnections:     5,
		MaxIdleConnections: 2,
	}

	db, err := database.NewConnection(dbCfg)
	if err != nil {
		logger.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	// No retry: a failed bootstrap is reported and left to the operator
	if err := database.EnsureSchema(db); err != nil {
		logger.Errorf("Error creating table: %v", err)
		os.Exit(1)
	}

	logger.Info("Employees table created successfully.")
}
