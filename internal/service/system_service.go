package service

import (
	"database/sql"

	"github.com/papertrade/dashboard-backend/internal/database"
)

// Version is the application version, overridable at build time.
var Version = "0.1.0"

// SystemService handles system-related operations
type SystemService struct {
	db *sql.DB
}

// NewSystemService creates a new SystemService
func NewSystemService(db *sql.DB) *SystemService {
	return &SystemService{
		db: db,
	}
}

// CheckHealth checks the health of the system
func (s *SystemService) CheckHealth() error {
	return database.HealthCheck(s.db)
}

// CheckVersion returns the application version.
func (s *SystemService) CheckVersion() string {
	return Version
}
