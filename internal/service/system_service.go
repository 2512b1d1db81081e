package service

import (
	"database/sql"
	"fmt"
	"strconv"

	"github.com/ndewijer/Bond-Portfolio-Manager/internal/apperrors"
	"github.com/ndewijer/Bond-Portfolio-Manager/internal/database"
	"github.com/ndewijer/Bond-Portfolio-Manager/internal/model"
	"github.com/ndewijer/Bond-Portfolio-Manager/internal/version"
)

// SystemService handles system-related operations
type SystemService struct {
	db             *sql.DB
	notesEncrypted bool
	reminders      bool
}

// NewSystemService creates a new SystemService.
// The flags are reported as features by CheckVersion.
func NewSystemService(db *sql.DB, notesEncrypted, reminders bool) *SystemService {
	return &SystemService{
		db:             db,
		notesEncrypted: notesEncrypted,
		reminders:      reminders,
	}
}

// CheckHealth checks the health of the system
func (s *SystemService) CheckHealth() error {
	return database.HealthCheck(s.db)
}

// CheckVersion reports the application version, the applied schema version
// and whether migrations are pending.
func (s *SystemService) CheckVersion() (model.VersionInfo, error) {
	current, err := database.SchemaVersion(s.db)
	if err != nil {
		return model.VersionInfo{}, fmt.Errorf("%w: %w", apperrors.ErrFailedToGetVersion, err)
	}
	latest, err := database.LatestVersion()
	if err != nil {
		return model.VersionInfo{}, fmt.Errorf("%w: %w", apperrors.ErrFailedToGetVersion, err)
	}

	info := model.VersionInfo{
		AppVersion: version.Version,
		DbVersion:  strconv.FormatInt(current, 10),
		Features: map[string]bool{
			"notes_encryption":  s.notesEncrypted,
			"payment_reminders": s.reminders,
		},
		MigrationNeeded: current < latest,
	}
	if info.MigrationNeeded {
		msg := fmt.Sprintf("database is at version %d, latest is %d", current, latest)
		info.MigrationMessage = &msg
	}
	return info, nil
}
