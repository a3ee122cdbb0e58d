// Package migrations applies the schema for the message pipeline tables.
package migrations

import (
	"gorm.io/gorm"

	"github.com/Belkouche/jarvis-sub000/internal/infrastructure/persistence/models"
)

func MigrateComplaintTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.ComplaintModel{},
		&models.ComplaintNoteModel{},
		&models.ComplaintReminderModel{},
	)
}

func MigrateTicketTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.TicketModel{},
	)
}

func MigrateMessageTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.OutcomeModel{},
		&models.ResponseTemplateModel{},
	)
}

// MigrateAll runs every migration in dependency order.
func MigrateAll(db *gorm.DB) error {
	if err := MigrateComplaintTables(db); err != nil {
		return err
	}
	if err := MigrateTicketTables(db); err != nil {
		return err
	}
	return MigrateMessageTables(db)
}
