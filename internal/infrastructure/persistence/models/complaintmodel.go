package models

type ComplaintModel struct {
	ID                uint   `gorm:"primaryKey"`
	Phone             string `gorm:"size:30;not null;index"`
	ContractNumber    string `gorm:"size:20;index"`
	Category          string `gorm:"size:20;not null;index"`
	Description       string `gorm:"type:text;not null"`
	Priority          string `gorm:"size:10;not null;index"`
	Status            string `gorm:"size:20;not null;index"`
	AssignedTo        string `gorm:"size:100"`
	EscalatedToOrange bool   `gorm:"not null;default:false"`
	OrangeTicketID    string `gorm:"size:100"`
	CreatedAt         int64  `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt         int64  `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (ComplaintModel) TableName() string {
	return "complaints"
}

type ComplaintNoteModel struct {
	ID          uint   `gorm:"primaryKey"`
	ComplaintID uint   `gorm:"not null;index"`
	Author      string `gorm:"size:100;not null"`
	Content     string `gorm:"type:text;not null"`
	CreatedAt   int64  `gorm:"autoCreateTime:milli;not null;index"`
}

func (ComplaintNoteModel) TableName() string {
	return "complaint_notes"
}

// ComplaintReminderModel records which reminder thresholds already fired.
// The unique index makes MarkSent idempotent at the database level.
type ComplaintReminderModel struct {
	ID             uint  `gorm:"primaryKey"`
	ComplaintID    uint  `gorm:"not null;uniqueIndex:idx_complaint_threshold"`
	ThresholdHours int   `gorm:"not null;uniqueIndex:idx_complaint_threshold"`
	SentAt         int64 `gorm:"autoCreateTime:milli;not null"`
}

func (ComplaintReminderModel) TableName() string {
	return "complaint_reminders"
}
