package models

type OutcomeModel struct {
	ID             uint   `gorm:"primaryKey"`
	Phone          string `gorm:"size:30;not null;index"`
	Text           string `gorm:"type:text;not null"`
	Branch         string `gorm:"size:20;not null;index"`
	Language       string `gorm:"size:5;not null"`
	Intent         string `gorm:"size:20;not null"`
	ContractNumber string `gorm:"size:20;index"`
	ResponseFR     string `gorm:"type:text;not null"`
	ResponseAR     string `gorm:"type:text;not null"`
	UsedFallback   bool   `gorm:"not null;default:false"`
	FromCache      bool   `gorm:"not null;default:false"`
	IsComplaint    bool   `gorm:"not null;default:false"`
	ComplaintID    *uint  `gorm:"index"`
	ErrorCode      string `gorm:"size:30"`
	ExtractionMS   int64  `gorm:"not null;default:0"`
	ResolverMS     int64  `gorm:"not null;default:0"`
	CreatedAt      int64  `gorm:"autoCreateTime:milli;not null;index"`
}

func (OutcomeModel) TableName() string {
	return "message_outcomes"
}
