package models

type TicketModel struct {
	ID             uint   `gorm:"primaryKey"`
	ComplaintID    uint   `gorm:"not null;uniqueIndex"`
	OrangeTicketID string `gorm:"size:100;index"`
	Status         string `gorm:"size:20;not null;index"`
	Description    string `gorm:"type:text;not null"`
	CreatedAt      int64  `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt      int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (TicketModel) TableName() string {
	return "tickets"
}
