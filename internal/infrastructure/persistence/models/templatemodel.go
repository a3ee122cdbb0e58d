package models

type ResponseTemplateModel struct {
	ID             uint   `gorm:"primaryKey"`
	Etat           string `gorm:"size:50;not null;uniqueIndex:idx_template_key"`
	SousEtat       string `gorm:"size:50;not null;default:'';uniqueIndex:idx_template_key"`
	SousEtat2      string `gorm:"size:50;not null;default:'';uniqueIndex:idx_template_key"`
	BodyFR         string `gorm:"type:text;not null"`
	BodyAR         string `gorm:"type:text;not null"`
	AllowComplaint bool   `gorm:"not null;default:true"`
	CreatedAt      int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt      int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (ResponseTemplateModel) TableName() string {
	return "response_templates"
}
