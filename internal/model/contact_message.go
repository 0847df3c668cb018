package model

// swagger:model ContactMessage
type ContactMessage struct {
	BaseModel
	Name    string `gorm:"size:100;not null" json:"name"`
	Email   string `gorm:"size:255;not null;index" json:"email"`
	Subject string `gorm:"size:255" json:"subject"`
	Message string `gorm:"type:text;not null" json:"message"`
	Read    bool   `gorm:"default:false" json:"read"`
}

func (ContactMessage) TableName() string {
	return "contact_messages"
}
