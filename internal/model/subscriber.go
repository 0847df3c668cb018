package model

import "time"

// swagger:model Subscriber
type Subscriber struct {
	BaseModel
	Email        string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	SubscribedAt time.Time `json:"subscribedAt"`
}

func (Subscriber) TableName() string {
	return "subscribers"
}
