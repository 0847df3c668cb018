package model

import (
	"encoding/json"
	"time"
)

type SessionStatus string

const (
	SessionInProgress SessionStatus = "in_progress"
	SessionCompleted  SessionStatus = "completed"
	SessionAbandoned  SessionStatus = "abandoned"
)

// AssessmentSession tracks one taker's pass through an assessment, from
// start to submission. Answers and Results are stored as JSON documents.
type AssessmentSession struct {
	UUIDBase
	AssessmentID   uint            `gorm:"index;not null" json:"-"`
	AssessmentSlug string          `gorm:"size:100;index" json:"assessmentId"`
	Status         SessionStatus   `gorm:"size:20;default:'in_progress';index" json:"status"`
	CurrentSection string          `gorm:"size:100" json:"currentSection"`
	Progress       int             `gorm:"default:0" json:"progress"`
	Answers        json.RawMessage `gorm:"type:json" json:"answers,omitempty"`
	Results        json.RawMessage `gorm:"type:json" json:"results,omitempty"`
	UserAgent      string          `gorm:"size:512" json:"-"`
	IPAddress      string          `gorm:"size:64" json:"-"`
	Referrer       string          `gorm:"size:512" json:"-"`
	StartedAt      time.Time       `json:"startedAt"`
	CompletedAt    *time.Time      `json:"completedAt,omitempty"`
}

func (AssessmentSession) TableName() string {
	return "assessment_sessions"
}
