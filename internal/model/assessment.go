package model

import (
	"encoding/json"
	"time"
)

// swagger:model Assessment
type Assessment struct {
	BaseModel
	Slug           string          `gorm:"size:100;uniqueIndex;not null" json:"id"`
	Title          string          `gorm:"size:255;not null" json:"title"`
	Description    string          `gorm:"type:text" json:"description"`
	Category       string          `gorm:"size:100;index" json:"category"`
	Duration       string          `gorm:"size:50" json:"duration"`
	Difficulty     string          `gorm:"size:50" json:"difficulty"`
	Icon           string          `gorm:"size:100" json:"icon,omitempty"`
	Gradient       string          `gorm:"size:255" json:"gradient,omitempty"`
	Featured       bool            `gorm:"default:false;index" json:"featured"`
	IsActive       bool            `gorm:"default:true;index" json:"isActive"`
	Metadata       json.RawMessage `gorm:"type:json" json:"metadata,omitempty"`
	WhatYouLearn   json.RawMessage `gorm:"type:json" json:"whatYouLearn,omitempty"`
	IdealFor       json.RawMessage `gorm:"type:json" json:"idealFor,omitempty"`
	CareerOutcomes json.RawMessage `gorm:"type:json" json:"careerOutcomes,omitempty"`
	PublishedAt    *time.Time      `json:"publishedAt,omitempty"`

	Sections []AssessmentSection `gorm:"foreignKey:AssessmentID" json:"sections,omitempty"`
}

func (Assessment) TableName() string {
	return "assessments"
}

// AssessmentSection carries its question list and scoring overrides as JSON
// documents; the scoring package decodes them into its own types.
type AssessmentSection struct {
	BaseModel
	AssessmentID  uint            `gorm:"index;not null" json:"-"`
	SectionID     string          `gorm:"size:100;not null" json:"id"`
	Title         string          `gorm:"size:255" json:"title"`
	Description   string          `gorm:"type:text" json:"description"`
	Type          string          `gorm:"size:50;not null" json:"type"`
	OrderIndex    int             `gorm:"default:0" json:"orderIndex"`
	Questions     json.RawMessage `gorm:"type:json" json:"questions,omitempty"`
	ScoringConfig json.RawMessage `gorm:"type:json" json:"scoringConfig,omitempty"`
}

func (AssessmentSection) TableName() string {
	return "assessment_sections"
}
