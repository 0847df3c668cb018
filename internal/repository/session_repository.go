package repository

import (
	"pathfinder_backend/internal/model"

	"gorm.io/gorm"
)

type SessionRepository struct {
	DB *gorm.DB
}

func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{DB: db}
}

func (r *SessionRepository) Create(s *model.AssessmentSession) error {
	return r.DB.Create(s).Error
}

func (r *SessionRepository) Update(s *model.AssessmentSession) error {
	return r.DB.Save(s).Error
}

func (r *SessionRepository) FindByID(id string) (*model.AssessmentSession, error) {
	var s model.AssessmentSession
	err := r.DB.Where("id = ?", id).First(&s).Error
	return &s, err
}

func (r *SessionRepository) ListByAssessment(assessmentID uint, page, limit int) ([]model.AssessmentSession, int64, error) {
	var ss []model.AssessmentSession
	var total int64
	query := r.DB.Model(&model.AssessmentSession{}).Where("assessment_id = ?", assessmentID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * limit
	err := query.Order("started_at desc").Offset(offset).Limit(limit).Find(&ss).Error
	return ss, total, err
}

func (r *SessionRepository) CountByStatus(status model.SessionStatus) (int64, error) {
	var count int64
	err := r.DB.Model(&model.AssessmentSession{}).Where("status = ?", status).Count(&count).Error
	return count, err
}
