package repository

import (
	"pathfinder_backend/internal/model"

	"gorm.io/gorm"
)

type AssessmentRepository struct {
	DB *gorm.DB
}

func NewAssessmentRepository(db *gorm.DB) *AssessmentRepository {
	return &AssessmentRepository{DB: db}
}

func (r *AssessmentRepository) Create(a *model.Assessment) error {
	return r.DB.Create(a).Error
}

func (r *AssessmentRepository) Update(a *model.Assessment) error {
	return r.DB.Save(a).Error
}

func (r *AssessmentRepository) Delete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("assessment_id = ?", id).Delete(&model.AssessmentSection{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Assessment{}, id).Error
	})
}

func (r *AssessmentRepository) FindByID(id uint) (*model.Assessment, error) {
	var a model.Assessment
	err := r.DB.Preload("Sections", func(db *gorm.DB) *gorm.DB {
		return db.Order("assessment_sections.order_index asc")
	}).First(&a, id).Error
	return &a, err
}

func (r *AssessmentRepository) FindBySlug(slug string) (*model.Assessment, error) {
	var a model.Assessment
	err := r.DB.Preload("Sections", func(db *gorm.DB) *gorm.DB {
		return db.Order("assessment_sections.order_index asc")
	}).Where("slug = ?", slug).First(&a).Error
	return &a, err
}

func (r *AssessmentRepository) ListActive() ([]model.Assessment, error) {
	var as []model.Assessment
	err := r.DB.Where("is_active = ?", true).Order("created_at desc").Find(&as).Error
	return as, err
}

func (r *AssessmentRepository) ListFeatured() ([]model.Assessment, error) {
	var as []model.Assessment
	err := r.DB.Where("is_active = ? AND featured = ?", true, true).
		Order("created_at desc").Find(&as).Error
	return as, err
}

func (r *AssessmentRepository) ListByCategory(category string) ([]model.Assessment, error) {
	var as []model.Assessment
	err := r.DB.Where("is_active = ? AND category = ?", true, category).
		Order("created_at desc").Find(&as).Error
	return as, err
}

func (r *AssessmentRepository) ListAll(page, limit int) ([]model.Assessment, int64, error) {
	var as []model.Assessment
	var total int64
	query := r.DB.Model(&model.Assessment{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * limit
	err := query.Order("created_at desc").Offset(offset).Limit(limit).Find(&as).Error
	return as, total, err
}

func (r *AssessmentRepository) UpsertSection(s *model.AssessmentSection) error {
	var existing model.AssessmentSection
	err := r.DB.Where("assessment_id = ? AND section_id = ?", s.AssessmentID, s.SectionID).
		First(&existing).Error
	if err == gorm.ErrRecordNotFound {
		return r.DB.Create(s).Error
	}
	if err != nil {
		return err
	}
	s.ID = existing.ID
	s.CreatedAt = existing.CreatedAt
	return r.DB.Save(s).Error
}

func (r *AssessmentRepository) DeleteSection(assessmentID uint, sectionID string) error {
	return r.DB.Where("assessment_id = ? AND section_id = ?", assessmentID, sectionID).
		Delete(&model.AssessmentSection{}).Error
}
