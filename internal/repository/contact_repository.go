package repository

import (
	"pathfinder_backend/internal/model"

	"gorm.io/gorm"
)

type ContactRepository struct {
	DB *gorm.DB
}

func NewContactRepository(db *gorm.DB) *ContactRepository {
	return &ContactRepository{DB: db}
}

func (r *ContactRepository) Create(m *model.ContactMessage) error {
	return r.DB.Create(m).Error
}

func (r *ContactRepository) List(page, limit int) ([]model.ContactMessage, int64, error) {
	var ms []model.ContactMessage
	var total int64
	query := r.DB.Model(&model.ContactMessage{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * limit
	err := query.Order("created_at desc").Offset(offset).Limit(limit).Find(&ms).Error
	return ms, total, err
}

func (r *ContactRepository) MarkRead(id uint) error {
	return r.DB.Model(&model.ContactMessage{}).Where("id = ?", id).Update("read", true).Error
}
