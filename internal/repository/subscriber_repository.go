package repository

import (
	"pathfinder_backend/internal/model"

	"gorm.io/gorm"
)

type SubscriberRepository struct {
	DB *gorm.DB
}

func NewSubscriberRepository(db *gorm.DB) *SubscriberRepository {
	return &SubscriberRepository{DB: db}
}

func (r *SubscriberRepository) Create(s *model.Subscriber) error {
	return r.DB.Create(s).Error
}

func (r *SubscriberRepository) FindByEmail(email string) (*model.Subscriber, error) {
	var s model.Subscriber
	err := r.DB.Where("email = ?", email).First(&s).Error
	return &s, err
}

func (r *SubscriberRepository) DeleteByEmail(email string) (int64, error) {
	result := r.DB.Where("email = ?", email).Delete(&model.Subscriber{})
	return result.RowsAffected, result.Error
}

func (r *SubscriberRepository) ListAll() ([]model.Subscriber, error) {
	var ss []model.Subscriber
	err := r.DB.Order("subscribed_at desc").Find(&ss).Error
	return ss, err
}

func (r *SubscriberRepository) Count() (int64, error) {
	var count int64
	err := r.DB.Model(&model.Subscriber{}).Count(&count).Error
	return count, err
}
