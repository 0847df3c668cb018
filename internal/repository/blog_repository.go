package repository

import (
	"pathfinder_backend/internal/model"

	"gorm.io/gorm"
)

type BlogRepository struct {
	DB *gorm.DB
}

func NewBlogRepository(db *gorm.DB) *BlogRepository {
	return &BlogRepository{DB: db}
}

func (r *BlogRepository) Create(p *model.BlogPost) error {
	return r.DB.Create(p).Error
}

func (r *BlogRepository) Update(p *model.BlogPost) error {
	return r.DB.Save(p).Error
}

func (r *BlogRepository) Delete(id uint) error {
	return r.DB.Delete(&model.BlogPost{}, id).Error
}

func (r *BlogRepository) FindByID(id uint) (*model.BlogPost, error) {
	var p model.BlogPost
	err := r.DB.First(&p, id).Error
	return &p, err
}

func (r *BlogRepository) FindBySlug(slug string) (*model.BlogPost, error) {
	var p model.BlogPost
	err := r.DB.Where("slug = ?", slug).First(&p).Error
	return &p, err
}

func (r *BlogRepository) SlugExists(slug string, excludeID uint) (bool, error) {
	var count int64
	query := r.DB.Model(&model.BlogPost{}).Where("slug = ?", slug)
	if excludeID > 0 {
		query = query.Where("id <> ?", excludeID)
	}
	err := query.Count(&count).Error
	return count > 0, err
}

func (r *BlogRepository) ListPublished(page, limit int) ([]model.BlogPost, int64, error) {
	return r.list(r.DB.Where("is_published = ?", true), page, limit)
}

func (r *BlogRepository) ListFeatured(limit int) ([]model.BlogPost, error) {
	var ps []model.BlogPost
	err := r.DB.Where("is_published = ? AND featured = ?", true, true).
		Order("published_at desc").Limit(limit).Find(&ps).Error
	return ps, err
}

func (r *BlogRepository) ListByCategory(category string, page, limit int) ([]model.BlogPost, int64, error) {
	return r.list(r.DB.Where("is_published = ? AND category = ?", true, category), page, limit)
}

func (r *BlogRepository) Search(term string, page, limit int) ([]model.BlogPost, int64, error) {
	like := "%" + term + "%"
	return r.list(r.DB.Where("is_published = ?", true).
		Where("title LIKE ? OR excerpt LIKE ? OR content LIKE ?", like, like, like), page, limit)
}

func (r *BlogRepository) ListAll(page, limit int) ([]model.BlogPost, int64, error) {
	return r.list(r.DB, page, limit)
}

func (r *BlogRepository) Categories() ([]string, error) {
	var categories []string
	err := r.DB.Model(&model.BlogPost{}).
		Where("is_published = ?", true).
		Distinct("category").
		Order("category asc").
		Pluck("category", &categories).Error
	return categories, err
}

func (r *BlogRepository) IncrementViews(id uint) error {
	return r.DB.Model(&model.BlogPost{}).Where("id = ?", id).
		Update("views", gorm.Expr("views + 1")).Error
}

func (r *BlogRepository) list(query *gorm.DB, page, limit int) ([]model.BlogPost, int64, error) {
	var ps []model.BlogPost
	var total int64
	query = query.Model(&model.BlogPost{}).Session(&gorm.Session{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * limit
	err := query.Order("published_at desc, created_at desc").
		Offset(offset).Limit(limit).Find(&ps).Error
	return ps, total, err
}
