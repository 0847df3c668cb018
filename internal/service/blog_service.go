package service

import (
	"context"
	"fmt"
	"math"
	"mime/multipart"
	"path/filepath"
	"pathfinder_backend/internal/model"
	"pathfinder_backend/internal/repository"
	"pathfinder_backend/internal/util"
	"pathfinder_backend/pkg/logger"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const wordsPerMinute = 200

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

type BlogService struct {
	Repo        *repository.BlogRepository
	Subscribers *repository.SubscriberRepository
	Storage     *StorageService
	Mailer      Mailer
}

func NewBlogService(repo *repository.BlogRepository, subscribers *repository.SubscriberRepository, storage *StorageService, mailer Mailer) *BlogService {
	return &BlogService{
		Repo:        repo,
		Subscribers: subscribers,
		Storage:     storage,
		Mailer:      mailer,
	}
}

// Slugify derives the URL slug from a post title.
func Slugify(title string) string {
	slug := slugPattern.ReplaceAllString(strings.ToLower(title), "-")
	return strings.Trim(slug, "-")
}

// ReadTime estimates reading time from the word count of the content.
func ReadTime(content string) string {
	words := len(strings.Fields(content))
	minutes := int(math.Ceil(float64(words) / wordsPerMinute))
	if minutes < 1 {
		minutes = 1
	}
	return fmt.Sprintf("%d min read", minutes)
}

func (s *BlogService) Create(post *model.BlogPost) error {
	if post.Slug == "" {
		post.Slug = Slugify(post.Title)
	}
	taken, err := s.Repo.SlugExists(post.Slug, 0)
	if err != nil {
		return err
	}
	if taken {
		return util.ErrSlugTaken
	}

	post.ReadTime = ReadTime(post.Content)
	s.stampPublished(post, false)

	if err := s.Repo.Create(post); err != nil {
		return err
	}

	if post.IsPublished {
		go s.notifySubscribers(post)
	}
	return nil
}

func (s *BlogService) Update(post *model.BlogPost) error {
	existing, err := s.Repo.FindByID(post.ID)
	if err == gorm.ErrRecordNotFound {
		return util.ErrPostNotFound
	}
	if err != nil {
		return err
	}

	if post.Slug == "" {
		post.Slug = Slugify(post.Title)
	}
	taken, err := s.Repo.SlugExists(post.Slug, post.ID)
	if err != nil {
		return err
	}
	if taken {
		return util.ErrSlugTaken
	}

	post.ReadTime = ReadTime(post.Content)
	post.CreatedAt = existing.CreatedAt
	post.PublishedAt = existing.PublishedAt
	s.stampPublished(post, existing.IsPublished)

	if err := s.Repo.Update(post); err != nil {
		return err
	}

	if post.IsPublished && !existing.IsPublished {
		go s.notifySubscribers(post)
	}
	return nil
}

func (s *BlogService) Delete(id uint) error {
	_, err := s.Repo.FindByID(id)
	if err == gorm.ErrRecordNotFound {
		return util.ErrPostNotFound
	}
	if err != nil {
		return err
	}
	return s.Repo.Delete(id)
}

func (s *BlogService) GetBySlug(slug string) (*model.BlogPost, error) {
	post, err := s.Repo.FindBySlug(slug)
	if err == gorm.ErrRecordNotFound {
		return nil, util.ErrPostNotFound
	}
	if err != nil {
		return nil, err
	}
	if !post.IsPublished {
		return nil, util.ErrPostNotFound
	}

	if err := s.Repo.IncrementViews(post.ID); err != nil {
		logger.Log.Warn("Failed to count view", zap.Uint("postId", post.ID), zap.Error(err))
	}
	return post, nil
}

func (s *BlogService) GetByID(id uint) (*model.BlogPost, error) {
	post, err := s.Repo.FindByID(id)
	if err == gorm.ErrRecordNotFound {
		return nil, util.ErrPostNotFound
	}
	return post, err
}

func (s *BlogService) ListPublished(page, limit int) ([]model.BlogPost, int64, error) {
	return s.Repo.ListPublished(page, limit)
}

func (s *BlogService) ListFeatured(limit int) ([]model.BlogPost, error) {
	return s.Repo.ListFeatured(limit)
}

func (s *BlogService) ListByCategory(category string, page, limit int) ([]model.BlogPost, int64, error) {
	return s.Repo.ListByCategory(category, page, limit)
}

func (s *BlogService) Search(term string, page, limit int) ([]model.BlogPost, int64, error) {
	return s.Repo.Search(term, page, limit)
}

func (s *BlogService) ListAll(page, limit int) ([]model.BlogPost, int64, error) {
	return s.Repo.ListAll(page, limit)
}

func (s *BlogService) Categories() ([]string, error) {
	return s.Repo.Categories()
}

// UploadAttachment validates and stores one attachment, returning its
// public URL.
func (s *BlogService) UploadAttachment(ctx context.Context, header *multipart.FileHeader) (*model.BlogAttachment, error) {
	file, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	mimeType, err := util.ValidateMimeType(file, []string{util.MimeImage, util.MimePDF})
	if err != nil {
		return nil, err
	}
	if _, err := file.Seek(0, 0); err != nil {
		return nil, err
	}

	ext := filepath.Ext(header.Filename)
	filename := fmt.Sprintf("blog/%s%s", uuid.New().String(), ext)

	url, err := s.Storage.Upload(ctx, filename, file, header.Size, mimeType)
	if err != nil {
		return nil, err
	}

	return &model.BlogAttachment{
		Name: header.Filename,
		URL:  url,
		Type: mimeType,
	}, nil
}

func (s *BlogService) stampPublished(post *model.BlogPost, wasPublished bool) {
	if post.IsPublished && !wasPublished && post.PublishedAt == nil {
		now := time.Now()
		post.PublishedAt = &now
	}
}

func (s *BlogService) notifySubscribers(post *model.BlogPost) {
	subscribers, err := s.Subscribers.ListAll()
	if err != nil {
		logger.Log.Error("Failed to load subscribers for notification", zap.Error(err))
		return
	}
	if len(subscribers) == 0 {
		return
	}

	subject := "New on Path Finder: " + post.Title
	body := fmt.Sprintf("%s\n\n%s\n\nRead it here: /blog/%s", post.Title, post.Excerpt, post.Slug)

	for _, sub := range subscribers {
		if err := s.Mailer.Send([]string{sub.Email}, subject, body); err != nil {
			logger.Log.Warn("Failed to notify subscriber",
				zap.String("email", sub.Email), zap.Error(err))
		}
	}
}
