package service

import (
	"fmt"
	"pathfinder_backend/internal/config"
	"pathfinder_backend/internal/model"
	"pathfinder_backend/internal/repository"
	"pathfinder_backend/pkg/logger"

	"go.uber.org/zap"
)

type ContactService struct {
	Repo   *repository.ContactRepository
	Mailer Mailer
	Cfg    *config.Config
}

func NewContactService(repo *repository.ContactRepository, mailer Mailer, cfg *config.Config) *ContactService {
	return &ContactService{Repo: repo, Mailer: mailer, Cfg: cfg}
}

// Submit stores a contact message and forwards it to the admin inbox.
func (s *ContactService) Submit(msg *model.ContactMessage) error {
	if err := s.Repo.Create(msg); err != nil {
		return err
	}

	if s.Cfg.Email.AdminEmail != "" {
		subject := "New contact message: " + msg.Subject
		body := fmt.Sprintf("From: %s <%s>\n\n%s", msg.Name, msg.Email, msg.Message)
		if err := s.Mailer.Send([]string{s.Cfg.Email.AdminEmail}, subject, body); err != nil {
			logger.Log.Warn("Failed to forward contact message",
				zap.Uint("messageId", msg.ID), zap.Error(err))
		}
	}

	return nil
}

func (s *ContactService) List(page, limit int) ([]model.ContactMessage, int64, error) {
	return s.Repo.List(page, limit)
}

func (s *ContactService) MarkRead(id uint) error {
	return s.Repo.MarkRead(id)
}
