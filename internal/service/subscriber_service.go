package service

import (
	"fmt"
	"pathfinder_backend/internal/model"
	"pathfinder_backend/internal/repository"
	"pathfinder_backend/internal/util"
	"pathfinder_backend/pkg/logger"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type SubscriberService struct {
	Repo   *repository.SubscriberRepository
	Mailer Mailer
}

func NewSubscriberService(repo *repository.SubscriberRepository, mailer Mailer) *SubscriberService {
	return &SubscriberService{Repo: repo, Mailer: mailer}
}

// Subscribe registers an email for the newsletter and sends a welcome note.
// Welcome delivery is best effort; the subscription stands either way.
func (s *SubscriberService) Subscribe(email string) (*model.Subscriber, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	if _, err := s.Repo.FindByEmail(email); err == nil {
		return nil, util.ErrAlreadySubscribed
	} else if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	subscriber := &model.Subscriber{
		Email:        email,
		SubscribedAt: time.Now(),
	}
	if err := s.Repo.Create(subscriber); err != nil {
		return nil, err
	}

	name := email
	if at := strings.Index(email, "@"); at > 0 {
		name = email[:at]
	}
	body := fmt.Sprintf("Hi %s,\n\nThanks for subscribing to the Path Finder newsletter. You'll hear from us when new guides and assessments go live.", name)
	if err := s.Mailer.Send([]string{email}, "Welcome to Path Finder", body); err != nil {
		logger.Log.Warn("Failed to send welcome email", zap.String("email", email), zap.Error(err))
	}

	return subscriber, nil
}

func (s *SubscriberService) Unsubscribe(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	rows, err := s.Repo.DeleteByEmail(email)
	if err != nil {
		return err
	}
	if rows == 0 {
		return util.ErrSubscriberNotFound
	}
	return nil
}

func (s *SubscriberService) List() ([]model.Subscriber, error) {
	return s.Repo.ListAll()
}
