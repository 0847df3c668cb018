package service

import (
	"context"
	"encoding/json"
	"pathfinder_backend/internal/model"
	"pathfinder_backend/internal/repository"
	"pathfinder_backend/internal/scoring"
	"pathfinder_backend/internal/util"
	"pathfinder_backend/pkg/logger"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type SessionService struct {
	Repo        *repository.SessionRepository
	Assessments *AssessmentService
}

func NewSessionService(repo *repository.SessionRepository, assessments *AssessmentService) *SessionService {
	return &SessionService{Repo: repo, Assessments: assessments}
}

// SessionMeta carries request metadata recorded when a session starts.
type SessionMeta struct {
	UserAgent string
	IPAddress string
	Referrer  string
}

// Start opens a new session against an active assessment.
func (s *SessionService) Start(ctx context.Context, slug string, meta SessionMeta) (*model.AssessmentSession, error) {
	detail, err := s.Assessments.GetDetail(ctx, slug)
	if err != nil {
		return nil, err
	}

	session := &model.AssessmentSession{
		AssessmentID:   detail.ID,
		AssessmentSlug: detail.Slug,
		Status:         model.SessionInProgress,
		UserAgent:      meta.UserAgent,
		IPAddress:      meta.IPAddress,
		Referrer:       meta.Referrer,
		StartedAt:      time.Now(),
	}
	if len(detail.Sections) > 0 {
		session.CurrentSection = detail.Sections[0].ID
	}

	if err := s.Repo.Create(session); err != nil {
		return nil, err
	}
	return session, nil
}

// SaveAnswers replaces the session's answer document and progress marker.
func (s *SessionService) SaveAnswers(ctx context.Context, sessionID string, answers []scoring.Answer, currentSection string, progress int) (*model.AssessmentSession, error) {
	session, err := s.find(sessionID)
	if err != nil {
		return nil, err
	}
	if session.Status == model.SessionCompleted {
		return nil, util.ErrSessionCompleted
	}

	payload, err := json.Marshal(answers)
	if err != nil {
		return nil, err
	}
	session.Answers = payload
	if currentSection != "" {
		session.CurrentSection = currentSection
	}
	if progress > session.Progress {
		session.Progress = progress
	}

	if err := s.Repo.Update(session); err != nil {
		return nil, err
	}
	return session, nil
}

// Submit scores the session's stored answers and persists the result.
// Submitting an already-completed session recomputes and overwrites the
// results; the engine is deterministic so the operation is idempotent.
func (s *SessionService) Submit(ctx context.Context, sessionID string) (*model.AssessmentSession, *scoring.Result, error) {
	session, err := s.find(sessionID)
	if err != nil {
		return nil, nil, err
	}

	var answers []scoring.Answer
	if len(session.Answers) > 0 {
		if err := json.Unmarshal(session.Answers, &answers); err != nil {
			return nil, nil, err
		}
	}

	result, err := s.Assessments.Calculate(ctx, session.AssessmentSlug, answers)
	if err != nil {
		return nil, nil, err
	}

	payload, err := json.Marshal(result)
	if err != nil {
		return nil, nil, err
	}

	now := time.Now()
	session.Results = payload
	session.Status = model.SessionCompleted
	session.Progress = 100
	if session.CompletedAt == nil {
		session.CompletedAt = &now
	}

	if err := s.Repo.Update(session); err != nil {
		return nil, nil, err
	}

	logger.Log.Info("Assessment session submitted",
		zap.String("sessionId", session.ID),
		zap.String("assessment", session.AssessmentSlug),
		zap.Int("overallScore", result.OverallScore),
		zap.String("recommendation", result.Recommendation))

	return session, result, nil
}

// Abandon marks a session abandoned without scoring it.
func (s *SessionService) Abandon(ctx context.Context, sessionID string) (*model.AssessmentSession, error) {
	session, err := s.find(sessionID)
	if err != nil {
		return nil, err
	}
	if session.Status == model.SessionCompleted {
		return nil, util.ErrSessionCompleted
	}

	session.Status = model.SessionAbandoned
	if err := s.Repo.Update(session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *SessionService) Get(sessionID string) (*model.AssessmentSession, error) {
	return s.find(sessionID)
}

func (s *SessionService) find(sessionID string) (*model.AssessmentSession, error) {
	session, err := s.Repo.FindByID(sessionID)
	if err == gorm.ErrRecordNotFound {
		return nil, util.ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	return session, nil
}
