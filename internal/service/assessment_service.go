package service

import (
	"context"
	"encoding/json"
	"pathfinder_backend/internal/config"
	"pathfinder_backend/internal/model"
	"pathfinder_backend/internal/repository"
	"pathfinder_backend/internal/scoring"
	"pathfinder_backend/internal/util"
	"pathfinder_backend/pkg/logger"
	"pathfinder_backend/pkg/monitoring"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const definitionCacheTTL = 10 * time.Minute

// AssessmentDetail is the public shape of one assessment: catalogue fields
// plus its normalized sections.
type AssessmentDetail struct {
	*model.Assessment
	Sections []scoring.Section `json:"sections"`
}

type AssessmentService struct {
	Repo  *repository.AssessmentRepository
	Redis *redis.Client
	Cfg   *config.Config

	mu     sync.RWMutex
	engine *scoring.Engine
}

func NewAssessmentService(repo *repository.AssessmentRepository, rdb *redis.Client, cfg *config.Config) *AssessmentService {
	s := &AssessmentService{
		Repo:  repo,
		Redis: rdb,
		Cfg:   cfg,
	}
	s.ReloadScoring(cfg.Scoring)
	return s
}

// ReloadScoring swaps the engine configuration; called at startup and on
// config hot reload.
func (s *AssessmentService) ReloadScoring(cfg config.ScoringConfig) {
	engineCfg := scoring.DefaultConfig()
	engineCfg.Policy = scoring.PolicyByName(cfg.RecommendationPolicy)
	engineCfg.MatchIDSubstring = cfg.MatchIDSubstring

	s.mu.Lock()
	s.engine = scoring.NewEngine(engineCfg)
	s.mu.Unlock()

	logger.Log.Info("Scoring engine configured",
		zap.String("policy", engineCfg.Policy.Name),
		zap.Bool("matchIdSubstring", engineCfg.MatchIDSubstring))
}

func (s *AssessmentService) Engine() *scoring.Engine {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.engine
}

func (s *AssessmentService) ListActive() ([]model.Assessment, error) {
	return s.Repo.ListActive()
}

func (s *AssessmentService) ListFeatured() ([]model.Assessment, error) {
	return s.Repo.ListFeatured()
}

func (s *AssessmentService) ListByCategory(category string) ([]model.Assessment, error) {
	return s.Repo.ListByCategory(category)
}

// GetDetail returns one active assessment with its sections decoded and
// normalized (sliders converted to likert, scale options synthesized).
// Details are cached in redis; admin mutations invalidate the entry.
func (s *AssessmentService) GetDetail(ctx context.Context, slug string) (*AssessmentDetail, error) {
	if cached, err := s.Redis.Get(ctx, definitionKey(slug)).Bytes(); err == nil {
		var detail AssessmentDetail
		if err := json.Unmarshal(cached, &detail); err == nil {
			return &detail, nil
		}
	}

	a, err := s.Repo.FindBySlug(slug)
	if err == gorm.ErrRecordNotFound {
		return nil, util.ErrAssessmentNotFound
	}
	if err != nil {
		return nil, err
	}
	if !a.IsActive {
		return nil, util.ErrAssessmentNotFound
	}

	sections, err := decodeSections(a.Sections)
	if err != nil {
		return nil, err
	}
	for i := range sections {
		sections[i] = scoring.NormalizeSection(sections[i])
	}

	detail := &AssessmentDetail{Assessment: a, Sections: sections}
	detail.Assessment.Sections = nil

	if payload, err := json.Marshal(detail); err == nil {
		if err := s.Redis.Set(ctx, definitionKey(slug), payload, definitionCacheTTL).Err(); err != nil {
			logger.Log.Warn("Failed to cache assessment detail", zap.String("slug", slug), zap.Error(err))
		}
	}

	return detail, nil
}

// Definition builds the engine's scoring input for one assessment.
func (s *AssessmentService) Definition(ctx context.Context, slug string) (scoring.Definition, error) {
	detail, err := s.GetDetail(ctx, slug)
	if err != nil {
		return scoring.Definition{}, err
	}
	return scoring.Definition{
		ID:       detail.Slug,
		Title:    detail.Title,
		Sections: detail.Sections,
	}, nil
}

// Calculate scores a flat answer list against an assessment definition.
func (s *AssessmentService) Calculate(ctx context.Context, slug string, answers []scoring.Answer) (*scoring.Result, error) {
	def, err := s.Definition(ctx, slug)
	if err != nil {
		return nil, err
	}

	result := s.Engine().Evaluate(def, answers)
	result.Metadata.AssessmentID = def.ID
	result.Metadata.Timestamp = time.Now().UTC().Format(time.RFC3339)

	monitoring.AssessmentsScored.WithLabelValues(def.ID, result.Recommendation).Inc()

	return &result, nil
}

// Admin operations. Each mutation drops the cached detail.

func (s *AssessmentService) Create(ctx context.Context, a *model.Assessment) error {
	if err := s.Repo.Create(a); err != nil {
		return err
	}
	s.invalidate(ctx, a.Slug)
	return nil
}

func (s *AssessmentService) Update(ctx context.Context, a *model.Assessment) error {
	if err := s.Repo.Update(a); err != nil {
		return err
	}
	s.invalidate(ctx, a.Slug)
	return nil
}

func (s *AssessmentService) Delete(ctx context.Context, id uint) error {
	a, err := s.Repo.FindByID(id)
	if err == gorm.ErrRecordNotFound {
		return util.ErrAssessmentNotFound
	}
	if err != nil {
		return err
	}
	if err := s.Repo.Delete(id); err != nil {
		return err
	}
	s.invalidate(ctx, a.Slug)
	return nil
}

func (s *AssessmentService) FindByID(id uint) (*model.Assessment, error) {
	a, err := s.Repo.FindByID(id)
	if err == gorm.ErrRecordNotFound {
		return nil, util.ErrAssessmentNotFound
	}
	return a, err
}

func (s *AssessmentService) ListAll(page, limit int) ([]model.Assessment, int64, error) {
	return s.Repo.ListAll(page, limit)
}

func (s *AssessmentService) UpsertSection(ctx context.Context, assessmentID uint, section *model.AssessmentSection) error {
	a, err := s.Repo.FindByID(assessmentID)
	if err == gorm.ErrRecordNotFound {
		return util.ErrAssessmentNotFound
	}
	if err != nil {
		return err
	}
	section.AssessmentID = a.ID
	if err := s.Repo.UpsertSection(section); err != nil {
		return err
	}
	s.invalidate(ctx, a.Slug)
	return nil
}

func (s *AssessmentService) DeleteSection(ctx context.Context, assessmentID uint, sectionID string) error {
	a, err := s.Repo.FindByID(assessmentID)
	if err == gorm.ErrRecordNotFound {
		return util.ErrAssessmentNotFound
	}
	if err != nil {
		return err
	}
	if err := s.Repo.DeleteSection(a.ID, sectionID); err != nil {
		return err
	}
	s.invalidate(ctx, a.Slug)
	return nil
}

func (s *AssessmentService) invalidate(ctx context.Context, slug string) {
	if err := s.Redis.Del(ctx, definitionKey(slug)).Err(); err != nil {
		logger.Log.Warn("Failed to invalidate assessment cache", zap.String("slug", slug), zap.Error(err))
	}
}

func definitionKey(slug string) string {
	return "assessment:detail:" + slug
}

// decodeSections turns persisted section rows into scoring sections.
func decodeSections(rows []model.AssessmentSection) ([]scoring.Section, error) {
	sections := make([]scoring.Section, 0, len(rows))
	for _, row := range rows {
		section := scoring.Section{
			ID:          row.SectionID,
			Type:        row.Type,
			Title:       row.Title,
			Description: row.Description,
			OrderIndex:  row.OrderIndex,
		}
		if len(row.Questions) > 0 {
			if err := json.Unmarshal(row.Questions, &section.Questions); err != nil {
				return nil, err
			}
		}
		if len(row.ScoringConfig) > 0 {
			var cfg scoring.ScoringConfig
			if err := json.Unmarshal(row.ScoringConfig, &cfg); err != nil {
				return nil, err
			}
			section.ScoringConfig = &cfg
		}
		sections = append(sections, section)
	}
	return sections, nil
}
