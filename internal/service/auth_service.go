package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"pathfinder_backend/internal/config"
	"pathfinder_backend/internal/model"
	"pathfinder_backend/internal/repository"
	"pathfinder_backend/internal/util"
	"pathfinder_backend/pkg/logger"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const otpTTL = 10 * time.Minute

type AuthService struct {
	UserRepo *repository.UserRepository
	Redis    *redis.Client
	Mailer   Mailer
	Cfg      *config.Config
}

func NewAuthService(userRepo *repository.UserRepository, rdb *redis.Client, mailer Mailer, cfg *config.Config) *AuthService {
	return &AuthService{
		UserRepo: userRepo,
		Redis:    rdb,
		Mailer:   mailer,
		Cfg:      cfg,
	}
}

func (s *AuthService) Register(user *model.User) error {
	_, err := s.UserRepo.FindByEmail(user.Email)
	if err == nil {
		return util.ErrInvalidCredentials
	} else if err != gorm.ErrRecordNotFound {
		return err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.Password = string(hashedPassword)
	return s.UserRepo.Create(user)
}

// Login validates credentials and emails a one-time code. The JWT is only
// issued after VerifyOTP succeeds.
func (s *AuthService) Login(ctx context.Context, email, password string) error {
	user, err := s.UserRepo.FindByEmail(email)
	if err != nil {
		return util.ErrInvalidCredentials
	}
	if user.Disabled {
		return util.ErrPermissionDenied
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return util.ErrInvalidCredentials
	}

	code, err := generateOTP()
	if err != nil {
		return err
	}

	if err := s.Redis.Set(ctx, otpKey(email), code, otpTTL).Err(); err != nil {
		return err
	}

	body := fmt.Sprintf("Your Path Finder verification code is %s. It expires in 10 minutes.", code)
	if err := s.Mailer.Send([]string{user.Email}, "Path Finder verification code", body); err != nil {
		logger.Log.Error("Failed to send OTP email", zap.String("email", email), zap.Error(err))
		return err
	}

	return nil
}

// VerifyOTP exchanges a valid one-time code for a JWT.
func (s *AuthService) VerifyOTP(ctx context.Context, email, code string) (string, *model.User, error) {
	stored, err := s.Redis.Get(ctx, otpKey(email)).Result()
	if err != nil || stored != code {
		return "", nil, util.ErrInvalidOTP
	}
	s.Redis.Del(ctx, otpKey(email))

	user, err := s.UserRepo.FindByEmail(email)
	if err != nil {
		return "", nil, util.ErrUserNotFound
	}

	if err := s.UserRepo.TouchLastLogin(user.ID); err != nil {
		logger.Log.Warn("Failed to record last login", zap.Uint("userId", user.ID), zap.Error(err))
	}

	token, err := util.GenerateJWT(user, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func otpKey(email string) string {
	return "otp:" + email
}

func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
