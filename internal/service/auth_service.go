package service

import (
	"errors"

	"pathfinder_backend/internal/config"
	"pathfinder_backend/internal/model"
	"pathfinder_backend/internal/repository"
	"pathfinder_backend/internal/util"
	"pathfinder_backend/pkg/logger"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	userRepo *repository.UserRepository
	cfg      *config.Config
}

func NewAuthService(userRepo *repository.UserRepository, cfg *config.Config) *AuthService {
	return &AuthService{userRepo: userRepo, cfg: cfg}
}

// Register creates the account and returns a bearer token so the client is
// logged in immediately.
func (s *AuthService) Register(email, username, password string) (string, error) {
	_, err := s.userRepo.FindByEmail(email)
	if err == nil {
		return "", util.ErrEmailRegistered
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	user := &model.User{
		Email:    email,
		Username: username,
		Password: string(hashed),
	}
	if err := s.userRepo.Create(user); err != nil {
		return "", err
	}

	logger.Log.Info("User registered", zap.String("user_id", user.ID), zap.String("email", user.Email))

	return util.GenerateJWT(user.ID, user.Email, s.cfg.JWT.Secret, s.cfg.JWT.ExpireTime)
}

// Login verifies credentials and issues a token. Unknown email and wrong
// password are indistinguishable to the caller.
func (s *AuthService) Login(email, password string) (string, error) {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", util.ErrInvalidCredentials
		}
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return "", util.ErrInvalidCredentials
	}

	return util.GenerateJWT(user.ID, user.Email, s.cfg.JWT.Secret, s.cfg.JWT.ExpireTime)
}

// Profile assembles the authenticated-user view with earned badges and
// completed simulations.
func (s *AuthService) Profile(userID string) (*model.UserProfile, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}

	badges, err := s.userRepo.ListBadges(userID)
	if err != nil {
		return nil, err
	}
	completions, err := s.userRepo.ListCompletions(userID)
	if err != nil {
		return nil, err
	}
	if badges == nil {
		badges = []string{}
	}
	if completions == nil {
		completions = []string{}
	}

	return &model.UserProfile{
		ID:                   user.ID,
		Email:                user.Email,
		Username:             user.Username,
		SkillBadges:          badges,
		CompletedSimulations: completions,
		CreatedAt:            user.CreatedAt,
	}, nil
}
