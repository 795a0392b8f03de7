package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shenikar/safety_reporting_system/internal/models"
	"github.com/sirupsen/logrus"
)

type ProfileRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Profile, error)
}

type ProfileService interface {
	ResolveActor(ctx context.Context, userID uuid.UUID, email string) (*models.Actor, error)
}

type profileService struct {
	repo   ProfileRepository
	logger *logrus.Logger
}

func NewProfileService(repo ProfileRepository, logger *logrus.Logger) ProfileService {
	return &profileService{repo: repo, logger: logger}
}

// ResolveActor строит Actor текущего запроса по профилю.
// Без профиля роль пустая, и любая защищённая операция получит ErrPermissionDenied.
func (s *profileService) ResolveActor(ctx context.Context, userID uuid.UUID, email string) (*models.Actor, error) {
	actor := &models.Actor{ID: userID, Email: email}

	profile, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			s.logger.WithField("user_id", userID).Warn("Profile not found for authenticated user")
			return actor, nil
		}
		return nil, fmt.Errorf("service: could not load profile: %w", err)
	}

	actor.Role = profile.Role
	if actor.Email == "" {
		actor.Email = profile.Email
	}
	return actor, nil
}
