package service

import (
	"context"

	"github.com/mutti-dev/famloc/module/core/domain"
	"github.com/mutti-dev/famloc/module/core/internal/repository/database"
)

// CircleService exposes the read side of circles the location views
// need. Circle lifecycle (create, invite, join) is owned by the account
// system and is out of scope here.
type CircleService struct {
	circles database.CircleRepository
}

func NewCircleService(circles database.CircleRepository) *CircleService {
	return &CircleService{circles: circles}
}

func (s *CircleService) Get(ctx context.Context, circleID string) (*domain.Circle, error) {
	return s.circles.GetByID(ctx, circleID)
}

func (s *CircleService) ListMembers(ctx context.Context, circleID string) ([]domain.Member, error) {
	return s.circles.ListMembers(ctx, circleID)
}
