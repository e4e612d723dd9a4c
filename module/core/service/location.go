package service

import (
	"context"
	"time"

	"github.com/mutti-dev/famloc/module/core/domain"
	"github.com/mutti-dev/famloc/module/core/internal/repository/database"
)

// LocationService owns the read-previous, write-new step of a location
// update. The read and write are not transactional: concurrent updates
// for one member can observe the same previous coordinate and both fire
// the same transition, which the at-least-once dispatch model accepts.
type LocationService struct {
	members database.MemberRepository
}

func NewLocationService(members database.MemberRepository) *LocationService {
	return &LocationService{members: members}
}

// UpdateLocation persists the new coordinate and returns the previous
// one (nil on the member's first report) for transition classification.
func (s *LocationService) UpdateLocation(ctx context.Context, memberID string, loc domain.Coordinate) (*domain.Coordinate, error) {
	member, err := s.members.GetByID(ctx, memberID)
	if err != nil {
		return nil, err
	}
	prev := member.Location

	if err := s.members.UpdateLocation(ctx, memberID, loc, time.Now()); err != nil {
		return nil, err
	}
	return prev, nil
}

// GetMember returns the member with the latest stored location.
func (s *LocationService) GetMember(ctx context.Context, memberID string) (*domain.Member, error) {
	return s.members.GetByID(ctx, memberID)
}

// UpdatePushToken registers the member's device token for push delivery.
func (s *LocationService) UpdatePushToken(ctx context.Context, memberID, token string) error {
	return s.members.UpdatePushToken(ctx, memberID, token)
}
