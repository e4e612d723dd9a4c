package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/mutti-dev/famloc/module/core/domain"
	"github.com/mutti-dev/famloc/module/core/internal/repository/database"
)

var (
	// ErrNotCircleAdmin is returned when a zone is created by someone
	// other than the circle's admin.
	ErrNotCircleAdmin = errors.New("only the circle admin can create zones")
	// ErrNotZoneCreator is returned when a zone mutation comes from
	// someone other than the zone's creator.
	ErrNotZoneCreator = errors.New("only the zone creator can modify this zone")
)

type CreateZoneInput struct {
	CircleID      string
	CreatedBy     string
	Name          string
	Description   string
	Center        domain.Coordinate
	Radius        float64
	RadiusUnit    string
	ZoneType      domain.ZoneType
	Notifications domain.NotificationSettings
}

type UpdateZoneInput struct {
	Name          string
	Description   string
	Center        domain.Coordinate
	Radius        float64
	RadiusUnit    string
	ZoneType      domain.ZoneType
	Notifications domain.NotificationSettings
}

type ZoneService struct {
	zones   database.ZoneRepository
	circles database.CircleRepository
}

func NewZoneService(zones database.ZoneRepository, circles database.CircleRepository) *ZoneService {
	return &ZoneService{zones: zones, circles: circles}
}

// Create checks the creator is the circle admin at creation time only;
// a later admin change does not revoke control over existing zones.
func (s *ZoneService) Create(ctx context.Context, in CreateZoneInput) (*domain.Zone, error) {
	circle, err := s.circles.GetByID(ctx, in.CircleID)
	if err != nil {
		return nil, err
	}
	if circle.AdminID != in.CreatedBy {
		return nil, ErrNotCircleAdmin
	}

	zoneType := in.ZoneType
	if zoneType == "" {
		zoneType = domain.ZoneTypeCustom
	}

	now := time.Now()
	zone := &domain.Zone{
		ID:            uuid.NewString(),
		CircleID:      in.CircleID,
		CreatedBy:     in.CreatedBy,
		Name:          in.Name,
		Description:   in.Description,
		Center:        in.Center,
		RadiusM:       domain.NormalizeRadius(in.Radius, in.RadiusUnit),
		ZoneType:      zoneType,
		Active:        true,
		Notifications: in.Notifications,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.zones.Insert(ctx, zone); err != nil {
		return nil, err
	}
	return zone, nil
}

func (s *ZoneService) Get(ctx context.Context, zoneID string) (*domain.Zone, error) {
	return s.zones.GetByID(ctx, zoneID)
}

func (s *ZoneService) ListByCircle(ctx context.Context, circleID string) ([]domain.Zone, error) {
	return s.zones.ListByCircle(ctx, circleID)
}

func (s *ZoneService) Update(ctx context.Context, zoneID, callerID string, in UpdateZoneInput) (*domain.Zone, error) {
	zone, err := s.zones.GetByID(ctx, zoneID)
	if err != nil {
		return nil, err
	}
	if zone.CreatedBy != callerID {
		return nil, ErrNotZoneCreator
	}

	zone.Name = in.Name
	zone.Description = in.Description
	zone.Center = in.Center
	zone.RadiusM = domain.NormalizeRadius(in.Radius, in.RadiusUnit)
	if in.ZoneType != "" {
		zone.ZoneType = in.ZoneType
	}
	zone.Notifications = in.Notifications
	zone.UpdatedAt = time.Now()

	if err := s.zones.Update(ctx, zone); err != nil {
		return nil, err
	}
	return zone, nil
}

func (s *ZoneService) ToggleActive(ctx context.Context, zoneID, callerID string) (*domain.Zone, error) {
	zone, err := s.zones.GetByID(ctx, zoneID)
	if err != nil {
		return nil, err
	}
	if zone.CreatedBy != callerID {
		return nil, ErrNotZoneCreator
	}

	if err := s.zones.SetActive(ctx, zoneID, !zone.Active); err != nil {
		return nil, err
	}
	zone.Active = !zone.Active
	return zone, nil
}

func (s *ZoneService) Delete(ctx context.Context, zoneID, callerID string) error {
	zone, err := s.zones.GetByID(ctx, zoneID)
	if err != nil {
		return err
	}
	if zone.CreatedBy != callerID {
		return ErrNotZoneCreator
	}
	return s.zones.Delete(ctx, zoneID)
}
