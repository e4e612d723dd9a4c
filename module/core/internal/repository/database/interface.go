package database

import (
	"context"
	"time"

	"github.com/mutti-dev/famloc/module/core/domain"
)

type MemberRepository interface {
	GetByID(ctx context.Context, memberID string) (*domain.Member, error)
	UpdateLocation(ctx context.Context, memberID string, loc domain.Coordinate, at time.Time) error
	UpdatePushToken(ctx context.Context, memberID, token string) error
}

type CircleRepository interface {
	GetByID(ctx context.Context, circleID string) (*domain.Circle, error)
	ListMembers(ctx context.Context, circleID string) ([]domain.Member, error)
}

type ZoneRepository interface {
	Insert(ctx context.Context, zone *domain.Zone) error
	GetByID(ctx context.Context, zoneID string) (*domain.Zone, error)
	ListByCircle(ctx context.Context, circleID string) ([]domain.Zone, error)
	ListActiveByCircle(ctx context.Context, circleID string) ([]domain.Zone, error)
	Update(ctx context.Context, zone *domain.Zone) error
	SetActive(ctx context.Context, zoneID string, active bool) error
	Delete(ctx context.Context, zoneID string) error
}

type NotificationRepository interface {
	Insert(ctx context.Context, n *domain.Notification) error
	GetByID(ctx context.Context, notificationID string) (*domain.Notification, error)
	ListByMember(ctx context.Context, memberID string) ([]domain.Notification, error)
	MarkRead(ctx context.Context, notificationID string) error
	Delete(ctx context.Context, notificationID string) error
}
