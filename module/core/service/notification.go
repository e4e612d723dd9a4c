package service

import (
	"context"
	"errors"

	"github.com/mutti-dev/famloc/module/core/domain"
	"github.com/mutti-dev/famloc/module/core/internal/repository/database"
)

// ErrNotNotificationOwner is returned when a notification mutation comes
// from someone other than its recipient.
var ErrNotNotificationOwner = errors.New("notification belongs to another member")

type NotificationService struct {
	notifications database.NotificationRepository
}

func NewNotificationService(notifications database.NotificationRepository) *NotificationService {
	return &NotificationService{notifications: notifications}
}

func (s *NotificationService) ListByMember(ctx context.Context, memberID string) ([]domain.Notification, error) {
	return s.notifications.ListByMember(ctx, memberID)
}

func (s *NotificationService) MarkRead(ctx context.Context, notificationID, callerID string) (*domain.Notification, error) {
	n, err := s.notifications.GetByID(ctx, notificationID)
	if err != nil {
		return nil, err
	}
	if n.MemberID != callerID {
		return nil, ErrNotNotificationOwner
	}
	if err := s.notifications.MarkRead(ctx, notificationID); err != nil {
		return nil, err
	}
	n.Read = true
	return n, nil
}

func (s *NotificationService) Delete(ctx context.Context, notificationID, callerID string) error {
	n, err := s.notifications.GetByID(ctx, notificationID)
	if err != nil {
		return err
	}
	if n.MemberID != callerID {
		return ErrNotNotificationOwner
	}
	return s.notifications.Delete(ctx, notificationID)
}
