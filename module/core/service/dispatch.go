package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mutti-dev/famloc/module/core/domain"
	"github.com/mutti-dev/famloc/module/core/internal/repository/broadcast"
	"github.com/mutti-dev/famloc/module/core/internal/repository/database"
	"github.com/mutti-dev/famloc/module/core/internal/repository/push"
	"github.com/mutti-dev/famloc/module/core/internal/repository/publisher"
)

const (
	eventGeofenceNotification = "geofenceNotification"
	eventAdminGeofenceAlert   = "adminGeofenceAlert"
)

// DispatchService fans one triggered event out to its recipients:
// durable notifications gated by the zone flags, best-effort push to the
// admin, unconditional room broadcasts, and the durable event bus.
// Semantics are at-least-once; duplicate dispatches produce duplicates.
type DispatchService struct {
	circles       database.CircleRepository
	members       database.MemberRepository
	notifications database.NotificationRepository
	push          push.Sender
	broadcaster   broadcast.RoomBroadcaster
	publisher     publisher.GeofencePublisher
	logger        *zap.Logger
}

func NewDispatchService(
	circles database.CircleRepository,
	members database.MemberRepository,
	notifications database.NotificationRepository,
	pushSender push.Sender,
	broadcaster broadcast.RoomBroadcaster,
	pub publisher.GeofencePublisher,
	logger *zap.Logger,
) *DispatchService {
	return &DispatchService{
		circles:       circles,
		members:       members,
		notifications: notifications,
		push:          pushSender,
		broadcaster:   broadcaster,
		publisher:     pub,
		logger:        logger,
	}
}

// Dispatch never returns an error to the caller; every failure inside is
// logged and contained so the originating location update survives.
func (s *DispatchService) Dispatch(ctx context.Context, event *domain.TriggeredEvent) {
	zone := event.Zone
	member := event.Member

	circle, err := s.circles.GetByID(ctx, zone.CircleID)
	if err != nil {
		s.logger.Error("dispatch: resolve circle",
			zap.String("circle_id", zone.CircleID), zap.Error(err))
		circle = nil
	}

	if zone.Notifications.NotifyAdmin && circle != nil && circle.AdminID != "" {
		s.notifyAdmin(ctx, event, circle.AdminID)
	}

	if zone.Notifications.NotifyMember {
		s.notifyMember(ctx, event)
	}

	// real-time delivery is a separate concern from the durable records
	// and fires whenever the event fired at all
	payload := map[string]any{
		"type":         string(event.Event),
		"memberId":     member.ID,
		"memberName":   member.Name,
		"geofenceId":   zone.ID,
		"geofenceName": zone.Name,
		"timestamp":    event.Timestamp.Unix(),
	}
	s.broadcaster.EmitToRoom(zone.CircleID, eventGeofenceNotification, payload)
	if circle != nil && circle.AdminID != "" {
		s.broadcaster.EmitToRoom(circle.AdminID, eventAdminGeofenceAlert, payload)
	}

	if err := s.publisher.PublishEvent(ctx, event); err != nil {
		s.logger.Error("dispatch: publish event",
			zap.String("zone_id", zone.ID), zap.Error(err))
	}
}

func (s *DispatchService) notifyAdmin(ctx context.Context, event *domain.TriggeredEvent, adminID string) {
	message := fmt.Sprintf("%s has %s the %s zone", event.Member.Name, event.Verb(), event.Zone.Name)
	if err := s.persistNotification(ctx, event, adminID, message); err != nil {
		s.logger.Error("dispatch: persist admin notification",
			zap.String("admin_id", adminID), zap.Error(err))
		return
	}

	s.pushToAdmin(ctx, adminID, message)
}

func (s *DispatchService) pushToAdmin(ctx context.Context, adminID, message string) {
	admin, err := s.members.GetByID(ctx, adminID)
	if err != nil {
		s.logger.Warn("dispatch: resolve admin for push",
			zap.String("admin_id", adminID), zap.Error(err))
		return
	}
	if admin.PushToken == "" {
		return
	}
	if err := s.push.Send(ctx, admin.PushToken, "Geofence alert", message); err != nil {
		s.logger.Warn("dispatch: push delivery failed",
			zap.String("admin_id", adminID), zap.Error(err))
	}
}

func (s *DispatchService) notifyMember(ctx context.Context, event *domain.TriggeredEvent) {
	message := fmt.Sprintf("You have %s the %s zone", event.Verb(), event.Zone.Name)
	if err := s.persistNotification(ctx, event, event.Member.ID, message); err != nil {
		s.logger.Error("dispatch: persist member notification",
			zap.String("member_id", event.Member.ID), zap.Error(err))
	}
}

func (s *DispatchService) persistNotification(ctx context.Context, event *domain.TriggeredEvent, recipientID, message string) error {
	return s.notifications.Insert(ctx, &domain.Notification{
		ID:       uuid.NewString(),
		MemberID: recipientID,
		Type:     event.NotificationType(),
		Message:  message,
		Data: map[string]any{
			"zone_id":   event.Zone.ID,
			"member_id": event.Member.ID,
			"event":     string(event.Event),
		},
		Read:      false,
		CreatedAt: time.Now(),
	})
}
