package domain

import "time"

type NotificationType string

const (
	NotificationGeofenceEnter NotificationType = "geofence_enter"
	NotificationGeofenceExit  NotificationType = "geofence_exit"
	NotificationCircleInvite  NotificationType = "circle_invite"
	NotificationCircleJoin    NotificationType = "circle_join"
	NotificationTaskAssigned  NotificationType = "task_assigned"
	NotificationTaskCompleted NotificationType = "task_completed"
)

// Notification is a durable per-recipient record. Created once per
// (recipient, triggering event); only ever mutated by the owner marking
// it read, or deleted by the owner.
type Notification struct {
	ID        string           `json:"id"`
	MemberID  string           `json:"member_id"`
	Type      NotificationType `json:"type"`
	Message   string           `json:"message"`
	Data      map[string]any   `json:"data,omitempty"`
	Read      bool             `json:"read"`
	CreatedAt time.Time        `json:"created_at"`
}
