package domain

import "time"

type GeofenceEventType string

const (
	GeofenceEntry GeofenceEventType = "geofence_entry"
	GeofenceExit  GeofenceEventType = "geofence_exit"
)

// TriggeredEvent is one detected entry or exit for a member relative to
// a zone between two consecutive location reports.
type TriggeredEvent struct {
	Zone      *Zone             `json:"zone"`
	Member    *Member           `json:"member"`
	Event     GeofenceEventType `json:"event"`
	Location  Coordinate        `json:"location"`
	Timestamp time.Time         `json:"timestamp"`
}

// NotificationType maps the transition to its durable notification type.
func (e *TriggeredEvent) NotificationType() NotificationType {
	if e.Event == GeofenceEntry {
		return NotificationGeofenceEnter
	}
	return NotificationGeofenceExit
}

// Verb is the human-readable form used in notification messages.
func (e *TriggeredEvent) Verb() string {
	if e.Event == GeofenceEntry {
		return "entered"
	}
	return "exited"
}
