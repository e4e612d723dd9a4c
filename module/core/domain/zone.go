package domain

import "time"

type ZoneType string

const (
	ZoneTypeSafe       ZoneType = "safe"
	ZoneTypeRestricted ZoneType = "restricted"
	ZoneTypeCustom     ZoneType = "custom"
)

// NotificationSettings are independent gates on a zone. OnEntry/OnExit
// decide whether a transition fires at all; NotifyAdmin/NotifyMember
// decide which durable notifications a fired event creates.
type NotificationSettings struct {
	OnEntry      bool `json:"on_entry"`
	OnExit       bool `json:"on_exit"`
	NotifyAdmin  bool `json:"notify_admin"`
	NotifyMember bool `json:"notify_member"`
}

// Zone is a named circular geofence owned by a circle. RadiusM is always
// meters in storage; see NormalizeRadius for how caller input is read.
type Zone struct {
	ID            string               `json:"id"`
	CircleID      string               `json:"circle_id"`
	CreatedBy     string               `json:"created_by"`
	Name          string               `json:"name"`
	Description   string               `json:"description,omitempty"`
	Center        Coordinate           `json:"center"`
	RadiusM       float64              `json:"radius_m"`
	ZoneType      ZoneType             `json:"zone_type"`
	Active        bool                 `json:"active"`
	Notifications NotificationSettings `json:"notifications"`
	CreatedAt     time.Time            `json:"created_at"`
	UpdatedAt     time.Time            `json:"updated_at"`
}

// RadiusKm returns the radius in kilometers for distance comparison.
func (z *Zone) RadiusKm() float64 {
	return z.RadiusM / 1000
}

// NormalizeRadius converts caller-supplied radius input to meters.
// When unit is given ("m" or "km") it is authoritative. Without a unit
// the legacy heuristic applies: values <= 1000 are taken as kilometers,
// larger values as already-meters.
func NormalizeRadius(value float64, unit string) float64 {
	switch unit {
	case "m":
		return value
	case "km":
		return value * 1000
	}
	if value <= 1000 {
		return value * 1000
	}
	return value
}
