package domain

import "time"

// Member is a tracked user. CircleID is empty when the member has not
// joined a circle; Location is nil until the first report arrives.
type Member struct {
	ID                string      `json:"id"`
	Name              string      `json:"name"`
	CircleID          string      `json:"circle_id,omitempty"`
	Location          *Coordinate `json:"location,omitempty"`
	LocationUpdatedAt *time.Time  `json:"location_updated_at,omitempty"`
	PushToken         string      `json:"-"`
	CreatedAt         time.Time   `json:"created_at"`
	UpdatedAt         time.Time   `json:"updated_at"`
}
