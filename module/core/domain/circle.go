package domain

import "time"

// Circle is a group of members sharing location and zone visibility.
// One member is the admin; invite codes are short-lived, share codes
// longer-lived.
type Circle struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	AdminID         string     `json:"admin_id"`
	InviteCode      string     `json:"invite_code,omitempty"`
	InviteExpiresAt *time.Time `json:"invite_expires_at,omitempty"`
	ShareCode       string     `json:"share_code,omitempty"`
	ShareExpiresAt  *time.Time `json:"share_expires_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}
