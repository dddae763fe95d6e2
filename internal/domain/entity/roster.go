package entity

import "time"

// Roster is the shift configuration owned by one Slack channel
type Roster struct {
	ID             int64      `json:"id"`
	SlackChannelID string     `json:"slack_channel_id"`
	Name           string     `json:"name"`
	SundayRotation [][]string `json:"sunday_rotation"` // stored as JSON
	VendorRotation [][]string `json:"vendor_rotation"` // stored as JSON
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}
