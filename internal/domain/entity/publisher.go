package entity

import "time"

// Publisher controls the automatic monthly publication of a roster schedule
type Publisher struct {
	ID          int64     `json:"id"`
	RosterID    int64     `json:"roster_id"`
	PublishDay  int       `json:"publish_day"`  // 1..28
	PublishTime string    `json:"publish_time"` // HH:MM UTC
	IsEnabled   bool      `json:"is_enabled"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
