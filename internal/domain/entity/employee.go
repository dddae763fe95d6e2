package entity

import "time"

type Employee struct {
	ID           int64     `json:"id"`
	RosterID     int64     `json:"roster_id"`
	Name         string    `json:"name"`
	WeekdayShift string    `json:"weekday_shift"`
	SundayShift  string    `json:"sunday_shift"`
	DayOff       *int      `json:"day_off,omitempty"` // 0=Mon .. 6=Sun, nil when none
	Position     int       `json:"position"`          // column order in the grid
	CreatedAt    time.Time `json:"created_at"`
}
