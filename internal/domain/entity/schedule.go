package entity

import "github.com/diegoclair/escala-bot/internal/domain/schedule"

// ScheduleResult is a generated month with its summary and exported file
type ScheduleResult struct {
	RosterName string
	Grid       *schedule.Grid
	Stats      schedule.Stats
	FilePath   string
}
