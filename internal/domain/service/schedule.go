package service

import (
	"context"
	"fmt"
	"time"

	"github.com/diegoclair/escala-bot/internal/domain/entity"
	"github.com/diegoclair/escala-bot/internal/domain/schedule"
	"github.com/diegoclair/escala-bot/internal/export"
	"go.uber.org/zap"
)

type scheduleService struct {
	roster    *rosterService
	exporter  *export.Exporter
	outputDir string
	log       *zap.Logger
}

func newSchedule(roster *rosterService, exporter *export.Exporter, outputDir string, log *zap.Logger) *scheduleService {
	return &scheduleService{
		roster:    roster,
		exporter:  exporter,
		outputDir: outputDir,
		log:       log,
	}
}

// GenerateSchedule builds the month for a stored roster and saves the
// spreadsheet. Nothing is written when the build fails.
func (s *scheduleService) GenerateSchedule(ctx context.Context, rosterID int64, year, month int) (*entity.ScheduleResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	roster, err := s.roster.GetRoster(rosterID)
	if err != nil {
		return nil, err
	}

	employees, err := s.roster.ListEmployees(rosterID)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	grid, err := schedule.Build(year, time.Month(month), ruleSetFrom(roster, employees))
	if err != nil {
		return nil, fmt.Errorf("failed to build schedule: %w", err)
	}
	stats := schedule.ComputeStats(grid)

	path, err := s.exporter.Save(s.outputDir, roster.Name, grid, stats)
	if err != nil {
		s.log.Error("failed to save schedule", zap.Int64("roster_id", rosterID), zap.Error(err))
		return nil, err
	}

	for _, o := range grid.Overrides {
		s.log.Warn("day off replaced a rotation shift",
			zap.Int64("roster_id", rosterID),
			zap.String("employee", o.Employee),
			zap.Time("date", o.Date),
		)
	}

	s.log.Info("schedule generated",
		zap.Int64("roster_id", rosterID),
		zap.Int("year", year),
		zap.Int("month", month),
		zap.String("file", path),
	)

	return &entity.ScheduleResult{
		RosterName: roster.Name,
		Grid:       grid,
		Stats:      stats,
		FilePath:   path,
	}, nil
}
