package contract

import (
	"context"

	"github.com/diegoclair/escala-bot/internal/domain/entity"
	"github.com/diegoclair/escala-bot/internal/domain/schedule"
)

type RosterService interface {
	SetupRoster(slackChannelID, name string) (*entity.Roster, bool, error)
	GetRoster(rosterID int64) (*entity.Roster, error)
	GetRosterByChannel(slackChannelID string) (*entity.Roster, error)
	AddEmployee(ctx context.Context, rosterID int64, name, weekdayShift, sundayShift string) error
	RemoveEmployee(ctx context.Context, rosterID int64, name string) error
	SetDayOff(rosterID int64, name string, day *int) error
	SetRotation(rosterID int64, kind string, groups [][]string) error
	ListEmployees(rosterID int64) ([]*entity.Employee, error)
	RuleSet(rosterID int64) (schedule.RuleSet, error)
	ImportRuleSet(ctx context.Context, slackChannelID, name string, rules schedule.RuleSet) (*entity.Roster, error)
	UpdatePublisher(rosterID int64, day int, at string) error
	PausePublisher(rosterID int64) error
	ResumePublisher(rosterID int64) error
	GetPublisher(rosterID int64) (*entity.Publisher, error)
}

type ScheduleService interface {
	GenerateSchedule(ctx context.Context, rosterID int64, year, month int) (*entity.ScheduleResult, error)
}
