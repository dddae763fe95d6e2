package contract

import (
	"context"

	"github.com/diegoclair/escala-bot/internal/domain/entity"
)

// DataManager aggregates all repository interfaces
type DataManager interface {
	WithTransaction(ctx context.Context, fn func(dm DataManager) error) error
	Roster() RosterRepo
	Employee() EmployeeRepo
	Publisher() PublisherRepo
}

// RosterRepo defines the contract for roster repository
type RosterRepo interface {
	Create(roster *entity.Roster) error
	GetBySlackChannelID(slackChannelID string) (*entity.Roster, error)
	GetByID(id int64) (*entity.Roster, error)
	Update(roster *entity.Roster) error
}

// EmployeeRepo defines the contract for employee repository
type EmployeeRepo interface {
	Create(employee *entity.Employee) error
	GetByRosterAndName(rosterID int64, name string) (*entity.Employee, error)
	ListByRoster(rosterID int64) ([]*entity.Employee, error)
	Update(employee *entity.Employee) error
	Delete(employeeID int64) error
	DeleteByRoster(rosterID int64) error
}

// PublisherRepo defines the contract for publisher repository
type PublisherRepo interface {
	Create(publisher *entity.Publisher) error
	GetByRosterID(rosterID int64) (*entity.Publisher, error)
	Update(publisher *entity.Publisher) error
	GetEnabled() ([]*entity.Publisher, error)
	SetEnabled(rosterID int64, enabled bool) error
}
