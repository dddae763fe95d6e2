package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/diegoclair/escala-bot/internal/domain"
	"github.com/diegoclair/escala-bot/internal/domain/contract"
	"github.com/diegoclair/escala-bot/internal/domain/entity"
	"github.com/diegoclair/escala-bot/internal/domain/schedule"
	"go.uber.org/zap"
)

type rosterService struct {
	dm        contract.DataManager
	log       *zap.Logger
	publisher *publisher
}

func newRoster(dm contract.DataManager, log *zap.Logger) *rosterService {
	return &rosterService{
		dm:        dm,
		log:       log,
		publisher: nil, // Will be set later to avoid circular dependency
	}
}

func (s *rosterService) SetPublisher(p *publisher) {
	s.publisher = p
}

// NormalizeName turns a free-form employee name into its roster id
func NormalizeName(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}

func (s *rosterService) SetupRoster(slackChannelID, name string) (*entity.Roster, bool, error) {
	// Check if roster already exists
	roster, err := s.dm.Roster().GetBySlackChannelID(slackChannelID)
	if err != nil {
		return nil, false, fmt.Errorf("failed to check roster: %w", err)
	}

	if roster != nil {
		return roster, false, nil // Roster already existed
	}

	roster = &entity.Roster{
		SlackChannelID: slackChannelID,
		Name:           NormalizeName(name),
	}

	if err := s.dm.Roster().Create(roster); err != nil {
		return nil, false, fmt.Errorf("failed to create roster: %w", err)
	}

	// Publishing starts disabled until someone runs /escala publish
	publisher := &entity.Publisher{
		RosterID:    roster.ID,
		PublishDay:  domain.DefaultPublishDay,
		PublishTime: domain.DefaultPublishTime,
		IsEnabled:   false,
	}

	if err := s.dm.Publisher().Create(publisher); err != nil {
		return nil, false, fmt.Errorf("failed to create publisher config: %w", err)
	}

	s.log.Info("roster created", zap.Int64("roster_id", roster.ID), zap.String("channel", slackChannelID))
	return roster, true, nil
}

func (s *rosterService) GetRoster(rosterID int64) (*entity.Roster, error) {
	roster, err := s.dm.Roster().GetByID(rosterID)
	if err != nil {
		return nil, fmt.Errorf("failed to get roster: %w", err)
	}

	if roster == nil {
		return nil, domain.ErrRosterNotFound
	}

	return roster, nil
}

func (s *rosterService) GetRosterByChannel(slackChannelID string) (*entity.Roster, error) {
	roster, err := s.dm.Roster().GetBySlackChannelID(slackChannelID)
	if err != nil {
		return nil, fmt.Errorf("failed to get roster: %w", err)
	}

	if roster == nil {
		return nil, domain.ErrRosterNotFound
	}

	return roster, nil
}

func (s *rosterService) AddEmployee(ctx context.Context, rosterID int64, name, weekdayShift, sundayShift string) error {
	name = NormalizeName(name)
	weekdayShift = strings.TrimSpace(weekdayShift)
	sundayShift = strings.TrimSpace(sundayShift)

	if name == "" {
		return fmt.Errorf("%w: employee name cannot be empty", schedule.ErrConfiguration)
	}
	if weekdayShift == "" || sundayShift == "" {
		return fmt.Errorf("%w: weekday and sunday shifts are required", schedule.ErrConfiguration)
	}

	return s.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		existing, err := tx.Employee().GetByRosterAndName(rosterID, name)
		if err != nil {
			return fmt.Errorf("failed to check existing employee: %w", err)
		}

		if existing != nil {
			return domain.ErrEmployeeExists
		}

		employees, err := tx.Employee().ListByRoster(rosterID)
		if err != nil {
			return fmt.Errorf("failed to list employees: %w", err)
		}

		employee := &entity.Employee{
			RosterID:     rosterID,
			Name:         name,
			WeekdayShift: weekdayShift,
			SundayShift:  sundayShift,
			Position:     len(employees),
		}

		return tx.Employee().Create(employee)
	})
}

// RemoveEmployee deletes the employee and drops them from both rotations.
// Groups left empty are removed so the rotations stay valid.
func (s *rosterService) RemoveEmployee(ctx context.Context, rosterID int64, name string) error {
	name = NormalizeName(name)

	return s.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		employee, err := tx.Employee().GetByRosterAndName(rosterID, name)
		if err != nil {
			return fmt.Errorf("failed to find employee: %w", err)
		}

		if employee == nil {
			return domain.ErrEmployeeNotFound
		}

		if err := tx.Employee().Delete(employee.ID); err != nil {
			return err
		}

		roster, err := tx.Roster().GetByID(rosterID)
		if err != nil {
			return fmt.Errorf("failed to get roster: %w", err)
		}
		if roster == nil {
			return domain.ErrRosterNotFound
		}

		roster.SundayRotation = withoutMember(roster.SundayRotation, name)
		roster.VendorRotation = withoutMember(roster.VendorRotation, name)

		return tx.Roster().Update(roster)
	})
}

func (s *rosterService) SetDayOff(rosterID int64, name string, day *int) error {
	if day != nil && (*day < domain.Monday || *day > domain.Sunday) {
		return fmt.Errorf("%w: day off %d, use 0-6 (0=Mon ... 6=Sun)", schedule.ErrRange, *day)
	}

	employee, err := s.dm.Employee().GetByRosterAndName(rosterID, NormalizeName(name))
	if err != nil {
		return fmt.Errorf("failed to find employee: %w", err)
	}

	if employee == nil {
		return domain.ErrEmployeeNotFound
	}

	employee.DayOff = day
	return s.dm.Employee().Update(employee)
}

func (s *rosterService) SetRotation(rosterID int64, kind string, groups [][]string) error {
	if kind != domain.RotationSunday && kind != domain.RotationVendor {
		return fmt.Errorf("%w: unknown rotation %q, use sunday or vendor", schedule.ErrConfiguration, kind)
	}
	if len(groups) == 0 {
		return fmt.Errorf("%w: %s rotation needs at least one group", schedule.ErrConfiguration, kind)
	}

	roster, err := s.GetRoster(rosterID)
	if err != nil {
		return err
	}

	employees, err := s.dm.Employee().ListByRoster(rosterID)
	if err != nil {
		return fmt.Errorf("failed to list employees: %w", err)
	}

	known := make(map[string]bool, len(employees))
	for _, e := range employees {
		known[e.Name] = true
	}

	normalized := make([][]string, 0, len(groups))
	for i, group := range groups {
		var members []string
		for _, member := range group {
			member = NormalizeName(member)
			if member == "" {
				continue
			}
			if !known[member] {
				return fmt.Errorf("%w: %q in %s rotation group %d", schedule.ErrReference, member, kind, i+1)
			}
			members = append(members, member)
		}
		if len(members) == 0 {
			return fmt.Errorf("%w: %s rotation group %d is empty", schedule.ErrConfiguration, kind, i+1)
		}
		normalized = append(normalized, members)
	}

	if kind == domain.RotationSunday {
		roster.SundayRotation = normalized
	} else {
		roster.VendorRotation = normalized
	}

	return s.dm.Roster().Update(roster)
}

func (s *rosterService) ListEmployees(rosterID int64) ([]*entity.Employee, error) {
	return s.dm.Employee().ListByRoster(rosterID)
}

// RuleSet assembles the stored roster into builder input. It does not
// validate; schedule.Build does.
func (s *rosterService) RuleSet(rosterID int64) (schedule.RuleSet, error) {
	roster, err := s.GetRoster(rosterID)
	if err != nil {
		return schedule.RuleSet{}, err
	}

	employees, err := s.dm.Employee().ListByRoster(rosterID)
	if err != nil {
		return schedule.RuleSet{}, fmt.Errorf("failed to list employees: %w", err)
	}

	return ruleSetFrom(roster, employees), nil
}

func ruleSetFrom(roster *entity.Roster, employees []*entity.Employee) schedule.RuleSet {
	rules := schedule.RuleSet{
		Employees:      make(map[string]schedule.Shifts, len(employees)),
		Order:          make([]string, 0, len(employees)),
		SundayRotation: roster.SundayRotation,
		VendorRotation: roster.VendorRotation,
		WeekdaysOff:    make(map[string]int),
	}

	for _, e := range employees {
		rules.Employees[e.Name] = schedule.Shifts{Weekday: e.WeekdayShift, Sunday: e.SundayShift}
		rules.Order = append(rules.Order, e.Name)
		if e.DayOff != nil {
			rules.WeekdaysOff[e.Name] = *e.DayOff
		}
	}

	return rules
}

// ImportRuleSet replaces the roster of a channel with the given rules in one
// transaction, creating the roster when the channel has none.
func (s *rosterService) ImportRuleSet(ctx context.Context, slackChannelID, name string, rules schedule.RuleSet) (*entity.Roster, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}

	var roster *entity.Roster
	err := s.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		var err error
		roster, err = tx.Roster().GetBySlackChannelID(slackChannelID)
		if err != nil {
			return fmt.Errorf("failed to check roster: %w", err)
		}

		if roster == nil {
			roster = &entity.Roster{SlackChannelID: slackChannelID}
			roster.Name = NormalizeName(name)
			roster.SundayRotation = rules.SundayRotation
			roster.VendorRotation = rules.VendorRotation
			if err := tx.Roster().Create(roster); err != nil {
				return fmt.Errorf("failed to create roster: %w", err)
			}
			publisher := &entity.Publisher{
				RosterID:    roster.ID,
				PublishDay:  domain.DefaultPublishDay,
				PublishTime: domain.DefaultPublishTime,
			}
			if err := tx.Publisher().Create(publisher); err != nil {
				return fmt.Errorf("failed to create publisher config: %w", err)
			}
		} else {
			roster.Name = NormalizeName(name)
			roster.SundayRotation = rules.SundayRotation
			roster.VendorRotation = rules.VendorRotation
			if err := tx.Roster().Update(roster); err != nil {
				return err
			}
			if err := tx.Employee().DeleteByRoster(roster.ID); err != nil {
				return err
			}
		}

		for i, id := range rules.Columns() {
			employee := &entity.Employee{
				RosterID:     roster.ID,
				Name:         id,
				WeekdayShift: rules.Employees[id].Weekday,
				SundayShift:  rules.Employees[id].Sunday,
				Position:     i,
			}
			if day, ok := rules.WeekdaysOff[id]; ok {
				day := day
				employee.DayOff = &day
			}
			if err := tx.Employee().Create(employee); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("rule set imported",
		zap.Int64("roster_id", roster.ID),
		zap.String("channel", slackChannelID),
		zap.Int("employees", len(rules.Employees)),
	)
	return roster, nil
}

func (s *rosterService) GetPublisher(rosterID int64) (*entity.Publisher, error) {
	return s.dm.Publisher().GetByRosterID(rosterID)
}

func (s *rosterService) UpdatePublisher(rosterID int64, day int, at string) error {
	if day < 1 || day > 28 {
		return fmt.Errorf("%w: publish day %d, use 1-28", domain.ErrInvalidPublisher, day)
	}
	if _, err := time.Parse("15:04", at); err != nil {
		return fmt.Errorf("%w: invalid time format. Use HH:MM (24-hour format). Example: 09:30", domain.ErrInvalidPublisher)
	}

	// Get or create publisher config
	publisher, err := s.dm.Publisher().GetByRosterID(rosterID)
	if err != nil {
		return fmt.Errorf("failed to get publisher config: %w", err)
	}

	if publisher == nil {
		publisher = &entity.Publisher{RosterID: rosterID, PublishDay: day, PublishTime: at, IsEnabled: true}
		if err := s.dm.Publisher().Create(publisher); err != nil {
			return fmt.Errorf("failed to create publisher config: %w", err)
		}
	} else {
		publisher.PublishDay = day
		publisher.PublishTime = at
		publisher.IsEnabled = true
		if err := s.dm.Publisher().Update(publisher); err != nil {
			return err
		}
	}

	// Notify publisher loop of configuration change
	if s.publisher != nil {
		s.publisher.NotifyConfigChange()
	}

	return nil
}

func (s *rosterService) PausePublisher(rosterID int64) error {
	if err := s.dm.Publisher().SetEnabled(rosterID, false); err != nil {
		return fmt.Errorf("failed to pause publisher: %w", err)
	}

	if s.publisher != nil {
		s.publisher.NotifyConfigChange()
	}

	return nil
}

func (s *rosterService) ResumePublisher(rosterID int64) error {
	if err := s.dm.Publisher().SetEnabled(rosterID, true); err != nil {
		return fmt.Errorf("failed to resume publisher: %w", err)
	}

	if s.publisher != nil {
		s.publisher.NotifyConfigChange()
	}

	return nil
}

func withoutMember(groups [][]string, name string) [][]string {
	out := make([][]string, 0, len(groups))
	for _, group := range groups {
		var kept []string
		for _, member := range group {
			if member != name {
				kept = append(kept, member)
			}
		}
		if len(kept) > 0 {
			out = append(out, kept)
		}
	}
	return out
}
