package service

import (
	"context"
	"errors"
	"testing"

	"github.com/diegoclair/escala-bot/internal/domain"
	"github.com/diegoclair/escala-bot/internal/domain/entity"
	"github.com/diegoclair/escala-bot/internal/domain/schedule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func Test_rosterService_SetupRoster(t *testing.T) {
	type args struct {
		slackChannelID string
		name           string
	}
	tests := []struct {
		name        string
		buildMock   func(mocks allMocks, args args)
		args        args
		wantRoster  *entity.Roster
		wantCreated bool
		wantErr     bool
	}{
		{
			name: "Should create new roster successfully",
			args: args{slackChannelID: "C123456789", name: "iguatemi"},
			buildMock: func(mocks allMocks, args args) {
				mocks.mockRosterRepo.EXPECT().
					GetBySlackChannelID(args.slackChannelID).
					Return(nil, nil).Times(1)

				mocks.mockRosterRepo.EXPECT().
					Create(gomock.Any()).
					DoAndReturn(func(roster *entity.Roster) error {
						roster.ID = 1
						require.Equal(t, args.slackChannelID, roster.SlackChannelID)
						require.Equal(t, "IGUATEMI", roster.Name)
						return nil
					}).Times(1)

				mocks.mockPublisherRepo.EXPECT().
					Create(gomock.Any()).
					DoAndReturn(func(p *entity.Publisher) error {
						require.Equal(t, int64(1), p.RosterID)
						require.Equal(t, domain.DefaultPublishDay, p.PublishDay)
						require.Equal(t, domain.DefaultPublishTime, p.PublishTime)
						require.False(t, p.IsEnabled)
						return nil
					}).Times(1)
			},
			wantRoster:  &entity.Roster{ID: 1, SlackChannelID: "C123456789", Name: "IGUATEMI"},
			wantCreated: true,
		},
		{
			name: "Should return existing roster",
			args: args{slackChannelID: "C123456789", name: "other"},
			buildMock: func(mocks allMocks, args args) {
				mocks.mockRosterRepo.EXPECT().
					GetBySlackChannelID(args.slackChannelID).
					Return(&entity.Roster{ID: 7, SlackChannelID: args.slackChannelID, Name: "IGUATEMI"}, nil).Times(1)
			},
			wantRoster:  &entity.Roster{ID: 7, SlackChannelID: "C123456789", Name: "IGUATEMI"},
			wantCreated: false,
		},
		{
			name: "Should return error when lookup fails",
			args: args{slackChannelID: "C123456789", name: "x"},
			buildMock: func(mocks allMocks, args args) {
				mocks.mockRosterRepo.EXPECT().
					GetBySlackChannelID(args.slackChannelID).
					Return(nil, errors.New("database error")).Times(1)
			},
			wantErr: true,
		},
		{
			name: "Should return error when publisher creation fails",
			args: args{slackChannelID: "C123456789", name: "x"},
			buildMock: func(mocks allMocks, args args) {
				mocks.mockRosterRepo.EXPECT().GetBySlackChannelID(args.slackChannelID).Return(nil, nil).Times(1)
				mocks.mockRosterRepo.EXPECT().Create(gomock.Any()).Return(nil).Times(1)
				mocks.mockPublisherRepo.EXPECT().Create(gomock.Any()).Return(errors.New("database error")).Times(1)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ctrl := newServiceTestMock(t)
			defer ctrl.Finish()

			tt.buildMock(m, tt.args)

			s := newRoster(m.mockDataManager, zap.NewNop())
			roster, created, err := s.SetupRoster(tt.args.slackChannelID, tt.args.name)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantRoster, roster)
			assert.Equal(t, tt.wantCreated, created)
		})
	}
}

func Test_rosterService_AddEmployee(t *testing.T) {
	type args struct {
		rosterID     int64
		name         string
		weekdayShift string
		sundayShift  string
	}
	tests := []struct {
		name      string
		buildMock func(mocks allMocks, args args)
		args      args
		wantErr   error
	}{
		{
			name: "Should add employee at the end of the column order",
			args: args{rosterID: 1, name: " levi ", weekdayShift: "10h às 18h", sundayShift: "14h às 20h"},
			buildMock: func(mocks allMocks, args args) {
				mocks.mockEmployeeRepo.EXPECT().GetByRosterAndName(args.rosterID, "LEVI").Return(nil, nil).Times(1)
				mocks.mockEmployeeRepo.EXPECT().ListByRoster(args.rosterID).
					Return([]*entity.Employee{{Name: "MARIA"}, {Name: "YURI"}}, nil).Times(1)
				mocks.mockEmployeeRepo.EXPECT().Create(gomock.Any()).
					DoAndReturn(func(e *entity.Employee) error {
						require.Equal(t, "LEVI", e.Name)
						require.Equal(t, "10h às 18h", e.WeekdayShift)
						require.Equal(t, "14h às 20h", e.SundayShift)
						require.Equal(t, 2, e.Position)
						require.Nil(t, e.DayOff)
						return nil
					}).Times(1)
			},
		},
		{
			name: "Should reject duplicate employee",
			args: args{rosterID: 1, name: "Levi", weekdayShift: "a", sundayShift: "b"},
			buildMock: func(mocks allMocks, args args) {
				mocks.mockEmployeeRepo.EXPECT().GetByRosterAndName(args.rosterID, "LEVI").
					Return(&entity.Employee{ID: 3, Name: "LEVI"}, nil).Times(1)
			},
			wantErr: domain.ErrEmployeeExists,
		},
		{
			name:      "Should reject empty shift",
			args:      args{rosterID: 1, name: "Levi", weekdayShift: "  ", sundayShift: "b"},
			buildMock: func(mocks allMocks, args args) {},
			wantErr:   schedule.ErrConfiguration,
		},
		{
			name:      "Should reject empty name",
			args:      args{rosterID: 1, name: "", weekdayShift: "a", sundayShift: "b"},
			buildMock: func(mocks allMocks, args args) {},
			wantErr:   schedule.ErrConfiguration,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ctrl := newServiceTestMock(t)
			defer ctrl.Finish()

			tt.buildMock(m, tt.args)

			s := newRoster(m.mockDataManager, zap.NewNop())
			err := s.AddEmployee(context.Background(), tt.args.rosterID, tt.args.name, tt.args.weekdayShift, tt.args.sundayShift)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func Test_rosterService_RemoveEmployee(t *testing.T) {
	t.Run("Should delete employee and drop them from rotations", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		m.mockEmployeeRepo.EXPECT().GetByRosterAndName(int64(1), "LEVI").
			Return(&entity.Employee{ID: 5, Name: "LEVI"}, nil).Times(1)
		m.mockEmployeeRepo.EXPECT().Delete(int64(5)).Return(nil).Times(1)
		m.mockRosterRepo.EXPECT().GetByID(int64(1)).Return(&entity.Roster{
			ID:             1,
			SundayRotation: [][]string{{"LEVI", "EDEVALDO"}, {"NATHALY", "MARIA"}},
			VendorRotation: [][]string{{"LEVI"}, {"LARISSA", "YURI"}},
		}, nil).Times(1)
		m.mockRosterRepo.EXPECT().Update(gomock.Any()).
			DoAndReturn(func(r *entity.Roster) error {
				require.Equal(t, [][]string{{"EDEVALDO"}, {"NATHALY", "MARIA"}}, r.SundayRotation)
				require.Equal(t, [][]string{{"LARISSA", "YURI"}}, r.VendorRotation)
				return nil
			}).Times(1)

		s := newRoster(m.mockDataManager, zap.NewNop())
		require.NoError(t, s.RemoveEmployee(context.Background(), 1, "levi"))
	})

	t.Run("Should return not found", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		m.mockEmployeeRepo.EXPECT().GetByRosterAndName(int64(1), "GHOST").Return(nil, nil).Times(1)

		s := newRoster(m.mockDataManager, zap.NewNop())
		assert.ErrorIs(t, s.RemoveEmployee(context.Background(), 1, "ghost"), domain.ErrEmployeeNotFound)
	})
}

func Test_rosterService_SetDayOff(t *testing.T) {
	tests := []struct {
		name      string
		day       *int
		buildMock func(mocks allMocks)
		wantErr   error
	}{
		{
			name: "Should set day off",
			day:  intPtr(domain.Monday),
			buildMock: func(mocks allMocks) {
				mocks.mockEmployeeRepo.EXPECT().GetByRosterAndName(int64(1), "LEVI").
					Return(&entity.Employee{ID: 5, Name: "LEVI"}, nil).Times(1)
				mocks.mockEmployeeRepo.EXPECT().Update(gomock.Any()).
					DoAndReturn(func(e *entity.Employee) error {
						require.NotNil(t, e.DayOff)
						require.Equal(t, domain.Monday, *e.DayOff)
						return nil
					}).Times(1)
			},
		},
		{
			name: "Should clear day off",
			day:  nil,
			buildMock: func(mocks allMocks) {
				mocks.mockEmployeeRepo.EXPECT().GetByRosterAndName(int64(1), "LEVI").
					Return(&entity.Employee{ID: 5, Name: "LEVI", DayOff: intPtr(3)}, nil).Times(1)
				mocks.mockEmployeeRepo.EXPECT().Update(gomock.Any()).
					DoAndReturn(func(e *entity.Employee) error {
						require.Nil(t, e.DayOff)
						return nil
					}).Times(1)
			},
		},
		{
			name:      "Should reject day out of range",
			day:       intPtr(7),
			buildMock: func(mocks allMocks) {},
			wantErr:   schedule.ErrRange,
		},
		{
			name: "Should return not found",
			day:  intPtr(1),
			buildMock: func(mocks allMocks) {
				mocks.mockEmployeeRepo.EXPECT().GetByRosterAndName(int64(1), "LEVI").Return(nil, nil).Times(1)
			},
			wantErr: domain.ErrEmployeeNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ctrl := newServiceTestMock(t)
			defer ctrl.Finish()

			tt.buildMock(m)

			s := newRoster(m.mockDataManager, zap.NewNop())
			err := s.SetDayOff(1, "Levi", tt.day)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func Test_rosterService_SetRotation(t *testing.T) {
	employees := []*entity.Employee{{Name: "LEVI"}, {Name: "EDEVALDO"}, {Name: "NATHALY"}, {Name: "MARIA"}}

	tests := []struct {
		name      string
		kind      string
		groups    [][]string
		buildMock func(mocks allMocks)
		wantErr   error
	}{
		{
			name:   "Should set sunday rotation with normalized names",
			kind:   domain.RotationSunday,
			groups: [][]string{{"levi", "Edevaldo"}, {"nathaly", "maria"}},
			buildMock: func(mocks allMocks) {
				mocks.mockRosterRepo.EXPECT().GetByID(int64(1)).Return(&entity.Roster{ID: 1}, nil).Times(1)
				mocks.mockEmployeeRepo.EXPECT().ListByRoster(int64(1)).Return(employees, nil).Times(1)
				mocks.mockRosterRepo.EXPECT().Update(gomock.Any()).
					DoAndReturn(func(r *entity.Roster) error {
						require.Equal(t, [][]string{{"LEVI", "EDEVALDO"}, {"NATHALY", "MARIA"}}, r.SundayRotation)
						require.Nil(t, r.VendorRotation)
						return nil
					}).Times(1)
			},
		},
		{
			name:   "Should set vendor rotation",
			kind:   domain.RotationVendor,
			groups: [][]string{{"maria"}},
			buildMock: func(mocks allMocks) {
				mocks.mockRosterRepo.EXPECT().GetByID(int64(1)).Return(&entity.Roster{ID: 1}, nil).Times(1)
				mocks.mockEmployeeRepo.EXPECT().ListByRoster(int64(1)).Return(employees, nil).Times(1)
				mocks.mockRosterRepo.EXPECT().Update(gomock.Any()).
					DoAndReturn(func(r *entity.Roster) error {
						require.Equal(t, [][]string{{"MARIA"}}, r.VendorRotation)
						return nil
					}).Times(1)
			},
		},
		{
			name:   "Should reject unknown employee",
			kind:   domain.RotationSunday,
			groups: [][]string{{"levi", "ghost"}},
			buildMock: func(mocks allMocks) {
				mocks.mockRosterRepo.EXPECT().GetByID(int64(1)).Return(&entity.Roster{ID: 1}, nil).Times(1)
				mocks.mockEmployeeRepo.EXPECT().ListByRoster(int64(1)).Return(employees, nil).Times(1)
			},
			wantErr: schedule.ErrReference,
		},
		{
			name:   "Should reject empty group",
			kind:   domain.RotationSunday,
			groups: [][]string{{"levi"}, {" "}},
			buildMock: func(mocks allMocks) {
				mocks.mockRosterRepo.EXPECT().GetByID(int64(1)).Return(&entity.Roster{ID: 1}, nil).Times(1)
				mocks.mockEmployeeRepo.EXPECT().ListByRoster(int64(1)).Return(employees, nil).Times(1)
			},
			wantErr: schedule.ErrConfiguration,
		},
		{
			name:      "Should reject unknown rotation kind",
			kind:      "weekday",
			groups:    [][]string{{"levi"}},
			buildMock: func(mocks allMocks) {},
			wantErr:   schedule.ErrConfiguration,
		},
		{
			name:      "Should reject empty rotation",
			kind:      domain.RotationVendor,
			groups:    nil,
			buildMock: func(mocks allMocks) {},
			wantErr:   schedule.ErrConfiguration,
		},
		{
			name:   "Should return roster not found",
			kind:   domain.RotationSunday,
			groups: [][]string{{"levi"}},
			buildMock: func(mocks allMocks) {
				mocks.mockRosterRepo.EXPECT().GetByID(int64(1)).Return(nil, nil).Times(1)
			},
			wantErr: domain.ErrRosterNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ctrl := newServiceTestMock(t)
			defer ctrl.Finish()

			tt.buildMock(m)

			s := newRoster(m.mockDataManager, zap.NewNop())
			err := s.SetRotation(1, tt.kind, tt.groups)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func Test_rosterService_RuleSet(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	m.mockRosterRepo.EXPECT().GetByID(int64(1)).Return(&entity.Roster{
		ID:             1,
		Name:           "IGUATEMI",
		SundayRotation: [][]string{{"LEVI"}},
		VendorRotation: [][]string{{"MARIA"}},
	}, nil).Times(1)
	m.mockEmployeeRepo.EXPECT().ListByRoster(int64(1)).Return([]*entity.Employee{
		{Name: "MARIA", WeekdayShift: "14h às 22h", SundayShift: "14h às 20h", DayOff: intPtr(2)},
		{Name: "LEVI", WeekdayShift: "10h às 18h", SundayShift: "14h às 20h"},
	}, nil).Times(1)

	s := newRoster(m.mockDataManager, zap.NewNop())
	rules, err := s.RuleSet(1)
	require.NoError(t, err)

	assert.Equal(t, []string{"MARIA", "LEVI"}, rules.Order)
	assert.Equal(t, schedule.Shifts{Weekday: "10h às 18h", Sunday: "14h às 20h"}, rules.Employees["LEVI"])
	assert.Equal(t, map[string]int{"MARIA": 2}, rules.WeekdaysOff)
	assert.Equal(t, [][]string{{"LEVI"}}, rules.SundayRotation)
	assert.NoError(t, rules.Validate())
}

func Test_rosterService_ImportRuleSet(t *testing.T) {
	rules := schedule.RuleSet{
		Employees: map[string]schedule.Shifts{
			"LEVI":  {Weekday: "10h às 18h", Sunday: "14h às 20h"},
			"MARIA": {Weekday: "14h às 22h", Sunday: "14h às 20h"},
		},
		Order:          []string{"LEVI", "MARIA"},
		SundayRotation: [][]string{{"LEVI"}},
		VendorRotation: [][]string{{"MARIA"}},
		WeekdaysOff:    map[string]int{"MARIA": 2},
	}

	t.Run("Should replace an existing roster", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		m.mockRosterRepo.EXPECT().GetBySlackChannelID("C1").Return(&entity.Roster{ID: 3, SlackChannelID: "C1"}, nil).Times(1)
		m.mockRosterRepo.EXPECT().Update(gomock.Any()).
			DoAndReturn(func(r *entity.Roster) error {
				require.Equal(t, "IGUATEMI", r.Name)
				require.Equal(t, rules.SundayRotation, r.SundayRotation)
				return nil
			}).Times(1)
		m.mockEmployeeRepo.EXPECT().DeleteByRoster(int64(3)).Return(nil).Times(1)

		var created []*entity.Employee
		m.mockEmployeeRepo.EXPECT().Create(gomock.Any()).
			DoAndReturn(func(e *entity.Employee) error {
				created = append(created, e)
				return nil
			}).Times(2)

		s := newRoster(m.mockDataManager, zap.NewNop())
		roster, err := s.ImportRuleSet(context.Background(), "C1", "Iguatemi", rules)
		require.NoError(t, err)
		assert.Equal(t, int64(3), roster.ID)

		require.Len(t, created, 2)
		assert.Equal(t, "LEVI", created[0].Name)
		assert.Equal(t, 0, created[0].Position)
		assert.Nil(t, created[0].DayOff)
		assert.Equal(t, "MARIA", created[1].Name)
		require.NotNil(t, created[1].DayOff)
		assert.Equal(t, 2, *created[1].DayOff)
	})

	t.Run("Should create roster and publisher for a new channel", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		m.mockRosterRepo.EXPECT().GetBySlackChannelID("C2").Return(nil, nil).Times(1)
		m.mockRosterRepo.EXPECT().Create(gomock.Any()).
			DoAndReturn(func(r *entity.Roster) error {
				r.ID = 9
				return nil
			}).Times(1)
		m.mockPublisherRepo.EXPECT().Create(gomock.Any()).Return(nil).Times(1)
		m.mockEmployeeRepo.EXPECT().Create(gomock.Any()).Return(nil).Times(2)

		s := newRoster(m.mockDataManager, zap.NewNop())
		roster, err := s.ImportRuleSet(context.Background(), "C2", "Iguatemi", rules)
		require.NoError(t, err)
		assert.Equal(t, int64(9), roster.ID)
	})

	t.Run("Should reject invalid rules before touching storage", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		bad := rules
		bad.SundayRotation = [][]string{{"GHOST"}}

		s := newRoster(m.mockDataManager, zap.NewNop())
		_, err := s.ImportRuleSet(context.Background(), "C1", "Iguatemi", bad)
		assert.ErrorIs(t, err, schedule.ErrReference)
	})
}

func Test_rosterService_UpdatePublisher(t *testing.T) {
	tests := []struct {
		name      string
		day       int
		at        string
		buildMock func(mocks allMocks)
		wantErr   bool
	}{
		{
			name: "Should update and enable existing publisher",
			day:  20,
			at:   "18:30",
			buildMock: func(mocks allMocks) {
				mocks.mockPublisherRepo.EXPECT().GetByRosterID(int64(1)).
					Return(&entity.Publisher{ID: 2, RosterID: 1, PublishDay: 25, PublishTime: "09:00"}, nil).Times(1)
				mocks.mockPublisherRepo.EXPECT().Update(gomock.Any()).
					DoAndReturn(func(p *entity.Publisher) error {
						require.Equal(t, 20, p.PublishDay)
						require.Equal(t, "18:30", p.PublishTime)
						require.True(t, p.IsEnabled)
						return nil
					}).Times(1)
			},
		},
		{
			name: "Should create publisher when missing",
			day:  1,
			at:   "07:00",
			buildMock: func(mocks allMocks) {
				mocks.mockPublisherRepo.EXPECT().GetByRosterID(int64(1)).Return(nil, nil).Times(1)
				mocks.mockPublisherRepo.EXPECT().Create(gomock.Any()).Return(nil).Times(1)
			},
		},
		{
			name:      "Should reject day 29",
			day:       29,
			at:        "09:00",
			buildMock: func(mocks allMocks) {},
			wantErr:   true,
		},
		{
			name:      "Should reject invalid time",
			day:       10,
			at:        "25:00",
			buildMock: func(mocks allMocks) {},
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ctrl := newServiceTestMock(t)
			defer ctrl.Finish()

			tt.buildMock(m)

			s := newRoster(m.mockDataManager, zap.NewNop())
			pub := newPublisher(m.mockDataManager, m.mockSchedule, m.mockSlackClient, zap.NewNop())
			s.SetPublisher(pub)

			err := s.UpdatePublisher(1, tt.day, tt.at)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidPublisher)
				return
			}
			require.NoError(t, err)
			assert.Len(t, pub.configChanged, 1, "Expected publisher loop to be notified")
		})
	}
}

func Test_rosterService_PauseResumePublisher(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	m.mockPublisherRepo.EXPECT().SetEnabled(int64(1), false).Return(nil).Times(1)
	m.mockPublisherRepo.EXPECT().SetEnabled(int64(1), true).Return(nil).Times(1)
	m.mockPublisherRepo.EXPECT().SetEnabled(int64(2), true).Return(errors.New("publisher not found")).Times(1)

	s := newRoster(m.mockDataManager, zap.NewNop())
	assert.NoError(t, s.PausePublisher(1))
	assert.NoError(t, s.ResumePublisher(1))
	assert.Error(t, s.ResumePublisher(2))
}

func Test_rosterService_GetRosterByChannel(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	m.mockRosterRepo.EXPECT().GetBySlackChannelID("C1").Return(&entity.Roster{ID: 1}, nil).Times(1)
	m.mockRosterRepo.EXPECT().GetBySlackChannelID("C2").Return(nil, nil).Times(1)

	s := newRoster(m.mockDataManager, zap.NewNop())

	roster, err := s.GetRosterByChannel("C1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), roster.ID)

	_, err = s.GetRosterByChannel("C2")
	assert.ErrorIs(t, err, domain.ErrRosterNotFound)
}
