package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/diegoclair/escala-bot/internal/domain"
	"github.com/diegoclair/escala-bot/internal/domain/entity"
	"github.com/diegoclair/escala-bot/internal/domain/schedule"
	"github.com/diegoclair/escala-bot/internal/export"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func Test_scheduleService_GenerateSchedule(t *testing.T) {
	roster := &entity.Roster{
		ID:             1,
		SlackChannelID: "C123",
		Name:           "IGUATEMI",
		SundayRotation: [][]string{{"LEVI"}, {"MARIA"}},
		VendorRotation: [][]string{{"YURI"}},
	}
	employees := []*entity.Employee{
		{Name: "LEVI", WeekdayShift: "10h às 18h", SundayShift: "14h às 20h"},
		{Name: "MARIA", WeekdayShift: "14h às 22h", SundayShift: "14h às 20h", DayOff: intPtr(domain.Wednesday)},
		{Name: "YURI", WeekdayShift: "10h às 18h", SundayShift: "14h às 20h", DayOff: intPtr(domain.Sunday)},
	}

	errDB := errors.New("database error")

	tests := []struct {
		name      string
		year      int
		month     int
		buildMock func(mocks allMocks)
		wantErr   error
		check     func(t *testing.T, result *entity.ScheduleResult, dir string)
	}{
		{
			name:  "Should build and save september 2024",
			year:  2024,
			month: 9,
			buildMock: func(mocks allMocks) {
				mocks.mockRosterRepo.EXPECT().GetByID(int64(1)).Return(roster, nil).Times(1)
				mocks.mockEmployeeRepo.EXPECT().ListByRoster(int64(1)).Return(employees, nil).Times(1)
			},
			check: func(t *testing.T, result *entity.ScheduleResult, dir string) {
				assert.Equal(t, "IGUATEMI", result.RosterName)
				assert.Equal(t, 30, result.Grid.Len())
				assert.Equal(t, []string{"LEVI", "MARIA", "YURI"}, result.Grid.Employees())

				// 2024-09-01 is a Sunday: LEVI rotates in, MARIA is off
				assert.Equal(t, "14h às 20h", result.Grid.Cell(0, "LEVI"))
				assert.Equal(t, domain.DayOff, result.Grid.Cell(0, "MARIA"))

				// YURI's Sunday day off wins over the vendor rotation
				assert.Equal(t, domain.DayOff, result.Grid.Cell(0, "YURI"))
				assert.Len(t, result.Grid.Overrides, 5)
				assert.Equal(t, 0, result.Stats.SundaysWorked["YURI"])

				assert.Equal(t, filepath.Join(dir, "Escala_SEPTEMBER_2024_IGUATEMI.xlsx"), result.FilePath)
				_, err := os.Stat(result.FilePath)
				assert.NoError(t, err)
			},
		},
		{
			name:  "Should return roster not found",
			year:  2024,
			month: 9,
			buildMock: func(mocks allMocks) {
				mocks.mockRosterRepo.EXPECT().GetByID(int64(1)).Return(nil, nil).Times(1)
			},
			wantErr: domain.ErrRosterNotFound,
		},
		{
			name:  "Should reject invalid month without writing a file",
			year:  2024,
			month: 13,
			buildMock: func(mocks allMocks) {
				mocks.mockRosterRepo.EXPECT().GetByID(int64(1)).Return(roster, nil).Times(1)
				mocks.mockEmployeeRepo.EXPECT().ListByRoster(int64(1)).Return(employees, nil).Times(1)
			},
			wantErr: schedule.ErrRange,
		},
		{
			name:  "Should reject roster without employees",
			year:  2024,
			month: 9,
			buildMock: func(mocks allMocks) {
				mocks.mockRosterRepo.EXPECT().GetByID(int64(1)).Return(&entity.Roster{ID: 1, Name: "EMPTY"}, nil).Times(1)
				mocks.mockEmployeeRepo.EXPECT().ListByRoster(int64(1)).Return(nil, nil).Times(1)
			},
			wantErr: schedule.ErrConfiguration,
		},
		{
			name:  "Should return error when listing employees fails",
			year:  2024,
			month: 9,
			buildMock: func(mocks allMocks) {
				mocks.mockRosterRepo.EXPECT().GetByID(int64(1)).Return(roster, nil).Times(1)
				mocks.mockEmployeeRepo.EXPECT().ListByRoster(int64(1)).Return(nil, errDB).Times(1)
			},
			wantErr: errDB,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ctrl := newServiceTestMock(t)
			defer ctrl.Finish()

			tt.buildMock(m)

			dir := t.TempDir()
			s := newSchedule(newRoster(m.mockDataManager, zap.NewNop()), export.NewExporter(nil), dir, zap.NewNop())

			result, err := s.GenerateSchedule(context.Background(), 1, tt.year, tt.month)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				entries, _ := os.ReadDir(dir)
				assert.Empty(t, entries, "Expected no file on failure")
				return
			}

			require.NoError(t, err)
			tt.check(t, result, dir)
		})
	}
}

func Test_scheduleService_GenerateSchedule_CanceledContext(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := newSchedule(newRoster(m.mockDataManager, zap.NewNop()), export.NewExporter(nil), t.TempDir(), zap.NewNop())
	_, err := s.GenerateSchedule(ctx, 1, 2024, 9)
	assert.ErrorIs(t, err, context.Canceled)
}
