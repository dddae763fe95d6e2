package service

import (
	"context"
	"testing"

	"github.com/diegoclair/escala-bot/internal/domain/contract"
	"github.com/diegoclair/escala-bot/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type allMocks struct {
	mockDataManager   *mocks.MockDataManager
	mockRosterRepo    *mocks.MockRosterRepo
	mockEmployeeRepo  *mocks.MockEmployeeRepo
	mockPublisherRepo *mocks.MockPublisherRepo
	mockSlackClient   *mocks.MockSlackClient
	mockSchedule      *mocks.MockScheduleService
}

func newServiceTestMock(t *testing.T) (m allMocks, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	dm := mocks.NewMockDataManager(ctrl)

	rosterRepo := mocks.NewMockRosterRepo(ctrl)
	dm.EXPECT().Roster().Return(rosterRepo).AnyTimes()

	employeeRepo := mocks.NewMockEmployeeRepo(ctrl)
	dm.EXPECT().Employee().Return(employeeRepo).AnyTimes()

	publisherRepo := mocks.NewMockPublisherRepo(ctrl)
	dm.EXPECT().Publisher().Return(publisherRepo).AnyTimes()

	// transactions run the callback against the same mocks
	dm.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(contract.DataManager) error) error {
			return fn(dm)
		}).AnyTimes()

	m = allMocks{
		mockDataManager:   dm,
		mockRosterRepo:    rosterRepo,
		mockEmployeeRepo:  employeeRepo,
		mockPublisherRepo: publisherRepo,
		mockSlackClient:   mocks.NewMockSlackClient(ctrl),
		mockSchedule:      mocks.NewMockScheduleService(ctrl),
	}

	// validate service creation
	rosterService := newRoster(dm, zap.NewNop())
	require.NotNil(t, rosterService)

	return
}

func intPtr(v int) *int { return &v }
