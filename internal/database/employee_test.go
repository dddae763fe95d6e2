package database

import (
	"context"
	"errors"
	"testing"

	"github.com/diegoclair/escala-bot/internal/domain/contract"
	"github.com/diegoclair/escala-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestEmployeeRepository_CreateAndGet(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	roster := createTestRoster(t, db, "C123456789")
	repo := newEmployeeRepo(db.conn)

	employee := &entity.Employee{
		RosterID:     roster.ID,
		Name:         "LEVI",
		WeekdayShift: "10h às 18h",
		SundayShift:  "14h às 20h",
		DayOff:       intPtr(0),
	}
	require.NoError(t, repo.Create(employee), "Failed to create employee")
	assert.NotZero(t, employee.ID)

	found, err := repo.GetByRosterAndName(roster.ID, "LEVI")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "10h às 18h", found.WeekdayShift)
	assert.Equal(t, "14h às 20h", found.SundayShift)
	require.NotNil(t, found.DayOff)
	assert.Equal(t, 0, *found.DayOff)

	notFound, err := repo.GetByRosterAndName(roster.ID, "GHOST")
	require.NoError(t, err)
	assert.Nil(t, notFound)

	// same name twice in a roster
	err = repo.Create(&entity.Employee{RosterID: roster.ID, Name: "LEVI", WeekdayShift: "x", SundayShift: "y"})
	assert.Error(t, err)
}

func TestEmployeeRepository_ListByRoster(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	roster := createTestRoster(t, db, "C123456789")
	other := createTestRoster(t, db, "C987654321")
	repo := newEmployeeRepo(db.conn)

	for i, name := range []string{"MARIA", "LEVI", "YURI"} {
		require.NoError(t, repo.Create(&entity.Employee{
			RosterID: roster.ID, Name: name, WeekdayShift: "a", SundayShift: "b", Position: i,
		}))
	}
	require.NoError(t, repo.Create(&entity.Employee{
		RosterID: other.ID, Name: "BRUNO", WeekdayShift: "a", SundayShift: "b",
	}))

	employees, err := repo.ListByRoster(roster.ID)
	require.NoError(t, err)
	require.Len(t, employees, 3)

	assert.Equal(t, "MARIA", employees[0].Name)
	assert.Equal(t, "LEVI", employees[1].Name)
	assert.Equal(t, "YURI", employees[2].Name)
	assert.Nil(t, employees[0].DayOff)
}

func TestEmployeeRepository_UpdateAndDelete(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	roster := createTestRoster(t, db, "C123456789")
	repo := newEmployeeRepo(db.conn)

	employee := &entity.Employee{RosterID: roster.ID, Name: "LEVI", WeekdayShift: "a", SundayShift: "b", DayOff: intPtr(2)}
	require.NoError(t, repo.Create(employee))

	employee.DayOff = nil
	employee.WeekdayShift = "14h às 22h"
	require.NoError(t, repo.Update(employee))

	found, err := repo.GetByRosterAndName(roster.ID, "LEVI")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Nil(t, found.DayOff)
	assert.Equal(t, "14h às 22h", found.WeekdayShift)

	require.NoError(t, repo.Delete(employee.ID))
	found, err = repo.GetByRosterAndName(roster.ID, "LEVI")
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestEmployeeRepository_DeleteByRoster(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	roster := createTestRoster(t, db, "C123456789")
	repo := newEmployeeRepo(db.conn)

	for _, name := range []string{"LEVI", "MARIA"} {
		require.NoError(t, repo.Create(&entity.Employee{RosterID: roster.ID, Name: name, WeekdayShift: "a", SundayShift: "b"}))
	}

	require.NoError(t, repo.DeleteByRoster(roster.ID))

	employees, err := repo.ListByRoster(roster.ID)
	require.NoError(t, err)
	assert.Empty(t, employees)
}

func TestEmployeeRepository_RejectsInvalidDayOff(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	roster := createTestRoster(t, db, "C123456789")

	err := newEmployeeRepo(db.conn).Create(&entity.Employee{
		RosterID: roster.ID, Name: "LEVI", WeekdayShift: "a", SundayShift: "b", DayOff: intPtr(7),
	})
	assert.Error(t, err)
}

func TestInstance_WithTransaction_Rollback(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	roster := createTestRoster(t, db, "C123456789")
	dm := NewInstance(db)

	boom := errors.New("boom")
	err := dm.WithTransaction(context.Background(), func(tx contract.DataManager) error {
		if err := tx.Employee().Create(&entity.Employee{RosterID: roster.ID, Name: "LEVI", WeekdayShift: "a", SundayShift: "b"}); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	employees, err := dm.Employee().ListByRoster(roster.ID)
	require.NoError(t, err)
	assert.Empty(t, employees, "Expected insert to be rolled back")
}
