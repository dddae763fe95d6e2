package database

import (
	"database/sql"
	"fmt"

	"github.com/diegoclair/escala-bot/internal/domain/contract"
	"github.com/diegoclair/escala-bot/internal/domain/entity"
)

type employeeRepository struct {
	db dbConn
}

func newEmployeeRepo(db dbConn) contract.EmployeeRepo {
	return &employeeRepository{db: db}
}

const employeeColumns = `id, roster_id, name, weekday_shift, sunday_shift, day_off, position, created_at`

func (r *employeeRepository) Create(employee *entity.Employee) error {
	query := `
		INSERT INTO employees (roster_id, name, weekday_shift, sunday_shift, day_off, position)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.Exec(query,
		employee.RosterID,
		employee.Name,
		employee.WeekdayShift,
		employee.SundayShift,
		nullableDay(employee.DayOff),
		employee.Position,
	)
	if err != nil {
		return fmt.Errorf("failed to create employee: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	employee.ID = id
	return nil
}

func (r *employeeRepository) GetByRosterAndName(rosterID int64, name string) (*entity.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE roster_id = ? AND name = ?`

	employee, err := scanEmployee(r.db.QueryRow(query, rosterID, name))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}

	return employee, nil
}

func (r *employeeRepository) ListByRoster(rosterID int64) ([]*entity.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE roster_id = ? ORDER BY position ASC, id ASC`

	rows, err := r.db.Query(query, rosterID)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []*entity.Employee
	for rows.Next() {
		employee, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, employee)
	}

	return employees, rows.Err()
}

func (r *employeeRepository) Update(employee *entity.Employee) error {
	query := `
		UPDATE employees SET
			weekday_shift = ?,
			sunday_shift = ?,
			day_off = ?,
			position = ?
		WHERE id = ?
	`

	_, err := r.db.Exec(query,
		employee.WeekdayShift,
		employee.SundayShift,
		nullableDay(employee.DayOff),
		employee.Position,
		employee.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update employee: %w", err)
	}

	return nil
}

func (r *employeeRepository) Delete(employeeID int64) error {
	if _, err := r.db.Exec(`DELETE FROM employees WHERE id = ?`, employeeID); err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	return nil
}

func (r *employeeRepository) DeleteByRoster(rosterID int64) error {
	if _, err := r.db.Exec(`DELETE FROM employees WHERE roster_id = ?`, rosterID); err != nil {
		return fmt.Errorf("failed to delete roster employees: %w", err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanEmployee(row scanner) (*entity.Employee, error) {
	employee := &entity.Employee{}
	var dayOff sql.NullInt64

	err := row.Scan(
		&employee.ID,
		&employee.RosterID,
		&employee.Name,
		&employee.WeekdayShift,
		&employee.SundayShift,
		&dayOff,
		&employee.Position,
		&employee.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if dayOff.Valid {
		day := int(dayOff.Int64)
		employee.DayOff = &day
	}

	return employee, nil
}

func nullableDay(day *int) sql.NullInt64 {
	if day == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*day), Valid: true}
}
