package schedule

import (
	"time"

	"github.com/diegoclair/escala-bot/internal/domain"
)

// Grid is a resolved month schedule: one row per calendar day, one column
// per employee. It is not modified after Build returns.
type Grid struct {
	Year  int
	Month time.Month

	days      []time.Time
	employees []string
	index     map[string]int
	cells     [][]string

	// Overrides lists rotation assignments that a fixed day off erased.
	Overrides []Override
}

// Override records a rotation shift dropped because the employee's day off
// falls on that Sunday.
type Override struct {
	Date     time.Time
	Employee string
	Shift    string
}

// Weekday converts a date to the roster convention (Monday=0 .. Sunday=6).
func Weekday(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// DaysIn returns the number of days of a month.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func (g *Grid) Len() int { return len(g.days) }

// Date returns the date of row i (0-based).
func (g *Grid) Date(i int) time.Time { return g.days[i] }

// IsSunday reports whether row i falls on a Sunday.
func (g *Grid) IsSunday(i int) bool { return Weekday(g.days[i]) == domain.Sunday }

// Employees returns the column ids in order.
func (g *Grid) Employees() []string {
	out := make([]string, len(g.employees))
	copy(out, g.employees)
	return out
}

// Cell returns the label of employee on row i, or "" if the employee is unknown.
func (g *Grid) Cell(i int, employee string) string {
	col, ok := g.index[employee]
	if !ok {
		return ""
	}
	return g.cells[i][col]
}

// Row returns a copy of row i in column order.
func (g *Grid) Row(i int) []string {
	out := make([]string, len(g.cells[i]))
	copy(out, g.cells[i])
	return out
}

// Sundays returns the row indexes of every Sunday, chronologically.
func (g *Grid) Sundays() []int {
	var rows []int
	for i := range g.days {
		if g.IsSunday(i) {
			rows = append(rows, i)
		}
	}
	return rows
}

// Equal reports whether two grids hold the same dates, columns and cells.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.Year != other.Year || g.Month != other.Month {
		return false
	}
	if len(g.days) != len(other.days) || len(g.employees) != len(other.employees) {
		return false
	}
	for j, id := range g.employees {
		if other.employees[j] != id {
			return false
		}
	}
	for i := range g.cells {
		for j := range g.cells[i] {
			if g.cells[i][j] != other.cells[i][j] {
				return false
			}
		}
	}
	return true
}
