package schedule

import (
	"fmt"
	"time"

	"github.com/diegoclair/escala-bot/internal/domain"
)

// unresolved marks a cell no rule has written yet. Labels are validated
// non-empty, so it never collides with a real shift.
const unresolved = ""

// Build fills the month grid for the given rules.
//
// Weekdays get each employee's weekday shift. Sundays start empty and are
// filled from the sunday and vendor rotations, cycled by Sunday index. A
// fixed day off is applied last and wins over everything, including a
// rotation shift on a Sunday. Cells left empty become domain.DayOff.
//
// Invalid input returns an error wrapping ErrConfiguration, ErrReference or
// ErrRange and no grid.
func Build(year int, month time.Month, rules RuleSet) (*Grid, error) {
	if month < time.January || month > time.December {
		return nil, fmt.Errorf("%w: month %d, want 1..12", ErrRange, month)
	}
	if year < 1 || year > 9999 {
		return nil, fmt.Errorf("%w: year %d", ErrRange, year)
	}
	if err := rules.Validate(); err != nil {
		return nil, err
	}

	employees := rules.Columns()
	index := make(map[string]int, len(employees))
	for j, id := range employees {
		index[id] = j
	}

	n := DaysIn(year, month)
	g := &Grid{
		Year:      year,
		Month:     month,
		days:      make([]time.Time, n),
		employees: employees,
		index:     index,
		cells:     make([][]string, n),
	}

	for i := 0; i < n; i++ {
		date := time.Date(year, month, i+1, 0, 0, 0, 0, time.UTC)
		g.days[i] = date

		row := make([]string, len(employees))
		if Weekday(date) != domain.Sunday {
			for j, id := range employees {
				row[j] = rules.Employees[id].Weekday
			}
		}
		g.cells[i] = row
	}

	for k, i := range g.Sundays() {
		assign := func(group []string) {
			for _, id := range group {
				g.cells[i][index[id]] = rules.Employees[id].Sunday
			}
		}
		assign(rules.SundayRotation[k%len(rules.SundayRotation)])
		assign(rules.VendorRotation[k%len(rules.VendorRotation)])
	}

	// iterate in column order so Overrides is deterministic
	for _, id := range employees {
		off, ok := rules.WeekdaysOff[id]
		if !ok {
			continue
		}
		j := index[id]
		for i, date := range g.days {
			if Weekday(date) != off {
				continue
			}
			if off == domain.Sunday && g.cells[i][j] != unresolved {
				g.Overrides = append(g.Overrides, Override{Date: date, Employee: id, Shift: g.cells[i][j]})
			}
			g.cells[i][j] = domain.DayOff
		}
	}

	for i := range g.cells {
		for j := range g.cells[i] {
			if g.cells[i][j] == unresolved {
				g.cells[i][j] = domain.DayOff
			}
		}
	}

	return g, nil
}
