package schedule

import (
	"fmt"
	"sort"
	"strings"

	"github.com/diegoclair/escala-bot/internal/domain"
)

// Shifts holds the two labels an employee works under. Labels are opaque
// strings; only non-emptiness is checked.
type Shifts struct {
	Weekday string `json:"weekday" yaml:"weekday"`
	Sunday  string `json:"sunday" yaml:"sunday"`
}

// RuleSet is the full input of a build. It is read, never modified.
type RuleSet struct {
	Employees map[string]Shifts
	// Order fixes the column order. When empty, employee ids are sorted.
	Order          []string
	SundayRotation [][]string
	VendorRotation [][]string
	// WeekdaysOff maps an employee to a weekday 0..6 (Monday=0). It may be partial.
	WeekdaysOff map[string]int
}

// Columns returns the employee ids in grid column order.
func (r RuleSet) Columns() []string {
	if len(r.Order) > 0 {
		cols := make([]string, len(r.Order))
		copy(cols, r.Order)
		return cols
	}

	cols := make([]string, 0, len(r.Employees))
	for id := range r.Employees {
		cols = append(cols, id)
	}
	sort.Strings(cols)
	return cols
}

// Validate checks the rule set without building anything.
func (r RuleSet) Validate() error {
	if len(r.Employees) == 0 {
		return fmt.Errorf("%w: no employees", ErrConfiguration)
	}

	for id, shifts := range r.Employees {
		if strings.TrimSpace(id) == "" {
			return fmt.Errorf("%w: empty employee id", ErrConfiguration)
		}
		if strings.TrimSpace(shifts.Weekday) == "" {
			return fmt.Errorf("%w: employee %q has no weekday shift", ErrConfiguration, id)
		}
		if strings.TrimSpace(shifts.Sunday) == "" {
			return fmt.Errorf("%w: employee %q has no sunday shift", ErrConfiguration, id)
		}
	}

	if len(r.Order) > 0 {
		if len(r.Order) != len(r.Employees) {
			return fmt.Errorf("%w: column order lists %d employees, rule set has %d",
				ErrConfiguration, len(r.Order), len(r.Employees))
		}
		seen := make(map[string]bool, len(r.Order))
		for _, id := range r.Order {
			if _, ok := r.Employees[id]; !ok {
				return fmt.Errorf("%w: %q in column order", ErrReference, id)
			}
			if seen[id] {
				return fmt.Errorf("%w: %q listed twice in column order", ErrConfiguration, id)
			}
			seen[id] = true
		}
	}

	if err := r.validateRotation(domain.RotationSunday, r.SundayRotation); err != nil {
		return err
	}
	if err := r.validateRotation(domain.RotationVendor, r.VendorRotation); err != nil {
		return err
	}

	for id, day := range r.WeekdaysOff {
		if _, ok := r.Employees[id]; !ok {
			return fmt.Errorf("%w: %q has a day off configured", ErrReference, id)
		}
		if day < domain.Monday || day > domain.Sunday {
			return fmt.Errorf("%w: day off %d for %q, want 0..6", ErrRange, day, id)
		}
	}

	return nil
}

func (r RuleSet) validateRotation(kind string, rotation [][]string) error {
	if len(rotation) == 0 {
		return fmt.Errorf("%w: %s rotation is empty", ErrConfiguration, kind)
	}
	for i, group := range rotation {
		if len(group) == 0 {
			return fmt.Errorf("%w: %s rotation group %d is empty", ErrConfiguration, kind, i)
		}
		for _, id := range group {
			if _, ok := r.Employees[id]; !ok {
				return fmt.Errorf("%w: %q in %s rotation group %d", ErrReference, id, kind, i)
			}
		}
	}
	return nil
}
