// Package rulefile reads and writes roster rule sets as YAML, so a roster can
// be kept in version control and built without the database.
package rulefile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/diegoclair/escala-bot/internal/domain/schedule"
)

type File struct {
	Name           string     `yaml:"name"`
	Employees      []Employee `yaml:"employees"`
	SundayRotation [][]string `yaml:"sunday_rotation"`
	VendorRotation [][]string `yaml:"vendor_rotation"`
}

type Employee struct {
	Name    string `yaml:"name"`
	Weekday string `yaml:"weekday"`
	Sunday  string `yaml:"sunday"`
	DayOff  *int   `yaml:"day_off,omitempty"`
}

func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rule file: %w", err)
	}

	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Parse decodes a rule file. Unknown keys are rejected so typos in field
// names do not silently drop rules.
func Parse(data []byte) (*File, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty rule file", schedule.ErrConfiguration)
		}
		return nil, fmt.Errorf("%w: %v", schedule.ErrConfiguration, err)
	}
	return &f, nil
}

func normalize(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}

// RuleSet converts the file into builder input. Names are upper-cased and
// the file order becomes the column order.
func (f *File) RuleSet() (schedule.RuleSet, error) {
	rules := schedule.RuleSet{
		Employees:   make(map[string]schedule.Shifts, len(f.Employees)),
		Order:       make([]string, 0, len(f.Employees)),
		WeekdaysOff: make(map[string]int),
	}

	for _, e := range f.Employees {
		id := normalize(e.Name)
		if _, dup := rules.Employees[id]; dup {
			return schedule.RuleSet{}, fmt.Errorf("%w: employee %q listed twice", schedule.ErrConfiguration, id)
		}
		rules.Employees[id] = schedule.Shifts{
			Weekday: strings.TrimSpace(e.Weekday),
			Sunday:  strings.TrimSpace(e.Sunday),
		}
		rules.Order = append(rules.Order, id)
		if e.DayOff != nil {
			rules.WeekdaysOff[id] = *e.DayOff
		}
	}

	rules.SundayRotation = normalizeGroups(f.SundayRotation)
	rules.VendorRotation = normalizeGroups(f.VendorRotation)

	return rules, nil
}

func normalizeGroups(groups [][]string) [][]string {
	if groups == nil {
		return nil
	}
	out := make([][]string, len(groups))
	for i, g := range groups {
		out[i] = make([]string, len(g))
		for j, member := range g {
			out[i][j] = normalize(member)
		}
	}
	return out
}

// FromRuleSet is the inverse of RuleSet, used to export a stored roster.
func FromRuleSet(name string, rules schedule.RuleSet) *File {
	f := &File{
		Name:           name,
		SundayRotation: rules.SundayRotation,
		VendorRotation: rules.VendorRotation,
	}

	for _, id := range rules.Columns() {
		e := Employee{
			Name:    id,
			Weekday: rules.Employees[id].Weekday,
			Sunday:  rules.Employees[id].Sunday,
		}
		if day, ok := rules.WeekdaysOff[id]; ok {
			day := day
			e.DayOff = &day
		}
		f.Employees = append(f.Employees, e)
	}

	return f
}

func (f *File) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(f); err != nil {
		return fmt.Errorf("failed to encode rule file: %w", err)
	}
	return enc.Close()
}
