package schedule

import "github.com/diegoclair/escala-bot/internal/domain"

// Stats counts worked (non day-off) cells per employee.
type Stats struct {
	TotalWorked   map[string]int
	SundaysWorked map[string]int
}

// ComputeStats reads the grid and never modifies it.
func ComputeStats(g *Grid) Stats {
	stats := Stats{
		TotalWorked:   make(map[string]int, len(g.employees)),
		SundaysWorked: make(map[string]int, len(g.employees)),
	}

	for _, id := range g.employees {
		stats.TotalWorked[id] = 0
		stats.SundaysWorked[id] = 0
	}

	for i, row := range g.cells {
		sunday := g.IsSunday(i)
		for j, label := range row {
			if label == domain.DayOff {
				continue
			}
			id := g.employees[j]
			stats.TotalWorked[id]++
			if sunday {
				stats.SundaysWorked[id]++
			}
		}
	}

	return stats
}
