package export

import (
	"fmt"
	"strings"

	"github.com/diegoclair/escala-bot/internal/domain"
	"github.com/diegoclair/escala-bot/internal/domain/schedule"
)

// Summary renders the per-employee totals as Slack mrkdwn.
func Summary(rosterName string, g *schedule.Grid, stats schedule.Stats) string {
	var b strings.Builder

	fmt.Fprintf(&b, "📅 *Escala %s %d*", g.Month, g.Year)
	if rosterName != "" {
		fmt.Fprintf(&b, " - %s", rosterName)
	}
	fmt.Fprintf(&b, "\n%d days, %d sundays\n\n", g.Len(), len(g.Sundays()))

	b.WriteString("```\n")
	fmt.Fprintf(&b, "%-12s %10s %8s\n", "", domain.TotalDaysLabel, domain.SundaysLabel)
	for _, id := range g.Employees() {
		fmt.Fprintf(&b, "%-12s %10d %8d\n", id, stats.TotalWorked[id], stats.SundaysWorked[id])
	}
	b.WriteString("```")

	if len(g.Overrides) > 0 {
		b.WriteString("\n\n⚠️ *Day off replaced a rotation shift:*")
		for _, o := range g.Overrides {
			fmt.Fprintf(&b, "\n• %s on %s (%s)", o.Employee, RowLabel(o.Date), o.Shift)
		}
	}

	return b.String()
}
