package export

import (
	"fmt"
	"hash/fnv"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/diegoclair/escala-bot/internal/domain"
	"github.com/diegoclair/escala-bot/internal/domain/schedule"
)

const SheetName = "Escala"

const (
	headerFill  = "#4CAF50"
	sundayFill  = "#FFD700"
	summaryFill = "#EFEFEF"
	dayOffFill  = "#FFCCCB"
)

// DefaultPalette colors the shift labels used by the stores we started with.
var DefaultPalette = map[string]string{
	"10h às 18h": "#E6F3FF",
	"14h às 22h": "#FFF0E6",
	"14h às 20h": "#E6FFE6",
	domain.DayOff: dayOffFill,
}

// labels outside the palette get one of these, picked by hash of the label
var fallbackFills = []string{
	"#F3E6FF", "#E6FFFA", "#FFFBE6", "#FFE6F0", "#EAF2E3", "#E8EAF6",
}

// Exporter renders a grid as a styled spreadsheet. It only reads the grid.
type Exporter struct {
	palette map[string]string
}

func NewExporter(palette map[string]string) *Exporter {
	if palette == nil {
		palette = DefaultPalette
	}
	return &Exporter{palette: palette}
}

// FileName builds the spreadsheet name, e.g. Escala_SEPTEMBER_2024_IGUATEMI.xlsx
func FileName(rosterName string, year int, month time.Month) string {
	name := strings.ToUpper(strings.TrimSpace(rosterName))
	name = strings.Map(func(r rune) rune {
		switch r {
		case ' ', '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return '_'
		}
		return r
	}, name)
	if name == "" {
		return fmt.Sprintf("Escala_%s_%d.xlsx", strings.ToUpper(month.String()), year)
	}
	return fmt.Sprintf("Escala_%s_%d_%s.xlsx", strings.ToUpper(month.String()), year, name)
}

// RowLabel formats a date as "01/09 (Sun)".
func RowLabel(t time.Time) string {
	return fmt.Sprintf("%s (%s)", t.Format("02/01"), domain.WeekdayAbbr[schedule.Weekday(t)])
}

// Fill returns the background color for a cell label.
func (e *Exporter) Fill(label string) string {
	if color, ok := e.palette[label]; ok {
		return color
	}
	h := fnv.New32a()
	h.Write([]byte(label))
	return fallbackFills[h.Sum32()%uint32(len(fallbackFills))]
}

// Workbook builds the spreadsheet: header row, one row per day, and the
// TOTAL DIAS / DOMINGOS summary rows. The caller closes the file.
func (e *Exporter) Workbook(g *schedule.Grid, stats schedule.Stats) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	if err := e.fill(f, g, stats); err != nil {
		f.Close()
		return nil, err
	}

	return f, nil
}

// Write streams the workbook to w.
func (e *Exporter) Write(w io.Writer, g *schedule.Grid, stats schedule.Stats) error {
	f, err := e.Workbook(g, stats)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

// Save writes the workbook into dir and returns the file path.
func (e *Exporter) Save(dir, rosterName string, g *schedule.Grid, stats schedule.Stats) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output dir: %w", err)
	}

	f, err := e.Workbook(g, stats)
	if err != nil {
		return "", err
	}
	defer f.Close()

	path := filepath.Join(dir, FileName(rosterName, g.Year, g.Month))
	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("failed to save schedule %s: %w", path, err)
	}

	return path, nil
}

func (e *Exporter) fill(f *excelize.File, g *schedule.Grid, stats schedule.Stats) error {
	styles := newStyleCache(f)
	employees := g.Employees()
	lastCol, _ := excelize.ColumnNumberToName(len(employees) + 1)

	if err := f.SetColWidth(SheetName, "A", "A", 14); err != nil {
		return fmt.Errorf("failed to set column width: %w", err)
	}
	if err := f.SetColWidth(SheetName, "B", lastCol, 14); err != nil {
		return fmt.Errorf("failed to set column width: %w", err)
	}

	header := make([]interface{}, 0, len(employees)+1)
	header = append(header, "DATA")
	for _, id := range employees {
		header = append(header, id)
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	headerStyle, err := styles.get(headerFill, true, "FFFFFF")
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(SheetName, "A1", lastCol+"1", headerStyle); err != nil {
		return fmt.Errorf("failed to style header: %w", err)
	}

	for i := 0; i < g.Len(); i++ {
		row := i + 2
		sunday := g.IsSunday(i)

		labelFill := summaryFill
		if sunday {
			labelFill = sundayFill
		}
		if err := e.setCell(f, styles, 1, row, RowLabel(g.Date(i)), labelFill, true); err != nil {
			return err
		}

		for j, label := range g.Row(i) {
			fill := e.Fill(label)
			if sunday && label != domain.DayOff {
				fill = sundayFill
			}
			if err := e.setCell(f, styles, j+2, row, label, fill, sunday); err != nil {
				return err
			}
		}
	}

	summary := []struct {
		label  string
		counts map[string]int
	}{
		{domain.TotalDaysLabel, stats.TotalWorked},
		{domain.SundaysLabel, stats.SundaysWorked},
	}
	for k, s := range summary {
		row := g.Len() + 2 + k
		if err := e.setCell(f, styles, 1, row, s.label, summaryFill, true); err != nil {
			return err
		}
		for j, id := range employees {
			if err := e.setCell(f, styles, j+2, row, s.counts[id], summaryFill, true); err != nil {
				return err
			}
		}
	}

	if err := f.SetPanes(SheetName, &excelize.Panes{
		Freeze:      true,
		XSplit:      1,
		YSplit:      1,
		TopLeftCell: "B2",
		ActivePane:  "bottomRight",
	}); err != nil {
		return fmt.Errorf("failed to freeze panes: %w", err)
	}

	return nil
}

func (e *Exporter) setCell(f *excelize.File, styles *styleCache, col, row int, value interface{}, fill string, bold bool) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return fmt.Errorf("invalid cell %d,%d: %w", col, row, err)
	}
	if err := f.SetCellValue(SheetName, cell, value); err != nil {
		return fmt.Errorf("failed to set cell %s: %w", cell, err)
	}

	style, err := styles.get(fill, bold, "000000")
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(SheetName, cell, cell, style); err != nil {
		return fmt.Errorf("failed to style cell %s: %w", cell, err)
	}
	return nil
}

type styleKey struct {
	fill      string
	bold      bool
	fontColor string
}

// styleCache avoids registering one excelize style per cell.
type styleCache struct {
	f      *excelize.File
	styles map[styleKey]int
}

func newStyleCache(f *excelize.File) *styleCache {
	return &styleCache{f: f, styles: make(map[styleKey]int)}
}

func (c *styleCache) get(fill string, bold bool, fontColor string) (int, error) {
	key := styleKey{fill: fill, bold: bold, fontColor: fontColor}
	if id, ok := c.styles[key]; ok {
		return id, nil
	}

	border := []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
	}

	id, err := c.f.NewStyle(&excelize.Style{
		Border:    border,
		Font:      &excelize.Font{Bold: bold, Color: fontColor},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{fill}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return 0, fmt.Errorf("failed to create style: %w", err)
	}

	c.styles[key] = id
	return id, nil
}
