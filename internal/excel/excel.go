package excel

import (
	"fmt"

	"github.com/derekprior/doubles/internal/schedule"
	"github.com/derekprior/doubles/internal/team"
	"github.com/xuri/excelize/v2"
)

// Sheet names shared with the validator.
const (
	ScheduleSheet = "Schedule"
	TeamsSheet    = "Teams"
)

// ScheduleHeaders are the columns of the Schedule sheet.
var ScheduleHeaders = []string{"Round", "Court", "Team 1", "Players", "Team 2", "Players"}

// Generate creates a workbook with the full schedule, the team statistics
// and one sheet per team.
func Generate(t *schedule.Tournament) (*excelize.File, error) {
	f := excelize.NewFile()

	// Set default font for the workbook
	f.SetDefaultFont("Arial")

	if err := writeScheduleSheet(f, t); err != nil {
		return nil, fmt.Errorf("writing schedule sheet: %w", err)
	}

	if err := writeTeamsSheet(f, t); err != nil {
		return nil, fmt.Errorf("writing teams sheet: %w", err)
	}

	if err := writeTeamSheets(f, t); err != nil {
		return nil, fmt.Errorf("writing team sheets: %w", err)
	}

	f.DeleteSheet("Sheet1")
	return f, nil
}

// TeamSheetName returns the per-team sheet name, e.g. "Team 3".
func TeamSheetName(tm team.Team) string {
	return fmt.Sprintf("Team %d", tm.ID)
}

type styles struct {
	header, cell, center int
}

func newStyles(f *excelize.File) styles {
	header, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 14, Family: "Arial"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#4472C4"}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	cell, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Size: 14, Family: "Arial"},
	})
	center, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Size: 14, Family: "Arial"},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	return styles{header: header, cell: cell, center: center}
}

func writeHeaders(f *excelize.File, sheet string, headers []string, style int) error {
	for i, h := range headers {
		if err := f.SetCellValue(sheet, cellRef(i+1, 1), h); err != nil {
			return err
		}
	}
	if style != 0 {
		return f.SetCellStyle(sheet, cellRef(1, 1), cellRef(len(headers), 1), style)
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, row int, values []any) error {
	for i, v := range values {
		if err := f.SetCellValue(sheet, cellRef(i+1, row), v); err != nil {
			return err
		}
	}
	return nil
}

func writeScheduleSheet(f *excelize.File, t *schedule.Tournament) error {
	sheet := ScheduleSheet
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	st := newStyles(f)

	if err := writeHeaders(f, sheet, ScheduleHeaders, st.header); err != nil {
		return err
	}

	row := 2
	for _, r := range t.Rounds {
		for _, m := range r.Matches {
			values := []any{r.Number, m.Court, m.Team1.ID, m.Team1.Names(), m.Team2.ID, m.Team2.Names()}
			if err := writeRow(f, sheet, row, values); err != nil {
				return err
			}
			if st.center != 0 {
				f.SetCellStyle(sheet, cellRef(1, row), cellRef(len(values), row), st.center)
			}
			row++
		}
	}

	widths := map[string]float64{"A": 10, "B": 10, "C": 10, "D": 30, "E": 10, "F": 30}
	for col, w := range widths {
		f.SetColWidth(sheet, col, col, w)
	}
	return nil
}

func writeTeamsSheet(f *excelize.File, t *schedule.Tournament) error {
	sheet := TeamsSheet
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	st := newStyles(f)

	headers := []string{"Team", "Players", "Played", "Target", "Difference", "Status"}
	if err := writeHeaders(f, sheet, headers, st.header); err != nil {
		return err
	}

	stats := t.TeamStats()
	for i, s := range stats {
		row := i + 2
		values := []any{s.Team.ID, s.Team.Names(), s.Played, s.Target, s.Difference, s.Status.String()}
		if err := writeRow(f, sheet, row, values); err != nil {
			return err
		}
		if st.cell != 0 {
			f.SetCellStyle(sheet, cellRef(1, row), cellRef(len(values), row), st.cell)
		}
	}

	// Summary block below the table, separated by a blank row.
	sum := t.Summary()
	row := len(stats) + 3
	summary := [][]any{
		{"Total matches", sum.TotalMatches},
		{"Scheduled", sum.Scheduled},
		{"Ideal per team", sum.IdealPerTeam},
		{"Unique pairings", sum.Unique},
		{"Repeated pairings", sum.Repeated},
		{"Never met", sum.Unplayed},
	}
	for _, values := range summary {
		if err := writeRow(f, sheet, row, values); err != nil {
			return err
		}
		row++
	}

	// Status colours match the three classifications.
	fills := map[schedule.Status]string{
		schedule.Balanced:        "#C6EFCE",
		schedule.MinorDeviation:  "#FFEB9C",
		schedule.NeedsAdjustment: "#FFC7CE",
	}
	lastRow := len(stats) + 1
	if lastRow >= 2 {
		cellRange := fmt.Sprintf("F2:F%d", lastRow)
		for status, color := range fills {
			fill, _ := f.NewConditionalStyle(&excelize.Style{
				Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{color}},
			})
			f.SetConditionalFormat(sheet, cellRange, []excelize.ConditionalFormatOptions{
				{
					Type:     "formula",
					Criteria: fmt.Sprintf(`$F2="%s"`, status),
					Format:   &fill,
				},
			})
		}
	}

	widths := map[string]float64{"A": 20, "B": 30, "C": 10, "D": 10, "E": 12, "F": 20}
	for col, w := range widths {
		f.SetColWidth(sheet, col, col, w)
	}
	return nil
}

func writeTeamSheets(f *excelize.File, t *schedule.Tournament) error {
	st := newStyles(f)
	headers := []string{"Round", "Court", "Opponent", "Players"}

	for _, tm := range t.Teams {
		sheet := TeamSheetName(tm)
		if _, err := f.NewSheet(sheet); err != nil {
			return err
		}
		if err := writeHeaders(f, sheet, headers, st.header); err != nil {
			return err
		}

		row := 2
		for _, r := range t.Rounds {
			for _, m := range r.Matches {
				var opponent team.Team
				switch tm.Key() {
				case m.Team1.Key():
					opponent = m.Team2
				case m.Team2.Key():
					opponent = m.Team1
				default:
					continue
				}
				values := []any{r.Number, m.Court, opponent.ID, opponent.Names()}
				if err := writeRow(f, sheet, row, values); err != nil {
					return err
				}
				if st.cell != 0 {
					f.SetCellStyle(sheet, cellRef(1, row), cellRef(len(values), row), st.cell)
				}
				row++
			}
		}

		widths := map[string]float64{"A": 10, "B": 10, "C": 12, "D": 30}
		for col, w := range widths {
			f.SetColWidth(sheet, col, col, w)
		}
	}

	return nil
}

func cellRef(col, row int) string {
	return fmt.Sprintf("%s%d", colLetter(col), row)
}

func colLetter(col int) string {
	result := ""
	for col > 0 {
		col--
		result = string(rune('A'+col%26)) + result
		col /= 26
	}
	return result
}
