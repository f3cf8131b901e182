package validator

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/derekprior/doubles/internal/config"
	"github.com/derekprior/doubles/internal/excel"
	"github.com/derekprior/doubles/internal/schedule"
	"github.com/xuri/excelize/v2"
)

// Violation represents a problem found in an exported schedule.
type Violation struct {
	Row     int
	Type    string // "error" or "warning"
	Message string
}

// Validate reads a schedule workbook and checks it against the config.
func Validate(cfg *config.Config, path string) ([]Violation, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	games, err := readMatches(f)
	if err != nil {
		return nil, fmt.Errorf("reading matches: %w", err)
	}

	return Check(cfg, games), nil
}

// Check runs every rule against parsed matches.
func Check(cfg *config.Config, games []ParsedMatch) []Violation {
	var violations []Violation

	// Hard rules
	violations = append(violations, checkTeams(games)...)
	violations = append(violations, checkRounds(cfg, games)...)
	violations = append(violations, checkDoubleBooking(games)...)

	// Fairness guidelines
	violations = append(violations, checkRepeatedMatchups(games)...)
	violations = append(violations, checkPlayBalance(games)...)

	return violations
}

// ParsedTeam is one side of a match as written in the workbook.
type ParsedTeam struct {
	ID      int
	Players []string
}

// ParsedMatch is one row of the Schedule sheet.
type ParsedMatch struct {
	Row   int
	Round int
	Court int
	Team1 ParsedTeam
	Team2 ParsedTeam
}

func readMatches(f *excelize.File) ([]ParsedMatch, error) {
	rows, err := f.GetRows(excel.ScheduleSheet)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", excel.ScheduleSheet, err)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("%s sheet is empty", excel.ScheduleSheet)
	}

	var games []ParsedMatch
	for i, row := range rows {
		if i == 0 {
			continue
		}
		if len(row) < len(excel.ScheduleHeaders) || row[0] == "" {
			continue
		}

		round, err1 := strconv.Atoi(row[0])
		court, err2 := strconv.Atoi(row[1])
		id1, err3 := strconv.Atoi(row[2])
		id2, err4 := strconv.Atoi(row[4])
		if err1 != nil || err2 != nil || err3 != nil || err4 != nil {
			return nil, fmt.Errorf("row %d: round, court and team columns must be numbers", i+1)
		}

		games = append(games, ParsedMatch{
			Row:   i + 1,
			Round: round,
			Court: court,
			Team1: ParsedTeam{ID: id1, Players: parsePlayers(row[3])},
			Team2: ParsedTeam{ID: id2, Players: parsePlayers(row[5])},
		})
	}

	return games, nil
}

// parsePlayers splits "A + B" into its names. Only the spaced separator
// written by Team.Names counts, so a "+" inside a name is kept.
func parsePlayers(cell string) []string {
	var players []string
	for _, p := range strings.Split(cell, " + ") {
		if p = strings.TrimSpace(p); p != "" {
			players = append(players, p)
		}
	}
	return players
}

// checkTeams requires two distinct players per team and the same players
// every time a team id appears.
func checkTeams(games []ParsedMatch) []Violation {
	var violations []Violation
	rosters := make(map[int]string)

	for _, g := range games {
		for _, t := range []ParsedTeam{g.Team1, g.Team2} {
			if len(t.Players) != 2 || t.Players[0] == t.Players[1] {
				violations = append(violations, Violation{
					Row:     g.Row,
					Type:    "error",
					Message: fmt.Sprintf("team %d must have exactly 2 distinct players, has %v", t.ID, t.Players),
				})
				continue
			}
			names := strings.Join(t.Players, " + ")
			if prev, ok := rosters[t.ID]; ok && prev != names {
				violations = append(violations, Violation{
					Row:     g.Row,
					Type:    "error",
					Message: fmt.Sprintf("team %d listed as %s, earlier as %s", t.ID, names, prev),
				})
			}
			rosters[t.ID] = names
		}
		if g.Team1.ID == g.Team2.ID {
			violations = append(violations, Violation{
				Row:     g.Row,
				Type:    "error",
				Message: fmt.Sprintf("round %d court %d: team %d plays itself", g.Round, g.Court, g.Team1.ID),
			})
		}
	}
	return violations
}

func checkRounds(cfg *config.Config, games []ParsedMatch) []Violation {
	var violations []Violation
	perRound := make(map[int]int)
	type roundCourt struct{ round, court int }
	courts := make(map[roundCourt]int)

	for _, g := range games {
		if g.Round < 1 || g.Round > schedule.Rounds {
			violations = append(violations, Violation{
				Row:     g.Row,
				Type:    "error",
				Message: fmt.Sprintf("round %d outside 1-%d", g.Round, schedule.Rounds),
			})
		}
		if g.Court < 1 || g.Court > cfg.Courts {
			violations = append(violations, Violation{
				Row:     g.Row,
				Type:    "error",
				Message: fmt.Sprintf("round %d uses court %d, only %d configured", g.Round, g.Court, cfg.Courts),
			})
		}
		perRound[g.Round]++
		rc := roundCourt{g.Round, g.Court}
		if prev, ok := courts[rc]; ok {
			violations = append(violations, Violation{
				Row:     g.Row,
				Type:    "error",
				Message: fmt.Sprintf("round %d court %d already used on row %d", g.Round, g.Court, prev),
			})
		}
		courts[rc] = g.Row
	}

	for _, round := range sortedKeys(perRound) {
		if n := perRound[round]; n > cfg.Courts {
			violations = append(violations, Violation{
				Type:    "error",
				Message: fmt.Sprintf("round %d has %d matches on %d courts", round, n, cfg.Courts),
			})
		}
	}
	return violations
}

func checkDoubleBooking(games []ParsedMatch) []Violation {
	type roundPlayer struct {
		round  int
		player string
	}
	first := make(map[roundPlayer]int)

	var violations []Violation
	for _, g := range games {
		for _, p := range append(append([]string(nil), g.Team1.Players...), g.Team2.Players...) {
			rp := roundPlayer{g.Round, p}
			if row, ok := first[rp]; ok {
				violations = append(violations, Violation{
					Row:     g.Row,
					Type:    "error",
					Message: fmt.Sprintf("%s plays twice in round %d (rows %d and %d)", p, g.Round, row, g.Row),
				})
				continue
			}
			first[rp] = g.Row
		}
	}
	return violations
}

func checkRepeatedMatchups(games []ParsedMatch) []Violation {
	type matchup struct{ a, b int }
	counts := make(map[matchup]int)
	for _, g := range games {
		a, b := g.Team1.ID, g.Team2.ID
		if a > b {
			a, b = b, a
		}
		counts[matchup{a, b}]++
	}

	var violations []Violation
	for mk, n := range counts {
		if n > 1 {
			violations = append(violations, Violation{
				Type:    "warning",
				Message: fmt.Sprintf("team %d vs team %d played %d times", mk.a, mk.b, n),
			})
		}
	}
	sort.Slice(violations, func(i, j int) bool {
		return violations[i].Message < violations[j].Message
	})
	return violations
}

// checkPlayBalance warns when a team's play count is more than one away
// from an even share of the scheduled plays.
func checkPlayBalance(games []ParsedMatch) []Violation {
	counts := make(map[int]int)
	for _, g := range games {
		counts[g.Team1.ID]++
		counts[g.Team2.ID]++
	}
	if len(counts) == 0 {
		return nil
	}

	total := 2 * len(games)
	ideal := total / len(counts)
	extra := total % len(counts)

	var violations []Violation
	for _, id := range sortedKeys(counts) {
		lo, hi := ideal, ideal
		if extra > 0 {
			hi++
		}
		if n := counts[id]; n < lo-1 || n > hi+1 {
			violations = append(violations, Violation{
				Type:    "warning",
				Message: fmt.Sprintf("team %d played %d times (even share %d)", id, n, ideal),
			})
		}
	}
	return violations
}

func sortedKeys(m map[int]int) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
