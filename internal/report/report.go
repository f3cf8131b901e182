package report

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/derekprior/doubles/internal/schedule"
	"github.com/derekprior/doubles/internal/strategy"
)

const title = "Badminton Doubles Schedule"

// Write renders the tournament as a plain-text report: every round's court
// assignments followed by the fairness statistics.
func Write(w io.Writer, t *schedule.Tournament) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "%s\n%s\n\n", title, strings.Repeat("=", 50))

	for _, r := range t.Rounds {
		fmt.Fprintf(bw, "Round %d\n%s\n", r.Number, strings.Repeat("-", 20))
		for _, m := range r.Matches {
			fmt.Fprintln(bw, MatchLine(m))
		}
		fmt.Fprintln(bw)
	}

	s := t.Summary()
	fmt.Fprintf(bw, "Team Statistics\n%s\n", strings.Repeat("-", 20))
	fmt.Fprintf(bw, "Total matches: %d | Teams: %d | Ideal per team: %d\n",
		s.TotalMatches, s.Teams, s.IdealPerTeam)
	fmt.Fprintf(bw, "Head-to-head: %d unique | %d repeated | %d never met\n\n",
		s.Unique, s.Repeated, s.Unplayed)

	for _, st := range t.TeamStats() {
		fmt.Fprintln(bw, StatLine(st))
	}

	return bw.Flush()
}

// MatchLine renders "Court 1: Team 3 (A + B) VS Team 1 (C + D)".
func MatchLine(m strategy.Match) string {
	return fmt.Sprintf("Court %d: %s VS %s", m.Court, m.Team1, m.Team2)
}

// StatLine renders one team's play count against its target.
func StatLine(st schedule.TeamStat) string {
	return fmt.Sprintf("%s: played %d (target %d, %+d) %s",
		st.Team, st.Played, st.Target, st.Difference, st.Status)
}
