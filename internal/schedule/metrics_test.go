package schedule

import (
	"testing"

	"github.com/derekprior/doubles/internal/strategy"
	"github.com/derekprior/doubles/internal/team"
)

func metricsTournament() *Tournament {
	a := team.Team{ID: 1, Players: [2]team.Player{"A1", "A2"}}
	b := team.Team{ID: 2, Players: [2]team.Player{"B1", "B2"}}
	c := team.Team{ID: 3, Players: [2]team.Player{"C1", "C2"}}
	d := team.Team{ID: 4, Players: [2]team.Player{"D1", "D2"}}
	teams := []team.Team{a, b, c, d}
	return &Tournament{
		Teams:   teams,
		Targets: Targets(teams, 1),
		Courts:  1,
		Rounds: []strategy.Round{
			{Number: 1, Matches: []strategy.Match{{Court: 1, Team1: a, Team2: b}}},
			{Number: 2, Matches: []strategy.Match{{Court: 1, Team1: b, Team2: a}}},
			{Number: 3, Matches: []strategy.Match{{Court: 1, Team1: a, Team2: c}}},
		},
	}
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		diff int
		want Status
	}{
		{0, Balanced},
		{1, MinorDeviation},
		{-1, MinorDeviation},
		{2, NeedsAdjustment},
		{-5, NeedsAdjustment},
	}
	for _, tt := range tests {
		if got := StatusFor(tt.diff); got != tt.want {
			t.Errorf("StatusFor(%d) = %s, want %s", tt.diff, got, tt.want)
		}
	}
}

func TestTeamStats(t *testing.T) {
	stats := metricsTournament().TeamStats()
	// Targets for 10 matches over 4 teams: 3, 3, 2, 2.
	// Plays: team 1 = 3, team 2 = 2, team 3 = 1, team 4 = 0.
	wantIDs := []int{4, 3, 2, 1}
	wantPlayed := []int{0, 1, 2, 3}
	wantStatus := []Status{NeedsAdjustment, MinorDeviation, MinorDeviation, Balanced}
	if len(stats) != 4 {
		t.Fatalf("got %d stats, want 4", len(stats))
	}
	for i, s := range stats {
		if s.Team.ID != wantIDs[i] || s.Played != wantPlayed[i] || s.Status != wantStatus[i] {
			t.Errorf("stats[%d] = team %d played %d %s, want team %d played %d %s",
				i, s.Team.ID, s.Played, s.Status, wantIDs[i], wantPlayed[i], wantStatus[i])
		}
		if s.Difference != s.Played-s.Target {
			t.Errorf("team %d difference = %d, want %d", s.Team.ID, s.Difference, s.Played-s.Target)
		}
	}
}

func TestSummary(t *testing.T) {
	s := metricsTournament().Summary()
	want := Summary{
		TotalMatches: 10,
		Scheduled:    3,
		Teams:        4,
		IdealPerTeam: 2,
		Unique:       1, // 1-3
		Repeated:     1, // 1-2 in both court orders
		Unplayed:     4, // 1-4, 2-3, 2-4, 3-4
	}
	if s != want {
		t.Errorf("Summary() = %+v, want %+v", s, want)
	}
}

func TestPairings(t *testing.T) {
	pairs := metricsTournament().Pairings()
	if len(pairs) != 6 {
		t.Fatalf("got %d pairings, want 6", len(pairs))
	}
	first := pairs[0]
	if first.A.ID != 1 || first.B.ID != 2 || first.Count != 2 {
		t.Errorf("pairs[0] = %d vs %d x%d, want 1 vs 2 x2", first.A.ID, first.B.ID, first.Count)
	}
}
