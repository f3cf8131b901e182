package schedule

import (
	"sort"

	"github.com/derekprior/doubles/internal/strategy"
	"github.com/derekprior/doubles/internal/team"
)

// Status classifies how far a team's play count is from its target.
type Status int

const (
	Balanced Status = iota
	MinorDeviation
	NeedsAdjustment
)

func (s Status) String() string {
	switch s {
	case Balanced:
		return "balanced"
	case MinorDeviation:
		return "minor deviation"
	default:
		return "needs adjustment"
	}
}

// StatusFor classifies a signed play-count difference.
func StatusFor(difference int) Status {
	switch {
	case difference == 0:
		return Balanced
	case difference >= -1 && difference <= 1:
		return MinorDeviation
	default:
		return NeedsAdjustment
	}
}

// TeamStat holds per-team schedule statistics.
type TeamStat struct {
	Team       team.Team
	Played     int
	Target     int
	Difference int // Played - Target
	Status     Status
}

// Summary holds tournament-wide statistics.
type Summary struct {
	TotalMatches int // matches the courts allow
	Scheduled    int // matches actually placed
	Teams        int
	IdealPerTeam int
	Unique       int // pairs that met exactly once
	Repeated     int // pairs that met more than once
	Unplayed     int // pairs that never met
}

// TeamStats returns one entry per team, fewest plays first. Teams with the
// same count keep id order.
func (t *Tournament) TeamStats() []TeamStat {
	h := t.History()
	stats := make([]TeamStat, len(t.Teams))
	for i, tm := range t.Teams {
		played := h.PlayCount(tm)
		target := t.Targets[tm.Key()]
		diff := played - target
		stats[i] = TeamStat{
			Team:       tm,
			Played:     played,
			Target:     target,
			Difference: diff,
			Status:     StatusFor(diff),
		}
	}
	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].Played < stats[j].Played
	})
	return stats
}

// Summary computes the tournament-wide statistics.
func (t *Tournament) Summary() Summary {
	s := Summary{
		TotalMatches: TotalMatches(t.Courts),
		Scheduled:    t.ScheduledMatches(),
		Teams:        len(t.Teams),
	}
	if s.Teams > 0 {
		s.IdealPerTeam = s.TotalMatches / s.Teams
	}

	for _, met := range t.Pairings() {
		switch {
		case met.Count == 0:
			s.Unplayed++
		case met.Count == 1:
			s.Unique++
		default:
			s.Repeated++
		}
	}
	return s
}

// Pairing is the head-to-head count for one unordered pair of teams.
type Pairing struct {
	A, B  team.Team
	Count int
}

// Pairings lists every unordered pair of teams with how often they met,
// in id order.
func (t *Tournament) Pairings() []Pairing {
	counts := make(map[[2]team.Key]int)
	for _, r := range t.Rounds {
		for _, m := range r.Matches {
			counts[pairKey(m)]++
		}
	}

	var pairs []Pairing
	for i, a := range t.Teams {
		for _, b := range t.Teams[i+1:] {
			n := counts[[2]team.Key{a.Key(), b.Key()}] + counts[[2]team.Key{b.Key(), a.Key()}]
			pairs = append(pairs, Pairing{A: a, B: b, Count: n})
		}
	}
	return pairs
}

func pairKey(m strategy.Match) [2]team.Key {
	return [2]team.Key{m.Team1.Key(), m.Team2.Key()}
}
