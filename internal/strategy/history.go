package strategy

import "github.com/derekprior/doubles/internal/team"

// Match is one contest on one court. No result is tracked.
type Match struct {
	Court int
	Team1 team.Team
	Team2 team.Team
}

// Involves reports whether t plays in the match.
func (m Match) Involves(t team.Team) bool {
	return m.Team1.Key() == t.Key() || m.Team2.Key() == t.Key()
}

// Pairs reports whether the match is a and b, in either court order.
func (m Match) Pairs(a, b team.Team) bool {
	k1, k2 := m.Team1.Key(), m.Team2.Key()
	return (k1 == a.Key() && k2 == b.Key()) || (k1 == b.Key() && k2 == a.Key())
}

// Round holds up to one match per court.
type Round struct {
	Number  int
	Matches []Match
}

// Players returns every player already placed in the round.
func (r Round) Players() map[team.Player]bool {
	seen := make(map[team.Player]bool)
	for _, m := range r.Matches {
		for _, p := range m.Team1.Players {
			seen[p] = true
		}
		for _, p := range m.Team2.Players {
			seen[p] = true
		}
	}
	return seen
}

// History answers questions about the rounds recorded so far.
type History struct {
	Rounds []Round
}

// PlayCount returns how many recorded matches t played in.
func (h History) PlayCount(t team.Team) int {
	count := 0
	for _, r := range h.Rounds {
		for _, m := range r.Matches {
			if m.Involves(t) {
				count++
			}
		}
	}
	return count
}

// MatchCount returns how many times a and b have met.
func (h History) MatchCount(a, b team.Team) int {
	count := 0
	for _, r := range h.Rounds {
		for _, m := range r.Matches {
			if m.Pairs(a, b) {
				count++
			}
		}
	}
	return count
}

// RoundHasConflict reports whether any player of m already plays in round.
func RoundHasConflict(round Round, m Match) bool {
	seen := round.Players()
	for _, p := range m.Team1.Players {
		if seen[p] {
			return true
		}
	}
	for _, p := range m.Team2.Players {
		if seen[p] {
			return true
		}
	}
	return false
}
