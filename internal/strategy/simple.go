package strategy

import (
	"math"
	"math/rand"

	"github.com/derekprior/doubles/internal/team"
)

// Simple pairs the least-played team with the conflict-free team whose play
// count is closest to it. Ties go to the earlier team in sorted order.
type Simple struct{}

func (s *Simple) ScheduleRound(_ *rand.Rand, req Request) Round {
	round := Round{Number: req.Number}
	counts := playCounts(req)

	available := append([]team.Team(nil), req.Teams...)
	sortByCount(available, counts)

	for court := 1; court <= req.Courts; court++ {
		if len(available) < 2 {
			break
		}

		team1 := available[0]
		available = available[1:]

		best := -1
		minDiff := math.MaxInt
		for i, candidate := range available {
			if RoundHasConflict(round, Match{Team1: team1, Team2: candidate}) {
				continue
			}
			diff := abs(counts[team1.Key()] - counts[candidate.Key()])
			if diff < minDiff {
				minDiff = diff
				best = i
			}
		}
		// Nobody is conflict-free: take the next least-played team anyway.
		if best < 0 {
			best = 0
		}

		team2 := available[best]
		available = removeAt(available, best)

		round.Matches = append(round.Matches, Match{Court: court, Team1: team1, Team2: team2})
		counts[team1.Key()]++
		counts[team2.Key()]++

		sortByCount(available, counts)
	}

	return round
}
