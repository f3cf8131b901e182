package strategy

import (
	"math"
	"math/rand"
	"sort"

	"github.com/derekprior/doubles/internal/team"
)

// tieWindow is the deficit spread treated as a tie when ordering teams.
const tieWindow = 1

// Balanced schedules toward each team's target match count. Teams with the
// largest deficit (target minus plays) go first and are matched with the
// conflict-free opponent they have met least, preferring the pair with the
// largest combined deficit. Remaining ties are broken at random.
//
// A single court is handled by a stricter variant that always seats the
// least-played team; see singleCourt.
type Balanced struct{}

func (b *Balanced) ScheduleRound(rng *rand.Rand, req Request) Round {
	counts := playCounts(req)
	if req.Courts == 1 {
		return singleCourt(req, counts)
	}

	round := Round{Number: req.Number}
	deficits := make(map[team.Key]int, len(req.Teams))
	updateDeficits := func() {
		for _, t := range req.Teams {
			deficits[t.Key()] = req.Targets[t.Key()] - counts[t.Key()]
		}
	}
	updateDeficits()

	available := append([]team.Team(nil), req.Teams...)
	prioritize(rng, available, deficits)

	for court := 1; court <= req.Courts; court++ {
		if len(available) < 2 {
			break
		}

		team1 := available[0]
		available = available[1:]

		var best []int
		bestMet := math.MaxInt
		bestScore := math.MinInt
		for i, candidate := range available {
			if RoundHasConflict(round, Match{Team1: team1, Team2: candidate}) {
				continue
			}
			met := req.History.MatchCount(team1, candidate)
			score := deficits[team1.Key()] + deficits[candidate.Key()]
			switch {
			case met < bestMet, met == bestMet && score > bestScore:
				bestMet, bestScore = met, score
				best = []int{i}
			case met == bestMet && score == bestScore:
				best = append(best, i)
			}
		}

		var pick int
		if len(best) > 0 {
			pick = best[rng.Intn(len(best))]
		} else {
			pick = rng.Intn(len(available))
		}

		team2 := available[pick]
		available = removeAt(available, pick)

		round.Matches = append(round.Matches, Match{Court: court, Team1: team1, Team2: team2})
		counts[team1.Key()]++
		counts[team2.Key()]++

		updateDeficits()
		prioritize(rng, available, deficits)
	}

	return round
}

// prioritize orders teams by deficit, highest first, then shuffles each run
// of teams whose deficit is within tieWindow of the run's leader. Court 1
// gets the same ordering; the whole list is never shuffled.
func prioritize(rng *rand.Rand, teams []team.Team, deficits map[team.Key]int) {
	sort.SliceStable(teams, func(i, j int) bool {
		return deficits[teams[i].Key()] > deficits[teams[j].Key()]
	})

	for start := 0; start < len(teams); {
		lead := deficits[teams[start].Key()]
		end := start + 1
		for end < len(teams) && lead-deficits[teams[end].Key()] <= tieWindow {
			end++
		}
		copy(teams[start:end], team.Shuffle(rng, teams[start:end]))
		start = end
	}
}

// singleCourt seats the least-played team against the opponent it has met
// least, closest in play count on a tie. Earlier teams win remaining ties.
func singleCourt(req Request, counts map[team.Key]int) Round {
	round := Round{Number: req.Number}

	first := -1
	for i, t := range req.Teams {
		if first < 0 || counts[t.Key()] < counts[req.Teams[first].Key()] {
			first = i
		}
	}
	if first < 0 {
		return round
	}
	team1 := req.Teams[first]

	opponent := -1
	bestMet, bestDiff := math.MaxInt, math.MaxInt
	for i, t := range req.Teams {
		if i == first {
			continue
		}
		met := req.History.MatchCount(team1, t)
		diff := abs(counts[team1.Key()] - counts[t.Key()])
		if met < bestMet || (met == bestMet && diff < bestDiff) {
			bestMet, bestDiff = met, diff
			opponent = i
		}
	}
	if opponent < 0 {
		return round
	}

	round.Matches = append(round.Matches, Match{Court: 1, Team1: team1, Team2: req.Teams[opponent]})
	return round
}
