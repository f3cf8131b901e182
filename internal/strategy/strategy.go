package strategy

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/derekprior/doubles/internal/team"
)

// Request carries everything a strategy needs to fill one round.
type Request struct {
	Number  int
	Courts  int
	Teams   []team.Team
	Targets map[team.Key]int // tournament-wide target per team
	History History
}

// Strategy fills one round of matches. Implementations keep their working
// counters local; the caller commits the returned round.
type Strategy interface {
	ScheduleRound(rng *rand.Rand, req Request) Round
}

// Get returns a Strategy by name.
func Get(name string) (Strategy, error) {
	switch name {
	case "balanced":
		return &Balanced{}, nil
	case "simple":
		return &Simple{}, nil
	default:
		return nil, fmt.Errorf("unknown strategy: %q", name)
	}
}

func playCounts(req Request) map[team.Key]int {
	counts := make(map[team.Key]int, len(req.Teams))
	for _, t := range req.Teams {
		counts[t.Key()] = req.History.PlayCount(t)
	}
	return counts
}

func sortByCount(teams []team.Team, counts map[team.Key]int) {
	sort.SliceStable(teams, func(i, j int) bool {
		return counts[teams[i].Key()] < counts[teams[j].Key()]
	})
}

func removeAt(teams []team.Team, i int) []team.Team {
	return append(teams[:i], teams[i+1:]...)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
