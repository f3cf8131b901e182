package schedule

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/derekprior/doubles/internal/config"
	"github.com/derekprior/doubles/internal/strategy"
	"github.com/derekprior/doubles/internal/team"
)

// Rounds is the number of rounds in every tournament.
const Rounds = 10

// ErrInsufficientPlayers is returned when fewer than two teams can be formed.
var ErrInsufficientPlayers = errors.New("not enough players for doubles: at least 4 players are needed")

// Tournament is the state of one generation run. Generate owns it while
// building; callers treat the returned value as read-only.
type Tournament struct {
	Rounds      []strategy.Round
	Teams       []team.Team // in id order
	Targets     map[team.Key]int
	FixedGroups [][]string
	Courts      int
	Males       []string
	Females     []string
	Strategy    string
}

// Generate validates cfg, builds the teams and schedules all rounds.
// cfg is not modified. Nothing is built when validation fails.
func Generate(in *config.Config, rng *rand.Rand) (*Tournament, error) {
	cfg := *in
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	strat, err := strategy.Get(cfg.Strategy)
	if err != nil {
		return nil, err
	}

	teams := team.Build(rng, cfg.Players.Male, cfg.Players.Female, cfg.FixedGroups)
	if len(teams) < 2 {
		return nil, fmt.Errorf("%w (formed %d team(s) from %d players)", ErrInsufficientPlayers, len(teams), cfg.PlayerCount())
	}

	t := &Tournament{
		Teams:       teams,
		Targets:     Targets(teams, cfg.Courts),
		FixedGroups: cfg.FixedGroups,
		Courts:      cfg.Courts,
		Males:       cfg.Players.Male,
		Females:     cfg.Players.Female,
		Strategy:    cfg.Strategy,
	}

	for n := 1; n <= Rounds; n++ {
		round := strat.ScheduleRound(rng, strategy.Request{
			Number:  n,
			Courts:  t.Courts,
			Teams:   t.Teams,
			Targets: t.Targets,
			History: t.History(),
		})
		t.Rounds = append(t.Rounds, round)
	}

	return t, nil
}

// TotalMatches is the number of matches the courts allow over all rounds.
func TotalMatches(courts int) int {
	return Rounds * courts
}

// Targets splits the tournament's matches evenly across teams. The first
// teams in id order absorb the remainder, one extra match each.
func Targets(teams []team.Team, courts int) map[team.Key]int {
	targets := make(map[team.Key]int, len(teams))
	if len(teams) == 0 {
		return targets
	}
	total := TotalMatches(courts)
	ideal, extra := total/len(teams), total%len(teams)
	for i, t := range teams {
		targets[t.Key()] = ideal
		if i < extra {
			targets[t.Key()]++
		}
	}
	return targets
}

// History exposes the recorded rounds for play-count and head-to-head queries.
func (t *Tournament) History() strategy.History {
	return strategy.History{Rounds: t.Rounds}
}

func (t *Tournament) PlayCount(tm team.Team) int {
	return t.History().PlayCount(tm)
}

func (t *Tournament) MatchCount(a, b team.Team) int {
	return t.History().MatchCount(a, b)
}

// ScheduledMatches counts the matches actually placed, which can be fewer
// than TotalMatches when rounds come up short.
func (t *Tournament) ScheduledMatches() int {
	n := 0
	for _, r := range t.Rounds {
		n += len(r.Matches)
	}
	return n
}

// TeamByID returns the team with the given id.
func (t *Tournament) TeamByID(id int) (team.Team, bool) {
	for _, tm := range t.Teams {
		if tm.ID == id {
			return tm, true
		}
	}
	return team.Team{}, false
}
