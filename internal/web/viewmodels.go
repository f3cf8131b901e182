package web

import (
	"github.com/derekprior/doubles/internal/config"
	"github.com/derekprior/doubles/internal/report"
	"github.com/derekprior/doubles/internal/schedule"
)

type BaseView struct {
	Title string
}

// FormView echoes the submitted form back so a failed request can be fixed.
type FormView struct {
	Males       string
	Females     string
	FixedGroups string
	Courts      int
	MaxCourts   int
	Strategy    string
	Strategies  []string
	Error       string
}

type HomeView struct {
	BaseView
	Form FormView
}

type RoundView struct {
	Number  int
	Matches []string
}

type ScheduleView struct {
	BaseView
	ID      string
	Courts  int
	Rounds  []RoundView
	Stats   []schedule.TeamStat
	Summary schedule.Summary
}

func defaultForm() FormView {
	return FormView{
		Courts:     2,
		MaxCourts:  config.MaxCourts,
		Strategy:   config.DefaultStrategy,
		Strategies: config.Strategies,
	}
}

func newScheduleView(snap Snapshot) ScheduleView {
	t := snap.Tournament
	view := ScheduleView{
		BaseView: BaseView{Title: "Schedule"},
		ID:       snap.ID,
		Courts:   t.Courts,
		Stats:    t.TeamStats(),
		Summary:  t.Summary(),
	}
	for _, r := range t.Rounds {
		rv := RoundView{Number: r.Number}
		for _, m := range r.Matches {
			rv.Matches = append(rv.Matches, report.MatchLine(m))
		}
		view.Rounds = append(view.Rounds, rv)
	}
	return view
}
