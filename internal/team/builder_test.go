package team

import (
	"math/rand"
	"testing"
)

func isMale(p Player, males []Player) bool {
	for _, m := range males {
		if m == p {
			return true
		}
	}
	return false
}

func TestBuildMixedTeams(t *testing.T) {
	males := []Player{"M1", "M2", "M3", "M4"}
	females := []Player{"F1", "F2", "F3", "F4"}
	teams := Build(rand.New(rand.NewSource(3)), males, females, nil)

	if len(teams) != 4 {
		t.Fatalf("got %d teams, want 4", len(teams))
	}

	t.Run("each team is one male and one female", func(t *testing.T) {
		for _, tm := range teams {
			if !isMale(tm.Players[0], males) || isMale(tm.Players[1], males) {
				t.Errorf("%s is not a mixed pair", tm)
			}
		}
	})

	t.Run("every player used once", func(t *testing.T) {
		seen := make(map[Player]int)
		for _, tm := range teams {
			seen[tm.Players[0]]++
			seen[tm.Players[1]]++
		}
		for _, p := range append(append([]Player(nil), males...), females...) {
			if seen[p] != 1 {
				t.Errorf("%s used %d times", p, seen[p])
			}
		}
	})

	t.Run("ids are sequential", func(t *testing.T) {
		for i, tm := range teams {
			if tm.ID != i+1 {
				t.Errorf("teams[%d].ID = %d, want %d", i, tm.ID, i+1)
			}
		}
	})
}

func TestBuildFixedGroups(t *testing.T) {
	teams := Build(rand.New(rand.NewSource(9)),
		[]Player{"A", "C"}, []Player{"B", "D"}, [][]Player{{"A", "B"}})

	if len(teams) != 2 {
		t.Fatalf("got %d teams, want 2: %v", len(teams), teams)
	}

	var fixed, rest int
	for _, tm := range teams {
		switch tm.Key() {
		case Key{"A", "B"}:
			fixed++
		case Key{"C", "D"}:
			rest++
		default:
			t.Errorf("unexpected team %s", tm)
		}
	}
	if fixed != 1 || rest != 1 {
		t.Errorf("fixed=%d rest=%d, want 1 and 1", fixed, rest)
	}
}

func TestBuildSameSexDoubles(t *testing.T) {
	males := []Player{"M1", "M2", "M3", "M4", "M5", "M6"}
	females := []Player{"F1"}
	teams := Build(rand.New(rand.NewSource(5)), males, females, nil)

	// One mixed pair, two male doubles, one male dropped.
	if len(teams) != 3 {
		t.Fatalf("got %d teams, want 3", len(teams))
	}
	mixed, maleDoubles := 0, 0
	for _, tm := range teams {
		switch {
		case isMale(tm.Players[0], males) && isMale(tm.Players[1], males):
			maleDoubles++
		case tm.Has("F1"):
			mixed++
		}
	}
	if mixed != 1 || maleDoubles != 2 {
		t.Errorf("mixed=%d maleDoubles=%d, want 1 and 2", mixed, maleDoubles)
	}
}

func TestBuildFemaleDoubles(t *testing.T) {
	teams := Build(rand.New(rand.NewSource(5)), nil, []Player{"F1", "F2", "F3", "F4"}, nil)
	if len(teams) != 2 {
		t.Fatalf("got %d teams, want 2", len(teams))
	}
}

func TestBuildLeftoverJoinsSinglePlayerGroup(t *testing.T) {
	// "Solo" is declared alone; the odd male fills the slot.
	teams := Build(rand.New(rand.NewSource(11)),
		[]Player{"M1", "M2", "M3"}, nil, [][]Player{{"Solo"}})

	if len(teams) != 2 {
		t.Fatalf("got %d teams, want 2: %v", len(teams), teams)
	}
	found := false
	for _, tm := range teams {
		if tm.Players[0] == "Solo" {
			found = true
			if !isMale(tm.Players[1], []Player{"M1", "M2", "M3"}) {
				t.Errorf("Solo paired with %q", tm.Players[1])
			}
		}
	}
	if !found {
		t.Error("Solo's group not completed")
	}
}

func TestBuildDropsOversizedGroups(t *testing.T) {
	teams := Build(rand.New(rand.NewSource(2)),
		[]Player{"A", "B", "C", "E", "G"}, []Player{"D", "F"}, [][]Player{{"A", "B", "C"}})

	for _, tm := range teams {
		if tm.Has("A") || tm.Has("B") || tm.Has("C") {
			t.Errorf("player from a three-player group reused in %s", tm)
		}
	}
	if len(teams) != 2 {
		t.Errorf("got %d teams, want 2", len(teams))
	}
}

func TestBuildInsufficient(t *testing.T) {
	teams := Build(rand.New(rand.NewSource(1)), []Player{"M1"}, []Player{"F1"}, nil)
	if len(teams) != 1 {
		t.Errorf("got %d teams, want 1", len(teams))
	}
	if teams := Build(rand.New(rand.NewSource(1)), []Player{"M1"}, nil, nil); len(teams) != 0 {
		t.Errorf("single player formed %d teams", len(teams))
	}
}

func TestBuildDoesNotMutateInputs(t *testing.T) {
	males := []Player{"M1", "M2"}
	groups := [][]Player{{"Solo"}}
	Build(rand.New(rand.NewSource(1)), males, []Player{"F1"}, groups)
	if males[0] != "M1" || males[1] != "M2" {
		t.Errorf("males mutated: %v", males)
	}
	if len(groups[0]) != 1 {
		t.Errorf("fixed group mutated: %v", groups[0])
	}
}
