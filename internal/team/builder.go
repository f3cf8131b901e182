package team

import "math/rand"

// Build forms the roster. Fixed groups become teams first, in the order they
// were declared, and their players are taken out of both pools. The rest are
// shuffled and paired male/female, then male doubles, then female doubles.
// A single leftover player joins the first one-player team if there is one
// and is dropped otherwise. Only two-player teams survive; their order is
// shuffled and ids 1..N are assigned in that order.
func Build(rng *rand.Rand, males, females []Player, fixedGroups [][]Player) []Team {
	var groups [][]Player
	inFixed := make(map[Player]bool)
	for _, g := range fixedGroups {
		groups = append(groups, append([]Player(nil), g...))
		for _, p := range g {
			inFixed[p] = true
		}
	}

	remainingMales := Shuffle(rng, withoutPlayers(males, inFixed))
	remainingFemales := Shuffle(rng, withoutPlayers(females, inFixed))

	for len(remainingMales) > 0 && len(remainingFemales) > 0 {
		groups = append(groups, []Player{remainingMales[0], remainingFemales[0]})
		remainingMales = remainingMales[1:]
		remainingFemales = remainingFemales[1:]
	}

	for len(remainingMales) >= 2 {
		groups = append(groups, []Player{remainingMales[0], remainingMales[1]})
		remainingMales = remainingMales[2:]
	}
	for len(remainingFemales) >= 2 {
		groups = append(groups, []Player{remainingFemales[0], remainingFemales[1]})
		remainingFemales = remainingFemales[2:]
	}

	// Mixed pairing empties one pool, so at most one player is left over.
	var leftover []Player
	leftover = append(leftover, remainingMales...)
	leftover = append(leftover, remainingFemales...)
	if len(leftover) == 1 {
		for i, g := range groups {
			if len(g) == 1 {
				groups[i] = append(g, leftover[0])
				break
			}
		}
	}

	var pairs [][2]Player
	for _, g := range groups {
		if len(g) == 2 {
			pairs = append(pairs, [2]Player{g[0], g[1]})
		}
	}

	pairs = Shuffle(rng, pairs)
	teams := make([]Team, len(pairs))
	for i, p := range pairs {
		teams[i] = Team{ID: i + 1, Players: p}
	}
	return teams
}

func withoutPlayers(pool []Player, exclude map[Player]bool) []Player {
	var out []Player
	for _, p := range pool {
		if !exclude[p] {
			out = append(out, p)
		}
	}
	return out
}
