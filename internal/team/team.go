package team

import (
	"fmt"
	"math/rand"
)

// Player is identified by name alone.
type Player = string

// Key identifies a team by its ordered player pair. Teams are never
// reordered after Build, so the creating order is always the lookup order.
type Key struct {
	First, Second Player
}

// Team is a fixed pair of players. ID is assigned by Build in roster order.
type Team struct {
	ID      int
	Players [2]Player
}

func (t Team) Key() Key {
	return Key{t.Players[0], t.Players[1]}
}

// Has reports whether p plays on this team.
func (t Team) Has(p Player) bool {
	return t.Players[0] == p || t.Players[1] == p
}

// SharesPlayer reports whether the two teams have a player in common.
func (t Team) SharesPlayer(other Team) bool {
	return other.Has(t.Players[0]) || other.Has(t.Players[1])
}

// Names renders the players as "A + B".
func (t Team) Names() string {
	return t.Players[0] + " + " + t.Players[1]
}

func (t Team) String() string {
	return fmt.Sprintf("Team %d (%s)", t.ID, t.Names())
}

// Shuffle returns a uniformly shuffled copy of items (Fisher–Yates).
// The input slice is left untouched.
func Shuffle[T any](rng *rand.Rand, items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	for i := len(out) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}
