package dice

import (
	"math/rand"
	"time"
)

// randomRoller implements Roller with its own random source
type randomRoller struct {
	rng *rand.Rand
}

// NewRandomRoller creates a new random dice roller seeded from the clock
func NewRandomRoller() Roller {
	return NewSeededRoller(time.Now().UnixNano())
}

// NewSeededRoller creates a roller whose sequence is fixed by seed
func NewSeededRoller(seed int64) Roller {
	return &randomRoller{rng: rand.New(rand.NewSource(seed))}
}

// Roll implements Roller.Roll
func (r *randomRoller) Roll(count, sides, bonus int) (*RollResult, error) {
	return Roll(r.rng, count, sides, bonus)
}
