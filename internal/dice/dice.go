// Package dice rolls polyhedral dice for game logic that needs chance
package dice

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"github.com/KirkDiggler/nightcaste/internal/errors"
)

// RollResult holds the individual dice and the total of a roll
type RollResult struct {
	Total    int
	Rolls    []int
	Bonus    int
	Count    int
	Sides    int
	RawTotal int
}

// Roll rolls count dice of size sides using rng and adds bonus
func Roll(rng *rand.Rand, count, sides, bonus int) (*RollResult, error) {
	if count < 1 {
		return nil, errors.InvalidArgument("invalid dice count")
	}

	if sides < 1 {
		return nil, errors.InvalidArgument("invalid dice size")
	}

	raw := 0
	out := make([]int, count)
	for i := 0; i < count; i++ {
		roll := rng.Intn(sides) + 1
		raw += roll
		out[i] = roll
	}

	return &RollResult{
		Total:    raw + bonus,
		Rolls:    out,
		Bonus:    bonus,
		Count:    count,
		Sides:    sides,
		RawTotal: raw,
	}, nil
}

// ParseNotation reads "NdS" or "NdS+B" into its count, sides and bonus
func ParseNotation(notation string) (count, sides, bonus int, err error) {
	dice := notation
	if a := strings.Split(notation, "+"); len(a) == 2 {
		bonus, err = strconv.Atoi(a[1])
		if err != nil {
			return 0, 0, 0, errors.InvalidArgument("invalid dice string")
		}
		dice = a[0]
	}

	parts := strings.Split(dice, "d")
	if len(parts) != 2 {
		return 0, 0, 0, errors.InvalidArgument("invalid dice string")
	}

	count, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, 0, errors.InvalidArgument("invalid dice string")
	}
	sides, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, 0, errors.InvalidArgument("invalid dice string")
	}
	return count, sides, bonus, nil
}

// RollString rolls dice written in notation such as "1d100" or "2d6+3"
func RollString(r Roller, notation string) (*RollResult, error) {
	count, sides, bonus, err := ParseNotation(notation)
	if err != nil {
		return nil, err
	}
	return r.Roll(count, sides, bonus)
}

func (r *RollResult) String() string {
	compact := strings.ReplaceAll(fmt.Sprintf("%v", r.Rolls), " ", "")
	return fmt.Sprintf("%dd%d: %s = %d", r.Count, r.Sides, compact, r.Total)
}
