package rewards

import "math/rand"

// MinReward is the floor applied to every reward draw so a dig never
// settles for a zero amount.
const MinReward = 0.0001

// Base returns the reward magnitude base for a symbol. The draw is
// uniform over [0.01, base+0.01) before flooring and rounding; magnitude
// is keyed by symbol, not by pool.
func Base(symbol string) float64 {
	switch symbol {
	case "ORE":
		return 18
	case "GEM":
		return 12
	default:
		return 8
	}
}

// Roll draws a reward amount for the given symbol.
func Roll(r *rand.Rand, symbol string) float64 {
	amount := Round4(r.Float64()*Base(symbol) + 0.01)
	if amount < MinReward {
		amount = MinReward
	}
	return amount
}
