package game

import (
	"math/rand/v2"
	"time"
)

// RouletteBet is the color the player backs.
type RouletteBet uint8

const (
	BetRed RouletteBet = iota
	BetBlack
	BetGreen
)

func (b RouletteBet) String() string {
	switch b {
	case BetRed:
		return "red"
	case BetBlack:
		return "black"
	default:
		return "green"
	}
}

const (
	rouletteSlots     = 37 // outcomes 0-36
	greenMultiplier   = 35.0
	colorMultiplier   = 2.0
)

// Roulette resolves color wagers against a 37-slot wheel. Green wins
// only on 0; red on nonzero even; black on nonzero odd.
type Roulette struct {
	LastOutcome int // -1 until the first spin completes
	stake       float64
	bet         RouletteBet
	spin        timer
	rng         *rand.Rand
}

func NewRoulette(rng *rand.Rand) *Roulette {
	return &Roulette{LastOutcome: -1, rng: rng}
}

// Reset clears the wheel and any pending spin.
func (r *Roulette) Reset() {
	r.LastOutcome = -1
	r.stake = 0
	r.spin.stop()
}

// Spinning reports whether a spin is still resolving.
func (r *Roulette) Spinning() bool { return r.spin.pending() }

// Spin places a stake on a color. The amount is debited immediately and
// the wheel resolves after the spin delay.
func (r *Roulette) Spin(w *Wallet, now time.Time, delay time.Duration, amount float64, bet RouletteBet) error {
	if err := placeStake(w, &r.spin, amount); err != nil {
		return err
	}
	r.stake = amount
	r.bet = bet
	r.spin.arm(now, delay)
	return nil
}

// RouletteResult is the resolved outcome of one spin.
type RouletteResult struct {
	Outcome int
	Bet     RouletteBet
	Stake   float64
	Payout  float64 // 0 on a loss
}

// Resolve completes a due spin, crediting any winnings. It returns nil
// while the wheel is still turning or no spin is pending.
func (r *Roulette) Resolve(w *Wallet, now time.Time) *RouletteResult {
	if !r.spin.due(now) {
		return nil
	}
	outcome := r.rng.IntN(rouletteSlots)
	r.LastOutcome = outcome
	res := &RouletteResult{Outcome: outcome, Bet: r.bet, Stake: r.stake}
	res.Payout = payout(w, r.stake, rouletteMultiplier(outcome, r.bet))
	r.stake = 0
	return res
}

func rouletteMultiplier(outcome int, bet RouletteBet) float64 {
	switch bet {
	case BetGreen:
		if outcome == 0 {
			return greenMultiplier
		}
	case BetRed:
		if outcome != 0 && outcome%2 == 0 {
			return colorMultiplier
		}
	case BetBlack:
		if outcome%2 == 1 {
			return colorMultiplier
		}
	}
	return 0
}
