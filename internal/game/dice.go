package game

import (
	"math/rand/v2"
	"time"
)

// DiceBet is the player's call on the sum of two dice.
type DiceBet uint8

const (
	BetUnder7 DiceBet = iota
	BetExact7
	BetOver7
)

func (b DiceBet) String() string {
	switch b {
	case BetUnder7:
		return "under 7"
	case BetExact7:
		return "exactly 7"
	default:
		return "over 7"
	}
}

const (
	underOverMultiplier = 2.0
	exactMultiplier     = 5.0
)

// Dice resolves under/exact/over-7 wagers on two six-sided dice.
type Dice struct {
	Die1, Die2 int // 0 until the first roll completes
	stake      float64
	bet        DiceBet
	roll       timer
	rng        *rand.Rand
}

func NewDice(rng *rand.Rand) *Dice {
	return &Dice{rng: rng}
}

// Reset clears the table and any pending roll.
func (d *Dice) Reset() {
	d.Die1, d.Die2 = 0, 0
	d.stake = 0
	d.roll.stop()
}

// Rolling reports whether a roll is still resolving.
func (d *Dice) Rolling() bool { return d.roll.pending() }

// Roll places a stake. The amount is debited immediately and the dice
// land after the roll delay.
func (d *Dice) Roll(w *Wallet, now time.Time, delay time.Duration, amount float64, bet DiceBet) error {
	if err := placeStake(w, &d.roll, amount); err != nil {
		return err
	}
	d.stake = amount
	d.bet = bet
	d.roll.arm(now, delay)
	return nil
}

// DiceResult is the resolved outcome of one roll.
type DiceResult struct {
	Die1, Die2 int
	Sum        int
	Bet        DiceBet
	Stake      float64
	Payout     float64 // 0 on a loss
}

// Resolve completes a due roll, crediting any winnings. It returns nil
// while the dice are still tumbling or no roll is pending.
func (d *Dice) Resolve(w *Wallet, now time.Time) *DiceResult {
	if !d.roll.due(now) {
		return nil
	}
	d.Die1 = 1 + d.rng.IntN(6)
	d.Die2 = 1 + d.rng.IntN(6)
	sum := d.Die1 + d.Die2
	res := &DiceResult{Die1: d.Die1, Die2: d.Die2, Sum: sum, Bet: d.bet, Stake: d.stake}
	res.Payout = payout(w, d.stake, diceMultiplier(sum, d.bet))
	d.stake = 0
	return res
}

func diceMultiplier(sum int, bet DiceBet) float64 {
	switch bet {
	case BetUnder7:
		if sum < 7 {
			return underOverMultiplier
		}
	case BetExact7:
		if sum == 7 {
			return exactMultiplier
		}
	case BetOver7:
		if sum > 7 {
			return underOverMultiplier
		}
	}
	return 0
}
