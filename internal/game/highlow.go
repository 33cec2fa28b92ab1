package game

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// Card is a playing card. Ranks run 2-14 with ace high.
type Card struct {
	Rank int
	Suit int // index into suitNames
}

var suitNames = [4]string{"Spades", "Hearts", "Diamonds", "Clubs"}

// RankLabel returns the short rank name ("2".."10", "J", "Q", "K", "A").
func (c Card) RankLabel() string {
	switch c.Rank {
	case 11:
		return "J"
	case 12:
		return "Q"
	case 13:
		return "K"
	case 14:
		return "A"
	default:
		return fmt.Sprintf("%d", c.Rank)
	}
}

func (c Card) String() string {
	return fmt.Sprintf("%s of %s", c.RankLabel(), suitNames[c.Suit])
}

// HighLowChoice is the player's call on the second card.
type HighLowChoice uint8

const (
	ChoiceHigh HighLowChoice = iota
	ChoiceLow
)

func (c HighLowChoice) String() string {
	if c == ChoiceHigh {
		return "higher"
	}
	return "lower"
}

const highLowMultiplier = 2.0

// HighLow deals a face-up card, takes a higher/lower wager, and reveals
// a second card after a delay. A rank tie always loses.
type HighLow struct {
	First    *Card
	Second   *Card
	Revealed bool
	stake    float64
	choice   HighLowChoice
	reveal   timer
	rng      *rand.Rand
}

func NewHighLow(rng *rand.Rand) *HighLow {
	return &HighLow{rng: rng}
}

// Reset clears the table and any pending reveal.
func (h *HighLow) Reset() {
	h.First, h.Second = nil, nil
	h.Revealed = false
	h.stake = 0
	h.reveal.stop()
}

// Revealing reports whether a wager is still resolving.
func (h *HighLow) Revealing() bool { return h.reveal.pending() }

func (h *HighLow) draw() Card {
	return Card{Rank: 2 + h.rng.IntN(13), Suit: h.rng.IntN(4)}
}

// Deal draws the first card and resets the reveal state. A new deal is
// not allowed while a wager is pending.
func (h *HighLow) Deal() (Card, error) {
	if h.reveal.pending() {
		return Card{}, ErrInvalidState
	}
	c := h.draw()
	h.First = &c
	h.Second = nil
	h.Revealed = false
	return c, nil
}

// Choose places a stake on the second card being strictly higher or
// lower. Only legal while a first card is showing and unrevealed.
func (h *HighLow) Choose(w *Wallet, now time.Time, delay time.Duration, amount float64, choice HighLowChoice) error {
	if h.First == nil || h.Revealed {
		return ErrInvalidState
	}
	if err := placeStake(w, &h.reveal, amount); err != nil {
		return err
	}
	h.stake = amount
	h.choice = choice
	h.reveal.arm(now, delay)
	return nil
}

// HighLowResult is the resolved outcome of one wager.
type HighLowResult struct {
	First  Card
	Second Card
	Choice HighLowChoice
	Stake  float64
	Payout float64 // 0 on a loss
}

// Resolve reveals a due second card, crediting any winnings. It returns
// nil while the reveal is still pending or no wager is placed.
func (h *HighLow) Resolve(w *Wallet, now time.Time) *HighLowResult {
	if !h.reveal.due(now) {
		return nil
	}
	second := h.draw()
	h.Second = &second
	h.Revealed = true

	res := &HighLowResult{First: *h.First, Second: second, Choice: h.choice, Stake: h.stake}
	res.Payout = payout(w, h.stake, highLowOutcome(*h.First, second, h.choice))
	h.stake = 0
	return res
}

// highLowOutcome returns the payout multiplier. Strict comparison only;
// an exact rank tie loses regardless of choice.
func highLowOutcome(first, second Card, choice HighLowChoice) float64 {
	switch {
	case choice == ChoiceHigh && second.Rank > first.Rank:
		return highLowMultiplier
	case choice == ChoiceLow && second.Rank < first.Rank:
		return highLowMultiplier
	default:
		return 0
	}
}
