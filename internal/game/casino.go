package game

// All three casino engines share one wager contract: the stake is
// validated and debited up front, resolution is armed at T and fires at
// T+delay on the session tick, and a pending wager of the same kind
// rejects new ones. Winnings credit stake times the payout multiplier;
// a lost stake is simply not returned.

// placeStake validates a wager and debits it from the wallet.
func placeStake(w *Wallet, pending *timer, amount float64) error {
	if pending.pending() {
		return ErrInvalidBet
	}
	if amount <= 0 {
		return ErrInvalidQuantity
	}
	if !w.CanAfford(amount) {
		return ErrInsufficientFunds
	}
	w.Debit(amount)
	return nil
}

// payout credits a winning stake. A multiplier of 0 means a loss.
func payout(w *Wallet, stake, multiplier float64) float64 {
	if multiplier <= 0 {
		return 0
	}
	won := round2(stake * multiplier)
	w.Credit(won)
	return won
}
