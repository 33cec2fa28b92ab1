package game

// Wallet is the player's money, day counter, and current location label.
// It is owned by the session and mutated only through validated commands.
type Wallet struct {
	Money    float64
	Day      int
	Location string
}

// CanAfford reports whether the wallet covers the given amount.
func (w *Wallet) CanAfford(amount float64) bool { return w.Money >= amount }

// Debit removes money from the wallet. Callers validate affordability first.
func (w *Wallet) Debit(amount float64) { w.Money = round2(w.Money - amount) }

// Credit adds money to the wallet.
func (w *Wallet) Credit(amount float64) { w.Money = round2(w.Money + amount) }
