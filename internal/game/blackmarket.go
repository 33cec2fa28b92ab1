package game

import (
	"math/rand/v2"

	"github.com/millionaire-tycoon/tycoon/internal/market"
)

const (
	minItemPrice  = 5.0 // regenerated prices never drop below this
	eventChance   = 0.20
	swingMin      = 0.10
	swingMax      = 0.30
	ambushLossMin = 100.0
	ambushLossMax = 500.0
	expenseMin    = 50.0
	expenseMax    = 300.0
)

// TravelEventKind identifies the random event that can fire on arrival.
type TravelEventKind uint8

const (
	EventNone TravelEventKind = iota
	EventAmbush
	EventPriceTip
	EventExpense
)

// TravelEvent describes what happened on the road, for the session to
// turn into messages.
type TravelEvent struct {
	Kind        TravelEventKind
	Loss        float64 // money lost to an ambush or expense
	Item        string  // item confiscated or discounted
	Confiscated int     // units taken in an ambush
}

// BlackMarket owns the per-location contraband prices and the player's
// inventory. Prices are regenerated wholesale, never walked.
type BlackMarket struct {
	defs      *market.Defs
	prices    map[string]float64
	inventory map[string]int
	current   string
	rng       *rand.Rand
}

// NewBlackMarket starts at the default location with fresh prices and an
// empty inventory.
func NewBlackMarket(defs *market.Defs, rng *rand.Rand) *BlackMarket {
	b := &BlackMarket{defs: defs, rng: rng}
	b.Reset()
	return b
}

// Reset returns to the default location, zeroes the inventory, and
// rolls fresh prices.
func (b *BlackMarket) Reset() {
	b.current = b.defs.DefaultLocation()
	b.prices = make(map[string]float64, len(b.defs.Items))
	b.inventory = make(map[string]int, len(b.defs.Items))
	for _, it := range b.defs.Items {
		b.inventory[it.Name] = 0
	}
	b.GeneratePrices()
}

// GeneratePrices rerolls every item's price for the current location:
// a base draw from the item's tier, the location's modifier band when one
// is declared, then an independent 10-30% swing either way.
func (b *BlackMarket) GeneratePrices() {
	for _, it := range b.defs.Items {
		p := uniform(b.rng, it.MinPrice, it.MaxPrice)
		if mod := b.defs.Modifier(it.Name, b.current); mod != nil {
			p *= uniform(b.rng, mod.Min, mod.Max)
		}
		swing := uniform(b.rng, swingMin, swingMax)
		if b.rng.IntN(2) == 0 {
			swing = -swing
		}
		p *= 1 + swing
		if p < minItemPrice {
			p = minItemPrice
		}
		b.prices[it.Name] = round2(p)
	}
}

// Travel moves to a new location, regenerates its prices, and fires a
// random event 20% of the time.
func (b *BlackMarket) Travel(w *Wallet, dest string) (TravelEvent, error) {
	if dest == b.current {
		return TravelEvent{}, ErrInvalidState
	}
	loc := b.defs.Location(dest)
	if loc == nil {
		return TravelEvent{}, ErrInvalidState
	}
	if !w.CanAfford(loc.TravelCost) {
		return TravelEvent{}, ErrInsufficientFunds
	}
	w.Debit(loc.TravelCost)
	b.current = dest
	b.GeneratePrices()

	if b.rng.Float64() >= eventChance {
		return TravelEvent{Kind: EventNone}, nil
	}
	switch b.rng.IntN(3) {
	case 0:
		return b.ambush(w), nil
	case 1:
		return b.priceTip(), nil
	default:
		return b.expense(w), nil
	}
}

// ambush takes money, and half the time also confiscates 1-5 units of a
// randomly chosen owned item.
func (b *BlackMarket) ambush(w *Wallet) TravelEvent {
	ev := TravelEvent{Kind: EventAmbush}
	loss := round2(uniform(b.rng, ambushLossMin, ambushLossMax))
	if loss > w.Money {
		loss = w.Money // they can't take what you don't have
	}
	w.Debit(loss)
	ev.Loss = loss

	if b.rng.IntN(2) == 0 {
		return ev
	}
	owned := b.ownedItems()
	if len(owned) == 0 {
		return ev
	}
	item := owned[b.rng.IntN(len(owned))]
	taken := 1 + b.rng.IntN(5)
	if taken > b.inventory[item] {
		taken = b.inventory[item]
	}
	b.inventory[item] -= taken
	ev.Item = item
	ev.Confiscated = taken
	return ev
}

// priceTip discounts one random item to 40-70% of its current price.
func (b *BlackMarket) priceTip() TravelEvent {
	it := b.defs.Items[b.rng.IntN(len(b.defs.Items))]
	discounted := round2(b.prices[it.Name] * uniform(b.rng, 0.40, 0.70))
	if discounted < minItemPrice {
		discounted = minItemPrice
	}
	b.prices[it.Name] = discounted
	return TravelEvent{Kind: EventPriceTip, Item: it.Name}
}

// expense is a flat random loss.
func (b *BlackMarket) expense(w *Wallet) TravelEvent {
	loss := round2(uniform(b.rng, expenseMin, expenseMax))
	if loss > w.Money {
		loss = w.Money
	}
	w.Debit(loss)
	return TravelEvent{Kind: EventExpense, Loss: loss}
}

func (b *BlackMarket) ownedItems() []string {
	var owned []string
	for _, it := range b.defs.Items {
		if b.inventory[it.Name] > 0 {
			owned = append(owned, it.Name)
		}
	}
	return owned
}

// Buy debits the wallet at the item's current price. Inventory is a
// plain counter; there is no cost basis tracking here.
func (b *BlackMarket) Buy(w *Wallet, item string, qty int) error {
	if qty <= 0 {
		return ErrInvalidQuantity
	}
	price, ok := b.prices[item]
	if !ok {
		return ErrInvalidState
	}
	cost := round2(price * float64(qty))
	if !w.CanAfford(cost) {
		return ErrInsufficientFunds
	}
	w.Debit(cost)
	b.inventory[item] += qty
	return nil
}

// Sell credits the wallet at the item's current price.
func (b *BlackMarket) Sell(w *Wallet, item string, qty int) error {
	if qty <= 0 {
		return ErrInvalidQuantity
	}
	price, ok := b.prices[item]
	if !ok {
		return ErrInvalidState
	}
	if b.inventory[item] < qty {
		return ErrInsufficientInventory
	}
	w.Credit(round2(price * float64(qty)))
	b.inventory[item] -= qty
	return nil
}

// Location returns the current black-market location name.
func (b *BlackMarket) Location() string { return b.current }

// Price returns the current price of an item.
func (b *BlackMarket) Price(item string) (float64, bool) {
	p, ok := b.prices[item]
	return p, ok
}

// Count returns the owned quantity of an item.
func (b *BlackMarket) Count(item string) int { return b.inventory[item] }

// ItemQuote is one row of the market listing.
type ItemQuote struct {
	Name  string
	Price float64
	Owned int
}

// Listing returns every item's current price and owned count, in
// definition order.
func (b *BlackMarket) Listing() []ItemQuote {
	out := make([]ItemQuote, 0, len(b.defs.Items))
	for _, it := range b.defs.Items {
		out = append(out, ItemQuote{Name: it.Name, Price: b.prices[it.Name], Owned: b.inventory[it.Name]})
	}
	return out
}

// StreetValue returns the inventory valued at current local prices.
func (b *BlackMarket) StreetValue() float64 {
	total := 0.0
	for name, count := range b.inventory {
		total += b.prices[name] * float64(count)
	}
	return round2(total)
}
