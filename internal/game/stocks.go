package game

import (
	"math/rand/v2"

	"github.com/millionaire-tycoon/tycoon/internal/market"
)

const (
	initialPriceMin = 50.0
	initialPriceMax = 200.0
	volatilityMin   = 0.08
	volatilityMax   = 0.25
	minStockPrice   = 1.0 // daily walk never drops a price below this
)

// Stock is one tradeable symbol's price state.
type Stock struct {
	Symbol     string
	Price      float64
	PrevPrice  float64 // 0 until the first daily update
	Volatility float64
}

// PortfolioEntry tracks a holding of one symbol. AvgCost is the weighted
// mean purchase price; sells reduce Quantity and never touch AvgCost.
type PortfolioEntry struct {
	Quantity int
	AvgCost  float64
}

// StockMarket owns per-symbol price state, the region grouping, and the
// player's portfolio.
type StockMarket struct {
	regions   []market.RegionDef
	stocks    map[string]*Stock
	current   int
	portfolio map[string]*PortfolioEntry
	rng       *rand.Rand
}

// NewStockMarket rolls initial prices for every symbol in every region.
func NewStockMarket(regions []market.RegionDef, rng *rand.Rand) *StockMarket {
	m := &StockMarket{regions: regions, rng: rng}
	m.Reset()
	return m
}

// Reset rerolls every price and volatility and clears the portfolio.
func (m *StockMarket) Reset() {
	m.stocks = make(map[string]*Stock)
	m.portfolio = make(map[string]*PortfolioEntry)
	m.current = 0
	for _, r := range m.regions {
		for _, sym := range r.Symbols {
			m.stocks[sym] = &Stock{
				Symbol:     sym,
				Price:      round2(uniform(m.rng, initialPriceMin, initialPriceMax)),
				Volatility: uniform(m.rng, volatilityMin, volatilityMax),
			}
		}
	}
}

// AdvanceDay applies one volatility-scaled random walk step to every
// symbol across all regions.
func (m *StockMarket) AdvanceDay() {
	for _, s := range m.stocks {
		s.PrevPrice = s.Price
		s.Price = round2(s.Price + s.Price*s.Volatility*uniform(m.rng, -1, 1))
		if s.Price < minStockPrice {
			s.Price = minStockPrice
		}
	}
}

// Quote returns the price state for a symbol.
func (m *StockMarket) Quote(symbol string) (*Stock, bool) {
	s, ok := m.stocks[symbol]
	return s, ok
}

// Buy debits the wallet and folds the purchase into the holding's
// weighted-average cost.
func (m *StockMarket) Buy(w *Wallet, symbol string, qty int) error {
	if qty <= 0 {
		return ErrInvalidQuantity
	}
	s, ok := m.stocks[symbol]
	if !ok {
		return ErrInvalidState
	}
	cost := round2(s.Price * float64(qty))
	if !w.CanAfford(cost) {
		return ErrInsufficientFunds
	}
	w.Debit(cost)

	entry := m.portfolio[symbol]
	if entry == nil {
		entry = &PortfolioEntry{}
		m.portfolio[symbol] = entry
	}
	total := entry.AvgCost*float64(entry.Quantity) + s.Price*float64(qty)
	entry.Quantity += qty
	entry.AvgCost = round2(total / float64(entry.Quantity))
	return nil
}

// Sell credits the wallet at the current price. The entry is removed
// entirely when its quantity reaches zero.
func (m *StockMarket) Sell(w *Wallet, symbol string, qty int) error {
	if qty <= 0 {
		return ErrInvalidQuantity
	}
	s, ok := m.stocks[symbol]
	if !ok {
		return ErrInvalidState
	}
	entry := m.portfolio[symbol]
	if entry == nil || entry.Quantity < qty {
		return ErrInsufficientShares
	}
	w.Credit(round2(s.Price * float64(qty)))
	entry.Quantity -= qty
	if entry.Quantity == 0 {
		delete(m.portfolio, symbol)
	}
	return nil
}

// MoveRegion switches the active region. Moving costs money, is not
// allowed on day 1, and the caller consumes a day afterwards.
func (m *StockMarket) MoveRegion(w *Wallet, index int, cost float64) error {
	if index < 0 || index >= len(m.regions) || index == m.current {
		return ErrInvalidState
	}
	if w.Day <= 1 {
		return ErrInvalidState
	}
	if !w.CanAfford(cost) {
		return ErrInsufficientFunds
	}
	w.Debit(cost)
	m.current = index
	return nil
}

// CurrentRegion returns the active region definition.
func (m *StockMarket) CurrentRegion() market.RegionDef { return m.regions[m.current] }

// CurrentIndex returns the active region index.
func (m *StockMarket) CurrentIndex() int { return m.current }

// Regions returns all region definitions in order.
func (m *StockMarket) Regions() []market.RegionDef { return m.regions }

// List returns the active region's stocks in definition order.
func (m *StockMarket) List() []*Stock {
	region := m.regions[m.current]
	out := make([]*Stock, 0, len(region.Symbols))
	for _, sym := range region.Symbols {
		out = append(out, m.stocks[sym])
	}
	return out
}

// Holding returns the portfolio entry for a symbol, or nil.
func (m *StockMarket) Holding(symbol string) *PortfolioEntry {
	return m.portfolio[symbol]
}

// PortfolioView is one row of the player's holdings.
type PortfolioView struct {
	Symbol   string
	Quantity int
	AvgCost  float64
	Price    float64
}

// Portfolio returns every holding, grouped by region definition order.
func (m *StockMarket) Portfolio() []PortfolioView {
	var out []PortfolioView
	for _, r := range m.regions {
		for _, sym := range r.Symbols {
			if entry := m.portfolio[sym]; entry != nil {
				out = append(out, PortfolioView{
					Symbol:   sym,
					Quantity: entry.Quantity,
					AvgCost:  entry.AvgCost,
					Price:    m.stocks[sym].Price,
				})
			}
		}
	}
	return out
}

// HoldingsValue returns the portfolio valued at current prices.
func (m *StockMarket) HoldingsValue() float64 {
	total := 0.0
	for sym, entry := range m.portfolio {
		total += m.stocks[sym].Price * float64(entry.Quantity)
	}
	return round2(total)
}
