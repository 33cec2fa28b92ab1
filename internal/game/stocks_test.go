package game

import (
	"errors"
	"math/rand/v2"
	"testing"
)

func testRNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b9))
}

func TestInitialPricesAndVolatilityInRange(t *testing.T) {
	m := NewStockMarket(testDefs().Regions, testRNG(1))
	for _, region := range m.Regions() {
		for _, sym := range region.Symbols {
			s, ok := m.Quote(sym)
			if !ok {
				t.Fatalf("missing quote for %s", sym)
			}
			if s.Price < 50 || s.Price > 200 {
				t.Errorf("%s initial price = %v, want [50, 200]", sym, s.Price)
			}
			if s.Volatility < 0.08 || s.Volatility > 0.25 {
				t.Errorf("%s volatility = %v, want [0.08, 0.25]", sym, s.Volatility)
			}
			if s.PrevPrice != 0 {
				t.Errorf("%s prev price = %v, want 0 sentinel", sym, s.PrevPrice)
			}
		}
	}
}

func TestAdvanceDayNeverDropsBelowFloor(t *testing.T) {
	m := NewStockMarket(testDefs().Regions, testRNG(2))
	// Force the worst case: rock-bottom price, maximum volatility.
	s, _ := m.Quote("GLDN")
	s.Price = 1.0
	s.Volatility = 0.25

	for day := 0; day < 500; day++ {
		m.AdvanceDay()
		for _, region := range m.Regions() {
			for _, sym := range region.Symbols {
				q, _ := m.Quote(sym)
				if q.Price < 1.0 {
					t.Fatalf("%s price = %v, below the 1.0 floor", sym, q.Price)
				}
				if q.PrevPrice == 0 {
					t.Fatalf("%s prev price unset after an update", sym)
				}
			}
		}
	}
}

func TestBuyValidation(t *testing.T) {
	m := NewStockMarket(testDefs().Regions, testRNG(3))
	w := &Wallet{Money: 100, Day: 1}
	s, _ := m.Quote("GLDN")
	s.Price = 60

	if err := m.Buy(w, "GLDN", 0); !errors.Is(err, ErrInvalidQuantity) {
		t.Errorf("qty 0 = %v, want ErrInvalidQuantity", err)
	}
	if err := m.Buy(w, "GLDN", -4); !errors.Is(err, ErrInvalidQuantity) {
		t.Errorf("qty -4 = %v, want ErrInvalidQuantity", err)
	}
	if err := m.Buy(w, "GLDN", 2); !errors.Is(err, ErrInsufficientFunds) {
		t.Errorf("too expensive = %v, want ErrInsufficientFunds", err)
	}
	if err := m.Buy(w, "NOPE", 1); !errors.Is(err, ErrInvalidState) {
		t.Errorf("unknown symbol = %v, want ErrInvalidState", err)
	}
	if w.Money != 100 {
		t.Errorf("failed buys must not move money, got %v", w.Money)
	}
	if m.Holding("GLDN") != nil {
		t.Error("failed buys must not create an entry")
	}
}

func TestWeightedAverageCost(t *testing.T) {
	m := NewStockMarket(testDefs().Regions, testRNG(4))
	w := &Wallet{Money: 10000, Day: 1}
	s, _ := m.Quote("GLDN")

	s.Price = 100
	if err := m.Buy(w, "GLDN", 2); err != nil {
		t.Fatalf("buy: %v", err)
	}
	s.Price = 160
	if err := m.Buy(w, "GLDN", 2); err != nil {
		t.Fatalf("buy: %v", err)
	}
	entry := m.Holding("GLDN")
	if entry.Quantity != 4 || entry.AvgCost != 130 {
		t.Fatalf("entry = %+v, want qty 4 avg 130", entry)
	}

	// Sells change quantity only, never the average cost.
	s.Price = 40
	if err := m.Sell(w, "GLDN", 1); err != nil {
		t.Fatalf("sell: %v", err)
	}
	entry = m.Holding("GLDN")
	if entry.Quantity != 3 || entry.AvgCost != 130 {
		t.Errorf("after sell entry = %+v, want qty 3 avg 130", entry)
	}
}

func TestSellValidation(t *testing.T) {
	m := NewStockMarket(testDefs().Regions, testRNG(5))
	w := &Wallet{Money: 1000, Day: 1}
	s, _ := m.Quote("GLDN")
	s.Price = 100
	if err := m.Buy(w, "GLDN", 3); err != nil {
		t.Fatalf("buy: %v", err)
	}

	if err := m.Sell(w, "GLDN", 0); !errors.Is(err, ErrInvalidQuantity) {
		t.Errorf("qty 0 = %v, want ErrInvalidQuantity", err)
	}
	if err := m.Sell(w, "GLDN", 4); !errors.Is(err, ErrInsufficientShares) {
		t.Errorf("overselling = %v, want ErrInsufficientShares", err)
	}
	if err := m.Sell(w, "NOVA", 1); !errors.Is(err, ErrInsufficientShares) {
		t.Errorf("selling unowned = %v, want ErrInsufficientShares", err)
	}
}

func TestNoZeroQuantityEntriesSurvive(t *testing.T) {
	m := NewStockMarket(testDefs().Regions, testRNG(6))
	w := &Wallet{Money: 100000, Day: 1}
	rng := testRNG(60)

	// A few hundred random valid trades, then drain every position.
	for i := 0; i < 300; i++ {
		sym := []string{"GLDN", "NOVA", "KTRA"}[rng.IntN(3)]
		qty := 1 + rng.IntN(5)
		if rng.IntN(2) == 0 {
			m.Buy(w, sym, qty)
		} else {
			m.Sell(w, sym, qty)
		}
		for _, v := range m.Portfolio() {
			if v.Quantity <= 0 {
				t.Fatalf("portfolio holds %s with quantity %d", v.Symbol, v.Quantity)
			}
		}
	}
	for _, v := range m.Portfolio() {
		if err := m.Sell(w, v.Symbol, v.Quantity); err != nil {
			t.Fatalf("drain %s: %v", v.Symbol, err)
		}
	}
	if len(m.Portfolio()) != 0 {
		t.Error("drained portfolio should be empty")
	}
}

func TestCashConservation(t *testing.T) {
	m := NewStockMarket(testDefs().Regions, testRNG(7))
	w := &Wallet{Money: 50000, Day: 1}
	rng := testRNG(70)
	start := w.Money
	flow := 0.0 // net cash spent on successful trades

	for i := 0; i < 500; i++ {
		sym := []string{"GLDN", "NOVA", "KTRA"}[rng.IntN(3)]
		qty := 1 + rng.IntN(10)
		q, _ := m.Quote(sym)
		if rng.IntN(2) == 0 {
			if m.Buy(w, sym, qty) == nil {
				flow += round2(q.Price * float64(qty))
			}
		} else {
			if m.Sell(w, sym, qty) == nil {
				flow -= round2(q.Price * float64(qty))
			}
		}
		if i%50 == 0 {
			m.AdvanceDay()
		}
	}
	if got, want := w.Money, round2(start-flow); got != want {
		t.Errorf("money = %v, want %v: cash created or destroyed outside trades", got, want)
	}
}

func TestListFollowsCurrentRegion(t *testing.T) {
	m := NewStockMarket(testDefs().Regions, testRNG(8))
	w := &Wallet{Money: 1000, Day: 2}

	list := m.List()
	if len(list) != 2 || list[0].Symbol != "GLDN" {
		t.Fatalf("region 0 list = %+v", list)
	}
	if err := m.MoveRegion(w, 1, 50); err != nil {
		t.Fatalf("move: %v", err)
	}
	list = m.List()
	if len(list) != 1 || list[0].Symbol != "KTRA" {
		t.Errorf("region 1 list = %+v", list)
	}
	if m.CurrentRegion().Name != "Tokyo Exchange" {
		t.Errorf("current region = %q", m.CurrentRegion().Name)
	}
}
