package main

import (
	"fmt"

	"github.com/millionaire-tycoon/tycoon/internal/game"
	"github.com/millionaire-tycoon/tycoon/internal/render"
)

func (g *Game) button(x, y, w int, text string, col uint8, action func()) uiButton {
	return uiButton{
		Button: render.Button{X: x, Y: y, W: w, H: 3, Text: text, Color: col},
		action: action,
	}
}

func (g *Game) backButton(y int) uiButton {
	return g.button(2, y, 12, "Back", render.ColorDarkGray, func() { g.session.Back() })
}

// buildButtons returns the clickable regions for the active screen.
// Commands pull quantities from the typed amount; the session reports
// bad input through the message log, so actions ignore the returned
// errors here.
func (g *Game) buildButtons() []uiButton {
	s := g.session
	switch s.Screen() {
	case game.ScreenMainMenu:
		return []uiButton{
			g.button(4, 10, 24, "Stock Market", render.ColorGreen, func() { s.Navigate(game.ScreenStockMarket) }),
			g.button(4, 14, 24, "Black Market", render.ColorPurple, func() { s.Navigate(game.ScreenBlackMarket) }),
			g.button(4, 18, 24, "Gambling Hall", render.ColorRed, func() { s.Navigate(game.ScreenGamblingMenu) }),
			g.button(4, 22, 24, "Wallet", render.ColorBlue, func() { s.Navigate(game.ScreenWallet) }),
			g.button(4, 28, 24, "New Game", render.ColorBrown, func() { s.NewGame() }),
		}

	case game.ScreenStockMarket:
		var out []uiButton
		for i, st := range s.Stocks.List() {
			sym := st.Symbol
			out = append(out, g.button(2, 8+i*3, 10, sym, render.ColorBlue, func() {
				s.Navigate(game.ScreenBuySellStock)
				s.SelectedSymbol = sym
			}))
		}
		out = append(out,
			g.button(32, 8, 18, "End Day", render.ColorOrange, func() { s.AdvanceDay() }),
			g.button(32, 12, 18, "Move Region", render.ColorCyan, func() { s.Navigate(game.ScreenMoveRegion) }),
			g.backButton(34),
		)
		return out

	case game.ScreenMoveRegion:
		var out []uiButton
		for i, r := range s.Stocks.Regions() {
			idx := i
			out = append(out, g.button(4, 8+i*4, 28, r.Name, render.ColorCyan, func() { s.MoveRegion(idx) }))
		}
		out = append(out, g.backButton(8+len(s.Stocks.Regions())*4+2))
		return out

	case game.ScreenBuySellStock:
		return []uiButton{
			g.button(4, 16, 14, "Buy", render.ColorGreen, func() {
				qty, _ := s.InputQuantity()
				s.BuyStock(s.SelectedSymbol, qty)
			}),
			g.button(22, 16, 14, "Sell", render.ColorRed, func() {
				qty, _ := s.InputQuantity()
				s.SellStock(s.SelectedSymbol, qty)
			}),
			g.backButton(34),
		}

	case game.ScreenWallet:
		return []uiButton{g.backButton(40)}

	case game.ScreenBlackMarket:
		var out []uiButton
		for i, q := range s.Underworld.Listing() {
			name := q.Name
			out = append(out, g.button(2, 7+i*3, 22, name, render.ColorPurple, func() { s.SelectedItem = name }))
		}
		out = append(out,
			g.button(40, 7, 12, "Buy", render.ColorGreen, func() {
				qty, _ := s.InputQuantity()
				s.BuyItem(s.SelectedItem, qty)
			}),
			g.button(40, 11, 12, "Sell", render.ColorRed, func() {
				qty, _ := s.InputQuantity()
				s.SellItem(s.SelectedItem, qty)
			}),
		)
		// Travel buttons in two columns under the listing.
		for i, loc := range g.defs.Locations {
			dest := loc.Name
			x := 2 + (i%2)*26
			y := 27 + (i/2)*3
			out = append(out, g.button(x, y, 24, fmt.Sprintf("%s $%.0f", dest, loc.TravelCost), render.ColorCyan, func() { s.Travel(dest) }))
		}
		out = append(out, g.backButton(38))
		return out

	case game.ScreenGamblingMenu:
		return []uiButton{
			g.button(4, 10, 24, "Roulette", render.ColorRed, func() { s.Navigate(game.ScreenRoulette) }),
			g.button(4, 14, 24, "Dice", render.ColorGreen, func() { s.Navigate(game.ScreenDice) }),
			g.button(4, 18, 24, "High-Low", render.ColorBlue, func() { s.Navigate(game.ScreenHighLow) }),
			g.backButton(26),
		}

	case game.ScreenRoulette:
		return []uiButton{
			g.button(4, 16, 14, "Red x2", render.ColorRed, func() { g.spinRoulette(game.BetRed) }),
			g.button(20, 16, 14, "Black x2", render.ColorDarkGray, func() { g.spinRoulette(game.BetBlack) }),
			g.button(36, 16, 14, "Green x35", render.ColorGreen, func() { g.spinRoulette(game.BetGreen) }),
			g.backButton(34),
		}

	case game.ScreenDice:
		return []uiButton{
			g.button(4, 16, 14, "Under 7 x2", render.ColorGreen, func() { g.rollDice(game.BetUnder7) }),
			g.button(20, 16, 14, "Seven x5", render.ColorGold, func() { g.rollDice(game.BetExact7) }),
			g.button(36, 16, 14, "Over 7 x2", render.ColorGreen, func() { g.rollDice(game.BetOver7) }),
			g.backButton(34),
		}

	case game.ScreenHighLow:
		return []uiButton{
			g.button(4, 16, 14, "Deal", render.ColorBlue, func() { s.DealHighLow() }),
			g.button(20, 16, 14, "Higher", render.ColorGreen, func() { g.chooseHighLow(game.ChoiceHigh) }),
			g.button(36, 16, 14, "Lower", render.ColorRed, func() { g.chooseHighLow(game.ChoiceLow) }),
			g.backButton(34),
		}

	case game.ScreenDrugDen:
		return []uiButton{g.backButton(20)}
	}
	return nil
}

func (g *Game) spinRoulette(bet game.RouletteBet) {
	amount, _ := g.session.InputAmount()
	g.session.PlaceRouletteBet(amount, bet)
}

func (g *Game) rollDice(bet game.DiceBet) {
	amount, _ := g.session.InputAmount()
	g.session.RollDice(amount, bet)
}

func (g *Game) chooseHighLow(choice game.HighLowChoice) {
	amount, _ := g.session.InputAmount()
	g.session.ChooseHighLowSide(amount, choice)
}

// drawScreen paints the content panel for the active screen. Buttons
// draw themselves afterwards.
func (g *Game) drawScreen() {
	buf := g.buffer
	s := g.session

	switch s.Screen() {
	case game.ScreenMainMenu:
		buf.WriteCentered(0, 3, contentW, "M I L L I O N A I R E   T Y C O O N", render.ColorGold, render.ColorBackground)
		buf.WriteCentered(0, 5, contentW, "Start broke. Get rich. Try not to lose it.", render.ColorLightGray, render.ColorBackground)
		buf.WriteString(4, 34, fmt.Sprintf("Net worth: $%.2f", s.NetWorth()), render.ColorLightGreen, render.ColorBackground)

	case game.ScreenStockMarket:
		region := s.Stocks.CurrentRegion()
		buf.WriteString(2, 2, fmt.Sprintf("STOCK MARKET: %s", region.Name), render.ColorGold, render.ColorBackground)
		buf.WriteString(2, 4, "Click a symbol to trade it.", render.ColorLightGray, render.ColorBackground)
		buf.WriteString(14, 6, "Price      Change    Owned", render.ColorDarkGray, render.ColorBackground)
		for i, st := range s.Stocks.List() {
			y := 9 + i*3
			change, col := priceChange(st)
			owned := 0
			if h := s.Stocks.Holding(st.Symbol); h != nil {
				owned = h.Quantity
			}
			buf.WriteString(14, y, fmt.Sprintf("$%-9.2f %-9s %d", st.Price, change, owned), col, render.ColorBackground)
		}

	case game.ScreenMoveRegion:
		buf.WriteString(4, 2, "DEPARTURE LOUNGE", render.ColorGold, render.ColorBackground)
		buf.WriteString(4, 4, fmt.Sprintf("Relocating costs $%.0f and takes a day.", s.MoveCost()), render.ColorLightGray, render.ColorBackground)
		current := s.Stocks.CurrentRegion().Name
		for i, r := range s.Stocks.Regions() {
			if r.Name == current {
				buf.WriteString(34, 9+i*4, "(you are here)", render.ColorDarkGray, render.ColorBackground)
			}
		}

	case game.ScreenBuySellStock:
		buf.WriteString(4, 2, "TRADING DESK", render.ColorGold, render.ColorBackground)
		if st, ok := s.Stocks.Quote(s.SelectedSymbol); ok {
			change, col := priceChange(st)
			buf.WriteString(4, 5, fmt.Sprintf("%s  $%.2f  %s", st.Symbol, st.Price, change), col, render.ColorBackground)
			if h := s.Stocks.Holding(st.Symbol); h != nil {
				buf.WriteString(4, 7, fmt.Sprintf("You own %d at avg $%.2f", h.Quantity, h.AvgCost), render.ColorWhite, render.ColorBackground)
			} else {
				buf.WriteString(4, 7, "You own no shares.", render.ColorLightGray, render.ColorBackground)
			}
		} else {
			buf.WriteString(4, 5, "Pick a stock from the market board first.", render.ColorLightGray, render.ColorBackground)
		}
		g.drawAmountLine(4, 12, "Shares")

	case game.ScreenWallet:
		g.drawWallet()

	case game.ScreenBlackMarket:
		buf.WriteString(2, 2, fmt.Sprintf("BLACK MARKET: %s", s.Underworld.Location()), render.ColorGold, render.ColorBackground)
		buf.WriteString(26, 5, "Price     Owned", render.ColorDarkGray, render.ColorBackground)
		for i, q := range s.Underworld.Listing() {
			y := 8 + i*3
			col := uint8(render.ColorWhite)
			if q.Name == s.SelectedItem {
				col = render.ColorGold
			}
			buf.WriteString(26, y, fmt.Sprintf("$%-8.2f %d", q.Price, q.Owned), col, render.ColorBackground)
		}
		g.drawAmountLine(2, 23, "Units")
		buf.WriteString(2, 25, "TRAVEL", render.ColorCyan, render.ColorBackground)

	case game.ScreenGamblingMenu:
		buf.WriteCentered(0, 4, contentW, "THE GAMBLING HALL", render.ColorGold, render.ColorBackground)
		buf.WriteCentered(0, 6, contentW, "Three tables. The house is patient.", render.ColorLightGray, render.ColorBackground)

	case game.ScreenRoulette:
		buf.WriteString(4, 2, "ROULETTE", render.ColorGold, render.ColorBackground)
		if s.Roulette.Spinning() {
			buf.WriteString(4, 5, "The wheel is spinning...", render.ColorOrange, render.ColorBackground)
		} else if s.Roulette.LastOutcome >= 0 {
			buf.WriteString(4, 5, fmt.Sprintf("Last spin: %d (%s)", s.Roulette.LastOutcome, slotColor(s.Roulette.LastOutcome)), render.ColorWhite, render.ColorBackground)
		} else {
			buf.WriteString(4, 5, "The wheel is still. Place a bet.", render.ColorLightGray, render.ColorBackground)
		}
		g.drawAmountLine(4, 10, "Stake $")

	case game.ScreenDice:
		buf.WriteString(4, 2, "DICE", render.ColorGold, render.ColorBackground)
		if s.Dice.Rolling() {
			buf.WriteString(4, 5, "The dice are tumbling...", render.ColorOrange, render.ColorBackground)
		} else if s.Dice.Die1 > 0 {
			buf.WriteString(4, 5, fmt.Sprintf("Last roll: %d + %d = %d", s.Dice.Die1, s.Dice.Die2, s.Dice.Die1+s.Dice.Die2), render.ColorWhite, render.ColorBackground)
		} else {
			buf.WriteString(4, 5, "Call the sum of two dice.", render.ColorLightGray, render.ColorBackground)
		}
		g.drawAmountLine(4, 10, "Stake $")

	case game.ScreenHighLow:
		buf.WriteString(4, 2, "HIGH-LOW", render.ColorGold, render.ColorBackground)
		hl := s.HighLow
		switch {
		case hl.Revealing():
			buf.WriteString(4, 5, fmt.Sprintf("Showing: %s", hl.First), render.ColorWhite, render.ColorBackground)
			buf.WriteString(4, 7, "The dealer flips the next card...", render.ColorOrange, render.ColorBackground)
		case hl.Revealed && hl.Second != nil:
			buf.WriteString(4, 5, fmt.Sprintf("%s, then the %s.", hl.First, hl.Second), render.ColorWhite, render.ColorBackground)
			buf.WriteString(4, 7, "Deal again?", render.ColorLightGray, render.ColorBackground)
		case hl.First != nil:
			buf.WriteString(4, 5, fmt.Sprintf("Showing: %s", hl.First), render.ColorWhite, render.ColorBackground)
			buf.WriteString(4, 7, "Higher or lower? Ties go to the house.", render.ColorLightGray, render.ColorBackground)
		default:
			buf.WriteString(4, 5, "Deal a card to start.", render.ColorLightGray, render.ColorBackground)
		}
		g.drawAmountLine(4, 10, "Stake $")

	case game.ScreenDrugDen:
		buf.WriteString(4, 2, "THE DEN", render.ColorGold, render.ColorBackground)
		buf.WriteString(4, 5, "A heavy door, a heavier bouncer.", render.ColorLightGray, render.ColorBackground)
		buf.WriteString(4, 6, "\"Not tonight, friend.\"", render.ColorLightGray, render.ColorBackground)
	}
}

// drawWallet renders the full net-worth breakdown.
func (g *Game) drawWallet() {
	buf := g.buffer
	s := g.session
	w := s.WalletSnapshot()
	buf.WriteString(4, 2, "WALLET", render.ColorGold, render.ColorBackground)
	buf.WriteString(4, 4, fmt.Sprintf("Cash: $%.2f   Day %d", w.Money, w.Day), render.ColorLightGreen, render.ColorBackground)

	y := 7
	buf.WriteString(4, y, "Stocks:", render.ColorCyan, render.ColorBackground)
	y++
	port := s.Stocks.Portfolio()
	if len(port) == 0 {
		buf.WriteString(6, y, "none", render.ColorDarkGray, render.ColorBackground)
		y++
	}
	for _, p := range port {
		gain := (p.Price - p.AvgCost) * float64(p.Quantity)
		col := uint8(render.ColorLightGreen)
		if gain < 0 {
			col = render.ColorLightRed
		}
		buf.WriteString(6, y, fmt.Sprintf("%-6s %4d @ $%-8.2f now $%-8.2f %+.2f", p.Symbol, p.Quantity, p.AvgCost, p.Price, gain), col, render.ColorBackground)
		y++
	}

	y += 2
	buf.WriteString(4, y, "Contraband:", render.ColorPurple, render.ColorBackground)
	y++
	any := false
	for _, q := range s.Underworld.Listing() {
		if q.Owned == 0 {
			continue
		}
		any = true
		buf.WriteString(6, y, fmt.Sprintf("%-20s %4d  street $%.2f", q.Name, q.Owned, q.Price), render.ColorWhite, render.ColorBackground)
		y++
	}
	if !any {
		buf.WriteString(6, y, "none", render.ColorDarkGray, render.ColorBackground)
		y++
	}

	y += 2
	buf.WriteString(4, y, fmt.Sprintf("Net worth: $%.2f", s.NetWorth()), render.ColorGold, render.ColorBackground)
}

// drawAmountLine shows the typed amount next to its label.
func (g *Game) drawAmountLine(x, y int, label string) {
	text := g.session.AmountInput
	col := uint8(render.ColorWhite)
	if text == "" {
		text = "type an amount"
		col = render.ColorDarkGray
	}
	g.buffer.WriteString(x, y, fmt.Sprintf("%s: %s", label, text), col, render.ColorBackground)
}

func priceChange(st *game.Stock) (string, uint8) {
	if st.PrevPrice == 0 {
		return "new", render.ColorLightGray
	}
	delta := st.Price - st.PrevPrice
	if delta >= 0 {
		return fmt.Sprintf("+%.2f", delta), render.ColorLightGreen
	}
	return fmt.Sprintf("%.2f", delta), render.ColorLightRed
}

func slotColor(n int) string {
	switch {
	case n == 0:
		return "green"
	case n%2 == 0:
		return "red"
	default:
		return "black"
	}
}
