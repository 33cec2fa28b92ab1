package game

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
	"time"

	"github.com/millionaire-tycoon/tycoon/internal/config"
	"github.com/millionaire-tycoon/tycoon/internal/market"
)

// Screen identifies one screen of the single-canvas UI.
type Screen uint8

const (
	ScreenMainMenu Screen = iota
	ScreenStockMarket
	ScreenMoveRegion
	ScreenBuySellStock
	ScreenWallet
	ScreenBlackMarket
	ScreenGamblingMenu
	ScreenRoulette
	ScreenDice
	ScreenHighLow
	ScreenDrugDen // reserved sub-screen, no game behind it yet
	ScreenCount   // sentinel
)

var screenLabels = [ScreenCount]string{
	ScreenMainMenu:     "Main Menu",
	ScreenStockMarket:  "Stock Market",
	ScreenMoveRegion:   "Departure Lounge",
	ScreenBuySellStock: "Trading Desk",
	ScreenWallet:       "Wallet",
	ScreenBlackMarket:  "Black Market",
	ScreenGamblingMenu: "Gambling Hall",
	ScreenRoulette:     "Roulette Table",
	ScreenDice:         "Dice Table",
	ScreenHighLow:      "High-Low Table",
	ScreenDrugDen:      "The Den",
}

// Label returns the location label shown while on this screen.
func (s Screen) Label() string {
	if s < ScreenCount {
		return screenLabels[s]
	}
	return "Unknown"
}

// parent is where Back() lands from this screen.
func (s Screen) parent() Screen {
	switch s {
	case ScreenMoveRegion, ScreenBuySellStock:
		return ScreenStockMarket
	case ScreenRoulette, ScreenDice, ScreenHighLow:
		return ScreenGamblingMenu
	default:
		return ScreenMainMenu
	}
}

// Session owns every subsystem and is the only mutation path into them.
// It gates which commands are legal on which screen, converts failures
// into log messages, and resolves delayed casino wagers on its tick.
type Session struct {
	cfg   *config.Config
	defs  *market.Defs
	clock Clock
	rng   *rand.Rand

	Wallet     Wallet
	Stocks     *StockMarket
	Underworld *BlackMarket
	Roulette   *Roulette
	Dice       *Dice
	HighLow    *HighLow
	Log        *MessageLog

	screen  Screen
	refresh timer // passive black-market price refresh

	// Screen-local transient input. Cleared on every transition so no
	// stale selection leaks across screens.
	SelectedSymbol string
	SelectedItem   string
	AmountInput    string
}

// New creates a session from config and market definitions. The seed
// drives every random draw, so a fixed seed replays a whole game.
func New(cfg *config.Config, defs *market.Defs, seed int64) *Session {
	rng := rand.New(rand.NewPCG(uint64(seed), uint64(seed>>16|3)))
	s := &Session{
		cfg:   cfg,
		defs:  defs,
		clock: systemClock{},
		rng:   rng,
	}
	s.Log = NewMessageLog(cfg.Messages.MaxQueued, cfg.MessageFadeIn(), cfg.MessageHold(), cfg.MessageFadeOut())
	s.Stocks = NewStockMarket(defs.Regions, rng)
	s.Underworld = NewBlackMarket(defs, rng)
	s.Roulette = NewRoulette(rng)
	s.Dice = NewDice(rng)
	s.HighLow = NewHighLow(rng)
	s.Wallet = Wallet{Money: cfg.StartingMoney, Day: cfg.StartingDay, Location: ScreenMainMenu.Label()}
	s.screen = ScreenMainMenu
	s.say("Welcome to Millionaire Tycoon!", SevInfo)
	return s
}

func (s *Session) now() time.Time { return s.clock.Now() }

func (s *Session) say(text string, sev Severity) {
	s.Log.Add(s.now(), text, sev)
}

// fail logs a rejection and passes the error through. Illegal-state
// rejections read as warnings, everything else as errors.
func (s *Session) fail(err error, text string) error {
	sev := SevError
	if errors.Is(err, ErrInvalidState) || errors.Is(err, ErrInvalidBet) {
		sev = SevWarning
	}
	s.say(text, sev)
	return err
}

// Screen returns the active screen.
func (s *Session) Screen() Screen { return s.screen }

// Navigate switches to another screen, clearing transient input and
// setting the location label.
func (s *Session) Navigate(to Screen) error {
	if to >= ScreenCount {
		return s.fail(ErrInvalidState, "There's no such place.")
	}
	if to == s.screen {
		return nil
	}
	s.clearTransient()
	s.refresh.stop()
	s.screen = to

	switch to {
	case ScreenMainMenu:
		s.Wallet.Location = to.Label()
		s.say("Returned to the main menu.", SevInfo)
	case ScreenBlackMarket:
		s.Wallet.Location = s.Underworld.Location()
		s.refresh.arm(s.now(), s.cfg.MarketRefresh())
		s.say(fmt.Sprintf("Entering the black market at %s...", s.Underworld.Location()), SevInfo)
	default:
		s.Wallet.Location = to.Label()
		s.say(fmt.Sprintf("Entering %s...", to.Label()), SevInfo)
	}
	return nil
}

// Back returns to the parent screen.
func (s *Session) Back() error {
	return s.Navigate(s.screen.parent())
}

// NewGame reinitializes every subsystem and returns to the main menu.
// It is the only transition reachable from any state.
func (s *Session) NewGame() {
	s.Wallet = Wallet{Money: s.cfg.StartingMoney, Day: s.cfg.StartingDay, Location: ScreenMainMenu.Label()}
	s.Stocks.Reset()
	s.Underworld.Reset()
	s.Roulette.Reset()
	s.Dice.Reset()
	s.HighLow.Reset()
	s.Log.Clear()
	s.clearTransient()
	s.refresh.stop()
	s.screen = ScreenMainMenu
	s.say("Game reset. Welcome back!", SevInfo)
}

func (s *Session) clearTransient() {
	s.SelectedSymbol = ""
	s.SelectedItem = ""
	s.AmountInput = ""
}

// onScreen guards a mutating command to the screens it is legal on.
func (s *Session) onScreen(screens ...Screen) error {
	for _, sc := range screens {
		if s.screen == sc {
			return nil
		}
	}
	return ErrInvalidState
}

// --- Stock market commands ---

// AdvanceDay ends the trading day: the day counter increments and every
// stock takes one random walk step.
func (s *Session) AdvanceDay() error {
	if err := s.onScreen(ScreenStockMarket, ScreenBuySellStock); err != nil {
		return s.fail(err, "You can only wait out a day at the stock market.")
	}
	s.advanceDay()
	return nil
}

func (s *Session) advanceDay() {
	s.Wallet.Day++
	s.Stocks.AdvanceDay()
	s.say(fmt.Sprintf("Day %d: prices updated.", s.Wallet.Day), SevInfo)
}

// BuyStock buys qty shares at the current price.
func (s *Session) BuyStock(symbol string, qty int) error {
	if err := s.onScreen(ScreenStockMarket, ScreenBuySellStock); err != nil {
		return s.fail(err, "You need to be at the stock market to trade.")
	}
	if err := s.Stocks.Buy(&s.Wallet, symbol, qty); err != nil {
		return s.fail(err, buyStockFailure(err, symbol))
	}
	stock, _ := s.Stocks.Quote(symbol)
	s.say(fmt.Sprintf("Bought %d %s at $%.2f.", qty, symbol, stock.Price), SevSuccess)
	return nil
}

func buyStockFailure(err error, symbol string) string {
	switch {
	case errors.Is(err, ErrInvalidQuantity):
		return "Enter a valid number of shares."
	case errors.Is(err, ErrInsufficientFunds):
		return "You can't afford that many shares."
	default:
		return fmt.Sprintf("No stock called %s here.", symbol)
	}
}

// SellStock sells qty shares at the current price.
func (s *Session) SellStock(symbol string, qty int) error {
	if err := s.onScreen(ScreenStockMarket, ScreenBuySellStock); err != nil {
		return s.fail(err, "You need to be at the stock market to trade.")
	}
	if err := s.Stocks.Sell(&s.Wallet, symbol, qty); err != nil {
		switch {
		case errors.Is(err, ErrInvalidQuantity):
			return s.fail(err, "Enter a valid number of shares.")
		case errors.Is(err, ErrInsufficientShares):
			return s.fail(err, fmt.Sprintf("You don't own that many %s shares.", symbol))
		default:
			return s.fail(err, fmt.Sprintf("No stock called %s here.", symbol))
		}
	}
	stock, _ := s.Stocks.Quote(symbol)
	s.say(fmt.Sprintf("Sold %d %s at $%.2f.", qty, symbol, stock.Price), SevSuccess)
	return nil
}

// MoveRegion switches the active stock region. Moving costs money and
// consumes a day.
func (s *Session) MoveRegion(index int) error {
	if err := s.onScreen(ScreenStockMarket, ScreenMoveRegion); err != nil {
		return s.fail(err, "You can only book a move from the stock market.")
	}
	if err := s.Stocks.MoveRegion(&s.Wallet, index, s.cfg.RegionMoveCost); err != nil {
		switch {
		case errors.Is(err, ErrInsufficientFunds):
			return s.fail(err, fmt.Sprintf("Moving costs $%.0f. You're short.", s.cfg.RegionMoveCost))
		case s.Wallet.Day <= 1:
			return s.fail(err, "No moves on day 1. Trade locally first.")
		default:
			return s.fail(err, "You're already trading there.")
		}
	}
	region := s.Stocks.CurrentRegion()
	s.advanceDay() // moving consumes a day
	s.say(fmt.Sprintf("Moved to %s.", region.Name), SevSuccess)
	return nil
}

// --- Black-market commands ---

// Travel moves to another black-market location, regenerating its
// prices; random trouble can fire on the way.
func (s *Session) Travel(dest string) error {
	if err := s.onScreen(ScreenBlackMarket); err != nil {
		return s.fail(err, "You need to be on the street to travel.")
	}
	ev, err := s.Underworld.Travel(&s.Wallet, dest)
	if err != nil {
		switch {
		case errors.Is(err, ErrInsufficientFunds):
			return s.fail(err, fmt.Sprintf("You can't afford the trip to %s.", dest))
		case dest == s.Underworld.Location():
			return s.fail(err, "You're already there.")
		default:
			return s.fail(err, fmt.Sprintf("Nobody's heard of %s.", dest))
		}
	}
	s.Wallet.Location = dest
	s.refresh.arm(s.now(), s.cfg.MarketRefresh())
	s.say(fmt.Sprintf("Arrived at %s. Fresh prices on the street.", dest), SevSuccess)
	s.reportTravelEvent(ev)
	return nil
}

func (s *Session) reportTravelEvent(ev TravelEvent) {
	switch ev.Kind {
	case EventAmbush:
		s.say(fmt.Sprintf("Ambushed on the road! They took $%.2f.", ev.Loss), SevError)
		if ev.Confiscated > 0 {
			s.say(fmt.Sprintf("They also grabbed %d %s.", ev.Confiscated, ev.Item), SevError)
		}
	case EventPriceTip:
		s.say(fmt.Sprintf("A contact tips you off: %s is going cheap.", ev.Item), SevWarning)
	case EventExpense:
		s.say(fmt.Sprintf("Greasing palms on the way cost you $%.2f.", ev.Loss), SevWarning)
	}
}

// BuyItem buys contraband at the current street price.
func (s *Session) BuyItem(item string, qty int) error {
	if err := s.onScreen(ScreenBlackMarket); err != nil {
		return s.fail(err, "You need to be on the street to deal.")
	}
	if err := s.Underworld.Buy(&s.Wallet, item, qty); err != nil {
		switch {
		case errors.Is(err, ErrInvalidQuantity):
			return s.fail(err, "Enter a valid quantity.")
		case errors.Is(err, ErrInsufficientFunds):
			return s.fail(err, fmt.Sprintf("You can't afford that much %s.", item))
		default:
			return s.fail(err, fmt.Sprintf("Nobody's selling %s.", item))
		}
	}
	price, _ := s.Underworld.Price(item)
	s.say(fmt.Sprintf("Bought %d %s at $%.2f.", qty, item, price), SevSuccess)
	return nil
}

// SellItem sells contraband at the current street price.
func (s *Session) SellItem(item string, qty int) error {
	if err := s.onScreen(ScreenBlackMarket); err != nil {
		return s.fail(err, "You need to be on the street to deal.")
	}
	if err := s.Underworld.Sell(&s.Wallet, item, qty); err != nil {
		switch {
		case errors.Is(err, ErrInvalidQuantity):
			return s.fail(err, "Enter a valid quantity.")
		case errors.Is(err, ErrInsufficientInventory):
			return s.fail(err, fmt.Sprintf("You don't have that much %s.", item))
		default:
			return s.fail(err, fmt.Sprintf("Nobody's buying %s.", item))
		}
	}
	price, _ := s.Underworld.Price(item)
	s.say(fmt.Sprintf("Sold %d %s at $%.2f.", qty, item, price), SevSuccess)
	return nil
}

// --- Casino commands ---

// PlaceRouletteBet stakes money on a color and spins the wheel.
func (s *Session) PlaceRouletteBet(amount float64, bet RouletteBet) error {
	if err := s.onScreen(ScreenRoulette); err != nil {
		return s.fail(err, "Find the roulette table first.")
	}
	if err := s.Roulette.Spin(&s.Wallet, s.now(), s.cfg.RouletteSpin(), amount, bet); err != nil {
		return s.fail(err, wagerFailure(err, "The wheel is still spinning."))
	}
	s.say(fmt.Sprintf("$%.2f on %s. The wheel spins...", amount, bet), SevInfo)
	return nil
}

// RollDice stakes money on the sum of two dice.
func (s *Session) RollDice(amount float64, bet DiceBet) error {
	if err := s.onScreen(ScreenDice); err != nil {
		return s.fail(err, "Find the dice table first.")
	}
	if err := s.Dice.Roll(&s.Wallet, s.now(), s.cfg.DiceRoll(), amount, bet); err != nil {
		return s.fail(err, wagerFailure(err, "The dice are still tumbling."))
	}
	s.say(fmt.Sprintf("$%.2f on %s. The dice fly...", amount, bet), SevInfo)
	return nil
}

// DealHighLow draws the face-up card for a new high-low round.
func (s *Session) DealHighLow() error {
	if err := s.onScreen(ScreenHighLow); err != nil {
		return s.fail(err, "Find the card table first.")
	}
	card, err := s.HighLow.Deal()
	if err != nil {
		return s.fail(err, "Wait for the reveal.")
	}
	s.say(fmt.Sprintf("Dealt the %s. Higher or lower?", card), SevInfo)
	return nil
}

// ChooseHighLowSide stakes money on the second card being strictly
// higher or lower than the first.
func (s *Session) ChooseHighLowSide(amount float64, choice HighLowChoice) error {
	if err := s.onScreen(ScreenHighLow); err != nil {
		return s.fail(err, "Find the card table first.")
	}
	if err := s.HighLow.Choose(&s.Wallet, s.now(), s.cfg.HighLowReveal(), amount, choice); err != nil {
		if errors.Is(err, ErrInvalidState) {
			return s.fail(err, "Deal a card first.")
		}
		return s.fail(err, wagerFailure(err, "The dealer is already flipping."))
	}
	s.say(fmt.Sprintf("$%.2f says the next card is %s...", amount, choice), SevInfo)
	return nil
}

func wagerFailure(err error, busy string) string {
	switch {
	case errors.Is(err, ErrInvalidQuantity):
		return "Enter a valid stake."
	case errors.Is(err, ErrInsufficientFunds):
		return "You can't stake more than you have."
	case errors.Is(err, ErrInvalidBet):
		return busy
	default:
		return "That bet isn't possible right now."
	}
}

// --- Frame tick ---

// Tick runs once per rendered frame. It resolves due casino wagers
// (these fire no matter which screen is showing) and regenerates street
// prices while the black market is being viewed.
func (s *Session) Tick() {
	now := s.now()

	if res := s.Roulette.Resolve(&s.Wallet, now); res != nil {
		if res.Payout > 0 {
			s.say(fmt.Sprintf("The wheel lands on %d. You win $%.2f!", res.Outcome, res.Payout), SevSuccess)
		} else {
			s.say(fmt.Sprintf("The wheel lands on %d. Your $%.2f is gone.", res.Outcome, res.Stake), SevError)
		}
	}
	if res := s.Dice.Resolve(&s.Wallet, now); res != nil {
		if res.Payout > 0 {
			s.say(fmt.Sprintf("%d and %d: %d. You win $%.2f!", res.Die1, res.Die2, res.Sum, res.Payout), SevSuccess)
		} else {
			s.say(fmt.Sprintf("%d and %d: %d. Your $%.2f is gone.", res.Die1, res.Die2, res.Sum, res.Stake), SevError)
		}
	}
	if res := s.HighLow.Resolve(&s.Wallet, now); res != nil {
		if res.Payout > 0 {
			s.say(fmt.Sprintf("The %s! You win $%.2f!", res.Second, res.Payout), SevSuccess)
		} else {
			s.say(fmt.Sprintf("The %s. Your $%.2f is gone.", res.Second, res.Stake), SevError)
		}
	}

	if s.screen == ScreenBlackMarket && s.refresh.due(now) {
		s.Underworld.GeneratePrices()
		s.refresh.arm(now, s.cfg.MarketRefresh())
		s.say("Street prices have shifted.", SevInfo)
	}
}

// --- Queries for the renderer ---

// WalletSnapshot returns a copy of the wallet.
func (s *Session) WalletSnapshot() Wallet { return s.Wallet }

// MoveCost is the configured price of relocating to another region.
func (s *Session) MoveCost() float64 { return s.cfg.RegionMoveCost }

// NetWorth is money plus holdings at current prices plus the street
// value of contraband.
func (s *Session) NetWorth() float64 {
	return round2(s.Wallet.Money + s.Stocks.HoldingsValue() + s.Underworld.StreetValue())
}

// ActiveMessages returns the currently visible notifications.
func (s *Session) ActiveMessages() []Message {
	return s.Log.Active(s.now())
}

// MessageAlpha returns the fade envelope for one visible message.
func (s *Session) MessageAlpha(m Message) float64 {
	return s.Log.Alpha(m, s.now())
}

// InputQuantity parses the typed amount as a share/item count.
func (s *Session) InputQuantity() (int, bool) {
	n, err := strconv.Atoi(s.AmountInput)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// InputAmount parses the typed amount as a currency stake.
func (s *Session) InputAmount() (float64, bool) {
	f, err := strconv.ParseFloat(s.AmountInput, 64)
	if err != nil || f <= 0 {
		return 0, false
	}
	return f, true
}
