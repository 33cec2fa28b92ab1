package game

import "errors"

// Command failures. Every failure leaves game state untouched; the
// session converts them into log messages at the command boundary.
var (
	ErrInvalidQuantity       = errors.New("quantity must be a positive number")
	ErrInsufficientFunds     = errors.New("not enough money")
	ErrInsufficientShares    = errors.New("not enough shares")
	ErrInsufficientInventory = errors.New("not enough inventory")
	ErrInvalidState          = errors.New("action not allowed right now")
	ErrInvalidBet            = errors.New("invalid bet")
)
