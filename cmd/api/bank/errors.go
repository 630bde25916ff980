package bank

import (
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

var ErrNegativeAmount = errors.New("amount can't be negative")

// InsufficientFundsError is returned when a debit asks for more than the
// account holds.
type InsufficientFundsError struct {
	Balance decimal.Decimal
	Amount  decimal.Decimal
}

func (fe *InsufficientFundsError) Error() string {
	return "Insufficient Funds"
}

// IsInsufficientFunds reports whether err, or any error it wraps, is an
// *InsufficientFundsError.
func IsInsufficientFunds(err error) bool {
	var fe *InsufficientFundsError
	return errors.As(err, &fe)
}
