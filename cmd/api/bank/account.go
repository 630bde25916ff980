package bank

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Account is a single ledger entry. Accounts are always handled by pointer;
// two accounts holding the same owner and balance are still different accounts.
type Account struct {
	id      uuid.UUID
	owner   string
	balance decimal.Decimal
	bank    *Bank
}

func NewAccount(owner string, balance decimal.Decimal) *Account {
	return &Account{
		id:      uuid.New(),
		owner:   owner,
		balance: balance,
	}
}

func (a *Account) ID() uuid.UUID {
	return a.id
}

func (a *Account) Owner() string {
	return a.owner
}

func (a *Account) Balance() decimal.Decimal {
	return a.balance
}

// BalanceString renders the balance without exponent, keeping every
// fractional digit the value carries ("1000.10" stays "1000.10").
func (a *Account) BalanceString() string {
	return PlainString(a.balance)
}

// Bank returns the bank that last processed a transfer involving a, or nil.
func (a *Account) Bank() *Bank {
	return a.bank
}

func (a *Account) SetBank(b *Bank) {
	a.bank = b
}

// Debit subtracts amount from the balance. Draining the account to exactly
// zero is allowed; anything beyond that fails with *InsufficientFundsError
// and leaves the balance untouched.
func (a *Account) Debit(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return ErrNegativeAmount
	}

	if amount.GreaterThan(a.balance) {
		return &InsufficientFundsError{Balance: a.balance, Amount: amount}
	}

	a.balance = a.balance.Sub(amount)
	return nil
}

func (a *Account) Credit(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return ErrNegativeAmount
	}

	a.balance = a.balance.Add(amount)
	return nil
}

// PlainString renders d without exponent at its own scale.
func PlainString(d decimal.Decimal) string {
	var places int32
	if exp := d.Exponent(); exp < 0 {
		places = -exp
	}
	return d.StringFixed(places)
}
