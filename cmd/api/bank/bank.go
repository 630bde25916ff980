package bank

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

// Bank administers a list of accounts and moves money between accounts.
// Membership in the list and the accounts' back-reference are independent:
// Transfer sets the back-reference even for accounts never added.
type Bank struct {
	name     string
	accounts []*Account
}

func New(name string) *Bank {
	return &Bank{
		name:     name,
		accounts: make([]*Account, 0),
	}
}

func (b *Bank) Name() string {
	return b.name
}

func (b *Bank) SetName(name string) {
	b.name = name
}

// AddAccount appends acc. Duplicates are not checked.
func (b *Bank) AddAccount(acc *Account) {
	b.accounts = append(b.accounts, acc)
}

// Accounts returns the live list, not a copy.
func (b *Bank) Accounts() []*Account {
	return b.accounts
}

func (b *Bank) FindAccount(id uuid.UUID) (*Account, bool) {
	for _, acc := range b.accounts {
		if acc.ID() == id {
			return acc, true
		}
	}
	return nil, false
}

func (b *Bank) FindByOwner(owner string) (*Account, bool) {
	for _, acc := range b.accounts {
		if acc.Owner() == owner {
			return acc, true
		}
	}
	return nil, false
}

// Transfer debits src and credits dst with amount, then points both accounts
// at b. A failed debit is returned as is and nothing else happens.
func (b *Bank) Transfer(src, dst *Account, amount decimal.Decimal) error {
	if err := src.Debit(amount); err != nil {
		return err
	}

	if err := dst.Credit(amount); err != nil {
		// only a negative amount fails here, and Debit already rejected it
		return err
	}

	src.SetBank(b)
	dst.SetBank(b)

	log.WithFields(log.Fields{
		"bank":   b.name,
		"from":   src.ID(),
		"to":     dst.ID(),
		"amount": PlainString(amount),
	}).Debug("transfer completed")

	return nil
}
