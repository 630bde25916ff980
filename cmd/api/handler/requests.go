package handler

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tamasbrandstadter/banking-api/cmd/api/bank"
)

// Amounts are decoded by decimal.Decimal from their JSON text, so both
// "1000.12" and 1000.12 arrive without passing through float64.

type CreateAccountRequest struct {
	Owner          string          `json:"owner"`
	InitialBalance decimal.Decimal `json:"balance"`
}

type BalanceOperationRequest struct {
	Amount *decimal.Decimal `json:"amount"`
}

type TransferRequest struct {
	FromID uuid.UUID        `json:"from"`
	ToID   uuid.UUID        `json:"to"`
	Amount *decimal.Decimal `json:"amount"`
}

type AccountResponse struct {
	ID      uuid.UUID `json:"id"`
	Owner   string    `json:"owner"`
	Balance string    `json:"balance"`
	Bank    string    `json:"bank,omitempty"`
}

type BankResponse struct {
	Name     string `json:"name"`
	Accounts int    `json:"accounts"`
}

type BalanceResponse struct {
	Balance string `json:"balance"`
	Display string `json:"display,omitempty"`
}

type TransferResponse struct {
	From AccountResponse `json:"from"`
	To   AccountResponse `json:"to"`
}

func newAccountResponse(acc *bank.Account) AccountResponse {
	resp := AccountResponse{
		ID:      acc.ID(),
		Owner:   acc.Owner(),
		Balance: acc.BalanceString(),
	}
	if b := acc.Bank(); b != nil {
		resp.Bank = b.Name()
	}
	return resp
}
