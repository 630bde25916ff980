package handler

import (
	"net/http"
	"sync"

	"github.com/julienschmidt/httprouter"
	"github.com/tamasbrandstadter/banking-api/cmd/api/bank"
)

const (
	bankInfo           = "/bank"
	accounts           = "/accounts"
	accountById        = "/accounts/:id"
	balanceByAccountId = "/accounts/:id/balance"
	creditAccount      = "/accounts/:id/credit"
	debitAccount       = "/accounts/:id/debit"
	transfers          = "/transfers"
)

// DefaultMaxScale is the number of fractional digits an amount may carry
// unless the application is configured otherwise.
const DefaultMaxScale = 8

// Application serves one bank over HTTP. The bank model is not safe for
// concurrent use, so every handler holds mu while it touches it.
// Amounts with more than MaxScale fractional digits are rejected.
type Application struct {
	Bank     *bank.Bank
	Currency string
	MaxScale int

	mu      sync.Mutex
	handler http.Handler
}

func (a *Application) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.handler.ServeHTTP(w, r)
}

func NewApplication(b *bank.Bank, currency string) *Application {
	app := &Application{
		Bank:     b,
		Currency: currency,
		MaxScale: DefaultMaxScale,
	}

	router := httprouter.New()
	router.HandlerFunc(http.MethodGet, bankInfo, app.GetBank)
	router.HandlerFunc(http.MethodGet, accounts, app.FindAllAccounts)
	router.HandlerFunc(http.MethodPost, accounts, app.CreateAccount)
	router.HandlerFunc(http.MethodGet, accountById, app.GetAccountById)
	router.HandlerFunc(http.MethodGet, balanceByAccountId, app.GetBalance)
	router.HandlerFunc(http.MethodPut, creditAccount, app.Credit)
	router.HandlerFunc(http.MethodPut, debitAccount, app.Debit)
	router.HandlerFunc(http.MethodPost, transfers, app.Transfer)

	app.handler = router
	return app
}
