package handler

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	"github.com/tamasbrandstadter/banking-api/cmd/api/bank"
	"github.com/tamasbrandstadter/banking-api/internal/web"
)

// maxExponent bounds amounts written with a positive exponent ("1e18").
const maxExponent = 18

var (
	errAmountRequired = errors.New("amount is required")
	errAmountTooLarge = errors.New("amount is too large")
)

func (a *Application) GetBank(w http.ResponseWriter, r *http.Request) {
	a.mu.Lock()
	resp := BankResponse{
		Name:     a.Bank.Name(),
		Accounts: len(a.Bank.Accounts()),
	}
	a.mu.Unlock()

	web.Respond(w, r, http.StatusOK, resp)
}

func (a *Application) FindAllAccounts(w http.ResponseWriter, r *http.Request) {
	a.mu.Lock()
	accs := a.Bank.Accounts()
	resp := make([]AccountResponse, 0, len(accs))
	for _, acc := range accs {
		resp = append(resp, newAccountResponse(acc))
	}
	a.mu.Unlock()

	web.Respond(w, r, http.StatusOK, resp)
}

func (a *Application) GetAccountById(w http.ResponseWriter, r *http.Request) {
	a.mu.Lock()
	defer a.mu.Unlock()

	acc, ok := a.lookup(w, r)
	if !ok {
		return
	}

	web.Respond(w, r, http.StatusOK, newAccountResponse(acc))
}

func (a *Application) CreateAccount(w http.ResponseWriter, r *http.Request) {
	var payload CreateAccountRequest
	if err := web.Decode(w, r, &payload); err != nil {
		web.RespondError(w, r, http.StatusBadRequest, err)
		return
	}

	// custom validation
	if payload.Owner == "" {
		web.RespondError(w, r, http.StatusBadRequest, errors.New("owner is a required field"))
		return
	}
	if payload.InitialBalance.IsNegative() {
		web.RespondError(w, r, http.StatusBadRequest, errors.New("initial balance can't be negative"))
		return
	}
	if err := a.checkScale(payload.InitialBalance); err != nil {
		web.RespondError(w, r, http.StatusBadRequest, err)
		return
	}

	acc := bank.NewAccount(payload.Owner, payload.InitialBalance)

	a.mu.Lock()
	a.Bank.AddAccount(acc)
	resp := newAccountResponse(acc)
	a.mu.Unlock()

	log.Infof("created account %s for %s", acc.ID(), acc.Owner())
	web.Respond(w, r, http.StatusCreated, resp)
}

func (a *Application) Credit(w http.ResponseWriter, r *http.Request) {
	a.balanceOperation(w, r, "credit", (*bank.Account).Credit)
}

func (a *Application) Debit(w http.ResponseWriter, r *http.Request) {
	a.balanceOperation(w, r, "debit", (*bank.Account).Debit)
}

func (a *Application) balanceOperation(w http.ResponseWriter, r *http.Request, name string,
	op func(*bank.Account, decimal.Decimal) error) {
	var payload BalanceOperationRequest
	if err := web.Decode(w, r, &payload); err != nil {
		web.RespondError(w, r, http.StatusBadRequest, err)
		return
	}
	if payload.Amount == nil {
		web.RespondError(w, r, http.StatusBadRequest, errAmountRequired)
		return
	}
	if err := a.checkScale(*payload.Amount); err != nil {
		web.RespondError(w, r, http.StatusBadRequest, err)
		return
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	acc, ok := a.lookup(w, r)
	if !ok {
		return
	}

	if err := op(acc, *payload.Amount); err != nil {
		web.RespondError(w, r, statusFor(err), err)
		return
	}

	log.Infof("successful %s of %s on account %s", name, bank.PlainString(*payload.Amount), acc.ID())
	web.Respond(w, r, http.StatusOK, newAccountResponse(acc))
}

// checkScale rejects amounts whose exponent would make every later
// operation on the account rescale to a huge coefficient. It runs before
// a.mu is taken.
func (a *Application) checkScale(d decimal.Decimal) error {
	exp := d.Exponent()
	if exp < -int32(a.MaxScale) {
		return errors.Errorf("amount can't have more than %d decimal places", a.MaxScale)
	}
	if exp > maxExponent {
		return errAmountTooLarge
	}
	return nil
}

// lookup resolves the :id route parameter to an account of the bank, writing
// the error response itself when it can't. Callers must hold a.mu.
func (a *Application) lookup(w http.ResponseWriter, r *http.Request) (*bank.Account, bool) {
	param := httprouter.ParamsFromContext(r.Context()).ByName("id")

	id, err := uuid.Parse(param)
	if err != nil {
		web.RespondError(w, r, http.StatusBadRequest, errors.New("unable to parse account id"))
		return nil, false
	}

	return a.find(w, r, id)
}

func (a *Application) find(w http.ResponseWriter, r *http.Request, id uuid.UUID) (*bank.Account, bool) {
	acc, ok := a.Bank.FindAccount(id)
	if !ok {
		web.RespondError(w, r, http.StatusNotFound, fmt.Errorf("account id %s is not found", id))
		return nil, false
	}
	return acc, true
}

func statusFor(err error) int {
	switch {
	case bank.IsInsufficientFunds(err):
		return http.StatusUnprocessableEntity
	case errors.Cause(err) == bank.ErrNegativeAmount:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
