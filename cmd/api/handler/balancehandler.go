package handler

import (
	"math"
	"net/http"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	"github.com/tamasbrandstadter/banking-api/internal/web"
)

var maxMinorUnits = decimal.NewFromInt(math.MaxInt64)

func (a *Application) GetBalance(w http.ResponseWriter, r *http.Request) {
	a.mu.Lock()
	defer a.mu.Unlock()

	acc, ok := a.lookup(w, r)
	if !ok {
		return
	}

	resp := BalanceResponse{Balance: acc.BalanceString()}
	if d, ok := display(acc.Balance(), a.Currency); ok {
		resp.Display = d
	} else {
		log.Debugf("balance of account %s has no exact %s representation", acc.ID(), a.Currency)
	}

	web.Respond(w, r, http.StatusOK, resp)
}

// display formats balance in the currency's minor units with go-money. It
// reports false when that would drop digits.
func display(balance decimal.Decimal, currency string) (string, bool) {
	fraction := money.New(0, currency).Currency().Fraction

	minor := balance.Shift(int32(fraction))
	if !minor.Equal(minor.Truncate(0)) || minor.Abs().GreaterThan(maxMinorUnits) {
		return "", false
	}

	return money.New(minor.IntPart(), currency).Display(), true
}
