package handler

import (
	"net/http"

	log "github.com/sirupsen/logrus"
	"github.com/tamasbrandstadter/banking-api/cmd/api/bank"
	"github.com/tamasbrandstadter/banking-api/internal/web"
)

func (a *Application) Transfer(w http.ResponseWriter, r *http.Request) {
	var payload TransferRequest
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

	from, ok := a.find(w, r, payload.FromID)
	if !ok {
		return
	}
	to, ok := a.find(w, r, payload.ToID)
	if !ok {
		return
	}

	if err := a.Bank.Transfer(from, to, *payload.Amount); err != nil {
		web.RespondError(w, r, statusFor(err), err)
		return
	}

	log.Infof("successfully transferred %s from account %s to %s", bank.PlainString(*payload.Amount), from.ID(), to.ID())

	web.Respond(w, r, http.StatusOK, TransferResponse{
		From: newAccountResponse(from),
		To:   newAccountResponse(to),
	})
}
