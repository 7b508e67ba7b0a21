package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/xenopets/XenoPets_Go/internal/domain"
)

func TestHandleGetWallet(t *testing.T) {
	e := newEnv(t)
	e.login(t)
	e.fund(t, domain.CurrencyXenocoins, 300)
	e.fund(t, domain.CurrencyCash, 7)

	var resp WalletResponse
	rec := doJSON(t, HandleGetWallet(e.game), http.MethodGet, "/api/v1/wallet", nil, &resp)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 300, resp.Xenocoins)
	assert.Equal(t, 7, resp.Cash)
}

func TestHandleUpdateCurrency(t *testing.T) {
	t.Run("credit returns the new balance", func(t *testing.T) {
		e := newEnv(t)
		e.login(t)

		var resp UpdateCurrencyResponse
		rec := doJSON(t, HandleUpdateCurrency(e.game), http.MethodPost, "/api/v1/wallet/update", UpdateCurrencyRequest{
			Currency: "xenocoins",
			Amount:   150,
			Reason:   "quest-reward",
		}, &resp)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "xenocoins", resp.Currency)
		assert.Equal(t, 150, resp.NewBalance)
	})

	t.Run("currency kind is case insensitive", func(t *testing.T) {
		e := newEnv(t)
		e.login(t)

		var resp UpdateCurrencyResponse
		rec := doJSON(t, HandleUpdateCurrency(e.game), http.MethodPost, "/api/v1/wallet/update", UpdateCurrencyRequest{
			Currency: "Cash",
			Amount:   5,
		}, &resp)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 5, resp.NewBalance)
	})

	t.Run("unknown currency fails validation", func(t *testing.T) {
		e := newEnv(t)
		e.login(t)

		var resp ValidationErrorResponse
		rec := doJSON(t, HandleUpdateCurrency(e.game), http.MethodPost, "/api/v1/wallet/update", UpdateCurrencyRequest{
			Currency: "doubloons",
			Amount:   10,
		}, &resp)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, resp.Fields, "currency")
	})

	t.Run("remote refusal maps to 502 and leaves the wallet alone", func(t *testing.T) {
		e := newEnv(t)
		e.login(t)
		e.remote.updateCurrency = func(context.Context, string, domain.CurrencyKind, int, string) error {
			return domain.ErrExternalFailure
		}

		var resp ErrorResponse
		rec := doJSON(t, HandleUpdateCurrency(e.game), http.MethodPost, "/api/v1/wallet/update", UpdateCurrencyRequest{
			Currency: "xenocoins",
			Amount:   100,
		}, &resp)

		assert.Equal(t, http.StatusBadGateway, rec.Code)
		assert.Equal(t, ErrMsgUpstreamError, resp.Error)
		assert.Zero(t, e.game.Balance(domain.CurrencyXenocoins))
	})

	t.Run("401 without a session", func(t *testing.T) {
		e := newEnv(t)

		rec := doJSON(t, HandleUpdateCurrency(e.game), http.MethodPost, "/api/v1/wallet/update", UpdateCurrencyRequest{
			Currency: "xenocoins",
			Amount:   100,
		}, nil)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
