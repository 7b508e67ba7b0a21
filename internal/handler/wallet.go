package handler

import (
	"net/http"
	"strings"

	"github.com/xenopets/XenoPets_Go/internal/domain"
	"github.com/xenopets/XenoPets_Go/internal/game"
	"github.com/xenopets/XenoPets_Go/internal/logger"
)

type WalletResponse struct {
	Xenocoins int `json:"xenocoins"`
	Cash      int `json:"cash"`
}

// HandleGetWallet returns both balances.
// @Summary Get wallet balances
// @Tags wallet
// @Produce json
// @Success 200 {object} WalletResponse
// @Router /wallet [get]
func HandleGetWallet(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, WalletResponse{
			Xenocoins: svc.Balance(domain.CurrencyXenocoins),
			Cash:      svc.Balance(domain.CurrencyCash),
		})
	}
}

type UpdateCurrencyRequest struct {
	Currency string `json:"currency" validate:"required,currency"`
	Amount   int    `json:"amount" validate:"required"`
	Reason   string `json:"reason" validate:"max=100"`
}

type UpdateCurrencyResponse struct {
	Currency   string `json:"currency"`
	NewBalance int    `json:"new_balance"`
}

// HandleUpdateCurrency applies a remote-confirmed wallet delta. Negative
// amounts debit; the local balance floors at zero.
// @Summary Update currency
// @Tags wallet
// @Accept json
// @Produce json
// @Param request body UpdateCurrencyRequest true "Delta details"
// @Success 200 {object} UpdateCurrencyResponse
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /wallet/update [post]
func HandleUpdateCurrency(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req UpdateCurrencyRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Update currency"); err != nil {
			return
		}

		kind := domain.CurrencyKind(strings.ToLower(req.Currency))
		balance, err := svc.UpdateCurrency(r.Context(), kind, req.Amount, req.Reason)
		if err != nil {
			respondServiceError(w, r, "UpdateCurrency", err)
			return
		}

		log.Info("Currency updated", "currency", kind, "amount", req.Amount, "balance", balance)

		respondJSON(w, http.StatusOK, UpdateCurrencyResponse{
			Currency:   string(kind),
			NewBalance: balance,
		})
	}
}
