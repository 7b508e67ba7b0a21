package handler

import (
	"net/http"
	"time"

	"github.com/xenopets/XenoPets_Go/internal/domain"
	"github.com/xenopets/XenoPets_Go/internal/game"
	"github.com/xenopets/XenoPets_Go/internal/logger"
)

type RedeemCodeRequest struct {
	Code string `json:"code" validate:"required,max=50,excludesall=\x00\n\r\t"`
}

// HandleRedeemCode applies a promotional code to the session.
// @Summary Redeem a code
// @Tags codes
// @Accept json
// @Produce json
// @Param request body RedeemCodeRequest true "Code"
// @Success 200 {object} game.RedeemResult
// @Failure 400 {object} ErrorResponse "Already used, exhausted or expired"
// @Failure 404 {object} ErrorResponse "Unknown or inactive code"
// @Router /codes/redeem [post]
func HandleRedeemCode(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req RedeemCodeRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Redeem code"); err != nil {
			return
		}

		result, err := svc.RedeemCode(r.Context(), req.Code)
		if err != nil {
			respondServiceError(w, r, "RedeemCode", err)
			return
		}

		log.Info("Code redeemed", "code", result.Code, "applied", len(result.Applied), "skipped", len(result.Skipped))

		respondJSON(w, http.StatusOK, result)
	}
}

// HandleListRedeemCodes returns the code table. Admin surface; hidden fields
// are not filtered because the API key already gates access.
func HandleListRedeemCodes(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, DataResponse{Data: svc.RedeemCodes()})
	}
}

type CreateCodeRequest struct {
	Code          string   `json:"code" validate:"required,max=50,excludesall=\x00\n\r\t"`
	Description   string   `json:"description" validate:"max=200"`
	MaxUses       int      `json:"max_uses"`
	Xenocoins     int      `json:"xenocoins" validate:"gte=0"`
	Cash          int      `json:"cash" validate:"gte=0"`
	AccountPoints int      `json:"account_points" validate:"gte=0"`
	Items         []string `json:"items" validate:"max=20"`
	ExpiresAt     string   `json:"expires_at"`
}

// HandleCreateRedeemCode registers a new code. Requires an admin session.
func HandleCreateRedeemCode(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req CreateCodeRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Create code"); err != nil {
			return
		}

		code := domain.RedeemCode{
			Code:        req.Code,
			Description: req.Description,
			MaxUses:     req.MaxUses,
			Rewards: domain.CodeRewards{
				Xenocoins:     req.Xenocoins,
				Cash:          req.Cash,
				AccountPoints: req.AccountPoints,
				Items:         req.Items,
			},
		}
		if req.ExpiresAt != "" {
			expires, err := time.Parse(time.RFC3339, req.ExpiresAt)
			if err != nil {
				respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestSummary)
				return
			}
			code.ExpiresAt = &expires
		}

		if err := svc.CreateRedeemCode(r.Context(), code); err != nil {
			respondServiceError(w, r, "CreateRedeemCode", err)
			return
		}

		log.Info("Redeem code created", "code", req.Code)
		respondJSON(w, http.StatusCreated, SuccessResponse{Message: MsgCodeCreated})
	}
}

type DeactivateCodeRequest struct {
	CodeID string `json:"code_id" validate:"required,max=100"`
}

// HandleDeactivateRedeemCode turns a code off. Requires an admin session.
func HandleDeactivateRedeemCode(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req DeactivateCodeRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Deactivate code"); err != nil {
			return
		}

		if err := svc.DeactivateRedeemCode(r.Context(), req.CodeID); err != nil {
			respondServiceError(w, r, "DeactivateRedeemCode", err)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgCodeDeactivated})
	}
}
