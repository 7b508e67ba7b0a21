package handler

import (
	"net/http"
	"time"

	"github.com/xenopets/XenoPets_Go/internal/domain"
	"github.com/xenopets/XenoPets_Go/internal/game"
	"github.com/xenopets/XenoPets_Go/internal/logger"
)

type HatchingStatusResponse struct {
	Egg              *domain.HatchingEgg `json:"egg,omitempty"`
	RemainingSeconds int                 `json:"remaining_seconds"`
}

// HandleGetHatching reports the incubating egg and its countdown.
func HandleGetHatching(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, HatchingStatusResponse{
			Egg:              svc.HatchingEgg(),
			RemainingSeconds: int(svc.HatchingTimeRemaining() / time.Second),
		})
	}
}

type StartHatchingRequest struct {
	EggType string `json:"egg_type" validate:"required,max=100"`
}

// HandleStartHatching begins incubating an egg. Only one egg incubates at a
// time.
// @Summary Start hatching
// @Tags hatching
// @Accept json
// @Produce json
// @Param request body StartHatchingRequest true "Egg type"
// @Success 201 {object} domain.HatchingEgg
// @Failure 400 {object} ErrorResponse "An egg is already incubating"
// @Router /hatching/start [post]
func HandleStartHatching(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req StartHatchingRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Start hatching"); err != nil {
			return
		}

		egg, err := svc.StartHatching(r.Context(), req.EggType)
		if err != nil {
			respondServiceError(w, r, "StartHatching", err)
			return
		}

		logger.FromContext(r.Context()).Info("Hatching started", "egg_id", egg.ID, "egg_type", egg.EggType)
		respondJSON(w, http.StatusCreated, egg)
	}
}

// HandleClearHatching discards the incubating egg.
func HandleClearHatching(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		svc.ClearHatching(r.Context())
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgHatchingCleared})
	}
}
