package handler

import (
	"net/http"

	"github.com/xenopets/XenoPets_Go/internal/domain"
	"github.com/xenopets/XenoPets_Go/internal/fishing"
	"github.com/xenopets/XenoPets_Go/internal/game"
	"github.com/xenopets/XenoPets_Go/internal/logger"
)

type ActiveFishResponse struct {
	Fish []domain.Fish `json:"fish"`
}

// HandleGetActiveFish lists the currently catchable fish.
// @Summary List active fish
// @Tags fishing
// @Produce json
// @Success 200 {object} ActiveFishResponse
// @Router /fishing/active [get]
func HandleGetActiveFish(svc fishing.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, ActiveFishResponse{Fish: svc.ActiveFish(r.Context())})
	}
}

type CatchFishRequest struct {
	FishID string `json:"fish_id" validate:"required,max=100"`
}

type CatchFishResponse struct {
	Fish        domain.Fish `json:"fish"`
	InventoryID string      `json:"inventory_id"`
}

// HandleCatchFish catches a fish for the logged-in user and drops it into the
// inventory. Fish items never merge; each catch is its own stack.
// @Summary Catch a fish
// @Tags fishing
// @Accept json
// @Produce json
// @Param request body CatchFishRequest true "Fish id"
// @Success 200 {object} CatchFishResponse
// @Failure 404 {object} ErrorResponse "Fish already caught or unknown"
// @Router /fishing/catch [post]
func HandleCatchFish(fishingSvc fishing.Service, gameSvc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req CatchFishRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Catch fish"); err != nil {
			return
		}

		user := gameSvc.CurrentUser()
		if user == nil {
			respondError(w, http.StatusUnauthorized, ErrMsgNotLoggedInHTTP)
			return
		}

		fish, err := fishingSvc.Catch(r.Context(), req.FishID, user.ID)
		if err != nil {
			respondServiceError(w, r, "Catch", err)
			return
		}

		item := fishingSvc.ConvertToItem(fish)
		inventoryID, err := gameSvc.AddToInventory(r.Context(), item, 1)
		if err != nil {
			respondServiceError(w, r, "AddToInventory", err)
			return
		}

		log.Info("Fish caught", "fish_id", fish.ID, "species", fish.Species, "size", fish.Size)

		respondJSON(w, http.StatusOK, CatchFishResponse{
			Fish:        fish,
			InventoryID: inventoryID,
		})
	}
}

// HandleGetFishingStats reports scheduler occupancy.
func HandleGetFishingStats(svc fishing.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, svc.Stats(r.Context()))
	}
}
