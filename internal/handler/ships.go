package handler

import (
	"net/http"

	"github.com/xenopets/XenoPets_Go/internal/domain"
	"github.com/xenopets/XenoPets_Go/internal/game"
	"github.com/xenopets/XenoPets_Go/internal/logger"
)

type ShipsResponse struct {
	Catalog []domain.Ship `json:"catalog"`
	Owned   []domain.Ship `json:"owned"`
	Active  *domain.Ship  `json:"active,omitempty"`
}

// HandleGetShips returns the ship catalog plus the session's owned and
// active ships.
// @Summary List ships
// @Tags ships
// @Produce json
// @Success 200 {object} ShipsResponse
// @Router /ships [get]
func HandleGetShips(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, ShipsResponse{
			Catalog: svc.Ships(),
			Owned:   svc.OwnedShips(),
			Active:  svc.ActiveShip(),
		})
	}
}

type ShipRequest struct {
	ShipID string `json:"ship_id" validate:"required,max=100"`
}

// HandlePurchaseShip buys a ship from the catalog.
// @Summary Purchase a ship
// @Tags ships
// @Accept json
// @Produce json
// @Param request body ShipRequest true "Ship id"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse "Already owned or not enough funds"
// @Failure 404 {object} ErrorResponse
// @Router /ships/purchase [post]
func HandlePurchaseShip(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ShipRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Purchase ship"); err != nil {
			return
		}

		if err := svc.PurchaseShip(r.Context(), req.ShipID); err != nil {
			respondServiceError(w, r, "PurchaseShip", err)
			return
		}

		logger.FromContext(r.Context()).Info("Ship purchased", "ship_id", req.ShipID)
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgShipPurchased})
	}
}

// HandleSwitchShip makes an owned (or the default) ship active.
func HandleSwitchShip(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ShipRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Switch ship"); err != nil {
			return
		}

		if err := svc.SwitchActiveShip(r.Context(), req.ShipID); err != nil {
			respondServiceError(w, r, "SwitchActiveShip", err)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgShipActivated})
	}
}
