package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/xenopets/XenoPets_Go/internal/domain"
	"github.com/xenopets/XenoPets_Go/internal/game"
	"github.com/xenopets/XenoPets_Go/internal/logger"
)

type ListStoresResponse struct {
	Stores []domain.Store `json:"stores"`
}

// HandleListStores returns every store with its live stock.
// @Summary List stores
// @Tags stores
// @Produce json
// @Success 200 {object} ListStoresResponse
// @Router /stores [get]
func HandleListStores(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, ListStoresResponse{Stores: svc.Stores()})
	}
}

// HandleGetStore returns a single store by id.
func HandleGetStore(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		storeID := chi.URLParam(r, "storeID")

		store, ok := svc.StoreByID(storeID)
		if !ok {
			respondError(w, http.StatusNotFound, ErrMsgStoreNotFoundError)
			return
		}
		respondJSON(w, http.StatusOK, store)
	}
}

type PurchaseRequest struct {
	StoreID     string `json:"store_id" validate:"required,max=100"`
	StoreItemID string `json:"store_item_id" validate:"required,max=100"`
	Quantity    int    `json:"quantity" validate:"min=1,max=100"`
}

// HandlePurchase runs the guarded store purchase transaction.
// @Summary Purchase from a store
// @Tags stores
// @Accept json
// @Produce json
// @Param request body PurchaseRequest true "Purchase details"
// @Success 200 {object} domain.PurchaseResult
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse "Requirements not met"
// @Failure 502 {object} ErrorResponse
// @Router /stores/purchase [post]
func HandlePurchase(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req PurchaseRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Purchase"); err != nil {
			return
		}

		result, err := svc.Purchase(r.Context(), req.StoreID, req.StoreItemID, req.Quantity)
		if err != nil {
			respondServiceError(w, r, "Purchase", err)
			return
		}

		log.Info("Purchase completed",
			"store", req.StoreID,
			"entry", req.StoreItemID,
			"quantity", req.Quantity,
			"cost", result.TotalCost)

		respondJSON(w, http.StatusOK, result)
	}
}

type RestockResponse struct {
	EntriesRestocked int `json:"entries_restocked"`
}

// HandleRestockStores tops up every open store toward its maximum stock.
// Exposed for operators; the scheduler runs the same operation periodically.
func HandleRestockStores(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		restocked := svc.RestockStores(r.Context())
		logger.FromContext(r.Context()).Info("Stores restocked", "entries", restocked)
		respondJSON(w, http.StatusOK, RestockResponse{EntriesRestocked: restocked})
	}
}
