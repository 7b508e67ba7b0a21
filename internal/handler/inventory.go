package handler

import (
	"net/http"

	"github.com/xenopets/XenoPets_Go/internal/domain"
	"github.com/xenopets/XenoPets_Go/internal/game"
	"github.com/xenopets/XenoPets_Go/internal/logger"
)

type GetInventoryResponse struct {
	Stacks []domain.InventoryStack `json:"stacks"`
}

// HandleGetInventory returns the session inventory.
// @Summary Get inventory
// @Tags inventory
// @Produce json
// @Success 200 {object} GetInventoryResponse
// @Router /inventory [get]
func HandleGetInventory(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, GetInventoryResponse{Stacks: svc.Inventory()})
	}
}

type AddItemRequest struct {
	ItemSlug string `json:"item_slug" validate:"required,max=100"`
	Quantity int    `json:"quantity" validate:"min=1,max=10000"`
}

type AddItemResponse struct {
	Message     string `json:"message"`
	InventoryID string `json:"inventory_id"`
}

// HandleAddItem adds a catalog item to the inventory (admin/system action).
// @Summary Add item to inventory
// @Tags inventory
// @Accept json
// @Produce json
// @Param request body AddItemRequest true "Item details"
// @Success 200 {object} AddItemResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /inventory/add [post]
func HandleAddItem(svc game.Service, catalog ItemResolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req AddItemRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Add item"); err != nil {
			return
		}

		item, ok := catalog.Item(req.ItemSlug)
		if !ok {
			respondError(w, http.StatusNotFound, ErrMsgItemNotFoundError)
			return
		}

		inventoryID, err := svc.AddToInventory(r.Context(), item, req.Quantity)
		if err != nil {
			respondServiceError(w, r, "AddToInventory", err)
			return
		}

		log.Info("Item added", "slug", req.ItemSlug, "quantity", req.Quantity, "inventory_id", inventoryID)

		respondJSON(w, http.StatusOK, AddItemResponse{
			Message:     MsgItemAddedSuccess,
			InventoryID: inventoryID,
		})
	}
}

// ItemResolver looks up catalog items by slug.
type ItemResolver interface {
	Item(slug string) (domain.Item, bool)
}

type RemoveItemRequest struct {
	InventoryID string `json:"inventory_id" validate:"required,max=100"`
	Quantity    int    `json:"quantity" validate:"min=1,max=10000"`
}

type RemoveItemResponse struct {
	Removed bool `json:"removed"`
}

// HandleRemoveItem removes quantity from an inventory stack. Unknown ids are
// reported as removed=false rather than an error.
func HandleRemoveItem(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req RemoveItemRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Remove item"); err != nil {
			return
		}

		removed := svc.RemoveFromInventory(r.Context(), req.InventoryID, req.Quantity)

		log.Info("Item remove", "inventory_id", req.InventoryID, "quantity", req.Quantity, "removed", removed)

		respondJSON(w, http.StatusOK, RemoveItemResponse{Removed: removed})
	}
}

type UseItemRequest struct {
	InventoryID string `json:"inventory_id" validate:"required,max=100"`
	PetID       string `json:"pet_id" validate:"max=100"`
}

// HandleUseItem consumes one unit of a stack on a pet. An empty pet_id
// targets the active pet.
// @Summary Use item on a pet
// @Tags inventory
// @Accept json
// @Produce json
// @Param request body UseItemRequest true "Usage details"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse "No applicable effect"
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /inventory/use [post]
func HandleUseItem(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req UseItemRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Use item"); err != nil {
			return
		}

		if err := svc.UseItem(r.Context(), req.InventoryID, req.PetID); err != nil {
			respondServiceError(w, r, "UseItem", err)
			return
		}

		log.Info("Item used", "inventory_id", req.InventoryID, "pet_id", req.PetID)

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgItemUsedSuccess})
	}
}
