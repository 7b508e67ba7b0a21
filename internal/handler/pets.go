package handler

import (
	"net/http"

	"github.com/xenopets/XenoPets_Go/internal/domain"
	"github.com/xenopets/XenoPets_Go/internal/game"
	"github.com/xenopets/XenoPets_Go/internal/logger"
)

type PetsResponse struct {
	Pets   []domain.Pet `json:"pets"`
	Active *domain.Pet  `json:"active,omitempty"`
}

// HandleGetPets returns the session's pets and the active pet.
// @Summary List pets
// @Tags pets
// @Produce json
// @Success 200 {object} PetsResponse
// @Router /pets [get]
func HandleGetPets(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, PetsResponse{
			Pets:   svc.Pets(),
			Active: svc.ActivePet(),
		})
	}
}

type CreatePetRequest struct {
	Name    string `json:"name" validate:"required,max=50,excludesall=\x00\n\r\t"`
	Species string `json:"species" validate:"required,max=50"`
}

// HandleCreatePet creates a pet through the remote service. The first pet
// becomes active.
// @Summary Create pet
// @Tags pets
// @Accept json
// @Produce json
// @Param request body CreatePetRequest true "Pet details"
// @Success 201 {object} domain.Pet
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /pets [post]
func HandleCreatePet(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req CreatePetRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Create pet"); err != nil {
			return
		}

		pet, err := svc.CreatePet(r.Context(), domain.Pet{
			Name:    req.Name,
			Species: req.Species,
		})
		if err != nil {
			respondServiceError(w, r, "CreatePet", err)
			return
		}

		log.Info("Pet created", "pet_id", pet.ID, "species", pet.Species)
		respondJSON(w, http.StatusCreated, pet)
	}
}

type UpdatePetStatsRequest struct {
	PetID  string         `json:"pet_id" validate:"max=100"`
	Deltas map[string]int `json:"deltas" validate:"required,min=1"`
}

// HandleUpdatePetStats applies stat deltas to a pet. Bounded stats clamp to
// their range; an unknown stat name rejects the whole update.
func HandleUpdatePetStats(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req UpdatePetStatsRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Update pet stats"); err != nil {
			return
		}

		pet, err := svc.UpdatePetStats(r.Context(), req.PetID, req.Deltas)
		if err != nil {
			respondServiceError(w, r, "UpdatePetStats", err)
			return
		}

		respondJSON(w, http.StatusOK, pet)
	}
}

type SetActivePetRequest struct {
	PetID string `json:"pet_id" validate:"required,max=100"`
}

// HandleSetActivePet switches the active pet.
func HandleSetActivePet(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SetActivePetRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Set active pet"); err != nil {
			return
		}

		if err := svc.SetActivePet(r.Context(), req.PetID); err != nil {
			respondServiceError(w, r, "SetActivePet", err)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgPetActivated})
	}
}
