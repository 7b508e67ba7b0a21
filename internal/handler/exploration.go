package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/xenopets/XenoPets_Go/internal/domain"
	"github.com/xenopets/XenoPets_Go/internal/exploration"
	"github.com/xenopets/XenoPets_Go/internal/logger"
)

type ExplorationPointsResponse struct {
	PlanetID string                    `json:"planet_id"`
	Points   []domain.ExplorationPoint `json:"points"`
}

// HandleGetExplorationPoints returns a planet's surface layout: the stored
// override when present, the deterministic generated layout otherwise.
// @Summary Get exploration points
// @Tags exploration
// @Produce json
// @Param planetID path string true "Planet id"
// @Success 200 {object} ExplorationPointsResponse
// @Router /exploration/{planetID}/points [get]
func HandleGetExplorationPoints(svc exploration.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		planetID := chi.URLParam(r, "planetID")

		points, err := svc.Points(r.Context(), planetID)
		if err != nil {
			respondServiceError(w, r, "ExplorationPoints", err)
			return
		}

		respondJSON(w, http.StatusOK, ExplorationPointsResponse{
			PlanetID: planetID,
			Points:   points,
		})
	}
}

// HandleGetExplorationArea derives a point's interior view.
func HandleGetExplorationArea(svc exploration.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		planetID := chi.URLParam(r, "planetID")
		pointID := chi.URLParam(r, "pointID")

		area, err := svc.Area(r.Context(), planetID, pointID)
		if err != nil {
			respondServiceError(w, r, "ExplorationArea", err)
			return
		}

		respondJSON(w, http.StatusOK, area)
	}
}

type UpdatePointRequest struct {
	Name        *string  `json:"name" validate:"omitempty,max=100"`
	X           *float64 `json:"x"`
	Y           *float64 `json:"y"`
	Size        *float64 `json:"size"`
	Active      *bool    `json:"active"`
	Description *string  `json:"description" validate:"omitempty,max=500"`
	ImageURL    *string  `json:"image_url" validate:"omitempty,max=500"`
}

// HandleUpdateExplorationPoint applies a partial edit and persists the planet
// override. Admin surface.
func HandleUpdateExplorationPoint(svc exploration.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		planetID := chi.URLParam(r, "planetID")
		pointID := chi.URLParam(r, "pointID")

		var req UpdatePointRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Update exploration point"); err != nil {
			return
		}

		point, err := svc.UpdatePoint(r.Context(), planetID, pointID, exploration.PointUpdate{
			Name:        req.Name,
			X:           req.X,
			Y:           req.Y,
			Size:        req.Size,
			Active:      req.Active,
			Description: req.Description,
			ImageURL:    req.ImageURL,
		})
		if err != nil {
			respondServiceError(w, r, "UpdatePoint", err)
			return
		}

		logger.FromContext(r.Context()).Info("Exploration point updated", "planet", planetID, "point", pointID)
		respondJSON(w, http.StatusOK, point)
	}
}

// HandleToggleExplorationPoint flips a point's active flag. Admin surface.
func HandleToggleExplorationPoint(svc exploration.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		planetID := chi.URLParam(r, "planetID")
		pointID := chi.URLParam(r, "pointID")

		point, err := svc.ToggleActive(r.Context(), planetID, pointID)
		if err != nil {
			respondServiceError(w, r, "ToggleActive", err)
			return
		}

		respondJSON(w, http.StatusOK, point)
	}
}

type AddPointRequest struct {
	X float64 `json:"x" validate:"gte=0,lte=100"`
	Y float64 `json:"y" validate:"gte=0,lte=100"`
}

// HandleAddExplorationPoint appends a new point. Admin surface.
func HandleAddExplorationPoint(svc exploration.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		planetID := chi.URLParam(r, "planetID")

		var req AddPointRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Add exploration point"); err != nil {
			return
		}

		point, err := svc.AddPoint(r.Context(), planetID, req.X, req.Y)
		if err != nil {
			respondServiceError(w, r, "AddPoint", err)
			return
		}

		respondJSON(w, http.StatusCreated, point)
	}
}

// HandleRemoveExplorationPoint deletes a point. Admin surface.
func HandleRemoveExplorationPoint(svc exploration.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		planetID := chi.URLParam(r, "planetID")
		pointID := chi.URLParam(r, "pointID")

		if err := svc.RemovePoint(r.Context(), planetID, pointID); err != nil {
			respondServiceError(w, r, "RemovePoint", err)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: "Point removed"})
	}
}
