package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/xenopets/XenoPets_Go/internal/domain"
	"github.com/xenopets/XenoPets_Go/internal/game"
	"github.com/xenopets/XenoPets_Go/internal/logger"
)

type SearchPlayersResponse struct {
	Players []domain.PlayerProfile `json:"players"`
}

// HandleSearchPlayers searches the remote player directory. The query is
// lowercased and diacritic-folded before the lookup.
// @Summary Search players
// @Tags players
// @Produce json
// @Param q query string true "Search query"
// @Success 200 {object} SearchPlayersResponse
// @Failure 502 {object} ErrorResponse
// @Router /players/search [get]
func HandleSearchPlayers(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query, ok := GetQueryParam(r, w, "q")
		if !ok {
			return
		}

		players, err := svc.SearchPlayers(r.Context(), query)
		if err != nil {
			respondServiceError(w, r, "SearchPlayers", err)
			return
		}

		logger.FromContext(r.Context()).Debug("Player search", "query", query, "results", len(players))
		respondJSON(w, http.StatusOK, SearchPlayersResponse{Players: players})
	}
}

// HandleGetPlayerProfile returns another player's public profile.
func HandleGetPlayerProfile(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID := chi.URLParam(r, "playerID")

		profile, err := svc.GetPlayerProfile(r.Context(), playerID)
		if err != nil {
			respondServiceError(w, r, "GetPlayerProfile", err)
			return
		}

		respondJSON(w, http.StatusOK, profile)
	}
}

type CollectionResponse struct {
	Achievements []domain.Achievement `json:"achievements"`
	Collectibles []domain.Collectible `json:"collectibles"`
	TotalPoints  int                  `json:"total_points"`
}

// HandleGetCollection returns achievements, collectibles and collected points.
func HandleGetCollection(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, CollectionResponse{
			Achievements: svc.Achievements(),
			Collectibles: svc.Collectibles(),
			TotalPoints:  svc.CollectiblePoints(),
		})
	}
}

type CollectRequest struct {
	ID            string `json:"id" validate:"required,max=100"`
	Name          string `json:"name" validate:"max=100"`
	Type          string `json:"type" validate:"max=50"`
	Rarity        string `json:"rarity" validate:"max=50"`
	AccountPoints int    `json:"account_points" validate:"gte=0"`
}

// HandleCollectCollectible marks a collectible collected after remote
// confirmation. Collecting an already-held collectible is a no-op.
func HandleCollectCollectible(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CollectRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Collect collectible"); err != nil {
			return
		}

		collectible := domain.Collectible{
			ID:            req.ID,
			Name:          req.Name,
			Type:          req.Type,
			Rarity:        domain.Rarity(req.Rarity),
			AccountPoints: req.AccountPoints,
		}
		if err := svc.CollectCollectible(r.Context(), collectible); err != nil {
			respondServiceError(w, r, "CollectCollectible", err)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgCollectibleAdded})
	}
}
