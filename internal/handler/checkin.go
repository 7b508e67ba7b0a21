package handler

import (
	"net/http"

	"github.com/xenopets/XenoPets_Go/internal/game"
	"github.com/xenopets/XenoPets_Go/internal/logger"
)

// HandleDailyCheckin claims the daily reward. Once per UTC day; consecutive
// days grow the streak and every seventh day pays a bonus.
// @Summary Daily check-in
// @Tags checkin
// @Produce json
// @Success 200 {object} game.CheckinResult
// @Failure 409 {object} ErrorResponse "Already checked in today"
// @Failure 502 {object} ErrorResponse
// @Router /checkin [post]
func HandleDailyCheckin(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := svc.DailyCheckin(r.Context())
		if err != nil {
			respondServiceError(w, r, "DailyCheckin", err)
			return
		}

		logger.FromContext(r.Context()).Info("Daily check-in",
			"streak", result.Streak,
			"reward", result.Reward,
			"weekly_bonus", result.WeeklyBonus)

		respondJSON(w, http.StatusOK, result)
	}
}
