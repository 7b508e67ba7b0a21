package handler

import (
	"net/http"

	"github.com/xenopets/XenoPets_Go/internal/domain"
	"github.com/xenopets/XenoPets_Go/internal/game"
	"github.com/xenopets/XenoPets_Go/internal/logger"
)

type LoginRequest struct {
	UserID   string `json:"user_id" validate:"required,max=100"`
	Username string `json:"username" validate:"required,max=100,excludesall=\x00\n\r\t"`
	IsAdmin  bool   `json:"is_admin"`
	NewUser  bool   `json:"new_user"`
}

type SessionResponse struct {
	Message  string       `json:"message"`
	User     *domain.User `json:"user,omitempty"`
	Restored bool         `json:"restored,omitempty"`
}

// HandleLogin starts a session for a user. With new_user set the session is
// seeded with starter state; otherwise a stored snapshot is restored when one
// exists, and remote user data is loaded on top.
// @Summary Start session
// @Tags session
// @Accept json
// @Produce json
// @Param request body LoginRequest true "User identity"
// @Success 200 {object} SessionResponse
// @Router /session/login [post]
func HandleLogin(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req LoginRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Login"); err != nil {
			return
		}

		user := domain.User{
			ID:       req.UserID,
			Username: req.Username,
			IsAdmin:  req.IsAdmin,
		}

		if req.NewUser {
			if err := svc.InitializeNewUser(r.Context(), user); err != nil {
				respondServiceError(w, r, "InitializeNewUser", err)
				return
			}
			log.Info("New user initialized", "user_id", user.ID)
			respondJSON(w, http.StatusOK, SessionResponse{
				Message: MsgUserInitialized,
				User:    svc.CurrentUser(),
			})
			return
		}

		restored, err := svc.Restore(r.Context(), user.ID)
		if err != nil {
			respondServiceError(w, r, "Restore", err)
			return
		}
		if !restored {
			if err := svc.SetUser(r.Context(), &user); err != nil {
				respondServiceError(w, r, "SetUser", err)
				return
			}
		}

		if err := svc.LoadUserData(r.Context(), user.ID); err != nil {
			respondServiceError(w, r, "LoadUserData", err)
			return
		}

		log.Info("Session started", "user_id", user.ID, "restored", restored)

		respondJSON(w, http.StatusOK, SessionResponse{
			Message:  MsgSessionStarted,
			User:     svc.CurrentUser(),
			Restored: restored,
		})
	}
}

// HandleLogout ends the session and wipes per-user state.
func HandleLogout(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.SetUser(r.Context(), nil); err != nil {
			respondServiceError(w, r, "Logout", err)
			return
		}

		logger.FromContext(r.Context()).Info("Session ended")
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgSessionEnded})
	}
}

// HandleGetCurrentUser returns the logged-in user.
func HandleGetCurrentUser(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := svc.CurrentUser()
		if user == nil {
			respondError(w, http.StatusUnauthorized, ErrMsgNotLoggedInHTTP)
			return
		}
		respondJSON(w, http.StatusOK, user)
	}
}

// HandleSaveSession persists the session snapshot.
func HandleSaveSession(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.SaveSnapshot(r.Context()); err != nil {
			respondServiceError(w, r, "SaveSnapshot", err)
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgSnapshotSaved})
	}
}

// HandleReloadUserData refreshes session state from the remote service.
func HandleReloadUserData(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := svc.CurrentUser()
		if user == nil {
			respondError(w, http.StatusUnauthorized, ErrMsgNotLoggedInHTTP)
			return
		}

		if err := svc.LoadUserData(r.Context(), user.ID); err != nil {
			respondServiceError(w, r, "LoadUserData", err)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgUserDataLoaded})
	}
}
