package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/xenopets/XenoPets_Go/internal/domain"
	"github.com/xenopets/XenoPets_Go/internal/game"
)

type NotificationsResponse struct {
	Notifications []domain.Notification `json:"notifications"`
}

// HandleGetNotifications returns notifications, newest first.
func HandleGetNotifications(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, NotificationsResponse{Notifications: svc.Notifications()})
	}
}

type MarkReadResponse struct {
	Marked bool `json:"marked"`
}

// HandleMarkNotificationRead marks one notification read by id.
func HandleMarkNotificationRead(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "notificationID")
		marked := svc.MarkNotificationRead(r.Context(), id)
		respondJSON(w, http.StatusOK, MarkReadResponse{Marked: marked})
	}
}

// HandleMarkAllNotificationsRead marks every notification read.
func HandleMarkAllNotificationsRead(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		svc.MarkAllNotificationsRead(r.Context())
		respondJSON(w, http.StatusOK, SuccessResponse{Message: "All notifications marked read"})
	}
}

type DeleteNotificationResponse struct {
	Deleted bool `json:"deleted"`
}

// HandleDeleteNotification removes one notification by id.
func HandleDeleteNotification(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "notificationID")
		deleted := svc.DeleteNotification(r.Context(), id)
		respondJSON(w, http.StatusOK, DeleteNotificationResponse{Deleted: deleted})
	}
}

// HandleClearNotifications removes every notification.
func HandleClearNotifications(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		svc.ClearNotifications(r.Context())
		respondJSON(w, http.StatusOK, SuccessResponse{Message: "Notifications cleared"})
	}
}
