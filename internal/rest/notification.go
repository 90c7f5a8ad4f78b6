package rest

import (
	"net/http"

	"glowdesk-be/internal/notification"
	"glowdesk-be/internal/transport"
	"glowdesk-be/internal/utils"
)

type markAllReadResponse struct {
	Updated int64 `json:"updated"`
}

func (h *Handler) listNotifications(w http.ResponseWriter, r *http.Request) {
	list, err := h.Notifications.List(r.Context(), transport.QueryBool(r, "unread"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, notification.ToResponses(list))
}

func (h *Handler) markNotificationRead(w http.ResponseWriter, r *http.Request) {
	id, ok := transport.PathUUID(w, r, "id")
	if !ok {
		return
	}

	n, err := h.Notifications.MarkRead(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, notification.ToResponse(n))
}

func (h *Handler) markAllNotificationsRead(w http.ResponseWriter, r *http.Request) {
	n, err := h.Notifications.MarkAllRead(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, markAllReadResponse{Updated: n})
}
