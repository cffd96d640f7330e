package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/heartmarshall/customtrack-backend/internal/domain"
)

type notificationService interface {
	List(ctx context.Context, userID uuid.UUID, unreadOnly bool, limit int) ([]domain.Notification, error)
	MarkRead(ctx context.Context, id, userID uuid.UUID) (*domain.Notification, error)
	MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error)
}

// NotificationHandler serves the caller's notification inbox.
type NotificationHandler struct {
	svc notificationService
	log *slog.Logger
}

// NewNotificationHandler creates a NotificationHandler.
func NewNotificationHandler(svc notificationService, logger *slog.Logger) *NotificationHandler {
	return &NotificationHandler{svc: svc, log: logger.With("handler", "notification")}
}

// RegisterRoutes registers notification routes. All of them need an actor.
func (h *NotificationHandler) RegisterRoutes(r *gin.RouterGroup) {
	notifications := r.Group("/notifications")
	{
		notifications.GET("", h.List)
		notifications.POST("/read-all", h.MarkAllRead)
		notifications.POST("/:id/read", h.MarkRead)
	}
}

// List handles GET /notifications?unread=true&limit=.
func (h *NotificationHandler) List(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	unreadOnly, _ := strconv.ParseBool(c.Query("unread"))
	limit := 0
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, errorResponse{
				Error:  "validation failed",
				Fields: []fieldErrorEntry{{Field: "limit", Message: "must be an integer"}},
			})
			return
		}
		limit = n
	}

	items, err := h.svc.List(c.Request.Context(), userID, unreadOnly, limit)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": mapSlice(items, toNotificationResponse)})
}

// MarkRead handles POST /notifications/:id/read.
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	n, err := h.svc.MarkRead(c.Request.Context(), id, userID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, toNotificationResponse(*n))
}

// MarkAllRead handles POST /notifications/read-all.
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	updated, err := h.svc.MarkAllRead(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"updated": updated})
}
