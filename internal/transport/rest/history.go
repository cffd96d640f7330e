package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/heartmarshall/customtrack-backend/internal/domain"
)

type historyService interface {
	ListAuditHistory(ctx context.Context, entityID *uuid.UUID, page domain.Page) ([]domain.AuditRecord, error)
}

// HistoryHandler serves the audit history endpoint.
type HistoryHandler struct {
	svc historyService
	log *slog.Logger
}

// NewHistoryHandler creates a HistoryHandler.
func NewHistoryHandler(svc historyService, logger *slog.Logger) *HistoryHandler {
	return &HistoryHandler{svc: svc, log: logger.With("handler", "history")}
}

// RegisterRoutes registers the history route.
func (h *HistoryHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/history", h.List)
}

// List handles GET /history?entity_id=&limit=&offset=.
func (h *HistoryHandler) List(c *gin.Context) {
	page, ok := pageFromQuery(c)
	if !ok {
		return
	}

	var entityID *uuid.UUID
	if v := c.Query("entity_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, errorResponse{
				Error:  "validation failed",
				Fields: []fieldErrorEntry{{Field: "entity_id", Message: "invalid UUID"}},
			})
			return
		}
		entityID = &id
	}

	records, err := h.svc.ListAuditHistory(c.Request.Context(), entityID, page)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": mapSlice(records, toAuditRecordResponse)})
}
