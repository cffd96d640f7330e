package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/heartmarshall/customtrack-backend/internal/domain"
	"github.com/heartmarshall/customtrack-backend/internal/service/subscription"
)

type subscriptionService interface {
	Subscribe(ctx context.Context, userID uuid.UUID, input subscription.SubscribeInput) (*domain.Subscription, error)
	Unsubscribe(ctx context.Context, userID, id uuid.UUID) error
	SetActive(ctx context.Context, userID, id uuid.UUID, active bool) (*domain.Subscription, error)
	ListForUser(ctx context.Context, userID uuid.UUID) ([]domain.Subscription, error)
	GetChannelConfig(ctx context.Context, userID uuid.UUID) (*domain.ChannelConfig, error)
	UpdateChannelConfig(ctx context.Context, userID uuid.UUID, input subscription.UpdateChannelConfigInput) (*domain.ChannelConfig, error)
	ProvisionUser(ctx context.Context, input subscription.ProvisionUserInput) (*domain.User, error)
}

// SubscriptionHandler serves subscriptions, channel configuration and user
// provisioning.
type SubscriptionHandler struct {
	svc subscriptionService
	log *slog.Logger
}

// NewSubscriptionHandler creates a SubscriptionHandler.
func NewSubscriptionHandler(svc subscriptionService, logger *slog.Logger) *SubscriptionHandler {
	return &SubscriptionHandler{svc: svc, log: logger.With("handler", "subscription")}
}

// RegisterRoutes registers per-user routes. They all need an actor.
func (h *SubscriptionHandler) RegisterRoutes(r *gin.RouterGroup) {
	subscriptions := r.Group("/subscriptions")
	{
		subscriptions.GET("", h.List)
		subscriptions.POST("", h.Subscribe)
		subscriptions.PATCH("/:id", h.SetActive)
		subscriptions.DELETE("/:id", h.Unsubscribe)
	}

	r.GET("/channel-config", h.GetChannelConfig)
	r.PUT("/channel-config", h.UpdateChannelConfig)
}

// RegisterProvisioning registers the identity-provider hook.
func (h *SubscriptionHandler) RegisterProvisioning(r *gin.RouterGroup) {
	r.POST("/users", h.ProvisionUser)
}

type subscribeRequest struct {
	Scope    domain.Scope `json:"scope"`
	Module   *string      `json:"module"`
	EntityID *uuid.UUID   `json:"entity_id"`
}

type setActiveRequest struct {
	Active *bool `json:"active"`
}

type provisionUserRequest struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
}

// List handles GET /subscriptions.
func (h *SubscriptionHandler) List(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	subs, err := h.svc.ListForUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": mapSlice(subs, toSubscriptionResponse)})
}

// Subscribe handles POST /subscriptions.
func (h *SubscriptionHandler) Subscribe(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	var req subscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	sub, err := h.svc.Subscribe(c.Request.Context(), userID, subscription.SubscribeInput{
		Scope:    req.Scope,
		Module:   req.Module,
		EntityID: req.EntityID,
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, toSubscriptionResponse(*sub))
}

// SetActive handles PATCH /subscriptions/:id.
func (h *SubscriptionHandler) SetActive(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req setActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}
	if req.Active == nil {
		respondError(c, h.log, domain.NewValidationError("active", "required"))
		return
	}

	sub, err := h.svc.SetActive(c.Request.Context(), userID, id, *req.Active)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, toSubscriptionResponse(*sub))
}

// Unsubscribe handles DELETE /subscriptions/:id.
func (h *SubscriptionHandler) Unsubscribe(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.svc.Unsubscribe(c.Request.Context(), userID, id); err != nil {
		respondError(c, h.log, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// GetChannelConfig handles GET /channel-config.
func (h *SubscriptionHandler) GetChannelConfig(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	cfg, err := h.svc.GetChannelConfig(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, cfg)
}

// UpdateChannelConfig handles PUT /channel-config.
func (h *SubscriptionHandler) UpdateChannelConfig(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	var req subscription.UpdateChannelConfigInput
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	cfg, err := h.svc.UpdateChannelConfig(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, cfg)
}

// ProvisionUser handles POST /users.
func (h *SubscriptionHandler) ProvisionUser(c *gin.Context) {
	var req provisionUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	user, err := h.svc.ProvisionUser(c.Request.Context(), subscription.ProvisionUserInput{
		ID:       req.ID,
		Username: req.Username,
		Email:    req.Email,
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, userResponse{ID: user.ID, Username: user.Username, Email: user.Email})
}
