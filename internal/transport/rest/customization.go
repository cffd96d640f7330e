package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/heartmarshall/customtrack-backend/internal/domain"
	"github.com/heartmarshall/customtrack-backend/internal/service/changetrack"
)

// changeTracker is the part of changetrack.Service the REST layer drives.
type changeTracker interface {
	CreateEntity(ctx context.Context, actor *uuid.UUID, input changetrack.CreateEntityInput) (*domain.Customization, error)
	UpdateEntity(ctx context.Context, actor *uuid.UUID, input changetrack.UpdateEntityInput) (*domain.Customization, error)
	ChangeStatus(ctx context.Context, actor *uuid.UUID, input changetrack.ChangeStatusInput) (*domain.Customization, error)
	DeleteEntity(ctx context.Context, actor *uuid.UUID, id uuid.UUID) error
	GetEntity(ctx context.Context, id uuid.UUID) (*domain.Customization, error)
	ListEntities(ctx context.Context, f domain.CustomizationFilter, page domain.Page) ([]domain.Customization, error)
	CreateDependency(ctx context.Context, actor *uuid.UUID, input changetrack.CreateDependencyInput) (*domain.Dependency, error)
	DeleteDependency(ctx context.Context, actor *uuid.UUID, id uuid.UUID) error
	ClearDependencies(ctx context.Context, actor *uuid.UUID, id uuid.UUID) (int, error)
	ListDependencies(ctx context.Context, id uuid.UUID) ([]domain.Dependency, error)
}

// CustomizationHandler serves customization and dependency endpoints.
type CustomizationHandler struct {
	svc changeTracker
	log *slog.Logger
}

// NewCustomizationHandler creates a CustomizationHandler.
func NewCustomizationHandler(svc changeTracker, logger *slog.Logger) *CustomizationHandler {
	return &CustomizationHandler{svc: svc, log: logger.With("handler", "customization")}
}

// RegisterRoutes registers customization and dependency routes.
func (h *CustomizationHandler) RegisterRoutes(r *gin.RouterGroup) {
	customizations := r.Group("/customizations")
	{
		customizations.POST("", h.Create)
		customizations.GET("", h.List)
		customizations.GET("/:id", h.Get)
		customizations.PATCH("/:id", h.Update)
		customizations.DELETE("/:id", h.Delete)
		customizations.POST("/:id/status", h.ChangeStatus)
		customizations.GET("/:id/dependencies", h.ListDependencies)
		customizations.DELETE("/:id/dependencies", h.ClearDependencies)
	}

	dependencies := r.Group("/dependencies")
	{
		dependencies.POST("", h.CreateDependency)
		dependencies.DELETE("/:id", h.DeleteDependency)
	}
}

type createCustomizationRequest struct {
	Kind                 domain.Kind   `json:"kind"`
	Name                 string        `json:"name"`
	Module               *string       `json:"module"`
	ExternalID           *string       `json:"external_id"`
	TechnicalDescription *string       `json:"technical_description"`
	Content              *string       `json:"content"`
	Status               domain.Status `json:"status"`
	Version              *string       `json:"version"`
	Owner                *string       `json:"owner"`
	OwnerEmail           *string       `json:"owner_email"`
	IsActive             *bool         `json:"is_active"`
	ExternalCreatedAt    *time.Time    `json:"external_created_at"`
	ExternalModifiedAt   *time.Time    `json:"external_modified_at"`
}

type updateCustomizationRequest struct {
	Kind                 *domain.Kind   `json:"kind"`
	Name                 *string        `json:"name"`
	Module               *string        `json:"module"`
	ExternalID           *string        `json:"external_id"`
	TechnicalDescription *string        `json:"technical_description"`
	Content              *string        `json:"content"`
	Status               *domain.Status `json:"status"`
	Version              *string        `json:"version"`
	Owner                *string        `json:"owner"`
	OwnerEmail           *string        `json:"owner_email"`
	IsActive             *bool          `json:"is_active"`
	ExternalCreatedAt    *time.Time     `json:"external_created_at"`
	ExternalModifiedAt   *time.Time     `json:"external_modified_at"`
	Comment              string         `json:"comment"`
}

type changeStatusRequest struct {
	Status  domain.Status `json:"status"`
	Comment string        `json:"comment"`
}

type createDependencyRequest struct {
	OriginID      uuid.UUID `json:"origin_id"`
	DestinationID uuid.UUID `json:"destination_id"`
	Relation      string    `json:"relation"`
	Note          string    `json:"note"`
}

// Create handles POST /customizations.
func (h *CustomizationHandler) Create(c *gin.Context) {
	var req createCustomizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	created, err := h.svc.CreateEntity(c.Request.Context(), actorFrom(c), changetrack.CreateEntityInput{
		Kind:                 req.Kind,
		Name:                 req.Name,
		Module:               req.Module,
		ExternalID:           req.ExternalID,
		TechnicalDescription: req.TechnicalDescription,
		Content:              req.Content,
		Status:               req.Status,
		Version:              req.Version,
		Owner:                req.Owner,
		OwnerEmail:           req.OwnerEmail,
		IsActive:             req.IsActive,
		ExternalCreatedAt:    req.ExternalCreatedAt,
		ExternalModifiedAt:   req.ExternalModifiedAt,
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, toCustomizationResponse(*created))
}

// Get handles GET /customizations/:id.
func (h *CustomizationHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	found, err := h.svc.GetEntity(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, toCustomizationResponse(*found))
}

// List handles GET /customizations?module=&kind=&status=&limit=&offset=.
func (h *CustomizationHandler) List(c *gin.Context) {
	page, ok := pageFromQuery(c)
	if !ok {
		return
	}

	filter := domain.CustomizationFilter{
		Module: c.Query("module"),
		Kind:   domain.Kind(c.Query("kind")),
		Status: domain.Status(c.Query("status")),
	}
	items, err := h.svc.ListEntities(c.Request.Context(), filter, page)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": mapSlice(items, toCustomizationResponse)})
}

// Update handles PATCH /customizations/:id.
func (h *CustomizationHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req updateCustomizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	updated, err := h.svc.UpdateEntity(c.Request.Context(), actorFrom(c), changetrack.UpdateEntityInput{
		ID:                   id,
		Kind:                 req.Kind,
		Name:                 req.Name,
		Module:               req.Module,
		ExternalID:           req.ExternalID,
		TechnicalDescription: req.TechnicalDescription,
		Content:              req.Content,
		Status:               req.Status,
		Version:              req.Version,
		Owner:                req.Owner,
		OwnerEmail:           req.OwnerEmail,
		IsActive:             req.IsActive,
		ExternalCreatedAt:    req.ExternalCreatedAt,
		ExternalModifiedAt:   req.ExternalModifiedAt,
		Comment:              req.Comment,
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, toCustomizationResponse(*updated))
}

// ChangeStatus handles POST /customizations/:id/status.
func (h *CustomizationHandler) ChangeStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req changeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	updated, err := h.svc.ChangeStatus(c.Request.Context(), actorFrom(c), changetrack.ChangeStatusInput{
		ID:      id,
		Status:  req.Status,
		Comment: req.Comment,
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, toCustomizationResponse(*updated))
}

// Delete handles DELETE /customizations/:id.
func (h *CustomizationHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.svc.DeleteEntity(c.Request.Context(), actorFrom(c), id); err != nil {
		respondError(c, h.log, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListDependencies handles GET /customizations/:id/dependencies.
func (h *CustomizationHandler) ListDependencies(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	deps, err := h.svc.ListDependencies(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": mapSlice(deps, toDependencyResponse)})
}

// ClearDependencies handles DELETE /customizations/:id/dependencies.
func (h *CustomizationHandler) ClearDependencies(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	removed, err := h.svc.ClearDependencies(c.Request.Context(), actorFrom(c), id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"removed": removed})
}

// CreateDependency handles POST /dependencies.
func (h *CustomizationHandler) CreateDependency(c *gin.Context) {
	var req createDependencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	created, err := h.svc.CreateDependency(c.Request.Context(), actorFrom(c), changetrack.CreateDependencyInput{
		OriginID:      req.OriginID,
		DestinationID: req.DestinationID,
		Relation:      req.Relation,
		Note:          req.Note,
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, toDependencyResponse(*created))
}

// DeleteDependency handles DELETE /dependencies/:id.
func (h *CustomizationHandler) DeleteDependency(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.svc.DeleteDependency(c.Request.Context(), actorFrom(c), id); err != nil {
		respondError(c, h.log, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// pageFromQuery reads limit and offset, answering 400 when either is not an
// integer. Range checks are left to the services.
func pageFromQuery(c *gin.Context) (domain.Page, bool) {
	var page domain.Page
	var errs []fieldErrorEntry
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, fieldErrorEntry{Field: "limit", Message: "must be an integer"})
		}
		page.Limit = n
	}
	if v := c.Query("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, fieldErrorEntry{Field: "offset", Message: "must be an integer"})
		}
		page.Offset = n
	}
	if len(errs) > 0 {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "validation failed", Fields: errs})
		return domain.Page{}, false
	}
	return page, true
}
