package rest

import (
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/customtrack-backend/internal/domain"
)

type customizationResponse struct {
	ID                   uuid.UUID     `json:"id"`
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
	IsActive             bool          `json:"is_active"`
	ExternalCreatedAt    *time.Time    `json:"external_created_at"`
	ExternalModifiedAt   *time.Time    `json:"external_modified_at"`
	CreatedAt            time.Time     `json:"created_at"`
	UpdatedAt            time.Time     `json:"updated_at"`
}

func toCustomizationResponse(c domain.Customization) customizationResponse {
	return customizationResponse{
		ID:                   c.ID,
		Kind:                 c.Kind,
		Name:                 c.Name,
		Module:               c.Module,
		ExternalID:           c.ExternalID,
		TechnicalDescription: c.TechnicalDescription,
		Content:              c.Content,
		Status:               c.Status,
		Version:              c.Version,
		Owner:                c.Owner,
		OwnerEmail:           c.OwnerEmail,
		IsActive:             c.IsActive,
		ExternalCreatedAt:    c.ExternalCreatedAt,
		ExternalModifiedAt:   c.ExternalModifiedAt,
		CreatedAt:            c.CreatedAt,
		UpdatedAt:            c.UpdatedAt,
	}
}

type dependencyResponse struct {
	ID            uuid.UUID `json:"id"`
	OriginID      uuid.UUID `json:"origin_id"`
	DestinationID uuid.UUID `json:"destination_id"`
	Relation      string    `json:"relation"`
	Note          string    `json:"note,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

func toDependencyResponse(d domain.Dependency) dependencyResponse {
	return dependencyResponse{
		ID:            d.ID,
		OriginID:      d.OriginID,
		DestinationID: d.DestinationID,
		Relation:      d.Relation,
		Note:          d.Note,
		CreatedAt:     d.CreatedAt,
	}
}

type auditRecordResponse struct {
	Seq        int64              `json:"seq"`
	ID         uuid.UUID          `json:"id"`
	EntityID   *uuid.UUID         `json:"entity_id"`
	EntityName string             `json:"entity_name"`
	Action     domain.AuditAction `json:"action"`
	ActorID    *uuid.UUID         `json:"actor_id"`
	Changes    domain.ChangeMap   `json:"changes"`
	Comment    string             `json:"comment,omitempty"`
	OccurredAt time.Time          `json:"occurred_at"`
}

func toAuditRecordResponse(r domain.AuditRecord) auditRecordResponse {
	changes := r.Changes
	if changes == nil {
		changes = domain.ChangeMap{}
	}
	return auditRecordResponse{
		Seq:        r.Seq,
		ID:         r.ID,
		EntityID:   r.EntityID,
		EntityName: r.EntityName,
		Action:     r.Action,
		ActorID:    r.ActorID,
		Changes:    changes,
		Comment:    r.Comment,
		OccurredAt: r.OccurredAt,
	}
}

type notificationResponse struct {
	ID            uuid.UUID               `json:"id"`
	EntityID      *uuid.UUID              `json:"entity_id"`
	AuditRecordID *uuid.UUID              `json:"audit_record_id"`
	Type          domain.NotificationType `json:"type"`
	Message       string                  `json:"message"`
	RecipientID   *uuid.UUID              `json:"recipient_id"`
	OriginActorID *uuid.UUID              `json:"origin_actor_id"`
	Read          bool                    `json:"read"`
	CreatedAt     time.Time               `json:"created_at"`
}

func toNotificationResponse(n domain.Notification) notificationResponse {
	return notificationResponse{
		ID:            n.ID,
		EntityID:      n.EntityID,
		AuditRecordID: n.AuditRecordID,
		Type:          n.Type,
		Message:       n.Message,
		RecipientID:   n.RecipientID,
		OriginActorID: n.OriginActorID,
		Read:          n.Read,
		CreatedAt:     n.CreatedAt,
	}
}

type subscriptionResponse struct {
	ID        uuid.UUID    `json:"id"`
	Scope     domain.Scope `json:"scope"`
	Module    *string      `json:"module,omitempty"`
	EntityID  *uuid.UUID   `json:"entity_id,omitempty"`
	Active    bool         `json:"active"`
	CreatedAt time.Time    `json:"created_at"`
}

func toSubscriptionResponse(s domain.Subscription) subscriptionResponse {
	return subscriptionResponse{
		ID:        s.ID,
		Scope:     s.Scope,
		Module:    s.Module,
		EntityID:  s.EntityID,
		Active:    s.Active,
		CreatedAt: s.CreatedAt,
	}
}

type userResponse struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
}

// mapSlice converts a slice of domain values into response values.
func mapSlice[T, R any](items []T, fn func(T) R) []R {
	out := make([]R, 0, len(items))
	for _, item := range items {
		out = append(out, fn(item))
	}
	return out
}
