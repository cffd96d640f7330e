package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Trackable is an entity whose tracked fields flow through the change pipeline.
type Trackable interface {
	TrackedID() uuid.UUID
	TrackedModule() string
	DisplayName() string
	ToFieldMap() FieldMap
}

// Customization is an ERP customization (formula, SQL query, report) under change audit.
type Customization struct {
	ID                   uuid.UUID
	Kind                 Kind
	Name                 string
	Module               *string
	ExternalID           *string
	TechnicalDescription *string
	Content              *string
	Status               Status
	Version              *string
	Owner                *string
	OwnerEmail           *string
	IsActive             bool
	ExternalCreatedAt    *time.Time
	ExternalModifiedAt   *time.Time
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

var _ Trackable = Customization{}

func (c Customization) TrackedID() uuid.UUID { return c.ID }

func (c Customization) TrackedModule() string {
	if c.Module == nil {
		return ""
	}
	return *c.Module
}

func (c Customization) DisplayName() string { return c.Name }

// ToFieldMap returns the normalised tracked-field snapshot of c.
func (c Customization) ToFieldMap() FieldMap {
	return FieldMap{
		FieldKind:                 NormalizeValue(c.Kind),
		FieldName:                 NormalizeValue(c.Name),
		FieldModule:               NormalizeValue(c.Module),
		FieldExternalID:           NormalizeValue(c.ExternalID),
		FieldTechnicalDescription: NormalizeValue(c.TechnicalDescription),
		FieldContent:              NormalizeValue(c.Content),
		FieldStatus:               NormalizeValue(c.Status),
		FieldExternalCreatedAt:    NormalizeValue(c.ExternalCreatedAt),
		FieldExternalModifiedAt:   NormalizeValue(c.ExternalModifiedAt),
		FieldVersion:              NormalizeValue(c.Version),
		FieldOwner:                NormalizeValue(c.Owner),
		FieldOwnerEmail:           NormalizeValue(c.OwnerEmail),
		FieldIsActive:             NormalizeValue(c.IsActive),
	}
}

// SearchText is the text blob fed to the search-index embedder.
func (c Customization) SearchText() string {
	parts := make([]string, 0, 5)
	for _, s := range []*string{&c.Name, c.Module, c.ExternalID, c.TechnicalDescription, c.Content} {
		if s != nil && *s != "" {
			parts = append(parts, *s)
		}
	}
	return strings.Join(parts, "\n")
}

