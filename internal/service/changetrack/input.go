package changetrack

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/heartmarshall/customtrack-backend/internal/domain"
)

const (
	maxNameLength    = 200
	maxShortLength   = 120
	maxCommentLength = 1000
	maxNoteLength    = 500
)

// CreateEntityInput holds the parameters for creating a customization.
type CreateEntityInput struct {
	Kind                 domain.Kind
	Name                 string
	Module               *string
	ExternalID           *string
	TechnicalDescription *string
	Content              *string
	Status               domain.Status // empty = ACTIVE
	Version              *string
	Owner                *string
	OwnerEmail           *string
	IsActive             *bool // nil = true
	ExternalCreatedAt    *time.Time
	ExternalModifiedAt   *time.Time
}

// Validate checks all fields and collects all errors.
func (i CreateEntityInput) Validate() error {
	var errs []domain.FieldError

	if !i.Kind.IsValid() {
		errs = append(errs, domain.FieldError{Field: "kind", Message: "invalid value"})
	}
	errs = validateName(errs, i.Name)
	if i.Status != "" && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "invalid value"})
	}
	errs = validateShort(errs, "module", i.Module)
	errs = validateShort(errs, "external_id", i.ExternalID)
	errs = validateShort(errs, "version", i.Version)
	errs = validateShort(errs, "owner", i.Owner)
	errs = validateEmail(errs, i.OwnerEmail)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i CreateEntityInput) toDomain() domain.Customization {
	status := i.Status
	if status == "" {
		status = domain.StatusActive
	}
	active := true
	if i.IsActive != nil {
		active = *i.IsActive
	}
	return domain.Customization{
		ID:                   uuid.New(),
		Kind:                 i.Kind,
		Name:                 strings.TrimSpace(i.Name),
		Module:               trimOrNil(i.Module),
		ExternalID:           trimOrNil(i.ExternalID),
		TechnicalDescription: trimOrNil(i.TechnicalDescription),
		Content:              emptyToNil(i.Content),
		Status:               status,
		Version:              trimOrNil(i.Version),
		Owner:                trimOrNil(i.Owner),
		OwnerEmail:           trimOrNil(i.OwnerEmail),
		IsActive:             active,
		ExternalCreatedAt:    i.ExternalCreatedAt,
		ExternalModifiedAt:   i.ExternalModifiedAt,
	}
}

// UpdateEntityInput holds the parameters for updating a customization.
// For pointer fields nil means "don't change"; for text fields ptr("") clears the value.
type UpdateEntityInput struct {
	ID                   uuid.UUID
	Kind                 *domain.Kind
	Name                 *string
	Module               *string
	ExternalID           *string
	TechnicalDescription *string
	Content              *string
	Status               *domain.Status
	Version              *string
	Owner                *string
	OwnerEmail           *string
	IsActive             *bool
	ExternalCreatedAt    *time.Time
	ExternalModifiedAt   *time.Time
	Comment              string
}

// Validate checks all fields and collects all errors.
func (i UpdateEntityInput) Validate() error {
	var errs []domain.FieldError

	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.Kind != nil && !i.Kind.IsValid() {
		errs = append(errs, domain.FieldError{Field: "kind", Message: "invalid value"})
	}
	if i.Name != nil {
		errs = validateName(errs, *i.Name)
	}
	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "invalid value"})
	}
	errs = validateShort(errs, "module", i.Module)
	errs = validateShort(errs, "external_id", i.ExternalID)
	errs = validateShort(errs, "version", i.Version)
	errs = validateShort(errs, "owner", i.Owner)
	errs = validateEmail(errs, i.OwnerEmail)
	if len(i.Comment) > maxCommentLength {
		errs = append(errs, domain.FieldError{Field: "comment", Message: "max 1000 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// apply returns c with the requested changes applied.
func (i UpdateEntityInput) apply(c domain.Customization) domain.Customization {
	if i.Kind != nil {
		c.Kind = *i.Kind
	}
	if i.Name != nil {
		c.Name = strings.TrimSpace(*i.Name)
	}
	if i.Module != nil {
		c.Module = trimOrNil(i.Module)
	}
	if i.ExternalID != nil {
		c.ExternalID = trimOrNil(i.ExternalID)
	}
	if i.TechnicalDescription != nil {
		c.TechnicalDescription = trimOrNil(i.TechnicalDescription)
	}
	if i.Content != nil {
		c.Content = emptyToNil(i.Content)
	}
	if i.Status != nil {
		c.Status = *i.Status
	}
	if i.Version != nil {
		c.Version = trimOrNil(i.Version)
	}
	if i.Owner != nil {
		c.Owner = trimOrNil(i.Owner)
	}
	if i.OwnerEmail != nil {
		c.OwnerEmail = trimOrNil(i.OwnerEmail)
	}
	if i.IsActive != nil {
		c.IsActive = *i.IsActive
	}
	if i.ExternalCreatedAt != nil {
		c.ExternalCreatedAt = i.ExternalCreatedAt
	}
	if i.ExternalModifiedAt != nil {
		c.ExternalModifiedAt = i.ExternalModifiedAt
	}
	return c
}

// ChangeStatusInput holds the parameters for an explicit status transition.
type ChangeStatusInput struct {
	ID      uuid.UUID
	Status  domain.Status
	Comment string
}

// Validate checks all fields and collects all errors.
func (i ChangeStatusInput) Validate() error {
	var errs []domain.FieldError

	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "invalid value"})
	}
	if len(i.Comment) > maxCommentLength {
		errs = append(errs, domain.FieldError{Field: "comment", Message: "max 1000 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// CreateDependencyInput holds the parameters for linking two customizations.
type CreateDependencyInput struct {
	OriginID      uuid.UUID
	DestinationID uuid.UUID
	Relation      string // empty = DEPENDS_ON
	Note          string
}

// Validate checks all fields and collects all errors.
func (i CreateDependencyInput) Validate() error {
	d := i.toDomain()
	err := d.Validate()

	var errs []domain.FieldError
	if ve, ok := err.(*domain.ValidationError); ok {
		errs = append(errs, ve.Errors...)
	}
	if len(i.Note) > maxNoteLength {
		errs = append(errs, domain.FieldError{Field: "note", Message: "max 500 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i CreateDependencyInput) toDomain() domain.Dependency {
	relation := strings.ToUpper(strings.TrimSpace(i.Relation))
	if relation == "" {
		relation = domain.DefaultRelation
	}
	return domain.Dependency{
		ID:            uuid.New(),
		OriginID:      i.OriginID,
		DestinationID: i.DestinationID,
		Relation:      relation,
		Note:          strings.TrimSpace(i.Note),
	}
}

func validateName(errs []domain.FieldError, name string) []domain.FieldError {
	name = strings.TrimSpace(name)
	if name == "" {
		return append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(name) > maxNameLength {
		return append(errs, domain.FieldError{Field: "name", Message: "max 200 characters"})
	}
	return errs
}

func validateShort(errs []domain.FieldError, field string, v *string) []domain.FieldError {
	if v != nil && len(strings.TrimSpace(*v)) > maxShortLength {
		return append(errs, domain.FieldError{Field: field, Message: "max 120 characters"})
	}
	return errs
}

var validate = validator.New(validator.WithRequiredStructEnabled())

func validateEmail(errs []domain.FieldError, v *string) []domain.FieldError {
	if v == nil {
		return errs
	}
	email := strings.TrimSpace(*v)
	if email == "" {
		return errs
	}
	if len(email) > maxShortLength {
		return append(errs, domain.FieldError{Field: "owner_email", Message: "max 120 characters"})
	}
	if err := validate.Var(email, "email"); err != nil {
		return append(errs, domain.FieldError{Field: "owner_email", Message: "invalid email"})
	}
	return errs
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// emptyToNil keeps content verbatim but maps "" to nil.
func emptyToNil(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	v := *s
	return &v
}
