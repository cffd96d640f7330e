package subscription

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/heartmarshall/customtrack-backend/internal/domain"
)

const maxModuleLength = 120

// SubscribeInput describes a new subscription for the calling user.
type SubscribeInput struct {
	Scope    domain.Scope
	Module   *string
	EntityID *uuid.UUID
}

func (i SubscribeInput) toDomain(userID uuid.UUID) domain.Subscription {
	var module *string
	if i.Module != nil {
		if m := strings.TrimSpace(*i.Module); m != "" {
			module = &m
		}
	}
	return domain.Subscription{
		ID:       uuid.New(),
		UserID:   userID,
		Scope:    domain.Scope(strings.ToUpper(string(i.Scope))),
		Module:   module,
		EntityID: i.EntityID,
		Active:   true,
	}
}

// Validate checks the scope/qualifier combination.
func (i SubscribeInput) Validate(userID uuid.UUID) error {
	s := i.toDomain(userID)
	if err := s.Validate(); err != nil {
		return err
	}
	if s.Module != nil && len(*s.Module) > maxModuleLength {
		return domain.NewValidationError("module", "too long")
	}
	return nil
}

// WebhookInput is one chat webhook target.
type WebhookInput struct {
	Name    string `json:"name"    validate:"required,max=60,excludesall= /"`
	URL     string `json:"url"     validate:"required,http_url,max=2048"`
	Enabled bool   `json:"enabled"`
}

// UpdateChannelConfigInput replaces a user's delivery preferences.
type UpdateChannelConfigInput struct {
	EmailEnabled bool           `json:"email_enabled"`
	Webhooks     []WebhookInput `json:"webhooks"      validate:"max=10,unique=Name,dive"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks webhook names and URLs.
func (i UpdateChannelConfigInput) Validate() error {
	err := validate.Struct(i)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fieldErrs := make([]domain.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fieldErrs = append(fieldErrs, domain.FieldError{
			Field:   fieldPath(fe.Namespace()),
			Message: validationMessage(fe),
		})
	}
	return domain.NewValidationErrors(fieldErrs)
}

// fieldPath drops the root struct name from a validator namespace.
func fieldPath(ns string) string {
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "required"
	case "http_url":
		return "must be an http(s) URL"
	case "max":
		return "too long"
	case "unique":
		return "names must be unique"
	case "excludesall":
		return "must not contain spaces or slashes"
	}
	return "invalid value"
}

func (i UpdateChannelConfigInput) toDomain(userID uuid.UUID) domain.ChannelConfig {
	webhooks := make([]domain.WebhookChannel, 0, len(i.Webhooks))
	for _, w := range i.Webhooks {
		webhooks = append(webhooks, domain.WebhookChannel{
			Name:    strings.TrimSpace(w.Name),
			URL:     strings.TrimSpace(w.URL),
			Enabled: w.Enabled,
		})
	}
	return domain.ChannelConfig{
		UserID:       userID,
		EmailEnabled: i.EmailEnabled,
		Webhooks:     webhooks,
	}
}
