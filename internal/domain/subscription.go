package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Subscription declares a user's interest in changes to customizations.
// Exactly the qualifier matching Scope is set: Module for MODULE,
// EntityID for ITEM, neither for ALL.
type Subscription struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Scope     Scope
	Module    *string
	EntityID  *uuid.UUID
	Active    bool
	CreatedAt time.Time
}

// Validate checks the scope/qualifier invariant.
func (s Subscription) Validate() error {
	var errs []FieldError

	if s.UserID == uuid.Nil {
		errs = append(errs, FieldError{Field: "user_id", Message: "required"})
	}

	hasModule := s.Module != nil && strings.TrimSpace(*s.Module) != ""
	hasEntity := s.EntityID != nil && *s.EntityID != uuid.Nil

	switch s.Scope {
	case ScopeAll:
		if hasModule || hasEntity {
			errs = append(errs, FieldError{Field: "scope", Message: "ALL takes no qualifier"})
		}
	case ScopeModule:
		if !hasModule {
			errs = append(errs, FieldError{Field: "module", Message: "required for MODULE scope"})
		}
		if hasEntity {
			errs = append(errs, FieldError{Field: "entity_id", Message: "not allowed for MODULE scope"})
		}
	case ScopeItem:
		if !hasEntity {
			errs = append(errs, FieldError{Field: "entity_id", Message: "required for ITEM scope"})
		}
		if hasModule {
			errs = append(errs, FieldError{Field: "module", Message: "not allowed for ITEM scope"})
		}
	default:
		errs = append(errs, FieldError{Field: "scope", Message: "invalid value"})
	}

	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}

// Matches reports whether the subscription selects entity t.
// Inactive subscriptions never match.
func (s Subscription) Matches(t Trackable) bool {
	if !s.Active {
		return false
	}
	switch s.Scope {
	case ScopeAll:
		return true
	case ScopeModule:
		return s.Module != nil && *s.Module != "" && *s.Module == t.TrackedModule()
	case ScopeItem:
		return s.EntityID != nil && *s.EntityID == t.TrackedID()
	}
	return false
}
