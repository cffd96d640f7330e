package domain

import (
	"encoding/json"
	"fmt"
	"slices"
	"sort"
)

// Tracked field names. These are part of the audit contract: history rows
// written today must remain readable by consumers tomorrow.
const (
	FieldKind                 = "kind"
	FieldName                 = "name"
	FieldModule               = "module"
	FieldExternalID           = "externalId"
	FieldTechnicalDescription = "technicalDescription"
	FieldContent              = "content"
	FieldStatus               = "status"
	FieldExternalCreatedAt    = "externalCreatedAt"
	FieldExternalModifiedAt   = "externalModifiedAt"
	FieldVersion              = "version"
	FieldOwner                = "owner"
	FieldOwnerEmail           = "ownerEmail"
	FieldIsActive             = "isActive"
)

// TrackedFields is the fixed, ordered set of fields the diff engine compares.
var TrackedFields = []string{
	FieldKind,
	FieldName,
	FieldModule,
	FieldExternalID,
	FieldTechnicalDescription,
	FieldContent,
	FieldStatus,
	FieldExternalCreatedAt,
	FieldExternalModifiedAt,
	FieldVersion,
	FieldOwner,
	FieldOwnerEmail,
	FieldIsActive,
}

// IsTrackedField reports whether name belongs to TrackedFields.
func IsTrackedField(name string) bool {
	return slices.Contains(TrackedFields, name)
}

// FieldMap is a snapshot of an entity's tracked fields, keyed by field name.
// Values are expected to be normalised (see NormalizeValue).
type FieldMap map[string]any

// Get returns the value stored under name; absent fields read as nil.
func (m FieldMap) Get(name string) any {
	if m == nil {
		return nil
	}
	return m[name]
}

// String returns the value under name as a string, or "" when absent or not a string.
func (m FieldMap) String(name string) string {
	s, _ := m.Get(name).(string)
	return s
}

// FieldChange is an [old, new] pair. It serialises as a two-element JSON array.
type FieldChange struct {
	Old any
	New any
}

func (c FieldChange) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]any{c.Old, c.New})
}

func (c *FieldChange) UnmarshalJSON(data []byte) error {
	var pair []any
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("field change: %w", err)
	}
	if len(pair) != 2 {
		return fmt.Errorf("field change: expected [old, new], got %d elements", len(pair))
	}
	c.Old, c.New = pair[0], pair[1]
	return nil
}

// ChangeMap maps a field name to its [old, new] pair. Only changed fields appear.
type ChangeMap map[string]FieldChange

// Fields returns the changed field names in sorted order.
func (c ChangeMap) Fields() []string {
	names := make([]string, 0, len(c))
	for name := range c {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsEmpty reports whether no field changed.
func (c ChangeMap) IsEmpty() bool { return len(c) == 0 }
