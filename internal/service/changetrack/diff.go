package changetrack

import (
	"reflect"

	"github.com/heartmarshall/customtrack-backend/internal/domain"
)

// Diff compares before and after over domain.TrackedFields and returns the
// fields whose normalised values differ. Fields missing from a map read as nil.
func Diff(before, after domain.FieldMap) domain.ChangeMap {
	changes := domain.ChangeMap{}
	for _, field := range domain.TrackedFields {
		oldValue := domain.NormalizeField(field, before.Get(field))
		newValue := domain.NormalizeField(field, after.Get(field))
		if reflect.DeepEqual(oldValue, newValue) {
			continue
		}
		changes[field] = domain.FieldChange{Old: oldValue, New: newValue}
	}
	return changes
}
