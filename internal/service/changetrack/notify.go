package changetrack

import (
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/customtrack-backend/internal/domain"
)

func newEntityMessage(name string) string     { return "New customization: " + name }
func changedEntityMessage(name string) string { return "Customization changed: " + name }
func deletedEntityMessage(name string) string { return "Customization deleted: " + name }

func statusChangedMessage(name string, from, to domain.Status) string {
	return "Customization status changed: " + name + " (" + from.String() + " -> " + to.String() + ")"
}

func dependencyMessage(action domain.MutationAction, origin, destination string) string {
	if action == domain.MutationDelete {
		return "Dependency removed: " + origin + " -> " + destination
	}
	return "Dependency added: " + origin + " -> " + destination
}

// buildNotifications returns one notification per recipient, or a single
// broadcast (nil recipient) when nobody is subscribed.
func buildNotifications(
	record domain.AuditRecord,
	typ domain.NotificationType,
	message string,
	recipients []uuid.UUID,
	now time.Time,
) []domain.Notification {
	base := domain.Notification{
		EntityID:      record.EntityID,
		AuditRecordID: &record.ID,
		Type:          typ,
		Message:       message,
		OriginActorID: record.ActorID,
		CreatedAt:     now,
	}

	if len(recipients) == 0 {
		n := base
		n.ID = uuid.New()
		return []domain.Notification{n}
	}

	out := make([]domain.Notification, 0, len(recipients))
	for _, userID := range recipients {
		n := base
		n.ID = uuid.New()
		n.RecipientID = &userID
		out = append(out, n)
	}
	return out
}
