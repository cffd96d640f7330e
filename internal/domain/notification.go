package domain

import (
	"time"

	"github.com/google/uuid"
)

// Notification tells a user, or everyone when RecipientID is nil, about a change.
type Notification struct {
	ID            uuid.UUID
	EntityID      *uuid.UUID
	AuditRecordID *uuid.UUID
	Type          NotificationType
	Message       string
	RecipientID   *uuid.UUID
	OriginActorID *uuid.UUID
	Read          bool
	CreatedAt     time.Time
}

// IsBroadcast reports whether the notification has no specific recipient.
func (n Notification) IsBroadcast() bool { return n.RecipientID == nil }

// Delivery records one channel attempt for a notification.
type Delivery struct {
	NotificationID uuid.UUID
	Channel        string
	Status         DeliveryStatus
	Error          *string
	AttemptedAt    time.Time
	FinishedAt     *time.Time
}
