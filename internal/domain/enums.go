package domain

// Kind classifies a tracked customization.
type Kind string

const (
	KindFormula  Kind = "FORMULA"
	KindSQLQuery Kind = "SQL_QUERY"
	KindReport   Kind = "REPORT"
	KindOther    Kind = "OTHER"
)

func (k Kind) String() string { return string(k) }

func (k Kind) IsValid() bool {
	switch k {
	case KindFormula, KindSQLQuery, KindReport, KindOther:
		return true
	}
	return false
}

// Status is the lifecycle status of a tracked customization.
type Status string

const (
	StatusActive   Status = "ACTIVE"
	StatusObsolete Status = "OBSOLETE"
	StatusInReview Status = "IN_REVIEW"
)

func (s Status) String() string { return string(s) }

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusObsolete, StatusInReview:
		return true
	}
	return false
}

// Scope is the breadth of a subscription.
type Scope string

const (
	ScopeAll    Scope = "ALL"
	ScopeModule Scope = "MODULE"
	ScopeItem   Scope = "ITEM"
)

func (s Scope) String() string { return string(s) }

func (s Scope) IsValid() bool {
	switch s {
	case ScopeAll, ScopeModule, ScopeItem:
		return true
	}
	return false
}

// AuditAction is the kind of mutation an audit record describes.
type AuditAction string

const (
	AuditActionCreated           AuditAction = "CREATED"
	AuditActionUpdated           AuditAction = "UPDATED"
	AuditActionDeleted           AuditAction = "DELETED"
	AuditActionStatusChanged     AuditAction = "STATUS_CHANGED"
	AuditActionDependencyChanged AuditAction = "DEPENDENCY_CHANGED"
)

func (a AuditAction) String() string { return string(a) }

func (a AuditAction) IsValid() bool {
	switch a {
	case AuditActionCreated, AuditActionUpdated, AuditActionDeleted,
		AuditActionStatusChanged, AuditActionDependencyChanged:
		return true
	}
	return false
}

// NotificationType distinguishes first-seen entities from changes to known ones.
type NotificationType string

const (
	NotificationTypeNewEntity NotificationType = "NEW_ENTITY"
	NotificationTypeChanged   NotificationType = "CHANGED"
)

func (t NotificationType) String() string { return string(t) }

func (t NotificationType) IsValid() bool {
	switch t {
	case NotificationTypeNewEntity, NotificationTypeChanged:
		return true
	}
	return false
}

// Label returns the human-readable label used in outbound messages.
func (t NotificationType) Label() string {
	switch t {
	case NotificationTypeNewEntity:
		return "New customization"
	case NotificationTypeChanged:
		return "Customization changed"
	}
	return string(t)
}

// DeliveryStatus is the state of one channel attempt for a notification.
type DeliveryStatus string

const (
	DeliveryStatusAttempted DeliveryStatus = "DISPATCH_ATTEMPTED"
	DeliveryStatusDelivered DeliveryStatus = "DELIVERED"
	DeliveryStatusFailed    DeliveryStatus = "FAILED"
)

func (s DeliveryStatus) String() string { return string(s) }

func (s DeliveryStatus) IsValid() bool {
	switch s {
	case DeliveryStatusAttempted, DeliveryStatusDelivered, DeliveryStatusFailed:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition is possible.
func (s DeliveryStatus) IsTerminal() bool {
	return s == DeliveryStatusDelivered || s == DeliveryStatusFailed
}

// MutationAction is the kind of write reported by the persistence layer.
type MutationAction string

const (
	MutationCreate MutationAction = "CREATE"
	MutationUpdate MutationAction = "UPDATE"
	MutationDelete MutationAction = "DELETE"
)

func (a MutationAction) String() string { return string(a) }

func (a MutationAction) IsValid() bool {
	switch a {
	case MutationCreate, MutationUpdate, MutationDelete:
		return true
	}
	return false
}
