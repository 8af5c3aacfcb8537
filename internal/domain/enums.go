package domain

// EventStatus is the lifecycle state of a calendar slot.
type EventStatus string

const (
	EventStatusBusy        EventStatus = "BUSY"
	EventStatusSwappable   EventStatus = "SWAPPABLE"
	EventStatusSwapPending EventStatus = "SWAP_PENDING"
)

func (s EventStatus) String() string { return string(s) }

func (s EventStatus) IsValid() bool {
	switch s {
	case EventStatusBusy, EventStatusSwappable, EventStatusSwapPending:
		return true
	}
	return false
}

// EventTrigger is something that moves an event between statuses.
type EventTrigger string

const (
	TriggerMarkSwappable EventTrigger = "MARK_SWAPPABLE"
	TriggerMarkBusy      EventTrigger = "MARK_BUSY"
	TriggerSwapProposed  EventTrigger = "SWAP_PROPOSED"
	TriggerSwapAccepted  EventTrigger = "SWAP_ACCEPTED"
	TriggerSwapRejected  EventTrigger = "SWAP_REJECTED"
)

func (t EventTrigger) String() string { return string(t) }

// Apply returns the status an event in status s moves to when trig fires.
// ok is false when trig is not legal from s.
//
//	BUSY         --MARK_SWAPPABLE--> SWAPPABLE
//	SWAPPABLE    --MARK_BUSY-------> BUSY
//	SWAPPABLE    --SWAP_PROPOSED---> SWAP_PENDING
//	SWAP_PENDING --SWAP_ACCEPTED---> BUSY       (new owner)
//	SWAP_PENDING --SWAP_REJECTED---> SWAPPABLE  (original owner)
func (s EventStatus) Apply(trig EventTrigger) (next EventStatus, ok bool) {
	switch s {
	case EventStatusBusy:
		switch trig {
		case TriggerMarkSwappable:
			return EventStatusSwappable, true
		case TriggerMarkBusy, TriggerSwapProposed, TriggerSwapAccepted, TriggerSwapRejected:
			return s, false
		}
	case EventStatusSwappable:
		switch trig {
		case TriggerMarkBusy:
			return EventStatusBusy, true
		case TriggerSwapProposed:
			return EventStatusSwapPending, true
		case TriggerMarkSwappable, TriggerSwapAccepted, TriggerSwapRejected:
			return s, false
		}
	case EventStatusSwapPending:
		switch trig {
		case TriggerSwapAccepted:
			return EventStatusBusy, true
		case TriggerSwapRejected:
			return EventStatusSwappable, true
		case TriggerMarkSwappable, TriggerMarkBusy, TriggerSwapProposed:
			return s, false
		}
	}
	return s, false
}

// OwnerTrigger returns the trigger an owner fires by asking for status
// target. Only BUSY and SWAPPABLE can be requested directly.
func OwnerTrigger(target EventStatus) (EventTrigger, bool) {
	switch target {
	case EventStatusBusy:
		return TriggerMarkBusy, true
	case EventStatusSwappable:
		return TriggerMarkSwappable, true
	case EventStatusSwapPending:
		return "", false
	}
	return "", false
}

// SwapStatus is the lifecycle state of a swap request.
type SwapStatus string

const (
	SwapStatusPending  SwapStatus = "PENDING"
	SwapStatusAccepted SwapStatus = "ACCEPTED"
	SwapStatusRejected SwapStatus = "REJECTED"
)

func (s SwapStatus) String() string { return string(s) }

func (s SwapStatus) IsValid() bool {
	switch s {
	case SwapStatusPending, SwapStatusAccepted, SwapStatusRejected:
		return true
	}
	return false
}

// IsTerminal reports whether the request can no longer change.
func (s SwapStatus) IsTerminal() bool {
	return s == SwapStatusAccepted || s == SwapStatusRejected
}

// EntityType identifies the kind of domain entity (used in audit logs).
type EntityType string

const (
	EntityTypeEvent       EntityType = "EVENT"
	EntityTypeSwapRequest EntityType = "SWAP_REQUEST"
)

func (e EntityType) String() string { return string(e) }

func (e EntityType) IsValid() bool {
	switch e {
	case EntityTypeEvent, EntityTypeSwapRequest:
		return true
	}
	return false
}

// AuditAction represents the kind of mutation recorded in the audit log.
type AuditAction string

const (
	AuditActionCreate  AuditAction = "CREATE"
	AuditActionUpdate  AuditAction = "UPDATE"
	AuditActionDelete  AuditAction = "DELETE"
	AuditActionPropose AuditAction = "PROPOSE"
	AuditActionAccept  AuditAction = "ACCEPT"
	AuditActionReject  AuditAction = "REJECT"
)

func (a AuditAction) String() string { return string(a) }

func (a AuditAction) IsValid() bool {
	switch a {
	case AuditActionCreate, AuditActionUpdate, AuditActionDelete,
		AuditActionPropose, AuditActionAccept, AuditActionReject:
		return true
	}
	return false
}
