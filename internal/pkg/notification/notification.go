// Package notification collects keyed business-rule violations.
//
// Validation in the store never stops at the first failure: commands and
// aggregates record every violated rule as a Notification and callers inspect
// the whole set at once. A set is valid iff it is empty.
//
// Ownership stays explicit. Each command, aggregate, or request owns its own
// Notifications value, and an orchestrator pulls nested failures in with
// AddAll or Merge instead of sharing state:
//
//	var notes notification.Notifications
//	notes.Merge(order)
//	if notes.IsInvalid() {
//	    return notes
//	}
package notification

// Notification is one violated rule, keyed by the offending field.
type Notification struct {
	Key     string `json:"key"`
	Message string `json:"message"`
}

// New creates a Notification.
func New(key, message string) Notification {
	return Notification{Key: key, Message: message}
}

// Notifiable is implemented by anything that can report its accumulated
// notifications.
type Notifiable interface {
	Notifications() Notifications
}

// Notifications is an append-only, insertion-ordered set of notifications.
// The zero value is an empty, valid set.
type Notifications []Notification

// Add appends a single notification. Duplicates are kept.
func (n *Notifications) Add(key, message string) {
	*n = append(*n, New(key, message))
}

// AddAll appends every notification of other, preserving its order.
func (n *Notifications) AddAll(other Notifications) {
	*n = append(*n, other...)
}

// Merge appends the notifications reported by each source in turn.
func (n *Notifications) Merge(sources ...Notifiable) {
	for _, src := range sources {
		n.AddAll(src.Notifications())
	}
}

// IsValid reports whether no rule was violated.
func (n Notifications) IsValid() bool {
	return len(n) == 0
}

// IsInvalid is the negation of IsValid.
func (n Notifications) IsInvalid() bool {
	return !n.IsValid()
}

// HasKey reports whether at least one notification carries key.
func (n Notifications) HasKey(key string) bool {
	for _, note := range n {
		if note.Key == key {
			return true
		}
	}
	return false
}

// Clone returns a copy that does not share the backing array with n.
func (n Notifications) Clone() Notifications {
	if n == nil {
		return nil
	}
	out := make(Notifications, len(n))
	copy(out, n)
	return out
}
