package order

import (
	"fmt"

	"store/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	WaitingPayment ──┬──> WaitingDelivery
//	                 │
//	                 └──> Canceled
//
// Orders are always created in WaitingPayment. The remaining states are
// reached by payment and fulfilment flows that live outside this service,
// so Status only validates and names values loaded from storage.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// WaitingPayment is the initial status of every new order.
	WaitingPayment

	// WaitingDelivery indicates the order has been paid and awaits shipping.
	WaitingDelivery

	// Canceled is a final state.
	Canceled
)

var statusStrings = map[Status]string{
	WaitingPayment:  "WaitingPayment",
	WaitingDelivery: "WaitingDelivery",
	Canceled:        "Canceled",
}

// Validate checks if the Status value is one of the defined states.
func (s Status) Validate() error {
	if _, ok := statusStrings[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status, or "Unknown".
func (s Status) String() string {
	if str, ok := statusStrings[s]; ok {
		return str
	}
	return "Unknown"
}

// StatusFromString parses the persisted name of a status.
func StatusFromString(s string) (Status, error) {
	for status, str := range statusStrings {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", s))
}
