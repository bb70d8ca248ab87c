package job

import (
	"errors"
	"fmt"
)

// Status represents the lifecycle state of a plow job.
// It implements a state machine with a static transition table so that jobs
// follow the dispatch workflow: request, assignment, travel, work, settlement.
//
// Completed, Cancelled and Rejected are terminal: no transitions leave them.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of a job awaiting driver assignment.
	Pending

	// Waitlisted marks a request parked for lack of capacity.
	// A waitlisted job returns to Pending when capacity frees up.
	Waitlisted

	// Assigned indicates the operator has committed to the job.
	Assigned

	// EnRoute indicates the driver is traveling to the job site.
	EnRoute

	// Arrived indicates the driver is at the job site.
	Arrived

	// InProgress indicates plowing has started.
	InProgress

	// Completed indicates the job was finished. Terminal.
	Completed

	// Cancelled indicates the job was called off. Terminal.
	Cancelled

	// Rejected indicates the operator declined the job. Terminal.
	Rejected
)

// ErrInvalidTransition is the sentinel wrapped by InvalidTransitionError.
var ErrInvalidTransition = errors.New("invalid status transition")

// InvalidTransitionError reports a status change that is not in the
// transition table. It carries both endpoints so callers can build a
// user-facing message.
type InvalidTransitionError struct {
	From Status
	To   Status
}

// NewInvalidTransitionError creates an InvalidTransitionError for the given endpoints.
func NewInvalidTransitionError(from Status, to Status) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: cannot transition from %s to %s", ErrInvalidTransition, e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// getStatusStrings returns the wire names of all statuses, including Unknown.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		Pending:    "pending",
		Waitlisted: "waitlisted",
		Assigned:   "assigned",
		EnRoute:    "en_route",
		Arrived:    "arrived",
		InProgress: "in_progress",
		Completed:  "completed",
		Cancelled:  "cancelled",
		Rejected:   "rejected",
	}
}

// getValidStatusStrings returns only valid statuses, for validation and parsing.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "pending",
		Waitlisted: "waitlisted",
		Assigned:   "assigned",
		EnRoute:    "en_route",
		Arrived:    "arrived",
		InProgress: "in_progress",
		Completed:  "completed",
		Cancelled:  "cancelled",
		Rejected:   "rejected",
	}
}

// validTransitions is the authoritative transition table.
// Keys are source statuses; values are the statuses reachable from them.
// Terminal statuses map to an empty list.
func validTransitions() map[Status][]Status {
	return map[Status][]Status{
		Pending:    {Assigned, Rejected, Cancelled, Waitlisted},
		Waitlisted: {Pending, Cancelled},
		Assigned:   {EnRoute, Cancelled, Rejected},
		EnRoute:    {Arrived, Cancelled},
		Arrived:    {InProgress, Cancelled},
		InProgress: {Completed, Cancelled},
		Completed:  {},
		Cancelled:  {},
		Rejected:   {},
	}
}

// IsValidTransition reports whether moving from one status to another is
// allowed by the transition table. A transition to the same status is never
// valid, and any endpoint outside the table yields false rather than an error.
func IsValidTransition(from Status, to Status) bool {
	allowed, ok := validTransitions()[from]
	if !ok {
		return false
	}

	for _, s := range allowed {
		if s == to {
			return true
		}
	}

	return false
}

// Validate checks if the Status value is one of the defined lifecycle states.
// Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return newInvalidEnumError("status", int(s))
	}
	return nil
}

// String returns the wire name of the status ("pending", "en_route", ...).
// Invalid values map to "unknown". Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status has no outgoing transitions.
func (s Status) IsTerminal() bool {
	allowed, ok := validTransitions()[s]
	return ok && len(allowed) == 0
}

// StatusFromString parses a wire name into a Status.
// Returns an error for names that are not valid lifecycle states.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, newInvalidEnumStringError("status", s)
}
