package waitlist

import (
	"github.com/tokendad/ApexPlow/internal/pkg/errs"
)

// EntryStatus is the lifecycle status of a waitlist entry.
type EntryStatus int

const (
	StatusUnknown EntryStatus = iota
	Waiting
	Promoted
	Expired
	Cancelled
)

func getEntryStatusStrings() map[EntryStatus]string {
	return map[EntryStatus]string{
		StatusUnknown: "unknown",
		Waiting:       "waiting",
		Promoted:      "promoted",
		Expired:       "expired",
		Cancelled:     "cancelled",
	}
}

func getValidEntryStatusStrings() map[string]EntryStatus {
	return map[string]EntryStatus{
		"waiting":   Waiting,
		"promoted":  Promoted,
		"expired":   Expired,
		"cancelled": Cancelled,
	}
}

// Validate checks that the status is one of the defined values.
func (s EntryStatus) Validate() error {
	if _, ok := getValidEntryStatusStrings()[s.String()]; !ok {
		return errs.NewValueIsInvalidError("entryStatus")
	}

	return nil
}

// String returns the wire name of the status.
func (s EntryStatus) String() string {
	name, ok := getEntryStatusStrings()[s]
	if !ok {
		return "unknown"
	}

	return name
}

// EntryStatusFromString parses a wire name into an EntryStatus.
func EntryStatusFromString(value string) (EntryStatus, error) {
	status, ok := getValidEntryStatusStrings()[value]
	if !ok {
		return StatusUnknown, errs.NewValueIsInvalidError("entryStatus")
	}

	return status, nil
}
