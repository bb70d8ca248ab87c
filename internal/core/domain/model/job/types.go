package job

import (
	"fmt"

	"github.com/tokendad/ApexPlow/internal/pkg/errs"
)

func newInvalidEnumError(param string, value int) error {
	return errs.NewValueIsInvalidErrorWithCause(param,
		fmt.Errorf("%d is not a valid %s", value, param))
}

func newInvalidEnumStringError(param string, value string) error {
	return errs.NewValueIsInvalidErrorWithCause(param,
		fmt.Errorf("%q is not a valid %s", value, param))
}

// Type distinguishes on-demand jobs from jobs booked for a future time.
// The distinction drives cancellation pricing: ASAP jobs charge only once the
// driver is en route, scheduled jobs charge by proximity to the booked time.
type Type int

const (
	// TypeUnknown represents an invalid or undefined job type.
	TypeUnknown Type = iota

	// TypeASAP is an on-demand job served as soon as possible.
	TypeASAP

	// TypeScheduled is a job booked for a specific future time.
	TypeScheduled
)

func getTypeStrings() map[Type]string {
	return map[Type]string{
		TypeASAP:      "asap",
		TypeScheduled: "scheduled",
	}
}

// Validate checks the Type value is a defined job type.
func (t Type) Validate() error {
	if _, ok := getTypeStrings()[t]; !ok {
		return newInvalidEnumError("jobType", int(t))
	}
	return nil
}

// String returns the wire name of the job type. Implements fmt.Stringer.
func (t Type) String() string {
	if s, ok := getTypeStrings()[t]; ok {
		return s
	}
	return "unknown"
}

// TypeFromString parses a wire name ("asap", "scheduled") into a Type.
func TypeFromString(s string) (Type, error) {
	for t, name := range getTypeStrings() {
		if name == s {
			return t, nil
		}
	}
	return TypeUnknown, newInvalidEnumStringError("jobType", s)
}

// Source records who entered the job into the system.
type Source int

const (
	// SourceUnknown represents an invalid or undefined source.
	SourceUnknown Source = iota

	// SourceCustomer marks jobs submitted through the customer portal.
	SourceCustomer

	// SourceAdmin marks jobs entered manually by the operator,
	// including jobs created by waitlist promotion.
	SourceAdmin
)

func getSourceStrings() map[Source]string {
	return map[Source]string{
		SourceCustomer: "customer",
		SourceAdmin:    "admin",
	}
}

// Validate checks the Source value is defined.
func (s Source) Validate() error {
	if _, ok := getSourceStrings()[s]; !ok {
		return newInvalidEnumError("source", int(s))
	}
	return nil
}

// String returns the wire name of the source. Implements fmt.Stringer.
func (s Source) String() string {
	if str, ok := getSourceStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// SourceFromString parses a wire name ("customer", "admin") into a Source.
func SourceFromString(s string) (Source, error) {
	for src, name := range getSourceStrings() {
		if name == s {
			return src, nil
		}
	}
	return SourceUnknown, newInvalidEnumStringError("source", s)
}

// PaymentMethod is how the customer settled a job.
type PaymentMethod int

const (
	// PaymentUnknown represents an invalid or undefined payment method.
	PaymentUnknown PaymentMethod = iota

	PaymentCash
	PaymentCard
	PaymentPayPal
	PaymentVenmo
	PaymentOther
)

func getPaymentMethodStrings() map[PaymentMethod]string {
	return map[PaymentMethod]string{
		PaymentCash:   "cash",
		PaymentCard:   "card",
		PaymentPayPal: "paypal",
		PaymentVenmo:  "venmo",
		PaymentOther:  "other",
	}
}

// Validate checks the PaymentMethod value is defined.
func (m PaymentMethod) Validate() error {
	if _, ok := getPaymentMethodStrings()[m]; !ok {
		return newInvalidEnumError("paymentMethod", int(m))
	}
	return nil
}

// String returns the wire name of the payment method. Implements fmt.Stringer.
func (m PaymentMethod) String() string {
	if s, ok := getPaymentMethodStrings()[m]; ok {
		return s
	}
	return "unknown"
}

// PaymentMethodFromString parses a wire name into a PaymentMethod.
func PaymentMethodFromString(s string) (PaymentMethod, error) {
	for m, name := range getPaymentMethodStrings() {
		if name == s {
			return m, nil
		}
	}
	return PaymentUnknown, newInvalidEnumStringError("paymentMethod", s)
}
