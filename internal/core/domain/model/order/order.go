package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"pathlab/internal/core/domain/model/kernel"
	"pathlab/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not
// created through NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

// Order is the aggregate root for a lab test order.
//
// Invariants:
//   - identifier is a valid UUID and the code is the non-blank value issued
//     by the naming series (e.g. "LTO-1001")
//   - patient name and phone are non-blank
//   - the referenced test id is a valid UUID (activity of the test is
//     checked by the create-order use case, which owns catalog access)
//   - at creation, the order date is not before today's calendar day
//   - status only changes through the transition table in Status
type Order struct {
	id           kernel.UUID
	code         string
	patientName  string
	patientPhone string
	testID       kernel.UUID
	orderDate    time.Time
	status       Status

	// loadedStatus is the status this aggregate had when it was read from
	// storage. Repositories use it for optimistic concurrency: an update is
	// conditional on the row still holding this value. Unknown for new
	// aggregates.
	loadedStatus Status

	isConstructed bool
}

// NewOrder creates a new Order in Draft status. The order date is truncated
// to its calendar day and must not precede today.
func NewOrder(
	id kernel.UUID,
	code string,
	patientName string,
	patientPhone string,
	testID kernel.UUID,
	orderDate time.Time,
) (*Order, error) {
	o := &Order{
		status:        Draft,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCode(code),
		o.setPatientName(patientName),
		o.setPatientPhone(patientPhone),
		o.setTestID(testID),
		o.setOrderDate(orderDate),
	); err != nil {
		return nil, err
	}

	if o.orderDate.Before(DayOf(time.Now())) {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"order date",
			fmt.Errorf("%s is in the past", o.orderDate.Format(time.DateOnly)),
		)
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persisted state. Unlike NewOrder
// it accepts any valid status and does not re-apply the order-date floor,
// which only holds at creation time.
func RestoreOrder(
	id kernel.UUID,
	code string,
	patientName string,
	patientPhone string,
	testID kernel.UUID,
	orderDate time.Time,
	status Status,
) (*Order, error) {
	o := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCode(code),
		o.setPatientName(patientName),
		o.setPatientPhone(patientPhone),
		o.setTestID(testID),
		o.setOrderDate(orderDate),
		o.setStatus(status),
	); err != nil {
		return nil, err
	}

	o.loadedStatus = status
	return o, nil
}

// DayOf truncates a time to its local calendar day. Order dates are always
// stored in this form.
func DayOf(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// Validate ensures the Order was built by a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Code returns the series-issued human-readable order code, e.g. "LTO-1001".
func (o *Order) Code() string {
	return o.code
}

// PatientName returns the patient's name.
func (o *Order) PatientName() string {
	return o.patientName
}

// PatientPhone returns the patient's phone number.
func (o *Order) PatientPhone() string {
	return o.patientPhone
}

// TestID returns the identifier of the referenced catalog test.
func (o *Order) TestID() kernel.UUID {
	return o.testID
}

// OrderDate returns the order's calendar day.
func (o *Order) OrderDate() time.Time {
	return o.orderDate
}

// Status returns the current workflow status.
func (o *Order) Status() Status {
	return o.status
}

// LoadedStatus returns the status this aggregate was loaded from storage
// with, or Unknown for aggregates that have not been persisted yet.
func (o *Order) LoadedStatus() Status {
	return o.loadedStatus
}

// CanCreateResult reports whether a result may be recorded for this order.
// True exactly when the order is Ordered. Derived, never stored.
func (o *Order) CanCreateResult() bool {
	return o.status == Ordered
}

// TransitionTo moves the order to next if the transition table allows it.
func (o *Order) TransitionTo(next Status) error {
	newStatus, err := o.status.TransitionTo(next)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Complete marks the order Completed. Legal only from Ordered; invoked by
// the complete-result use case as part of its cross-aggregate write.
func (o *Order) Complete() error {
	return o.TransitionTo(Completed)
}

// Cancel withdraws the order. Legal from Draft and Ordered.
func (o *Order) Cancel() error {
	return o.TransitionTo(Cancelled)
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCode(code string) error {
	if strings.TrimSpace(code) == "" {
		return errs.NewValueIsRequiredError("order code")
	}
	o.code = code
	return nil
}

func (o *Order) setPatientName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("patient name")
	}
	o.patientName = name
	return nil
}

func (o *Order) setPatientPhone(phone string) error {
	if strings.TrimSpace(phone) == "" {
		return errs.NewValueIsRequiredError("patient phone")
	}
	o.patientPhone = phone
	return nil
}

func (o *Order) setTestID(testID kernel.UUID) error {
	if err := testID.Validate(); err != nil {
		return err
	}
	o.testID = testID
	return nil
}

func (o *Order) setOrderDate(orderDate time.Time) error {
	if orderDate.IsZero() {
		return errs.NewValueIsRequiredError("order date")
	}
	o.orderDate = DayOf(orderDate)
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
