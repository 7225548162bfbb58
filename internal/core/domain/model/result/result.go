package result

import (
	"errors"
	"strings"

	"pathlab/internal/core/domain/model/kernel"
	"pathlab/internal/pkg/errs"
)

// ErrResultIsNotConstructed is returned when a Result instance was not
// created through NewResult or RestoreResult.
var ErrResultIsNotConstructed = errors.New("Result must be created via NewResult or RestoreResult constructor")

// Result is the aggregate root for a recorded test outcome.
//
// Invariants:
//   - identifier and owning order identifier are valid UUIDs
//   - the result value is non-blank; technician notes are optional
//   - value and notes are mutable only while the status is Draft
//   - Complete succeeds exactly once
type Result struct {
	id      kernel.UUID
	orderID kernel.UUID
	value   string
	notes   string
	status  Status

	// loadedStatus mirrors order.Order: the status read from storage, used
	// by repositories for conditional updates. Unknown for new aggregates.
	loadedStatus Status

	isConstructed bool
}

// NewResult creates a Result in Draft status for the given order.
// Whether the order may accept a result at all is decided by the
// create-result use case, which holds the order.
func NewResult(id kernel.UUID, orderID kernel.UUID, value string, notes string) (*Result, error) {
	r := &Result{
		status:        Draft,
		notes:         notes,
		isConstructed: true,
	}

	if err := errors.Join(
		r.setID(id),
		r.setOrderID(orderID),
		r.setValue(value),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreResult reconstructs a Result from persisted state.
func RestoreResult(id kernel.UUID, orderID kernel.UUID, value string, notes string, status Status) (*Result, error) {
	r := &Result{
		notes:         notes,
		isConstructed: true,
	}

	if err := errors.Join(
		r.setID(id),
		r.setOrderID(orderID),
		r.setValue(value),
		r.setStatus(status),
	); err != nil {
		return nil, err
	}

	r.loadedStatus = status
	return r, nil
}

// Validate ensures the Result was built by a constructor.
func (r *Result) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrResultIsNotConstructed
	}
	return nil
}

// IsEqual compares two results by identifier.
func (r *Result) IsEqual(other *Result) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// ID returns the result's unique identifier.
func (r *Result) ID() kernel.UUID {
	return r.id
}

// OrderID returns the identifier of the owning order.
func (r *Result) OrderID() kernel.UUID {
	return r.orderID
}

// Value returns the recorded result value.
func (r *Result) Value() string {
	return r.value
}

// Notes returns the technician notes, possibly empty.
func (r *Result) Notes() string {
	return r.notes
}

// Status returns the current lifecycle status.
func (r *Result) Status() Status {
	return r.status
}

// LoadedStatus returns the status this aggregate was loaded from storage
// with, or Unknown for aggregates that have not been persisted yet.
func (r *Result) LoadedStatus() Status {
	return r.loadedStatus
}

// UpdateValue replaces the result value. Legal only while Draft; the new
// value must be non-blank.
func (r *Result) UpdateValue(value string) error {
	if err := r.EnsureDraft(); err != nil {
		return err
	}
	return r.setValue(value)
}

// UpdateNotes replaces the technician notes. Legal only while Draft; notes
// may be blank.
func (r *Result) UpdateNotes(notes string) error {
	if err := r.EnsureDraft(); err != nil {
		return err
	}
	r.notes = notes
	return nil
}

// Complete finalizes the result. Legal only from Draft; the caller is
// responsible for completing the owning order in the same transaction.
func (r *Result) Complete() error {
	newStatus, err := r.status.Complete()
	if err != nil {
		return err
	}

	r.status = newStatus
	return nil
}

// EnsureDraft fails unless the result is still editable. Use cases call it
// before applying updates so that a no-op edit on a Completed result is
// rejected the same way a real edit is.
func (r *Result) EnsureDraft() error {
	if r.status != Draft {
		return errs.NewValueIsInvalidErrorWithCause(
			"result status",
			errors.New("only Draft results can be updated"),
		)
	}
	return nil
}

func (r *Result) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Result) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	r.orderID = orderID
	return nil
}

func (r *Result) setValue(value string) error {
	if strings.TrimSpace(value) == "" {
		return errs.NewValueIsRequiredError("result value")
	}
	r.value = value
	return nil
}

func (r *Result) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	r.status = status
	return nil
}
