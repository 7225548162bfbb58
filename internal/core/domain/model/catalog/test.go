package catalog

import (
	"errors"
	"strings"

	"pathlab/internal/core/domain/model/kernel"
	"pathlab/internal/pkg/errs"
)

// ErrTestIsNotConstructed is returned when a Test instance was not created
// through NewTest or RestoreTest.
var ErrTestIsNotConstructed = errors.New("Test must be created via NewTest or RestoreTest constructor")

// Test is the aggregate root for a catalog entry.
//
// Invariants:
//   - identifier is a valid UUID
//   - name, code, sample type, and normal range are non-blank
//   - price is strictly positive
//
// Name and code uniqueness spans the whole catalog and is enforced at the
// persistence boundary; everything else is enforced here.
type Test struct {
	id          kernel.UUID
	name        string
	code        string
	sampleType  string
	normalRange string
	price       kernel.Price
	isActive    bool

	isConstructed bool
}

// NewTest creates a catalog Test with full validation of every field.
func NewTest(
	id kernel.UUID,
	name string,
	code string,
	sampleType string,
	normalRange string,
	price kernel.Price,
	active bool,
) (*Test, error) {
	t := &Test{
		isActive:      active,
		isConstructed: true,
	}

	if err := errors.Join(
		t.setID(id),
		t.setName(name),
		t.setCode(code),
		t.setSampleType(sampleType),
		t.setNormalRange(normalRange),
		t.setPrice(price),
	); err != nil {
		return nil, err
	}

	return t, nil
}

// RestoreTest reconstructs a Test from persisted state. It applies the same
// field validation as NewTest so corrupt rows are caught on load.
func RestoreTest(
	id kernel.UUID,
	name string,
	code string,
	sampleType string,
	normalRange string,
	price kernel.Price,
	active bool,
) (*Test, error) {
	return NewTest(id, name, code, sampleType, normalRange, price, active)
}

// Validate ensures the Test was built by a constructor.
func (t *Test) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTestIsNotConstructed
	}
	return nil
}

// IsEqual compares two tests by identifier.
func (t *Test) IsEqual(other *Test) bool {
	return other != nil && t.id.IsEqual(other.id)
}

// ID returns the test's unique identifier.
func (t *Test) ID() kernel.UUID {
	return t.id
}

// Name returns the test's display name.
func (t *Test) Name() string {
	return t.name
}

// Code returns the short unique test code, e.g. "CBC".
func (t *Test) Code() string {
	return t.code
}

// SampleType returns the specimen kind this test requires, e.g. "Blood".
func (t *Test) SampleType() string {
	return t.sampleType
}

// NormalRange returns the free-text reference range.
func (t *Test) NormalRange() string {
	return t.normalRange
}

// Price returns the test's price.
func (t *Test) Price() kernel.Price {
	return t.price
}

// IsActive reports whether the test may be referenced by new orders.
func (t *Test) IsActive() bool {
	return t.isActive
}

// Rename changes the display name. The new name must be non-blank;
// catalog-wide uniqueness is checked by the caller against the repository.
func (t *Test) Rename(name string) error {
	return t.setName(name)
}

// ChangePrice replaces the price, re-validating positivity.
func (t *Test) ChangePrice(price kernel.Price) error {
	return t.setPrice(price)
}

// ChangeNormalRange replaces the reference range text.
func (t *Test) ChangeNormalRange(normalRange string) error {
	return t.setNormalRange(normalRange)
}

// Activate makes the test orderable again.
func (t *Test) Activate() {
	t.isActive = true
}

// Deactivate withdraws the test from ordering. Existing orders keep their
// reference.
func (t *Test) Deactivate() {
	t.isActive = false
}

func (t *Test) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *Test) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("test name")
	}
	t.name = name
	return nil
}

func (t *Test) setCode(code string) error {
	if strings.TrimSpace(code) == "" {
		return errs.NewValueIsRequiredError("test code")
	}
	t.code = code
	return nil
}

func (t *Test) setSampleType(sampleType string) error {
	if strings.TrimSpace(sampleType) == "" {
		return errs.NewValueIsRequiredError("sample type")
	}
	t.sampleType = sampleType
	return nil
}

func (t *Test) setNormalRange(normalRange string) error {
	if strings.TrimSpace(normalRange) == "" {
		return errs.NewValueIsRequiredError("normal range")
	}
	t.normalRange = normalRange
	return nil
}

func (t *Test) setPrice(price kernel.Price) error {
	if err := price.Validate(); err != nil {
		return err
	}
	t.price = price
	return nil
}
