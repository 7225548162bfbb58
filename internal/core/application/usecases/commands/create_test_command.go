package commands

import (
	"errors"
	"strings"

	"pathlab/internal/core/domain/model/kernel"
	"pathlab/internal/pkg/errs"
	"pathlab/internal/pkg/guard"
)

var ErrCreateTestCommandIsNotConstructed = errors.New(
	"CreateTestCommand must be created via NewCreateTestCommand constructor",
)

// CreateTestCommand represents a request to add a test to the catalog.
//
// Example:
//
//	price, _ := kernel.NewPriceFromString("50.00")
//	cmd, err := NewCreateTestCommand("Complete Blood Count", "CBC", "Blood", "4.5-11.0", price, true)
//	if err != nil {
//	    return err
//	}
//	created, err := handler.Handle(ctx, cmd)
type CreateTestCommand struct { //nolint:recvcheck //using for validation
	name        string
	code        string
	sampleType  string
	normalRange string
	price       kernel.Price
	active      bool

	guard guard.ConstructorGuard
}

// NewCreateTestCommand creates a command to add a catalog test.
// All text fields must be non-blank and the price strictly positive.
func NewCreateTestCommand(
	name string,
	code string,
	sampleType string,
	normalRange string,
	price kernel.Price,
	active bool,
) (CreateTestCommand, error) {
	cmd := CreateTestCommand{
		active: active,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setName(name),
		cmd.setCode(code),
		cmd.setSampleType(sampleType),
		cmd.setNormalRange(normalRange),
		cmd.setPrice(price),
	); err != nil {
		return CreateTestCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateTestCommand) Validate() error {
	return c.guard.Validate(ErrCreateTestCommandIsNotConstructed)
}

// Name returns the test's display name.
func (c CreateTestCommand) Name() string {
	return c.name
}

// Code returns the short unique test code.
func (c CreateTestCommand) Code() string {
	return c.code
}

// SampleType returns the specimen kind the test requires.
func (c CreateTestCommand) SampleType() string {
	return c.sampleType
}

// NormalRange returns the free-text reference range.
func (c CreateTestCommand) NormalRange() string {
	return c.normalRange
}

// Price returns the test's price.
func (c CreateTestCommand) Price() kernel.Price {
	return c.price
}

// Active reports whether the test should be orderable immediately.
func (c CreateTestCommand) Active() bool {
	return c.active
}

func (c *CreateTestCommand) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("test name")
	}
	c.name = name
	return nil
}

func (c *CreateTestCommand) setCode(code string) error {
	if strings.TrimSpace(code) == "" {
		return errs.NewValueIsRequiredError("test code")
	}
	c.code = code
	return nil
}

func (c *CreateTestCommand) setSampleType(sampleType string) error {
	if strings.TrimSpace(sampleType) == "" {
		return errs.NewValueIsRequiredError("sample type")
	}
	c.sampleType = sampleType
	return nil
}

func (c *CreateTestCommand) setNormalRange(normalRange string) error {
	if strings.TrimSpace(normalRange) == "" {
		return errs.NewValueIsRequiredError("normal range")
	}
	c.normalRange = normalRange
	return nil
}

func (c *CreateTestCommand) setPrice(price kernel.Price) error {
	if err := price.Validate(); err != nil {
		return err
	}
	c.price = price
	return nil
}
