package commands

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"pathlab/internal/core/domain/model/kernel"
	"pathlab/internal/pkg/errs"
	"pathlab/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to place a lab test order for a
// patient. The order date arrives as a "YYYY-MM-DD" string from the outer
// shell and is parsed here; the aggregate enforces the not-in-the-past
// rule.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	patientName  string
	patientPhone string
	testID       kernel.UUID
	orderDate    time.Time

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place an order. The order date
// must be in time.DateOnly form ("2006-01-02").
func NewCreateOrderCommand(
	patientName string,
	patientPhone string,
	testID kernel.UUID,
	orderDate string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPatientName(patientName),
		cmd.setPatientPhone(patientPhone),
		cmd.setTestID(testID),
		cmd.setOrderDate(orderDate),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// PatientName returns the patient's name.
func (c CreateOrderCommand) PatientName() string {
	return c.patientName
}

// PatientPhone returns the patient's phone number.
func (c CreateOrderCommand) PatientPhone() string {
	return c.patientPhone
}

// TestID returns the identifier of the catalog test being ordered.
func (c CreateOrderCommand) TestID() kernel.UUID {
	return c.testID
}

// OrderDate returns the requested order day.
func (c CreateOrderCommand) OrderDate() time.Time {
	return c.orderDate
}

func (c *CreateOrderCommand) setPatientName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("patient name")
	}
	c.patientName = name
	return nil
}

func (c *CreateOrderCommand) setPatientPhone(phone string) error {
	if strings.TrimSpace(phone) == "" {
		return errs.NewValueIsRequiredError("patient phone")
	}
	c.patientPhone = phone
	return nil
}

func (c *CreateOrderCommand) setTestID(testID kernel.UUID) error {
	if err := testID.Validate(); err != nil {
		return err
	}
	c.testID = testID
	return nil
}

func (c *CreateOrderCommand) setOrderDate(orderDate string) error {
	if strings.TrimSpace(orderDate) == "" {
		return errs.NewValueIsRequiredError("order date")
	}

	parsed, err := time.ParseInLocation(time.DateOnly, orderDate, time.Local)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause(
			"order date",
			fmt.Errorf("%q is not a valid YYYY-MM-DD date", orderDate),
		)
	}

	c.orderDate = parsed
	return nil
}
