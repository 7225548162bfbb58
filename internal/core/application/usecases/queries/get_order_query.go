package queries

import (
	"errors"
	"strings"

	"pathlab/internal/core/domain/model/kernel"
	"pathlab/internal/pkg/errs"
	"pathlab/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves a single order by identifier. The identifier may
// be the order's UUID or its human-readable series code ("LTO-1001"); the
// form is detected at construction.
type GetOrderQuery struct {
	orderID *kernel.UUID
	code    string

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a single-order query from a UUID or an order
// code. Anything that does not parse as a UUID is treated as a code.
func NewGetOrderQuery(identifier string) (GetOrderQuery, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return GetOrderQuery{}, errs.NewValueIsRequiredError("order identifier")
	}

	q := GetOrderQuery{
		guard: guard.NewConstructorGuard(),
	}

	if orderID, err := kernel.UUIDFromString(identifier); err == nil {
		q.orderID = &orderID
		return q, nil
	}

	q.code = identifier
	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the UUID form of the identifier, or nil when the
// identifier is an order code.
func (q GetOrderQuery) OrderID() *kernel.UUID {
	return q.orderID
}

// Code returns the order-code form of the identifier, blank when the
// identifier is a UUID.
func (q GetOrderQuery) Code() string {
	return q.code
}
