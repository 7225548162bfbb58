package queries

import (
	"errors"

	"pathlab/internal/core/domain/model/kernel"
	"pathlab/internal/pkg/guard"
)

var ErrGetTestByIDQueryIsNotConstructed = errors.New(
	"GetTestByIDQuery must be created via NewGetTestByIDQuery constructor",
)

// GetTestByIDQuery retrieves a single catalog test by identifier.
type GetTestByIDQuery struct {
	testID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetTestByIDQuery creates a query for one catalog test.
func NewGetTestByIDQuery(testID kernel.UUID) (GetTestByIDQuery, error) {
	if err := testID.Validate(); err != nil {
		return GetTestByIDQuery{}, err
	}

	return GetTestByIDQuery{
		testID: testID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetTestByIDQuery) Validate() error {
	return q.guard.Validate(ErrGetTestByIDQueryIsNotConstructed)
}

// TestID returns the identifier of the requested test.
func (q GetTestByIDQuery) TestID() kernel.UUID {
	return q.testID
}
