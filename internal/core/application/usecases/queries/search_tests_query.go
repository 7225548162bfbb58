package queries

import (
	"errors"
	"strings"

	"pathlab/internal/pkg/guard"
)

var ErrSearchTestsQueryIsNotConstructed = errors.New(
	"SearchTestsQuery must be created via NewSearchTestsQuery constructor",
)

// SearchTestsQuery finds catalog tests whose name or code contains the
// given term, case-insensitively. A blank term matches everything.
type SearchTestsQuery struct {
	term string

	guard guard.ConstructorGuard
}

// NewSearchTestsQuery creates a catalog search query. The term is trimmed;
// it may be blank.
func NewSearchTestsQuery(term string) SearchTestsQuery {
	return SearchTestsQuery{
		term:  strings.TrimSpace(term),
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q SearchTestsQuery) Validate() error {
	return q.guard.Validate(ErrSearchTestsQueryIsNotConstructed)
}

// Term returns the trimmed search term, possibly blank.
func (q SearchTestsQuery) Term() string {
	return q.term
}
