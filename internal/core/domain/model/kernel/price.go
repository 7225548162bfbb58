package kernel

import (
	"fmt"
	"strconv"
	"strings"

	"pathlab/internal/pkg/errs"
)

// Price is a value object for a money amount, stored as integer cents to
// avoid floating-point drift. A valid Price is always strictly positive;
// the zero value is invalid.
//
// Construct with NewPriceFromCents or NewPriceFromString ("50", "50.5",
// "50.00").
type Price struct {
	cents int64
}

// NewPriceFromCents creates a Price from an amount in cents.
// The amount must be greater than zero.
func NewPriceFromCents(cents int64) (Price, error) {
	p := Price{cents: cents}
	if err := p.Validate(); err != nil {
		return Price{}, err
	}
	return p, nil
}

// NewPriceFromString parses a decimal amount such as "50.00" into a Price.
// At most two fractional digits are accepted. Returns a validation error on
// malformed input or a non-positive amount.
func NewPriceFromString(s string) (Price, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return Price{}, errs.NewValueIsRequiredError("price")
	}

	whole := trimmed
	frac := ""
	if i := strings.IndexByte(trimmed, '.'); i >= 0 {
		whole, frac = trimmed[:i], trimmed[i+1:]
	}

	if len(frac) > 2 {
		return Price{}, errs.NewValueIsInvalidErrorWithCause(
			"price",
			fmt.Errorf("%q has more than two fractional digits", trimmed),
		)
	}

	negative := false
	if strings.HasPrefix(whole, "-") {
		negative = true
		whole = whole[1:]
	}

	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return Price{}, errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%q is not a decimal amount", trimmed))
	}

	var cents int64
	if frac != "" {
		// ParseInt alone would accept a sign inside the fraction
		// ("50.-5"); only digits are legal here.
		for _, r := range frac {
			if r < '0' || r > '9' {
				return Price{}, errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%q is not a decimal amount", trimmed))
			}
		}
		cents, err = strconv.ParseInt(frac, 10, 64)
		if err != nil {
			return Price{}, errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%q is not a decimal amount", trimmed))
		}
		if len(frac) == 1 {
			cents *= 10
		}
	}

	total := units*100 + cents
	if negative {
		total = -total
	}

	return NewPriceFromCents(total)
}

// Cents returns the amount in cents.
func (p Price) Cents() int64 {
	return p.cents
}

// String renders the amount with two decimal places, e.g. "50.00".
func (p Price) String() string {
	return fmt.Sprintf("%d.%02d", p.cents/100, p.cents%100)
}

// IsEqual reports whether two prices are the same amount.
func (p Price) IsEqual(other Price) bool {
	return p.cents == other.cents
}

// Validate returns a validation error unless the amount is strictly positive.
func (p Price) Validate() error {
	if p.cents <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%d cents is not greater than 0", p.cents))
	}
	return nil
}
