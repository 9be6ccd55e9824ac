package queries

import (
	"errors"
	"time"

	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

var ErrCountOverdueOrdersQueryIsNotConstructed = errors.New(
	"CountOverdueOrdersQuery must be created via NewCountOverdueOrdersQuery")

// CountOverdueOrdersQuery counts active orders whose expected delivery date
// has already passed as of the given instant.
type CountOverdueOrdersQuery struct {
	asOf time.Time

	guard guard.ConstructorGuard
}

func NewCountOverdueOrdersQuery(asOf time.Time) (CountOverdueOrdersQuery, error) {
	if asOf.IsZero() {
		return CountOverdueOrdersQuery{}, errs.NewValueIsRequiredError("asOf")
	}

	return CountOverdueOrdersQuery{
		asOf:  asOf,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (q CountOverdueOrdersQuery) AsOf() time.Time {
	return q.asOf
}

func (q CountOverdueOrdersQuery) Validate() error {
	return q.guard.Validate(ErrCountOverdueOrdersQueryIsNotConstructed)
}
