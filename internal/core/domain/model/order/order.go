package order

import (
	"errors"
	"fmt"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through NewOrder or RestoreOrder. This ensures all orders are validated.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order represents a customer's request for a quantity of a catalog service,
// tracked through a status lifecycle until delivery or cancellation.
//
// Order maintains these invariants:
//   - Must have valid unique, customer and service identifiers
//   - Quantity must be greater than 0
//   - Expected delivery date must be set (non-zero)
//   - Creation timestamp is set once and never changes
//   - Status is the only field mutated after creation
//
// Orders are never physically deleted in normal operation; cancellation is a
// status change.
type Order struct {
	id         kernel.UUID
	customerID kernel.UUID
	serviceID  kernel.UUID

	// quantity is the number of items the service is applied to
	quantity int

	// expectedDeliveryDate is when the customer expects the order back
	expectedDeliveryDate time.Time

	// description is optional free text supplied by the customer
	description string

	status Status

	// createdAt is set at creation and immutable afterwards
	createdAt time.Time

	isConstructed bool
}

// NewOrder creates a new Order with validation. The order starts in Pending
// status with the creation timestamp set to the current UTC time.
//
// Validation failures are joined, so a caller receives every invalid
// parameter at once.
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	serviceID kernel.UUID,
	quantity int,
	expectedDeliveryDate time.Time,
	description string,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		description:   description,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setServiceID(serviceID),
		o.setQuantity(quantity),
		o.setExpectedDeliveryDate(expectedDeliveryDate),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence. Unlike NewOrder it
// accepts an arbitrary valid status and the stored creation timestamp.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	serviceID kernel.UUID,
	quantity int,
	expectedDeliveryDate time.Time,
	description string,
	status Status,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		description:   description,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setServiceID(serviceID),
		o.setQuantity(quantity),
		o.setExpectedDeliveryDate(expectedDeliveryDate),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	o.status = status
	return o, nil
}

// Validate ensures the Order was constructed through NewOrder or
// RestoreOrder, preventing use of directly instantiated structs.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the identifier of the customer who placed the order.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// ServiceID returns the identifier of the referenced catalog service.
func (o *Order) ServiceID() kernel.UUID {
	return o.serviceID
}

// Quantity returns the number of items in the order.
func (o *Order) Quantity() int {
	return o.quantity
}

// ExpectedDeliveryDate returns the date the customer expects delivery.
func (o *Order) ExpectedDeliveryDate() time.Time {
	return o.expectedDeliveryDate
}

// Description returns the optional customer-supplied description.
func (o *Order) Description() string {
	return o.description
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the immutable creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Cancel performs the customer-triggered transition to Cancelled.
// Fails with an InvalidTransitionError when the order is already
// Completed or Cancelled.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// ForceStatus overwrites the status on behalf of an administrative actor.
//
// The legacy system does not constrain administrative transitions, and that
// permissive behavior is preserved. Keeping the unconstrained write behind
// this single method means a transition table can be introduced here later
// without touching callers. The new status must still be a defined
// lifecycle value.
func (o *Order) ForceStatus(newStatus Status) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setServiceID(serviceID kernel.UUID) error {
	if err := serviceID.Validate(); err != nil {
		return err
	}
	o.serviceID = serviceID
	return nil
}

func (o *Order) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid", fmt.Errorf("%d is not greater than 0", quantity))
	}
	o.quantity = quantity
	return nil
}

func (o *Order) setExpectedDeliveryDate(date time.Time) error {
	if date.IsZero() {
		return errs.NewValueIsRequiredError("expected delivery date")
	}
	o.expectedDeliveryDate = date
	return nil
}
