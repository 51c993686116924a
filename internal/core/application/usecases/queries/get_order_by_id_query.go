package queries

import (
	"errors"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/pkg/errs"
	"grocery/internal/pkg/guard"
)

var ErrGetOrderByIDQueryIsNotConstructed = errors.New(
	"GetOrderByIDQuery must be created via NewGetOrderByIDQuery constructor",
)

// GetOrderByIDQuery retrieves a single order for the order detail and
// tracking page. The requesting user is part of the query: users only ever
// see their own orders.
type GetOrderByIDQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	userID  string

	guard guard.ConstructorGuard
}

// NewGetOrderByIDQuery creates a query for one order of one user.
func NewGetOrderByIDQuery(orderID kernel.UUID, userID string) (GetOrderByIDQuery, error) {
	query := GetOrderByIDQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setOrderID(orderID),
		query.setUserID(userID),
	); err != nil {
		return GetOrderByIDQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderByIDQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderByIDQueryIsNotConstructed)
}

// OrderID returns the identifier of the requested order.
func (q GetOrderByIDQuery) OrderID() kernel.UUID {
	return q.orderID
}

// UserID returns the identifier of the requesting user.
func (q GetOrderByIDQuery) UserID() string {
	return q.userID
}

func (q *GetOrderByIDQuery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	q.orderID = orderID
	return nil
}

func (q *GetOrderByIDQuery) setUserID(userID string) error {
	if userID == "" {
		return errs.NewValueIsRequiredError("userId")
	}

	q.userID = userID
	return nil
}
