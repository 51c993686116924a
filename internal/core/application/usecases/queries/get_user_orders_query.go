package queries

import (
	"errors"

	"grocery/internal/pkg/errs"
	"grocery/internal/pkg/guard"
)

var ErrGetUserOrdersQueryIsNotConstructed = errors.New(
	"GetUserOrdersQuery must be created via NewGetUserOrdersQuery constructor",
)

// GetUserOrdersQuery retrieves the order history of one user for the
// storefront's orders page, newest order first.
//
// Example:
//
//	query, err := NewGetUserOrdersQuery(userID)
//	if err != nil {
//	    return err
//	}
//	orders, err := NewGetUserOrdersQueryHandler(db).Handle(ctx, query)
type GetUserOrdersQuery struct { //nolint:recvcheck //using for validation
	userID string

	guard guard.ConstructorGuard
}

// NewGetUserOrdersQuery creates a query for one user's order history.
func NewGetUserOrdersQuery(userID string) (GetUserOrdersQuery, error) {
	if userID == "" {
		return GetUserOrdersQuery{}, errs.NewValueIsRequiredError("userId")
	}

	return GetUserOrdersQuery{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetUserOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetUserOrdersQueryIsNotConstructed)
}

// UserID returns the identifier of the user whose orders are requested.
func (q GetUserOrdersQuery) UserID() string {
	return q.userID
}
