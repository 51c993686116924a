package queries_test

import (
	"testing"

	"grocery/internal/core/application/usecases/queries"
	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetUserOrdersQuery(t *testing.T) {
	t.Run("should create a query for a user", func(t *testing.T) {
		query, err := queries.NewGetUserOrdersQuery("user-1")

		require.NoError(t, err)
		require.NoError(t, query.Validate())
		assert.Equal(t, "user-1", query.UserID())
	})

	t.Run("should require a user id", func(t *testing.T) {
		_, err := queries.NewGetUserOrdersQuery("")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject a zero-value query", func(t *testing.T) {
		var query queries.GetUserOrdersQuery

		require.ErrorIs(t, query.Validate(), queries.ErrGetUserOrdersQueryIsNotConstructed)
	})
}

func TestNewGetOrderByIDQuery(t *testing.T) {
	t.Run("should create a query for one order of one user", func(t *testing.T) {
		id := kernel.NewUUID()

		query, err := queries.NewGetOrderByIDQuery(id, "user-1")

		require.NoError(t, err)
		require.NoError(t, query.Validate())
		assert.True(t, query.OrderID().IsEqual(id))
		assert.Equal(t, "user-1", query.UserID())
	})

	t.Run("should reject a zero order id", func(t *testing.T) {
		_, err := queries.NewGetOrderByIDQuery(kernel.UUID{}, "user-1")

		require.Error(t, err)
	})

	t.Run("should require a user id", func(t *testing.T) {
		_, err := queries.NewGetOrderByIDQuery(kernel.NewUUID(), "")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}
