package queries

import (
	"context"
	"database/sql"

	"grocery/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// orderColumns is the column list every order read uses, in scanOrderRow order.
const orderColumns = `
	id,
	user_id,
	items,
	subtotal_cents,
	delivery_fee_cents,
	total_cents,
	status,
	payment_status,
	street,
	city,
	state,
	zip_code,
	latitude,
	longitude,
	created_at,
	estimated_delivery_at,
	special_instructions,
	payment_method
`

// scanOrderRow maps one orders row onto the presentation shape, decoding the
// item documents and precomputing the tracker step.
func scanOrderRow(rows *sql.Rows) (OrderResponse, error) {
	var resp OrderResponse
	var rawItems []byte
	var subtotalCents, deliveryFeeCents, totalCents int64

	if err := rows.Scan(
		&resp.ID,
		&resp.UserID,
		&rawItems,
		&subtotalCents,
		&deliveryFeeCents,
		&totalCents,
		&resp.Status,
		&resp.PaymentStatus,
		&resp.Street,
		&resp.City,
		&resp.State,
		&resp.ZipCode,
		&resp.Latitude,
		&resp.Longitude,
		&resp.CreatedAt,
		&resp.EstimatedDeliveryAt,
		&resp.SpecialInstructions,
		&resp.PaymentMethod,
	); err != nil {
		return OrderResponse{}, err
	}

	items, err := decodeItems(rawItems)
	if err != nil {
		return OrderResponse{}, err
	}
	resp.Items = items

	resp.Subtotal = float64(subtotalCents) / 100
	resp.DeliveryFee = float64(deliveryFeeCents) / 100
	resp.Total = float64(totalCents) / 100

	status, err := order.StatusFromString(resp.Status)
	if err != nil {
		return OrderResponse{}, err
	}
	resp.TrackerStep = status.TrackerStep()

	return resp, nil
}

// GetUserOrdersQueryHandler reads one user's order history straight from the
// database, newest first.
type GetUserOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetUserOrdersQueryHandler creates a handler for order history queries.
// Requires a GORM database connection for query execution.
func NewGetUserOrdersQueryHandler(db *gorm.DB) GetUserOrdersQueryHandler {
	return GetUserOrdersQueryHandler{db: db}
}

// Handle executes the query. A user with no orders yields an empty slice,
// not an error.
func (h GetUserOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetUserOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]OrderResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders
		WHERE user_id = ?
		ORDER BY created_at DESC
	`, query.UserID()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		resp, scanErr := scanOrderRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
