package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"roll-point/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

// deliveryEstimateOffset is added to the placement hour for the customer's
// delivery estimate.
const deliveryEstimateOffset = 45 * time.Minute

// defaultLocation is the delivery coordinate stub attached to listed orders.
var defaultLocation = models.GeoPoint{Lat: 28.6139, Lng: 77.2090}

// ValidOrderTransition reports whether an order may move from one status to
// the next. Orders start pending; cancellation is allowed until delivery
// starts.
func ValidOrderTransition(from, to string) bool {
	switch from {
	case OrderStatusPending:
		return to == OrderStatusConfirmed || to == OrderStatusCancelled
	case OrderStatusConfirmed:
		return to == OrderStatusDelivered || to == OrderStatusCancelled
	default:
		return false
	}
}

// NewOrderID builds an order identifier from the placement time and a random
// suffix, e.g. RP20240101120000A1B2C3D4.
func NewOrderID(now time.Time) string {
	suffix := strings.ToUpper(uuid.NewString()[:8])
	return "RP" + now.Format("20060102150405") + suffix
}

// EstimatedDelivery is the placement time truncated to the hour plus the
// fixed offset.
func EstimatedDelivery(now time.Time) time.Time {
	return now.UTC().Truncate(time.Hour).Add(deliveryEstimateOffset)
}

// Orders persists and retrieves placed orders.
type Orders struct {
	pool *pgxpool.Pool
}

func NewOrders(pool *pgxpool.Pool) *Orders {
	return &Orders{pool: pool}
}

// Place persists a pending order snapshotting the given cart lines. The
// owner must have a phone number on file. The caller clears its cart on
// success.
func (o *Orders) Place(ctx context.Context, email, name string, items []models.CartItem, total int64) (*models.Order, error) {
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	var phone string
	err := o.pool.QueryRow(ctx, `SELECT phone FROM users WHERE email = $1`, email).Scan(&phone)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrIncompleteProfile
		}
		return nil, fmt.Errorf("lookup owner: %w", err)
	}
	if phone == "" {
		return nil, ErrIncompleteProfile
	}

	now := time.Now().UTC()
	order := &models.Order{
		OrderID:           NewOrderID(now),
		UserEmail:         email,
		UserName:          name,
		Items:             items,
		Total:             total,
		Status:            OrderStatusPending,
		OrderDate:         now,
		EstimatedDelivery: EstimatedDelivery(now),
	}

	itemsJSON, err := json.Marshal(order.Items)
	if err != nil {
		return nil, fmt.Errorf("marshal order items: %w", err)
	}
	_, err = o.pool.Exec(ctx, `
		INSERT INTO orders (order_id, user_email, user_name, items, total, status, order_date, estimated_delivery)
		VALUES ($1, $2, $3, $4::jsonb, $5, $6, $7, $8)`,
		order.OrderID, order.UserEmail, order.UserName, itemsJSON,
		order.Total, order.Status, order.OrderDate, order.EstimatedDelivery,
	)
	if err != nil {
		return nil, fmt.Errorf("insert order: %w", err)
	}
	return order, nil
}

// Get returns an order matching both id and owner.
func (o *Orders) Get(ctx context.Context, orderID, email string) (*models.Order, error) {
	var ord models.Order
	var itemsJSON []byte
	err := o.pool.QueryRow(ctx, `
		SELECT order_id, user_email, user_name, items, total, status, order_date, estimated_delivery
		FROM orders WHERE order_id = $1 AND user_email = $2`,
		orderID, email,
	).Scan(&ord.OrderID, &ord.UserEmail, &ord.UserName, &itemsJSON,
		&ord.Total, &ord.Status, &ord.OrderDate, &ord.EstimatedDelivery)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	if err := json.Unmarshal(itemsJSON, &ord.Items); err != nil {
		return nil, fmt.Errorf("unmarshal order items: %w", err)
	}
	loc := defaultLocation
	ord.Location = &loc
	return &ord, nil
}

// List returns orders newest first. With all set (admin) every order is
// returned including owner identity; otherwise only the caller's own orders,
// with the owner email elided.
func (o *Orders) List(ctx context.Context, email string, all bool) ([]models.Order, error) {
	query := `
		SELECT order_id, user_email, user_name, items, total, status, order_date, estimated_delivery
		FROM orders WHERE user_email = $1
		ORDER BY order_date DESC`
	args := []any{email}
	if all {
		query = `
		SELECT order_id, user_email, user_name, items, total, status, order_date, estimated_delivery
		FROM orders
		ORDER BY order_date DESC`
		args = nil
	}

	rows, err := o.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	var orders []models.Order
	for rows.Next() {
		var ord models.Order
		var itemsJSON []byte
		if err := rows.Scan(&ord.OrderID, &ord.UserEmail, &ord.UserName, &itemsJSON,
			&ord.Total, &ord.Status, &ord.OrderDate, &ord.EstimatedDelivery); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(itemsJSON, &ord.Items); err != nil {
			return nil, fmt.Errorf("unmarshal order items: %w", err)
		}
		if !all {
			ord.UserEmail = ""
		}
		loc := defaultLocation
		ord.Location = &loc
		orders = append(orders, ord)
	}
	return orders, rows.Err()
}

// UpdateStatus advances an order through the status machine. Admin only;
// invalid transitions are rejected.
func (o *Orders) UpdateStatus(ctx context.Context, orderID, next string) error {
	var current string
	err := o.pool.QueryRow(ctx, `SELECT status FROM orders WHERE order_id = $1`, orderID).Scan(&current)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrOrderNotFound
		}
		return fmt.Errorf("get order status: %w", err)
	}
	if !ValidOrderTransition(current, next) {
		return &Error{KindValidation, fmt.Sprintf("cannot change order status from %s to %s", current, next)}
	}
	_, err = o.pool.Exec(ctx, `UPDATE orders SET status = $1 WHERE order_id = $2`, next, orderID)
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	return nil
}
