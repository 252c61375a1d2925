package services

import (
	"context"
	"fmt"
	"testing"

	"roll-point/config"
	"roll-point/db"
	"roll-point/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"9876543210", "9876543210"},
		{"(987) 654-3210", "9876543210"},
		{"987 654 3210", "9876543210"},
		{"+19876543210", "19876543210"},
		{"abc", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := normalizePhone(tt.in); got != tt.want {
			t.Errorf("normalizePhone(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

// testPool connects using the local config; tests are skipped when Postgres
// is not reachable.
func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	pool, err := db.Connect(context.Background(), cfg.DB)
	if err != nil {
		t.Skipf("Postgres not available: %v", err)
	}
	if err := pool.Ping(context.Background()); err != nil {
		pool.Close()
		t.Skipf("Postgres not available: %v", err)
	}
	t.Cleanup(pool.Close)
	return pool
}

func testEmail() string {
	return fmt.Sprintf("test-%s@example.com", uuid.NewString()[:8])
}

func TestAccounts_Integration(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	accounts := NewAccounts(pool)

	email := testEmail()
	phone := normalizePhone(fmt.Sprintf("%010d", uuid.New().ID()))[:10]
	t.Cleanup(func() {
		_, _ = pool.Exec(ctx, `DELETE FROM users WHERE email = $1`, email)
	})

	if err := accounts.Signup(ctx, "Test User", email, phone, "s3cret-pass"); err != nil {
		t.Fatalf("Signup: %v", err)
	}

	// Duplicate email and phone both conflict, and create no second record.
	if err := accounts.Signup(ctx, "Other", email, "0000000000", "pw"); err != ErrDuplicateEmail {
		t.Errorf("duplicate email: err = %v, want ErrDuplicateEmail", err)
	}
	if err := accounts.Signup(ctx, "Other", testEmail(), phone, "pw"); err != ErrDuplicatePhone {
		t.Errorf("duplicate phone: err = %v, want ErrDuplicatePhone", err)
	}
	var count int
	if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM users WHERE email = $1 OR phone = $2`, email, phone).Scan(&count); err != nil {
		t.Fatalf("count users: %v", err)
	}
	if count != 1 {
		t.Errorf("user count = %d, want 1", count)
	}

	// Login paths
	name, err := accounts.Login(ctx, email, "s3cret-pass")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if name != "Test User" {
		t.Errorf("display name = %q, want %q", name, "Test User")
	}
	if _, err := accounts.Login(ctx, email, "wrong"); err != ErrInvalidCredentials {
		t.Errorf("wrong password: err = %v, want ErrInvalidCredentials", err)
	}
	if _, err := accounts.Login(ctx, "nobody@example.com", "pw"); err != ErrUnknownEmail {
		t.Errorf("unknown email: err = %v, want ErrUnknownEmail", err)
	}

	// Profile update validation
	if err := accounts.UpdateProfile(ctx, email, "Test User", "12345"); err != ErrInvalidPhone {
		t.Errorf("short phone: err = %v, want ErrInvalidPhone", err)
	}
	if err := accounts.UpdateProfile(ctx, email, "Renamed User", "(111) 222-3344"); err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	t.Cleanup(func() {
		_, _ = pool.Exec(ctx, `DELETE FROM users WHERE phone = '1112223344'`)
	})
	u, err := accounts.Get(ctx, email)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if u.FullName != "Renamed User" || u.Phone != "1112223344" {
		t.Errorf("profile after update = %+v", u)
	}
}

func TestOrders_Integration(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	accounts := NewAccounts(pool)
	orders := NewOrders(pool)

	email := testEmail()
	phone := normalizePhone(fmt.Sprintf("%010d", uuid.New().ID()))[:10]
	t.Cleanup(func() {
		_, _ = pool.Exec(ctx, `DELETE FROM orders WHERE user_email = $1`, email)
		_, _ = pool.Exec(ctx, `DELETE FROM users WHERE email = $1`, email)
	})
	if err := accounts.Signup(ctx, "Order Tester", email, phone, "pw123456"); err != nil {
		t.Fatalf("Signup: %v", err)
	}

	// Empty cart never creates an order.
	if _, err := orders.Place(ctx, email, "Order Tester", nil, 0); err != ErrEmptyCart {
		t.Fatalf("empty cart: err = %v, want ErrEmptyCart", err)
	}

	items := []models.CartItem{
		{ID: uuid.NewString(), ItemID: 1, Name: "Classic Chicken Roll", Price: 107817, Quantity: 1, Type: models.TypeRoll},
	}
	placed, err := orders.Place(ctx, email, "Order Tester", items, 107817)
	if err != nil {
		t.Fatalf("Place: %v", err)
	}
	if placed.Status != OrderStatusPending {
		t.Errorf("status = %q, want pending", placed.Status)
	}

	got, err := orders.Get(ctx, placed.OrderID, email)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Total != 107817 || len(got.Items) != 1 {
		t.Errorf("got order total=%d items=%d", got.Total, len(got.Items))
	}

	// Owner scoping: another user cannot see the order.
	if _, err := orders.Get(ctx, placed.OrderID, "someone-else@example.com"); err != ErrOrderNotFound {
		t.Errorf("foreign owner: err = %v, want ErrOrderNotFound", err)
	}

	list, err := orders.List(ctx, email, false)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("list length = %d, want 1", len(list))
	}
	if list[0].UserEmail != "" {
		t.Error("non-admin listing should elide owner email")
	}
	if list[0].Location == nil {
		t.Error("listed order should carry the coordinate stub")
	}

	// Status machine
	if err := orders.UpdateStatus(ctx, placed.OrderID, OrderStatusDelivered); KindOf(err) != KindValidation {
		t.Errorf("pending->delivered: err = %v, want validation error", err)
	}
	if err := orders.UpdateStatus(ctx, placed.OrderID, OrderStatusConfirmed); err != nil {
		t.Fatalf("pending->confirmed: %v", err)
	}
	if err := orders.UpdateStatus(ctx, "RP00000000000000NOPE0000", OrderStatusConfirmed); err != ErrOrderNotFound {
		t.Errorf("unknown order: err = %v, want ErrOrderNotFound", err)
	}
}
