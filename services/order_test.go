package services

import (
	"strings"
	"testing"
	"time"
)

func TestValidOrderTransition(t *testing.T) {
	tests := []struct {
		from, to string
		want     bool
	}{
		{OrderStatusPending, OrderStatusConfirmed, true},
		{OrderStatusPending, OrderStatusCancelled, true},
		{OrderStatusPending, OrderStatusDelivered, false},
		{OrderStatusConfirmed, OrderStatusDelivered, true},
		{OrderStatusConfirmed, OrderStatusCancelled, true},
		{OrderStatusConfirmed, OrderStatusPending, false},
		{OrderStatusDelivered, OrderStatusCancelled, false},
		{OrderStatusDelivered, OrderStatusPending, false},
		{OrderStatusCancelled, OrderStatusConfirmed, false},
		{"", OrderStatusPending, false},
		{OrderStatusPending, "", false},
	}
	for _, tt := range tests {
		got := ValidOrderTransition(tt.from, tt.to)
		if got != tt.want {
			t.Errorf("ValidOrderTransition(%q, %q) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestNewOrderID(t *testing.T) {
	now := time.Date(2024, 3, 15, 18, 42, 7, 0, time.UTC)
	id := NewOrderID(now)

	if !strings.HasPrefix(id, "RP20240315184207") {
		t.Errorf("id = %q, want prefix RP20240315184207", id)
	}
	if len(id) != 2+14+8 {
		t.Errorf("id length = %d, want %d", len(id), 2+14+8)
	}
	if suffix := id[16:]; suffix != strings.ToUpper(suffix) {
		t.Errorf("suffix %q should be uppercase", suffix)
	}

	// Random suffix keeps ids from colliding within one second.
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		next := NewOrderID(now)
		if seen[next] {
			t.Fatalf("duplicate order id %q", next)
		}
		seen[next] = true
	}
}

func TestEstimatedDelivery(t *testing.T) {
	tests := []struct {
		now  time.Time
		want time.Time
	}{
		{
			time.Date(2024, 3, 15, 18, 42, 7, 0, time.UTC),
			time.Date(2024, 3, 15, 18, 45, 0, 0, time.UTC),
		},
		{
			time.Date(2024, 3, 15, 18, 0, 0, 0, time.UTC),
			time.Date(2024, 3, 15, 18, 45, 0, 0, time.UTC),
		},
		{
			time.Date(2024, 12, 31, 23, 59, 59, 0, time.UTC),
			time.Date(2024, 12, 31, 23, 45, 0, 0, time.UTC),
		},
	}
	for _, tt := range tests {
		got := EstimatedDelivery(tt.now)
		if !got.Equal(tt.want) {
			t.Errorf("EstimatedDelivery(%v) = %v, want %v", tt.now, got, tt.want)
		}
	}
}
