package services

import (
	"context"
	"testing"
)

func TestAvatarURL(t *testing.T) {
	// md5("test@example.com") — case is normalized before hashing.
	want := "https://www.gravatar.com/avatar/55502f40dc8b7c769880b10874abc9d0?d=mp&s=100"
	if got := AvatarURL("test@example.com"); got != want {
		t.Errorf("AvatarURL = %q, want %q", got, want)
	}
	if got := AvatarURL("TEST@Example.COM"); got != want {
		t.Errorf("AvatarURL should lowercase the email first, got %q", got)
	}
}

func TestSubmitReviewValidation(t *testing.T) {
	intake := NewIntake(nil) // validation happens before any query

	tests := []struct {
		name   string
		rating int
		text   string
	}{
		{"no rating", 0, "great rolls"},
		{"no text", 5, ""},
		{"blank text", 5, "   "},
		{"rating too high", 6, "great rolls"},
		{"rating negative", -1, "great rolls"},
	}
	for _, tt := range tests {
		_, err := intake.SubmitReview(context.Background(), "a@b.com", "A", tt.rating, "", tt.text, "")
		if KindOf(err) != KindValidation {
			t.Errorf("%s: err = %v, want validation error", tt.name, err)
		}
	}
}

func TestSubmitContactValidation(t *testing.T) {
	intake := NewIntake(nil)
	err := intake.SubmitContact(context.Background(), "", "a@b.com", "subj", "msg", "a@b.com", "A")
	if err != ErrMissingFields {
		t.Errorf("missing name: err = %v, want ErrMissingFields", err)
	}
}

func TestIntake_Integration(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	intake := NewIntake(pool)

	email := testEmail()
	t.Cleanup(func() {
		_, _ = pool.Exec(ctx, `DELETE FROM reviews WHERE user_email = $1`, email)
		_, _ = pool.Exec(ctx, `DELETE FROM contact_messages WHERE user_email = $1`, email)
	})

	review, err := intake.SubmitReview(ctx, email, "Reviewer", 5, "Great!", "Loved the paneer roll", "Foodie")
	if err != nil {
		t.Fatalf("SubmitReview: %v", err)
	}
	if !review.Approved {
		t.Error("review should be auto-approved")
	}
	if review.UserAvatar == "" {
		t.Error("review should carry a derived avatar")
	}

	reviews, err := intake.ListReviews(ctx, 100)
	if err != nil {
		t.Fatalf("ListReviews: %v", err)
	}
	found := false
	for _, r := range reviews {
		if r.UserName == "Reviewer" && r.Text == "Loved the paneer roll" {
			found = true
		}
	}
	if !found {
		t.Error("submitted review missing from listing")
	}

	if err := intake.SubmitContact(ctx, "Sender", "sender@example.com", "Hello", "A question", email, "Reviewer"); err != nil {
		t.Fatalf("SubmitContact: %v", err)
	}
}
