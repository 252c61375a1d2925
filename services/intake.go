package services

import (
	"context"
	"crypto/md5"
	"fmt"
	"strings"
	"time"

	"roll-point/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Intake appends customer reviews and contact messages. Both are pure append
// collections; nothing updates or deletes them.
type Intake struct {
	pool *pgxpool.Pool
}

func NewIntake(pool *pgxpool.Pool) *Intake {
	return &Intake{pool: pool}
}

// AvatarURL derives a gravatar URL from the user's email.
func AvatarURL(email string) string {
	sum := md5.Sum([]byte(strings.ToLower(email)))
	return fmt.Sprintf("https://www.gravatar.com/avatar/%x?d=mp&s=100", sum)
}

// SubmitReview stores an auto-approved review and returns it.
func (i *Intake) SubmitReview(ctx context.Context, email, name string, rating int, title, text, customerTitle string) (*models.Review, error) {
	if rating == 0 || strings.TrimSpace(text) == "" {
		return nil, &Error{KindValidation, "Rating and review text are required"}
	}
	if rating < 1 || rating > 5 {
		return nil, ErrInvalidRating
	}

	review := &models.Review{
		UserEmail:     email,
		UserName:      name,
		UserAvatar:    AvatarURL(email),
		CustomerTitle: customerTitle,
		Rating:        rating,
		Title:         title,
		Text:          text,
		Date:          time.Now().UTC(),
		Approved:      true,
	}
	_, err := i.pool.Exec(ctx, `
		INSERT INTO reviews (user_email, user_name, user_avatar, customer_title, rating, title, review_text, review_date, approved)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		review.UserEmail, review.UserName, review.UserAvatar, review.CustomerTitle,
		review.Rating, review.Title, review.Text, review.Date, review.Approved,
	)
	if err != nil {
		return nil, fmt.Errorf("insert review: %w", err)
	}
	return review, nil
}

// ListReviews returns approved reviews, newest first.
func (i *Intake) ListReviews(ctx context.Context, limit int) ([]models.Review, error) {
	rows, err := i.pool.Query(ctx, `
		SELECT user_name, user_avatar, customer_title, rating, title, review_text, review_date
		FROM reviews WHERE approved ORDER BY review_date DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	defer rows.Close()

	var reviews []models.Review
	for rows.Next() {
		r := models.Review{Approved: true}
		if err := rows.Scan(&r.UserName, &r.UserAvatar, &r.CustomerTitle,
			&r.Rating, &r.Title, &r.Text, &r.Date); err != nil {
			return nil, err
		}
		reviews = append(reviews, r)
	}
	return reviews, rows.Err()
}

// SubmitContact stores a contact form submission with status "new".
func (i *Intake) SubmitContact(ctx context.Context, name, email, subject, message, sessionEmail, sessionName string) error {
	if name == "" || email == "" || subject == "" || message == "" {
		return ErrMissingFields
	}
	_, err := i.pool.Exec(ctx, `
		INSERT INTO contact_messages (name, email, subject, message, user_email, user_name, created_at, status)
		VALUES ($1, $2, $3, $4, $5, $6, now(), 'new')`,
		name, email, subject, message, sessionEmail, sessionName,
	)
	if err != nil {
		return fmt.Errorf("insert contact message: %w", err)
	}
	return nil
}
