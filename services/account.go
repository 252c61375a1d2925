package services

import (
	"context"
	"errors"
	"fmt"

	"roll-point/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

// Accounts creates and authenticates users against the users table.
type Accounts struct {
	pool *pgxpool.Pool
}

func NewAccounts(pool *pgxpool.Pool) *Accounts {
	return &Accounts{pool: pool}
}

// Signup registers a new user. Email and phone must both be unused.
func (a *Accounts) Signup(ctx context.Context, fullName, email, phone, password string) error {
	if fullName == "" || email == "" || phone == "" || password == "" {
		return ErrMissingFields
	}
	exists, err := a.EmailExists(ctx, email)
	if err != nil {
		return err
	}
	if exists {
		return ErrDuplicateEmail
	}
	exists, err = a.PhoneExists(ctx, phone)
	if err != nil {
		return err
	}
	if exists {
		return ErrDuplicatePhone
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	_, err = a.pool.Exec(ctx, `
		INSERT INTO users (email, phone, full_name, password_hash, created_at)
		VALUES ($1, $2, $3, $4, now())`,
		email, phone, fullName, string(hash),
	)
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// Login verifies the password and returns the user's display name. The hash
// never leaves this method.
func (a *Accounts) Login(ctx context.Context, email, password string) (string, error) {
	var fullName, hash string
	err := a.pool.QueryRow(ctx, `
		SELECT full_name, password_hash FROM users WHERE email = $1`,
		email,
	).Scan(&fullName, &hash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ErrUnknownEmail
		}
		return "", fmt.Errorf("lookup user: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
		return "", ErrInvalidCredentials
	}
	return fullName, nil
}

// UpdateProfile changes the display name and phone. The phone is normalized
// to digits and must be exactly 10 of them, and must not belong to another
// account.
func (a *Accounts) UpdateProfile(ctx context.Context, email, fullName, phone string) error {
	if fullName == "" || phone == "" {
		return ErrMissingFields
	}
	clean := normalizePhone(phone)
	if len(clean) != 10 {
		return ErrInvalidPhone
	}

	var taken int
	err := a.pool.QueryRow(ctx, `
		SELECT 1 FROM users WHERE phone = $1 AND email <> $2`,
		clean, email,
	).Scan(&taken)
	if err == nil {
		return ErrPhoneTaken
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("check phone: %w", err)
	}

	_, err = a.pool.Exec(ctx, `
		UPDATE users SET full_name = $1, phone = $2 WHERE email = $3`,
		fullName, clean, email,
	)
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	return nil
}

// Get returns the user record without the password hash.
func (a *Accounts) Get(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := a.pool.QueryRow(ctx, `
		SELECT email, phone, full_name, created_at FROM users WHERE email = $1`,
		email,
	).Scan(&u.Email, &u.Phone, &u.FullName, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUnknownEmail
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}

func (a *Accounts) EmailExists(ctx context.Context, email string) (bool, error) {
	var ok int
	err := a.pool.QueryRow(ctx, `SELECT 1 FROM users WHERE email = $1`, email).Scan(&ok)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("check email: %w", err)
	}
	return true, nil
}

func (a *Accounts) PhoneExists(ctx context.Context, phone string) (bool, error) {
	var ok int
	err := a.pool.QueryRow(ctx, `SELECT 1 FROM users WHERE phone = $1`, phone).Scan(&ok)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("check phone: %w", err)
	}
	return true, nil
}

func normalizePhone(phone string) string {
	digits := make([]byte, 0, len(phone))
	for i := 0; i < len(phone); i++ {
		if phone[i] >= '0' && phone[i] <= '9' {
			digits = append(digits, phone[i])
		}
	}
	return string(digits)
}
