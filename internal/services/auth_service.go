package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"shopdrive/internal/domain"
	"shopdrive/internal/validate"
)

var ErrBadCreds = errors.New("invalid email or password")

const RoleAdmin = "ADMIN"

// UserStore is implemented by repos.UserRepo and memstore.Users.
type UserStore interface {
	Upsert(ctx context.Context, u domain.User) error
	ByEmail(ctx context.Context, email string) (*domain.User, error)
	BindSession(ctx context.Context, sid, userID string) error
	SessionUser(ctx context.Context, sid string) (*domain.User, error)
	UnbindSession(ctx context.Context, sid string) error
}

type AuthService struct {
	Users UserStore
}

// EnsureAdmin creates or resets the admin account for email.
func (s *AuthService) EnsureAdmin(ctx context.Context, email, password string) error {
	email, ok := validate.Email(email)
	if !ok {
		return fmt.Errorf("%w: admin email", domain.ErrInvalidInput)
	}
	if !validate.Password(password) {
		return fmt.Errorf("%w: admin password needs 8-72 chars with upper, lower, digit and symbol", domain.ErrInvalidInput)
	}
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.Users.Upsert(ctx, domain.User{
		ID: uuid.NewString(), Email: email, Name: "Admin", Hash: string(h), Role: RoleAdmin,
	})
}

func (s *AuthService) Login(ctx context.Context, sid, email, password string) (*domain.User, error) {
	u, err := s.Users.ByEmail(ctx, email)
	if err != nil {
		return nil, ErrBadCreds
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Hash), []byte(password)) != nil {
		return nil, ErrBadCreds
	}
	if err := s.Users.BindSession(ctx, sid, u.ID); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *AuthService) Logout(ctx context.Context, sid string) error {
	return s.Users.UnbindSession(ctx, sid)
}

func (s *AuthService) CurrentUser(ctx context.Context, sid string) (*domain.User, error) {
	return s.Users.SessionUser(ctx, sid)
}
