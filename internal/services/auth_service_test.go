package services_test

import (
	"errors"
	"testing"

	"shopdrive/internal/domain"
	"shopdrive/internal/memstore"
	"shopdrive/internal/services"
)

func TestAuth_EnsureAdminAndLogin(t *testing.T) {
	auth := &services.AuthService{Users: memstore.NewUsers()}
	if err := auth.EnsureAdmin(ctx, "admin@shopdrive.test", "Passw0rd!"); err != nil {
		t.Fatal(err)
	}

	if _, err := auth.Login(ctx, "sid-1", "admin@shopdrive.test", "wrong"); !errors.Is(err, services.ErrBadCreds) {
		t.Fatalf("want ErrBadCreds, got %v", err)
	}
	if _, err := auth.Login(ctx, "sid-1", "ghost@shopdrive.test", "Passw0rd!"); !errors.Is(err, services.ErrBadCreds) {
		t.Fatalf("want ErrBadCreds, got %v", err)
	}

	u, err := auth.Login(ctx, "sid-1", "ADMIN@shopdrive.test", "Passw0rd!")
	if err != nil {
		t.Fatal(err)
	}
	if u.Role != services.RoleAdmin {
		t.Fatalf("want admin role, got %q", u.Role)
	}
	cur, err := auth.CurrentUser(ctx, "sid-1")
	if err != nil || cur.ID != u.ID {
		t.Fatalf("session not bound: %v %+v", err, cur)
	}

	if err := auth.Logout(ctx, "sid-1"); err != nil {
		t.Fatal(err)
	}
	if _, err := auth.CurrentUser(ctx, "sid-1"); err == nil {
		t.Fatal("session should be unbound after logout")
	}
}

func TestAuth_EnsureAdminRejectsWeakPassword(t *testing.T) {
	auth := &services.AuthService{Users: memstore.NewUsers()}
	if err := auth.EnsureAdmin(ctx, "admin@shopdrive.test", "password"); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("want ErrInvalidInput, got %v", err)
	}
	if err := auth.EnsureAdmin(ctx, "nobody", "Passw0rd!"); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("want ErrInvalidInput, got %v", err)
	}
}
