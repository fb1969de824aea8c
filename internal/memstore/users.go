package memstore

import (
	"context"
	"strings"
	"sync"

	"shopdrive/internal/domain"
)

// Users keeps admin accounts and session bindings for backends without a database.
type Users struct {
	mu       sync.RWMutex
	byID     map[string]domain.User
	sessions map[string]string
}

func NewUsers() *Users {
	return &Users{byID: map[string]domain.User{}, sessions: map[string]string{}}
}

// Upsert adds u, replacing any account with the same email.
func (r *Users) Upsert(_ context.Context, u domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, existing := range r.byID {
		if strings.EqualFold(existing.Email, u.Email) {
			delete(r.byID, id)
		}
	}
	r.byID[u.ID] = u
	return nil
}

func (r *Users) ByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.byID {
		if strings.EqualFold(u.Email, email) {
			return &u, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *Users) BindSession(_ context.Context, sid, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[userID]; !ok {
		return domain.ErrNotFound
	}
	r.sessions[sid] = userID
	return nil
}

func (r *Users) SessionUser(_ context.Context, sid string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.byID[r.sessions[sid]]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &u, nil
}

func (r *Users) UnbindSession(_ context.Context, sid string) error {
	r.mu.Lock()
	delete(r.sessions, sid)
	r.mu.Unlock()
	return nil
}
