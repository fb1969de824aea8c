package repos

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"

	"shopdrive/internal/domain"
)

type UserRepo struct{ DB *sqlx.DB }

func NewUserRepo(db *sqlx.DB) *UserRepo { return &UserRepo{DB: db} }

func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	return err
}

// Upsert creates u or, when the email is taken, replaces that account's name, hash and role.
func (r *UserRepo) Upsert(ctx context.Context, u domain.User) error {
	_, err := r.DB.ExecContext(ctx, r.DB.Rebind(`
  INSERT INTO users(id,email,name,password_hash,role) VALUES(?,?,?,?,?)
  ON CONFLICT(email) DO UPDATE SET name=excluded.name, password_hash=excluded.password_hash, role=excluded.role`),
		u.ID, strings.ToLower(u.Email), u.Name, u.Hash, u.Role)
	return err
}

func (r *UserRepo) ByEmail(ctx context.Context, email string) (*domain.User, error) {
	var u domain.User
	err := r.DB.GetContext(ctx, &u, r.DB.Rebind(`SELECT id,email,name,password_hash,role FROM users WHERE email=?`),
		strings.ToLower(email))
	if err != nil {
		return nil, notFound(err)
	}
	return &u, nil
}

func (r *UserRepo) BindSession(ctx context.Context, sid, userID string) error {
	_, err := r.DB.ExecContext(ctx, r.DB.Rebind(`INSERT INTO sessions(id,user_id,last_seen)
                          VALUES(?,?,?)
                          ON CONFLICT(id) DO UPDATE SET user_id=excluded.user_id,last_seen=excluded.last_seen`),
		sid, userID, domain.Now())
	return err
}

func (r *UserRepo) SessionUser(ctx context.Context, sid string) (*domain.User, error) {
	var u domain.User
	err := r.DB.GetContext(ctx, &u, r.DB.Rebind(`
      SELECT u.id,u.email,u.name,u.password_hash,u.role
      FROM sessions s
      JOIN users u ON u.id=s.user_id
      WHERE s.id=?`), sid)
	if err != nil {
		return nil, notFound(err)
	}
	return &u, nil
}

func (r *UserRepo) UnbindSession(ctx context.Context, sid string) error {
	_, err := r.DB.ExecContext(ctx, r.DB.Rebind(`UPDATE sessions SET user_id=NULL,last_seen=? WHERE id=?`),
		domain.Now(), sid)
	return err
}
