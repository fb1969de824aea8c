package repos

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"shopdrive/internal/domain"
)

// SettingsRepo keeps the single site-settings row (id 1).
type SettingsRepo struct{ db *sqlx.DB }

func NewSettingsRepo(db *sqlx.DB) *SettingsRepo { return &SettingsRepo{db: db} }

type settingsRow struct {
	SiteName        string `db:"site_name"`
	SiteDescription string `db:"site_description"`
	Logo            string `db:"logo"`
	ContactPhone    string `db:"contact_phone"`
	ContactEmail    string `db:"contact_email"`
	Address         string `db:"address"`
	WhatsApp        string `db:"social_whatsapp"`
	Facebook        string `db:"social_facebook"`
	Instagram       string `db:"social_instagram"`
}

func (r *SettingsRepo) Get(ctx context.Context) (domain.Settings, error) {
	var row settingsRow
	err := r.db.GetContext(ctx, &row, `
  SELECT site_name, site_description, logo, contact_phone, contact_email, address,
         social_whatsapp, social_facebook, social_instagram
  FROM settings WHERE id = 1`)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.DefaultSettings(), nil
	}
	if err != nil {
		return domain.Settings{}, err
	}
	return domain.Settings{
		SiteName:        row.SiteName,
		SiteDescription: row.SiteDescription,
		Logo:            row.Logo,
		ContactPhone:    row.ContactPhone,
		ContactEmail:    row.ContactEmail,
		Address:         row.Address,
		SocialMedia: domain.SocialMedia{
			WhatsApp: row.WhatsApp, Facebook: row.Facebook, Instagram: row.Instagram,
		},
	}, nil
}

func (r *SettingsRepo) Put(ctx context.Context, s domain.Settings) error {
	_, err := r.db.ExecContext(ctx, r.db.Rebind(`
  INSERT INTO settings(id, site_name, site_description, logo, contact_phone, contact_email, address,
                       social_whatsapp, social_facebook, social_instagram, updated_at)
  VALUES(1,?,?,?,?,?,?,?,?,?,?)
  ON CONFLICT(id) DO UPDATE SET
    site_name=excluded.site_name, site_description=excluded.site_description, logo=excluded.logo,
    contact_phone=excluded.contact_phone, contact_email=excluded.contact_email, address=excluded.address,
    social_whatsapp=excluded.social_whatsapp, social_facebook=excluded.social_facebook,
    social_instagram=excluded.social_instagram, updated_at=excluded.updated_at`),
		s.SiteName, s.SiteDescription, s.Logo, s.ContactPhone, s.ContactEmail, s.Address,
		s.SocialMedia.WhatsApp, s.SocialMedia.Facebook, s.SocialMedia.Instagram, domain.Now())
	return err
}
