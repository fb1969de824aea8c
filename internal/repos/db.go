package repos

import (
	"context"
	"database/sql/driver"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"modernc.org/sqlite"

	"shopdrive/internal/content"
	"shopdrive/internal/domain"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

func init() {
	// sqlx knows "sqlite3" but not the modernc driver name
	sqlx.BindDriver(DriverSQLite, sqlx.QUESTION)
	// SQLite's built-in lower() folds ASCII only; listings must fold case
	// the same way on every backend.
	sqlite.MustRegisterDeterministicScalarFunction("lower", 1, unicodeLower)
}

func unicodeLower(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	switch v := args[0].(type) {
	case string:
		return strings.ToLower(v), nil
	case []byte:
		return strings.ToLower(string(v)), nil
	}
	return args[0], nil
}

// OpenDB connects, creates the schema and seeds the demo catalog into empty tables.
func OpenDB(driver, dsn string) (*sqlx.DB, error) {
	switch driver {
	case DriverSQLite, DriverPostgres:
	default:
		return nil, fmt.Errorf("unsupported driver %q", driver)
	}
	db, err := sqlx.Open(driver, dsn)
	if err != nil {
		return nil, err
	}
	if driver == DriverSQLite {
		// one connection: ":memory:" is per-connection and SQLite serializes writers anyway
		db.SetMaxOpenConns(1)
	}
	if err = db.Ping(); err != nil {
		db.Close()
		return nil, err
	}

	if err := ensureSchema(db); err != nil {
		db.Close()
		return nil, err
	}
	if err := seedIfEmpty(context.Background(), db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// The schema sticks to types both SQLite and Postgres accept: booleans are
// 0/1 integers and timestamps fixed-width text.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS promos(
  id TEXT PRIMARY KEY,
  title TEXT NOT NULL,
  description TEXT NOT NULL DEFAULT '',
  discount TEXT NOT NULL DEFAULT '',
  valid_until TEXT NOT NULL DEFAULT '',
  status TEXT NOT NULL CHECK (status IN ('active','expired','scheduled')),
  image TEXT NOT NULL DEFAULT '',
  original_price TEXT NOT NULL DEFAULT '',
  discount_price TEXT NOT NULL DEFAULT '',
  created_at TEXT NOT NULL,
  updated_at TEXT NOT NULL
)`,
	`CREATE INDEX IF NOT EXISTS idx_promos_status ON promos(status)`,
	`CREATE INDEX IF NOT EXISTS idx_promos_created_at ON promos(created_at)`,

	`CREATE TABLE IF NOT EXISTS articles(
  id TEXT PRIMARY KEY,
  title TEXT NOT NULL,
  excerpt TEXT NOT NULL DEFAULT '',
  content TEXT NOT NULL DEFAULT '',
  publish_date TEXT NOT NULL DEFAULT '',
  author TEXT NOT NULL DEFAULT '',
  category TEXT NOT NULL DEFAULT '',
  read_time TEXT NOT NULL DEFAULT '',
  image TEXT NOT NULL DEFAULT '',
  status TEXT NOT NULL CHECK (status IN ('published','draft','archived')),
  created_at TEXT NOT NULL,
  updated_at TEXT NOT NULL
)`,
	`CREATE INDEX IF NOT EXISTS idx_articles_status ON articles(status)`,
	`CREATE INDEX IF NOT EXISTS idx_articles_category ON articles(category)`,
	`CREATE INDEX IF NOT EXISTS idx_articles_created_at ON articles(created_at)`,

	`CREATE TABLE IF NOT EXISTS products(
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  category TEXT NOT NULL DEFAULT '',
  price TEXT NOT NULL DEFAULT '',
  original_price TEXT NOT NULL DEFAULT '',
  rating DOUBLE PRECISION NOT NULL DEFAULT 0,
  reviews INTEGER NOT NULL DEFAULT 0,
  image TEXT NOT NULL DEFAULT '',
  description TEXT NOT NULL DEFAULT '',
  in_stock INTEGER NOT NULL DEFAULT 1,
  is_promo INTEGER NOT NULL DEFAULT 0,
  created_at TEXT NOT NULL,
  updated_at TEXT NOT NULL
)`,
	`CREATE INDEX IF NOT EXISTS idx_products_category ON products(category)`,
	`CREATE INDEX IF NOT EXISTS idx_products_created_at ON products(created_at)`,

	`CREATE TABLE IF NOT EXISTS sponsors(
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  logo TEXT NOT NULL DEFAULT '',
  category TEXT NOT NULL DEFAULT '',
  website TEXT NOT NULL DEFAULT '',
  description TEXT NOT NULL DEFAULT '',
  is_active INTEGER NOT NULL DEFAULT 1,
  sort_order INTEGER NOT NULL DEFAULT 0,
  created_at TEXT NOT NULL,
  updated_at TEXT NOT NULL
)`,
	`CREATE INDEX IF NOT EXISTS idx_sponsors_sort_order ON sponsors(sort_order)`,

	`CREATE TABLE IF NOT EXISTS settings(
  id INTEGER PRIMARY KEY,
  site_name TEXT NOT NULL,
  site_description TEXT NOT NULL DEFAULT '',
  logo TEXT NOT NULL DEFAULT '',
  contact_phone TEXT NOT NULL DEFAULT '',
  contact_email TEXT NOT NULL DEFAULT '',
  address TEXT NOT NULL DEFAULT '',
  social_whatsapp TEXT NOT NULL DEFAULT '',
  social_facebook TEXT NOT NULL DEFAULT '',
  social_instagram TEXT NOT NULL DEFAULT '',
  updated_at TEXT NOT NULL
)`,

	`CREATE TABLE IF NOT EXISTS users(
  id TEXT PRIMARY KEY,
  email TEXT NOT NULL UNIQUE,
  name TEXT NOT NULL,
  password_hash TEXT NOT NULL,
  role TEXT NOT NULL CHECK (role IN ('USER','ADMIN'))
)`,

	`CREATE TABLE IF NOT EXISTS sessions(
  id TEXT PRIMARY KEY,
  user_id TEXT NULL REFERENCES users(id) ON DELETE SET NULL,
  last_seen TEXT NOT NULL
)`,
}

func ensureSchema(db *sqlx.DB) error {
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("schema: %w", err)
		}
	}
	return nil
}

// seedIfEmpty fills each empty content table with the demo catalog. Tables
// that already hold rows are left alone, so deleted samples stay deleted.
func seedIfEmpty(ctx context.Context, db *sqlx.DB) error {
	s := NewStore(db)
	d := content.Sample()

	if err := seedTable(ctx, db, s.promos, d.Promos); err != nil {
		return err
	}
	if err := seedTable(ctx, db, s.articles, d.Articles); err != nil {
		return err
	}
	if err := seedTable(ctx, db, s.products, d.Products); err != nil {
		return err
	}
	return seedTable(ctx, db, s.sponsors, d.Sponsors)
}

func seedTable[T any](ctx context.Context, db *sqlx.DB, t *table[T], rows []T) error {
	var n int
	if err := db.GetContext(ctx, &n, `SELECT COUNT(*) FROM `+t.name); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()
	for i := range rows {
		if _, err := tx.ExecContext(ctx, t.insertSQL(), t.values(&rows[i])...); err != nil {
			return fmt.Errorf("seed %s: %w", t.name, err)
		}
	}
	return tx.Commit()
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// Compile-time checks.
var (
	_ content.Store                   = (*Store)(nil)
	_ content.Collection[domain.Promo] = (*table[domain.Promo])(nil)
)
