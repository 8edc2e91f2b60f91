package repos

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// Result reports the outcome of a mutating statement.
type Result struct {
	LastInsertID int64
	RowsAffected int64
}

// Gateway owns the single handle to the relational store.
type Gateway struct {
	db      *sqlx.DB
	openErr error
}

// Open connects to the sqlite file at dsn and ensures the schema exists.
func Open(dsn string) (*Gateway, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, wrap("open", err)
	}
	// One shared connection. Also keeps ":memory:" a single database.
	db.SetMaxOpenConns(1)
	if err = db.Ping(); err != nil {
		_ = db.Close()
		return nil, wrap("ping", err)
	}

	g := &Gateway{db: db}
	if err := g.EnsureSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return g, nil
}

// Unavailable returns a gateway that fails every call with cause. It lets the
// service keep running when the store could not be opened at startup.
func Unavailable(cause error) *Gateway {
	if cause == nil {
		cause = errors.New("storage unavailable")
	}
	return &Gateway{openErr: cause}
}

func (g *Gateway) EnsureSchema(ctx context.Context) error {
	const schema = `
CREATE TABLE IF NOT EXISTS users(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  username TEXT NOT NULL UNIQUE,
  email TEXT NOT NULL UNIQUE,
  age INTEGER,
  role TEXT DEFAULT 'user'
);
`
	if g.openErr != nil {
		return wrap("schema", g.openErr)
	}
	_, err := g.db.ExecContext(ctx, schema)
	return wrap("schema", err)
}

// Query runs a read-only statement into dest, a pointer to a slice.
// No matching rows leaves dest empty and returns nil.
func (g *Gateway) Query(ctx context.Context, dest any, query string, args ...any) error {
	if g.openErr != nil {
		return wrap("query", g.openErr)
	}
	return wrap("query", g.db.SelectContext(ctx, dest, query, args...))
}

// Get runs a read-only statement expected to return one row.
// It returns ErrNotFound when no row matches.
func (g *Gateway) Get(ctx context.Context, dest any, query string, args ...any) error {
	if g.openErr != nil {
		return wrap("get", g.openErr)
	}
	err := g.db.GetContext(ctx, dest, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return wrap("get", err)
}

// Execute runs a mutating statement.
func (g *Gateway) Execute(ctx context.Context, query string, args ...any) (Result, error) {
	if g.openErr != nil {
		return Result{}, wrap("execute", g.openErr)
	}
	res, err := g.db.ExecContext(ctx, query, args...)
	if err != nil {
		return Result{}, wrap("execute", err)
	}
	var out Result
	// sqlite reports both; errors here would mean an unsupported driver.
	if out.LastInsertID, err = res.LastInsertId(); err != nil {
		return Result{}, wrap("execute", err)
	}
	if out.RowsAffected, err = res.RowsAffected(); err != nil {
		return Result{}, wrap("execute", err)
	}
	return out, nil
}

func (g *Gateway) Ping(ctx context.Context) error {
	if g.openErr != nil {
		return wrap("ping", g.openErr)
	}
	return wrap("ping", g.db.PingContext(ctx))
}

// Close releases the handle. Safe on an unavailable gateway.
func (g *Gateway) Close() error {
	if g.db == nil {
		return nil
	}
	return g.db.Close()
}
