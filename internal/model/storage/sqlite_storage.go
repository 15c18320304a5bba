package storage

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"

	// sqlite driver
	_ "modernc.org/sqlite"
)

const settingsSchema = `
CREATE TABLE IF NOT EXISTS settings (
	name  TEXT PRIMARY KEY,
	value BLOB NOT NULL
)`

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Question)

type config interface {
	Path() string
}

// SqliteStorage is the local settings store: a single name/value table
// in a sqlite file next to the app. The whole record collection lives
// under one named entry.
type SqliteStorage struct {
	db *sql.DB
}

func NewSqliteStorage(config config) (*SqliteStorage, error) {
	db, err := sql.Open("sqlite", config.Path())
	if err != nil {
		return nil, errors.Wrap(err, "cannot open settings database")
	}
	if err = db.Ping(); err != nil {
		return nil, errors.Wrap(err, "cannot open settings database")
	}
	if _, err = db.Exec(settingsSchema); err != nil {
		return nil, errors.Wrap(err, "cannot init settings schema")
	}
	return &SqliteStorage{db}, nil
}

// Get reads a settings entry. A missing entry is reported through ok,
// not through err.
func (s *SqliteStorage) Get(ctx context.Context, key string) ([]byte, bool, error) {
	query := qb.Select("value").
		From("settings").
		Where(sq.Eq{"name": key})

	var value []byte
	err := query.RunWith(s.db).QueryRowContext(ctx).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrap(err, "get setting")
	}
	return value, true, nil
}

// Set overwrites a settings entry as a whole.
func (s *SqliteStorage) Set(ctx context.Context, key string, value []byte) error {
	query := qb.Insert("settings").
		Columns("name", "value").
		Values(key, value).
		Suffix("ON CONFLICT(name) DO UPDATE SET value = ?", value)

	_, err := query.RunWith(s.db).ExecContext(ctx)
	return errors.Wrap(err, "set setting")
}

func (s *SqliteStorage) Close() error {
	return s.db.Close()
}
