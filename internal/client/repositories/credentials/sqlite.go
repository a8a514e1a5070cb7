package credentials

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/opencampus/campusctl/internal/common"
	"github.com/opencampus/campusctl/internal/dbx"
)

// SQLiteStore keeps the token in a two-row key/value table. The expiry is an
// absolute RFC3339 timestamp written alongside the token, so restarts keep
// honoring the original TTL.
type SQLiteStore struct {
	db  *sql.DB
	ttl time.Duration
	now func() time.Time
}

func NewSQLiteStore(db *sql.DB, ttl time.Duration) *SQLiteStore {
	return &SQLiteStore{db: db, ttl: ttl, now: time.Now}
}

func (s *SQLiteStore) set(ctx context.Context, tx dbx.DBTX, key, value string) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO credentials (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set credentials[%s]: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) get(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM credentials WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get credentials[%s]: %w", key, err)
	}
	return value, nil
}

// Save stores token together with its expiry in one transaction.
func (s *SQLiteStore) Save(ctx context.Context, token string) error {
	expiry := s.now().Add(s.ttl).Format(time.RFC3339)

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.set(ctx, tx, common.AccessTokenKey, token); err != nil {
			return err
		}
		return s.set(ctx, tx, common.AccessTokenExpiryKey, expiry)
	})
}

// Load returns the stored token, or "" when it is absent or expired. A stored
// expiry that fails to parse counts as absence: the row is dropped and the
// caller proceeds anonymously rather than failing.
func (s *SQLiteStore) Load(ctx context.Context) (string, error) {
	token, err := s.get(ctx, common.AccessTokenKey)
	if err != nil {
		return "", err
	}
	if token == "" {
		return "", nil
	}

	rawExpiry, err := s.get(ctx, common.AccessTokenExpiryKey)
	if err != nil {
		return "", err
	}
	expiry, perr := time.Parse(time.RFC3339, rawExpiry)
	if perr != nil || !s.now().Before(expiry) {
		_ = s.Clear(ctx)
		return "", nil
	}
	return token, nil
}

// Clear removes the token and its expiry. Idempotent.
func (s *SQLiteStore) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM credentials`)
	if err != nil {
		return fmt.Errorf("failed to clear credentials: %w", err)
	}
	return nil
}
