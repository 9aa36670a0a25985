package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/ashish-aa/skillmesh/internal/client/models"
	"github.com/ashish-aa/skillmesh/internal/dbx"
)

const (
	keyAccountID     = "account_id"
	keyEmail         = "email"
	keyEmailVerified = "email_verified"
	keyAccessToken   = "access_token"
	keyRefreshToken  = "refresh_token"
)

// SQLiteStore keeps the session in a small key/value table in the local
// cache database.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func (s *SQLiteStore) get(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM session WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get session[%s]: %w", key, err)
	}
	return value, nil
}

func set(ctx context.Context, tx dbx.DBTX, key, value string) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO session (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set session[%s]: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) Load(ctx context.Context) (models.Session, error) {
	var sess models.Session
	var err error

	if sess.Account.ID, err = s.get(ctx, keyAccountID); err != nil {
		return models.Session{}, err
	}
	if sess.Account.ID == "" {
		return models.Session{}, nil
	}
	if sess.Account.Email, err = s.get(ctx, keyEmail); err != nil {
		return models.Session{}, err
	}
	verified, err := s.get(ctx, keyEmailVerified)
	if err != nil {
		return models.Session{}, err
	}
	sess.Account.EmailVerified, _ = strconv.ParseBool(verified)
	if sess.AccessToken, err = s.get(ctx, keyAccessToken); err != nil {
		return models.Session{}, err
	}
	if sess.RefreshToken, err = s.get(ctx, keyRefreshToken); err != nil {
		return models.Session{}, err
	}
	return sess, nil
}

// Save writes all session keys in one transaction, so a restored session
// is never half a token pair.
func (s *SQLiteStore) Save(ctx context.Context, sess models.Session) error {
	return dbx.WithTx(ctx, s.db, func(ctx context.Context, tx dbx.DBTX) error {
		if err := set(ctx, tx, keyAccountID, sess.Account.ID); err != nil {
			return err
		}
		if err := set(ctx, tx, keyEmail, sess.Account.Email); err != nil {
			return err
		}
		if err := set(ctx, tx, keyEmailVerified, strconv.FormatBool(sess.Account.EmailVerified)); err != nil {
			return err
		}
		if err := set(ctx, tx, keyAccessToken, sess.AccessToken); err != nil {
			return err
		}
		return set(ctx, tx, keyRefreshToken, sess.RefreshToken)
	})
}

func (s *SQLiteStore) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM session`); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
