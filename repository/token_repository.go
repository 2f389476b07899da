// file: repository/token_repository.go

package repository

import (
	"database/sql"
	"fmt"
	"time"
	"tokenwatch/common"
	"tokenwatch/logger"
	"tokenwatch/model"

	"github.com/sirupsen/logrus"
)

// ITokenRepository defines the contract for token database operations.
type ITokenRepository interface {
	Add(name, expiresAt string) error
	Remove(name string) error
	List() ([]*model.Token, error)
	FindExpiring(thresholdDays int, now time.Time) ([]*model.Token, error)
	MarkNotified(name string, notifiedAt time.Time) error
}

// TokenRepository implements ITokenRepository.
type TokenRepository struct {
	DB *sql.DB
}

// NewTokenRepository creates a new TokenRepository.
func NewTokenRepository(db *sql.DB) *TokenRepository {
	return &TokenRepository{DB: db}
}

// Add inserts a token record, replacing any existing record with the same
// name. The replace writes no last_notified value, so re-adding a token
// always clears its notification state.
func (r *TokenRepository) Add(name, expiresAt string) error {
	log := logger.Log.WithFields(logrus.Fields{
		"name":       name,
		"expires_at": expiresAt,
	})

	parsed, err := time.Parse(model.DateLayout, expiresAt)
	if err != nil {
		return common.NewValidationError(
			fmt.Sprintf("expiry date %q is not a valid date in YYYY-MM-DD form", expiresAt), err)
	}

	log.Info("Executing query to add a token")

	query := `INSERT OR REPLACE INTO tokens (name, expires_at) VALUES (?, ?)`
	if _, err := r.DB.Exec(query, name, parsed.Format(model.DateLayout)); err != nil {
		log.WithError(err).Error("Failed to execute add token query")
		return common.NewStorageError("failed to add token", err)
	}
	return nil
}

// Remove deletes a token by name. Removing a name that is not tracked is
// not an error.
func (r *TokenRepository) Remove(name string) error {
	log := logger.Log.WithField("name", name)
	log.Info("Executing query to remove a token")

	query := `DELETE FROM tokens WHERE name = ?`
	if _, err := r.DB.Exec(query, name); err != nil {
		log.WithError(err).Error("Failed to execute remove token query")
		return common.NewStorageError("failed to remove token", err)
	}
	return nil
}

// List retrieves every tracked token.
func (r *TokenRepository) List() ([]*model.Token, error) {
	logger.Log.Info("Executing query to list all tokens")

	query := `SELECT id, name, expires_at, last_notified FROM tokens`
	rows, err := r.DB.Query(query)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to execute list tokens query")
		return nil, common.NewStorageError("failed to list tokens", err)
	}
	defer rows.Close()

	var tokens []*model.Token
	for rows.Next() {
		token, err := scanToken(rows)
		if err != nil {
			logger.Log.WithError(err).Error("Failed to scan token row")
			return nil, common.NewStorageError("failed to scan token row", err)
		}
		tokens = append(tokens, token)
	}
	if err := rows.Err(); err != nil {
		logger.Log.WithError(err).Error("Failed while reading token rows")
		return nil, common.NewStorageError("failed while reading token rows", err)
	}
	return tokens, nil
}

// FindExpiring retrieves the tokens whose expiry date falls on or before
// now plus thresholdDays. The comparison uses calendar dates only, so a
// token expiring today is always included.
func (r *TokenRepository) FindExpiring(thresholdDays int, now time.Time) ([]*model.Token, error) {
	log := logger.Log.WithFields(logrus.Fields{
		"threshold_days": thresholdDays,
		"date":           now.Format(model.DateLayout),
	})
	log.Info("Executing query to find expiring tokens")

	query := `SELECT id, name, expires_at, last_notified FROM tokens WHERE date(expires_at) <= date(?, '+' || ? || ' days')`
	rows, err := r.DB.Query(query, now.Format(model.DateLayout), thresholdDays)
	if err != nil {
		log.WithError(err).Error("Failed to execute find expiring tokens query")
		return nil, common.NewStorageError("failed to find expiring tokens", err)
	}
	defer rows.Close()

	var tokens []*model.Token
	for rows.Next() {
		token, err := scanToken(rows)
		if err != nil {
			log.WithError(err).Error("Failed to scan expiring token row")
			return nil, common.NewStorageError("failed to scan token row", err)
		}
		tokens = append(tokens, token)
	}
	if err := rows.Err(); err != nil {
		log.WithError(err).Error("Failed while reading expiring token rows")
		return nil, common.NewStorageError("failed while reading token rows", err)
	}
	return tokens, nil
}

// MarkNotified stamps the token's last_notified column. Updating a name
// that was removed in the meantime simply affects no rows.
func (r *TokenRepository) MarkNotified(name string, notifiedAt time.Time) error {
	log := logger.Log.WithFields(logrus.Fields{
		"name":        name,
		"notified_at": notifiedAt.Format(model.TimestampLayout),
	})
	log.Info("Executing query to mark a token as notified")

	query := `UPDATE tokens SET last_notified = ? WHERE name = ?`
	if _, err := r.DB.Exec(query, notifiedAt.Format(model.TimestampLayout), name); err != nil {
		log.WithError(err).Error("Failed to execute mark notified query")
		return common.NewStorageError("failed to mark token as notified", err)
	}
	return nil
}

// scanToken reads one row of the tokens table into a model. Dates are
// stored as text and parsed on the way out.
func scanToken(rows *sql.Rows) (*model.Token, error) {
	var (
		token        model.Token
		expiresAt    string
		lastNotified sql.NullString
	)
	if err := rows.Scan(&token.ID, &token.Name, &expiresAt, &lastNotified); err != nil {
		return nil, err
	}

	parsed, err := time.Parse(model.DateLayout, expiresAt)
	if err != nil {
		return nil, fmt.Errorf("stored expiry date %q is invalid: %w", expiresAt, err)
	}
	token.ExpiresAt = parsed

	if lastNotified.Valid {
		notifiedAt, err := time.Parse(model.TimestampLayout, lastNotified.String)
		if err != nil {
			return nil, fmt.Errorf("stored notification timestamp %q is invalid: %w", lastNotified.String, err)
		}
		token.LastNotified = &notifiedAt
	}
	return &token, nil
}
