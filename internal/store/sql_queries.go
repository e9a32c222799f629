package store

import (
	"encoding/json"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-pass-god/models"
)

// psql builds PostgreSQL statements with $n placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const (
	hasCiphertext = `SELECT EXISTS (SELECT 1 FROM passwords)
		OR EXISTS (SELECT 1 FROM social_accounts)
		OR EXISTS (SELECT 1 FROM secure_notes)
		OR EXISTS (SELECT 1 FROM private_items);`

	createUser = `INSERT INTO users (email, password_hash, full_name)
		VALUES ($1, $2, $3)
		RETURNING user_id, email, full_name, password_hash, is_active, is_verified, is_admin, created_at, updated_at;`

	findUserByEmail = `SELECT user_id, email, full_name, password_hash, is_active, is_verified, is_admin, created_at, updated_at
		FROM users
		WHERE email = $1;`

	findUserByID = `SELECT user_id, email, full_name, password_hash, is_active, is_verified, is_admin, created_at, updated_at
		FROM users
		WHERE user_id = $1;`

	deleteUser = `DELETE FROM users WHERE user_id = $1;`

	createSharedSecret = `INSERT INTO shared_secrets (token_hash, encrypted_data, expires_at, created_by)
		VALUES ($1, $2, $3, $4)
		RETURNING shared_secret_id, expires_at, used, used_at, created_by, created_at;`

	// consumeSharedSecret flips used exactly once. Concurrent callers race on
	// the row lock and only the first sees used = FALSE.
	consumeSharedSecret = `UPDATE shared_secrets
		SET used = TRUE, used_at = $2
		WHERE token_hash = $1 AND used = FALSE AND expires_at > $2
		RETURNING encrypted_data;`

	deleteSharedSecret = `DELETE FROM shared_secrets WHERE shared_secret_id = $1 AND created_by = $2;`

	deleteExpiredSharedSecrets = `DELETE FROM shared_secrets
		WHERE (used = FALSE AND expires_at <= $1)
		OR (used = TRUE AND used_at <= $2);`

	findPrivateStorage = `SELECT storage_id, user_id, pattern_hash, pin_hash, is_locked, last_accessed
		FROM private_storages
		WHERE user_id = $1;`

	createPrivateStorage = `INSERT INTO private_storages (user_id, pattern_hash, pin_hash, is_locked, last_accessed)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING storage_id, user_id, pattern_hash, pin_hash, is_locked, last_accessed;`

	setPrivateStorageLocked = `UPDATE private_storages
		SET is_locked = $2, last_accessed = $3
		WHERE user_id = $1;`

	createPrivateItem = `INSERT INTO private_items (storage_id, item_type, encrypted_data, metadata)
		VALUES ($1, $2, $3, $4)
		RETURNING item_id, storage_id, item_type, encrypted_data, metadata, created_at, updated_at;`

	deletePrivateItem = `DELETE FROM private_items WHERE item_id = $1 AND storage_id = $2;`

	createBreachAlert = `INSERT INTO breach_alerts (user_id, platform, description, severity, breach_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING alert_id, user_id, platform, description, severity, breach_date, is_resolved, created_at;`

	resolveBreachAlert = `UPDATE breach_alerts
		SET is_resolved = TRUE
		WHERE alert_id = $1 AND user_id = $2
		RETURNING alert_id, user_id, platform, description, severity, breach_date, is_resolved, created_at;`

	createNotification = `INSERT INTO notifications (user_id, message, type, entity_id)
		VALUES ($1, $2, $3, $4)
		RETURNING notification_id, user_id, message, type, entity_id, is_read, created_at;`

	markNotificationRead = `UPDATE notifications
		SET is_read = TRUE
		WHERE notification_id = $1 AND user_id = $2;`
)

var (
	userColumns          = []string{"user_id", "email", "full_name", "password_hash", "is_active", "is_verified", "is_admin", "created_at", "updated_at"}
	passwordColumns      = []string{"password_id", "user_id", "title", "username", "encrypted_password", "website_url", "notes", "created_at", "updated_at"}
	socialAccountColumns = []string{"social_account_id", "user_id", "platform", "username", "encrypted_password", "additional_data", "created_at", "updated_at"}
	noteColumns          = []string{"note_id", "user_id", "title", "encrypted_content", "created_at", "updated_at"}
	sharedSecretColumns  = []string{"shared_secret_id", "expires_at", "used", "used_at", "created_by", "created_at"}
	breachAlertColumns   = []string{"alert_id", "user_id", "platform", "description", "severity", "breach_date", "is_resolved", "created_at"}
	notificationColumns  = []string{"notification_id", "user_id", "message", "type", "entity_id", "is_read", "created_at"}
	privateItemColumns   = []string{"item_id", "storage_id", "item_type", "encrypted_data", "metadata", "created_at", "updated_at"}
)

// pageOf applies ordering and pagination shared by every list query. The
// primary key breaks created_at ties so OFFSET pages neither overlap nor
// skip rows.
func pageOf(b sq.SelectBuilder, page models.Page, key string) sq.SelectBuilder {
	page = page.Normalize()
	return b.OrderBy("created_at DESC", key+" DESC").Offset(page.Skip).Limit(page.Limit)
}

// returning renders a RETURNING suffix for cols.
func returning(cols []string) string {
	return "RETURNING " + strings.Join(cols, ", ")
}

// encodeJSONB renders a map for a JSONB column; nil maps become NULL.
func encodeJSONB(v map[string]any) (any, error) {
	if v == nil {
		return nil, nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodingJSON, err)
	}
	return string(b), nil
}

// decodeJSONB parses a scanned JSONB column; NULL yields a nil map.
func decodeJSONB(raw []byte) (map[string]any, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var v map[string]any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodingJSON, err)
	}
	return v, nil
}
