package database

import (
	"database/sql"
	"drawbot/model"
	"fmt"
	"sort"
	"strings"

	"github.com/jmoiron/sqlx"
)

const userColumns = `user_id, guild_id,
	COALESCE(username, '') AS username,
	COALESCE(theme_title, '') AS theme_title,
	COALESCE(theme_description, '') AS theme_description,
	COALESCE(theme_timestamp_utc, '') AS theme_timestamp_utc,
	COALESCE(created_at, '') AS created_at,
	COALESCE(updated_at, '') AS updated_at`

// GetUser returns a user's row for a guild, or nil when none exists.
func GetUser(db *sqlx.DB, userID, guildID string) (*model.UserTheme, error) {
	var u model.UserTheme
	query := "SELECT " + userColumns + " FROM users WHERE user_id = ? AND guild_id = ?"
	if err := db.Get(&u, query, userID, guildID); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user %s in guild %s: %w", userID, guildID, err)
	}
	return &u, nil
}

// GetOrCreateUser returns a user's row, inserting one first if none exists.
func GetOrCreateUser(db *sqlx.DB, userID, guildID, username string) (*model.UserTheme, error) {
	existing, err := GetUser(db, userID, guildID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	_, err = db.Exec("INSERT INTO users (user_id, guild_id, username) VALUES (?, ?, ?)",
		userID, guildID, username)
	if err != nil {
		return nil, fmt.Errorf("failed to insert user %s in guild %s: %w", userID, guildID, err)
	}
	return GetUser(db, userID, guildID)
}

// UpdateUser applies a partial update to a user row. A nil value clears the
// column to NULL. Returns true when a row was changed.
func UpdateUser(db *sqlx.DB, userID, guildID string, updates map[string]interface{}) (bool, error) {
	if len(updates) == 0 {
		return false, nil
	}

	keys := make([]string, 0, len(updates))
	for k := range updates {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	sets := make([]string, 0, len(keys))
	args := make([]interface{}, 0, len(keys)+2)
	for _, k := range keys {
		sets = append(sets, k+" = ?")
		args = append(args, updates[k])
	}
	args = append(args, userID, guildID)

	query := fmt.Sprintf(
		"UPDATE users SET %s, updated_at = CURRENT_TIMESTAMP WHERE user_id = ? AND guild_id = ?",
		strings.Join(sets, ", "))
	result, err := db.Exec(query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to update user %s in guild %s: %w", userID, guildID, err)
	}
	changed, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return changed > 0, nil
}

// ClearTheme resets a user's staged theme fields in a single write. The
// clear is not retried on failure and not rolled back when a later step
// fails.
func ClearTheme(db *sqlx.DB, userID, guildID string) error {
	_, err := UpdateUser(db, userID, guildID, map[string]interface{}{
		"theme_title":         nil,
		"theme_description":   nil,
		"theme_timestamp_utc": nil,
	})
	return err
}

// GetUsersByGuild returns every user row for a guild.
func GetUsersByGuild(db *sqlx.DB, guildID string) ([]model.UserTheme, error) {
	var users []model.UserTheme
	query := "SELECT " + userColumns + " FROM users WHERE guild_id = ?"
	if err := db.Select(&users, query, guildID); err != nil {
		return nil, fmt.Errorf("failed to get users for guild %s: %w", guildID, err)
	}
	return users, nil
}
