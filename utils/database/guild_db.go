package database

import (
	"database/sql"
	"drawbot/model"
	"fmt"
	"sort"
	"strings"

	"github.com/jmoiron/sqlx"
)

// Columns NULL-able by partial updates are coalesced so rows always scan
// into plain strings.
const guildColumns = `guild_id,
	COALESCE(name, '') AS name,
	COALESCE(enabled, 1) AS enabled,
	COALESCE(forum_channel_name, '') AS forum_channel_name,
	COALESCE(chat_channel_name, '') AS chat_channel_name,
	COALESCE(ping_users, 0) AS ping_users,
	COALESCE(theme_saving_enabled, 1) AS theme_saving_enabled,
	COALESCE(mod_roles, '') AS mod_roles,
	COALESCE(created_at, '') AS created_at,
	COALESCE(updated_at, '') AS updated_at`

// GetGuild returns the settings row for a guild, or nil when none exists.
func GetGuild(db *sqlx.DB, guildID string) (*model.GuildSettings, error) {
	var g model.GuildSettings
	query := "SELECT " + guildColumns + " FROM guilds WHERE guild_id = ?"
	if err := db.Get(&g, query, guildID); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get guild %s: %w", guildID, err)
	}
	return &g, nil
}

// GetOrCreateGuild returns the settings row for a guild, inserting a default
// row first if none exists.
func GetOrCreateGuild(db *sqlx.DB, guildID, name string) (*model.GuildSettings, error) {
	existing, err := GetGuild(db, guildID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	if name == "" {
		name = "Unknown Guild"
	}
	_, err = db.Exec("INSERT INTO guilds (guild_id, name) VALUES (?, ?)", guildID, name)
	if err != nil {
		return nil, fmt.Errorf("failed to insert guild %s: %w", guildID, err)
	}
	return GetGuild(db, guildID)
}

// UpdateGuild applies a partial update to a guild row. A nil value clears
// the column to NULL. Returns true when a row was changed.
func UpdateGuild(db *sqlx.DB, guildID string, updates map[string]interface{}) (bool, error) {
	if len(updates) == 0 {
		return false, nil
	}

	keys := make([]string, 0, len(updates))
	for k := range updates {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	sets := make([]string, 0, len(keys))
	args := make([]interface{}, 0, len(keys)+1)
	for _, k := range keys {
		sets = append(sets, k+" = ?")
		args = append(args, updates[k])
	}
	args = append(args, guildID)

	query := fmt.Sprintf(
		"UPDATE guilds SET %s, updated_at = CURRENT_TIMESTAMP WHERE guild_id = ?",
		strings.Join(sets, ", "))
	result, err := db.Exec(query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to update guild %s: %w", guildID, err)
	}
	changed, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return changed > 0, nil
}

// GetAllGuilds returns every guild settings row.
func GetAllGuilds(db *sqlx.DB) ([]model.GuildSettings, error) {
	var guilds []model.GuildSettings
	query := "SELECT " + guildColumns + " FROM guilds"
	if err := db.Select(&guilds, query); err != nil {
		return nil, fmt.Errorf("failed to get all guilds: %w", err)
	}
	return guilds, nil
}

// DeleteGuild removes a guild row. Returns true when a row was deleted.
func DeleteGuild(db *sqlx.DB, guildID string) (bool, error) {
	result, err := db.Exec("DELETE FROM guilds WHERE guild_id = ?", guildID)
	if err != nil {
		return false, fmt.Errorf("failed to delete guild %s: %w", guildID, err)
	}
	changed, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return changed > 0, nil
}
