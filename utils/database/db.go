package database

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

// InitStore opens the settings database and ensures the guilds and users
// tables exist.
func InitStore(dbPath string) (*sqlx.DB, error) {
	if dir := filepath.Dir(dbPath); dir != "" && dir != ":memory:" {
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	db, err := sqlx.Connect("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to settings database: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	guildSchema := `CREATE TABLE IF NOT EXISTS guilds (
	          guild_id TEXT NOT NULL PRIMARY KEY,
	          name TEXT,
	          enabled INTEGER DEFAULT 1,
	          forum_channel_name TEXT,
	          chat_channel_name TEXT,
	          ping_users INTEGER DEFAULT 0,
	          theme_saving_enabled INTEGER DEFAULT 1,
	          mod_roles TEXT,
	          created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	          updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	      );`
	if _, err := db.Exec(guildSchema); err != nil {
		return nil, fmt.Errorf("failed to create guilds table: %w", err)
	}

	userSchema := `CREATE TABLE IF NOT EXISTS users (
	          user_id TEXT NOT NULL,
	          guild_id TEXT NOT NULL,
	          username TEXT,
	          theme_title TEXT,
	          theme_description TEXT,
	          theme_timestamp_utc TEXT,
	          created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	          updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	          UNIQUE(user_id, guild_id),
	          FOREIGN KEY(guild_id) REFERENCES guilds(guild_id)
	      );`
	if _, err := db.Exec(userSchema); err != nil {
		return nil, fmt.Errorf("failed to create users table: %w", err)
	}

	return db, nil
}
