package model

// NoEntry is the sentinel id/username used to pad a podium that has fewer
// than three distinct qualifying artists.
const NoEntry = "none"

// PodiumEntry is one of the three ranked results of a contest round.
type PodiumEntry struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Votes    int    `json:"votes"`
}

// IsReal reports whether the entry represents an actual artist rather than
// sentinel padding.
func (p PodiumEntry) IsReal() bool {
	return p.ID != NoEntry
}

// SentinelEntry returns the padding entry used for empty podium places.
func SentinelEntry() PodiumEntry {
	return PodiumEntry{ID: NoEntry, Username: NoEntry, Votes: 0}
}

// GuildSettings is one row of the guilds table: per-guild contest toggles
// and channel bindings.
type GuildSettings struct {
	GuildID            string `db:"guild_id"`
	Name               string `db:"name"`
	Enabled            int    `db:"enabled"`
	ForumChannelName   string `db:"forum_channel_name"`
	ChatChannelName    string `db:"chat_channel_name"`
	PingUsers          int    `db:"ping_users"`
	ThemeSavingEnabled int    `db:"theme_saving_enabled"`
	ModRoles           string `db:"mod_roles"`
	CreatedAt          string `db:"created_at"`
	UpdatedAt          string `db:"updated_at"`
}

// UserTheme is one row of the users table: a member's staged theme for the
// next round, keyed by (user, guild).
type UserTheme struct {
	UserID            string `db:"user_id"`
	GuildID           string `db:"guild_id"`
	Username          string `db:"username"`
	ThemeTitle        string `db:"theme_title"`
	ThemeDescription  string `db:"theme_description"`
	ThemeTimestampUTC string `db:"theme_timestamp_utc"`
	CreatedAt         string `db:"created_at"`
	UpdatedAt         string `db:"updated_at"`
}

// HasTheme reports whether the user currently has a staged theme.
func (u UserTheme) HasTheme() bool {
	return u.ThemeTitle != ""
}
