package model

// Config stores the application configuration loaded at startup.
// Per-guild contest settings live in the database, not here.
type Config struct {
	BotToken     string `mapstructure:"BOT_TOKEN"`
	LogChannelID string `mapstructure:"LOG_CHANNEL_ID"`

	// CronSchedule is a five-field cron expression evaluated in UTC.
	CronSchedule string `mapstructure:"CRON_SCHEDULE"`

	// Defaults applied when a guild row has no channel names configured.
	DefaultForumChannelName string `mapstructure:"FORUM_CHANNEL_NAME"`
	DefaultChatChannelName  string `mapstructure:"CHAT_CHANNEL_NAME"`

	// ModRoles is a comma-separated fallback list of moderator role IDs or
	// role names, used when a guild has no mod_roles of its own.
	ModRoles string `mapstructure:"MOD_ROLES"`

	DBPath string `mapstructure:"DB_PATH"`

	// RoundTimeoutSeconds bounds one guild's full deadline pipeline.
	RoundTimeoutSeconds int `mapstructure:"ROUND_TIMEOUT_SECONDS"`

	DisableCommandUnregister bool `mapstructure:"DISABLE_COMMAND_UNREGISTER"`
}
