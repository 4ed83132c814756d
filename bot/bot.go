package bot

import (
	"drawbot/contest"
	"drawbot/model"
	"drawbot/utils"
	"sync/atomic"

	"github.com/bwmarrin/discordgo"
	"github.com/jmoiron/sqlx"
)

type Bot struct {
	Session            *discordgo.Session
	RegisteredCommands []*discordgo.ApplicationCommand
	CommandHandlers    map[string]func(s *discordgo.Session, i *discordgo.InteractionCreate)
	ComponentHandlers  map[string]func(s *discordgo.Session, i *discordgo.InteractionCreate)
	ModalHandlers      map[string]func(s *discordgo.Session, i *discordgo.InteractionCreate)
	DB                 *sqlx.DB
	config             atomic.Value // *model.Config
	scheduler          *Scheduler
	done               chan struct{}
}

func New(cfg *model.Config, db *sqlx.DB) (*Bot, error) {
	dg, err := discordgo.New("Bot " + cfg.BotToken)
	if err != nil {
		return nil, err
	}
	dg.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentMessageContent |
		discordgo.IntentsGuildMessageReactions |
		discordgo.IntentsGuildMembers
	dg.StateEnabled = false

	b := &Bot{
		Session: dg,
		DB:      db,
		done:    make(chan struct{}),
	}
	b.config.Store(cfg)
	b.scheduler = NewScheduler(b)
	return b, nil
}

func (b *Bot) GetConfig() *model.Config {
	return b.config.Load().(*model.Config)
}

func (b *Bot) GetDB() *sqlx.DB {
	return b.DB
}

func (b *Bot) GetSession() *discordgo.Session {
	return b.Session
}

func (b *Bot) GetScheduler() *Scheduler {
	return b.scheduler
}

// ModRolesFor returns the effective moderator role list for a guild: its
// own configured roles, or the process-wide fallback.
func (b *Bot) ModRolesFor(settings *model.GuildSettings) []string {
	roles := ""
	if settings != nil {
		roles = settings.ModRoles
	}
	if roles == "" {
		roles = b.GetConfig().ModRoles
	}
	return utils.SplitRoleList(roles)
}

// RoundOptionsFor builds a guild's effective round options, falling back to
// the configured default channel names where the guild row is empty.
func (b *Bot) RoundOptionsFor(settings *model.GuildSettings) contest.RoundOptions {
	cfg := b.GetConfig()
	opts := contest.RoundOptions{
		GuildID:            settings.GuildID,
		ForumChannelName:   settings.ForumChannelName,
		ChatChannelName:    settings.ChatChannelName,
		PingUsers:          settings.PingUsers != 0,
		ThemeSavingEnabled: settings.ThemeSavingEnabled != 0,
		CronSchedule:       cfg.CronSchedule,
	}
	if opts.ForumChannelName == "" {
		opts.ForumChannelName = cfg.DefaultForumChannelName
	}
	if opts.ChatChannelName == "" {
		opts.ChatChannelName = cfg.DefaultChatChannelName
	}
	return opts
}

func (b *Bot) Close() {
	close(b.done)
	b.scheduler.Stop()
	b.Session.Close()
}
