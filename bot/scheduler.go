package bot

import (
	"context"
	"drawbot/contest"
	"drawbot/model"
	"drawbot/utils/database"
	"fmt"
	"log"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/jmoiron/sqlx"
	"github.com/robfig/cron/v3"
)

// BotProvider defines the methods the scheduler needs from the Bot.
type BotProvider interface {
	GetConfig() *model.Config
	GetDB() *sqlx.DB
	GetSession() *discordgo.Session
	ModRolesFor(settings *model.GuildSettings) []string
	RoundOptionsFor(settings *model.GuildSettings) contest.RoundOptions
}

// Scheduler runs the daily deadline sweep on the configured cron schedule,
// evaluated in UTC.
type Scheduler struct {
	bot  BotProvider
	cron *cron.Cron
}

// NewScheduler creates a new scheduler.
func NewScheduler(bot BotProvider) *Scheduler {
	return &Scheduler{bot: bot}
}

// Start begins the scheduled deadline sweep.
func (s *Scheduler) Start() error {
	expr := s.bot.GetConfig().CronSchedule
	if _, err := cron.ParseStandard(expr); err != nil {
		return fmt.Errorf("invalid CRON_SCHEDULE %q: %w", expr, err)
	}

	s.cron = cron.New(cron.WithLocation(time.UTC))
	if _, err := s.cron.AddFunc(expr, s.runDeadlineSweep); err != nil {
		return fmt.Errorf("failed to schedule deadline sweep: %w", err)
	}
	s.cron.Start()
	log.Printf("Scheduled daily deadline sweep with cron expression %q (UTC)", expr)
	return nil
}

// Stop terminates the scheduler, waiting for a running sweep to finish.
func (s *Scheduler) Stop() {
	if s.cron == nil {
		return
	}
	log.Println("Stopping scheduler...")
	<-s.cron.Stop().Done()
	log.Println("Scheduler stopped.")
}

// runDeadlineSweep processes every known guild sequentially. One guild's
// failure never prevents the rest from being processed.
func (s *Scheduler) runDeadlineSweep() {
	log.Println("Running scheduled daily deadline sweep")

	session := s.bot.GetSession()
	guilds, err := session.UserGuilds(100, "", "", false)
	if err != nil {
		log.Printf("Could not fetch guilds for deadline sweep: %v", err)
		return
	}

	for _, g := range guilds {
		s.runGuildDeadline(g.ID, g.Name)
	}
}

func (s *Scheduler) runGuildDeadline(guildID, guildName string) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Recovered from panic while processing guild %s: %v", guildID, r)
		}
	}()

	cfg := s.bot.GetConfig()
	settings, err := database.GetOrCreateGuild(s.bot.GetDB(), guildID, guildName)
	if err != nil {
		log.Printf("Error loading settings for guild %s, using defaults: %v", guildID, err)
		settings = &model.GuildSettings{GuildID: guildID, Name: guildName, Enabled: 1, ThemeSavingEnabled: 1}
	}
	if settings.Enabled == 0 {
		log.Printf("Skipping guild %s: daily drawing bot is disabled", guildID)
		return
	}

	session := s.bot.GetSession()
	client := contest.NewDiscordClient(session, s.bot.ModRolesFor(settings))
	opts := s.bot.RoundOptionsFor(settings)

	timeout := time.Duration(cfg.RoundTimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 5 * time.Minute
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	result, err := contest.RunDeadline(ctx, client, client, s.bot.GetDB(), opts)
	if err != nil {
		log.Printf("Error running deadline for guild %s: %v", guildID, err)
	}

	switch result {
	case contest.RunPosted:
		log.Printf("Posted daily results in guild %s to text channel %q", guildID, opts.ChatChannelName)
	case contest.RunNoForum:
		log.Printf("Forum channel %q not found in guild %s", opts.ForumChannelName, guildID)
	case contest.RunNoRound:
		log.Printf("No active round found for guild %s", guildID)
	case contest.RunNoEntries:
		log.Printf("No results to announce for guild %s", guildID)
	case contest.RunNoChatChannel:
		log.Printf("Chat channel %q not found in guild %s", opts.ChatChannelName, guildID)
	}
}
