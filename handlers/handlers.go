package handlers

import (
	"drawbot/bot"
	"drawbot/contest"
	"drawbot/handlers/deadline"
	"drawbot/handlers/setup"
	"drawbot/handlers/status"
	"drawbot/handlers/theme"
	"drawbot/model"
	"drawbot/utils"
	"drawbot/utils/database"
	"log"
	"time"

	"github.com/bwmarrin/discordgo"
)

func Register(b *bot.Bot) {
	b.CommandHandlers = commandHandlers(b)
	b.ComponentHandlers = componentHandlers(b)
	b.ModalHandlers = modalHandlers(b)
	addHandlers(b)
}

// requireModSettings loads the guild's settings row and verifies the
// invoking member holds moderator privilege. On failure it answers the
// interaction and returns nil.
func requireModSettings(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) *model.GuildSettings {
	if i.GuildID == "" || i.Member == nil {
		utils.SendErrorResponse(s, i, "Guild not found.")
		return nil
	}

	guildName := ""
	if guild, err := s.Guild(i.GuildID); err == nil {
		guildName = guild.Name
	}
	settings, err := database.GetOrCreateGuild(b.GetDB(), i.GuildID, guildName)
	if err != nil {
		log.Printf("Error loading settings for guild %s, using defaults: %v", i.GuildID, err)
		settings = &model.GuildSettings{GuildID: i.GuildID, Name: guildName, Enabled: 1, ThemeSavingEnabled: 1}
	}

	isMod, err := utils.HasModPermission(s, i.GuildID, i.Member.User.ID, b.ModRolesFor(settings))
	if err != nil {
		log.Printf("Error checking permissions for user %s in guild %s: %v", i.Member.User.ID, i.GuildID, err)
		utils.SendErrorResponse(s, i, "Unable to verify your permissions.")
		return nil
	}
	if !isMod {
		utils.SendErrorResponse(s, i, "You must be admin or mod.")
		return nil
	}
	return settings
}

func commandHandlers(b *bot.Bot) map[string]func(s *discordgo.Session, i *discordgo.InteractionCreate) {
	return map[string]func(s *discordgo.Session, i *discordgo.InteractionCreate){
		"daily-deadline": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			settings := requireModSettings(s, i, b)
			if settings == nil {
				return
			}
			deadline.Handle(s, i, b, settings)
		},
		"daily-bot-status": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			settings := requireModSettings(s, i, b)
			if settings == nil {
				return
			}
			status.Handle(s, i, b, settings)
		},
		"daily-bot-config": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			settings := requireModSettings(s, i, b)
			if settings == nil {
				return
			}
			setup.Handle(s, i, b, settings)
		},
		"daily-theme": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			theme.Handle(s, i, b)
		},
	}
}

func componentHandlers(b *bot.Bot) map[string]func(s *discordgo.Session, i *discordgo.InteractionCreate) {
	return map[string]func(s *discordgo.Session, i *discordgo.InteractionCreate){
		"daily-bot-toggle": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			settings := requireModSettings(s, i, b)
			if settings == nil {
				return
			}
			status.HandleToggle(s, i, b, settings)
		},
		"edit-mod-roles": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			settings := requireModSettings(s, i, b)
			if settings == nil {
				return
			}
			setup.HandleEditModRolesButton(s, i, settings)
		},
		"daily-theme-update": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			theme.HandleUpdateButton(s, i, b)
		},
		"daily-theme-clear": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			theme.HandleClearButton(s, i, b)
		},
	}
}

func modalHandlers(b *bot.Bot) map[string]func(s *discordgo.Session, i *discordgo.InteractionCreate) {
	return map[string]func(s *discordgo.Session, i *discordgo.InteractionCreate){
		"daily-theme-modal": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			theme.HandleModalSubmit(s, i, b)
		},
		"edit-mod-roles-modal": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			settings := requireModSettings(s, i, b)
			if settings == nil {
				return
			}
			setup.HandleModRolesModal(s, i, b, settings)
		},
	}
}

func addHandlers(b *bot.Bot) {
	b.Session.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		log.Printf("Logged in as: %v#%v", s.State.User.Username, s.State.User.Discriminator)
	})
	b.Session.AddHandler(func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		switch i.Type {
		case discordgo.InteractionApplicationCommand:
			if h, ok := b.CommandHandlers[i.ApplicationCommandData().Name]; ok {
				h(s, i)
			}
		case discordgo.InteractionMessageComponent:
			if h, ok := b.ComponentHandlers[i.MessageComponentData().CustomID]; ok {
				h(s, i)
			}
		case discordgo.InteractionModalSubmit:
			if h, ok := b.ModalHandlers[i.ModalSubmitData().CustomID]; ok {
				h(s, i)
			}
		}
	})
	b.Session.AddHandler(func(s *discordgo.Session, t *discordgo.ThreadCreate) {
		handleThreadCreate(s, t, b)
	})
}

// handleThreadCreate posts the contest rules into every new round thread
// created under the guild's configured forum channel.
func handleThreadCreate(s *discordgo.Session, t *discordgo.ThreadCreate, b *bot.Bot) {
	if t.GuildID == "" {
		return
	}
	// Rollover posts already carry the rules in their body.
	if s.State.User != nil && t.OwnerID == s.State.User.ID {
		return
	}

	cfg := b.GetConfig()
	forumName := cfg.DefaultForumChannelName
	enabled := true
	settings, err := database.GetGuild(b.GetDB(), t.GuildID)
	if err != nil {
		log.Printf("Error loading settings for guild %s: %v", t.GuildID, err)
	} else if settings != nil {
		enabled = settings.Enabled != 0
		if settings.ForumChannelName != "" {
			forumName = settings.ForumChannelName
		}
	}
	if !enabled {
		return
	}

	parent, err := s.Channel(t.ParentID)
	if err != nil || parent == nil || parent.Name != forumName {
		return
	}

	rules := contest.BuildRulesMessage(cfg.CronSchedule, time.Now())
	if _, err := s.ChannelMessageSend(t.ID, rules); err != nil {
		log.Printf("Failed to post rules message in new thread %s: %v", t.ID, err)
		return
	}
	log.Printf("Posted rules in new thread under %q: %s", forumName, t.ID)
}
