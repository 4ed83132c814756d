package defs

import "github.com/bwmarrin/discordgo"

var DailyBotStatus = &discordgo.ApplicationCommand{
	Name:         "daily-bot-status",
	Description:  "Show the current daily-bot status and toggle it (interactive).",
	DMPermission: &dmPermission,
}
