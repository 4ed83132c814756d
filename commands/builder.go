package commands

import (
	"drawbot/commands/defs"

	"github.com/bwmarrin/discordgo"
)

// GenerateCommands returns the slash commands registered in every guild.
func GenerateCommands() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		defs.DailyDeadline,
		defs.DailyBotStatus,
		defs.DailyBotConfig,
		defs.DailyTheme,
	}
}
