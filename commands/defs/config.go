package defs

import "github.com/bwmarrin/discordgo"

var DailyBotConfig = &discordgo.ApplicationCommand{
	Name:         "daily-bot-config",
	Description:  "Show or change the daily drawing bot settings for this server.",
	DMPermission: &dmPermission,
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "forum_channel",
			Description: "Name of the forum channel that hosts drawing threads.",
			Required:    false,
		},
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "chat_channel",
			Description: "Name of the text channel that receives the daily results.",
			Required:    false,
		},
		{
			Type:        discordgo.ApplicationCommandOptionBoolean,
			Name:        "ping_users",
			Description: "Whether to @-mention the winner in the results message.",
			Required:    false,
		},
		{
			Type:        discordgo.ApplicationCommandOptionBoolean,
			Name:        "theme_saving",
			Description: "Whether members can stage a theme for the next round.",
			Required:    false,
		},
	},
}
