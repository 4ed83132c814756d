package defs

import "github.com/bwmarrin/discordgo"

var DailyTheme = &discordgo.ApplicationCommand{
	Name:         "daily-theme",
	Description:  "Save a drawing theme that will automatically be posted if you win.",
	DMPermission: &dmPermission,
}
