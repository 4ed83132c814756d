package defs

import "github.com/bwmarrin/discordgo"

var dmPermission = false

var DailyDeadline = &discordgo.ApplicationCommand{
	Name:         "daily-deadline",
	Description:  "Announce voting deadline and post winner, 2nd and 3rd place (by fire reactions).",
	DMPermission: &dmPermission,
}
