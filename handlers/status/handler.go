package status

import (
	"drawbot/bot"
	"drawbot/contest"
	"drawbot/model"
	"drawbot/utils"
	"drawbot/utils/database"
	"fmt"
	"log"
	"runtime"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
)

// Handle shows the per-guild bot status with the deadline schedule, a
// system info block and a toggle button.
func Handle(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot, settings *model.GuildSettings) {
	embed, row := buildStatusMessage(s, b, settings)
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{embed},
			Components: []discordgo.MessageComponent{row},
			Flags:      discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		log.Printf("Error showing bot status: %v", err)
	}
}

// HandleToggle flips the guild's enabled flag and refreshes the status
// message in place.
func HandleToggle(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot, settings *model.GuildSettings) {
	newEnabled := 1
	if settings.Enabled != 0 {
		newEnabled = 0
	}
	if _, err := database.UpdateGuild(b.GetDB(), settings.GuildID, map[string]interface{}{"enabled": newEnabled}); err != nil {
		log.Printf("Error toggling bot status for guild %s: %v", settings.GuildID, err)
		utils.SendErrorResponse(s, i, "Failed to toggle bot status.")
		return
	}
	settings.Enabled = newEnabled
	log.Printf("Bot status toggled to %s for guild %s by %s", statusLabel(settings), settings.GuildID, i.Member.User.ID)

	embed, row := buildStatusMessage(s, b, settings)
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{embed},
			Components: []discordgo.MessageComponent{row},
		},
	})
	if err != nil {
		log.Printf("Error updating status message: %v", err)
	}
}

func statusLabel(settings *model.GuildSettings) string {
	if settings.Enabled != 0 {
		return "ON"
	}
	return "OFF"
}

func buildStatusMessage(s *discordgo.Session, b *bot.Bot, settings *model.GuildSettings) (*discordgo.MessageEmbed, discordgo.MessageComponent) {
	cfg := b.GetConfig()

	color := 0x00ff00
	toggleLabel := "Turn OFF"
	if settings.Enabled == 0 {
		color = 0xff0000
		toggleLabel = "Turn ON"
	}

	embed := &discordgo.MessageEmbed{
		Title:       "Daily Bot Status",
		Description: fmt.Sprintf("The daily drawing bot is currently **%s**.", statusLabel(settings)),
		Color:       color,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Schedule", Value: scheduleLine(cfg.CronSchedule)},
			{Name: "System", Value: systemLine(s)},
		},
	}

	row := discordgo.ActionsRow{
		Components: []discordgo.MessageComponent{
			discordgo.Button{
				Label:    toggleLabel,
				Style:    discordgo.PrimaryButton,
				CustomID: "daily-bot-toggle",
			},
		},
	}
	return embed, row
}

func scheduleLine(cronExpr string) string {
	next, err := contest.NextDeadline(cronExpr, time.Now())
	if err != nil {
		return fmt.Sprintf("Configured cron expression '%s' is invalid.", cronExpr)
	}

	remaining := time.Until(next)
	if remaining < 0 {
		remaining = 0
	}
	hours := int(remaining.Hours())
	minutes := int(remaining.Minutes()) % 60

	return fmt.Sprintf("Cron: %s\nDeadline (UTC): %s\nDeadline (local time): <t:%d>\nTime until deadline: %dh %dm",
		cronExpr,
		next.UTC().Format("1/2/2006, 15:04:05"),
		next.Unix(),
		hours, minutes)
}

func systemLine(s *discordgo.Session) string {
	cpuCount, _ := cpu.Counts(true)
	vm, _ := mem.VirtualMemory()
	hostInfo, _ := host.Info()

	platform := "unknown"
	if hostInfo != nil {
		platform = fmt.Sprintf("%s %s", hostInfo.Platform, hostInfo.PlatformVersion)
	}
	memUsage := "unknown"
	if vm != nil {
		memUsage = fmt.Sprintf("%.1f%% (%d MB / %d MB)", vm.UsedPercent, vm.Used/1024/1024, vm.Total/1024/1024)
	}

	return fmt.Sprintf("OS: %s\nGo: %s\nCPUs: %d\nMemory: %s\nWebSocket latency: %s\nGoroutines: %d",
		platform, runtime.Version(), cpuCount, memUsage, s.HeartbeatLatency(), runtime.NumGoroutine())
}
