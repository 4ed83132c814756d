package deadline

import (
	"context"
	"drawbot/bot"
	"drawbot/contest"
	"drawbot/model"
	"drawbot/utils"
	"fmt"
	"log"
	"time"

	"github.com/bwmarrin/discordgo"
)

// Handle runs the deadline pipeline for one guild on demand. The caller has
// already verified moderator privilege.
func Handle(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot, settings *model.GuildSettings) {
	if settings.Enabled == 0 {
		utils.SendSimpleResponse(s, i, "Daily drawing bot is currently OFF.")
		return
	}

	// Tallying fetches reaction users per submission; defer the reply.
	if err := utils.DeferResponse(s, i, true); err != nil {
		log.Printf("Error deferring deadline response: %v", err)
		return
	}

	opts := b.RoundOptionsFor(settings)
	client := contest.NewDiscordClient(s, b.ModRolesFor(settings))

	cfg := b.GetConfig()
	timeout := time.Duration(cfg.RoundTimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 5 * time.Minute
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	result, err := contest.RunDeadline(ctx, client, client, b.GetDB(), opts)
	if err != nil {
		log.Printf("Error computing deadline results for guild %s: %v", i.GuildID, err)
		utils.SendFollowUp(s, i.Interaction, "An error occurred while computing the deadline results.")
		return
	}

	switch result {
	case contest.RunPosted:
		utils.SendFollowUp(s, i.Interaction, "Deadline results processed.")
	case contest.RunNoForum:
		utils.SendFollowUp(s, i.Interaction, fmt.Sprintf("Forum channel '%s' not found.", opts.ForumChannelName))
	case contest.RunNoRound:
		utils.SendFollowUp(s, i.Interaction, "No active drawing thread found.")
	case contest.RunNoEntries:
		utils.SendFollowUp(s, i.Interaction, "No results to report for the most recent post.")
	case contest.RunNoChatChannel:
		utils.SendFollowUp(s, i.Interaction, fmt.Sprintf("Chat channel '%s' not found.", opts.ChatChannelName))
	}
}
