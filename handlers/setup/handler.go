package setup

import (
	"drawbot/bot"
	"drawbot/model"
	"drawbot/utils"
	"drawbot/utils/database"
	"fmt"
	"log"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// Handle applies any provided /daily-bot-config options, or shows the
// current configuration when called with none.
func Handle(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot, settings *model.GuildSettings) {
	options := i.ApplicationCommandData().Options
	if len(options) == 0 {
		showConfig(s, i, b, settings)
		return
	}

	updates := map[string]interface{}{}
	for _, opt := range options {
		switch opt.Name {
		case "forum_channel":
			updates["forum_channel_name"] = strings.TrimSpace(opt.StringValue())
		case "chat_channel":
			updates["chat_channel_name"] = strings.TrimSpace(opt.StringValue())
		case "ping_users":
			updates["ping_users"] = boolToInt(opt.BoolValue())
		case "theme_saving":
			updates["theme_saving_enabled"] = boolToInt(opt.BoolValue())
		}
	}

	if _, err := database.UpdateGuild(b.GetDB(), settings.GuildID, updates); err != nil {
		log.Printf("Error updating settings for guild %s: %v", settings.GuildID, err)
		utils.SendErrorResponse(s, i, "Failed to update the configuration.")
		return
	}
	log.Printf("Updated settings for guild %s: %v", settings.GuildID, updates)
	utils.SendSimpleResponse(s, i, "Configuration updated.")
}

// HandleEditModRolesButton opens the mod role editor modal prefilled
// with the guild's current role list.
func HandleEditModRolesButton(s *discordgo.Session, i *discordgo.InteractionCreate, settings *model.GuildSettings) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: &discordgo.InteractionResponseData{
			CustomID: "edit-mod-roles-modal",
			Title:    "Edit Mod Roles",
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{
					Components: []discordgo.MessageComponent{
						discordgo.TextInput{
							CustomID:    "mod-roles-input",
							Label:       "Role IDs or names, comma separated",
							Style:       discordgo.TextInputParagraph,
							Required:    false,
							MaxLength:   1000,
							Value:       settings.ModRoles,
							Placeholder: "e.g. Moderators, 123456789012345678",
						},
					},
				},
			},
		},
	})
	if err != nil {
		log.Printf("Error opening mod roles modal: %v", err)
	}
}

// HandleModRolesModal stores the submitted mod role list. An empty
// submission clears the list so only built-in permissions apply.
func HandleModRolesModal(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot, settings *model.GuildSettings) {
	raw := parseModRolesModal(i.ModalSubmitData())
	cleaned := cleanRoleList(raw)

	var value interface{}
	if cleaned != "" {
		value = cleaned
	}
	if _, err := database.UpdateGuild(b.GetDB(), settings.GuildID, map[string]interface{}{"mod_roles": value}); err != nil {
		log.Printf("Error updating mod roles for guild %s: %v", settings.GuildID, err)
		utils.SendErrorResponse(s, i, "Failed to update mod roles.")
		return
	}
	log.Printf("Updated mod roles for guild %s: %q", settings.GuildID, cleaned)

	if cleaned == "" {
		utils.SendSimpleResponse(s, i, "Mod role list cleared. Only members with admin or kick permissions count as mods now.")
		return
	}
	utils.SendSimpleResponse(s, i, fmt.Sprintf("Mod roles updated: %s", cleaned))
}

func showConfig(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot, settings *model.GuildSettings) {
	cfg := b.GetConfig()

	forumName := settings.ForumChannelName
	if forumName == "" {
		forumName = cfg.DefaultForumChannelName
	}
	chatName := settings.ChatChannelName
	if chatName == "" {
		chatName = cfg.DefaultChatChannelName
	}
	modRoles := settings.ModRoles
	if modRoles == "" {
		modRoles = "(none configured)"
	}

	embed := &discordgo.MessageEmbed{
		Title: "Daily Bot Configuration",
		Color: 0x5865f2,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Enabled", Value: onOff(settings.Enabled), Inline: true},
			{Name: "Forum channel", Value: forumName, Inline: true},
			{Name: "Chat channel", Value: chatName, Inline: true},
			{Name: "Ping users", Value: onOff(settings.PingUsers), Inline: true},
			{Name: "Theme saving", Value: onOff(settings.ThemeSavingEnabled), Inline: true},
			{Name: "Mod roles", Value: modRoles},
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text: "Pass options to /daily-bot-config to change channel and toggle settings.",
		},
	}
	row := discordgo.ActionsRow{
		Components: []discordgo.MessageComponent{
			discordgo.Button{
				Label:    "Edit Mod Roles",
				Style:    discordgo.SecondaryButton,
				CustomID: "edit-mod-roles",
			},
		},
	}

	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{embed},
			Components: []discordgo.MessageComponent{row},
			Flags:      discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		log.Printf("Error showing configuration: %v", err)
	}
}

func parseModRolesModal(data discordgo.ModalSubmitInteractionData) string {
	for _, row := range data.Components {
		actionsRow, ok := row.(*discordgo.ActionsRow)
		if !ok {
			continue
		}
		for _, comp := range actionsRow.Components {
			if input, ok := comp.(*discordgo.TextInput); ok && input.CustomID == "mod-roles-input" {
				return input.Value
			}
		}
	}
	return ""
}

// cleanRoleList normalizes a comma separated role list, dropping empty
// segments and surrounding whitespace.
func cleanRoleList(raw string) string {
	return strings.Join(utils.SplitRoleList(raw), ",")
}

func onOff(v int) string {
	if v != 0 {
		return "ON"
	}
	return "OFF"
}

func boolToInt(v bool) int {
	if v {
		return 1
	}
	return 0
}
