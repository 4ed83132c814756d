package theme

import (
	"drawbot/bot"
	"drawbot/model"
	"drawbot/utils"
	"drawbot/utils/database"
	"log"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
)

// Handle shows the invoking user their saved theme with update and
// clear buttons. Unlike the mod commands this one is open to everyone.
func Handle(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	if i.GuildID == "" || i.Member == nil {
		utils.SendErrorResponse(s, i, "Guild not found.")
		return
	}

	settings, err := database.GetGuild(b.GetDB(), i.GuildID)
	if err != nil {
		log.Printf("Error loading settings for guild %s: %v", i.GuildID, err)
	}
	if settings != nil && settings.ThemeSavingEnabled == 0 {
		utils.SendErrorResponse(s, i, "Theme saving is disabled on this server.")
		return
	}

	user, err := database.GetOrCreateUser(b.GetDB(), i.Member.User.ID, i.GuildID, i.Member.User.Username)
	if err != nil {
		log.Printf("Error loading theme for user %s in guild %s: %v", i.Member.User.ID, i.GuildID, err)
		utils.SendErrorResponse(s, i, "Failed to load your saved theme.")
		return
	}

	embed, rows := buildThemeMessage(user)
	err = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{embed},
			Components: rows,
			Flags:      discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		log.Printf("Error showing theme: %v", err)
	}
}

// HandleUpdateButton opens the theme edit modal prefilled with the
// user's current theme.
func HandleUpdateButton(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	if i.GuildID == "" || i.Member == nil {
		utils.SendErrorResponse(s, i, "Guild not found.")
		return
	}

	title, description := "", ""
	if user, err := database.GetUser(b.GetDB(), i.Member.User.ID, i.GuildID); err == nil && user != nil {
		title = user.ThemeTitle
		description = user.ThemeDescription
	}

	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: &discordgo.InteractionResponseData{
			CustomID: "daily-theme-modal",
			Title:    "Daily Drawing Theme",
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{
					Components: []discordgo.MessageComponent{
						discordgo.TextInput{
							CustomID:  "theme-title",
							Label:     "Theme title",
							Style:     discordgo.TextInputShort,
							Required:  true,
							MaxLength: 100,
							Value:     title,
						},
					},
				},
				discordgo.ActionsRow{
					Components: []discordgo.MessageComponent{
						discordgo.TextInput{
							CustomID:  "theme-description",
							Label:     "Theme description (optional)",
							Style:     discordgo.TextInputParagraph,
							Required:  false,
							MaxLength: 400,
							Value:     description,
						},
					},
				},
			},
		},
	})
	if err != nil {
		log.Printf("Error opening theme modal: %v", err)
	}
}

// HandleModalSubmit saves the submitted theme and stamps it with the
// submission time so rollover can attribute it later.
func HandleModalSubmit(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	if i.GuildID == "" || i.Member == nil {
		utils.SendErrorResponse(s, i, "Guild not found.")
		return
	}

	title, description := parseThemeModal(i.ModalSubmitData())
	if strings.TrimSpace(title) == "" {
		utils.SendErrorResponse(s, i, "Theme title cannot be empty.")
		return
	}

	updates := map[string]interface{}{
		"username":            i.Member.User.Username,
		"theme_title":         strings.TrimSpace(title),
		"theme_description":   strings.TrimSpace(description),
		"theme_timestamp_utc": time.Now().UTC().Format(time.RFC3339),
	}
	if _, err := database.UpdateUser(b.GetDB(), i.Member.User.ID, i.GuildID, updates); err != nil {
		log.Printf("Error saving theme for user %s in guild %s: %v", i.Member.User.ID, i.GuildID, err)
		utils.SendErrorResponse(s, i, "Failed to save your theme.")
		return
	}
	log.Printf("Saved theme for user %s in guild %s", i.Member.User.ID, i.GuildID)

	user, err := database.GetUser(b.GetDB(), i.Member.User.ID, i.GuildID)
	if err != nil || user == nil {
		utils.SendSimpleResponse(s, i, "Your theme has been saved.")
		return
	}
	respondUpdated(s, i, user)
}

// HandleClearButton removes the user's saved theme.
func HandleClearButton(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	if i.GuildID == "" || i.Member == nil {
		utils.SendErrorResponse(s, i, "Guild not found.")
		return
	}

	if err := database.ClearTheme(b.GetDB(), i.Member.User.ID, i.GuildID); err != nil {
		log.Printf("Error clearing theme for user %s in guild %s: %v", i.Member.User.ID, i.GuildID, err)
		utils.SendErrorResponse(s, i, "Failed to clear your theme.")
		return
	}
	log.Printf("Cleared theme for user %s in guild %s", i.Member.User.ID, i.GuildID)

	user := &model.UserTheme{UserID: i.Member.User.ID, GuildID: i.GuildID, Username: i.Member.User.Username}
	respondUpdated(s, i, user)
}

func respondUpdated(s *discordgo.Session, i *discordgo.InteractionCreate, user *model.UserTheme) {
	embed, rows := buildThemeMessage(user)
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{embed},
			Components: rows,
		},
	})
	if err != nil {
		log.Printf("Error updating theme message: %v", err)
	}
}

func parseThemeModal(data discordgo.ModalSubmitInteractionData) (title, description string) {
	for _, row := range data.Components {
		actionsRow, ok := row.(*discordgo.ActionsRow)
		if !ok {
			continue
		}
		for _, comp := range actionsRow.Components {
			input, ok := comp.(*discordgo.TextInput)
			if !ok {
				continue
			}
			switch input.CustomID {
			case "theme-title":
				title = input.Value
			case "theme-description":
				description = input.Value
			}
		}
	}
	return title, description
}

func buildThemeMessage(user *model.UserTheme) (*discordgo.MessageEmbed, []discordgo.MessageComponent) {
	title := "(no saved theme)"
	description := "(none)"
	if user.ThemeTitle != "" {
		title = user.ThemeTitle
	}
	if user.ThemeDescription != "" {
		description = user.ThemeDescription
	}

	embed := &discordgo.MessageEmbed{
		Title:       "Daily Drawing Theme",
		Description: "If you win a daily drawing round, this theme is used for the next round's forum post.",
		Color:       0x5865f2,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Title", Value: title},
			{Name: "Description", Value: description},
		},
	}

	rows := []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "Update",
					Style:    discordgo.PrimaryButton,
					CustomID: "daily-theme-update",
				},
				discordgo.Button{
					Label:    "Clear",
					Style:    discordgo.DangerButton,
					CustomID: "daily-theme-clear",
				},
			},
		},
	}
	return embed, rows
}
