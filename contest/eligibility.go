package contest

import (
	"regexp"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// Image URL anywhere in the message body counts as an image submission.
var imageURLPattern = regexp.MustCompile(`(?i)https?://\S+\.(png|jpe?g|gif|webp|bmp|tiff|svg)(\?\S*)?`)

var imageExtensions = []string{".png", ".jpg", ".jpeg", ".gif", ".webp", ".bmp", ".tiff", ".svg"}

func hasImageExtension(name string) bool {
	if name == "" {
		return false
	}
	lower := strings.ToLower(name)
	if idx := strings.IndexByte(lower, '?'); idx >= 0 {
		lower = lower[:idx]
	}
	for _, ext := range imageExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

// IsImageMessage reports whether a message appears to be a drawing entry:
// an image attachment, an embed with an image, or an image URL in the body.
// Anything it cannot classify is treated as not an image.
func IsImageMessage(m *discordgo.Message) bool {
	if m == nil {
		return false
	}

	for _, att := range m.Attachments {
		if att == nil {
			continue
		}
		if strings.HasPrefix(att.ContentType, "image/") {
			return true
		}
		if hasImageExtension(att.Filename) || hasImageExtension(att.URL) {
			return true
		}
	}

	for _, e := range m.Embeds {
		if e == nil {
			continue
		}
		if e.Image != nil && e.Image.URL != "" {
			return true
		}
		if e.Thumbnail != nil && e.Thumbnail.URL != "" {
			return true
		}
		if e.Type == discordgo.EmbedTypeImage && e.URL != "" {
			return true
		}
	}

	return imageURLPattern.MatchString(m.Content)
}

// stripVariationSelector drops the emoji presentation selector so glyph
// comparisons work whether or not clients include it.
func stripVariationSelector(name string) string {
	return strings.ReplaceAll(name, "️", "")
}

func isTimerEmoji(name string) bool {
	if name == "" {
		return false
	}
	stripped := stripVariationSelector(name)
	if stripped == "⏱" || stripped == "⏲" {
		return true
	}
	lower := strings.ToLower(name)
	return strings.Contains(lower, "timer") || strings.Contains(lower, "stopwatch")
}

// IsMarkedOvertime reports whether a submission carries a timer reaction
// from its own author or from a moderator, which disqualifies it entirely.
// Failures while resolving a single reaction or member skip that item and
// checking continues.
func IsMarkedOvertime(r Reader, guildID string, m *discordgo.Message) bool {
	if m == nil || m.Author == nil {
		return false
	}

	for _, reaction := range m.Reactions {
		if reaction == nil || reaction.Emoji == nil || !isTimerEmoji(reaction.Emoji.Name) {
			continue
		}

		users, err := r.ReactionUsers(m.ChannelID, m.ID, reaction.Emoji.APIName())
		if err != nil {
			continue
		}

		for _, u := range users {
			if u == nil {
				continue
			}
			if u.ID == m.Author.ID {
				return true
			}
			isMod, err := r.IsModerator(guildID, u.ID)
			if err != nil {
				continue
			}
			if isMod {
				return true
			}
		}
	}

	return false
}
