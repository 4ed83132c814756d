package contest

import (
	"strings"

	"github.com/bwmarrin/discordgo"
)

func isFireEmoji(name string) bool {
	if name == "" {
		return false
	}
	if stripVariationSelector(name) == "🔥" {
		return true
	}
	return strings.EqualFold(name, "fire")
}

// CountFireReactors counts the distinct users who applied a fire reaction
// to a submission, excluding bots and the submission's own author. A
// failure resolving one reaction skips it without aborting the count.
func CountFireReactors(r Reader, m *discordgo.Message) int {
	if m == nil || m.Author == nil {
		return 0
	}

	unique := make(map[string]struct{})
	for _, reaction := range m.Reactions {
		if reaction == nil || reaction.Emoji == nil || !isFireEmoji(reaction.Emoji.Name) {
			continue
		}

		users, err := r.ReactionUsers(m.ChannelID, m.ID, reaction.Emoji.APIName())
		if err != nil {
			continue
		}

		for _, u := range users {
			if u == nil || u.Bot || u.ID == m.Author.ID {
				continue
			}
			unique[u.ID] = struct{}{}
		}
	}

	return len(unique)
}
