package contest

import (
	"time"

	"github.com/bwmarrin/discordgo"
)

// One fetch covers the whole submission window.
const roundHistoryLimit = 100

// FindLatestRound returns the most recently created thread under the
// guild's configured forum channel, together with the forum itself. Both
// are nil when no forum or no round exists.
func FindLatestRound(r Reader, guildID, forumName string) (forum, round *discordgo.Channel, err error) {
	forum, err = r.GuildForumByName(guildID, forumName)
	if err != nil || forum == nil {
		return forum, nil, err
	}

	threads, err := r.ActiveThreads(guildID, forum.ID)
	if err != nil {
		return forum, nil, err
	}

	var latest *discordgo.Channel
	var latestTime time.Time
	for _, t := range threads {
		created := threadCreationTime(t)
		if latest == nil || created.After(latestTime) {
			latest = t
			latestTime = created
		}
	}
	return forum, latest, nil
}

func threadCreationTime(t *discordgo.Channel) time.Time {
	ts, err := discordgo.SnowflakeTimestamp(t.ID)
	if err != nil {
		return time.Time{}
	}
	return ts
}
