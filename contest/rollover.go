package contest

import (
	"drawbot/utils/database"
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"
)

// Rollover materializes a new round from the winner's staged theme and
// returns the new post's ID, or "" when the winner staged nothing or the
// post could not be created. Once a staged theme is identified it is
// consumed: the clear happens whether or not materialization succeeded, and
// is not retried.
func Rollover(w Writer, db *sqlx.DB, guildID, winnerID, forumID, rulesMsg string) string {
	saved, err := database.GetUser(db, winnerID, guildID)
	if err != nil {
		log.Printf("Error reading staged theme for user %s in guild %s: %v", winnerID, guildID, err)
		return ""
	}
	if saved == nil || !saved.HasTheme() {
		return ""
	}

	newPostID := ""
	body := fmt.Sprintf("Theme by: <@%s>\n\n%s\n\n%s", winnerID, saved.ThemeDescription, rulesMsg)
	if forumID == "" {
		log.Printf("No forum channel to create theme post in for guild %s", guildID)
	} else {
		newPostID, err = w.CreateForumPost(forumID, saved.ThemeTitle, body)
		if err != nil {
			log.Printf("Failed to create forum post for theme in guild %s: %v", guildID, err)
			newPostID = ""
		} else {
			log.Printf("Created forum post for staged theme %q in guild %s", saved.ThemeTitle, guildID)
		}
	}

	if err := database.ClearTheme(db, winnerID, guildID); err != nil {
		log.Printf("Failed to clear staged theme for user %s in guild %s: %v", winnerID, guildID, err)
	} else {
		log.Printf("Cleared staged theme for user %s in guild %s", winnerID, guildID)
	}

	return newPostID
}
