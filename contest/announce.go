package contest

import (
	"drawbot/model"
	"fmt"
	"strings"
	"time"
)

func entryDisplay(e model.PodiumEntry) string {
	if e.IsReal() {
		return fmt.Sprintf("<@%s>", e.ID)
	}
	return e.Username
}

// BuildResultsMessage renders the podium into the daily results message and
// decides who gets pinged. The winner is only added to the mention set when
// real and no rollover post was created: a winner who already gets a pointer
// to their new theme post is not pinged a second time.
func BuildResultsMessage(podium [3]model.PodiumEntry, newPostID string, now time.Time) (string, []string) {
	yesterday := now.UTC().AddDate(0, 0, -1)

	var b strings.Builder
	b.WriteString("## 15 Minute Daily Drawing Results\n")
	fmt.Fprintf(&b, "-# %s\n", yesterday.Format("January 2, 2006"))
	for _, e := range podium {
		fmt.Fprintf(&b, "### `🔥 %2d` %s\n", e.Votes, entryDisplay(e))
	}
	b.WriteString("\n")

	mentionIDs := []string{}
	if podium[0].IsReal() {
		fmt.Fprintf(&b, "Congratulations <@%s>!\n", podium[0].ID)
		if newPostID != "" {
			fmt.Fprintf(&b, "The new theme for today is here: <#%s>\n\n", newPostID)
		} else {
			b.WriteString("Please create a forum post with a new theme!\n\n")
			mentionIDs = append(mentionIDs, podium[0].ID)
		}
	}

	b.WriteString("-# Type `/daily-theme` at any time to save your own theme!\n")
	return b.String(), mentionIDs
}
