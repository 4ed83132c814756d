package contest

import (
	"fmt"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
)

// NextDeadline returns the next time a five-field cron expression fires,
// evaluated in UTC.
func NextDeadline(cronExpr string, now time.Time) (time.Time, error) {
	schedule, err := cron.ParseStandard(cronExpr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid cron expression %q: %w", cronExpr, err)
	}
	return schedule.Next(now.UTC()), nil
}

// BuildRulesMessage renders the contest rules posted into every new round.
// The deadline line is derived from the configured schedule; an unparseable
// schedule falls back to the plain 04:00 UTC wording.
func BuildRulesMessage(cronExpr string, now time.Time) string {
	dateStr := now.UTC().Format("January 2, 2006")

	var b strings.Builder
	fmt.Fprintf(&b, "Welcome to the daily drawing thread for %s!\n", dateStr)
	b.WriteString("- Please only post images in this thread\n")
	b.WriteString("- React an image with \\:fire\\: 🔥 to vote for it to win, you may vote as much as you'd like\n")
	b.WriteString("- If your drawing went over time, react on it with \\:timer\\: ⏱️ and it won't be counted\n")
	b.WriteString("- You can post multiple drawings, just keep them as separate replies in the thread\n")

	deadline, err := NextDeadline(cronExpr, now)
	if err != nil {
		b.WriteString("- The votes will be counted and the winner announced at 04:00 UTC\n")
		return b.String()
	}
	fmt.Fprintf(&b, "- The deadline is: %s UTC / <t:%d:t> your local time\n",
		deadline.UTC().Format("15:04"), deadline.Unix())
	return b.String()
}
