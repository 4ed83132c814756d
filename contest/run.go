package contest

import (
	"context"
	"log"
	"time"

	"github.com/jmoiron/sqlx"
)

// RunResult tells the caller how far a round run got, so the on-demand
// command can answer the invoker and the scheduled path can log.
type RunResult int

const (
	// RunPosted means the announcement was sent.
	RunPosted RunResult = iota
	// RunNoForum means the configured forum channel does not exist.
	RunNoForum
	// RunNoRound means the forum has no active round thread.
	RunNoRound
	// RunNoEntries means the round produced no qualifying entries.
	RunNoEntries
	// RunNoChatChannel means the configured announcement channel does not
	// exist.
	RunNoChatChannel
)

// RoundOptions carries one guild's effective contest settings into a run.
type RoundOptions struct {
	GuildID            string
	ForumChannelName   string
	ChatChannelName    string
	PingUsers          bool
	ThemeSavingEnabled bool
	CronSchedule       string
}

// RunDeadline executes one guild's full deadline pipeline: locate the
// current round, compute the podium, roll over the winner's staged theme
// and post the results. A non-nil error reports an unexpected platform or
// store failure; the RunResult is meaningful either way. A context past its
// deadline downgrades the round to "no results" rather than failing.
func RunDeadline(ctx context.Context, r Reader, w Writer, db *sqlx.DB, opts RoundOptions) (RunResult, error) {
	forum, round, err := FindLatestRound(r, opts.GuildID, opts.ForumChannelName)
	if err != nil {
		return RunNoRound, err
	}
	if forum == nil {
		return RunNoForum, nil
	}
	if round == nil {
		return RunNoRound, nil
	}

	msgs, err := r.ThreadMessages(round.ID, roundHistoryLimit)
	if err != nil {
		return RunNoRound, err
	}
	if len(msgs) == 0 {
		return RunNoEntries, nil
	}

	// The newest-first history ends with the round's own seed post.
	podium := ComputePodium(ctx, r, opts.GuildID, msgs, true)
	if ctx.Err() != nil {
		log.Printf("Round processing for guild %s exceeded its time limit", opts.GuildID)
		return RunNoEntries, nil
	}
	if !podium[0].IsReal() {
		return RunNoEntries, nil
	}

	newPostID := ""
	if opts.ThemeSavingEnabled {
		rules := BuildRulesMessage(opts.CronSchedule, time.Now())
		newPostID = Rollover(w, db, opts.GuildID, podium[0].ID, forum.ID, rules)
	}

	content, mentionIDs := BuildResultsMessage(podium, newPostID, time.Now())
	if !opts.PingUsers {
		mentionIDs = nil
	}

	chat, err := w.GuildTextChannelByName(opts.GuildID, opts.ChatChannelName)
	if err != nil {
		return RunNoChatChannel, err
	}
	if chat == nil {
		return RunNoChatChannel, nil
	}

	if err := w.SendAnnouncement(chat.ID, content, mentionIDs); err != nil {
		return RunPosted, err
	}
	return RunPosted, nil
}
