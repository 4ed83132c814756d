package contest

import (
	"context"
	"drawbot/model"
	"sort"
	"sync"

	"github.com/bwmarrin/discordgo"
)

// Reaction lookups for different submissions are independent network
// fetches, so a few can run at once.
const maxTallyConcurrency = 5

type artistScore struct {
	id       string
	username string
	count    int
}

// ComputePodium derives the top three artists of a round from its ordered
// message history. When lastIsOriginalPost is set the final item is the
// round's own seed post and is dropped before tallying. Non-image and
// overtime submissions are skipped; authors with several drawings keep the
// best single count, not the sum. The result always has three entries,
// padded with sentinels, sorted by votes descending with ties kept in
// discovery order.
func ComputePodium(ctx context.Context, r Reader, guildID string, msgs []*discordgo.Message, lastIsOriginalPost bool) [3]model.PodiumEntry {
	podium := [3]model.PodiumEntry{model.SentinelEntry(), model.SentinelEntry(), model.SentinelEntry()}

	if lastIsOriginalPost && len(msgs) > 0 {
		msgs = msgs[:len(msgs)-1]
	}
	if len(msgs) == 0 {
		return podium
	}

	// Evaluate submissions concurrently but keep results in slot order so
	// aggregation still sees discovery order.
	scores := make([]*artistScore, len(msgs))
	var wg sync.WaitGroup
	guard := make(chan struct{}, maxTallyConcurrency)

	for idx, msg := range msgs {
		if ctx.Err() != nil {
			break
		}
		wg.Add(1)
		guard <- struct{}{}

		go func(idx int, msg *discordgo.Message) {
			defer func() {
				<-guard
				wg.Done()
			}()
			scores[idx] = evaluateSubmission(r, guildID, msg)
		}(idx, msg)
	}
	wg.Wait()

	agg := make(map[string]*artistScore)
	order := make([]string, 0, len(msgs))
	for _, s := range scores {
		if s == nil {
			continue
		}
		if prev, ok := agg[s.id]; ok {
			if s.count > prev.count {
				prev.count = s.count
			}
			continue
		}
		agg[s.id] = &artistScore{id: s.id, username: s.username, count: s.count}
		order = append(order, s.id)
	}

	ranked := make([]*artistScore, 0, len(order))
	for _, id := range order {
		ranked = append(ranked, agg[id])
	}
	// Ties keep discovery order, so earlier submissions rank first.
	sort.SliceStable(ranked, func(a, b int) bool {
		return ranked[a].count > ranked[b].count
	})

	for i := 0; i < 3 && i < len(ranked); i++ {
		podium[i] = model.PodiumEntry{
			ID:       ranked[i].id,
			Username: ranked[i].username,
			Votes:    ranked[i].count,
		}
	}
	return podium
}

// evaluateSubmission classifies one message and returns its score, or nil
// when the message is not a qualifying submission.
func evaluateSubmission(r Reader, guildID string, msg *discordgo.Message) *artistScore {
	if msg == nil || msg.Author == nil {
		return nil
	}
	if !IsImageMessage(msg) {
		return nil
	}
	if IsMarkedOvertime(r, guildID, msg) {
		return nil
	}

	username := msg.Author.Username
	if username == "" {
		username = "Unknown"
	}
	return &artistScore{
		id:       msg.Author.ID,
		username: username,
		count:    CountFireReactors(r, msg),
	}
}
