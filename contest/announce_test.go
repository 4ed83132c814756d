package contest

import (
	"testing"
	"time"

	"drawbot/model"

	"github.com/stretchr/testify/require"
)

func podiumOf(entries ...model.PodiumEntry) [3]model.PodiumEntry {
	out := [3]model.PodiumEntry{model.SentinelEntry(), model.SentinelEntry(), model.SentinelEntry()}
	copy(out[:], entries)
	return out
}

func TestBuildResultsMessage_FullPodiumWithNewPost(t *testing.T) {
	now := time.Date(2026, time.March, 15, 4, 0, 0, 0, time.UTC)
	podium := podiumOf(
		model.PodiumEntry{ID: "a1", Username: "alice", Votes: 5},
		model.PodiumEntry{ID: "b1", Username: "bob", Votes: 3},
		model.PodiumEntry{ID: "c1", Username: "carol", Votes: 1},
	)

	content, mentions := BuildResultsMessage(podium, "post-9", now)

	require.Contains(t, content, "## 15 Minute Daily Drawing Results")
	require.Contains(t, content, "-# March 14, 2026", "header carries yesterday's date")
	require.Contains(t, content, "### `🔥  5` <@a1>")
	require.Contains(t, content, "### `🔥  3` <@b1>")
	require.Contains(t, content, "### `🔥  1` <@c1>")
	require.Contains(t, content, "Congratulations <@a1>!")
	require.Contains(t, content, "The new theme for today is here: <#post-9>")
	require.NotContains(t, content, "Please create a forum post")
	require.Contains(t, content, "-# Type `/daily-theme` at any time to save your own theme!")
	require.Empty(t, mentions, "winner already gets a theme post pointer")
}

func TestBuildResultsMessage_WinnerWithoutNewPostIsPinged(t *testing.T) {
	now := time.Date(2026, time.March, 15, 4, 0, 0, 0, time.UTC)
	podium := podiumOf(model.PodiumEntry{ID: "a1", Username: "alice", Votes: 2})

	content, mentions := BuildResultsMessage(podium, "", now)

	require.Contains(t, content, "Please create a forum post with a new theme!")
	require.Equal(t, []string{"a1"}, mentions)
}

func TestBuildResultsMessage_SentinelPlaces(t *testing.T) {
	now := time.Date(2026, time.March, 15, 4, 0, 0, 0, time.UTC)
	podium := podiumOf(model.PodiumEntry{ID: "a1", Username: "alice", Votes: 2})

	content, _ := BuildResultsMessage(podium, "", now)

	require.Contains(t, content, "### `🔥  0` none")
}

func TestBuildResultsMessage_EmptyPodium(t *testing.T) {
	now := time.Date(2026, time.March, 15, 4, 0, 0, 0, time.UTC)

	content, mentions := BuildResultsMessage(podiumOf(), "", now)

	require.NotContains(t, content, "Congratulations")
	require.Empty(t, mentions)
}
