package contest

import (
	"context"
	"testing"
	"time"

	"drawbot/model"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/require"
)

func TestComputePodium_RanksTopThree(t *testing.T) {
	r := newFakeReader()
	alice, bob, carol, dave := user("a1", "alice"), user("b1", "bob"), user("c1", "carol"), user("d1", "dave")
	v1, v2, v3, v4 := user("v1", "one"), user("v2", "two"), user("v3", "three"), user("v4", "four")

	msgs := []*discordgo.Message{
		addFireVotes(r, imageMsg("m-dave", dave), v1),
		addFireVotes(r, imageMsg("m-carol", carol), v1, v2),
		addFireVotes(r, imageMsg("m-bob", bob), v1, v2, v3),
		addFireVotes(r, imageMsg("m-alice", alice), v1, v2, v3, v4),
		textMsg("m-seed", user("opener", "opener"), "Today's theme!"),
	}

	podium := ComputePodium(context.Background(), r, "g1", msgs, true)

	require.Equal(t, model.PodiumEntry{ID: "a1", Username: "alice", Votes: 4}, podium[0])
	require.Equal(t, model.PodiumEntry{ID: "b1", Username: "bob", Votes: 3}, podium[1])
	require.Equal(t, model.PodiumEntry{ID: "c1", Username: "carol", Votes: 2}, podium[2])
}

func TestComputePodium_PadsWithSentinels(t *testing.T) {
	r := newFakeReader()
	alice := user("a1", "alice")

	msgs := []*discordgo.Message{
		addFireVotes(r, imageMsg("m-alice", alice), user("v1", "one")),
		textMsg("m-seed", user("opener", "opener"), "theme"),
	}

	podium := ComputePodium(context.Background(), r, "g1", msgs, true)

	require.True(t, podium[0].IsReal())
	require.Equal(t, model.SentinelEntry(), podium[1])
	require.Equal(t, model.SentinelEntry(), podium[2])
}

func TestComputePodium_EmptyHistory(t *testing.T) {
	r := newFakeReader()

	for _, msgs := range [][]*discordgo.Message{
		nil,
		{textMsg("m-seed", user("opener", "opener"), "theme")},
	} {
		podium := ComputePodium(context.Background(), r, "g1", msgs, true)
		require.Equal(t, model.SentinelEntry(), podium[0])
		require.Equal(t, model.SentinelEntry(), podium[1])
		require.Equal(t, model.SentinelEntry(), podium[2])
	}
}

func TestComputePodium_SeedPostNotCounted(t *testing.T) {
	r := newFakeReader()
	opener := user("opener", "opener")

	// The seed post is an image with votes, but the final history item is
	// never a submission.
	seed := addFireVotes(r, imageMsg("m-seed", opener), user("v1", "one"), user("v2", "two"))
	msgs := []*discordgo.Message{seed}

	podium := ComputePodium(context.Background(), r, "g1", msgs, true)
	require.Equal(t, model.SentinelEntry(), podium[0])

	// Without the seed flag the same message counts.
	podium = ComputePodium(context.Background(), r, "g1", msgs, false)
	require.Equal(t, "opener", podium[0].ID)
	require.Equal(t, 2, podium[0].Votes)
}

func TestComputePodium_MultipleEntriesKeepBestNotSum(t *testing.T) {
	r := newFakeReader()
	alice, bob := user("a1", "alice"), user("b1", "bob")
	v1, v2, v3 := user("v1", "one"), user("v2", "two"), user("v3", "three")

	msgs := []*discordgo.Message{
		addFireVotes(r, imageMsg("m-alice-2", alice), v1, v2),
		addFireVotes(r, imageMsg("m-alice-1", alice), v1),
		addFireVotes(r, imageMsg("m-bob", bob), v1, v2, v3),
		textMsg("m-seed", user("opener", "opener"), "theme"),
	}

	podium := ComputePodium(context.Background(), r, "g1", msgs, true)

	require.Equal(t, "b1", podium[0].ID)
	require.Equal(t, 3, podium[0].Votes)
	require.Equal(t, "a1", podium[1].ID)
	require.Equal(t, 2, podium[1].Votes, "several entries keep the best single count")
	require.False(t, podium[2].IsReal())
}

func TestComputePodium_TiesKeepDiscoveryOrder(t *testing.T) {
	r := newFakeReader()
	alice, bob, carol := user("a1", "alice"), user("b1", "bob"), user("c1", "carol")
	v1, v2 := user("v1", "one"), user("v2", "two")

	// Newest first: carol posted last, alice first.
	msgs := []*discordgo.Message{
		addFireVotes(r, imageMsg("m-carol", carol), v1, v2),
		addFireVotes(r, imageMsg("m-bob", bob), v1, v2),
		addFireVotes(r, imageMsg("m-alice", alice), v1, v2),
		textMsg("m-seed", user("opener", "opener"), "theme"),
	}

	podium := ComputePodium(context.Background(), r, "g1", msgs, true)

	require.Equal(t, "c1", podium[0].ID)
	require.Equal(t, "b1", podium[1].ID)
	require.Equal(t, "a1", podium[2].ID)
}

func TestComputePodium_SkipsNonImageAndOvertime(t *testing.T) {
	r := newFakeReader()
	alice, bob, carol := user("a1", "alice"), user("b1", "bob"), user("c1", "carol")
	v1, v2 := user("v1", "one"), user("v2", "two")

	late := addFireVotes(r, imageMsg("m-bob", bob), v1, v2)
	addTimerMark(r, late, bob)

	chatter := textMsg("m-carol", carol, "nice work everyone")
	withReaction(chatter, "🔥")
	r.reactors["m-carol/🔥"] = []*discordgo.User{v1, v2}

	msgs := []*discordgo.Message{
		chatter,
		late,
		addFireVotes(r, imageMsg("m-alice", alice), v1),
		textMsg("m-seed", user("opener", "opener"), "theme"),
	}

	podium := ComputePodium(context.Background(), r, "g1", msgs, true)

	require.Equal(t, "a1", podium[0].ID)
	require.False(t, podium[1].IsReal())
	require.False(t, podium[2].IsReal())
}

func TestComputePodium_ModMarkedOvertime(t *testing.T) {
	r := newFakeReader()
	alice, bob := user("a1", "alice"), user("b1", "bob")
	mod, bystander := user("mod1", "mod"), user("x1", "bystander")
	r.mods["mod1"] = true

	flaggedByMod := addFireVotes(r, imageMsg("m-alice", alice), user("v1", "one"), user("v2", "two"))
	addTimerMark(r, flaggedByMod, mod)

	flaggedByBystander := addFireVotes(r, imageMsg("m-bob", bob), user("v1", "one"))
	addTimerMark(r, flaggedByBystander, bystander)

	msgs := []*discordgo.Message{
		flaggedByMod,
		flaggedByBystander,
		textMsg("m-seed", user("opener", "opener"), "theme"),
	}

	podium := ComputePodium(context.Background(), r, "g1", msgs, true)

	// Only the mod's timer disqualifies; a bystander's does not.
	require.Equal(t, "b1", podium[0].ID)
	require.False(t, podium[1].IsReal())
}

func TestComputePodium_ExpiredContextReturnsSentinels(t *testing.T) {
	r := newFakeReader()
	alice := user("a1", "alice")

	msgs := []*discordgo.Message{
		addFireVotes(r, imageMsg("m-alice", alice), user("v1", "one")),
		textMsg("m-seed", user("opener", "opener"), "theme"),
	}

	ctx, cancel := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
	defer cancel()

	podium := ComputePodium(ctx, r, "g1", msgs, true)
	require.False(t, podium[0].IsReal())
}

func TestComputePodium_ReactionFailureSkipsSubmission(t *testing.T) {
	r := newFakeReader()
	alice, bob := user("a1", "alice"), user("b1", "bob")

	broken := addFireVotes(r, imageMsg("m-alice", alice), user("v1", "one"), user("v2", "two"))
	r.failedMsg = "m-alice"

	msgs := []*discordgo.Message{
		broken,
		addFireVotes(r, imageMsg("m-bob", bob), user("v1", "one")),
		textMsg("m-seed", user("opener", "opener"), "theme"),
	}

	podium := ComputePodium(context.Background(), r, "g1", msgs, true)

	// The broken lookup zeroes that submission's count but the round goes on.
	require.Equal(t, "b1", podium[0].ID)
	require.Equal(t, 1, podium[0].Votes)
	require.Equal(t, "a1", podium[1].ID)
	require.Equal(t, 0, podium[1].Votes)
}
