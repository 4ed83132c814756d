package database

import (
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := InitStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestGetOrCreateGuild(t *testing.T) {
	db := newTestStore(t)

	missing, err := GetGuild(db, "g1")
	require.NoError(t, err)
	require.Nil(t, missing)

	g, err := GetOrCreateGuild(db, "g1", "Art Server")
	require.NoError(t, err)
	require.Equal(t, "g1", g.GuildID)
	require.Equal(t, "Art Server", g.Name)
	require.Equal(t, 1, g.Enabled)
	require.Equal(t, 0, g.PingUsers)
	require.Equal(t, 1, g.ThemeSavingEnabled)
	require.Empty(t, g.ForumChannelName)

	// A second call returns the existing row unchanged.
	again, err := GetOrCreateGuild(db, "g1", "Renamed")
	require.NoError(t, err)
	require.Equal(t, "Art Server", again.Name)
}

func TestGetOrCreateGuild_DefaultName(t *testing.T) {
	db := newTestStore(t)

	g, err := GetOrCreateGuild(db, "g1", "")
	require.NoError(t, err)
	require.Equal(t, "Unknown Guild", g.Name)
}

func TestUpdateGuild(t *testing.T) {
	db := newTestStore(t)
	_, err := GetOrCreateGuild(db, "g1", "Art Server")
	require.NoError(t, err)

	changed, err := UpdateGuild(db, "g1", map[string]interface{}{
		"forum_channel_name": "daily-drawings",
		"ping_users":         1,
		"enabled":            0,
	})
	require.NoError(t, err)
	require.True(t, changed)

	g, err := GetGuild(db, "g1")
	require.NoError(t, err)
	require.Equal(t, "daily-drawings", g.ForumChannelName)
	require.Equal(t, 1, g.PingUsers)
	require.Equal(t, 0, g.Enabled)
	require.Equal(t, "Art Server", g.Name, "untouched columns keep their values")
}

func TestUpdateGuild_NilClearsColumn(t *testing.T) {
	db := newTestStore(t)
	_, err := GetOrCreateGuild(db, "g1", "Art Server")
	require.NoError(t, err)

	_, err = UpdateGuild(db, "g1", map[string]interface{}{"mod_roles": "Moderators,123"})
	require.NoError(t, err)

	_, err = UpdateGuild(db, "g1", map[string]interface{}{"mod_roles": nil})
	require.NoError(t, err)

	g, err := GetGuild(db, "g1")
	require.NoError(t, err)
	require.Empty(t, g.ModRoles)
}

func TestUpdateGuild_NoRow(t *testing.T) {
	db := newTestStore(t)

	changed, err := UpdateGuild(db, "missing", map[string]interface{}{"enabled": 0})
	require.NoError(t, err)
	require.False(t, changed)

	changed, err = UpdateGuild(db, "missing", nil)
	require.NoError(t, err)
	require.False(t, changed)
}

func TestGetAllGuildsAndDelete(t *testing.T) {
	db := newTestStore(t)
	_, err := GetOrCreateGuild(db, "g1", "One")
	require.NoError(t, err)
	_, err = GetOrCreateGuild(db, "g2", "Two")
	require.NoError(t, err)

	guilds, err := GetAllGuilds(db)
	require.NoError(t, err)
	require.Len(t, guilds, 2)

	deleted, err := DeleteGuild(db, "g1")
	require.NoError(t, err)
	require.True(t, deleted)

	deleted, err = DeleteGuild(db, "g1")
	require.NoError(t, err)
	require.False(t, deleted)

	guilds, err = GetAllGuilds(db)
	require.NoError(t, err)
	require.Len(t, guilds, 1)
}
