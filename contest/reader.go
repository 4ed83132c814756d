package contest

import (
	"drawbot/utils"
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// Reader is the read side of the chat platform used by the tally pipeline.
// Keeping it narrow lets the core be tested against fakes and keeps the
// algorithms independent of session specifics.
type Reader interface {
	// GuildForumByName returns the guild's forum channel with the given
	// name, or nil when none exists.
	GuildForumByName(guildID, name string) (*discordgo.Channel, error)
	// ActiveThreads returns the active threads under a forum channel.
	ActiveThreads(guildID, forumID string) ([]*discordgo.Channel, error)
	// ThreadMessages returns up to limit messages of a thread, newest
	// first. By convention the final item is the thread's own seed post.
	ThreadMessages(threadID string, limit int) ([]*discordgo.Message, error)
	// ReactionUsers resolves the users who applied one reaction.
	ReactionUsers(channelID, messageID, emojiAPIName string) ([]*discordgo.User, error)
	// IsModerator reports whether a user holds moderator-equivalent
	// privilege in the guild.
	IsModerator(guildID, userID string) (bool, error)
}

// Writer is the write side of the chat platform used by announcement and
// theme rollover.
type Writer interface {
	// GuildTextChannelByName returns the guild's text channel with the
	// given name, or nil when none exists.
	GuildTextChannelByName(guildID, name string) (*discordgo.Channel, error)
	// SendAnnouncement posts a message, pinging only the listed users.
	SendAnnouncement(channelID, content string, mentionIDs []string) error
	// CreateForumPost starts a new forum thread without pinging anyone.
	// Returns the new thread's ID.
	CreateForumPost(forumID, title, content string) (string, error)
}

// DiscordClient adapts a discordgo session to the Reader and Writer
// interfaces.
type DiscordClient struct {
	s        *discordgo.Session
	modRoles []string
}

func NewDiscordClient(s *discordgo.Session, modRoles []string) *DiscordClient {
	return &DiscordClient{s: s, modRoles: modRoles}
}

func (c *DiscordClient) GuildForumByName(guildID, name string) (*discordgo.Channel, error) {
	return c.guildChannelByName(guildID, name, discordgo.ChannelTypeGuildForum)
}

func (c *DiscordClient) GuildTextChannelByName(guildID, name string) (*discordgo.Channel, error) {
	return c.guildChannelByName(guildID, name, discordgo.ChannelTypeGuildText)
}

func (c *DiscordClient) guildChannelByName(guildID, name string, channelType discordgo.ChannelType) (*discordgo.Channel, error) {
	channels, err := c.s.GuildChannels(guildID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch channels for guild %s: %w", guildID, err)
	}
	for _, ch := range channels {
		if ch.Type == channelType && ch.Name == name {
			return ch, nil
		}
	}
	return nil, nil
}

func (c *DiscordClient) ActiveThreads(guildID, forumID string) ([]*discordgo.Channel, error) {
	list, err := c.s.GuildThreadsActive(guildID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch active threads for guild %s: %w", guildID, err)
	}
	var threads []*discordgo.Channel
	for _, t := range list.Threads {
		if t.ParentID == forumID {
			threads = append(threads, t)
		}
	}
	return threads, nil
}

func (c *DiscordClient) ThreadMessages(threadID string, limit int) ([]*discordgo.Message, error) {
	msgs, err := c.s.ChannelMessages(threadID, limit, "", "", "")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch messages for thread %s: %w", threadID, err)
	}
	return msgs, nil
}

func (c *DiscordClient) ReactionUsers(channelID, messageID, emojiAPIName string) ([]*discordgo.User, error) {
	users, err := c.s.MessageReactions(channelID, messageID, emojiAPIName, 100, "", "")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reaction users for message %s: %w", messageID, err)
	}
	return users, nil
}

func (c *DiscordClient) IsModerator(guildID, userID string) (bool, error) {
	return utils.HasModPermission(c.s, guildID, userID, c.modRoles)
}

func (c *DiscordClient) SendAnnouncement(channelID, content string, mentionIDs []string) error {
	if mentionIDs == nil {
		mentionIDs = []string{}
	}
	_, err := c.s.ChannelMessageSendComplex(channelID, &discordgo.MessageSend{
		Content: content,
		AllowedMentions: &discordgo.MessageAllowedMentions{
			Users: mentionIDs,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to send announcement to channel %s: %w", channelID, err)
	}
	return nil
}

func (c *DiscordClient) CreateForumPost(forumID, title, content string) (string, error) {
	thread, err := c.s.ForumThreadStartComplex(forumID, &discordgo.ThreadStart{
		Name:                title,
		AutoArchiveDuration: 1440,
	}, &discordgo.MessageSend{
		Content:         content,
		AllowedMentions: &discordgo.MessageAllowedMentions{},
	})
	if err != nil {
		return "", fmt.Errorf("failed to create forum post in channel %s: %w", forumID, err)
	}
	return thread.ID, nil
}
