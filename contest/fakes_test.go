package contest

import (
	"errors"

	"github.com/bwmarrin/discordgo"
)

// fakeReader is an in-memory Reader for pipeline tests.
type fakeReader struct {
	forums    map[string]*discordgo.Channel   // forum name to channel
	threads   []*discordgo.Channel            // active threads, any parent
	messages  map[string][]*discordgo.Message // thread id to newest-first history
	reactors  map[string][]*discordgo.User    // message id + "/" + emoji api name
	mods      map[string]bool                 // user id to moderator flag
	failedMsg string                          // message id whose reaction lookups fail
}

func newFakeReader() *fakeReader {
	return &fakeReader{
		forums:   map[string]*discordgo.Channel{},
		messages: map[string][]*discordgo.Message{},
		reactors: map[string][]*discordgo.User{},
		mods:     map[string]bool{},
	}
}

func (f *fakeReader) GuildForumByName(guildID, name string) (*discordgo.Channel, error) {
	return f.forums[name], nil
}

func (f *fakeReader) ActiveThreads(guildID, forumID string) ([]*discordgo.Channel, error) {
	var out []*discordgo.Channel
	for _, t := range f.threads {
		if t.ParentID == forumID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeReader) ThreadMessages(threadID string, limit int) ([]*discordgo.Message, error) {
	return f.messages[threadID], nil
}

func (f *fakeReader) ReactionUsers(channelID, messageID, emojiAPIName string) ([]*discordgo.User, error) {
	if messageID == f.failedMsg {
		return nil, errors.New("reaction fetch failed")
	}
	return f.reactors[messageID+"/"+emojiAPIName], nil
}

func (f *fakeReader) IsModerator(guildID, userID string) (bool, error) {
	return f.mods[userID], nil
}

type sentAnnouncement struct {
	channelID  string
	content    string
	mentionIDs []string
}

type createdPost struct {
	forumID string
	title   string
	content string
}

// fakeWriter records announcements and forum posts.
type fakeWriter struct {
	chats      map[string]*discordgo.Channel // chat channel name to channel
	sent       []sentAnnouncement
	created    []createdPost
	nextPostID string
	createErr  error
}

func newFakeWriter() *fakeWriter {
	return &fakeWriter{chats: map[string]*discordgo.Channel{}, nextPostID: "newpost-1"}
}

func (f *fakeWriter) GuildTextChannelByName(guildID, name string) (*discordgo.Channel, error) {
	return f.chats[name], nil
}

func (f *fakeWriter) SendAnnouncement(channelID, content string, mentionIDs []string) error {
	f.sent = append(f.sent, sentAnnouncement{channelID: channelID, content: content, mentionIDs: mentionIDs})
	return nil
}

func (f *fakeWriter) CreateForumPost(forumID, title, content string) (string, error) {
	if f.createErr != nil {
		return "", f.createErr
	}
	f.created = append(f.created, createdPost{forumID: forumID, title: title, content: content})
	return f.nextPostID, nil
}

func user(id, name string) *discordgo.User {
	return &discordgo.User{ID: id, Username: name}
}

func botUser(id, name string) *discordgo.User {
	return &discordgo.User{ID: id, Username: name, Bot: true}
}

// imageMsg builds a submission with one image attachment.
func imageMsg(id string, author *discordgo.User) *discordgo.Message {
	return &discordgo.Message{
		ID:        id,
		ChannelID: "thread-1",
		Author:    author,
		Attachments: []*discordgo.MessageAttachment{
			{Filename: "drawing.png", ContentType: "image/png"},
		},
	}
}

func textMsg(id string, author *discordgo.User, content string) *discordgo.Message {
	return &discordgo.Message{ID: id, ChannelID: "thread-1", Author: author, Content: content}
}

func withReaction(m *discordgo.Message, emojiName string) *discordgo.Message {
	m.Reactions = append(m.Reactions, &discordgo.MessageReactions{
		Emoji: &discordgo.Emoji{Name: emojiName},
	})
	return m
}

// addFireVotes registers fire reactors for a message on both the message
// struct and the reader's lookup table.
func addFireVotes(r *fakeReader, m *discordgo.Message, voters ...*discordgo.User) *discordgo.Message {
	withReaction(m, "🔥")
	key := m.ID + "/" + (&discordgo.Emoji{Name: "🔥"}).APIName()
	r.reactors[key] = append(r.reactors[key], voters...)
	return m
}

// addTimerMark registers a timer reaction applied by the given users.
func addTimerMark(r *fakeReader, m *discordgo.Message, reactors ...*discordgo.User) *discordgo.Message {
	withReaction(m, "⏱️")
	key := m.ID + "/" + (&discordgo.Emoji{Name: "⏱️"}).APIName()
	r.reactors[key] = append(r.reactors[key], reactors...)
	return m
}
