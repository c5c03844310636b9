package models

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(AllModels()...))

	return db
}

func TestTableNamesCarryPrefix(t *testing.T) {
	assert.Equal(t, "chatnest_users", User{}.TableName())
	assert.Equal(t, "chatnest_accounts", Account{}.TableName())
	assert.Equal(t, "chatnest_sessions", Session{}.TableName())
	assert.Equal(t, "chatnest_verification_tokens", VerificationToken{}.TableName())
	assert.Equal(t, "chatnest_profiles", Profile{}.TableName())
	assert.Equal(t, "chatnest_servers", Server{}.TableName())
	assert.Equal(t, "chatnest_members", Member{}.TableName())
	assert.Equal(t, "chatnest_channels", Channel{}.TableName())
	assert.Equal(t, "chatnest_messages", Message{}.TableName())
	assert.Equal(t, "chatnest_conversations", Conversation{}.TableName())
	assert.Equal(t, "chatnest_direct_messages", DirectMessage{}.TableName())
}

func TestBeforeCreateAssignsIDs(t *testing.T) {
	db := openTestDB(t)

	profile := Profile{UserID: "u-1", Name: "tester"}
	require.NoError(t, db.Create(&profile).Error)
	assert.NotEmpty(t, profile.ID)

	server := Server{Name: "lab", ProfileID: profile.ID}
	require.NoError(t, db.Create(&server).Error)
	assert.NotEmpty(t, server.ID)
	assert.NotEmpty(t, server.InviteCode)

	member := Member{ProfileID: profile.ID, ServerID: server.ID}
	require.NoError(t, db.Create(&member).Error)
	assert.NotEmpty(t, member.ID)
	assert.Equal(t, ROLE_GUEST, member.Role)

	channel := Channel{Name: "general", ProfileID: profile.ID, ServerID: server.ID}
	require.NoError(t, db.Create(&channel).Error)
	assert.NotEmpty(t, channel.ID)
	assert.Equal(t, CHANNEL_TEXT, channel.Type)
}

func TestMessageResolvesSenderProfile(t *testing.T) {
	db := openTestDB(t)

	profile := Profile{UserID: "u-1", Name: "paula"}
	require.NoError(t, db.Create(&profile).Error)

	server := Server{Name: "hq", InviteCode: "abc123", ProfileID: profile.ID}
	require.NoError(t, db.Create(&server).Error)

	member := Member{Role: ROLE_GUEST, ProfileID: profile.ID, ServerID: server.ID}
	require.NoError(t, db.Create(&member).Error)

	channel := Channel{Name: "general", Type: CHANNEL_TEXT, ProfileID: profile.ID, ServerID: server.ID}
	require.NoError(t, db.Create(&channel).Error)

	message := Message{Content: "hello", MemberID: member.ID, ChannelID: channel.ID}
	require.NoError(t, db.Create(&message).Error)
	assert.False(t, message.Deleted)

	var got Message
	require.NoError(t, db.Preload("Member.Profile").First(&got, "id = ?", message.ID).Error)
	assert.Equal(t, "hello", got.Content)
	assert.Equal(t, "paula", got.Member.Profile.Name)
}

func TestDirectMessageResolvesMemberAndConversation(t *testing.T) {
	db := openTestDB(t)

	profileOne := Profile{UserID: "u-1", Name: "one"}
	profileTwo := Profile{UserID: "u-2", Name: "two"}
	require.NoError(t, db.Create(&profileOne).Error)
	require.NoError(t, db.Create(&profileTwo).Error)

	server := Server{Name: "pair", ProfileID: profileOne.ID}
	require.NoError(t, db.Create(&server).Error)

	m1 := Member{ProfileID: profileOne.ID, ServerID: server.ID}
	m2 := Member{ProfileID: profileTwo.ID, ServerID: server.ID}
	require.NoError(t, db.Create(&m1).Error)
	require.NoError(t, db.Create(&m2).Error)

	conversation := Conversation{MemberOneID: m1.ID, MemberTwoID: m2.ID}
	require.NoError(t, db.Create(&conversation).Error)

	dm := DirectMessage{Content: "psst", MemberID: m1.ID, ConversationID: conversation.ID}
	require.NoError(t, db.Create(&dm).Error)

	var got DirectMessage
	require.NoError(t, db.Preload("Member").Preload("Conversation").First(&got, "id = ?", dm.ID).Error)
	assert.Equal(t, m1.ID, got.Member.ID)
	assert.Equal(t, conversation.ID, got.Conversation.ID)
	assert.Equal(t, m2.ID, got.Conversation.MemberTwoID)
}

func TestMemberIsModerator(t *testing.T) {
	assert.True(t, (&Member{Role: ROLE_ADMIN}).IsModerator())
	assert.True(t, (&Member{Role: ROLE_MODERATOR}).IsModerator())
	assert.False(t, (&Member{Role: ROLE_GUEST}).IsModerator())
}

func TestValidation(t *testing.T) {
	assert.Error(t, (&Profile{}).Validate(), "profile name is required")
	assert.Error(t, (&Server{}).Validate(), "server name is required")
	assert.Error(t, (&Channel{}).Validate(), "channel name is required")
	assert.Error(t, (&Channel{Name: "audio", Type: "PIGEON"}).Validate(), "unknown channel type")
	assert.Error(t, (&Message{}).Validate(), "message content is required")
	assert.Error(t, (&User{Email: "not-an-email"}).Validate())

	assert.NoError(t, (&Channel{Name: "general", Type: CHANNEL_TEXT}).Validate())
	assert.NoError(t, (&User{Name: "ok", Email: "ok@example.com"}).Validate())
}
