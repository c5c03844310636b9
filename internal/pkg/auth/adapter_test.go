package auth

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/ManuelReschke/ChatNest/app/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// Named shared in-memory database so every pooled connection sees
	// the same store.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(models.AllModels()...))

	return db
}

func TestCreateUserGeneratesIDAndRoundTrips(t *testing.T) {
	a := NewGormAdapter(openTestDB(t))

	verified := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	created, err := a.CreateUser(&models.User{
		Name:          "alice",
		Email:         "alice@example.com",
		EmailVerified: &verified,
		Image:         "https://cdn.example.com/alice.png",
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	got, err := a.GetUser(created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "alice", got.Name)
	assert.Equal(t, "alice@example.com", got.Email)
	assert.Equal(t, "https://cdn.example.com/alice.png", got.Image)
	require.NotNil(t, got.EmailVerified)
	assert.True(t, got.EmailVerified.Equal(verified))
}

func TestGetUserNotFoundIsNotAnError(t *testing.T) {
	a := NewGormAdapter(openTestDB(t))

	got, err := a.GetUser("does-not-exist")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestGetUserByEmail(t *testing.T) {
	a := NewGormAdapter(openTestDB(t))

	_, err := a.CreateUser(&models.User{Name: "bob", Email: "bob@example.com"})
	require.NoError(t, err)

	got, err := a.GetUserByEmail("bob@example.com")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "bob", got.Name)

	missing, err := a.GetUserByEmail("nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestUpdateUserWithoutIDFailsBeforeMutation(t *testing.T) {
	db := openTestDB(t)
	a := NewGormAdapter(db)

	_, err := a.CreateUser(&models.User{Name: "carol", Email: "carol@example.com"})
	require.NoError(t, err)

	_, err = a.UpdateUser(&models.User{Name: "renamed"})
	require.ErrorIs(t, err, ErrMissingUserID)

	// No row may have been touched
	var count int64
	require.NoError(t, db.Model(&models.User{}).Where("name = ?", "renamed").Count(&count).Error)
	assert.Zero(t, count)
}

func TestUpdateUserAppliesPartialFields(t *testing.T) {
	a := NewGormAdapter(openTestDB(t))

	created, err := a.CreateUser(&models.User{Name: "dave", Email: "dave@example.com"})
	require.NoError(t, err)

	verified := time.Now().UTC().Truncate(time.Second)
	updated, err := a.UpdateUser(&models.User{
		ID:            created.ID,
		Name:          "david",
		EmailVerified: &verified,
	})
	require.NoError(t, err)
	require.NotNil(t, updated)

	assert.Equal(t, "david", updated.Name)
	assert.Equal(t, "dave@example.com", updated.Email, "untouched field must survive")
	require.NotNil(t, updated.EmailVerified)
}

func TestGetUserByAccount(t *testing.T) {
	a := NewGormAdapter(openTestDB(t))

	user, err := a.CreateUser(&models.User{Name: "erin", Email: "erin@example.com"})
	require.NoError(t, err)

	require.NoError(t, a.LinkAccount(&models.Account{
		Provider:          "github",
		ProviderAccountID: "gh-123",
		UserID:            user.ID,
		Type:              "oauth",
		AccessToken:       "tok",
	}))

	got, err := a.GetUserByAccount("github", "gh-123")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, user.ID, got.ID)

	// Missing account row
	got, err = a.GetUserByAccount("github", "gh-999")
	require.NoError(t, err)
	assert.Nil(t, got)

	// Account row exists but its user does not
	require.NoError(t, a.LinkAccount(&models.Account{
		Provider:          "google",
		ProviderAccountID: "goog-1",
		UserID:            "orphaned-user-id",
	}))
	got, err = a.GetUserByAccount("google", "goog-1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestUnlinkAccount(t *testing.T) {
	db := openTestDB(t)
	a := NewGormAdapter(db)

	user, err := a.CreateUser(&models.User{Name: "frank", Email: "frank@example.com"})
	require.NoError(t, err)
	require.NoError(t, a.LinkAccount(&models.Account{
		Provider:          "discord",
		ProviderAccountID: "dc-1",
		UserID:            user.ID,
	}))

	require.NoError(t, a.UnlinkAccount("discord", "dc-1"))

	var count int64
	require.NoError(t, db.Model(&models.Account{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestSessionLifecycle(t *testing.T) {
	a := NewGormAdapter(openTestDB(t))

	user, err := a.CreateUser(&models.User{Name: "grace", Email: "grace@example.com"})
	require.NoError(t, err)

	expires := time.Now().Add(24 * time.Hour).UTC().Truncate(time.Second)
	session, err := a.CreateSession(&models.Session{
		SessionToken: "tok-1",
		UserID:       user.ID,
		Expires:      expires,
	})
	require.NoError(t, err)
	assert.Equal(t, "tok-1", session.SessionToken)

	gotSession, gotUser, err := a.GetSessionAndUser("tok-1")
	require.NoError(t, err)
	require.NotNil(t, gotSession)
	require.NotNil(t, gotUser)
	assert.Equal(t, user.ID, gotUser.ID)
	assert.Equal(t, user.ID, gotSession.UserID)

	later := expires.Add(24 * time.Hour)
	updated, err := a.UpdateSession(&models.Session{SessionToken: "tok-1", Expires: later})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.True(t, updated.Expires.After(expires))

	snapshot, err := a.DeleteSession("tok-1")
	require.NoError(t, err)
	require.NotNil(t, snapshot)
	assert.Equal(t, user.ID, snapshot.UserID)

	gotSession, gotUser, err = a.GetSessionAndUser("tok-1")
	require.NoError(t, err)
	assert.Nil(t, gotSession)
	assert.Nil(t, gotUser)
}

func TestGetSessionAndUserMissingSession(t *testing.T) {
	a := NewGormAdapter(openTestDB(t))

	session, user, err := a.GetSessionAndUser("no-such-token")
	require.NoError(t, err)
	assert.Nil(t, session)
	assert.Nil(t, user)
}

func TestUpdateSessionOnVanishedRow(t *testing.T) {
	a := NewGormAdapter(openTestDB(t))

	updated, err := a.UpdateSession(&models.Session{
		SessionToken: "gone",
		Expires:      time.Now().Add(time.Hour),
	})
	require.NoError(t, err)
	assert.Nil(t, updated)
}

func TestDeleteSessionNonexistentMutatesNothing(t *testing.T) {
	db := openTestDB(t)
	a := NewGormAdapter(db)

	user, err := a.CreateUser(&models.User{Name: "henry", Email: "henry@example.com"})
	require.NoError(t, err)
	_, err = a.CreateSession(&models.Session{
		SessionToken: "keep-me",
		UserID:       user.ID,
		Expires:      time.Now().Add(time.Hour),
	})
	require.NoError(t, err)

	snapshot, err := a.DeleteSession("never-existed")
	require.NoError(t, err)
	assert.Nil(t, snapshot)

	var count int64
	require.NoError(t, db.Model(&models.Session{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestVerificationTokenConsumedExactlyOnce(t *testing.T) {
	a := NewGormAdapter(openTestDB(t))

	expires := time.Now().Add(time.Hour).UTC().Truncate(time.Second)
	created, err := a.CreateVerificationToken(&models.VerificationToken{
		Identifier: "alice@example.com",
		Token:      "magic-token",
		Expires:    expires,
	})
	require.NoError(t, err)
	assert.Equal(t, "magic-token", created.Token)

	first, err := a.UseVerificationToken("alice@example.com", "magic-token")
	require.NoError(t, err)
	require.NotNil(t, first)
	assert.Equal(t, "alice@example.com", first.Identifier)

	_, err = a.UseVerificationToken("alice@example.com", "magic-token")
	require.ErrorIs(t, err, ErrTokenNotFound)
}

func TestUseVerificationTokenUnknownPair(t *testing.T) {
	a := NewGormAdapter(openTestDB(t))

	_, err := a.UseVerificationToken("nobody@example.com", "nope")
	require.ErrorIs(t, err, ErrTokenNotFound)
}

func TestDeleteUser(t *testing.T) {
	a := NewGormAdapter(openTestDB(t))

	user, err := a.CreateUser(&models.User{Name: "iris", Email: "iris@example.com"})
	require.NoError(t, err)

	snapshot, err := a.DeleteUser(user.ID)
	require.NoError(t, err)
	require.NotNil(t, snapshot)
	assert.Equal(t, "iris", snapshot.Name)

	got, err := a.GetUser(user.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	// Second delete finds nothing
	snapshot, err = a.DeleteUser(user.ID)
	require.NoError(t, err)
	assert.Nil(t, snapshot)
}
