package oauth

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/markbates/goth"

	"github.com/ManuelReschke/ChatNest/app/models"
	"github.com/ManuelReschke/ChatNest/internal/pkg/auth"
)

// CompleteLogin turns a completed provider flow into an application
// user and session using only the adapter contract. The lookup order
// is: existing linked account, then email match, then a new user.
func CompleteLogin(a auth.Adapter, gu goth.User, sessionTTL time.Duration) (*models.User, *models.Session, error) {
	user, err := a.GetUserByAccount(gu.Provider, gu.UserID)
	if err != nil {
		return nil, nil, err
	}

	if user == nil {
		if gu.Email != "" {
			user, err = a.GetUserByEmail(gu.Email)
			if err != nil {
				return nil, nil, err
			}
		}

		if user == nil {
			email := gu.Email
			if email == "" {
				// Ensure a non-empty email so downstream email lookups stay meaningful
				email = fmt.Sprintf("%s_%s@%s.oauth.local", gu.Provider, gu.UserID, gu.Provider)
			}
			user, err = a.CreateUser(&models.User{
				Name:  firstNonEmpty(gu.Name, gu.NickName, gu.Email, "User"),
				Email: email,
				Image: gu.AvatarURL,
			})
			if err != nil {
				return nil, nil, err
			}
		}

		if err := a.LinkAccount(accountFromGoth(user.ID, gu)); err != nil {
			return nil, nil, err
		}
	} else {
		// Known account: refresh the stored token material
		if err := a.UnlinkAccount(gu.Provider, gu.UserID); err != nil {
			return nil, nil, err
		}
		if err := a.LinkAccount(accountFromGoth(user.ID, gu)); err != nil {
			return nil, nil, err
		}
	}

	token, err := newSessionToken()
	if err != nil {
		return nil, nil, err
	}
	session, err := a.CreateSession(&models.Session{
		SessionToken: token,
		UserID:       user.ID,
		Expires:      time.Now().Add(sessionTTL),
	})
	if err != nil {
		return nil, nil, err
	}

	return user, session, nil
}

func accountFromGoth(userID string, gu goth.User) *models.Account {
	var exp *int64
	if !gu.ExpiresAt.IsZero() {
		unix := gu.ExpiresAt.Unix()
		exp = &unix
	}

	return &models.Account{
		Provider:          gu.Provider,
		ProviderAccountID: gu.UserID,
		UserID:            userID,
		Type:              "oauth",
		AccessToken:       gu.AccessToken,
		RefreshToken:      gu.RefreshToken,
		ExpiresAt:         exp,
		IDToken:           gu.IDToken,
	}
}

func newSessionToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
