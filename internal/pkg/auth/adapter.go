// Package auth implements the persistence contract the identity
// framework requires: CRUD over users, OAuth accounts, sessions and
// verification tokens. Lookups that find nothing return nil without an
// error; callers must treat that as a normal outcome.
package auth

import (
	"errors"

	"github.com/ManuelReschke/ChatNest/app/models"
)

var (
	// ErrMissingUserID is returned by UpdateUser before any statement
	// is issued when the caller did not supply an id.
	ErrMissingUserID = errors.New("missing id")

	// ErrTokenNotFound is returned by UseVerificationToken whenever
	// consumption fails, including a second consumption of the same
	// token. The underlying cause is deliberately masked.
	ErrTokenNotFound = errors.New("no verification token found")
)

// Adapter is the full operation set the identity framework calls into.
// One method per contract operation, enforced at compile time.
type Adapter interface {
	CreateUser(user *models.User) (*models.User, error)
	GetUser(id string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByAccount(provider, providerAccountID string) (*models.User, error)
	UpdateUser(user *models.User) (*models.User, error)
	DeleteUser(id string) (*models.User, error)

	LinkAccount(account *models.Account) error
	UnlinkAccount(provider, providerAccountID string) error

	CreateSession(session *models.Session) (*models.Session, error)
	GetSessionAndUser(sessionToken string) (*models.Session, *models.User, error)
	UpdateSession(session *models.Session) (*models.Session, error)
	DeleteSession(sessionToken string) (*models.Session, error)

	CreateVerificationToken(token *models.VerificationToken) (*models.VerificationToken, error)
	UseVerificationToken(identifier, token string) (*models.VerificationToken, error)
}
