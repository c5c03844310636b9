package auth

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ManuelReschke/ChatNest/app/models"
)

// GormAdapter implements Adapter over an injected *gorm.DB. Every
// mutate-then-reread pair runs inside one transaction so the re-read
// always observes the row just written, even under concurrent calls.
type GormAdapter struct {
	db *gorm.DB
}

// NewGormAdapter creates an adapter bound to the given handle. The
// caller owns the handle's lifecycle.
func NewGormAdapter(db *gorm.DB) *GormAdapter {
	return &GormAdapter{db: db}
}

var _ Adapter = (*GormAdapter)(nil)

// CreateUser inserts the user under a freshly generated id and returns
// the re-read row.
func (a *GormAdapter) CreateUser(user *models.User) (*models.User, error) {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}

	created := &models.User{}
	err := a.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		return tx.First(created, "id = ?", user.ID).Error
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (a *GormAdapter) GetUser(id string) (*models.User, error) {
	var user models.User
	err := a.db.First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (a *GormAdapter) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	err := a.db.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByAccount resolves (provider, providerAccountID) to the owning
// user. A missing account and an account whose user row is gone both
// yield nil.
func (a *GormAdapter) GetUserByAccount(provider, providerAccountID string) (*models.User, error) {
	var account models.Account
	err := a.db.Where("provider = ? AND provider_account_id = ?", provider, providerAccountID).
		First(&account).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var user models.User
	err = a.db.First(&user, "id = ?", account.UserID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateUser applies the non-empty fields of user to the row with
// user.ID and returns the re-read row. Fails with ErrMissingUserID
// before touching the store when no id was supplied.
func (a *GormAdapter) UpdateUser(user *models.User) (*models.User, error) {
	if user.ID == "" {
		return nil, ErrMissingUserID
	}

	changes := map[string]interface{}{}
	if user.Name != "" {
		changes["name"] = user.Name
	}
	if user.Email != "" {
		changes["email"] = user.Email
	}
	if user.Image != "" {
		changes["image"] = user.Image
	}
	if user.EmailVerified != nil {
		changes["email_verified"] = user.EmailVerified
	}

	updated := &models.User{}
	err := a.db.Transaction(func(tx *gorm.DB) error {
		if len(changes) > 0 {
			if err := tx.Model(&models.User{}).Where("id = ?", user.ID).Updates(changes).Error; err != nil {
				return err
			}
		}
		return tx.First(updated, "id = ?", user.ID).Error
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteUser removes the row and returns its pre-deletion snapshot, or
// nil when no such user exists.
func (a *GormAdapter) DeleteUser(id string) (*models.User, error) {
	snapshot := &models.User{}
	err := a.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(snapshot, "id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.User{}, "id = ?", id).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return snapshot, nil
}

func (a *GormAdapter) LinkAccount(account *models.Account) error {
	return a.db.Create(account).Error
}

func (a *GormAdapter) UnlinkAccount(provider, providerAccountID string) error {
	return a.db.Where("provider = ? AND provider_account_id = ?", provider, providerAccountID).
		Delete(&models.Account{}).Error
}

func (a *GormAdapter) CreateSession(session *models.Session) (*models.Session, error) {
	created := &models.Session{}
	err := a.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(session).Error; err != nil {
			return err
		}
		return tx.First(created, "session_token = ?", session.SessionToken).Error
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// GetSessionAndUser joins the session to its user. Both pointers are
// nil when either row is missing.
func (a *GormAdapter) GetSessionAndUser(sessionToken string) (*models.Session, *models.User, error) {
	var session models.Session
	err := a.db.First(&session, "session_token = ?", sessionToken).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, err
	}

	var user models.User
	err = a.db.First(&user, "id = ?", session.UserID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, err
	}
	return &session, &user, nil
}

// UpdateSession updates by session token and returns the re-read row,
// or nil when the row vanished.
func (a *GormAdapter) UpdateSession(session *models.Session) (*models.Session, error) {
	changes := map[string]interface{}{}
	if !session.Expires.IsZero() {
		changes["expires"] = session.Expires
	}
	if session.UserID != "" {
		changes["user_id"] = session.UserID
	}

	updated := &models.Session{}
	err := a.db.Transaction(func(tx *gorm.DB) error {
		if len(changes) > 0 {
			if err := tx.Model(&models.Session{}).
				Where("session_token = ?", session.SessionToken).
				Updates(changes).Error; err != nil {
				return err
			}
		}
		return tx.First(updated, "session_token = ?", session.SessionToken).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteSession removes the session and returns its pre-deletion
// snapshot. A nonexistent token yields nil and mutates nothing.
func (a *GormAdapter) DeleteSession(sessionToken string) (*models.Session, error) {
	snapshot := &models.Session{}
	err := a.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(snapshot, "session_token = ?", sessionToken).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Session{}, "session_token = ?", sessionToken).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return snapshot, nil
}

func (a *GormAdapter) CreateVerificationToken(token *models.VerificationToken) (*models.VerificationToken, error) {
	created := &models.VerificationToken{}
	err := a.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(token).Error; err != nil {
			return err
		}
		return tx.Where("identifier = ? AND token = ?", token.Identifier, token.Token).
			First(created).Error
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// UseVerificationToken consumes the token: read, delete, return the
// pre-deletion snapshot. Any failure, including a second consumption
// of the same pair, surfaces as ErrTokenNotFound.
func (a *GormAdapter) UseVerificationToken(identifier, token string) (*models.VerificationToken, error) {
	snapshot := &models.VerificationToken{}
	err := a.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("identifier = ? AND token = ?", identifier, token).
			First(snapshot).Error; err != nil {
			return err
		}
		res := tx.Where("identifier = ? AND token = ?", identifier, token).
			Delete(&models.VerificationToken{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		return nil, ErrTokenNotFound
	}
	return snapshot, nil
}
