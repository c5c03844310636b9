package models

import "time"

// Account stores external OAuth provider identities linked to a user.
// A user may hold one account per provider; the (provider,
// provider_account_id) pair is the primary key.
type Account struct {
	Provider          string    `gorm:"primaryKey;type:varchar(50)" json:"provider"`
	ProviderAccountID string    `gorm:"primaryKey;type:varchar(191)" json:"provider_account_id"`
	UserID            string    `gorm:"type:char(36);index" json:"user_id"`
	Type              string    `gorm:"type:varchar(50)" json:"type"`
	RefreshToken      string    `gorm:"type:text" json:"-"`
	AccessToken       string    `gorm:"type:text" json:"-"`
	ExpiresAt         *int64    `gorm:"default:null" json:"expires_at,omitempty"`
	TokenType         string    `gorm:"type:varchar(50)" json:"token_type"`
	Scope             string    `gorm:"type:varchar(255)" json:"scope"`
	IDToken           string    `gorm:"type:text" json:"-"`
	SessionState      string    `gorm:"type:varchar(255)" json:"session_state"`
	CreatedAt         time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (Account) TableName() string {
	return TablePrefix + "accounts"
}
