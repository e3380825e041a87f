package users_models

import (
	"encoding/base64"
	"time"
)

// AccessTokenLength is the size of the raw session secret. The secret
// is generated once at registration and never rotated; it travels as
// its base64 encoding and is compared by exact byte equality.
const AccessTokenLength = 16

type User struct {
	UID        int64   `json:"uid"        gorm:"column:uid;primaryKey;autoIncrement"`
	FirstName  string  `json:"firstName"  gorm:"column:first_name;size:32"`
	MiddleName *string `json:"middleName" gorm:"column:middle_name;size:32"`
	LastName   *string `json:"lastName"   gorm:"column:last_name;size:32"`
	Email      string  `json:"email"      gorm:"column:email;size:254;uniqueIndex"`
	// bcrypt hash, never the plaintext
	Password    []byte    `json:"-"       gorm:"column:password"`
	Picture     *string   `json:"picture" gorm:"column:picture;size:36"`
	AccessToken []byte    `json:"-"       gorm:"column:access_token"`
	CreatedAt   time.Time `json:"createdAt" gorm:"column:created_at"`
}

func (User) TableName() string {
	return "users"
}

// B64AccessToken returns the wire form of the session secret.
func (u *User) B64AccessToken() string {
	return base64.StdEncoding.EncodeToString(u.AccessToken)
}
