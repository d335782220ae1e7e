package model

import "time"

type User struct {
	ID           string    `json:"_id"`
	Fullname     string    `json:"fullname"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Avatar       string    `json:"avatar"`
	AvatarID     string    `json:"-"`
	RefreshToken string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// UserInfo is the public projection joined into blog listings and
// returned from profile endpoints. The password hash and blob id
// never leave the store.
type UserInfo struct {
	ID       string `json:"_id"`
	Fullname string `json:"fullname"`
	Email    string `json:"email"`
	Avatar   string `json:"avatar"`
}

func (u *User) Info() UserInfo {
	return UserInfo{
		ID:       u.ID,
		Fullname: u.Fullname,
		Email:    u.Email,
		Avatar:   u.Avatar,
	}
}
