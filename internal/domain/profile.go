package domain

import (
	"time"
)

type Profile struct {
	ID          int64     `json:"id"`
	UserName    string    `json:"userName"`
	FullName    string    `json:"fullName"`
	Description string    `json:"description"`
	Region      *string   `json:"region,omitempty"`
	MainURL     *string   `json:"mainUrl,omitempty"`
	Avatar      []byte    `json:"avatar,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ProfileShort is the author summary embedded in feed entries.
type ProfileShort struct {
	ID       int64  `json:"id"`
	UserName string `json:"userName"`
	FullName string `json:"fullName"`
}

func (p *Profile) Short() ProfileShort {
	return ProfileShort{ID: p.ID, UserName: p.UserName, FullName: p.FullName}
}

type Follow struct {
	ID          int64     `json:"id"`
	FollowerID  int64     `json:"followerId"`
	FollowingID int64     `json:"followingId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
