package domain

import (
	"time"
)

type CircleGroup struct {
	ID        int64     `json:"id"`
	OwnerID   int64     `json:"ownerId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	// Joined owner profile
	OwnerUserName string `json:"ownerUserName,omitempty"`
	OwnerFullName string `json:"ownerFullName,omitempty"`
	OwnerAvatar   []byte `json:"-"`
}

type CircleGroupMember struct {
	ID            int64     `json:"id"`
	CircleGroupID int64     `json:"circleGroupId"`
	MemberID      int64     `json:"memberId"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
	// Joined member profile
	MemberUserName string `json:"memberUserName,omitempty"`
	MemberFullName string `json:"memberFullName,omitempty"`
	MemberAvatar   []byte `json:"-"`
}
