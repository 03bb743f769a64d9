package domain

import (
	"time"
)

// FeedEntry is the composed read model for a single feed row: a message, its
// author, and the broadcast target when the message re-shares another one.
// It is never persisted; repositories assemble it from joined rows.
type FeedEntry struct {
	ID           int64
	UpdatedAt    time.Time
	Body         *string
	Likes        int32
	Image        []byte
	MsgGroupType GroupType
	UserID       int64
	UserName     string
	FullName     string
	Avatar       []byte

	// Broadcast is nil unless the message carries a resolvable broadcast
	// link. The target's fields are either all present or all absent.
	Broadcast *FeedBroadcast
}

// FeedBroadcast is the resolved broadcast target of a feed entry: the
// re-shared message plus its author. Targets never nest further.
type FeedBroadcast struct {
	ID           int64
	UpdatedAt    time.Time
	Body         *string
	Likes        int32
	Image        []byte
	MsgGroupType GroupType
	UserID       int64
	UserName     string
	FullName     string
	Avatar       []byte
}
