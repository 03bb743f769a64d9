package service

import (
	"time"

	"github.com/vblajic/chirper/internal/domain"
)

// MessageView is the external message shape. A broadcast target appears as a
// nested view of the same shape; targets never nest further, so the depth is
// capped at one by construction.
type MessageView struct {
	ID              int64               `json:"id"`
	UpdatedAt       time.Time           `json:"updatedAt"`
	Body            *string             `json:"body,omitempty"`
	Likes           int32               `json:"likes"`
	BroadcastingMsg *MessageView        `json:"broadcastingMsg,omitempty"`
	Profile         domain.ProfileShort `json:"profile"`
}

// NewMessageView maps a composed feed entry to its external shape.
func NewMessageView(entry domain.FeedEntry) MessageView {
	view := MessageView{
		ID:        entry.ID,
		UpdatedAt: entry.UpdatedAt,
		Body:      entry.Body,
		Likes:     entry.Likes,
		Profile: domain.ProfileShort{
			ID:       entry.UserID,
			UserName: entry.UserName,
			FullName: entry.FullName,
		},
	}
	if b := entry.Broadcast; b != nil {
		view.BroadcastingMsg = &MessageView{
			ID:        b.ID,
			UpdatedAt: b.UpdatedAt,
			Body:      b.Body,
			Likes:     b.Likes,
			Profile: domain.ProfileShort{
				ID:       b.UserID,
				UserName: b.UserName,
				FullName: b.FullName,
			},
		}
	}
	return view
}
