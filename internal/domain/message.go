package domain

import (
	"time"
)

// MaxBodyLen is the hard cap on message body length. Longer bodies are
// truncated at the service boundary before they reach storage.
const MaxBodyLen = 141

type GroupType int32

const (
	GroupTypePublic GroupType = 1
	GroupTypeCircle GroupType = 2
)

type Message struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"userId"`
	Body         *string   `json:"body,omitempty"`
	Image        []byte    `json:"-"`
	Likes        int32     `json:"likes"`
	MsgGroupType GroupType `json:"msgGroupType"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// TruncateBody caps body at MaxBodyLen characters. The cut is rune-aware so
// a multi-byte character is never split.
func TruncateBody(body string) string {
	runes := []rune(body)
	if len(runes) <= MaxBodyLen {
		return body
	}
	return string(runes[:MaxBodyLen])
}
