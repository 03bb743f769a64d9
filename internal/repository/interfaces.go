package repository

import (
	"context"
	"time"

	"github.com/vblajic/chirper/internal/domain"
)

type ProfileRepository interface {
	Create(ctx context.Context, profile *domain.Profile) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Profile, error)
	GetByUserName(ctx context.Context, userName string) (*domain.Profile, error)
	UpdateAvatar(ctx context.Context, id int64, avatar []byte) error
	Follow(ctx context.Context, followerID, followingID int64) (int64, error)
}

type MessageRepository interface {
	// Create inserts the message and, when broadcastingMsgID is set, its
	// broadcast link in one transaction.
	Create(ctx context.Context, userID int64, body string, groupType domain.GroupType, broadcastingMsgID *int64) (int64, error)
	// CreateResponse inserts the message and its response link to
	// originalMsgID in one transaction.
	CreateResponse(ctx context.Context, userID int64, body string, groupType domain.GroupType, originalMsgID int64) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.FeedEntry, error)
	// ListByFollowing returns messages authored by profiles the follower
	// follows, strictly older than lastUpdatedAt, newest first.
	ListByFollowing(ctx context.Context, followerID int64, lastUpdatedAt time.Time, limit int) ([]domain.FeedEntry, error)
}

type CircleRepository interface {
	CreateCircle(ctx context.Context, ownerID int64) (int64, error)
	AddMember(ctx context.Context, circleID, memberID int64) (int64, error)
	GetCircle(ctx context.Context, id int64) (*domain.CircleGroup, error)
	GetMember(ctx context.Context, id int64) (*domain.CircleGroupMember, error)
}
