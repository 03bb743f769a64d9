package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/vblajic/chirper/internal/domain"
	"github.com/vblajic/chirper/internal/repository"
)

// DefaultPageSize is used when a feed query does not name one.
const DefaultPageSize = 10

type MessageService struct {
	messageRepo repository.MessageRepository
	log         *zap.Logger
}

func NewMessageService(messageRepo repository.MessageRepository, log *zap.Logger) *MessageService {
	return &MessageService{messageRepo: messageRepo, log: log}
}

type CreateMessageInput struct {
	UserID            int64            `json:"userId"`
	Body              string           `json:"body"`
	GroupType         domain.GroupType `json:"groupType"`
	BroadcastingMsgID *int64           `json:"broadcastingMsgId,omitempty"`
}

type CreateResponseInput struct {
	UserID        int64            `json:"userId"`
	Body          string           `json:"body"`
	GroupType     domain.GroupType `json:"groupType"`
	OriginalMsgID int64            `json:"originalMsgId"`
}

type FeedQueryInput struct {
	FollowerID    int64     `json:"followerId"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	PageSize      *int      `json:"pageSize,omitempty"`
}

// Create truncates the body and persists the message together with its
// optional broadcast link.
func (s *MessageService) Create(ctx context.Context, input CreateMessageInput) (int64, error) {
	body := domain.TruncateBody(input.Body)

	id, err := s.messageRepo.Create(ctx, input.UserID, body, input.GroupType, input.BroadcastingMsgID)
	if err != nil {
		s.log.Error("create message", zap.Error(err))
		return 0, Classify(err)
	}
	return id, nil
}

func (s *MessageService) CreateResponse(ctx context.Context, input CreateResponseInput) (int64, error) {
	body := domain.TruncateBody(input.Body)

	id, err := s.messageRepo.CreateResponse(ctx, input.UserID, body, input.GroupType, input.OriginalMsgID)
	if err != nil {
		s.log.Error("create response message", zap.Error(err))
		return 0, Classify(err)
	}
	return id, nil
}

// Get returns nil without error when no message has the given id.
func (s *MessageService) Get(ctx context.Context, id int64) (*MessageView, error) {
	entry, err := s.messageRepo.GetByID(ctx, id)
	if err != nil {
		s.log.Error("get message", zap.Int64("id", id), zap.Error(err))
		return nil, Classify(err)
	}
	if entry == nil {
		return nil, nil
	}
	view := NewMessageView(*entry)
	return &view, nil
}

// Feed returns the follower's reverse-chronological page of messages from
// followed profiles, strictly older than the supplied cursor.
func (s *MessageService) Feed(ctx context.Context, input FeedQueryInput) ([]MessageView, error) {
	pageSize := DefaultPageSize
	if input.PageSize != nil && *input.PageSize > 0 {
		pageSize = *input.PageSize
	}

	entries, err := s.messageRepo.ListByFollowing(ctx, input.FollowerID, input.LastUpdatedAt, pageSize)
	if err != nil {
		s.log.Error("query feed", zap.Int64("followerId", input.FollowerID), zap.Error(err))
		return nil, Classify(err)
	}

	views := make([]MessageView, 0, len(entries))
	for _, entry := range entries {
		views = append(views, NewMessageView(entry))
	}
	return views, nil
}
