package handlers

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/vblajic/chirper/internal/domain"
)

// memStore backs in-memory stand-ins for the Postgres repositories, used to
// drive the transport stack end to end. ShouldFail simulates storage
// failures.
type memStore struct {
	mu     sync.Mutex
	nextID int64
	base   time.Time

	profiles   map[int64]*domain.Profile
	follows    map[int64][]int64 // followerID -> followingIDs
	messages   map[int64]*memMessage
	broadcasts map[int64]int64 // mainMsgID -> target message id
	responses  map[int64]int64 // respondingMsgID -> original message id
	circles    map[int64]*domain.CircleGroup
	members    map[int64]*domain.CircleGroupMember

	ShouldFail bool
}

type memMessage struct {
	id        int64
	userID    int64
	body      string
	groupType domain.GroupType
	updatedAt time.Time
}

func newMemStore() *memStore {
	return &memStore{
		base:       time.Now().Add(-24 * time.Hour),
		profiles:   make(map[int64]*domain.Profile),
		follows:    make(map[int64][]int64),
		messages:   make(map[int64]*memMessage),
		broadcasts: make(map[int64]int64),
		responses:  make(map[int64]int64),
		circles:    make(map[int64]*domain.CircleGroup),
		members:    make(map[int64]*domain.CircleGroupMember),
	}
}

var errMemFail = errors.New("memstore: simulated failure")

func (s *memStore) id() int64 {
	s.nextID++
	return s.nextID
}

// stamp hands out strictly increasing timestamps so feed ordering is
// deterministic.
func (s *memStore) stamp() time.Time {
	return s.base.Add(time.Duration(s.nextID) * time.Second)
}

func (s *memStore) newMessage(userID int64, body string, groupType domain.GroupType) *memMessage {
	msg := &memMessage{
		id:        s.id(),
		userID:    userID,
		body:      body,
		groupType: groupType,
	}
	msg.updatedAt = s.stamp()
	s.messages[msg.id] = msg
	return msg
}

func (s *memStore) entryFor(msg *memMessage) domain.FeedEntry {
	author := s.profiles[msg.userID]
	body := msg.body
	entry := domain.FeedEntry{
		ID:           msg.id,
		UpdatedAt:    msg.updatedAt,
		Body:         &body,
		MsgGroupType: msg.groupType,
		UserID:       msg.userID,
		UserName:     author.UserName,
		FullName:     author.FullName,
	}
	if targetID, ok := s.broadcasts[msg.id]; ok {
		if target, ok := s.messages[targetID]; ok {
			targetAuthor := s.profiles[target.userID]
			targetBody := target.body
			entry.Broadcast = &domain.FeedBroadcast{
				ID:           target.id,
				UpdatedAt:    target.updatedAt,
				Body:         &targetBody,
				MsgGroupType: target.groupType,
				UserID:       target.userID,
				UserName:     targetAuthor.UserName,
				FullName:     targetAuthor.FullName,
			}
		}
	}
	return entry
}

// --- ProfileRepository ---

type memProfileRepo struct{ store *memStore }

func (r *memProfileRepo) Create(ctx context.Context, profile *domain.Profile) (int64, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ShouldFail {
		return 0, errMemFail
	}
	p := *profile
	p.ID = s.id()
	p.CreatedAt = s.stamp()
	p.UpdatedAt = p.CreatedAt
	s.profiles[p.ID] = &p
	return p.ID, nil
}

func (r *memProfileRepo) GetByID(ctx context.Context, id int64) (*domain.Profile, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ShouldFail {
		return nil, errMemFail
	}
	return s.profiles[id], nil
}

func (r *memProfileRepo) GetByUserName(ctx context.Context, userName string) (*domain.Profile, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.profiles {
		if p.UserName == userName {
			return p, nil
		}
	}
	return nil, nil
}

func (r *memProfileRepo) UpdateAvatar(ctx context.Context, id int64, avatar []byte) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ShouldFail {
		return errMemFail
	}
	if p, ok := s.profiles[id]; ok {
		p.Avatar = avatar
	}
	return nil
}

func (r *memProfileRepo) Follow(ctx context.Context, followerID, followingID int64) (int64, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ShouldFail {
		return 0, errMemFail
	}
	s.follows[followerID] = append(s.follows[followerID], followingID)
	return s.id(), nil
}

// --- MessageRepository ---

type memMessageRepo struct{ store *memStore }

func (r *memMessageRepo) Create(ctx context.Context, userID int64, body string, groupType domain.GroupType, broadcastingMsgID *int64) (int64, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ShouldFail {
		return 0, errMemFail
	}
	msg := s.newMessage(userID, body, groupType)
	if broadcastingMsgID != nil {
		s.broadcasts[msg.id] = *broadcastingMsgID
	}
	return msg.id, nil
}

func (r *memMessageRepo) CreateResponse(ctx context.Context, userID int64, body string, groupType domain.GroupType, originalMsgID int64) (int64, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ShouldFail {
		return 0, errMemFail
	}
	msg := s.newMessage(userID, body, groupType)
	s.responses[msg.id] = originalMsgID
	return msg.id, nil
}

func (r *memMessageRepo) GetByID(ctx context.Context, id int64) (*domain.FeedEntry, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ShouldFail {
		return nil, errMemFail
	}
	msg, ok := s.messages[id]
	if !ok {
		return nil, nil
	}
	entry := s.entryFor(msg)
	return &entry, nil
}

func (r *memMessageRepo) ListByFollowing(ctx context.Context, followerID int64, lastUpdatedAt time.Time, limit int) ([]domain.FeedEntry, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ShouldFail {
		return nil, errMemFail
	}

	followed := make(map[int64]bool)
	for _, id := range s.follows[followerID] {
		followed[id] = true
	}

	var page []*memMessage
	for _, msg := range s.messages {
		if followed[msg.userID] && msg.updatedAt.Before(lastUpdatedAt) {
			page = append(page, msg)
		}
	}
	sort.Slice(page, func(i, j int) bool {
		return page[i].updatedAt.After(page[j].updatedAt)
	})
	if len(page) > limit {
		page = page[:limit]
	}

	entries := make([]domain.FeedEntry, 0, len(page))
	for _, msg := range page {
		entries = append(entries, s.entryFor(msg))
	}
	return entries, nil
}

// --- CircleRepository ---

type memCircleRepo struct{ store *memStore }

func (r *memCircleRepo) CreateCircle(ctx context.Context, ownerID int64) (int64, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ShouldFail {
		return 0, errMemFail
	}
	c := &domain.CircleGroup{ID: s.id(), OwnerID: ownerID}
	if owner, ok := s.profiles[ownerID]; ok {
		c.OwnerUserName = owner.UserName
		c.OwnerFullName = owner.FullName
	}
	s.circles[c.ID] = c
	return c.ID, nil
}

func (r *memCircleRepo) AddMember(ctx context.Context, circleID, memberID int64) (int64, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ShouldFail {
		return 0, errMemFail
	}
	m := &domain.CircleGroupMember{ID: s.id(), CircleGroupID: circleID, MemberID: memberID}
	if member, ok := s.profiles[memberID]; ok {
		m.MemberUserName = member.UserName
		m.MemberFullName = member.FullName
	}
	s.members[m.ID] = m
	return m.ID, nil
}

func (r *memCircleRepo) GetCircle(ctx context.Context, id int64) (*domain.CircleGroup, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.circles[id], nil
}

func (r *memCircleRepo) GetMember(ctx context.Context, id int64) (*domain.CircleGroupMember, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.members[id], nil
}
