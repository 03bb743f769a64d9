package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/vblajic/chirper/internal/domain"
	"github.com/vblajic/chirper/internal/repository"
)

type ProfileService struct {
	profileRepo repository.ProfileRepository
	log         *zap.Logger
}

func NewProfileService(profileRepo repository.ProfileRepository, log *zap.Logger) *ProfileService {
	return &ProfileService{profileRepo: profileRepo, log: log}
}

type CreateProfileInput struct {
	UserName    string
	FullName    string
	Description string
	Region      *string
	MainURL     *string
	Avatar      []byte
}

func (s *ProfileService) Create(ctx context.Context, input CreateProfileInput) (int64, error) {
	profile := &domain.Profile{
		UserName:    input.UserName,
		FullName:    input.FullName,
		Description: input.Description,
		Region:      input.Region,
		MainURL:     input.MainURL,
		Avatar:      input.Avatar,
	}

	id, err := s.profileRepo.Create(ctx, profile)
	if err != nil {
		s.log.Error("create profile", zap.Error(err))
		return 0, Classify(err)
	}
	return id, nil
}

// Get returns nil without error when no profile has the given id.
func (s *ProfileService) Get(ctx context.Context, id int64) (*domain.Profile, error) {
	profile, err := s.profileRepo.GetByID(ctx, id)
	if err != nil {
		s.log.Error("get profile", zap.Int64("id", id), zap.Error(err))
		return nil, Classify(err)
	}
	return profile, nil
}

func (s *ProfileService) GetByUserName(ctx context.Context, userName string) (*domain.Profile, error) {
	profile, err := s.profileRepo.GetByUserName(ctx, userName)
	if err != nil {
		s.log.Error("get profile by user name", zap.Error(err))
		return nil, Classify(err)
	}
	return profile, nil
}

func (s *ProfileService) UpdateAvatar(ctx context.Context, id int64, avatar []byte) error {
	if err := s.profileRepo.UpdateAvatar(ctx, id, avatar); err != nil {
		s.log.Error("update avatar", zap.Int64("id", id), zap.Error(err))
		return Classify(err)
	}
	return nil
}

// Follow records a directed follow edge and returns its id. Duplicate edges
// are not checked for.
func (s *ProfileService) Follow(ctx context.Context, followerID, followingID int64) (int64, error) {
	id, err := s.profileRepo.Follow(ctx, followerID, followingID)
	if err != nil {
		s.log.Error("follow", zap.Int64("followerId", followerID), zap.Int64("followingId", followingID), zap.Error(err))
		return 0, Classify(err)
	}
	return id, nil
}
