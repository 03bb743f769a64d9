package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/vblajic/chirper/internal/domain"
	"github.com/vblajic/chirper/internal/repository"
)

type CircleService struct {
	circleRepo repository.CircleRepository
	log        *zap.Logger
}

func NewCircleService(circleRepo repository.CircleRepository, log *zap.Logger) *CircleService {
	return &CircleService{circleRepo: circleRepo, log: log}
}

func (s *CircleService) Create(ctx context.Context, ownerID int64) (int64, error) {
	id, err := s.circleRepo.CreateCircle(ctx, ownerID)
	if err != nil {
		s.log.Error("create circle", zap.Int64("ownerId", ownerID), zap.Error(err))
		return 0, Classify(err)
	}
	return id, nil
}

func (s *CircleService) AddMember(ctx context.Context, circleID, memberID int64) (int64, error) {
	id, err := s.circleRepo.AddMember(ctx, circleID, memberID)
	if err != nil {
		s.log.Error("add circle member", zap.Int64("circleId", circleID), zap.Error(err))
		return 0, Classify(err)
	}
	return id, nil
}

func (s *CircleService) Get(ctx context.Context, id int64) (*domain.CircleGroup, error) {
	circle, err := s.circleRepo.GetCircle(ctx, id)
	if err != nil {
		s.log.Error("get circle", zap.Int64("id", id), zap.Error(err))
		return nil, Classify(err)
	}
	return circle, nil
}

func (s *CircleService) GetMember(ctx context.Context, id int64) (*domain.CircleGroupMember, error) {
	member, err := s.circleRepo.GetMember(ctx, id)
	if err != nil {
		s.log.Error("get circle member", zap.Int64("id", id), zap.Error(err))
		return nil, Classify(err)
	}
	return member, nil
}
