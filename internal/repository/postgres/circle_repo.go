package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/vblajic/chirper/internal/database"
	"github.com/vblajic/chirper/internal/domain"
)

type CircleRepo struct {
	db database.DB
}

func NewCircleRepo(db database.DB) *CircleRepo {
	return &CircleRepo{db: db}
}

func (r *CircleRepo) CreateCircle(ctx context.Context, ownerID int64) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx,
		`INSERT INTO circle_group (owner_id) VALUES ($1) RETURNING id`,
		ownerID,
	).Scan(&id)
	return id, err
}

func (r *CircleRepo) AddMember(ctx context.Context, circleID, memberID int64) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx,
		`INSERT INTO circle_group_member (circle_group_id, member_id) VALUES ($1, $2) RETURNING id`,
		circleID, memberID,
	).Scan(&id)
	return id, err
}

func (r *CircleRepo) GetCircle(ctx context.Context, id int64) (*domain.CircleGroup, error) {
	var c domain.CircleGroup
	err := r.db.QueryRow(ctx, `
		SELECT c.id, c.created_at, c.updated_at, c.owner_id, p.user_name, p.full_name, p.avatar
		FROM circle_group c
			JOIN profile p ON c.owner_id = p.id
		WHERE c.id = $1`,
		id,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt, &c.OwnerID, &c.OwnerUserName, &c.OwnerFullName, &c.OwnerAvatar)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CircleRepo) GetMember(ctx context.Context, id int64) (*domain.CircleGroupMember, error) {
	var m domain.CircleGroupMember
	err := r.db.QueryRow(ctx, `
		SELECT c.id, c.created_at, c.updated_at, c.circle_group_id, p.id AS member_id, p.user_name, p.full_name, p.avatar
		FROM circle_group_member c
			JOIN profile p ON c.member_id = p.id
		WHERE c.id = $1`,
		id,
	).Scan(&m.ID, &m.CreatedAt, &m.UpdatedAt, &m.CircleGroupID, &m.MemberID, &m.MemberUserName, &m.MemberFullName, &m.MemberAvatar)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}
