package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/vblajic/chirper/internal/database"
	"github.com/vblajic/chirper/internal/domain"
)

type ProfileRepo struct {
	db database.DB
}

func NewProfileRepo(db database.DB) *ProfileRepo {
	return &ProfileRepo{db: db}
}

func (r *ProfileRepo) Create(ctx context.Context, profile *domain.Profile) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO profile (user_name, full_name, description, region, main_url, avatar)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		profile.UserName, profile.FullName, profile.Description,
		profile.Region, profile.MainURL, profile.Avatar,
	).Scan(&id)
	return id, err
}

func (r *ProfileRepo) GetByID(ctx context.Context, id int64) (*domain.Profile, error) {
	return r.scanProfile(ctx,
		`SELECT id, created_at, updated_at, user_name, full_name, description, region, main_url, avatar
		 FROM profile WHERE id = $1`, id)
}

func (r *ProfileRepo) GetByUserName(ctx context.Context, userName string) (*domain.Profile, error) {
	return r.scanProfile(ctx,
		`SELECT id, created_at, updated_at, user_name, full_name, description, region, main_url, avatar
		 FROM profile WHERE user_name = $1`, userName)
}

func (r *ProfileRepo) UpdateAvatar(ctx context.Context, id int64, avatar []byte) error {
	_, err := r.db.Exec(ctx, `UPDATE profile SET avatar = $1 WHERE id = $2`, avatar, id)
	return err
}

func (r *ProfileRepo) Follow(ctx context.Context, followerID, followingID int64) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx,
		`INSERT INTO follow (follower_id, following_id) VALUES ($1, $2) RETURNING id`,
		followerID, followingID,
	).Scan(&id)
	return id, err
}

func (r *ProfileRepo) scanProfile(ctx context.Context, query string, arg any) (*domain.Profile, error) {
	var p domain.Profile
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&p.ID, &p.CreatedAt, &p.UpdatedAt, &p.UserName, &p.FullName,
		&p.Description, &p.Region, &p.MainURL, &p.Avatar,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}
