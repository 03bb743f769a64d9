package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/vblajic/chirper/internal/database"
	"github.com/vblajic/chirper/internal/domain"
)

// feedSelect joins each message with its author and, when present, the id of
// the message it broadcasts. The broadcast target itself is resolved in a
// separate round trip so a page of N messages costs at most two queries.
const feedSelect = `
	SELECT m.id, m.updated_at, m.body, m.likes, m.image, m.msg_group_type, m.user_id,
		p.user_name, p.full_name, p.avatar, mb.broadcasting_msg_id
	FROM message m
		JOIN profile p ON m.user_id = p.id
		LEFT JOIN message_broadcast mb ON m.id = mb.main_msg_id`

type MessageRepo struct {
	db  database.DB
	log *zap.Logger
}

func NewMessageRepo(db database.DB, log *zap.Logger) *MessageRepo {
	return &MessageRepo{db: db, log: log}
}

// messageRow is the flat shape produced by feedSelect.
type messageRow struct {
	ID             int64
	UpdatedAt      time.Time
	Body           *string
	Likes          int32
	Image          []byte
	MsgGroupType   int32
	UserID         int64
	UserName       string
	FullName       string
	Avatar         []byte
	BroadcastMsgID *int64
}

func (r *MessageRepo) Create(ctx context.Context, userID int64, body string, groupType domain.GroupType, broadcastingMsgID *int64) (int64, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, err
	}

	var msgID int64
	err = tx.QueryRow(ctx,
		`INSERT INTO message (user_id, body, msg_group_type) VALUES ($1, $2, $3) RETURNING id`,
		userID, body, int32(groupType),
	).Scan(&msgID)
	if err != nil {
		_ = tx.Rollback(ctx)
		return 0, err
	}

	if broadcastingMsgID != nil {
		var linkID int64
		err = tx.QueryRow(ctx,
			`INSERT INTO message_broadcast (main_msg_id, broadcasting_msg_id) VALUES ($1, $2) RETURNING id`,
			msgID, *broadcastingMsgID,
		).Scan(&linkID)
		if err != nil {
			// A message must never be visible without its intended link.
			_ = tx.Rollback(ctx)
			return 0, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return msgID, nil
}

func (r *MessageRepo) CreateResponse(ctx context.Context, userID int64, body string, groupType domain.GroupType, originalMsgID int64) (int64, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, err
	}

	var msgID int64
	err = tx.QueryRow(ctx,
		`INSERT INTO message (user_id, body, msg_group_type) VALUES ($1, $2, $3) RETURNING id`,
		userID, body, int32(groupType),
	).Scan(&msgID)
	if err != nil {
		_ = tx.Rollback(ctx)
		return 0, err
	}

	var linkID int64
	err = tx.QueryRow(ctx,
		`INSERT INTO message_response (original_msg_id, responding_msg_id) VALUES ($1, $2) RETURNING id`,
		originalMsgID, msgID,
	).Scan(&linkID)
	if err != nil {
		_ = tx.Rollback(ctx)
		return 0, err
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return msgID, nil
}

func (r *MessageRepo) GetByID(ctx context.Context, id int64) (*domain.FeedEntry, error) {
	var row messageRow
	err := r.db.QueryRow(ctx, feedSelect+` WHERE m.id = $1`, id).Scan(
		&row.ID, &row.UpdatedAt, &row.Body, &row.Likes, &row.Image,
		&row.MsgGroupType, &row.UserID, &row.UserName, &row.FullName,
		&row.Avatar, &row.BroadcastMsgID,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	targets := map[int64]domain.FeedBroadcast{}
	if row.BroadcastMsgID != nil {
		targets = r.resolveBroadcasts(ctx, []int64{*row.BroadcastMsgID})
	}
	entry := entryFromRow(row, targets)
	return &entry, nil
}

func (r *MessageRepo) ListByFollowing(ctx context.Context, followerID int64, lastUpdatedAt time.Time, limit int) ([]domain.FeedEntry, error) {
	rows, err := r.db.Query(ctx, `
	SELECT m.id, m.updated_at, m.body, m.likes, m.image, m.msg_group_type, m.user_id,
		p.user_name, p.full_name, p.avatar, mb.broadcasting_msg_id
	FROM message m
		JOIN follow f ON m.user_id = f.following_id
		JOIN profile p ON p.id = f.following_id
		LEFT JOIN message_broadcast mb ON m.id = mb.main_msg_id
	WHERE f.follower_id = $1 AND m.updated_at < $2
	ORDER BY m.updated_at DESC
	LIMIT $3`,
		followerID, lastUpdatedAt, limit,
	)
	if err != nil {
		return nil, err
	}

	raw, err := scanMessageRows(rows)
	if err != nil {
		return nil, err
	}

	targets := map[int64]domain.FeedBroadcast{}
	if ids := broadcastIDs(raw); len(ids) > 0 {
		targets = r.resolveBroadcasts(ctx, ids)
	}

	entries := make([]domain.FeedEntry, 0, len(raw))
	for _, row := range raw {
		entries = append(entries, entryFromRow(row, targets))
	}
	return entries, nil
}

// resolveBroadcasts fetches all referenced broadcast targets in one round
// trip. Failures here degrade the affected entries to plain messages instead
// of failing the whole page, so errors are logged and swallowed.
func (r *MessageRepo) resolveBroadcasts(ctx context.Context, ids []int64) map[int64]domain.FeedBroadcast {
	rows, err := r.db.Query(ctx, feedSelect+` WHERE m.id = ANY($1)`, ids)
	if err != nil {
		r.log.Warn("broadcast resolution failed", zap.Error(err))
		return map[int64]domain.FeedBroadcast{}
	}

	raw, err := scanMessageRows(rows)
	if err != nil {
		r.log.Warn("broadcast resolution scan failed", zap.Error(err))
		return map[int64]domain.FeedBroadcast{}
	}

	targets := make(map[int64]domain.FeedBroadcast, len(raw))
	for _, row := range raw {
		targets[row.ID] = domain.FeedBroadcast{
			ID:           row.ID,
			UpdatedAt:    row.UpdatedAt,
			Body:         row.Body,
			Likes:        row.Likes,
			Image:        row.Image,
			MsgGroupType: domain.GroupType(row.MsgGroupType),
			UserID:       row.UserID,
			UserName:     row.UserName,
			FullName:     row.FullName,
			Avatar:       row.Avatar,
		}
	}
	return targets
}

func scanMessageRows(rows pgx.Rows) ([]messageRow, error) {
	defer rows.Close()

	var out []messageRow
	for rows.Next() {
		var row messageRow
		if err := rows.Scan(
			&row.ID, &row.UpdatedAt, &row.Body, &row.Likes, &row.Image,
			&row.MsgGroupType, &row.UserID, &row.UserName, &row.FullName,
			&row.Avatar, &row.BroadcastMsgID,
		); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// broadcastIDs collects the distinct broadcast target ids referenced by a
// page of rows.
func broadcastIDs(rows []messageRow) []int64 {
	var ids []int64
	seen := make(map[int64]bool)
	for _, row := range rows {
		if row.BroadcastMsgID == nil || seen[*row.BroadcastMsgID] {
			continue
		}
		seen[*row.BroadcastMsgID] = true
		ids = append(ids, *row.BroadcastMsgID)
	}
	return ids
}

// entryFromRow stitches a resolved broadcast target onto its originating row.
// A link whose target did not resolve (dangling reference or failed batch) is
// treated as if no link existed.
func entryFromRow(row messageRow, targets map[int64]domain.FeedBroadcast) domain.FeedEntry {
	entry := domain.FeedEntry{
		ID:           row.ID,
		UpdatedAt:    row.UpdatedAt,
		Body:         row.Body,
		Likes:        row.Likes,
		Image:        row.Image,
		MsgGroupType: domain.GroupType(row.MsgGroupType),
		UserID:       row.UserID,
		UserName:     row.UserName,
		FullName:     row.FullName,
		Avatar:       row.Avatar,
	}
	if row.BroadcastMsgID != nil {
		if target, ok := targets[*row.BroadcastMsgID]; ok {
			entry.Broadcast = &target
		}
	}
	return entry
}
