//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"kitten/backend/internal/model"
	"kitten/backend/pkg/snowflake"
)

// FeedbackRepository stores feedback ideas and their votes.
type FeedbackRepository interface {
	Create(ctx context.Context, title, detail, createdBy string) (*model.FeedbackIdea, error)
	GetByID(ctx context.Context, id int64) (*model.FeedbackIdea, error)
	List(ctx context.Context, status string, limit int) ([]model.FeedbackIdea, error)
	// Vote records uid's vote once. When the vote brings the idea to promoteAt
	// votes while it is still in promoteFrom, the status moves to promoteTo.
	// added is false when uid had already voted.
	Vote(ctx context.Context, ideaID int64, uid string, promoteAt int, promoteFrom, promoteTo string) (added bool, err error)
	UpdateStatus(ctx context.Context, id int64, status string) error
}

type feedbackRepository struct {
	db *sql.DB
}

// NewFeedbackRepository creates a new feedback repository.
func NewFeedbackRepository(db *sql.DB) FeedbackRepository {
	return &feedbackRepository{db: db}
}

func (r *feedbackRepository) Create(ctx context.Context, title, detail, createdBy string) (*model.FeedbackIdea, error) {
	id := snowflake.NextID()
	now := time.Now().UTC()
	nowStr := formatTime(now)

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO feedback_ideas (id, title, detail, status, created_by, votes_count, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, 0, ?, ?)
	`, id, title, detail, model.FeedbackStatusIdea, createdBy, nowStr, nowStr)
	if err != nil {
		return nil, err
	}

	return &model.FeedbackIdea{
		ID:        id,
		Title:     title,
		Detail:    detail,
		Status:    model.FeedbackStatusIdea,
		CreatedBy: createdBy,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// GetByID returns nil without error when the idea does not exist.
func (r *feedbackRepository) GetByID(ctx context.Context, id int64) (*model.FeedbackIdea, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, title, detail, status, created_by, votes_count, created_at, updated_at
		FROM feedback_ideas WHERE id = ?
	`, id)

	idea, err := scanIdea(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	voters, err := r.voters(ctx, r.db, []int64{id})
	if err != nil {
		return nil, err
	}
	idea.Voters = voters[id]
	return idea, nil
}

// List returns ideas newest first. An empty status lists every idea.
func (r *feedbackRepository) List(ctx context.Context, status string, limit int) ([]model.FeedbackIdea, error) {
	query := `
		SELECT id, title, detail, status, created_by, votes_count, created_at, updated_at
		FROM feedback_ideas`
	var args []interface{}
	if status != "" {
		query += ` WHERE status = ?`
		args = append(args, status)
	}
	query += ` ORDER BY created_at DESC, id DESC`
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ideas []model.FeedbackIdea
	var ids []int64
	for rows.Next() {
		idea, err := scanIdea(rows)
		if err != nil {
			return nil, err
		}
		ideas = append(ideas, *idea)
		ids = append(ids, idea.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return ideas, nil
	}

	voters, err := r.voters(ctx, r.db, ids)
	if err != nil {
		return nil, err
	}
	for i := range ideas {
		ideas[i].Voters = voters[ideas[i].ID]
	}
	return ideas, nil
}

func (r *feedbackRepository) Vote(ctx context.Context, ideaID int64, uid string, promoteAt int, promoteFrom, promoteTo string) (bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	now := formatTime(time.Now())
	result, err := tx.ExecContext(ctx, `
		INSERT INTO feedback_votes (idea_id, uid, created_at) VALUES (?, ?, ?)
		ON CONFLICT(idea_id, uid) DO NOTHING
	`, ideaID, uid, now)
	if err != nil {
		return false, err
	}
	inserted, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	if inserted == 0 {
		return false, tx.Commit()
	}

	if _, err := tx.ExecContext(ctx, `
		UPDATE feedback_ideas
		SET votes_count = votes_count + 1,
		    status = CASE WHEN votes_count + 1 >= ? AND status = ? THEN ? ELSE status END,
		    updated_at = ?
		WHERE id = ?
	`, promoteAt, promoteFrom, promoteTo, now, ideaID); err != nil {
		return false, err
	}

	if err := tx.Commit(); err != nil {
		return false, err
	}
	return true, nil
}

// UpdateStatus returns sql.ErrNoRows when the idea does not exist.
func (r *feedbackRepository) UpdateStatus(ctx context.Context, id int64, status string) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE feedback_ideas SET status = ?, updated_at = ? WHERE id = ?
	`, status, formatTime(time.Now()), id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *feedbackRepository) voters(ctx context.Context, q dbtx, ids []int64) (map[int64][]string, error) {
	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(ids)), ",")
	args := make([]interface{}, len(ids))
	for i, id := range ids {
		args[i] = id
	}

	rows, err := q.QueryContext(ctx, fmt.Sprintf(`
		SELECT idea_id, uid FROM feedback_votes WHERE idea_id IN (%s) ORDER BY created_at, uid
	`, placeholders), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[int64][]string, len(ids))
	for rows.Next() {
		var id int64
		var uid string
		if err := rows.Scan(&id, &uid); err != nil {
			return nil, err
		}
		out[id] = append(out[id], uid)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanIdea(row rowScanner) (*model.FeedbackIdea, error) {
	var idea model.FeedbackIdea
	var createdAt, updatedAt string
	if err := row.Scan(&idea.ID, &idea.Title, &idea.Detail, &idea.Status, &idea.CreatedBy, &idea.VotesCount, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	idea.CreatedAt, _ = parseTime(createdAt)
	idea.UpdatedAt, _ = parseTime(updatedAt)
	return &idea, nil
}
