//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"kitten/backend/internal/model"
)

// SyncRepository stores per-user sync toggles and mirrored datasets.
type SyncRepository interface {
	GetToggles(ctx context.Context, uid string) (*model.SyncToggles, error)
	SaveToggles(ctx context.Context, toggles model.SyncToggles) (*model.SyncToggles, error)
	GetDocument(ctx context.Context, uid, dataset string) (*model.SyncDocument, error)
	SaveDocument(ctx context.Context, doc model.SyncDocument) (*model.SyncDocument, error)
	DeleteDocument(ctx context.Context, uid, dataset string) error
}

type syncRepository struct {
	db *sql.DB
}

// NewSyncRepository creates a new sync repository.
func NewSyncRepository(db *sql.DB) SyncRepository {
	return &syncRepository{db: db}
}

// GetToggles returns nil without error when uid never saved toggles.
func (r *syncRepository) GetToggles(ctx context.Context, uid string) (*model.SyncToggles, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT uid, favorites, history, quests, updated_at FROM sync_toggles WHERE uid = ?
	`, uid)

	var t model.SyncToggles
	var favorites, history, quests int
	var updatedAt string
	if err := row.Scan(&t.UID, &favorites, &history, &quests, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	t.Favorites = favorites == 1
	t.History = history == 1
	t.Quests = quests == 1
	t.UpdatedAt, _ = parseTime(updatedAt)
	return &t, nil
}

func (r *syncRepository) SaveToggles(ctx context.Context, toggles model.SyncToggles) (*model.SyncToggles, error) {
	toggles.UpdatedAt = time.Now().UTC()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO sync_toggles (uid, favorites, history, quests, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(uid) DO UPDATE SET
			favorites = excluded.favorites,
			history = excluded.history,
			quests = excluded.quests,
			updated_at = excluded.updated_at
	`, toggles.UID, boolToInt(toggles.Favorites), boolToInt(toggles.History), boolToInt(toggles.Quests), formatTime(toggles.UpdatedAt))
	if err != nil {
		return nil, err
	}
	return &toggles, nil
}

// GetDocument returns nil without error when the document does not exist.
func (r *syncRepository) GetDocument(ctx context.Context, uid, dataset string) (*model.SyncDocument, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT uid, dataset, data, hash, updated_at FROM sync_documents WHERE uid = ? AND dataset = ?
	`, uid, dataset)

	var doc model.SyncDocument
	var data, updatedAt string
	if err := row.Scan(&doc.UID, &doc.Dataset, &data, &doc.Hash, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	doc.Data = json.RawMessage(data)
	doc.UpdatedAt, _ = parseTime(updatedAt)
	return &doc, nil
}

func (r *syncRepository) SaveDocument(ctx context.Context, doc model.SyncDocument) (*model.SyncDocument, error) {
	doc.UpdatedAt = time.Now().UTC()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO sync_documents (uid, dataset, data, hash, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(uid, dataset) DO UPDATE SET
			data = excluded.data,
			hash = excluded.hash,
			updated_at = excluded.updated_at
	`, doc.UID, doc.Dataset, string(doc.Data), doc.Hash, formatTime(doc.UpdatedAt))
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// DeleteDocument is a no-op when the document does not exist.
func (r *syncRepository) DeleteDocument(ctx context.Context, uid, dataset string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM sync_documents WHERE uid = ? AND dataset = ?`, uid, dataset)
	return err
}
