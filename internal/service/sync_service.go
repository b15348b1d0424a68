//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"kitten/backend/internal/hashutil"
	"kitten/backend/internal/model"
	"kitten/backend/internal/repository"
	"kitten/backend/pkg/logger"
)

// MaxSyncDocumentBytes caps a mirrored dataset payload.
const MaxSyncDocumentBytes = 256 * 1024

type SyncService interface {
	GetToggles(ctx context.Context, uid string) (*model.SyncToggles, error)
	SetToggles(ctx context.Context, toggles model.SyncToggles) (*model.SyncToggles, error)
	GetDocument(ctx context.Context, uid, dataset string) (*model.SyncDocument, error)
	// PutDocument stores data for an enabled dataset. Writes to a disabled
	// dataset fail with ErrForbidden.
	PutDocument(ctx context.Context, uid, dataset string, data json.RawMessage) (*model.SyncDocument, error)
}

type syncService struct {
	repo repository.SyncRepository
}

func NewSyncService(repo repository.SyncRepository) SyncService {
	return &syncService{repo: repo}
}

// GetToggles returns all-off toggles for users that never saved any.
func (s *syncService) GetToggles(ctx context.Context, uid string) (*model.SyncToggles, error) {
	uid = strings.TrimSpace(uid)
	if uid == "" {
		return nil, fmt.Errorf("%w: uid is required", ErrInvalid)
	}
	toggles, err := s.repo.GetToggles(ctx, uid)
	if err != nil {
		return nil, err
	}
	if toggles == nil {
		return &model.SyncToggles{UID: uid}, nil
	}
	return toggles, nil
}

// SetToggles saves the toggles. Turning a dataset off drops its mirrored copy.
func (s *syncService) SetToggles(ctx context.Context, toggles model.SyncToggles) (*model.SyncToggles, error) {
	toggles.UID = strings.TrimSpace(toggles.UID)
	if toggles.UID == "" {
		return nil, fmt.Errorf("%w: uid is required", ErrInvalid)
	}

	saved, err := s.repo.SaveToggles(ctx, toggles)
	if err != nil {
		return nil, err
	}

	for _, dataset := range []string{model.SyncDatasetFavorites, model.SyncDatasetHistory, model.SyncDatasetQuests} {
		if saved.Enabled(dataset) {
			continue
		}
		if err := s.repo.DeleteDocument(ctx, saved.UID, dataset); err != nil {
			return nil, err
		}
	}

	logger.Info("sync toggles saved", "module", "service", "action", "update", "resource", "sync", "result", "ok", "uid", saved.UID)
	return saved, nil
}

func (s *syncService) GetDocument(ctx context.Context, uid, dataset string) (*model.SyncDocument, error) {
	uid, dataset, err := validateSyncKey(uid, dataset)
	if err != nil {
		return nil, err
	}
	doc, err := s.repo.GetDocument(ctx, uid, dataset)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, ErrNotFound
	}
	return doc, nil
}

func (s *syncService) PutDocument(ctx context.Context, uid, dataset string, data json.RawMessage) (*model.SyncDocument, error) {
	uid, dataset, err := validateSyncKey(uid, dataset)
	if err != nil {
		return nil, err
	}
	if len(data) > MaxSyncDocumentBytes {
		return nil, fmt.Errorf("%w: document exceeds %d bytes", ErrInvalid, MaxSyncDocumentBytes)
	}
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' || !json.Valid(trimmed) {
		return nil, fmt.Errorf("%w: document must be a JSON object", ErrInvalid)
	}

	toggles, err := s.repo.GetToggles(ctx, uid)
	if err != nil {
		return nil, err
	}
	if toggles == nil || !toggles.Enabled(dataset) {
		return nil, fmt.Errorf("%w: sync for %s is disabled", ErrForbidden, dataset)
	}

	var compact bytes.Buffer
	if err := json.Compact(&compact, trimmed); err != nil {
		return nil, fmt.Errorf("%w: document must be a JSON object", ErrInvalid)
	}

	doc, err := s.repo.SaveDocument(ctx, model.SyncDocument{
		UID:     uid,
		Dataset: dataset,
		Data:    json.RawMessage(compact.Bytes()),
		Hash:    hashutil.SHA256Hex(compact.String()),
	})
	if err != nil {
		return nil, err
	}
	logger.Debug("sync document saved", "module", "service", "action", "update", "resource", "sync", "result", "ok", "uid", uid, "dataset", dataset, "bytes", compact.Len())
	return doc, nil
}

func validateSyncKey(uid, dataset string) (string, string, error) {
	uid = strings.TrimSpace(uid)
	if uid == "" {
		return "", "", fmt.Errorf("%w: uid is required", ErrInvalid)
	}
	dataset = strings.ToLower(strings.TrimSpace(dataset))
	if !model.ValidSyncDataset(dataset) {
		return "", "", fmt.Errorf("%w: unknown dataset %q", ErrInvalid, dataset)
	}
	return uid, dataset, nil
}
