//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"kitten/backend/internal/model"
	"kitten/backend/internal/repository"
	"kitten/backend/pkg/logger"
	"kitten/backend/pkg/sanitizer"
)

// PromoteVotes is the vote count that moves an idea to considering.
const PromoteVotes = 3

const (
	maxIdeaTitleRunes  = 200
	maxIdeaDetailRunes = 4000
	defaultIdeasLimit  = 100
)

type FeedbackService interface {
	List(ctx context.Context, status string, limit int) ([]model.FeedbackIdea, error)
	Create(ctx context.Context, uid, title, detail string) (*model.FeedbackIdea, error)
	Vote(ctx context.Context, ideaID int64, uid string) (*model.FeedbackIdea, error)
	SetStatus(ctx context.Context, ideaID int64, status string) (*model.FeedbackIdea, error)
}

type feedbackService struct {
	ideas repository.FeedbackRepository
}

func NewFeedbackService(ideas repository.FeedbackRepository) FeedbackService {
	return &feedbackService{ideas: ideas}
}

// List returns ideas newest first. An empty status means "idea"; "all"
// lists every status.
func (s *feedbackService) List(ctx context.Context, status string, limit int) ([]model.FeedbackIdea, error) {
	status = strings.ToLower(strings.TrimSpace(status))
	switch {
	case status == "":
		status = model.FeedbackStatusIdea
	case status == "all":
		status = ""
	case !model.ValidFeedbackStatus(status):
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalid, status)
	}
	if limit <= 0 || limit > defaultIdeasLimit {
		limit = defaultIdeasLimit
	}

	ideas, err := s.ideas.List(ctx, status, limit)
	if err != nil {
		return nil, err
	}
	if ideas == nil {
		ideas = []model.FeedbackIdea{}
	}
	return ideas, nil
}

func (s *feedbackService) Create(ctx context.Context, uid, title, detail string) (*model.FeedbackIdea, error) {
	uid = strings.TrimSpace(uid)
	if uid == "" {
		return nil, ErrUnauthorized
	}
	title = sanitizer.CleanText(title, maxIdeaTitleRunes)
	detail = sanitizer.CleanText(detail, maxIdeaDetailRunes)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalid)
	}
	if detail == "" {
		return nil, fmt.Errorf("%w: detail is required", ErrInvalid)
	}

	idea, err := s.ideas.Create(ctx, title, detail, uid)
	if err != nil {
		return nil, err
	}
	logger.Info("feedback idea created", "module", "service", "action", "create", "resource", "feedback", "result", "ok", "idea_id", idea.ID)
	return idea, nil
}

// Vote adds uid's vote once. Repeat votes return the idea unchanged.
func (s *feedbackService) Vote(ctx context.Context, ideaID int64, uid string) (*model.FeedbackIdea, error) {
	uid = strings.TrimSpace(uid)
	if uid == "" {
		return nil, ErrUnauthorized
	}

	idea, err := s.ideas.GetByID(ctx, ideaID)
	if err != nil {
		return nil, err
	}
	if idea == nil {
		return nil, ErrNotFound
	}

	added, err := s.ideas.Vote(ctx, ideaID, uid, PromoteVotes, model.FeedbackStatusIdea, model.FeedbackStatusConsidering)
	if err != nil {
		return nil, err
	}
	if !added {
		return idea, nil
	}

	updated, err := s.ideas.GetByID(ctx, ideaID)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrNotFound
	}
	if updated.Status != idea.Status {
		logger.Info("feedback idea promoted", "module", "service", "action", "vote", "resource", "feedback", "result", "ok", "idea_id", ideaID, "status", updated.Status)
	}
	return updated, nil
}

func (s *feedbackService) SetStatus(ctx context.Context, ideaID int64, status string) (*model.FeedbackIdea, error) {
	status = strings.ToLower(strings.TrimSpace(status))
	if !model.ValidFeedbackStatus(status) {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalid, status)
	}

	if err := s.ideas.UpdateStatus(ctx, ideaID, status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	idea, err := s.ideas.GetByID(ctx, ideaID)
	if err != nil {
		return nil, err
	}
	if idea == nil {
		return nil, ErrNotFound
	}
	logger.Info("feedback status changed", "module", "service", "action", "update", "resource", "feedback", "result", "ok", "idea_id", ideaID, "status", status)
	return idea, nil
}
