package model

import "time"

const (
	FeedbackStatusIdea        = "idea"
	FeedbackStatusConsidering = "considering"
	FeedbackStatusInProgress  = "in_progress"
	FeedbackStatusDone        = "done"
)

// FeedbackIdea is a user-submitted improvement idea.
type FeedbackIdea struct {
	ID         int64
	Title      string
	Detail     string
	Status     string
	CreatedBy  string
	VotesCount int
	Voters     []string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ValidFeedbackStatus reports whether status is a known idea status.
func ValidFeedbackStatus(status string) bool {
	switch status {
	case FeedbackStatusIdea, FeedbackStatusConsidering, FeedbackStatusInProgress, FeedbackStatusDone:
		return true
	}
	return false
}
