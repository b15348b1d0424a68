package model

import (
	"encoding/json"
	"time"
)

const (
	SyncDatasetFavorites = "favorites"
	SyncDatasetHistory   = "history"
	SyncDatasetQuests    = "quests"
)

// SyncToggles holds which datasets a user mirrors to the server.
type SyncToggles struct {
	UID       string
	Favorites bool
	History   bool
	Quests    bool
	UpdatedAt time.Time
}

// Enabled reports whether dataset is switched on.
func (t SyncToggles) Enabled(dataset string) bool {
	switch dataset {
	case SyncDatasetFavorites:
		return t.Favorites
	case SyncDatasetHistory:
		return t.History
	case SyncDatasetQuests:
		return t.Quests
	}
	return false
}

// SyncDocument is the mirrored copy of one local dataset.
type SyncDocument struct {
	UID       string
	Dataset   string
	Data      json.RawMessage
	Hash      string
	UpdatedAt time.Time
}

// ValidSyncDataset reports whether dataset can be mirrored.
func ValidSyncDataset(dataset string) bool {
	switch dataset {
	case SyncDatasetFavorites, SyncDatasetHistory, SyncDatasetQuests:
		return true
	}
	return false
}
