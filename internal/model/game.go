package model

import "encoding/json"

// Game is one entry of the game library's games.json.
type Game struct {
	Name  string `json:"name"`
	Type  string `json:"type"`
	Image string `json:"image"`
	URL   string `json:"url"`
	Added string `json:"added,omitempty"`
	// NewTab is a bool or a string in the source data and is passed through untouched.
	NewTab json.RawMessage `json:"newtab,omitempty"`
}

// GameSummary is the reduced game shape returned by search endpoints.
type GameSummary struct {
	Name  string `json:"name"`
	Type  string `json:"type"`
	Image string `json:"image"`
	URL   string `json:"url"`
}

func (g Game) Summary() GameSummary {
	return GameSummary{Name: g.Name, Type: g.Type, Image: g.Image, URL: g.URL}
}
