package ai

import (
	"fmt"
	"strings"
)

const gamesSearchSystemPrompt = `You are a recommender that ONLY selects games from the provided library. Output strictly JSON with this schema:
{"items": [{"name": string, "reason"?: string}]}
Rules:
- Choose 5-8 items that best match the user's request.
- Use only names that appear EXACTLY in the library.
- Prefer diversity but keep relevance high.
- Keep "reason" short (<= 10 words).`

const tagsSystemPrompt = `You output ONLY JSON as {"tags": [string, ...]} with 3-6 concise content tags for discovery.
Rules:
- Lowercase words/phrases, 1-3 words each.
- No spoilers. No duplicates. No hashtags.
- Prefer genre, tone, theme, pacing, audience, vibe.`

const maxOverviewRunes = 800

// GamesSearchMessages builds the recommender conversation. library is the
// compact (name, type) JSON array.
func GamesSearchMessages(query string, library []byte) []Message {
	return []Message{
		{Role: "system", Content: gamesSearchSystemPrompt},
		{Role: "user", Content: fmt.Sprintf("User request: %s\nLibrary (name, type) JSON array:\n%s", query, library)},
	}
}

// TagsMessages builds the discovery-tag conversation for a movie or show.
func TagsMessages(title, overview string, genres []string) []Message {
	if r := []rune(overview); len(r) > maxOverviewRunes {
		overview = string(r[:maxOverviewRunes])
	}
	return []Message{
		{Role: "system", Content: tagsSystemPrompt},
		{Role: "user", Content: fmt.Sprintf("Item:\nTitle: %s\nGenres: %s\nOverview: %s", title, strings.Join(genres, ", "), overview)},
	}
}
