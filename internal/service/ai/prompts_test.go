package ai_test

import (
	"strings"
	"testing"

	"kitten/backend/internal/service/ai"

	"github.com/stretchr/testify/require"
)

func TestGamesSearchMessages(t *testing.T) {
	msgs := ai.GamesSearchMessages("racing games", []byte(`[{"name":"Drift","type":"racing"}]`))
	require.Len(t, msgs, 2)
	require.Equal(t, "system", msgs[0].Role)
	require.Contains(t, msgs[0].Content, `{"items": [{"name": string`)
	require.Contains(t, msgs[1].Content, "User request: racing games")
	require.Contains(t, msgs[1].Content, `[{"name":"Drift","type":"racing"}]`)
}

func TestTagsMessages(t *testing.T) {
	overview := strings.Repeat("é", 1000)
	msgs := ai.TagsMessages("Heat", overview, []string{"Crime", "Drama"})
	require.Len(t, msgs, 2)
	require.Contains(t, msgs[0].Content, "3-6 concise content tags")
	require.Contains(t, msgs[1].Content, "Title: Heat")
	require.Contains(t, msgs[1].Content, "Genres: Crime, Drama")
	require.Equal(t, 800, strings.Count(msgs[1].Content, "é"))
}
