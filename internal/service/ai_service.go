//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package service

import (
	"context"
	"encoding/json"
	"sort"
	"strings"

	"kitten/backend/internal/metrics"
	"kitten/backend/internal/model"
	"kitten/backend/internal/service/ai"
	"kitten/backend/pkg/logger"
)

const (
	chatTitle  = "KittenMovies"
	gamesTitle = "KittenGames"

	chatTemperature   = 0.7
	searchTemperature = 0.5
	searchMaxTokens   = 400
	tagsTemperature   = 0.7
	tagsMaxTokens     = 200

	maxSearchLibrary = 1200
	maxSearchPicks   = 8
	maxLocalResults  = 10
	maxTags          = 6
)

// SearchHints narrow the local game scorer.
type SearchHints struct {
	Keywords   []string
	Categories []string
}

type AIService interface {
	// Configured reports whether a provider key is set.
	Configured() bool
	// Chat returns the provider's chat completion payload.
	Chat(ctx context.Context, messages []ai.InboundMessage) (json.RawMessage, error)
	// SearchGames recommends games from the library. It never fails because
	// of the model: provider errors fall back to the local scorer.
	SearchGames(ctx context.Context, query string, hints SearchHints) ([]model.GameSummary, error)
	// Tags returns up to six discovery tags. Provider errors yield no tags.
	Tags(ctx context.Context, title, overview string, genres []string) ([]string, error)
}

type aiService struct {
	gateway *ai.Gateway
	library LibraryService
	metrics *metrics.Metrics
}

// NewAIService creates the AI feature service. gateway is nil when no
// provider key is configured.
func NewAIService(gateway *ai.Gateway, library LibraryService, m *metrics.Metrics) AIService {
	return &aiService{gateway: gateway, library: library, metrics: m}
}

func (s *aiService) Configured() bool {
	return s.gateway != nil
}

func (s *aiService) Chat(ctx context.Context, messages []ai.InboundMessage) (json.RawMessage, error) {
	if s.gateway == nil {
		s.metrics.AIRequest("chat", "unconfigured")
		return nil, ai.ErrMissingAPIKey
	}

	res, err := s.gateway.Complete(ctx, ai.Request{
		Messages:    ai.NormalizeMessages(messages),
		Temperature: chatTemperature,
		Title:       chatTitle,
	})
	if err != nil {
		s.metrics.AIRequest("chat", "failed")
		logger.Error("ai chat failed", "module", "service", "action", "chat", "resource", "ai", "result", "failed", "error", err)
		return nil, err
	}

	s.metrics.AIRequest("chat", "ok")
	logger.Info("ai chat completed", "module", "service", "action", "chat", "resource", "ai", "result", "ok", "model", res.Model)
	return res.Raw, nil
}

func (s *aiService) SearchGames(ctx context.Context, query string, hints SearchHints) ([]model.GameSummary, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []model.GameSummary{}, nil
	}

	games, err := s.library.Games(ctx)
	if err != nil {
		s.metrics.AIRequest("games_search", "failed")
		return nil, err
	}

	if s.gateway != nil {
		if picked := s.pickGames(ctx, query, games); len(picked) > 0 {
			s.metrics.AIRequest("games_search", "ok")
			return summarize(picked), nil
		}
	}

	s.metrics.AIRequest("games_search", "local")
	return summarize(scoreGames(games, query, hints)), nil
}

// pickGames asks the model to choose from the library and maps the chosen
// names back to games. Any failure yields nil.
func (s *aiService) pickGames(ctx context.Context, query string, games []model.Game) []model.Game {
	type compactGame struct {
		Name string `json:"name"`
		Type string `json:"type"`
	}
	compact := make([]compactGame, 0, min(len(games), maxSearchLibrary))
	for i := 0; i < len(games) && i < maxSearchLibrary; i++ {
		compact = append(compact, compactGame{Name: games[i].Name, Type: games[i].Type})
	}
	library, err := json.Marshal(compact)
	if err != nil {
		return nil
	}

	res, err := s.gateway.Complete(ctx, ai.Request{
		Messages:    ai.GamesSearchMessages(query, library),
		Temperature: searchTemperature,
		MaxTokens:   searchMaxTokens,
		Title:       gamesTitle,
	})
	if err != nil {
		logger.Warn("ai game search failed, using local scorer", "module", "service", "action", "search", "resource", "ai", "result", "fallback", "error", err)
		return nil
	}

	var parsed struct {
		Items []struct {
			Name string `json:"name"`
		} `json:"items"`
	}
	if !ai.DecodeJSONObject(res.Content, &parsed) {
		return nil
	}

	byName := make(map[string]model.Game, len(games))
	for _, g := range games {
		byName[g.Name] = g
	}
	picked := make([]model.Game, 0, maxSearchPicks)
	for _, item := range parsed.Items {
		g, ok := byName[item.Name]
		if !ok || item.Name == "" {
			continue
		}
		picked = append(picked, g)
		if len(picked) == maxSearchPicks {
			break
		}
	}
	return picked
}

// scoreGames ranks games by keyword heuristics. Zero-score games are kept
// only when the query has at least two characters.
func scoreGames(games []model.Game, query string, hints SearchHints) []model.Game {
	q := strings.ToLower(query)
	keywords := lowerSet(hints.Keywords)
	categories := lowerSet(hints.Categories)

	type scored struct {
		game  model.Game
		score int
	}
	ranked := make([]scored, 0, len(games))
	for _, g := range games {
		name := strings.ToLower(g.Name)
		typ := strings.ToLower(g.Type)

		score := 0
		if strings.Contains(name, "car") || strings.Contains(name, "auto") {
			score += 3
		}
		if strings.Contains(typ, "racing") {
			score += 4
		}
		if strings.Contains(name, q) {
			score += 2
		}
		if strings.Contains(typ, q) {
			score += 2
		}
		for _, k := range keywords {
			if strings.Contains(name, k) || strings.Contains(typ, k) {
				score += 2
			}
		}
		for _, c := range categories {
			if strings.Contains(typ, c) {
				score += 3
			}
		}

		if score > 0 || len(q) >= 2 {
			ranked = append(ranked, scored{game: g, score: score})
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})
	if len(ranked) > maxLocalResults {
		ranked = ranked[:maxLocalResults]
	}

	out := make([]model.Game, len(ranked))
	for i, r := range ranked {
		out[i] = r.game
	}
	return out
}

func (s *aiService) Tags(ctx context.Context, title, overview string, genres []string) ([]string, error) {
	title = strings.TrimSpace(title)
	if s.gateway == nil || title == "" {
		return []string{}, nil
	}

	res, err := s.gateway.Complete(ctx, ai.Request{
		Messages:    ai.TagsMessages(title, overview, genres),
		Temperature: tagsTemperature,
		MaxTokens:   tagsMaxTokens,
		Title:       chatTitle,
	})
	if err != nil {
		s.metrics.AIRequest("tags", "failed")
		logger.Warn("ai tags failed", "module", "service", "action", "tags", "resource", "ai", "result", "failed", "error", err)
		return []string{}, nil
	}

	var parsed struct {
		Tags []interface{} `json:"tags"`
	}
	if !ai.DecodeJSONObject(res.Content, &parsed) {
		s.metrics.AIRequest("tags", "malformed")
		return []string{}, nil
	}

	s.metrics.AIRequest("tags", "ok")
	return cleanTags(parsed.Tags), nil
}

// cleanTags lower-cases, trims and dedupes tags, keeping at most six.
func cleanTags(raw []interface{}) []string {
	seen := make(map[string]struct{}, len(raw))
	tags := make([]string, 0, maxTags)
	for _, v := range raw {
		s, ok := v.(string)
		if !ok {
			continue
		}
		tag := strings.TrimSpace(strings.ToLower(s))
		if tag == "" {
			continue
		}
		if _, dup := seen[tag]; dup {
			continue
		}
		seen[tag] = struct{}{}
		tags = append(tags, tag)
		if len(tags) == maxTags {
			break
		}
	}
	return tags
}

func lowerSet(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.ToLower(strings.TrimSpace(v))
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

func summarize(games []model.Game) []model.GameSummary {
	out := make([]model.GameSummary, len(games))
	for i, g := range games {
		out[i] = g.Summary()
	}
	return out
}
