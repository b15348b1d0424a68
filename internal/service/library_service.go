//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"kitten/backend/internal/model"
	"kitten/backend/pkg/logger"
)

const (
	libraryCacheTTL    = 5 * time.Minute
	DefaultRecentLimit = 10
	allCategory        = "All"
)

var (
	ErrLibraryUnavailable = errors.New("game library unavailable")
	ErrImageNotFound      = errors.New("image not found")
)

var addedLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// GameImage is an image file from the library's images directory.
type GameImage struct {
	Data        []byte
	ContentType string
}

type LibraryService interface {
	// RawGames returns games.json exactly as stored.
	RawGames(ctx context.Context) (json.RawMessage, error)
	Popup(ctx context.Context) (json.RawMessage, error)
	Image(ctx context.Context, relPath string) (*GameImage, error)
	Games(ctx context.Context) ([]model.Game, error)
	Search(ctx context.Context, query string) ([]model.Game, error)
	ByCategory(ctx context.Context, category string) ([]model.Game, error)
	Categories(ctx context.Context) ([]string, error)
	Recent(ctx context.Context, limit int) ([]model.Game, error)
	FindBySlug(ctx context.Context, slug string) (*model.Game, error)
	// Warm reloads the games cache when it is older than the TTL.
	Warm(ctx context.Context) error
}

type librarySnapshot struct {
	raw      json.RawMessage
	games    []model.Game
	loadedAt time.Time
}

type libraryService struct {
	dir   string
	ttl   time.Duration
	now   func() time.Time
	mu    sync.RWMutex
	cache *librarySnapshot
	group singleflight.Group
}

// NewLibraryService reads the game library rooted at dir.
func NewLibraryService(dir string) LibraryService {
	return &libraryService{
		dir: dir,
		ttl: libraryCacheTTL,
		now: time.Now,
	}
}

func (s *libraryService) RawGames(ctx context.Context) (json.RawMessage, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return snap.raw, nil
}

func (s *libraryService) Popup(ctx context.Context) (json.RawMessage, error) {
	return readJSONFile(filepath.Join(s.dir, "popup.json"))
}

func (s *libraryService) Image(ctx context.Context, relPath string) (*GameImage, error) {
	relPath = strings.ReplaceAll(relPath, "..", "")
	clean := filepath.Clean("/" + filepath.FromSlash(relPath))
	if clean == string(filepath.Separator) {
		return nil, ErrImageNotFound
	}

	full := filepath.Join(s.dir, "images", clean)
	data, err := os.ReadFile(full)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrImageNotFound, err)
	}
	return &GameImage{Data: data, ContentType: imageContentType(full)}, nil
}

func (s *libraryService) Games(ctx context.Context) ([]model.Game, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return append([]model.Game(nil), snap.games...), nil
}

// Search matches name or type by case-insensitive substring. An empty query
// returns every game.
func (s *libraryService) Search(ctx context.Context, query string) ([]model.Game, error) {
	games, err := s.Games(ctx)
	if err != nil {
		return nil, err
	}
	term := strings.ToLower(strings.TrimSpace(query))
	if term == "" {
		return games, nil
	}

	out := make([]model.Game, 0)
	for _, g := range games {
		if strings.Contains(strings.ToLower(g.Name), term) || strings.Contains(strings.ToLower(g.Type), term) {
			out = append(out, g)
		}
	}
	return out, nil
}

func (s *libraryService) ByCategory(ctx context.Context, category string) ([]model.Game, error) {
	games, err := s.Games(ctx)
	if err != nil {
		return nil, err
	}
	if strings.EqualFold(category, allCategory) {
		return games, nil
	}

	out := make([]model.Game, 0)
	for _, g := range games {
		if strings.EqualFold(g.Type, category) {
			out = append(out, g)
		}
	}
	return out, nil
}

// Categories returns "All" followed by the sorted distinct game types.
func (s *libraryService) Categories(ctx context.Context) ([]string, error) {
	games, err := s.Games(ctx)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{})
	types := make([]string, 0)
	for _, g := range games {
		if g.Type == "" {
			continue
		}
		if _, ok := seen[g.Type]; ok {
			continue
		}
		seen[g.Type] = struct{}{}
		types = append(types, g.Type)
	}
	sort.Strings(types)
	return append([]string{allCategory}, types...), nil
}

// Recent returns games newest first by their added date. Games without a
// parseable date sort last.
func (s *libraryService) Recent(ctx context.Context, limit int) ([]model.Game, error) {
	games, err := s.Games(ctx)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = DefaultRecentLimit
	}

	sort.SliceStable(games, func(i, j int) bool {
		return parseAdded(games[i].Added).After(parseAdded(games[j].Added))
	})
	if len(games) > limit {
		games = games[:limit]
	}
	return games, nil
}

// FindBySlug matches the lower-cased name with whitespace runs replaced by
// "-", or any game whose URL contains the slug.
func (s *libraryService) FindBySlug(ctx context.Context, slug string) (*model.Game, error) {
	games, err := s.Games(ctx)
	if err != nil {
		return nil, err
	}
	norm := strings.ToLower(strings.TrimSpace(slug))
	if norm == "" {
		return nil, ErrNotFound
	}
	for i := range games {
		if nameSlug(games[i].Name) == norm || strings.Contains(strings.ToLower(games[i].URL), norm) {
			return &games[i], nil
		}
	}
	return nil, ErrNotFound
}

func (s *libraryService) Warm(ctx context.Context) error {
	_, err := s.snapshot(ctx)
	return err
}

// snapshot returns the cached library, reloading it once the TTL passed.
// Concurrent reloads share one read; a failed reload keeps serving the stale
// copy when there is one.
func (s *libraryService) snapshot(ctx context.Context) (*librarySnapshot, error) {
	s.mu.RLock()
	cached := s.cache
	s.mu.RUnlock()

	if cached != nil && s.now().Sub(cached.loadedAt) < s.ttl {
		return cached, nil
	}

	v, err, _ := s.group.Do("games", func() (interface{}, error) {
		return s.reload()
	})
	if err != nil {
		if cached != nil {
			logger.Warn("serving stale game library", "module", "service", "action", "reload", "resource", "library", "result", "failed", "error", err)
			return cached, nil
		}
		return nil, err
	}
	return v.(*librarySnapshot), nil
}

func (s *libraryService) reload() (*librarySnapshot, error) {
	raw, err := readJSONFile(filepath.Join(s.dir, "games.json"))
	if err != nil {
		return nil, err
	}

	snap := &librarySnapshot{
		raw:      raw,
		games:    decodeGames(raw),
		loadedAt: s.now(),
	}

	s.mu.Lock()
	s.cache = snap
	s.mu.Unlock()

	logger.Debug("game library loaded", "module", "service", "action", "reload", "resource", "library", "result", "ok", "count", len(snap.games))
	return snap, nil
}

func readJSONFile(path string) (json.RawMessage, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLibraryUnavailable, err)
	}
	if !json.Valid(data) {
		return nil, fmt.Errorf("%w: %s is not valid JSON", ErrLibraryUnavailable, filepath.Base(path))
	}
	return json.RawMessage(data), nil
}

// decodeGames keeps every array element that decodes as a game. A non-array
// document yields no games.
func decodeGames(raw json.RawMessage) []model.Game {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return []model.Game{}
	}
	games := make([]model.Game, 0, len(items))
	for _, item := range items {
		var g model.Game
		if err := json.Unmarshal(item, &g); err != nil {
			continue
		}
		games = append(games, g)
	}
	return games
}

func parseAdded(value string) time.Time {
	value = strings.TrimSpace(value)
	for _, layout := range addedLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	return time.Time{}
}

func nameSlug(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "-")
}

func imageContentType(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".webp":
		return "image/webp"
	default:
		return "application/octet-stream"
	}
}
