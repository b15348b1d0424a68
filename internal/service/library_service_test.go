package service_test

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"kitten/backend/internal/service"

	"github.com/stretchr/testify/require"
)

const sampleGames = `[
  {"name": "Moto X3M", "type": "Racing", "image": "moto.png", "url": "/g/moto-x3m/", "added": "2024-05-01"},
  {"name": "Retro Bowl", "type": "Sports", "image": "bowl.png", "url": "/g/retro-bowl/", "added": "2024-07-15", "newtab": true},
  {"name": "Drift Hunters", "type": "Racing", "image": "drift.png", "url": "/g/drift/", "added": "2023-12-24"},
  {"name": "2048", "type": "Puzzle", "image": "2048.png", "url": "/g/2048/", "newtab": "yes"}
]`

func writeLibrary(t *testing.T, games string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "games.json"), []byte(games), 0o644))
	return dir
}

func TestLibraryService_RawGamesPassthrough(t *testing.T) {
	dir := writeLibrary(t, sampleGames)
	svc := service.NewLibraryService(dir)

	raw, err := svc.RawGames(context.Background())
	require.NoError(t, err)
	require.JSONEq(t, sampleGames, string(raw))

	games, err := svc.Games(context.Background())
	require.NoError(t, err)
	require.Len(t, games, 4)
	require.JSONEq(t, `true`, string(games[1].NewTab))
	require.JSONEq(t, `"yes"`, string(games[3].NewTab))
}

func TestLibraryService_MissingFile(t *testing.T) {
	svc := service.NewLibraryService(t.TempDir())

	_, err := svc.RawGames(context.Background())
	require.ErrorIs(t, err, service.ErrLibraryUnavailable)
}

func TestLibraryService_InvalidJSON(t *testing.T) {
	svc := service.NewLibraryService(writeLibrary(t, `[{"name":`))

	_, err := svc.Games(context.Background())
	require.ErrorIs(t, err, service.ErrLibraryUnavailable)
}

func TestLibraryService_NonArrayHasNoGames(t *testing.T) {
	svc := service.NewLibraryService(writeLibrary(t, `{"games": []}`))

	games, err := svc.Games(context.Background())
	require.NoError(t, err)
	require.Empty(t, games)
}

func TestLibraryService_CacheAndStaleFallback(t *testing.T) {
	dir := writeLibrary(t, sampleGames)
	svc := service.NewLibraryService(dir)

	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	service.SetLibraryClockForTest(svc, func() time.Time { return now })

	games, err := svc.Games(context.Background())
	require.NoError(t, err)
	require.Len(t, games, 4)

	// Within the TTL the file is not read again.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "games.json"), []byte(`[{"name":"Only","type":"Puzzle"}]`), 0o644))
	now = now.Add(4 * time.Minute)
	games, err = svc.Games(context.Background())
	require.NoError(t, err)
	require.Len(t, games, 4)

	// After the TTL the new file is picked up.
	now = now.Add(2 * time.Minute)
	games, err = svc.Games(context.Background())
	require.NoError(t, err)
	require.Len(t, games, 1)

	// A failed reload keeps the stale copy.
	require.NoError(t, os.Remove(filepath.Join(dir, "games.json")))
	now = now.Add(10 * time.Minute)
	games, err = svc.Games(context.Background())
	require.NoError(t, err)
	require.Len(t, games, 1)
	require.Equal(t, "Only", games[0].Name)
}

func TestLibraryService_ConcurrentReads(t *testing.T) {
	svc := service.NewLibraryService(writeLibrary(t, sampleGames))

	var wg sync.WaitGroup
	counts := make([]int, 20)
	errs := make([]error, 20)
	for i := range counts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			games, err := svc.Games(context.Background())
			counts[i], errs[i] = len(games), err
		}()
	}
	wg.Wait()

	for i := range counts {
		require.NoError(t, errs[i])
		require.Equal(t, 4, counts[i])
	}
}

func TestLibraryService_Search(t *testing.T) {
	svc := service.NewLibraryService(writeLibrary(t, sampleGames))
	ctx := context.Background()

	games, err := svc.Search(ctx, "  RACING ")
	require.NoError(t, err)
	require.Len(t, games, 2)

	games, err = svc.Search(ctx, "bowl")
	require.NoError(t, err)
	require.Len(t, games, 1)
	require.Equal(t, "Retro Bowl", games[0].Name)

	games, err = svc.Search(ctx, "")
	require.NoError(t, err)
	require.Len(t, games, 4)

	games, err = svc.Search(ctx, "nothing-matches")
	require.NoError(t, err)
	require.NotNil(t, games)
	require.Empty(t, games)
}

func TestLibraryService_Categories(t *testing.T) {
	svc := service.NewLibraryService(writeLibrary(t, sampleGames))
	ctx := context.Background()

	categories, err := svc.Categories(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"All", "Puzzle", "Racing", "Sports"}, categories)

	racing, err := svc.ByCategory(ctx, "racing")
	require.NoError(t, err)
	require.Len(t, racing, 2)

	all, err := svc.ByCategory(ctx, "ALL")
	require.NoError(t, err)
	require.Len(t, all, 4)

	none, err := svc.ByCategory(ctx, "Rac")
	require.NoError(t, err)
	require.Empty(t, none)
}

func TestLibraryService_Recent(t *testing.T) {
	svc := service.NewLibraryService(writeLibrary(t, sampleGames))
	ctx := context.Background()

	recent, err := svc.Recent(ctx, 0)
	require.NoError(t, err)
	require.Len(t, recent, 4)
	require.Equal(t, "Retro Bowl", recent[0].Name)
	require.Equal(t, "Moto X3M", recent[1].Name)
	require.Equal(t, "Drift Hunters", recent[2].Name)
	require.Equal(t, "2048", recent[3].Name)

	top, err := svc.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, top, 2)
}

func TestLibraryService_FindBySlug(t *testing.T) {
	svc := service.NewLibraryService(writeLibrary(t, sampleGames))
	ctx := context.Background()

	game, err := svc.FindBySlug(ctx, "moto-x3m")
	require.NoError(t, err)
	require.Equal(t, "Moto X3M", game.Name)

	game, err = svc.FindBySlug(ctx, "drift")
	require.NoError(t, err)
	require.Equal(t, "Drift Hunters", game.Name)

	_, err = svc.FindBySlug(ctx, "unknown-game")
	require.ErrorIs(t, err, service.ErrNotFound)
}

func TestLibraryService_Popup(t *testing.T) {
	dir := writeLibrary(t, sampleGames)
	svc := service.NewLibraryService(dir)

	_, err := svc.Popup(context.Background())
	require.ErrorIs(t, err, service.ErrLibraryUnavailable)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "popup.json"), []byte(`{"title":"Hi"}`), 0o644))
	popup, err := svc.Popup(context.Background())
	require.NoError(t, err)
	require.JSONEq(t, `{"title":"Hi"}`, string(popup))
}

func TestLibraryService_Image(t *testing.T) {
	dir := writeLibrary(t, sampleGames)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "images", "covers"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "images", "covers", "moto.PNG"), []byte("png-bytes"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "secret.txt"), []byte("nope"), 0o644))
	svc := service.NewLibraryService(dir)
	ctx := context.Background()

	img, err := svc.Image(ctx, "covers/moto.PNG")
	require.NoError(t, err)
	require.Equal(t, "image/png", img.ContentType)
	require.Equal(t, []byte("png-bytes"), img.Data)

	_, err = svc.Image(ctx, "../secret.txt")
	require.ErrorIs(t, err, service.ErrImageNotFound)

	_, err = svc.Image(ctx, "covers/../../secret.txt")
	require.ErrorIs(t, err, service.ErrImageNotFound)

	_, err = svc.Image(ctx, "")
	require.ErrorIs(t, err, service.ErrImageNotFound)
}

func TestImageContentType(t *testing.T) {
	cases := map[string]string{
		"a.png":  "image/png",
		"a.jpg":  "image/jpeg",
		"a.JPEG": "image/jpeg",
		"a.webp": "image/webp",
		"a.gif":  "application/octet-stream",
		"noext":  "application/octet-stream",
	}
	for name, want := range cases {
		require.Equal(t, want, service.ImageContentType(name), name)
	}
}

func TestNameSlug(t *testing.T) {
	require.Equal(t, "moto-x3m", service.NameSlug("Moto X3M"))
	require.Equal(t, "a-b", service.NameSlug("  A \t B "))
}

func TestParseAdded(t *testing.T) {
	require.True(t, service.ParseAdded("").IsZero())
	require.True(t, service.ParseAdded("yesterday").IsZero())
	require.Equal(t, 2024, service.ParseAdded("2024-05-01").Year())
	require.Equal(t, 2024, service.ParseAdded("2024-05-01T10:00:00Z").Year())
}
