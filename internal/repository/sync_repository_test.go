package repository_test

import (
	"context"
	"encoding/json"
	"testing"

	"kitten/backend/internal/model"
	"kitten/backend/internal/repository"
	"kitten/backend/internal/repository/testutil"

	"github.com/stretchr/testify/require"
)

func TestSyncRepository_Toggles_MissingReturnsNil(t *testing.T) {
	t.Parallel()
	db := testutil.NewTestDB(t)
	repo := repository.NewSyncRepository(db)

	toggles, err := repo.GetToggles(context.Background(), "nobody")
	require.NoError(t, err)
	require.Nil(t, toggles)
}

func TestSyncRepository_SaveToggles_Upsert(t *testing.T) {
	t.Parallel()
	db := testutil.NewTestDB(t)
	repo := repository.NewSyncRepository(db)
	ctx := context.Background()

	saved, err := repo.SaveToggles(ctx, model.SyncToggles{UID: "u1", Favorites: true})
	require.NoError(t, err)
	require.False(t, saved.UpdatedAt.IsZero())

	_, err = repo.SaveToggles(ctx, model.SyncToggles{UID: "u1", History: true, Quests: true})
	require.NoError(t, err)

	got, err := repo.GetToggles(ctx, "u1")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.False(t, got.Favorites)
	require.True(t, got.History)
	require.True(t, got.Quests)
}

func TestSyncRepository_Document_RoundTrip(t *testing.T) {
	t.Parallel()
	db := testutil.NewTestDB(t)
	repo := repository.NewSyncRepository(db)
	ctx := context.Background()

	missing, err := repo.GetDocument(ctx, "u1", model.SyncDatasetFavorites)
	require.NoError(t, err)
	require.Nil(t, missing)

	_, err = repo.SaveDocument(ctx, model.SyncDocument{
		UID:     "u1",
		Dataset: model.SyncDatasetFavorites,
		Data:    json.RawMessage(`{"a":1}`),
		Hash:    "h1",
	})
	require.NoError(t, err)

	_, err = repo.SaveDocument(ctx, model.SyncDocument{
		UID:     "u1",
		Dataset: model.SyncDatasetFavorites,
		Data:    json.RawMessage(`{"a":2}`),
		Hash:    "h2",
	})
	require.NoError(t, err)

	doc, err := repo.GetDocument(ctx, "u1", model.SyncDatasetFavorites)
	require.NoError(t, err)
	require.NotNil(t, doc)
	require.JSONEq(t, `{"a":2}`, string(doc.Data))
	require.Equal(t, "h2", doc.Hash)

	other, err := repo.GetDocument(ctx, "u2", model.SyncDatasetFavorites)
	require.NoError(t, err)
	require.Nil(t, other)
}

func TestSyncRepository_DeleteDocument(t *testing.T) {
	t.Parallel()
	db := testutil.NewTestDB(t)
	repo := repository.NewSyncRepository(db)
	ctx := context.Background()

	_, err := repo.SaveDocument(ctx, model.SyncDocument{UID: "u1", Dataset: model.SyncDatasetQuests, Data: json.RawMessage(`{}`)})
	require.NoError(t, err)

	require.NoError(t, repo.DeleteDocument(ctx, "u1", model.SyncDatasetQuests))
	require.NoError(t, repo.DeleteDocument(ctx, "u1", model.SyncDatasetQuests))

	doc, err := repo.GetDocument(ctx, "u1", model.SyncDatasetQuests)
	require.NoError(t, err)
	require.Nil(t, doc)
}
