package draft

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rorical/ZenPad/internal/models"
)

func openStore(t *testing.T, dir string) *Store {
	t.Helper()
	s, err := Open(context.Background(), dir)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestLoadDefaultsWhenEmpty(t *testing.T) {
	s := openStore(t, t.TempDir())

	d, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.DefaultTitle, d.Title)
	assert.Equal(t, "", d.Content)
}

func TestSaveReloadRoundTrip(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	s := openStore(t, dir)

	want := models.Draft{
		Title:     "Night Train",
		Content:   "The platform hummed.\n\nNobody boarded. ünïcödé ✓",
		UpdatedAt: time.Now(),
	}
	require.NoError(t, s.Save(ctx, want))
	require.NoError(t, s.Close())

	reopened := openStore(t, dir)
	got, err := reopened.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, want.Title, got.Title)
	assert.Equal(t, want.Content, got.Content)
	assert.Equal(t, want.UpdatedAt.UnixMilli(), got.UpdatedAt.UnixMilli())
}

func TestSaveBlankTitleStoresDefault(t *testing.T) {
	ctx := context.Background()
	s := openStore(t, t.TempDir())

	require.NoError(t, s.Save(ctx, models.Draft{Title: "  ", Content: "x", UpdatedAt: time.Now()}))
	got, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.DefaultTitle, got.Title)
}

func TestSaveRejectsStaleRevision(t *testing.T) {
	ctx := context.Background()
	s := openStore(t, t.TempDir())

	now := time.Now()
	require.NoError(t, s.Save(ctx, models.Draft{Title: "T", Content: "newer", UpdatedAt: now, Revision: 2}))
	err := s.Save(ctx, models.Draft{Title: "T", Content: "older", UpdatedAt: now.Add(time.Second), Revision: 1})
	assert.ErrorIs(t, err, ErrStale)

	got, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "newer", got.Content)
}

func TestFutureStampedDraftDoesNotBlockSaves(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	s := openStore(t, dir)
	require.NoError(t, s.Save(ctx, models.Draft{Title: "T", Content: "from a fast clock", UpdatedAt: time.Now().Add(time.Hour)}))
	require.NoError(t, s.Close())

	reopened := openStore(t, dir)
	d, err := reopened.Load(ctx)
	require.NoError(t, err)
	assert.False(t, d.UpdatedAt.After(time.Now()), "stored stamp is clamped to now")

	d.Content += " and an edit"
	d.UpdatedAt = time.Now()
	d.Revision = 1
	require.NoError(t, reopened.Save(ctx, d))

	got, err := reopened.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "from a fast clock and an edit", got.Content)
}

func TestClearResetsToDefaults(t *testing.T) {
	ctx := context.Background()
	s := openStore(t, t.TempDir())
	require.NoError(t, s.Save(ctx, models.Draft{Title: "Keep", Content: "words", UpdatedAt: time.Now().Add(-time.Minute)}))

	d, err := s.Clear(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.DefaultTitle, d.Title)

	got, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.DefaultTitle, got.Title)
	assert.Equal(t, "", got.Content)
}
