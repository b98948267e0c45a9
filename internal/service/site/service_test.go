package site

import (
	"bytes"
	"context"
	"image/png"
	"testing"

	"github.com/genba-cloud/genba-attendance/internal/domain/roster"
	"github.com/genba-cloud/genba-attendance/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSiteTestStore() *memory.Store {
	sites := []roster.Site{
		{ID: "s1", Name: "渋谷桜丘プロジェクト A工区", QRCodeValue: "site-shibuya-a"},
		{ID: "s2", Name: "新宿駅西口再開発 B工区", QRCodeValue: "site-shinjuku-b"},
	}
	return memory.NewStore(nil, sites, "")
}

func TestSiteService_ResolveScan_Match(t *testing.T) {
	store := newSiteTestStore()
	svc := NewSiteService(store, store, false)

	result, err := svc.ResolveScan(context.Background(), "site-shinjuku-b")

	assert.NoError(t, err)
	assert.Equal(t, "ok", result.Outcome)
	require.NotNil(t, result.Site)
	assert.Equal(t, "s2", result.Site.ID)
	assert.False(t, result.Fallback)

	snap := store.Snapshot()
	require.NotNil(t, snap.ScannedSite)
	assert.Equal(t, "s2", snap.ScannedSite.ID)
}

func TestSiteService_ResolveScan_UnrecognizedIgnored(t *testing.T) {
	store := newSiteTestStore()
	svc := NewSiteService(store, store, false)

	result, err := svc.ResolveScan(context.Background(), "bogus-code")

	assert.NoError(t, err)
	assert.Equal(t, "ignored", result.Outcome)
	assert.Equal(t, ReasonUnrecognizedCode, result.Reason)
	assert.Nil(t, result.Site)
	assert.Nil(t, store.Snapshot().ScannedSite)
}

func TestSiteService_ResolveScan_FallbackFirstSite(t *testing.T) {
	store := newSiteTestStore()
	svc := NewSiteService(store, store, true)

	result, err := svc.ResolveScan(context.Background(), "bogus-code")

	assert.NoError(t, err)
	assert.Equal(t, "ok", result.Outcome)
	require.NotNil(t, result.Site)
	assert.Equal(t, "s1", result.Site.ID)
	assert.True(t, result.Fallback)
}

func TestSiteService_ResolveScan_FallbackWithoutSites(t *testing.T) {
	store := memory.NewStore(nil, nil, "")
	svc := NewSiteService(store, store, true)

	result, err := svc.ResolveScan(context.Background(), "bogus-code")

	assert.NoError(t, err)
	assert.Equal(t, "ignored", result.Outcome)
}

func TestSiteService_QRCodePNG(t *testing.T) {
	store := newSiteTestStore()
	svc := NewSiteService(store, store, false)

	data, err := svc.QRCodePNG(context.Background(), "s1")

	require.NoError(t, err)
	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 256, img.Bounds().Dx())
}

func TestSiteService_QRCodePNG_UnknownSite(t *testing.T) {
	store := newSiteTestStore()
	svc := NewSiteService(store, store, false)

	_, err := svc.QRCodePNG(context.Background(), "s9")

	assert.ErrorIs(t, err, roster.ErrSiteNotFound)
}
