package revenuesvc

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	catalogmodels "github.com/shakibkumnale/souldistribution/internal/api/catalog/models"
	revenuemodels "github.com/shakibkumnale/souldistribution/internal/api/revenue/models"
)

func TestEnrichEntries_MatchesByReleaseIdThenIsrc(t *testing.T) {
	releaseID := primitive.NewObjectID()
	otherID := primitive.NewObjectID()
	svc := newTestService(&fakeCatalog{
		tracks: map[string]*catalogmodels.ReleaseWithArtists{
			"a": {
				Release:       catalogmodels.Release{ID: releaseID, Title: "Song A", Slug: "song-a", CoverImage: "/a.jpg"},
				ArtistDetails: []catalogmodels.ArtistRef{{Name: "Artist A"}},
			},
			"b": {
				Release: catalogmodels.Release{ID: otherID, Title: "Song B", Slug: "song-b", ISRC: "ISRC2"},
			},
		},
	})

	entries := []revenuemodels.RevenueEntry{
		{ReleaseID: releaseID, ISRC: "ISRC1", Track: "Song A"}, // khớp theo releaseId
		{ISRC: "ISRC2", Track: "Song B"},                       // không link, khớp theo isrc
	}

	enriched, err := svc.enrichEntries(context.Background(), entries)
	require.NoError(t, err)
	require.Len(t, enriched, 2)

	assert.Equal(t, "Song A", enriched[0].Release.Title)
	assert.Equal(t, "song-a", enriched[0].Release.Slug)
	require.Len(t, enriched[0].Release.Artists, 1)
	assert.Equal(t, "Artist A", enriched[0].Release.Artists[0].Name)

	assert.Equal(t, "Song B", enriched[1].Release.Title, "Entry chưa link phải khớp catalog theo ISRC")
}

func TestEnrichEntries_PlaceholderForUnresolved(t *testing.T) {
	svc := newTestService(&fakeCatalog{})

	entries := []revenuemodels.RevenueEntry{
		{ISRC: "UNKNOWN1", Track: "Mystery Song"},
		{ISRC: "UNKNOWN2", Track: ""},
	}

	enriched, err := svc.enrichEntries(context.Background(), entries)
	require.NoError(t, err)
	require.Len(t, enriched, 2)

	assert.Equal(t, "Mystery Song", enriched[0].Release.Title, "Placeholder lấy tên track từ báo cáo")
	assert.Empty(t, enriched[0].Release.Slug)
	assert.NotNil(t, enriched[0].Release.Artists)
	assert.Empty(t, enriched[0].Release.Artists)

	assert.Equal(t, "Unknown Track", enriched[1].Release.Title, "Không có cả tên track thì dùng Unknown Track")
}

func TestEnrichEntries_Empty(t *testing.T) {
	svc := newTestService(&fakeCatalog{})
	enriched, err := svc.enrichEntries(context.Background(), nil)
	require.NoError(t, err)
	assert.NotNil(t, enriched)
	assert.Empty(t, enriched)
}

func TestEntryPageOptions_AlwaysLimited(t *testing.T) {
	opts := entryPageOptions(0)
	require.NotNil(t, opts.Limit)
	assert.Equal(t, int64(defaultEntryLimit), *opts.Limit, "Không chỉ định limit thì vẫn phải cắt trang mặc định")

	opts = entryPageOptions(25)
	require.NotNil(t, opts.Limit)
	assert.Equal(t, int64(25), *opts.Limit)
}
