package revenuesvc

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	revenuemodels "github.com/shakibkumnale/souldistribution/internal/api/revenue/models"
)

func TestMatchEntries_LinksKnownIsrc(t *testing.T) {
	releaseID := primitive.NewObjectID()
	svc := newTestService(&fakeCatalog{
		isrcMap: map[string]primitive.ObjectID{"ISRC1": releaseID},
	})

	entries := []revenuemodels.RevenueEntry{
		{ISRC: "ISRC1"},
		{ISRC: "ISRC1"},
		{ISRC: "UNKNOWN"},
	}

	err := svc.MatchEntries(context.Background(), entries)
	require.NoError(t, err)

	assert.Equal(t, releaseID, entries[0].ReleaseID)
	assert.Equal(t, releaseID, entries[1].ReleaseID, "Các dòng cùng ISRC phải cùng link một release")
	assert.True(t, entries[2].ReleaseID.IsZero(), "ISRC lạ vẫn được giữ, không link release")
}

func TestMatchEntries_CatalogDownKeepsEntriesUnlinked(t *testing.T) {
	svc := newTestService(&fakeCatalog{
		isrcErr: errors.New("catalog unavailable"),
	})

	entries := []revenuemodels.RevenueEntry{
		{ISRC: "ISRC1"},
		{ISRC: "ISRC2"},
	}

	err := svc.MatchEntries(context.Background(), entries)
	require.NoError(t, err, "Catalog lỗi không được chặn việc nhập doanh thu")
	assert.True(t, entries[0].ReleaseID.IsZero())
	assert.True(t, entries[1].ReleaseID.IsZero(), "Entry giữ nguyên không link khi catalog không truy vấn được")
}

func TestMatchEntries_EmptyBatch(t *testing.T) {
	svc := newTestService(&fakeCatalog{})
	err := svc.MatchEntries(context.Background(), nil)
	require.NoError(t, err)
}
