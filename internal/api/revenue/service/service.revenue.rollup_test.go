package revenuesvc

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	catalogmodels "github.com/shakibkumnale/souldistribution/internal/api/catalog/models"
	revenuedto "github.com/shakibkumnale/souldistribution/internal/api/revenue/dto"
	revenuemodels "github.com/shakibkumnale/souldistribution/internal/api/revenue/models"
	"github.com/shakibkumnale/souldistribution/internal/common"
)

func TestRollupTracks_GroupsByIsrc(t *testing.T) {
	entries := []revenuemodels.RevenueEntry{
		{ISRC: "ISRC1", Track: "Song A", Store: "Spotify", Country: "US", Quantity: 100, GrossEarnings: 2.00, NetEarnings: 1.50, PaymentDate: 100},
		{ISRC: "ISRC1", Track: "Song A", Store: "Apple Music", Country: "IN", Quantity: 80, GrossEarnings: 2.50, NetEarnings: 2.00, PaymentDate: 200},
		{ISRC: "ISRC2", Track: "Song B", Store: "Spotify", Country: "US", Quantity: 10, GrossEarnings: 0.50, NetEarnings: 0.40, PaymentDate: 150},
	}

	rollups := RollupTracks(entries)
	require.Len(t, rollups, 2)

	// Xếp theo tổng netEarnings giảm dần: ISRC1 (3.50) trước ISRC2 (0.40)
	first := rollups[0]
	assert.Equal(t, "ISRC1", first.TrackID)
	assert.Equal(t, "Song A", first.Title)
	assert.Equal(t, int64(180), first.TotalQuantity)
	assert.InDelta(t, 4.50, first.TotalGrossEarnings, 1e-9)
	assert.InDelta(t, 3.50, first.TotalNetEarnings, 1e-9)
	assert.Equal(t, int64(200), first.LatestPaymentDate)

	assert.Equal(t, "ISRC2", rollups[1].TrackID)
}

func TestRollupTracks_StoreAndCountryBreakdown(t *testing.T) {
	entries := []revenuemodels.RevenueEntry{
		{ISRC: "ISRC1", Track: "Song A", Store: "Spotify", Country: "US", Quantity: 100, NetEarnings: 1.50},
		{ISRC: "ISRC1", Track: "Song A", Store: "Spotify", Country: "IN", Quantity: 50, NetEarnings: 0.30},
		{ISRC: "ISRC1", Track: "Song A", Store: "Apple Music", Country: "US", Quantity: 80, NetEarnings: 2.00},
	}

	rollups := RollupTracks(entries)
	require.Len(t, rollups, 1)

	stores := rollups[0].Stores
	require.Len(t, stores, 2)
	// Store xếp theo netEarnings giảm dần: Apple Music (2.00) trước Spotify (1.50+0.30)
	assert.Equal(t, "Apple Music", stores[0].Name)
	assert.InDelta(t, 2.00, stores[0].NetEarnings, 1e-9)

	spotify := stores[1]
	assert.Equal(t, "Spotify", spotify.Name)
	assert.Equal(t, int64(150), spotify.Quantity)
	require.Len(t, spotify.Countries, 2)
	assert.Equal(t, "US", spotify.Countries[0].Name, "Quốc gia trong store cũng xếp theo netEarnings")
	require.Len(t, spotify.Countries[0].Entries, 1, "Mỗi quốc gia phải giữ danh sách dòng gốc")

	// Breakdown quốc gia ở cấp track gộp cả hai store
	countries := rollups[0].Countries
	require.Len(t, countries, 2)
	assert.Equal(t, "US", countries[0].Name)
	assert.InDelta(t, 3.50, countries[0].NetEarnings, 1e-9)
	assert.Equal(t, int64(180), countries[0].Quantity)
}

func TestRollupTracks_TieBreakIsDeterministic(t *testing.T) {
	entries := []revenuemodels.RevenueEntry{
		{ISRC: "ISRC2", Track: "Song B", Store: "Tidal", Country: "DE", Quantity: 10, NetEarnings: 1.00},
		{ISRC: "ISRC1", Track: "Song A", Store: "Spotify", Country: "US", Quantity: 10, NetEarnings: 1.00},
		{ISRC: "ISRC1", Track: "Song A", Store: "Apple Music", Country: "IN", Quantity: 10, NetEarnings: 1.00},
	}

	// Hòa netEarnings ở mọi cấp: thứ tự phải ổn định theo key, không theo thứ tự map
	for i := 0; i < 20; i++ {
		rollups := RollupTracks(entries)
		require.Len(t, rollups, 2)
		assert.Equal(t, "ISRC1", rollups[0].TrackID, "Track hòa tiền xếp theo key tăng dần")
		assert.Equal(t, "ISRC2", rollups[1].TrackID)

		stores := rollups[0].Stores
		require.Len(t, stores, 2)
		assert.Equal(t, "Apple Music", stores[0].Name, "Store hòa tiền xếp theo tên tăng dần")
		assert.Equal(t, "Spotify", stores[1].Name)

		countries := rollups[0].Countries
		require.Len(t, countries, 2)
		assert.Equal(t, "IN", countries[0].Name, "Quốc gia hòa tiền xếp theo tên tăng dần")
		assert.Equal(t, "US", countries[1].Name)
	}
}

func TestRollupTracks_TrackKeyFallback(t *testing.T) {
	entries := []revenuemodels.RevenueEntry{
		{ISRC: "", Track: "My Song", NetEarnings: 1},
		{ISRC: "", Track: "my song", NetEarnings: 1},
		{ISRC: "", Track: "", NetEarnings: 1},
	}

	rollups := RollupTracks(entries)
	require.Len(t, rollups, 2, "Tên track chỉ khác hoa thường phải gộp chung")

	keys := []string{rollups[0].TrackID, rollups[1].TrackID}
	assert.Contains(t, keys, "my song")
	assert.Contains(t, keys, "unknown", "Không có ISRC lẫn tên track thì rơi vào nhóm unknown")

	for _, r := range rollups {
		if r.TrackID == "unknown" {
			assert.Equal(t, "Unknown Track", r.Title)
		}
	}
}

func TestRollupTracks_ZeroQuantityAverage(t *testing.T) {
	// Dòng điều chỉnh: có tiền nhưng 0 lượt
	entries := []revenuemodels.RevenueEntry{
		{ISRC: "ISRC1", Track: "Song A", Quantity: 0, NetEarnings: 5.00},
	}

	rollups := RollupTracks(entries)
	require.Len(t, rollups, 1)
	assert.Equal(t, float64(0), rollups[0].AveragePerUnit, "Tổng 0 lượt thì đơn giá trung bình phải là 0, không chia cho 0")
}

func TestRollupTracks_LatestReportDate(t *testing.T) {
	entries := []revenuemodels.RevenueEntry{
		{ISRC: "ISRC1", PaymentDate: 300, ReportingPeriodStart: 100},
		{ISRC: "ISRC1", PaymentDate: 150, ReportingPeriodStart: 0}, // thiếu kỳ báo cáo, lấy paymentDate
	}

	rollups := RollupTracks(entries)
	require.Len(t, rollups, 1)
	assert.Equal(t, int64(300), rollups[0].LatestPaymentDate)
	assert.Equal(t, int64(150), rollups[0].LatestReportDate, "Kỳ báo cáo thiếu phải fallback sang paymentDate")
}

func TestGetTrackRollup_KnownTrackWithoutRevenue(t *testing.T) {
	// Artist không roster để tập entries rỗng theo định nghĩa, không cần query
	artistID := primitive.NewObjectID()
	svc := newTestService(&fakeCatalog{
		tracks: map[string]*catalogmodels.ReleaseWithArtists{
			"my-song": {Release: catalogmodels.Release{ID: primitive.NewObjectID(), Title: "My Song", ISRC: "ISRC9"}},
		},
	})

	rollups, err := svc.GetTrackRollup(context.Background(), revenuedto.AnalyticsQuery{
		Track:  "my-song",
		Artist: artistID.Hex(),
	})
	require.NoError(t, err, "Track có trong catalog nhưng chưa có doanh thu không phải lỗi")
	require.Len(t, rollups, 1)
	assert.Equal(t, "ISRC9", rollups[0].TrackID)
	assert.Equal(t, "My Song", rollups[0].Title)
	assert.Equal(t, float64(0), rollups[0].TotalNetEarnings)
	assert.NotNil(t, rollups[0].Stores)
	assert.Empty(t, rollups[0].Stores)
}

func TestGetTrackRollup_UnknownEverywhere(t *testing.T) {
	artistID := primitive.NewObjectID()
	svc := newTestService(&fakeCatalog{})

	_, err := svc.GetTrackRollup(context.Background(), revenuedto.AnalyticsQuery{
		Track:  "no-such-track",
		Artist: artistID.Hex(),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrNotFound), "Cả catalog lẫn doanh thu đều không biết key thì NotFound")
}

func TestRollupTracks_Empty(t *testing.T) {
	rollups := RollupTracks(nil)
	assert.NotNil(t, rollups)
	assert.Empty(t, rollups)
}
