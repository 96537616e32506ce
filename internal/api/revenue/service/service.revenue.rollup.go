package revenuesvc

import (
	"context"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	revenuedto "github.com/shakibkumnale/souldistribution/internal/api/revenue/dto"
	revenuemodels "github.com/shakibkumnale/souldistribution/internal/api/revenue/models"
)

// trackAccumulator gom số liệu của một track trong lúc duyệt entries.
// Tiền cộng dồn bằng decimal để tránh trôi số float qua hàng nghìn dòng.
type trackAccumulator struct {
	title             string
	isrc              string
	quantity          int64
	gross             decimal.Decimal
	net               decimal.Decimal
	latestPaymentDate int64
	latestReportDate  int64
	stores            map[string]*storeAccumulator
	countries         map[string]*countryAccumulator
}

type storeAccumulator struct {
	quantity  int64
	net       decimal.Decimal
	countries map[string]*countryAccumulator
}

type countryAccumulator struct {
	quantity int64
	net      decimal.Decimal
	entries  []revenuedto.RollupEntryRef
}

// GetTrackRollups gộp các entries khớp bộ lọc theo track.
// Danh sách tổng quan chỉ gộp trang hiện tại để chi phí mỗi request có giới hạn;
// query một track cụ thể mới gộp trọn tập khớp của track đó.
// Kết quả xếp theo tổng netEarnings giảm dần.
func (s *RevenueService) GetTrackRollups(ctx context.Context, q revenuedto.AnalyticsQuery) ([]revenuedto.TrackRollup, error) {
	ef, err := s.buildEntryFilter(ctx, q)
	if err != nil {
		return nil, err
	}
	if ef.empty {
		return []revenuedto.TrackRollup{}, nil
	}

	var entries []revenuemodels.RevenueEntry
	if q.Track != "" {
		entries, err = s.Find(ctx, ef.filter, nil)
	} else {
		entries, err = s.findEntries(ctx, ef.filter, q.Limit)
	}
	if err != nil {
		return nil, err
	}

	return RollupTracks(entries), nil
}

// GetTrackRollup gộp doanh thu của một track theo key (ObjectID hex, slug hoặc ISRC).
// Track có trong catalog nhưng chưa có dòng doanh thu nào trả về rollup toàn số 0;
// cả catalog lẫn dữ liệu doanh thu đều không biết key thì ErrNotFound.
func (s *RevenueService) GetTrackRollup(ctx context.Context, q revenuedto.AnalyticsQuery) ([]revenuedto.TrackRollup, error) {
	rollups, err := s.GetTrackRollups(ctx, q)
	if err != nil {
		return nil, err
	}
	if len(rollups) > 0 {
		return rollups, nil
	}

	track, err := s.catalog.ResolveTrack(ctx, q.Track)
	if err != nil {
		return nil, err
	}

	key := track.ISRC
	if key == "" {
		key = strings.ToLower(track.Title)
	}
	return []revenuedto.TrackRollup{{
		TrackID:   key,
		Title:     track.Title,
		ISRC:      track.ISRC,
		Stores:    []revenuedto.StoreBreakdown{},
		Countries: []revenuedto.CountryBreakdown{},
	}}, nil
}

// RollupTracks gộp danh sách entries theo track trong bộ nhớ.
func RollupTracks(entries []revenuemodels.RevenueEntry) []revenuedto.TrackRollup {
	accs := make(map[string]*trackAccumulator)

	for _, e := range entries {
		key := trackKey(e)
		acc, ok := accs[key]
		if !ok {
			acc = &trackAccumulator{
				title:     e.Track,
				isrc:      e.ISRC,
				stores:    make(map[string]*storeAccumulator),
				countries: make(map[string]*countryAccumulator),
			}
			if acc.title == "" {
				acc.title = "Unknown Track"
			}
			accs[key] = acc
		}

		acc.quantity += e.Quantity
		acc.gross = acc.gross.Add(decimal.NewFromFloat(e.GrossEarnings))
		acc.net = acc.net.Add(decimal.NewFromFloat(e.NetEarnings))

		if e.PaymentDate > acc.latestPaymentDate {
			acc.latestPaymentDate = e.PaymentDate
		}
		reportDate := e.ReportingPeriodStart
		if reportDate == 0 {
			reportDate = e.PaymentDate
		}
		if reportDate > acc.latestReportDate {
			acc.latestReportDate = reportDate
		}

		store, ok := acc.stores[e.Store]
		if !ok {
			store = &storeAccumulator{countries: make(map[string]*countryAccumulator)}
			acc.stores[e.Store] = store
		}
		store.quantity += e.Quantity
		store.net = store.net.Add(decimal.NewFromFloat(e.NetEarnings))

		ref := revenuedto.RollupEntryRef{
			PaymentDate:  e.PaymentDate,
			Store:        e.Store,
			StoreService: e.StoreService,
			Quantity:     e.Quantity,
			NetEarnings:  e.NetEarnings,
			ReportFile:   e.ReportFile,
		}
		addCountry(store.countries, e, ref)
		addCountry(acc.countries, e, ref)
	}

	rollups := make([]revenuedto.TrackRollup, 0, len(accs))
	for key, acc := range accs {
		rollup := revenuedto.TrackRollup{
			TrackID:            key,
			Title:              acc.title,
			ISRC:               acc.isrc,
			TotalQuantity:      acc.quantity,
			TotalGrossEarnings: acc.gross.InexactFloat64(),
			TotalNetEarnings:   acc.net.InexactFloat64(),
			LatestPaymentDate:  acc.latestPaymentDate,
			LatestReportDate:   acc.latestReportDate,
			Stores:             flattenStores(acc.stores),
			Countries:          flattenCountries(acc.countries),
		}
		// Track chỉ có dòng 0 lượt (điều chỉnh, hoàn tiền) thì đơn giá trung bình là 0
		if acc.quantity > 0 {
			rollup.AveragePerUnit = acc.net.Div(decimal.NewFromInt(acc.quantity)).InexactFloat64()
		}
		rollups = append(rollups, rollup)
	}

	// Hòa netEarnings thì xếp theo key để thứ tự ổn định giữa các lần gọi
	sort.Slice(rollups, func(i, j int) bool {
		if rollups[i].TotalNetEarnings != rollups[j].TotalNetEarnings {
			return rollups[i].TotalNetEarnings > rollups[j].TotalNetEarnings
		}
		return rollups[i].TrackID < rollups[j].TrackID
	})

	return rollups
}

// trackKey định danh track để gộp: ISRC, rồi tên track chữ thường, cuối cùng "unknown".
func trackKey(e revenuemodels.RevenueEntry) string {
	if e.ISRC != "" {
		return e.ISRC
	}
	if e.Track != "" {
		return strings.ToLower(e.Track)
	}
	return "unknown"
}

func addCountry(countries map[string]*countryAccumulator, e revenuemodels.RevenueEntry, ref revenuedto.RollupEntryRef) {
	country, ok := countries[e.Country]
	if !ok {
		country = &countryAccumulator{}
		countries[e.Country] = country
	}
	country.quantity += e.Quantity
	country.net = country.net.Add(decimal.NewFromFloat(e.NetEarnings))
	country.entries = append(country.entries, ref)
}

func flattenStores(stores map[string]*storeAccumulator) []revenuedto.StoreBreakdown {
	result := make([]revenuedto.StoreBreakdown, 0, len(stores))
	for name, store := range stores {
		result = append(result, revenuedto.StoreBreakdown{
			Name:        name,
			Quantity:    store.quantity,
			NetEarnings: store.net.InexactFloat64(),
			Countries:   flattenCountries(store.countries),
		})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].NetEarnings != result[j].NetEarnings {
			return result[i].NetEarnings > result[j].NetEarnings
		}
		return result[i].Name < result[j].Name
	})
	return result
}

func flattenCountries(countries map[string]*countryAccumulator) []revenuedto.CountryBreakdown {
	result := make([]revenuedto.CountryBreakdown, 0, len(countries))
	for name, country := range countries {
		result = append(result, revenuedto.CountryBreakdown{
			Name:        name,
			Quantity:    country.quantity,
			NetEarnings: country.net.InexactFloat64(),
			Entries:     country.entries,
		})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].NetEarnings != result[j].NetEarnings {
			return result[i].NetEarnings > result[j].NetEarnings
		}
		return result[i].Name < result[j].Name
	})
	return result
}
