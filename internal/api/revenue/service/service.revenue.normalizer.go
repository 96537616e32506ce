package revenuesvc

import (
	"encoding/csv"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	revenuemodels "github.com/shakibkumnale/souldistribution/internal/api/revenue/models"
	"github.com/shakibkumnale/souldistribution/internal/common"
	"github.com/shakibkumnale/souldistribution/internal/logger"
	"github.com/shakibkumnale/souldistribution/internal/utility"
)

// Tên cột chuẩn trong file báo cáo phân phối. Header và giá trị đều được trim
// trước khi so khớp, cột lạ bị bỏ qua, cột thiếu coi như rỗng.
const (
	colPaymentDate     = "Payment Date"
	colReportingStart  = "Start of reporting period"
	colReportingEnd    = "End of reporting period"
	colStore           = "Store"
	colStoreService    = "Store service"
	colCountry         = "Country of sale or stream"
	colAlbum           = "Album"
	colUPC             = "UPC"
	colTrack           = "Track"
	colISRC            = "ISRC"
	colQuantity        = "Quantity of sales or streams"
	colGrossEarnings   = "Gross earnings (USD)"
	colNetEarnings     = "Net earnings (USD)"
	colSharePercentage = "Share %"
)

// Các định dạng ngày gặp trong báo cáo của các store khác nhau.
var reportDateLayouts = []string{
	"2006-01-02",
	"01/02/2006",
	"1/2/2006",
	"2006-01-02T15:04:05Z07:00",
}

// NormalizeReport đọc toàn bộ CSV báo cáo và trả về các entry hợp lệ cùng số dòng bị bỏ qua.
// Lỗi cấu trúc CSV (quote hỏng, số cột lệch) trả về ErrReportParse và không entry nào được giữ.
// Dòng thiếu Payment Date hoặc ISRC, hoặc có Payment Date không parse được, bị bỏ qua từng dòng.
func NormalizeReport(r io.Reader, reportFile string, uploadDate int64) ([]revenuemodels.RevenueEntry, int, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, 0, common.NewError(
			common.ErrCodeReportParse,
			"file báo cáo không đúng định dạng CSV",
			common.StatusBadRequest,
			map[string]interface{}{"reportFile": reportFile, "error": err.Error()},
		)
	}
	if len(records) == 0 {
		return nil, 0, common.NewError(
			common.ErrCodeReportParse,
			"file báo cáo rỗng",
			common.StatusBadRequest,
			map[string]interface{}{"reportFile": reportFile},
		)
	}

	// Map tên cột → chỉ số, header được trim trước khi so khớp
	headerIndex := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		headerIndex[strings.TrimSpace(name)] = i
	}

	log := logger.GetAppLogger()
	entries := make([]revenuemodels.RevenueEntry, 0, len(records)-1)
	skipped := 0

	for rowNum, record := range records[1:] {
		field := func(col string) string {
			idx, ok := headerIndex[col]
			if !ok || idx >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[idx])
		}

		paymentDateRaw := field(colPaymentDate)
		isrc := field(colISRC)
		if paymentDateRaw == "" || isrc == "" {
			skipped++
			continue
		}

		paymentDate, ok := parseReportDate(paymentDateRaw)
		if !ok {
			log.WithFields(logrus.Fields{
				"reportFile":  reportFile,
				"row":         rowNum + 2,
				"paymentDate": paymentDateRaw,
			}).Warn("Bỏ qua dòng có ngày thanh toán không hợp lệ")
			skipped++
			continue
		}

		// Kỳ báo cáo thiếu hoặc hỏng thì lấy theo ngày thanh toán
		reportingStart := paymentDate
		if d, ok := parseReportDate(field(colReportingStart)); ok {
			reportingStart = d
		}
		reportingEnd := paymentDate
		if d, ok := parseReportDate(field(colReportingEnd)); ok {
			reportingEnd = d
		}

		gross := utility.ParseMoneySafe(field(colGrossEarnings), decimal.Zero)
		net := utility.ParseMoneySafe(field(colNetEarnings), decimal.Zero)
		share := utility.ParseMoneySafe(strings.TrimSuffix(field(colSharePercentage), "%"), decimal.NewFromInt(100))

		entries = append(entries, revenuemodels.RevenueEntry{
			ISRC:                 isrc,
			PaymentDate:          paymentDate,
			ReportingPeriodStart: reportingStart,
			ReportingPeriodEnd:   reportingEnd,
			Store:                field(colStore),
			StoreService:         field(colStoreService),
			Country:              field(colCountry),
			Album:                field(colAlbum),
			UPC:                  field(colUPC),
			Track:                field(colTrack),
			Quantity:             int64(utility.ParseIntSafe(field(colQuantity), 0)),
			GrossEarnings:        gross.InexactFloat64(),
			NetEarnings:          net.InexactFloat64(),
			SharePercentage:      share.InexactFloat64(),
			ReportFile:           reportFile,
			UploadDate:           uploadDate,
		})
	}

	return entries, skipped, nil
}

// parseReportDate parse ngày theo các định dạng đã biết, trả về UnixMilli lúc 00:00 UTC.
func parseReportDate(s string) (int64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	for _, layout := range reportDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UnixMilli(), true
		}
	}
	return 0, false
}
