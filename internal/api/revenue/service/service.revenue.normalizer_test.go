// Package revenuesvc - Test chuẩn hóa CSV báo cáo: quy tắc bỏ dòng, fallback giá trị, lỗi cấu trúc.
package revenuesvc

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shakibkumnale/souldistribution/internal/common"
)

const reportHeader = "Payment Date,Start of reporting period,End of reporting period,Store,Store service,Country of sale or stream,Album,UPC,Track,ISRC,Quantity of sales or streams,Gross earnings (USD),Net earnings (USD),Share %"

func TestNormalizeReport_RowAccounting(t *testing.T) {
	// 3 dòng dữ liệu: 2 hợp lệ, 1 thiếu ISRC
	csvData := reportHeader + "\n" +
		"2024-01-15,2024-01-01,2024-01-31,Spotify,Premium,US,Album A,123,Song A,USRC17607839,100,2.00,1.50,100\n" +
		"2024-01-15,2024-01-01,2024-01-31,Apple Music,,IN,Album A,123,Song A,,50,2.50,2.00,100\n" +
		"2024-01-15,2024-01-01,2024-01-31,Apple Music,,IN,Album B,456,Song B,USRC17607840,80,2.50,2.00,100\n"

	entries, skipped, err := NormalizeReport(strings.NewReader(csvData), "q1.csv", 1)
	require.NoError(t, err)

	assert.Len(t, entries, 2, "Phải giữ đúng 2 dòng hợp lệ")
	assert.Equal(t, 1, skipped, "Phải bỏ qua đúng 1 dòng thiếu ISRC")
	assert.Equal(t, 3, len(entries)+skipped, "Tổng dòng giữ + bỏ phải bằng số dòng dữ liệu")
}

func TestNormalizeReport_SkipRules(t *testing.T) {
	csvData := reportHeader + "\n" +
		",2024-01-01,2024-01-31,Spotify,,US,A,1,Song,ISRC1,1,1,1,100\n" + // thiếu Payment Date
		"not-a-date,2024-01-01,2024-01-31,Spotify,,US,A,1,Song,ISRC2,1,1,1,100\n" + // ngày hỏng
		"2024-01-15,,,Spotify,,US,A,1,Song,ISRC3,1,1,1,100\n" // hợp lệ

	entries, skipped, err := NormalizeReport(strings.NewReader(csvData), "r.csv", 1)
	require.NoError(t, err)

	assert.Equal(t, 2, skipped)
	require.Len(t, entries, 1)
	assert.Equal(t, "ISRC3", entries[0].ISRC)
}

func TestNormalizeReport_DefaultsAndFallbacks(t *testing.T) {
	// Kỳ báo cáo trống, quantity không phải số, share trống
	csvData := reportHeader + "\n" +
		"2024-01-15,,,Spotify,,US,Album,1,Song,ISRC1,abc,\"$1,234.56\",,\n"

	entries, _, err := NormalizeReport(strings.NewReader(csvData), "r.csv", 1)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	e := entries[0]
	assert.Equal(t, e.PaymentDate, e.ReportingPeriodStart, "Kỳ báo cáo trống phải lấy theo ngày thanh toán")
	assert.Equal(t, e.PaymentDate, e.ReportingPeriodEnd)
	assert.Equal(t, int64(0), e.Quantity, "Quantity không parse được phải về 0")
	assert.InDelta(t, 1234.56, e.GrossEarnings, 1e-9, "Phải parse được tiền có $ và dấu phẩy")
	assert.Equal(t, float64(0), e.NetEarnings, "Net trống phải về 0")
	assert.Equal(t, float64(100), e.SharePercentage, "Share trống phải mặc định 100")
}

func TestNormalizeReport_TrimsHeadersAndValues(t *testing.T) {
	csvData := " Payment Date , ISRC ,Extra Column\n" +
		" 2024-01-15 , ISRC1 ,ignored\n"

	entries, skipped, err := NormalizeReport(strings.NewReader(csvData), "r.csv", 1)
	require.NoError(t, err)
	assert.Equal(t, 0, skipped)
	require.Len(t, entries, 1)
	assert.Equal(t, "ISRC1", entries[0].ISRC, "Giá trị phải được trim")
	assert.Empty(t, entries[0].Store, "Cột thiếu phải coi là rỗng")
}

func TestNormalizeReport_StructuralErrorKeepsNothing(t *testing.T) {
	// Dòng 2 lệch số cột so với header
	csvData := reportHeader + "\n" +
		"2024-01-15,2024-01-01\n"

	entries, skipped, err := NormalizeReport(strings.NewReader(csvData), "bad.csv", 1)
	require.Error(t, err)

	var appErr *common.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, common.ErrCodeReportParse.Code, appErr.Code.Code)
	assert.Equal(t, common.StatusBadRequest, appErr.StatusCode)
	assert.Nil(t, entries, "Lỗi cấu trúc thì không entry nào được giữ")
	assert.Equal(t, 0, skipped)
}

func TestNormalizeReport_EmptyFile(t *testing.T) {
	_, _, err := NormalizeReport(strings.NewReader(""), "empty.csv", 1)
	require.Error(t, err)

	var appErr *common.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, common.ErrCodeReportParse.Code, appErr.Code.Code)
}

func TestParseReportDate_Layouts(t *testing.T) {
	for _, s := range []string{"2024-01-15", "01/15/2024", "1/15/2024"} {
		_, ok := parseReportDate(s)
		assert.True(t, ok, "Phải parse được ngày %q", s)
	}
	_, ok := parseReportDate("15 Jan 2024")
	assert.False(t, ok)
}
