// Package revenuesvc - Test registry file báo cáo và các thuộc tính của pipeline nhập.
package revenuesvc

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/shakibkumnale/souldistribution/internal/common"
)

func TestListReportsPipeline_Shape(t *testing.T) {
	pipeline := listReportsPipeline()
	require.Len(t, pipeline, 2)

	group, ok := pipeline[0][0].Value.(bson.M)
	require.True(t, ok)
	assert.Equal(t, "$reportFile", group["_id"], "Registry gộp theo tên file báo cáo")
	assert.Equal(t, bson.M{"$max": "$uploadDate"}, group["uploadDate"], "Cùng file upload nhiều lần lấy lần gần nhất")
	assert.Equal(t, bson.M{"$sum": 1}, group["entriesCount"], "Đếm mọi entry của file, upload lại thì cộng dồn")
	assert.Equal(t, bson.M{"$sum": "$netEarnings"}, group["totalNetEarnings"])

	assert.Equal(t, "$sort", pipeline[1][0].Key)
	assert.Equal(t, bson.M{"uploadDate": -1}, pipeline[1][0].Value, "File mới nhất phải đứng đầu")
}

func TestDeleteReport_EmptyFilename(t *testing.T) {
	svc := newTestService(&fakeCatalog{})

	result, err := svc.DeleteReport(context.Background(), "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrRequiredField))
	assert.Nil(t, result)
}

func TestProcessUpload_RowAccounting(t *testing.T) {
	// Mọi dòng đều thiếu ISRC nên không có gì để ghi
	csvData := reportHeader + "\n" +
		"2024-01-15,,,Spotify,,US,Album A,123,Song A,,100,2.00,1.50,100\n" +
		"2024-01-16,,,Apple Music,,IN,Album A,123,Song A,,50,2.50,2.00,100\n"

	svc := newTestService(&fakeCatalog{})
	result, err := svc.ProcessUpload(context.Background(), strings.NewReader(csvData), "q1.csv")
	require.NoError(t, err)

	assert.Equal(t, 0, result.InsertedCount)
	assert.Equal(t, 2, result.SkippedRowCount)
	assert.Equal(t, "q1.csv", result.ReportFile)
}

func TestProcessUpload_StructuralErrorAborts(t *testing.T) {
	csvData := reportHeader + "\n" +
		"2024-01-15,2024-01-01\n"

	svc := newTestService(&fakeCatalog{})
	result, err := svc.ProcessUpload(context.Background(), strings.NewReader(csvData), "bad.csv")
	require.Error(t, err)
	assert.Nil(t, result, "Lỗi cấu trúc CSV thì không trả kết quả một phần")
}

func TestReUploadSameFileAppends(t *testing.T) {
	csvData := reportHeader + "\n" +
		"2024-01-15,2024-01-01,2024-01-31,Spotify,Premium,US,Album A,123,Song A,USRC17607839,100,2.00,1.50,100\n"

	first, skipped, err := NormalizeReport(strings.NewReader(csvData), "q1.csv", 1)
	require.NoError(t, err)
	require.Equal(t, 0, skipped)
	second, _, err := NormalizeReport(strings.NewReader(csvData), "q1.csv", 2)
	require.NoError(t, err)

	// Upload lại cùng file không dedupe: hai lô cùng reportFile cộng dồn trong registry
	combined := append(first, second...)
	rollups := RollupTracks(combined)
	require.Len(t, rollups, 1)
	assert.Equal(t, int64(200), rollups[0].TotalQuantity, "Số liệu nhân đôi khi cùng file được nhập hai lần")
	assert.InDelta(t, 3.00, rollups[0].TotalNetEarnings, 1e-9)
	assert.Equal(t, "q1.csv", combined[0].ReportFile)
	assert.Equal(t, combined[0].ReportFile, combined[1].ReportFile, "Cả hai lần nhập cùng nằm dưới một tên file trong registry")
}
