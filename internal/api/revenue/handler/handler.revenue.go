// Package revenuehdl - Handler cho upload báo cáo, analytics doanh thu và registry file báo cáo.
package revenuehdl

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v3"

	basehdl "github.com/shakibkumnale/souldistribution/internal/api/base/handler"
	revenuedto "github.com/shakibkumnale/souldistribution/internal/api/revenue/dto"
	revenuesvc "github.com/shakibkumnale/souldistribution/internal/api/revenue/service"
	"github.com/shakibkumnale/souldistribution/internal/common"
)

// RevenueHandler xử lý request cho domain doanh thu.
type RevenueHandler struct {
	RevenueSvc *revenuesvc.RevenueService
}

// NewRevenueHandler tạo RevenueHandler mới.
func NewRevenueHandler() (*RevenueHandler, error) {
	svc, err := revenuesvc.NewRevenueService()
	if err != nil {
		return nil, fmt.Errorf("tạo RevenueService: %w", err)
	}
	return &RevenueHandler{RevenueSvc: svc}, nil
}

// HandleUpload xử lý POST /revenue/upload.
// Nhận file CSV qua multipart form field "file", trả về số dòng đã ghi và số dòng bị bỏ qua.
func (h *RevenueHandler) HandleUpload(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		fileHeader, err := c.FormFile("file")
		if err != nil {
			basehdl.HandleError(c, common.NewError(
				common.ErrCodeValidationInput,
				"Thiếu file báo cáo trong form field 'file'",
				common.StatusBadRequest,
				nil,
			))
			return nil
		}

		filename := filepath.Base(fileHeader.Filename)
		if !strings.EqualFold(filepath.Ext(filename), ".csv") {
			basehdl.HandleError(c, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("File '%s' không phải CSV", filename),
				common.StatusBadRequest,
				nil,
			))
			return nil
		}

		file, err := fileHeader.Open()
		if err != nil {
			basehdl.HandleError(c, common.NewError(
				common.ErrCodeReportParse,
				"Không đọc được file upload",
				common.StatusBadRequest,
				map[string]interface{}{"error": err.Error()},
			))
			return nil
		}
		defer file.Close()

		result, err := h.RevenueSvc.ProcessUpload(c.Context(), file, filename)
		if err != nil {
			basehdl.HandleError(c, err)
			return nil
		}

		basehdl.HandleSuccess(c, result)
		return nil
	})
}

// HandleAnalytics xử lý GET /revenue/analytics.
func (h *RevenueHandler) HandleAnalytics(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		query, err := parseAnalyticsQuery(c)
		if err != nil {
			basehdl.HandleError(c, err)
			return nil
		}

		response, err := h.RevenueSvc.GetAnalytics(c.Context(), query)
		if err != nil {
			basehdl.HandleError(c, err)
			return nil
		}

		basehdl.HandleSuccess(c, response)
		return nil
	})
}

// HandleTrackRollups xử lý GET /revenue/analytics/tracks và /revenue/analytics/tracks/:key.
// Có :key thì chỉ gộp track đó, không thì gộp toàn bộ tập khớp bộ lọc.
func (h *RevenueHandler) HandleTrackRollups(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		query, err := parseAnalyticsQuery(c)
		if err != nil {
			basehdl.HandleError(c, err)
			return nil
		}
		var rollups []revenuedto.TrackRollup
		if key := c.Params("key"); key != "" {
			query.Track = key
			rollups, err = h.RevenueSvc.GetTrackRollup(c.Context(), query)
		} else {
			rollups, err = h.RevenueSvc.GetTrackRollups(c.Context(), query)
		}
		if err != nil {
			basehdl.HandleError(c, err)
			return nil
		}

		basehdl.HandleSuccess(c, rollups)
		return nil
	})
}

// HandleListReports xử lý GET /revenue/reports.
func (h *RevenueHandler) HandleListReports(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		reports, err := h.RevenueSvc.ListReports(c.Context())
		if err != nil {
			basehdl.HandleError(c, err)
			return nil
		}

		basehdl.HandleSuccess(c, reports)
		return nil
	})
}

// HandleDeleteReport xử lý DELETE /revenue/reports/:filename.
func (h *RevenueHandler) HandleDeleteReport(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		filename := c.Params("filename")
		if filename == "" {
			basehdl.HandleError(c, common.NewError(common.ErrCodeValidationInput, "Thiếu tên file báo cáo", common.StatusBadRequest, nil))
			return nil
		}

		result, err := h.RevenueSvc.DeleteReport(c.Context(), filename)
		if err != nil {
			basehdl.HandleError(c, err)
			return nil
		}

		basehdl.HandleSuccess(c, result)
		return nil
	})
}

// parseAnalyticsQuery đọc bộ lọc analytics từ query string.
func parseAnalyticsQuery(c fiber.Ctx) (revenuedto.AnalyticsQuery, error) {
	query := revenuedto.AnalyticsQuery{
		Release: c.Query("release"),
		Artist:  c.Query("artist"),
		Store:   c.Query("store"),
		Country: c.Query("country"),
		From:    c.Query("from"),
		To:      c.Query("to"),
		Track:   c.Query("track"),
	}

	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || limit < 0 {
			return query, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("limit '%s' không phải số nguyên hợp lệ", raw),
				common.StatusBadRequest,
				nil,
			)
		}
		query.Limit = limit
	}

	return query, nil
}
