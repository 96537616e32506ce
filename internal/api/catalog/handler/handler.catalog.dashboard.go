// Package cataloghdl - Handler dashboard quản trị.
package cataloghdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "github.com/shakibkumnale/souldistribution/internal/api/base/handler"
	catalogsvc "github.com/shakibkumnale/souldistribution/internal/api/catalog/service"
)

// DashboardHandler xử lý request số liệu tổng quan.
type DashboardHandler struct {
	DashboardSvc *catalogsvc.DashboardService
}

// NewDashboardHandler tạo DashboardHandler mới.
func NewDashboardHandler() (*DashboardHandler, error) {
	svc, err := catalogsvc.NewDashboardService()
	if err != nil {
		return nil, fmt.Errorf("tạo DashboardService: %w", err)
	}
	return &DashboardHandler{DashboardSvc: svc}, nil
}

// HandleGetStats xử lý GET /dashboard/stats.
func (h *DashboardHandler) HandleGetStats(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		stats, err := h.DashboardSvc.GetStats(c.Context())
		if err != nil {
			basehdl.HandleError(c, err)
			return nil
		}

		basehdl.HandleSuccess(c, stats)
		return nil
	})
}
