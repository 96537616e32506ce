// Package router đăng ký các route thuộc domain doanh thu: upload, analytics, reports.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"github.com/shakibkumnale/souldistribution/internal/api/middleware"
	revenuehdl "github.com/shakibkumnale/souldistribution/internal/api/revenue/handler"
	apirouter "github.com/shakibkumnale/souldistribution/internal/api/router"
)

// Register đăng ký tất cả route doanh thu lên v1.
// Toàn bộ domain doanh thu nằm sau auth: số liệu tiền bạc không có route public.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	revenueHandler, err := revenuehdl.NewRevenueHandler()
	if err != nil {
		return fmt.Errorf("tạo RevenueHandler: %w", err)
	}

	adminMiddlewares := []fiber.Handler{middleware.AuthMiddleware()}

	// POST /revenue/upload: nhập file báo cáo CSV
	apirouter.RegisterRouteWithMiddleware(v1, "/revenue", "POST", "/upload", adminMiddlewares, revenueHandler.HandleUpload)

	// GET /revenue/analytics: trang analytics đầy đủ
	apirouter.RegisterRouteWithMiddleware(v1, "/revenue", "GET", "/analytics", adminMiddlewares, revenueHandler.HandleAnalytics)

	// GET /revenue/analytics/tracks: doanh thu gộp theo track
	apirouter.RegisterRouteWithMiddleware(v1, "/revenue", "GET", "/analytics/tracks", adminMiddlewares, revenueHandler.HandleTrackRollups)

	// GET /revenue/analytics/tracks/:key: rollup của một track
	apirouter.RegisterRouteWithMiddleware(v1, "/revenue", "GET", "/analytics/tracks/:key", adminMiddlewares, revenueHandler.HandleTrackRollups)

	// GET /revenue/reports: registry các file báo cáo đã nhập
	apirouter.RegisterRouteWithMiddleware(v1, "/revenue", "GET", "/reports", adminMiddlewares, revenueHandler.HandleListReports)

	// DELETE /revenue/reports/:filename: xóa toàn bộ entry của một file
	apirouter.RegisterRouteWithMiddleware(v1, "/revenue", "DELETE", "/reports/:filename", adminMiddlewares, revenueHandler.HandleDeleteReport)

	return nil
}
