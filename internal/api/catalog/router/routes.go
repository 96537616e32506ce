// Package router đăng ký các route thuộc domain catalog: artists, releases, tracks, dashboard.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	cataloghdl "github.com/shakibkumnale/souldistribution/internal/api/catalog/handler"
	"github.com/shakibkumnale/souldistribution/internal/api/middleware"
	apirouter "github.com/shakibkumnale/souldistribution/internal/api/router"
)

// Register đăng ký tất cả route catalog lên v1.
// Khu vực admin nằm dưới prefix /admin vì middleware của group áp theo prefix đường dẫn:
// route public không được chung prefix với group có auth.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	artistHandler, err := cataloghdl.NewArtistHandler()
	if err != nil {
		return fmt.Errorf("tạo ArtistHandler: %w", err)
	}
	releaseHandler, err := cataloghdl.NewReleaseHandler()
	if err != nil {
		return fmt.Errorf("tạo ReleaseHandler: %w", err)
	}
	dashboardHandler, err := cataloghdl.NewDashboardHandler()
	if err != nil {
		return fmt.Errorf("tạo DashboardHandler: %w", err)
	}

	authMiddleware := middleware.AuthMiddleware()
	adminMiddlewares := []fiber.Handler{authMiddleware}
	// Các route public không qua middleware
	var publicMiddlewares []fiber.Handler

	// CRUD cho khu vực admin
	r.RegisterCRUDRoutes(v1, "/admin/artists", artistHandler, apirouter.ReadWriteConfig, adminMiddlewares)
	r.RegisterCRUDRoutes(v1, "/admin/releases", releaseHandler, apirouter.ReadWriteConfig, adminMiddlewares)

	// GET /admin/artists/with-releases: roster nghệ sĩ kèm bản phát hành (build bộ lọc doanh thu)
	apirouter.RegisterRouteWithMiddleware(v1, "/admin/artists", "GET", "/with-releases", adminMiddlewares, artistHandler.HandleGetWithReleases)

	// GET /admin/dashboard/stats: số liệu tổng quan
	apirouter.RegisterRouteWithMiddleware(v1, "/admin/dashboard", "GET", "/stats", adminMiddlewares, dashboardHandler.HandleGetStats)

	// GET /artists/slug/:slug: hồ sơ nghệ sĩ công khai
	apirouter.RegisterRouteWithMiddleware(v1, "/artists", "GET", "/slug/:slug", publicMiddlewares, artistHandler.HandleGetBySlug)

	// GET /releases/by-artist/:id
	apirouter.RegisterRouteWithMiddleware(v1, "/releases", "GET", "/by-artist/:id", publicMiddlewares, releaseHandler.HandleGetByArtist)

	// GET /tracks/:key: tra cứu track theo ObjectID, slug hoặc ISRC
	apirouter.RegisterRouteWithMiddleware(v1, "/tracks", "GET", "/:key", publicMiddlewares, releaseHandler.HandleGetTrack)

	return nil
}
