package router

import (
	"github.com/gofiber/fiber/v3"
)

// ============================================================================
// ⚠️ QUAN TRỌNG: BUG FIBER V3 - CÁCH ĐĂNG KÝ MIDDLEWARE
// ============================================================================
//
// Fiber v3 có BUG nghiêm trọng với cách đăng ký middleware trực tiếp trong route.
// Middleware sẽ KHÔNG được gọi nếu dùng cách trực tiếp!
//
// ❌ CÁCH SAI (KHÔNG HOẠT ĐỘNG):
//    router.Get("/path", middleware.AuthMiddleware(), handler)
//    → Middleware sẽ KHÔNG được gọi, request sẽ bỏ qua middleware!
//
// ✅ CÁCH ĐÚNG (PHẢI DÙNG):
//    authMiddleware := middleware.AuthMiddleware()
//    RegisterRouteWithMiddleware(router, "/prefix", "GET", "/path", []fiber.Handler{authMiddleware}, handler)
//    → Middleware sẽ được gọi đúng cách thông qua .Use() method
//
// ============================================================================

// CRUDHandler định nghĩa interface cho các handler CRUD
type CRUDHandler interface {
	// Create
	InsertOne(c fiber.Ctx) error
	InsertMany(c fiber.Ctx) error

	// Read
	Find(c fiber.Ctx) error
	FindOne(c fiber.Ctx) error
	FindOneById(c fiber.Ctx) error
	FindManyByIds(c fiber.Ctx) error
	FindWithPagination(c fiber.Ctx) error

	// Update
	UpdateOne(c fiber.Ctx) error
	UpdateById(c fiber.Ctx) error

	// Delete
	DeleteOne(c fiber.Ctx) error
	DeleteMany(c fiber.Ctx) error
	DeleteById(c fiber.Ctx) error

	// Other
	CountDocuments(c fiber.Ctx) error
	Distinct(c fiber.Ctx) error
	Upsert(c fiber.Ctx) error
	DocumentExists(c fiber.Ctx) error
}

// Router quản lý việc định tuyến cho API
type Router struct {
	app *fiber.App
}

// CRUDConfig cấu hình các operation được phép cho mỗi collection
type CRUDConfig struct {
	// Create
	InsOne  bool // Insert One
	InsMany bool // Insert Many

	// Read
	Find     bool // Find All
	FindOne  bool // Find One
	FindById bool // Find By Id
	FindIds  bool // Find Many By Ids
	Paginate bool // Find With Pagination

	// Update
	UpdOne  bool // Update One
	UpdById bool // Update By Id

	// Delete
	DelOne  bool // Delete One
	DelMany bool // Delete Many
	DelById bool // Delete By Id

	// Other
	Count    bool // Count Documents
	Distinct bool // Distinct
	Upsert   bool // Upsert One
	Exists   bool // Document Exists
}

// Config cho từng collection. Các domain dùng chung: ReadOnlyConfig, ReadWriteConfig.
var (
	// ReadOnlyConfig chỉ cho phép đọc (find, find-one, count, distinct, exists).
	ReadOnlyConfig = CRUDConfig{
		InsOne: false, InsMany: false,
		Find: true, FindOne: true, FindById: true,
		FindIds: true, Paginate: true,
		UpdOne: false, UpdById: false,
		DelOne: false, DelMany: false, DelById: false,
		Count: true, Distinct: true,
		Upsert: false, Exists: true,
	}

	// ReadWriteConfig cho phép đầy đủ CRUD.
	ReadWriteConfig = CRUDConfig{
		InsOne: true, InsMany: true,
		Find: true, FindOne: true, FindById: true,
		FindIds: true, Paginate: true,
		UpdOne: true, UpdById: true,
		DelOne: true, DelMany: true, DelById: true,
		Count: true, Distinct: true,
		Upsert: true, Exists: true,
	}
)

// RoutePrefix chứa các prefix cơ bản cho API
type RoutePrefix struct {
	Base string // Prefix cơ bản (/api)
	V1   string // Prefix cho API version 1 (/api/v1)
}

// NewRoutePrefix tạo mới một instance của RoutePrefix với các giá trị mặc định
func NewRoutePrefix() RoutePrefix {
	base := "/api"
	return RoutePrefix{
		Base: base,
		V1:   base + "/v1",
	}
}

// NewRouter tạo mới một instance của Router
func NewRouter(app *fiber.App) *Router {
	return &Router{
		app: app,
	}
}

// RegisterRouteWithMiddleware đăng ký route với middleware sử dụng .Use() method (cách đúng theo Fiber v3).
//
// ⚠️ KHÔNG DÙNG cách trực tiếp router.Get(path, middleware, handler) - middleware sẽ KHÔNG được gọi!
//
// Ví dụ sử dụng:
//
//	authMiddleware := middleware.AuthMiddleware()
//	RegisterRouteWithMiddleware(router, "/revenue", "GET", "/analytics", []fiber.Handler{authMiddleware}, handler)
func RegisterRouteWithMiddleware(router fiber.Router, prefix string, method string, path string, middlewares []fiber.Handler, handler fiber.Handler) {
	// Tạo group với prefix, middleware sẽ chỉ áp dụng cho routes trong group này
	routeGroup := router.Group(prefix)
	for _, mw := range middlewares {
		routeGroup.Use(mw)
	}

	// Đăng ký route với path tương đối (không có prefix vì đã có trong group)
	switch method {
	case "GET":
		routeGroup.Get(path, handler)
	case "POST":
		routeGroup.Post(path, handler)
	case "PUT":
		routeGroup.Put(path, handler)
	case "DELETE":
		routeGroup.Delete(path, handler)
	}
}

// RegisterCRUDRoutes đăng ký các route CRUD cho một collection. Dùng từ domain router.
// middlewares được áp dụng cho tất cả các route trong nhóm (thường là AuthMiddleware cho khu vực admin).
func (r *Router) RegisterCRUDRoutes(router fiber.Router, prefix string, h CRUDHandler, config CRUDConfig, middlewares []fiber.Handler) {
	// Create operations
	if config.InsOne {
		RegisterRouteWithMiddleware(router, prefix, "POST", "/insert-one", middlewares, h.InsertOne)
	}
	if config.InsMany {
		RegisterRouteWithMiddleware(router, prefix, "POST", "/insert-many", middlewares, h.InsertMany)
	}

	// Read operations
	if config.Find {
		RegisterRouteWithMiddleware(router, prefix, "GET", "/find", middlewares, h.Find)
	}
	if config.FindOne {
		RegisterRouteWithMiddleware(router, prefix, "GET", "/find-one", middlewares, h.FindOne)
	}
	if config.FindById {
		RegisterRouteWithMiddleware(router, prefix, "GET", "/find-by-id/:id", middlewares, h.FindOneById)
	}
	if config.FindIds {
		RegisterRouteWithMiddleware(router, prefix, "POST", "/find-by-ids", middlewares, h.FindManyByIds)
	}
	if config.Paginate {
		RegisterRouteWithMiddleware(router, prefix, "GET", "/find-with-pagination", middlewares, h.FindWithPagination)
	}

	// Update operations
	if config.UpdOne {
		RegisterRouteWithMiddleware(router, prefix, "PUT", "/update-one", middlewares, h.UpdateOne)
	}
	if config.UpdById {
		RegisterRouteWithMiddleware(router, prefix, "PUT", "/update-by-id/:id", middlewares, h.UpdateById)
	}

	// Delete operations
	if config.DelOne {
		RegisterRouteWithMiddleware(router, prefix, "DELETE", "/delete-one", middlewares, h.DeleteOne)
	}
	if config.DelMany {
		RegisterRouteWithMiddleware(router, prefix, "DELETE", "/delete-many", middlewares, h.DeleteMany)
	}
	if config.DelById {
		RegisterRouteWithMiddleware(router, prefix, "DELETE", "/delete-by-id/:id", middlewares, h.DeleteById)
	}

	// Other operations
	if config.Count {
		RegisterRouteWithMiddleware(router, prefix, "GET", "/count", middlewares, h.CountDocuments)
	}
	if config.Distinct {
		RegisterRouteWithMiddleware(router, prefix, "GET", "/distinct/:field", middlewares, h.Distinct)
	}
	if config.Upsert {
		RegisterRouteWithMiddleware(router, prefix, "POST", "/upsert-one", middlewares, h.Upsert)
	}
	if config.Exists {
		RegisterRouteWithMiddleware(router, prefix, "GET", "/exists", middlewares, h.DocumentExists)
	}
}

// RegisterFunc là hàm đăng ký route của một domain (do domain/router export).
type RegisterFunc func(v1 fiber.Router, r *Router) error

// SetupRoutes thiết lập tất cả các route cho ứng dụng. Caller truyền lần lượt Register của từng domain để tránh import cycle.
func SetupRoutes(app *fiber.App, regs ...RegisterFunc) error {
	prefix := NewRoutePrefix()
	v1 := app.Group(prefix.V1)
	r := NewRouter(app)
	for _, reg := range regs {
		if err := reg(v1, r); err != nil {
			return err
		}
	}
	return nil
}
