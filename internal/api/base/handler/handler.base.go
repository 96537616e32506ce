package basehdl

// Package basehdl chứa các handler xử lý request HTTP trong ứng dụng.
// Package này cung cấp các chức năng CRUD cơ bản và các tiện ích để xử lý request/response.

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongoopts "go.mongodb.org/mongo-driver/mongo/options"

	basesvc "github.com/shakibkumnale/souldistribution/internal/api/base/service"
	"github.com/shakibkumnale/souldistribution/internal/common"
	"github.com/shakibkumnale/souldistribution/internal/global"
	"github.com/shakibkumnale/souldistribution/internal/utility"
)

// FilterOptions cấu hình giới hạn filter từ client
type FilterOptions struct {
	DeniedFields     []string // Các field bị cấm trong filter
	AllowedOperators []string // Các operator MongoDB được phép
	MaxFields        int      // Số lượng field tối đa trong filter
}

// BaseHandler cung cấp các CRUD handler dùng chung cho mọi domain.
// Type Parameters:
//   - T: Model của collection
//   - CreateInput: DTO cho request tạo mới
//   - UpdateInput: DTO cho request cập nhật
type BaseHandler[T any, CreateInput any, UpdateInput any] struct {
	BaseService   basesvc.BaseServiceMongo[T] // Service xử lý dữ liệu
	filterOptions FilterOptions               // Cấu hình filter
}

// NewBaseHandler tạo mới một BaseHandler với service và cấu hình filter mặc định
func NewBaseHandler[T any, CreateInput any, UpdateInput any](service basesvc.BaseServiceMongo[T]) *BaseHandler[T, CreateInput, UpdateInput] {
	return &BaseHandler[T, CreateInput, UpdateInput]{
		BaseService: service,
		filterOptions: FilterOptions{
			DeniedFields: []string{
				"password",
				"token",
				"secret",
				"hash",
			},
			AllowedOperators: []string{
				"$eq",
				"$ne",
				"$gt",
				"$gte",
				"$lt",
				"$lte",
				"$in",
				"$nin",
				"$exists",
				"$regex",
			},
			MaxFields: 10,
		},
	}
}

// ParseRequestBody parse và validate dữ liệu từ request body.
// Sử dụng json.Decoder với UseNumber() để xử lý chính xác các số.
func (h *BaseHandler[T, CreateInput, UpdateInput]) ParseRequestBody(c fiber.Ctx, input interface{}) error {
	body := c.Body()
	reader := bytes.NewReader(body)
	decoder := json.NewDecoder(reader)
	decoder.UseNumber()
	if err := decoder.Decode(input); err != nil {
		return common.NewError(common.ErrCodeValidationFormat, common.MsgValidationError, common.StatusBadRequest, err)
	}

	return nil
}

// ValidateInput validate dữ liệu đầu vào với validator từ global (struct tag validate)
func (h *BaseHandler[T, CreateInput, UpdateInput]) ValidateInput(input interface{}) error {
	if err := global.Validate.Struct(input); err != nil {
		return common.NewError(common.ErrCodeValidationInput, common.MsgValidationError, common.StatusBadRequest, err)
	}
	return nil
}

// ProcessFilter xử lý và validate filter từ query string
func (h *BaseHandler[T, CreateInput, UpdateInput]) ProcessFilter(c fiber.Ctx) (map[string]interface{}, error) {
	var filter map[string]interface{}

	filterStr := c.Query("filter", "{}")
	if err := json.Unmarshal([]byte(filterStr), &filter); err != nil {
		return nil, common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("Filter không đúng định dạng JSON. Chi tiết lỗi: %v. Giá trị filter nhận được: %s", err, filterStr),
			common.StatusBadRequest,
			err,
		)
	}

	// Normalize filter: chuyển đổi các string ObjectId thành ObjectID
	filter = h.normalizeFilter(filter)

	if err := h.validateFilter(filter); err != nil {
		return nil, err
	}

	return filter, nil
}

// normalizeFilter chuyển đổi các string có format ObjectId thành ObjectID trong filter.
// Hỗ trợ các trường có tên kết thúc bằng "Id" hoặc "ID".
func (h *BaseHandler[T, CreateInput, UpdateInput]) normalizeFilter(filter map[string]interface{}) map[string]interface{} {
	if filter == nil {
		return filter
	}

	normalized := make(map[string]interface{})
	for field, value := range filter {
		fieldLower := strings.ToLower(field)
		isIDField := strings.HasSuffix(fieldLower, "id") && len(fieldLower) > 2

		normalized[field] = h.normalizeFilterValue(value, isIDField)
	}

	return normalized
}

// normalizeFilterValue chuyển đổi giá trị trong filter, hỗ trợ nested structures
func (h *BaseHandler[T, CreateInput, UpdateInput]) normalizeFilterValue(value interface{}, isIDField bool) interface{} {
	if value == nil {
		return value
	}

	// Hỗ trợ MongoDB Extended JSON format: {"$oid": "..."}
	if mapValue, ok := value.(map[string]interface{}); ok {
		if oidValue, hasOid := mapValue["$oid"]; hasOid {
			if oidStr, ok := oidValue.(string); ok && primitive.IsValidObjectID(oidStr) {
				if objID, err := primitive.ObjectIDFromHex(oidStr); err == nil {
					return objID
				}
			}
			return value
		}
	}

	// Nếu là string và field là ID field, thử chuyển đổi thành ObjectID
	if strValue, ok := value.(string); ok && isIDField {
		if primitive.IsValidObjectID(strValue) {
			if objID, err := primitive.ObjectIDFromHex(strValue); err == nil {
				return objID
			}
		}
		return strValue
	}

	// Nếu là mảng, xử lý từng phần tử
	if arrValue, ok := value.([]interface{}); ok {
		normalizedArr := make([]interface{}, len(arrValue))
		for i, item := range arrValue {
			normalizedArr[i] = h.normalizeFilterValue(item, isIDField)
		}
		return normalizedArr
	}

	// Nếu là map (cho các operator như $in, $nin, $eq, etc.), xử lý đệ quy
	if mapValue, ok := value.(map[string]interface{}); ok {
		normalizedMap := make(map[string]interface{})
		for key, val := range mapValue {
			normalizedMap[key] = h.normalizeFilterValue(val, isIDField)
		}
		return normalizedMap
	}

	return value
}

// validateFilter kiểm tra tính hợp lệ của filter
func (h *BaseHandler[T, CreateInput, UpdateInput]) validateFilter(filter map[string]interface{}) error {
	if len(filter) > h.filterOptions.MaxFields {
		return common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("Filter vượt quá số lượng trường cho phép. Tối đa %d trường, hiện tại có %d trường.", h.filterOptions.MaxFields, len(filter)),
			common.StatusBadRequest,
			nil,
		)
	}

	for field, value := range filter {
		if utility.ContainsString(h.filterOptions.DeniedFields, field) {
			return common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("Trường '%s' không được phép sử dụng trong filter vì lý do bảo mật.", field),
				common.StatusBadRequest,
				nil,
			)
		}

		// Kiểm tra operator nếu value là map
		if mapValue, ok := value.(map[string]interface{}); ok {
			for op := range mapValue {
				if strings.HasPrefix(op, "$") && !utility.ContainsString(h.filterOptions.AllowedOperators, op) {
					return common.NewError(
						common.ErrCodeValidationFormat,
						fmt.Sprintf("Toán tử MongoDB '%s' không được phép sử dụng. Các toán tử được phép: %v", op, h.filterOptions.AllowedOperators),
						common.StatusBadRequest,
						nil,
					)
				}
			}
		}
	}

	return nil
}

// processFindOptions xử lý options từ query string cho các thao tác Find nhiều document.
// Hỗ trợ projection, sort, limit, skip dưới dạng JSON: {"projection": {...}, "sort": {...}, "limit": 10}
func (h *BaseHandler[T, CreateInput, UpdateInput]) processFindOptions(c fiber.Ctx) (*mongoopts.FindOptions, error) {
	rawOptions, err := h.parseRawOptions(c)
	if err != nil {
		return nil, err
	}

	opts := mongoopts.Find()
	if projection, ok := rawOptions["projection"].(map[string]interface{}); ok {
		opts.SetProjection(projection)
	}
	if sortMap, ok := rawOptions["sort"].(map[string]interface{}); ok {
		opts.SetSort(parseSortMap(sortMap))
	}
	if limit, ok := rawOptions["limit"].(float64); ok && limit > 0 {
		opts.SetLimit(int64(limit))
	}
	if skip, ok := rawOptions["skip"].(float64); ok && skip >= 0 {
		opts.SetSkip(int64(skip))
	}

	return opts, nil
}

// processFindOneOptions xử lý options từ query string cho thao tác FindOne
func (h *BaseHandler[T, CreateInput, UpdateInput]) processFindOneOptions(c fiber.Ctx) (*mongoopts.FindOneOptions, error) {
	rawOptions, err := h.parseRawOptions(c)
	if err != nil {
		return nil, err
	}

	opts := mongoopts.FindOne()
	if projection, ok := rawOptions["projection"].(map[string]interface{}); ok {
		opts.SetProjection(projection)
	}
	if sortMap, ok := rawOptions["sort"].(map[string]interface{}); ok {
		opts.SetSort(parseSortMap(sortMap))
	}

	return opts, nil
}

// parseRawOptions parse options JSON từ query string
func (h *BaseHandler[T, CreateInput, UpdateInput]) parseRawOptions(c fiber.Ctx) (map[string]interface{}, error) {
	var rawOptions map[string]interface{}

	optionsStr := c.Query("options", "{}")
	if err := json.Unmarshal([]byte(optionsStr), &rawOptions); err != nil {
		return nil, common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("Options không đúng định dạng JSON. Chi tiết lỗi: %v. Giá trị options nhận được: %s", err, optionsStr),
			common.StatusBadRequest,
			err,
		)
	}

	return rawOptions, nil
}

// parseSortMap chuyển map sort từ JSON thành bson.D, chỉ nhận giá trị 1 hoặc -1
func parseSortMap(sortMap map[string]interface{}) bson.D {
	sortBson := bson.D{}
	for field, value := range sortMap {
		var sortValue int
		switch v := value.(type) {
		case float64:
			sortValue = int(v)
		case int:
			sortValue = v
		default:
			continue
		}
		if sortValue != 1 && sortValue != -1 {
			continue
		}
		sortBson = append(sortBson, bson.E{Key: field, Value: sortValue})
	}
	return sortBson
}
