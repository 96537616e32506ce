package basehdl

// Package basehdl - base CRUD handlers.
// Filter và options được truyền qua query string dưới dạng JSON, dữ liệu qua request body.

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "github.com/shakibkumnale/souldistribution/internal/api/base/service"
	"github.com/shakibkumnale/souldistribution/internal/common"
	"github.com/shakibkumnale/souldistribution/internal/utility"
)

// transformToModel chuyển DTO sang Model qua BSON roundtrip.
// DTO và Model dùng chung bson tag nên các field trùng tên sẽ được map tự động.
func transformToModel[T any](input interface{}) (*T, error) {
	raw, err := bson.Marshal(input)
	if err != nil {
		return nil, err
	}
	var model T
	if err := bson.Unmarshal(raw, &model); err != nil {
		return nil, err
	}
	return &model, nil
}

// InsertOne thêm mới một document vào database.
// Dữ liệu được parse từ request body (DTO CreateInput) và transform sang Model trước khi thêm vào DB.
func (h *BaseHandler[T, CreateInput, UpdateInput]) InsertOne(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input CreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("Dữ liệu gửi lên không đúng định dạng JSON hoặc không khớp với cấu trúc yêu cầu. Chi tiết: %v", err),
				common.StatusBadRequest,
				err,
			))
			return nil
		}

		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		model, err := transformToModel[T](&input)
		if err != nil {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("Lỗi transform dữ liệu: %v", err),
				common.StatusBadRequest,
				err,
			))
			return nil
		}

		data, err := h.BaseService.InsertOne(c.Context(), *model)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// InsertMany thêm nhiều document vào database.
// Dữ liệu được parse từ request body dưới dạng mảng và validate trước khi thêm vào DB.
func (h *BaseHandler[T, CreateInput, UpdateInput]) InsertMany(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var inputs []CreateInput
		if err := h.ParseRequestBody(c, &inputs); err != nil {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("Dữ liệu gửi lên phải là một mảng JSON và các phần tử phải khớp với cấu trúc yêu cầu. Chi tiết: %v", err),
				common.StatusBadRequest,
				err,
			))
			return nil
		}

		models := make([]T, 0, len(inputs))
		for i := range inputs {
			if err := h.ValidateInput(&inputs[i]); err != nil {
				h.HandleResponse(c, nil, err)
				return nil
			}
			model, err := transformToModel[T](&inputs[i])
			if err != nil {
				h.HandleResponse(c, nil, common.NewError(
					common.ErrCodeValidationFormat,
					fmt.Sprintf("Lỗi transform dữ liệu item %d: %v", i+1, err),
					common.StatusBadRequest,
					err,
				))
				return nil
			}
			models = append(models, *model)
		}

		data, err := h.BaseService.InsertMany(c.Context(), models)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// FindOne tìm một document theo điều kiện filter.
// Filter và options được truyền qua query string dưới dạng JSON.
func (h *BaseHandler[T, CreateInput, UpdateInput]) FindOne(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		filter, err := h.ProcessFilter(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		opts, err := h.processFindOneOptions(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.BaseService.FindOne(c.Context(), filter, opts)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// FindOneById tìm một document theo ID truyền qua URI params
func (h *BaseHandler[T, CreateInput, UpdateInput]) FindOneById(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.parseObjectIDParam(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.BaseService.FindOneById(c.Context(), id)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// FindManyByIds tìm nhiều document theo danh sách ID.
// Danh sách ID được truyền qua query string dưới dạng mảng JSON.
func (h *BaseHandler[T, CreateInput, UpdateInput]) FindManyByIds(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var ids []string
		idsStr := c.Query("ids", "[]")
		if err := json.Unmarshal([]byte(idsStr), &ids); err != nil {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("Danh sách ID phải là một mảng JSON. Giá trị nhận được: %s. Chi tiết lỗi: %v", idsStr, err),
				common.StatusBadRequest,
				nil,
			))
			return nil
		}

		objectIds := make([]primitive.ObjectID, len(ids))
		for i, id := range ids {
			if !primitive.IsValidObjectID(id) {
				h.HandleResponse(c, nil, common.NewError(
					common.ErrCodeValidationFormat,
					fmt.Sprintf("ID '%s' tại vị trí %d không đúng định dạng MongoDB ObjectID (phải là chuỗi hex 24 ký tự)", id, i),
					common.StatusBadRequest,
					nil,
				))
				return nil
			}
			objectIds[i], _ = primitive.ObjectIDFromHex(id)
		}

		data, err := h.BaseService.FindManyByIds(c.Context(), objectIds)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// Find tìm nhiều document theo điều kiện filter.
// Filter và options được truyền qua query string dưới dạng JSON.
func (h *BaseHandler[T, CreateInput, UpdateInput]) Find(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		filter, err := h.ProcessFilter(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		opts, err := h.processFindOptions(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.BaseService.Find(c.Context(), filter, opts)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		// Đảm bảo data không bao giờ là nil, luôn trả về mảng rỗng nếu không có kết quả
		if data == nil {
			data = []T{}
		}

		h.HandleResponse(c, data, nil)
		return nil
	})
}

// FindWithPagination tìm nhiều document với phân trang.
// Query params: filter (JSON), options (JSON), page (mặc định 1), limit (mặc định 10).
func (h *BaseHandler[T, CreateInput, UpdateInput]) FindWithPagination(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		filter, err := h.ProcessFilter(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		opts, err := h.processFindOptions(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		page, err := strconv.ParseInt(c.Query("page", "1"), 10, 64)
		if err != nil || page < 1 {
			page = 1
		}
		limit, err := strconv.ParseInt(c.Query("limit", "10"), 10, 64)
		if err != nil || limit <= 0 {
			limit = 10
		}

		// Không set limit và skip vào options ở đây, service tự tính để đảm bảo nhất quán
		data, err := h.BaseService.FindWithPagination(c.Context(), filter, page, limit, opts)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// UpdateOne cập nhật một document theo điều kiện filter.
// Filter được truyền qua query string, dữ liệu cập nhật trong request body.
// Chỉ update các trường có trong input, giữ nguyên các trường khác.
func (h *BaseHandler[T, CreateInput, UpdateInput]) UpdateOne(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		filter, err := h.ProcessFilter(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		update, err := h.parseUpdateBody(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.BaseService.UpdateOne(c.Context(), filter, update, nil)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// UpdateById cập nhật một document theo ID.
// ID được truyền qua URI params, dữ liệu cập nhật trong request body.
func (h *BaseHandler[T, CreateInput, UpdateInput]) UpdateById(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.parseObjectIDParam(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		update, err := h.parseUpdateBody(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.BaseService.UpdateById(c.Context(), id, update)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// DeleteOne xóa một document theo điều kiện filter
func (h *BaseHandler[T, CreateInput, UpdateInput]) DeleteOne(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		filter, err := h.ProcessFilter(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		err = h.BaseService.DeleteOne(c.Context(), filter)
		h.HandleResponse(c, nil, err)
		return nil
	})
}

// DeleteMany xóa nhiều document theo điều kiện filter, trả về số lượng đã xóa
func (h *BaseHandler[T, CreateInput, UpdateInput]) DeleteMany(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		filter, err := h.ProcessFilter(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		count, err := h.BaseService.DeleteMany(c.Context(), filter)
		h.HandleResponse(c, count, err)
		return nil
	})
}

// DeleteById xóa một document theo ID truyền qua URI params
func (h *BaseHandler[T, CreateInput, UpdateInput]) DeleteById(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.parseObjectIDParam(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		err = h.BaseService.DeleteById(c.Context(), id)
		h.HandleResponse(c, nil, err)
		return nil
	})
}

// CountDocuments đếm số lượng document theo điều kiện filter
func (h *BaseHandler[T, CreateInput, UpdateInput]) CountDocuments(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		filter, err := h.ProcessFilter(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		count, err := h.BaseService.CountDocuments(c.Context(), filter)
		h.HandleResponse(c, count, err)
		return nil
	})
}

// Distinct lấy danh sách giá trị duy nhất của một trường.
// Tên trường được truyền qua URI params, filter qua query string.
func (h *BaseHandler[T, CreateInput, UpdateInput]) Distinct(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		field := c.Params("field")
		if field == "" {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "Tên trường không hợp lệ", common.StatusBadRequest, nil))
			return nil
		}

		filter, err := h.ProcessFilter(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.BaseService.Distinct(c.Context(), field, filter)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// Upsert thêm mới hoặc cập nhật một document.
// Filter được truyền qua query string, dữ liệu trong request body (DTO CreateInput).
func (h *BaseHandler[T, CreateInput, UpdateInput]) Upsert(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		filter, err := h.ProcessFilter(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input CreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("Dữ liệu gửi lên không đúng định dạng JSON hoặc không khớp với cấu trúc yêu cầu. Chi tiết: %v", err),
				common.StatusBadRequest,
				err,
			))
			return nil
		}

		model, err := transformToModel[T](&input)
		if err != nil {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("Lỗi transform dữ liệu: %v", err),
				common.StatusBadRequest,
				err,
			))
			return nil
		}

		update, err := nonZeroUpdateData(model)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.BaseService.Upsert(c.Context(), filter, update)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// DocumentExists kiểm tra document có tồn tại không theo filter
func (h *BaseHandler[T, CreateInput, UpdateInput]) DocumentExists(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		filter, err := h.ProcessFilter(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		exists, err := h.BaseService.DocumentExists(c.Context(), filter)
		h.HandleResponse(c, exists, err)
		return nil
	})
}

// parseObjectIDParam lấy và validate ObjectID từ URI params
func (h *BaseHandler[T, CreateInput, UpdateInput]) parseObjectIDParam(c fiber.Ctx) (primitive.ObjectID, error) {
	id := c.Params("id")
	if id == "" {
		return primitive.NilObjectID, common.NewError(
			common.ErrCodeValidationFormat,
			"ID không được để trống trong URL params",
			common.StatusBadRequest,
			nil,
		)
	}

	if !primitive.IsValidObjectID(id) {
		return primitive.NilObjectID, common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("ID '%s' không đúng định dạng MongoDB ObjectID (phải là chuỗi hex 24 ký tự)", id),
			common.StatusBadRequest,
			nil,
		)
	}

	objID, _ := primitive.ObjectIDFromHex(id)
	return objID, nil
}

// parseUpdateBody parse body thành UpdateInput, validate và convert sang UpdateData với chỉ các field non-zero
func (h *BaseHandler[T, CreateInput, UpdateInput]) parseUpdateBody(c fiber.Ctx) (*basesvc.UpdateData, error) {
	var input UpdateInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		return nil, common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("Dữ liệu cập nhật không đúng định dạng JSON hoặc không khớp với cấu trúc yêu cầu. Chi tiết: %v", err),
			common.StatusBadRequest,
			err,
		)
	}
	if err := h.ValidateInput(&input); err != nil {
		return nil, err
	}

	model, err := transformToModel[T](&input)
	if err != nil {
		return nil, common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("Lỗi transform dữ liệu: %v", err),
			common.StatusBadRequest,
			err,
		)
	}

	return nonZeroUpdateData(model)
}

// nonZeroUpdateData chỉ đưa các field non-zero vào $set (partial update)
func nonZeroUpdateData(model interface{}) (*basesvc.UpdateData, error) {
	modelMap, err := utility.ToMap(model)
	if err != nil {
		return nil, common.NewError(
			common.ErrCodeInternalServer,
			fmt.Sprintf("Lỗi convert model sang map: %v", err),
			common.StatusInternalServerError,
			err,
		)
	}

	updateData := &basesvc.UpdateData{Set: make(map[string]interface{})}
	for k, v := range modelMap {
		if rv := reflect.ValueOf(v); rv.IsValid() && !rv.IsZero() {
			updateData.Set[k] = v
		}
	}

	return updateData, nil
}
