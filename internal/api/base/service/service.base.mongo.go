// Package basesvc cung cấp các service cơ bản cho việc tương tác với MongoDB
package basesvc

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	basemodels "github.com/shakibkumnale/souldistribution/internal/api/base/models"
	"github.com/shakibkumnale/souldistribution/internal/common"
	"github.com/shakibkumnale/souldistribution/internal/utility"
)

// UpdateData định nghĩa kiểu dữ liệu cho partial update
type UpdateData struct {
	Set         map[string]interface{} `bson:"$set,omitempty"`         // Các trường cần update
	SetOnInsert map[string]interface{} `bson:"$setOnInsert,omitempty"` // Các trường chỉ set khi upsert tạo mới
	Unset       map[string]interface{} `bson:"$unset,omitempty"`       // Các trường cần xóa
}

// ToUpdateData chuyển đổi interface{} thành UpdateData
func ToUpdateData(data interface{}) (*UpdateData, error) {
	if update, ok := data.(*UpdateData); ok {
		return update, nil
	}
	if update, ok := data.(UpdateData); ok {
		return &update, nil
	}

	dataMap, err := utility.ToMap(data)
	if err != nil {
		return nil, err
	}

	// Nếu data có sẵn các operator MongoDB thì giữ nguyên cấu trúc
	if _, hasSet := dataMap["$set"]; hasSet {
		update := &UpdateData{}
		if setVal, ok := dataMap["$set"].(map[string]interface{}); ok {
			update.Set = setVal
		}
		if unsetVal, ok := dataMap["$unset"].(map[string]interface{}); ok {
			update.Unset = unsetVal
		}
		if setOnInsertVal, ok := dataMap["$setOnInsert"].(map[string]interface{}); ok {
			update.SetOnInsert = setOnInsertVal
		}
		return update, nil
	}

	// Map thường wrap trong $set
	return &UpdateData{Set: dataMap}, nil
}

// BaseServiceMongo định nghĩa interface chứa các phương thức cơ bản cho việc tương tác với MongoDB
// Type Parameters:
//   - Model: Kiểu dữ liệu của model
type BaseServiceMongo[Model any] interface {
	// Thao tác Insert
	InsertOne(ctx context.Context, data Model) (Model, error)
	InsertMany(ctx context.Context, data []Model) ([]Model, error)

	// Thao tác Find
	FindOne(ctx context.Context, filter interface{}, opts *options.FindOneOptions) (Model, error)
	Find(ctx context.Context, filter interface{}, opts *options.FindOptions) ([]Model, error)
	FindOneById(ctx context.Context, id primitive.ObjectID) (Model, error)
	FindManyByIds(ctx context.Context, ids []primitive.ObjectID) ([]Model, error)
	FindWithPagination(ctx context.Context, filter interface{}, page, limit int64, opts *options.FindOptions) (*basemodels.PaginateResult[Model], error)

	// Thao tác Update
	UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts *options.UpdateOptions) (Model, error)
	UpdateById(ctx context.Context, id primitive.ObjectID, data interface{}) (Model, error)
	Upsert(ctx context.Context, filter interface{}, data interface{}) (Model, error)

	// Thao tác Delete
	DeleteOne(ctx context.Context, filter interface{}) error
	DeleteMany(ctx context.Context, filter interface{}) (int64, error)
	DeleteById(ctx context.Context, id primitive.ObjectID) error

	// Các thao tác khác
	CountDocuments(ctx context.Context, filter interface{}) (int64, error)
	Distinct(ctx context.Context, fieldName string, filter interface{}) ([]interface{}, error)
	Aggregate(ctx context.Context, pipeline interface{}, results interface{}) error
	DocumentExists(ctx context.Context, filter interface{}) (bool, error)
}

// BaseServiceMongoImpl triển khai BaseServiceMongo trên một *mongo.Collection
type BaseServiceMongoImpl[T any] struct {
	collection *mongo.Collection // Collection MongoDB
}

// NewBaseServiceMongo tạo mới một BaseServiceMongoImpl cho collection
func NewBaseServiceMongo[T any](collection *mongo.Collection) *BaseServiceMongoImpl[T] {
	return &BaseServiceMongoImpl[T]{
		collection: collection,
	}
}

// Collection trả về collection MongoDB (dùng bởi domain service khi cần pipeline trực tiếp)
func (s *BaseServiceMongoImpl[T]) Collection() *mongo.Collection {
	return s.collection
}

// InsertOne tạo mới một bản ghi trong database
func (s *BaseServiceMongoImpl[T]) InsertOne(ctx context.Context, data T) (T, error) {
	var zero T

	// Chuyển data thành map để thêm timestamps
	dataMap, err := utility.ToMap(data)
	if err != nil {
		return zero, common.ErrInvalidFormat
	}

	now := time.Now().UnixMilli()
	dataMap["createdAt"] = now
	dataMap["updatedAt"] = now

	result, err := s.collection.InsertOne(ctx, dataMap)
	if err != nil {
		return zero, common.ConvertMongoError(err)
	}

	// Lấy lại document vừa tạo
	var created T
	if err := s.collection.FindOne(ctx, bson.M{"_id": result.InsertedID}).Decode(&created); err != nil {
		return zero, common.ConvertMongoError(err)
	}

	return created, nil
}

// InsertMany tạo nhiều bản ghi trong database.
// Mỗi document là một write độc lập phía driver - không giữ counter chia sẻ nào,
// số lượng luôn được tính lại bằng query nên insert song song không gây race.
func (s *BaseServiceMongoImpl[T]) InsertMany(ctx context.Context, data []T) ([]T, error) {
	if len(data) == 0 {
		return []T{}, nil
	}

	var documents []interface{}
	now := time.Now().UnixMilli()

	for _, item := range data {
		dataMap, err := utility.ToMap(item)
		if err != nil {
			return nil, common.ErrInvalidFormat
		}
		dataMap["createdAt"] = now
		dataMap["updatedAt"] = now
		documents = append(documents, dataMap)
	}

	result, err := s.collection.InsertMany(ctx, documents)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}

	// Lấy lại các documents vừa tạo
	var created []T
	filter := bson.M{"_id": bson.M{"$in": result.InsertedIDs}}
	cursor, err := s.collection.Find(ctx, filter)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	if err := cursor.All(ctx, &created); err != nil {
		return nil, common.ConvertMongoError(err)
	}

	return created, nil
}

// FindOne tìm một document theo điều kiện lọc
func (s *BaseServiceMongoImpl[T]) FindOne(ctx context.Context, filter interface{}, opts *options.FindOneOptions) (T, error) {
	var zero T
	var result T

	if filter == nil {
		filter = bson.D{}
	}
	if opts == nil {
		opts = options.FindOne()
	}

	findResult := s.collection.FindOne(ctx, filter, opts)
	if err := findResult.Err(); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return zero, common.ErrNotFound
		}
		return zero, common.ConvertMongoError(err)
	}

	if err := findResult.Decode(&result); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return zero, common.ErrNotFound
		}
		// Lỗi decode BSON là lỗi format, không phải lỗi MongoDB command
		return zero, common.NewError(
			common.ErrCodeValidationFormat,
			"Lỗi định dạng dữ liệu khi decode từ MongoDB",
			common.StatusBadRequest,
			err,
		)
	}

	return result, nil
}

// Find tìm tất cả bản ghi theo điều kiện lọc
func (s *BaseServiceMongoImpl[T]) Find(ctx context.Context, filter interface{}, opts *options.FindOptions) ([]T, error) {
	if filter == nil {
		filter = bson.D{}
	} else if filterMap, ok := filter.(map[string]interface{}); ok && len(filterMap) == 0 {
		filter = bson.D{}
	}
	if opts == nil {
		opts = options.Find()
	}

	cursor, err := s.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	var results []T
	if err = cursor.All(ctx, &results); err != nil {
		return nil, common.ConvertMongoError(err)
	}

	// Đảm bảo luôn trả về mảng, không phải nil
	if results == nil {
		results = []T{}
	}

	return results, nil
}

// FindOneById tìm document theo ObjectID
func (s *BaseServiceMongoImpl[T]) FindOneById(ctx context.Context, id primitive.ObjectID) (T, error) {
	return s.FindOne(ctx, bson.M{"_id": id}, nil)
}

// FindManyByIds tìm nhiều documents theo danh sách ObjectID
func (s *BaseServiceMongoImpl[T]) FindManyByIds(ctx context.Context, ids []primitive.ObjectID) ([]T, error) {
	if len(ids) == 0 {
		return []T{}, nil
	}
	return s.Find(ctx, bson.M{"_id": bson.M{"$in": ids}}, nil)
}

// FindWithPagination tìm bản ghi với phân trang.
// Response format chuẩn: { page, limit, itemCount, items, total, totalPage }.
func (s *BaseServiceMongoImpl[T]) FindWithPagination(ctx context.Context, filter interface{}, page, limit int64, opts *options.FindOptions) (*basemodels.PaginateResult[T], error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	if filter == nil {
		filter = bson.D{}
	}
	if opts == nil {
		opts = options.Find()
	}

	total, err := s.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}

	opts.SetSkip((page - 1) * limit).SetLimit(limit)
	items, err := s.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}

	totalPage := total / limit
	if total%limit != 0 {
		totalPage++
	}

	return &basemodels.PaginateResult[T]{
		Page:      page,
		Limit:     limit,
		ItemCount: int64(len(items)),
		Items:     items,
		Total:     total,
		TotalPage: totalPage,
	}, nil
}

// UpdateOne cập nhật một document theo filter
func (s *BaseServiceMongoImpl[T]) UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts *options.UpdateOptions) (T, error) {
	var zero T

	if filter == nil {
		filter = bson.D{}
	}
	if opts == nil {
		opts = options.Update().SetUpsert(false)
	}

	updateData, err := ToUpdateData(update)
	if err != nil {
		return zero, common.ErrInvalidFormat
	}
	if updateData.Set == nil {
		updateData.Set = map[string]interface{}{}
	}
	updateData.Set["updatedAt"] = time.Now().UnixMilli()

	result, err := s.collection.UpdateOne(ctx, filter, updateData, opts)
	if err != nil {
		return zero, common.ConvertMongoError(err)
	}
	if result.MatchedCount == 0 && result.UpsertedCount == 0 {
		return zero, common.ErrNotFound
	}

	return s.FindOne(ctx, filter, nil)
}

// UpdateById cập nhật document theo ObjectID
func (s *BaseServiceMongoImpl[T]) UpdateById(ctx context.Context, id primitive.ObjectID, data interface{}) (T, error) {
	return s.UpdateOne(ctx, bson.M{"_id": id}, data, nil)
}

// Upsert cập nhật hoặc tạo mới document theo filter
func (s *BaseServiceMongoImpl[T]) Upsert(ctx context.Context, filter interface{}, data interface{}) (T, error) {
	var zero T

	updateData, err := ToUpdateData(data)
	if err != nil {
		return zero, common.ErrInvalidFormat
	}
	now := time.Now().UnixMilli()
	if updateData.Set == nil {
		updateData.Set = map[string]interface{}{}
	}
	updateData.Set["updatedAt"] = now
	if updateData.SetOnInsert == nil {
		updateData.SetOnInsert = map[string]interface{}{}
	}
	updateData.SetOnInsert["createdAt"] = now

	opts := options.Update().SetUpsert(true)
	if _, err := s.collection.UpdateOne(ctx, filter, updateData, opts); err != nil {
		return zero, common.ConvertMongoError(err)
	}

	return s.FindOne(ctx, filter, nil)
}

// DeleteOne xóa một document theo filter
func (s *BaseServiceMongoImpl[T]) DeleteOne(ctx context.Context, filter interface{}) error {
	if filter == nil {
		filter = bson.D{}
	}

	result, err := s.collection.DeleteOne(ctx, filter)
	if err != nil {
		return common.ConvertMongoError(err)
	}
	if result.DeletedCount == 0 {
		return common.ErrNotFound
	}

	return nil
}

// DeleteMany xóa nhiều documents theo filter, trả về số lượng đã xóa
func (s *BaseServiceMongoImpl[T]) DeleteMany(ctx context.Context, filter interface{}) (int64, error) {
	if filter == nil {
		filter = bson.D{}
	}

	result, err := s.collection.DeleteMany(ctx, filter)
	if err != nil {
		return 0, common.ConvertMongoError(err)
	}

	return result.DeletedCount, nil
}

// DeleteById xóa document theo ObjectID
func (s *BaseServiceMongoImpl[T]) DeleteById(ctx context.Context, id primitive.ObjectID) error {
	return s.DeleteOne(ctx, bson.M{"_id": id})
}

// CountDocuments đếm số documents theo filter
func (s *BaseServiceMongoImpl[T]) CountDocuments(ctx context.Context, filter interface{}) (int64, error) {
	if filter == nil {
		filter = bson.D{}
	}

	count, err := s.collection.CountDocuments(ctx, filter)
	if err != nil {
		return 0, common.ConvertMongoError(err)
	}

	return count, nil
}

// Distinct trả về các giá trị khác nhau của một field theo filter
func (s *BaseServiceMongoImpl[T]) Distinct(ctx context.Context, fieldName string, filter interface{}) ([]interface{}, error) {
	if filter == nil {
		filter = bson.D{}
	}

	values, err := s.collection.Distinct(ctx, fieldName, filter)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}

	return values, nil
}

// Aggregate chạy pipeline aggregation và decode toàn bộ kết quả vào results (con trỏ slice)
func (s *BaseServiceMongoImpl[T]) Aggregate(ctx context.Context, pipeline interface{}, results interface{}) error {
	cursor, err := s.collection.Aggregate(ctx, pipeline, options.Aggregate())
	if err != nil {
		return common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	if err := cursor.All(ctx, results); err != nil {
		return common.ConvertMongoError(err)
	}

	return nil
}

// DocumentExists kiểm tra document có tồn tại theo filter hay không
func (s *BaseServiceMongoImpl[T]) DocumentExists(ctx context.Context, filter interface{}) (bool, error) {
	count, err := s.collection.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, common.ConvertMongoError(err)
	}
	return count > 0, nil
}
