package utility

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
)

// ToMap chuyển đổi một struct (hoặc map) thành map[string]interface{}
// thông qua bson marshal/unmarshal, giữ nguyên bson tags của model.
func ToMap(s interface{}) (map[string]interface{}, error) {
	if m, ok := s.(map[string]interface{}); ok {
		return m, nil
	}

	raw, err := bson.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("bson marshal failed: %w", err)
	}

	var result map[string]interface{}
	if err := bson.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("bson unmarshal failed: %w", err)
	}
	return result, nil
}

// MergeMaps gộp các map vào một map mới, key trùng lấy giá trị của map sau
func MergeMaps(maps ...map[string]interface{}) map[string]interface{} {
	result := make(map[string]interface{})
	for _, m := range maps {
		for k, v := range m {
			result[k] = v
		}
	}
	return result
}
