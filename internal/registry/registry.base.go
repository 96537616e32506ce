// Package registry cung cấp registry pattern với generic type,
// dùng để quản lý các singleton instances (collections, databases) một cách thread-safe.
package registry

import (
	"fmt"
	"sync"

	"github.com/shakibkumnale/souldistribution/internal/common"
)

// Registry là một thread-safe generic registry.
// Type parameter T cho phép registry quản lý bất kỳ loại object nào.
type Registry[T any] struct {
	items map[string]T // Map lưu trữ các items theo key
	mu    sync.RWMutex // Mutex để đảm bảo thread-safety
}

// NewRegistry tạo và trả về một registry mới
func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{
		items: make(map[string]T),
	}
}

// Register đăng ký một item mới vào registry.
// Nếu item với name đã tồn tại, nó sẽ bị ghi đè.
//
// Returns:
//   - isNew: true nếu là item mới, false nếu ghi đè item cũ
//   - err: trả về lỗi nếu name rỗng
func (r *Registry[T]) Register(name string, item T) (isNew bool, err error) {
	if name == "" {
		return false, fmt.Errorf("name cannot be empty: %w", common.ErrRequiredField)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	_, exists := r.items[name]
	r.items[name] = item
	return !exists, nil
}

// Get lấy item theo tên.
// Trả về item và một boolean cho biết item có tồn tại hay không.
func (r *Registry[T]) Get(name string) (item T, exists bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	item, exists = r.items[name]
	return item, exists
}

// Unregister xóa item khỏi registry theo tên.
// Trả về true nếu item tồn tại và đã bị xóa.
func (r *Registry[T]) Unregister(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.items[name]; !exists {
		return false
	}
	delete(r.items, name)
	return true
}

// Names trả về danh sách tên các items đã đăng ký
func (r *Registry[T]) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.items))
	for name := range r.items {
		names = append(names, name)
	}
	return names
}

// Count trả về số lượng items trong registry
func (r *Registry[T]) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}
