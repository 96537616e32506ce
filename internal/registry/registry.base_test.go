package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_RegisterAndGet(t *testing.T) {
	r := NewRegistry[string]()

	isNew, err := r.Register("revenue_data", "col-a")
	require.NoError(t, err)
	assert.True(t, isNew)

	item, exists := r.Get("revenue_data")
	assert.True(t, exists)
	assert.Equal(t, "col-a", item)

	_, exists = r.Get("missing")
	assert.False(t, exists)
}

func TestRegistry_RegisterDuplicate(t *testing.T) {
	r := NewRegistry[int]()

	_, err := r.Register("artists", 1)
	require.NoError(t, err)

	isNew, err := r.Register("artists", 2)
	require.NoError(t, err)
	assert.False(t, isNew, "Đăng ký trùng tên không được coi là mới")

	item, _ := r.Get("artists")
	assert.Equal(t, 2, item, "Đăng ký trùng phải ghi đè item cũ")
}

func TestRegistry_EmptyName(t *testing.T) {
	r := NewRegistry[string]()
	_, err := r.Register("", "x")
	assert.Error(t, err, "Tên rỗng phải trả lỗi")
}

func TestRegistry_Unregister(t *testing.T) {
	r := NewRegistry[string]()
	r.Register("releases", "x")

	assert.True(t, r.Unregister("releases"))
	assert.False(t, r.Unregister("releases"), "Unregister lần hai phải trả false")
	assert.Equal(t, 0, r.Count())
}
