package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestError_Is(t *testing.T) {
	wrapped := fmt.Errorf("tìm release: %w", ErrNotFound)
	assert.True(t, errors.Is(wrapped, ErrNotFound), "errors.Is phải xuyên qua wrap")
	assert.False(t, errors.Is(wrapped, ErrDuplicate))
}

func TestConvertMongoError_NoDocuments(t *testing.T) {
	err := ConvertMongoError(mongo.ErrNoDocuments)
	assert.True(t, errors.Is(err, ErrNotFound), "ErrNoDocuments phải thành ErrNotFound")
}

func TestConvertMongoError_KeepsNotFound(t *testing.T) {
	err := ConvertMongoError(ErrNotFound)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestConvertMongoError_Nil(t *testing.T) {
	assert.NoError(t, ConvertMongoError(nil))
}

func TestNewError_Fields(t *testing.T) {
	err := NewError(ErrCodeReportParse, "file hỏng", StatusBadRequest, map[string]interface{}{"reportFile": "q1.csv"})

	var appErr *Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "RPT_001", appErr.Code.Code)
	assert.Equal(t, StatusBadRequest, appErr.StatusCode)
	assert.Equal(t, "file hỏng", appErr.Error())
}
