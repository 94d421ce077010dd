package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestError_Format 錯誤消息格式
func TestError_Format(t *testing.T) {
	err := New("E001", "配置無效")
	assert.Equal(t, "[E001] 配置無效", err.Error())

	wrapped := Wrap(ErrConfigInvalid, "E002", "加載失敗")
	assert.Contains(t, wrapped.Error(), "[E002]")
	assert.Contains(t, wrapped.Error(), ErrConfigInvalid.Error())
}

// TestError_Unwrap 錯誤鏈判斷
func TestError_Unwrap(t *testing.T) {
	wrapped := Wrap(ErrInvalidColor, "E003", "解析失敗")

	assert.True(t, Is(wrapped, ErrInvalidColor))
	assert.True(t, stderrors.Is(wrapped, ErrInvalidColor))
	assert.False(t, Is(wrapped, ErrInvalidFormat))

	var e *Error
	assert.True(t, stderrors.As(wrapped, &e))
	assert.Equal(t, "E003", e.Code)
}
