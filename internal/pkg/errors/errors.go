package errors

import (
	"errors"
	"fmt"
)

// 預定義錯誤類型
var (
	// 配置相關
	ErrConfigInvalid     = errors.New("configuration is invalid")
	ErrConfigParseFailed = errors.New("failed to parse configuration")

	// 顏色相關
	ErrInvalidColor  = errors.New("unrecognized color string")
	ErrInvalidFormat = errors.New("invalid output format")
)

// Error 自定義錯誤類型
type Error struct {
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New 創建新錯誤
func New(code, message string) error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Wrap 包裝錯誤
func Wrap(err error, code, message string) error {
	return &Error{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Is 判斷錯誤鏈中是否包含目標錯誤
func Is(err, target error) bool {
	return errors.Is(err, target)
}
