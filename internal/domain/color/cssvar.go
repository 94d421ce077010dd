package color

import (
	"regexp"
	"strings"
)

// varPattern 精確匹配 var(--name) 引用
var varPattern = regexp.MustCompile(`^var\(\s*(--[A-Za-z0-9_-]+)\s*\)$`)

// VarResolver 自定義屬性（主題變量）查詢能力
// 對應瀏覽器 computed style 的讀取；無此能力時調用方傳 nil
type VarResolver interface {
	// Resolve 返回屬性的原始值；屬性不存在時 ok 為 false
	Resolve(name string) (value string, ok bool)
}

// CheckVar 檢測字符串是否為 var(--name) 引用，並提取屬性名
func CheckVar(input string) (string, bool) {
	m := varPattern.FindStringSubmatch(strings.TrimSpace(input))
	if m == nil {
		return "", false
	}
	return m[1], true
}

// GetVar 查詢自定義屬性的當前值
// 返回修剪後的值；屬性缺失或值為空時返回屬性名本身（刻意的惰性回退），
// 平台不具備查詢能力（resolver 為 nil）時返回 ok=false，調用方應視為「無顏色可用」
func GetVar(name string, r VarResolver) (string, bool) {
	if r == nil {
		return "", false
	}
	v, ok := r.Resolve(name)
	v = strings.TrimSpace(v)
	if !ok || v == "" {
		return name, true
	}
	return v, true
}

// ResolveString 若輸入為變量引用則解析為其值，否則原樣返回
func ResolveString(input string, r VarResolver) (string, bool) {
	if name, ok := CheckVar(input); ok {
		return GetVar(name, r)
	}
	return input, true
}
