package normalize

import (
	"regexp"
	"strings"
)

// 連續空白（含全角空格）歸約用
var spaceRegex = regexp.MustCompile(`\s+`)

// Input 規整用戶輸入的顏色字符串
// 修剪首尾空白、壓縮內部連續空白為單個空格，並統一為小寫；
// 解析器自身也會修剪，這裡的規整主要服務於日誌與回顯
func Input(s string) string {
	s = strings.TrimSpace(s)
	s = spaceRegex.ReplaceAllString(s, " ")
	return strings.ToLower(s)
}

// Truncate 截斷過長字符串（日誌字段用），按字符而非字節計
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "…"
}
