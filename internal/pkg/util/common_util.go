package util

import (
	"strconv"
	"strings"
)

// ParseOptionalID 路由参数缺失或非法时返回 nil
func ParseOptionalID(raw string) *uint64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return nil
	}
	return &id
}

// FormatID 下拉选项的 Value
func FormatID(id uint64) string {
	return strconv.FormatUint(id, 10)
}

// PtrUint64 用于将 uint64 转换为 *uint64
func PtrUint64(i uint64) *uint64 {
	return &i
}
