package utils

import (
	"strconv"
)

// StringToInt converts string to int, returns 0 if error
func StringToInt(s string) int {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return i
}

// PageParam 解析分页参数，非法或小于 1 时回退到 1
func PageParam(s string) int {
	page := StringToInt(s)
	if page < 1 {
		return 1
	}
	return page
}
