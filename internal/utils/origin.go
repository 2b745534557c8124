package utils

import (
	"strings"
)

// UnknownOrigin 缺少转发头时的占位来源
const UnknownOrigin = "0.0.0.0"

// ReporterOrigin 从 X-Forwarded-For 头取第一跳作为举报来源标识
func ReporterOrigin(forwardedFor string) string {
	if forwardedFor == "" {
		return UnknownOrigin
	}
	origin := strings.TrimSpace(strings.Split(forwardedFor, ",")[0])
	if origin == "" {
		return UnknownOrigin
	}
	return origin
}
