package node

import "strings"

// IsResponseFormatUnsupportedError 判断错误是否为提供商不支持
// response_format/json_schema 参数，用于回落到纯 prompt 约束。
func IsResponseFormatUnsupportedError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "response_format"):
		return true
	case strings.Contains(msg, "json_schema"):
		return true
	case strings.Contains(msg, "response_schema"):
		return true
	case strings.Contains(msg, "unknown parameter") && strings.Contains(msg, "response"):
		return true
	case strings.Contains(msg, "invalid") && strings.Contains(msg, "response"):
		return true
	default:
		return false
	}
}
