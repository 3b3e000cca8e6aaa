package node

import (
	"strings"
)

// StripCodeFences 去掉包裹 JSON 的 Markdown 代码栅栏。
// 模型经常以 ```json ... ``` 的形式返回结构化输出。
func StripCodeFences(s string) string {
	raw := strings.TrimSpace(s)
	if !strings.HasPrefix(raw, "```") {
		return raw
	}
	raw = strings.TrimPrefix(raw, "```")
	// 吃掉语言标注行（json / JSON 等）
	if idx := strings.Index(raw, "\n"); idx >= 0 {
		first := strings.TrimSpace(raw[:idx])
		if first == "" || len(first) <= 10 && !strings.ContainsAny(first, "{}[]") {
			raw = raw[idx+1:]
		}
	}
	raw = strings.TrimSuffix(strings.TrimSpace(raw), "```")
	return strings.TrimSpace(raw)
}

// ExtractJSONObject 从夹杂其它文本的模型输出中截取首个 '{' 到末个 '}' 的片段。
// 这是一个容错逻辑，不保证截取结果是合法 JSON，由调用方解析验证。
func ExtractJSONObject(s string) string {
	raw := strings.TrimSpace(s)
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start >= 0 && end > start {
		return raw[start : end+1]
	}
	return raw
}
