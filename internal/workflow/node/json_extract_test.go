package node

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripCodeFences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "无栅栏原样返回",
			in:   `{"days": []}`,
			want: `{"days": []}`,
		},
		{
			name: "json 语言标注",
			in:   "```json\n{\"days\": []}\n```",
			want: `{"days": []}`,
		},
		{
			name: "无语言标注",
			in:   "```\n{\"days\": []}\n```",
			want: `{"days": []}`,
		},
		{
			name: "首行即内容不被吃掉",
			in:   "```{\"days\": []}\n```",
			want: `{"days": []}`,
		},
		{
			name: "前后空白",
			in:   "  \n```json\n{\"a\":1}\n```  \n",
			want: `{"a":1}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripCodeFences(tt.in))
		})
	}
}

func TestExtractJSONObject(t *testing.T) {
	in := "好的，以下是排期结果：\n{\"days\": [{\"day_number\": 1}]}\n希望对你有帮助。"
	assert.Equal(t, `{"days": [{"day_number": 1}]}`, ExtractJSONObject(in))

	// 无大括号时原样返回
	assert.Equal(t, "no json here", ExtractJSONObject("  no json here "))

	// 嵌套对象取首末括号
	nested := `prefix {"a": {"b": 1}} suffix`
	assert.Equal(t, `{"a": {"b": 1}}`, ExtractJSONObject(nested))
}
