package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandEnv(t *testing.T) {
	t.Setenv("CINEPLAN_TEST_HOST", "db.internal")

	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "环境变量存在",
			in:   "host: ${CINEPLAN_TEST_HOST:localhost}",
			want: "host: db.internal",
		},
		{
			name: "缺失时用默认值",
			in:   "port: ${CINEPLAN_TEST_MISSING:5432}",
			want: "port: 5432",
		},
		{
			name: "空默认值",
			in:   "password: ${CINEPLAN_TEST_MISSING2:}",
			want: "password: ",
		},
		{
			name: "无默认值且未定义时原样保留",
			in:   "key: ${CINEPLAN_TEST_MISSING3}",
			want: "key: ${CINEPLAN_TEST_MISSING3}",
		},
		{
			name: "普通文本不受影响",
			in:   "name: cineplan",
			want: "name: cineplan",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, expandEnv(tt.in))
		})
	}
}
