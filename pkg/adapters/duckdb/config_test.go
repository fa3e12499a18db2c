package duckdb

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseParams(t *testing.T) {
	tests := []struct {
		name  string
		input map[string]string
		want  *Params
	}{
		{
			name:  "nil options returns empty struct",
			input: nil,
			want:  &Params{},
		},
		{
			name:  "empty map returns empty struct",
			input: map[string]string{},
			want:  &Params{},
		},
		{
			name:  "extensions only",
			input: map[string]string{"extensions": "httpfs, json,,spatial"},
			want:  &Params{Extensions: []string{"httpfs", "json", "spatial"}},
		},
		{
			name: "settings only",
			input: map[string]string{
				"memory_limit": "4GB",
				"threads":      "4",
			},
			want: &Params{
				Settings: map[string]string{
					"memory_limit": "4GB",
					"threads":      "4",
				},
			},
		},
		{
			name: "both",
			input: map[string]string{
				"extensions": "json",
				"threads":    "2",
			},
			want: &Params{
				Extensions: []string{"json"},
				Settings:   map[string]string{"threads": "2"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseParams(tt.input))
		})
	}
}

func TestParams_SettingNames(t *testing.T) {
	p := ParseParams(map[string]string{"threads": "4", "memory_limit": "1GB", "extensions": "json"})
	assert.Equal(t, []string{"memory_limit", "threads"}, p.SettingNames())
}
