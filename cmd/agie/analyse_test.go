package main

import (
	"reflect"
	"testing"
)

func TestParseContext(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want map[string]string
	}{
		{
			name: "empty",
			in:   "",
			want: nil,
		},
		{
			name: "single pair",
			in:   "industry: financial services",
			want: map[string]string{"industry": "financial services"},
		},
		{
			name: "multiple pairs with spacing",
			in:   "industry: healthcare , data: PII",
			want: map[string]string{"industry": "healthcare", "data": "PII"},
		},
		{
			name: "value containing colon",
			in:   "endpoint: https://example.com",
			want: map[string]string{"endpoint": "https://example.com"},
		},
		{
			name: "pairs without colon ignored",
			in:   "no colon here, region: EU",
			want: map[string]string{"region": "EU"},
		},
		{
			name: "only malformed pairs",
			in:   "nothing useful",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseContext(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseContext(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
