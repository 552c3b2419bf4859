package formatting_test

import (
	"testing"

	"github.com/lianzhou/tizhi/pkg/formatting"
)

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		name      string
		n         int64
		precision int
		want      string
	}{
		{"zero", 0, 2, "0 B"},
		{"bytes", 512, 0, "512 B"},
		{"kilobytes", 32 * 1024, 0, "32 KB"},
		{"megabytes", 5 * 1024 * 1024, 1, "5.0 MB"},
		{"fractional", 1536, 1, "1.5 KB"},
		{"negative precision clamps", 1536, -3, "2 KB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatting.FormatBytes(tt.n, tt.precision); got != tt.want {
				t.Errorf("FormatBytes(%d, %d) = %q, want %q", tt.n, tt.precision, got, tt.want)
			}
		})
	}
}

func TestParseBytes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int64
	}{
		{"bare number", "1024", 1024},
		{"kilobytes", "32KB", 32 * 1024},
		{"with space", "32 KB", 32 * 1024},
		{"lowercase unit", "2mb", 2 * 1024 * 1024},
		{"fractional", "1.5KB", 1536},
		{"bytes unit", "100B", 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := formatting.ParseBytes(tt.input)
			if err != nil {
				t.Fatalf("ParseBytes(%q): %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseBytes(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseBytesErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"whitespace", "   "},
		{"unknown unit", "5QB"},
		{"no number", "KB"},
		{"garbage", "lots of bytes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := formatting.ParseBytes(tt.input); err == nil {
				t.Errorf("ParseBytes(%q): expected error", tt.input)
			}
		})
	}
}
