package formatting_test

import (
	"testing"

	"github.com/JaimeStill/opiniao/pkg/formatting"
)

func TestParseBytes(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"2048", 2048},
		{"16KB", 16 * 1024},
		{"16kb", 16 * 1024},
		{"16 K", 16 * 1024},
		{"1.5 MiB", 1536 * 1024},
		{"1GB", 1 << 30},
		{" 512 B ", 512},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := formatting.ParseBytes(tt.in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}
}

func TestParseBytesInvalid(t *testing.T) {
	for _, in := range []string{"", "KB", "-5KB", "12XB", "1.2.3MB", "10 KiBs", "99999EB"} {
		if _, err := formatting.ParseBytes(in); err == nil {
			t.Errorf("%q: expected error", in)
		}
	}
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		n         int64
		precision int
		want      string
	}{
		{0, 1, "0 B"},
		{1023, 1, "1023 B"},
		{1024, 1, "1.0 KB"},
		{1536, 1, "1.5 KB"},
		{5 << 20, 0, "5 MB"},
		{1536, -3, "2 KB"},
	}

	for _, tt := range tests {
		if got := formatting.FormatBytes(tt.n, tt.precision); got != tt.want {
			t.Errorf("FormatBytes(%d, %d) = %q, want %q", tt.n, tt.precision, got, tt.want)
		}
	}
}
