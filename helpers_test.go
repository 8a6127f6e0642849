package main

import "testing"

func TestTruncate(t *testing.T) {
	tests := []struct {
		in     string
		maxLen int
		want   string
	}{
		{"short", 10, "short     "},
		{"exactly10!", 10, "exactly10!"},
		{"this is too long", 10, "this is t…"},
	}

	for _, tt := range tests {
		if got := truncate(tt.in, tt.maxLen); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.maxLen, got, tt.want)
		}
	}
}

func TestTruncateLeft(t *testing.T) {
	tests := []struct {
		in     string
		maxLen int
		want   string
	}{
		{"short.csv", 20, "short.csv"},
		{"/very/long/path/to/feeds.csv", 10, "…feeds.csv"},
	}

	for _, tt := range tests {
		if got := truncateLeft(tt.in, tt.maxLen); got != tt.want {
			t.Errorf("truncateLeft(%q, %d) = %q, want %q", tt.in, tt.maxLen, got, tt.want)
		}
	}
}
