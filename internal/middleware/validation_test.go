package middleware

import (
	"strings"
	"testing"
)

func TestParseCount(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		fallback int
		want     int
	}{
		{"empty uses fallback", "", 10, 10},
		{"valid", "25", 10, 25},
		{"zero is valid", "0", 10, 0},
		{"negative uses fallback", "-5", 10, 10},
		{"garbage uses fallback", "ten", 10, 10},
		{"float uses fallback", "2.5", 10, 10},
		{"trims whitespace", " 7 ", 10, 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseCount(tt.input, tt.fallback); got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}
}

func TestTruncateQuery(t *testing.T) {
	if got := TruncateQuery("  ドリブル  "); got != "ドリブル" {
		t.Errorf("got %q", got)
	}

	long := strings.Repeat("a", MaxQueryLen+50)
	if got := TruncateQuery(long); len(got) != MaxQueryLen {
		t.Errorf("len = %d, want %d", len(got), MaxQueryLen)
	}
}

func TestTruncateFeedback(t *testing.T) {
	short := "ありがとうございます"
	if got := TruncateFeedback(short); got != short {
		t.Errorf("got %q", got)
	}

	long := strings.Repeat("x", MaxFeedbackLen*2)
	if got := TruncateFeedback(long); len(got) != MaxFeedbackLen {
		t.Errorf("len = %d, want %d", len(got), MaxFeedbackLen)
	}
}

func TestSanitizePath(t *testing.T) {
	if got := sanitizePath("/get_unique_values/players"); got != "/get_unique_values/:column" {
		t.Errorf("got %q", got)
	}
	if got := sanitizePath("/search"); got != "/search" {
		t.Errorf("got %q", got)
	}
}
