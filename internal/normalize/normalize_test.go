package normalize

import (
	"errors"
	"testing"
)

func TestDuration(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"PT1H2M3S", "1:02:03"},
		{"PT15M", "0:15:00"},
		{"PT0S", "0:00:00"},
		{"PT45S", "0:00:45"},
		{"PT2H", "2:00:00"},
		{"P1DT1H", "25:00:00"},
		{"", "N/A"},
		{"garbage", "N/A"},
		{"1:02:03", "N/A"},
	}
	for _, tc := range cases {
		if got := Duration(tc.raw); got != tc.want {
			t.Errorf("Duration(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

func TestUploadDate_ISO(t *testing.T) {
	got, err := UploadDate("2023-11-22T11:00:00Z")
	if err != nil {
		t.Fatalf("UploadDate: %v", err)
	}
	if got != "2023年11月22日11時00分" {
		t.Errorf("UploadDate = %q", got)
	}
}

func TestUploadDate_AlreadyLocalized(t *testing.T) {
	got, err := UploadDate("2023年11月22日11時00分")
	if err != nil {
		t.Fatalf("UploadDate: %v", err)
	}
	if got != "2023年11月22日11時00分" {
		t.Errorf("UploadDate = %q", got)
	}
}

func TestUploadDate_Invalid(t *testing.T) {
	_, err := UploadDate("22/11/2023")
	if !errors.Is(err, ErrBadDate) {
		t.Errorf("err = %v, want ErrBadDate", err)
	}
}

func TestEmbedURL(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"https://www.youtube.com/watch?v=B-uDfqk20ac", "https://www.youtube.com/embed/B-uDfqk20ac"},
		{"https://youtu.be/B-uDfqk20ac", "https://youtu.be/B-uDfqk20ac"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := EmbedURL(tc.in); got != tc.want {
			t.Errorf("EmbedURL(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
