// Package normalize converts upstream metadata (ISO-8601 durations and
// timestamps, watch-page URLs) into the display forms the catalog stores
// and serves.
package normalize

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sosodev/duration"
)

// DurationSentinel is returned when an upstream duration cannot be parsed.
const DurationSentinel = "N/A"

// DisplayDateLayout is the localized layout upload dates are stored and
// served in, e.g. "2023年11月22日11時00分".
const DisplayDateLayout = "2006年01月02日15時04分"

const isoDateLayout = "2006-01-02T15:04:05"

// ErrBadDate reports an upload date that matches neither accepted layout.
// Callers drop the record rather than propagating the failure.
var ErrBadDate = errors.New("unsupported date format")

// Duration converts an ISO-8601 duration like "PT1H2M3S" into "1:02:03".
// Hours are unpadded, minutes and seconds zero-padded. Any parse failure,
// including empty input, yields the sentinel.
func Duration(raw string) string {
	d, err := duration.Parse(raw)
	if err != nil {
		return DurationSentinel
	}

	total := int64(d.ToTimeDuration() / time.Second)
	if total < 0 {
		return DurationSentinel
	}

	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	return fmt.Sprintf("%d:%02d:%02d", h, m, s)
}

// UploadDate accepts either a strict ISO-8601 timestamp (a trailing "Z" is
// stripped first) or an already-localized display date, and returns the
// display form. Unparsable input returns ErrBadDate.
func UploadDate(raw string) (string, error) {
	trimmed := strings.TrimSuffix(raw, "Z")

	t, err := time.Parse(isoDateLayout, trimmed)
	if err != nil {
		t, err = time.Parse(DisplayDateLayout, trimmed)
		if err != nil {
			return "", fmt.Errorf("%w: %q", ErrBadDate, raw)
		}
	}
	return t.Format(DisplayDateLayout), nil
}

// EmbedURL rewrites a standard watch-page URL into the embeddable player
// form by extracting the video id. Non-watch URLs pass through unchanged.
func EmbedURL(videoURL string) string {
	if _, id, ok := strings.Cut(videoURL, "watch?v="); ok {
		return "https://www.youtube.com/embed/" + id
	}
	return videoURL
}
