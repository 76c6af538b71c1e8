// Package classify maps free-text video titles into the training taxonomy:
// drill category, required player count, and target level. All three
// matchers are pure functions over the title and always return a label.
package classify

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Fallback labels when no pattern matches.
const (
	DefaultCategory = "その他"
	DefaultPlayers  = "人数指定なし"
	DefaultLevel    = "小学生以上"
)

type pattern struct {
	re    *regexp.Regexp
	label string
}

// Category patterns in priority order: the numeric N対M duel pattern wins
// over every keyword, so "3対2からのパス" is 対人, not パス.
var categoryPatterns = []pattern{
	// Category inspects the raw title, so the duel pattern accepts
	// full-width digits too; only Players folds the title to half-width.
	{regexp.MustCompile(`[0-9０-９]対[0-9０-９]`), "対人"},
	{regexp.MustCompile(`パス`), "パス"},
	{regexp.MustCompile(`ドリブル`), "ドリブル"},
	{regexp.MustCompile(`シュート`), "シュート"},
	{regexp.MustCompile(`キック`), "キック"},
	{regexp.MustCompile(`ビルドアップ`), "ビルドアップ"},
	{regexp.MustCompile(`GK|キーパー`), "キーパー"},
	{regexp.MustCompile(`守備|ディフェンス`), "ディフェンス"},
	{regexp.MustCompile(`フィジカル|アジリティ|ストレッチ|ラダー`), "フィジカル"},
	{regexp.MustCompile(`考え方|コンセプト|指導`), "コンセプト/考え方"},
}

var levelPatterns = []pattern{
	{regexp.MustCompile(`高校|高等`), "高校生"},
	{regexp.MustCompile(`中学|中等`), "中学生"},
	{regexp.MustCompile(`ユース`), "ユース"},
}

var (
	playersCountRe = regexp.MustCompile(`(\d+)人`)
	playersDuelRe  = regexp.MustCompile(`(\d+)対(\d+)`)
	fullWidthDigit = regexp.MustCompile(`[０-９]`)
)

// Category returns the drill category for a title, first match wins.
func Category(title string) string {
	for _, p := range categoryPatterns {
		if p.re.MatchString(title) {
			return p.label
		}
	}
	return DefaultCategory
}

// Players returns the player-count label for a title. Full-width digits are
// folded to half-width first so "３対２" and "3対2" classify identically.
// Duel patterns are canonicalized larger-number-first: both "5対3" and
// "3対5" yield "5対3".
func Players(title string) string {
	title = toHalfWidth(title)

	if m := playersCountRe.FindStringSubmatch(title); m != nil {
		return m[1] + "人"
	}

	if m := playersDuelRe.FindStringSubmatch(title); m != nil {
		a, _ := strconv.Atoi(m[1])
		b, _ := strconv.Atoi(m[2])
		if b > a {
			a, b = b, a
		}
		return fmt.Sprintf("%d対%d", a, b)
	}

	return DefaultPlayers
}

// Level returns the target age level for a title, first match wins.
func Level(title string) string {
	for _, p := range levelPatterns {
		if p.re.MatchString(title) {
			return p.label
		}
	}
	return DefaultLevel
}

// toHalfWidth applies NFKC compatibility normalization, remaps any surviving
// full-width digits by code-point offset, and trims surrounding whitespace.
func toHalfWidth(s string) string {
	s = norm.NFKC.String(s)
	s = fullWidthDigit.ReplaceAllStringFunc(s, func(d string) string {
		r := []rune(d)[0]
		return string(r - 0xFEE0)
	})
	return strings.TrimSpace(s)
}
