package validate

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"shopdrive/internal/domain"
)

const (
	MaxQueryLen = 100
	MaxLimit    = 50
)

var (
	reEmail = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
	reID    = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)
)

func Email(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if len(s) == 0 || len(s) > 100 {
		return "", false
	}
	return s, reEmail.MatchString(s)
}

// Q validates a search query. A blank query is valid and returned as "".
// Anything else is returned exactly as typed, surrounding spaces included;
// only invalid UTF-8 and queries over MaxQueryLen runes are rejected.
func Q(s string) (string, bool) {
	if strings.TrimSpace(s) == "" {
		return "", true
	}
	if !utf8.ValidString(s) || utf8.RuneCountInString(s) > MaxQueryLen {
		return s, false
	}
	return s, true
}

// Limit parses an optional result cap. Blank means def; values above max are clamped.
func Limit(s string, def, max int) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return def, true
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, false
	}
	if n > max {
		n = max
	}
	return n, true
}

// Bool parses an optional boolean filter ("true"/"false"/"1"/"0").
func Bool(s string) (value, set, ok bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return false, false, true
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return false, false, false
	}
	return b, true, true
}

// ID validates a simple resource identifier.
func ID(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && reID.MatchString(s)
}

func PromoStatus(s string) bool {
	switch s {
	case domain.PromoActive, domain.PromoExpired, domain.PromoScheduled:
		return true
	}
	return false
}

func ArticleStatus(s string) bool {
	switch s {
	case domain.ArticlePublished, domain.ArticleDraft, domain.ArticleArchived:
		return true
	}
	return false
}

// Text checks a required field and its maximum length in runes.
func Text(s string, max int) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && utf8.RuneCountInString(s) <= max
}

// Password enforces the login password policy.
func Password(s string) bool {
	l := len(s)
	if l < 8 || l > 72 {
		return false
	}
	var hasLower, hasUpper, hasDigit, hasSymbol bool
	for _, r := range s {
		switch {
		case 'a' <= r && r <= 'z':
			hasLower = true
		case 'A' <= r && r <= 'Z':
			hasUpper = true
		case '0' <= r && r <= '9':
			hasDigit = true
		default:
			hasSymbol = true
		}
	}
	return hasLower && hasUpper && hasDigit && hasSymbol
}
