package mru

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/donghojung/mru/internal/constants"
)

// Matcher tests entries against an ordered list of patterns.
type Matcher struct {
	re *regexp.Regexp
}

// NewMatcher builds a matcher requiring every pattern to appear in order,
// with anything allowed between and around them. Patterns are literal text.
// Matching ignores case unless some pattern has an uppercase letter.
func NewMatcher(patterns []string) *Matcher {
	quoted := make([]string, len(patterns))
	for i, p := range patterns {
		quoted[i] = regexp.QuoteMeta(p)
	}

	expr := strings.Join(quoted, ".*")
	if !SmartCaseSensitive(patterns) {
		expr = "(?i)" + expr
	}

	return &Matcher{re: regexp.MustCompile(expr)}
}

// Match reports whether entry satisfies the matcher.
func (m *Matcher) Match(entry string) bool {
	return m.re.MatchString(entry)
}

// SmartCaseSensitive reports whether any pattern contains an uppercase letter.
func SmartCaseSensitive(patterns []string) bool {
	for _, p := range patterns {
		for _, r := range p {
			if unicode.IsUpper(r) {
				return true
			}
		}
	}
	return false
}

// Search returns the entries matching patterns, in store order.
// With no patterns it returns the most recent entries instead.
// An empty result is not an error; callers decide how to report it.
func (s *Store) Search(patterns []string) ([]string, error) {
	if len(patterns) == 0 {
		head, _, err := s.Peek(constants.PreviewEntries)
		return head, err
	}

	m := NewMatcher(patterns)
	var matches []string
	err := s.scan("search", func(line string) bool {
		if m.Match(line) {
			matches = append(matches, line)
		}
		return true
	})
	if err != nil {
		return nil, err
	}
	return matches, nil
}
