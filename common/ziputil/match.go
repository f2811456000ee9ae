package ziputil

import (
	"regexp"
	"strings"
)

// MatchFunc decides whether a member name is selected. Names are passed as stored
// in the container; use Normalize or Pattern to ignore the separator convention.
type MatchFunc func(name string) bool

// Normalize rewrites backslash separators to forward slashes.
func Normalize(name string) string {
	return strings.ReplaceAll(name, `\`, "/")
}

// Pattern matches the normalized member path against re.
func Pattern(re *regexp.Regexp) MatchFunc {
	return func(name string) bool {
		return re.MatchString(Normalize(name))
	}
}
