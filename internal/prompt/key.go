package prompt

import (
	"regexp"
	"strings"
)

var (
	// Anything that is not a letter, digit, underscore, space or hyphen.
	// Combining marks count as letters. Unicode separators such as NBSP count
	// as spaces.
	keyStripRe = regexp.MustCompile(`[^\p{L}\p{M}\p{N}_\p{Z}\s\v-]+`)
	// Runs of hyphens and spaces.
	keySepRe = regexp.MustCompile(`[-\p{Z}\s\v]+`)
)

// ToKey normalizes a prompt heading into the kebab-case key used for lookups
// and for list output, e.g. "My Prompt!! (v2)" becomes "my-prompt-v2".
// It is idempotent: ToKey(ToKey(s)) == ToKey(s).
func ToKey(name string) string {
	key := keyStripRe.ReplaceAllString(name, "")
	key = keySepRe.ReplaceAllString(key, "-")
	key = strings.ToLower(key)
	return strings.Trim(key, "-")
}
