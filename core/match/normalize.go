package match

import (
	"strings"

	"fabric-index/core/utils"
)

// NormalizeKey canonicalizes a raw cell value into a comparable key.
// Nil collapses to "", everything else is stringified, trimmed and
// upper-cased. A trailing ".0" is stripped once (whole numbers read as
// floating text), and the literal "NAN" collapses to "" (stringified-null
// artifact). Total function: never fails, any input degrades to "".
func NormalizeKey(value any) string {
	if value == nil {
		return ""
	}

	s := strings.ToUpper(strings.TrimSpace(utils.ToString(value)))

	if strings.HasSuffix(s, ".0") {
		s = s[:len(s)-2]
	}

	if s == "NAN" {
		return ""
	}

	return s
}
