package scanner

import "strings"

// dangerousPrefixes are the case-insensitive URL schemes the HTML emitter's
// safe mode blanks out, per spec. "data:" is exempted for the four
// explicitly safe image subtypes.
var dangerousPrefixes = []string{"javascript:", "vbscript:", "file:", "data:"}

var dataImageExceptions = []string{
	"data:image/png", "data:image/gif", "data:image/jpeg", "data:image/webp",
}

// DangerousURL reports whether dest (already percent/entity-resolved for
// comparison purposes, but this scanner works fine on the raw destination
// too since it only inspects the leading scheme) should be blanked under
// safe-mode HTML rendering.
func DangerousURL(dest string) bool {
	lower := strings.ToLower(strings.TrimLeft(dest, " \t\n"))
	for _, exc := range dataImageExceptions {
		if strings.HasPrefix(lower, exc) {
			return false
		}
	}
	for _, p := range dangerousPrefixes {
		if strings.HasPrefix(lower, p) {
			return true
		}
	}
	return false
}
