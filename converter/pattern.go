package converter

import (
	"regexp"
	"strings"
)

var (
	// negativeLookbehind matches "(?<!...)" groups, which RE2 cannot compile.
	negativeLookbehind = regexp.MustCompile(`\(\?<![^)]*\)`)
	// patternToken splits a pattern into bracket expressions, escapes and
	// single characters.
	patternToken = regexp.MustCompile(`\[\^?\]?[^\]]*\]|\\.|.`)
)

// compatiblePattern returns pattern when it compiles as RE2. Otherwise it
// strips negative lookbehinds, reads the rest as a POSIX regular expression
// and returns the rewrite if that compiles. ok is false when neither does.
func compatiblePattern(pattern string) (string, bool) {
	if _, err := regexp.Compile(pattern); err == nil {
		return pattern, true
	}
	rewritten := rewritePOSIX(pattern)
	if _, err := regexp.Compile(rewritten); err == nil {
		return rewritten, true
	}
	return pattern, false
}

func rewritePOSIX(pattern string) string {
	pattern = negativeLookbehind.ReplaceAllString(pattern, "")
	return patternToken.ReplaceAllStringFunc(pattern, rewriteToken)
}

// rewriteToken translates one POSIX token.
func rewriteToken(tok string) string {
	if strings.HasPrefix(tok, "[") {
		// a backslash inside brackets is literal in POSIX
		tok = strings.Replace(tok, `\`, `\\`, 1)
		// as is a leading "]" or "^]"
		if strings.HasPrefix(tok, "[]") || strings.HasPrefix(tok, "[^]") {
			return strings.Replace(tok, "]", `\]`, 1)
		}
		return tok
	}
	if len(tok) == 2 && tok[0] == '\\' && strings.IndexByte("(){}", tok[1]) >= 0 {
		return tok[1:]
	}
	if len(tok) == 1 && strings.IndexByte("+?|(){}", tok[0]) >= 0 {
		return `\` + tok
	}
	return tok
}
