package pathutil

import (
	"regexp"
	"strings"
)

// PathParamRegex matches path template parameters like {paramName}.
// It captures the parameter name inside the braces.
var PathParamRegex = regexp.MustCompile(`\{([^}]+)\}`)

// FragmentSeparator splits the routable part of a route key from the
// discriminator suffix.
const FragmentSeparator = "#"

// PathParams returns the variable names of a template in order of appearance.
// Variables in the fragment are ignored.
func PathParams(template string) []string {
	path, _, _ := strings.Cut(template, FragmentSeparator)
	matches := PathParamRegex.FindAllStringSubmatch(path, -1)
	if len(matches) == 0 {
		return nil
	}
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, m[1])
	}
	return out
}

// NormalizeGreedy rewrites multi-valued segments such as "{Key+}" to "{Key}"
// and returns the names that carried the marker.
func NormalizeGreedy(template string) (string, []string) {
	var greedy []string
	out := PathParamRegex.ReplaceAllStringFunc(template, func(m string) string {
		name := m[1 : len(m)-1]
		if trimmed, ok := strings.CutSuffix(name, "+"); ok {
			greedy = append(greedy, trimmed)
			return "{" + trimmed + "}"
		}
		return m
	})
	return out, greedy
}

// AppendFragment adds token to the discriminator suffix of a route key,
// starting the suffix if there is none.
func AppendFragment(route, token string) string {
	if strings.Contains(route, FragmentSeparator) {
		return route + "&" + token
	}
	return route + FragmentSeparator + token
}

// Deparameterize replaces every template variable with "{param}" and drops
// the discriminator suffix, so routes that only differ by variable names or
// suffixes compare equal.
func Deparameterize(route string) string {
	path, _, _ := strings.Cut(route, FragmentSeparator)
	return PathParamRegex.ReplaceAllString(path, "{param}")
}
