package domain

import "regexp"

// forwardingHeader matches a method header `Type name(` and captures name.
var forwardingHeader = regexp.MustCompile(`[\w<>]+\s+(\w+)\s*\(`)

// HasForwarding reports whether the text contains a method whose whole body
// is `return a.b.name(...);` where name equals the method's own name.
// The parameter list and the returned call must each sit on one line; the
// braces and the return keyword may be surrounded by any whitespace.
func HasForwarding(text string) bool {
	bodies := make(map[string]*regexp.Regexp)

	for offset := 0; offset < len(text); {
		loc := forwardingHeader.FindStringSubmatchIndex(text[offset:])
		if loc == nil {
			return false
		}

		name := text[offset+loc[2] : offset+loc[3]]

		body, ok := bodies[name]
		if !ok {
			body = forwardingBody(name)
			bodies[name] = body
		}

		if body.MatchString(text[offset+loc[1]:]) {
			return true
		}

		offset += loc[2] + 1
	}

	return false
}

// sameLine matches any run of characters short of a Java line terminator.
const sameLine = `[^\r\n\x{85}\x{2028}\x{2029}]*`

// forwardingBody matches what follows a header: the rest of the parameters,
// then a body that only returns the same-named call on a qualified receiver.
func forwardingBody(name string) *regexp.Regexp {
	return regexp.MustCompile(`^` + sameLine + `\)\s*\{\s*return\s+\w+(?:\.\w+)*\.` + regexp.QuoteMeta(name) + `\(` + sameLine + `\)\s*;\s*\}`)
}
