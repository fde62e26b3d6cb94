package catalog

import "strings"

// ParseMessage splits a full commit message into its type, subject and body.
// A subject line without a "type: " prefix is returned whole as the subject.
func ParseMessage(fullMessage string) (cType, cSubject, body string) {
	parts := strings.SplitN(fullMessage, "\n", 2)
	subjectLine := parts[0]
	if len(parts) > 1 {
		body = strings.TrimSpace(parts[1])
	}

	prefix, rest, found := strings.Cut(subjectLine, ":")
	if found && prefix != "" && !strings.ContainsAny(prefix, " \t") {
		return prefix, strings.TrimSpace(rest), body
	}
	return "", subjectLine, body
}

// JoinMessage is the inverse of ParseMessage.
func JoinMessage(cType, cSubject, body string) string {
	subjectLine := cSubject
	if cType != "" {
		subjectLine = cType + ": " + cSubject
	}
	if strings.TrimSpace(body) == "" {
		return subjectLine
	}
	return subjectLine + "\n\n" + strings.TrimSpace(body)
}

// baseType strips a Conventional Commits scope and breaking-change marker:
// "feat(api)!" -> "feat".
func baseType(cType string) string {
	cType = strings.TrimSuffix(cType, "!")
	if i := strings.IndexByte(cType, '('); i >= 0 && strings.HasSuffix(cType, ")") {
		cType = cType[:i]
	}
	return strings.ToLower(cType)
}
