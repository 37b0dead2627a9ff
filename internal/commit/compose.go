package commit

import "strings"

const breakingChangePrefix = "BREAKING CHANGE: "

// Title renders the header line: type[(scope)][!]: description.
func (r Record) Title() string {
	var b strings.Builder
	b.WriteString(r.Type)
	if r.Scope != "" {
		b.WriteString("(" + r.Scope + ")")
	}
	if r.BreakingChange != "" {
		b.WriteByte('!')
	}
	b.WriteString(": ")
	b.WriteString(r.Description)
	return b.String()
}

// IssueRefs turns a comma separated issue list into "Closes #N" lines.
// Tokens may be bare numbers or already carry the leading '#'; empty tokens are skipped.
func IssueRefs(issues string) []string {
	var refs []string
	for _, token := range strings.Split(issues, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		if !strings.HasPrefix(token, "#") {
			token = "#" + token
		}
		refs = append(refs, "Closes "+token)
	}
	return refs
}

// Compose renders r as a conventional commit message. Sections are separated by
// a single blank line and the result never ends with a newline.
func Compose(r Record) string {
	var b strings.Builder
	b.WriteString(r.Title())

	if r.Body != "" {
		b.WriteString("\n\n")
		b.WriteString(r.Body)
	}

	if r.BreakingChange != "" {
		b.WriteString("\n\n")
		b.WriteString(breakingChangePrefix)
		b.WriteString(r.BreakingChange)
	}

	if refs := IssueRefs(r.Issues); len(refs) > 0 {
		b.WriteString("\n\n")
		b.WriteString(strings.Join(refs, "\n"))
	}

	return b.String()
}
