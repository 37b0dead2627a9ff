package commit

import (
	"regexp"
	"strings"
)

var ansiPattern = regexp.MustCompile("\x1b\\[[0-9;]*m")

// StripANSI removes SGR colour sequences from s.
func StripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

// Invocation is a program plus its ordered arguments.
type Invocation struct {
	Program string
	Args    []string
}

// Serialize builds the "git commit" invocation a user can paste to reproduce
// message. Every logical line becomes its own -m argument; blank separator
// lines become -m "" except at the very start.
func Serialize(program, message string) Invocation {
	message = StripANSI(message)
	lines := splitLines(message)

	inv := Invocation{Program: program, Args: []string{"commit"}}
	if len(lines) <= 1 {
		inv.Args = append(inv.Args, "-m", message)
		return inv
	}

	for i, line := range lines {
		if strings.TrimSpace(line) != "" {
			inv.Args = append(inv.Args, "-m", line)
		} else if i > 0 {
			inv.Args = append(inv.Args, "-m", "")
		}
	}
	return inv
}

// String renders the invocation as a shell command line. Args after the
// subcommand come in flag/value pairs and every value is double quoted.
func (inv Invocation) String() string {
	var b strings.Builder
	b.WriteString(inv.Program)
	for i, arg := range inv.Args {
		b.WriteByte(' ')
		if i > 0 && i%2 == 0 {
			b.WriteString(`"` + strings.ReplaceAll(arg, `"`, `\"`) + `"`)
			continue
		}
		b.WriteString(arg)
	}
	return b.String()
}

// splitLines splits on '\n', dropping a trailing '\r' from each line and the
// empty element after a final newline.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.Split(strings.TrimSuffix(s, "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
