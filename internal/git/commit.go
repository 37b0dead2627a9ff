package git

import (
	"context"
	"strings"

	"commitfmt/internal/debug"
)

// Status classifies how a commit attempt ended.
type Status int

const (
	Committed Status = iota
	Rejected
	LaunchFailed
)

// Outcome describes a commit attempt. None of its states is an error of the
// calling program; they are reported to the user and execution carries on.
type Outcome struct {
	Status Status
	Stdout string
	Stderr string
	Err    error
}

// Commit runs "<binary> commit -m <message>" with the whole message as one
// value and lets git split the paragraphs itself.
//
// This intentionally differs from commit.Serialize, which shows the user one
// -m per line for copy and paste. Both forms produce the same commit.
func Commit(ctx context.Context, ex Executor, binary, message string) Outcome {
	debug.Printf("running %s commit with a %d byte message\n", binary, len(message))

	res, err := ex.Run(ctx, binary, "commit", "-m", message)
	if err != nil {
		return Outcome{Status: LaunchFailed, Err: err}
	}

	debug.Printf("%s commit exited with status %d\n", binary, res.ExitCode)

	out := Outcome{
		Stdout: strings.TrimRight(string(res.Stdout), "\n"),
		Stderr: strings.TrimRight(string(res.Stderr), "\n"),
	}
	if res.ExitCode != 0 {
		out.Status = Rejected
		return out
	}
	out.Status = Committed
	return out
}
