package git

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"

	gogit "github.com/go-git/go-git/v5"

	"commitfmt/internal/debug"
)

// Result is what a finished child process left behind.
type Result struct {
	ExitCode int
	Stdout   []byte
	Stderr   []byte
}

// Executor runs an external program to completion.
// A non-zero exit is reported through Result, not as an error; the error is
// reserved for processes that could not be started at all.
type Executor interface {
	Run(ctx context.Context, name string, args ...string) (Result, error)
}

// ExecExecutor runs programs with os/exec.
type ExecExecutor struct {
	Dir string
}

func (e ExecExecutor) Run(ctx context.Context, name string, args ...string) (Result, error) {
	debug.Printf("exec: %s %q\n", name, args)

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = e.Dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	res := Result{Stdout: stdout.Bytes(), Stderr: stderr.Bytes()}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		res.ExitCode = exitErr.ExitCode()
		return res, nil
	}
	if err != nil {
		return Result{}, fmt.Errorf("failed to run %s: %w", name, err)
	}
	return res, nil
}

// IsGitRepo reports whether path is inside a git work tree.
func IsGitRepo(path string) bool {
	_, err := gogit.PlainOpenWithOptions(path, &gogit.PlainOpenOptions{DetectDotGit: true})
	return err == nil
}

// HasStagedChanges asks git whether the index differs from HEAD.
func HasStagedChanges(ctx context.Context, ex Executor, binary string) (bool, error) {
	res, err := ex.Run(ctx, binary, "diff", "--cached", "--quiet")
	if err != nil {
		return false, err
	}
	switch res.ExitCode {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, fmt.Errorf("failed to inspect staged changes: %s", bytes.TrimSpace(res.Stderr))
	}
}
