// Package session runs one interactive commit message session from the first
// question to the optional commit.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"commitfmt/internal/commit"
	"commitfmt/internal/debug"
	"commitfmt/internal/git"
	"commitfmt/internal/prompt"
	"commitfmt/internal/tui"
)

type Session struct {
	Prompter  prompt.Prompter
	Executor  git.Executor
	Styles    *tui.Styles
	Out       io.Writer
	GitBinary string
	// RepoDir is checked for a git repository before offering to commit.
	RepoDir string
}

// Run collects the fields, prints the message and the equivalent command, and
// commits if the user asks to. prompt.ErrCancelled is returned after the
// cancellation notice has been printed.
func (s *Session) Run(ctx context.Context) error {
	s.banner()

	record, err := prompt.Collect(s.Prompter)
	if err != nil {
		if errors.Is(err, prompt.ErrCancelled) {
			fmt.Fprintln(s.Out, s.Styles.Failure.Render("Operation cancelled"))
		}
		return err
	}

	message := commit.Compose(record)
	inv := commit.Serialize(s.GitBinary, message)
	debug.Printf("invocation: %q\n", inv.Args)

	s.showMessage(message)
	s.showCommand(inv)
	s.preflight(ctx)

	run, err := prompt.Confirm(s.Prompter, fmt.Sprintf("Run %s commit now?", s.GitBinary), false)
	if err != nil {
		return err
	}
	if !run {
		return nil
	}

	s.report(git.Commit(ctx, s.Executor, s.GitBinary, message))
	return nil
}

func (s *Session) banner() {
	fmt.Fprintln(s.Out, s.Styles.Title.Render("Commit message builder"))
	fmt.Fprintln(s.Out, s.Styles.Subtitle.Render("Build an Angular style commit message step by step"))
	fmt.Fprintln(s.Out)
}

func (s *Session) showMessage(message string) {
	fmt.Fprintln(s.Out)
	fmt.Fprintln(s.Out, s.Styles.Header.Render("=== Commit message ==="))
	// One line at a time so the renderer never pads lines to a common width.
	for _, line := range strings.Split(message, "\n") {
		fmt.Fprintln(s.Out, s.Styles.Message.Render(line))
	}
}

func (s *Session) showCommand(inv commit.Invocation) {
	fmt.Fprintln(s.Out)
	fmt.Fprintln(s.Out, s.Styles.Header.Render("=== Git command ==="))
	fmt.Fprintln(s.Out, s.Styles.Command.Render(inv.String()))
	fmt.Fprintln(s.Out)
	fmt.Fprintln(s.Out, s.Styles.Hint.Render("Copy the command above and run it in your terminal to commit."))
}

// preflight warns about conditions that would make the commit fail. It never
// blocks the commit offer.
func (s *Session) preflight(ctx context.Context) {
	if !git.IsGitRepo(s.RepoDir) {
		fmt.Fprintln(s.Out, s.Styles.Warning.Render("Note: the current directory is not inside a git repository."))
		return
	}

	staged, err := git.HasStagedChanges(ctx, s.Executor, s.GitBinary)
	if err != nil {
		debug.Printf("staged check failed: %v\n", err)
		return
	}
	if !staged {
		fmt.Fprintln(s.Out, s.Styles.Warning.Render("Note: nothing is staged yet; run git add before committing."))
	}
}

func (s *Session) report(out git.Outcome) {
	switch out.Status {
	case git.Committed:
		fmt.Fprintln(s.Out, s.Styles.Success.Render("Commit succeeded!"))
		if out.Stdout != "" {
			fmt.Fprintln(s.Out, out.Stdout)
		}
	case git.Rejected:
		fmt.Fprintln(s.Out, s.Styles.Failure.Render("Commit failed!"))
		switch {
		case out.Stderr != "":
			fmt.Fprintln(s.Out, s.Styles.Warning.Render(out.Stderr))
		case out.Stdout != "":
			// git reports "nothing to commit" on stdout.
			fmt.Fprintln(s.Out, out.Stdout)
		}
	case git.LaunchFailed:
		fmt.Fprintln(s.Out, s.Styles.Failure.Render(fmt.Sprintf("Error running %s: %v", s.GitBinary, out.Err)))
	}
}
