package prompt

import (
	"fmt"
	"strings"

	"commitfmt/internal/commit"
	"commitfmt/internal/debug"
)

// Collect asks for every commit field in order and returns the finished record.
// The first error, including ErrCancelled, ends collection; no partial record
// is ever returned.
func Collect(p Prompter) (commit.Record, error) {
	var r commit.Record
	var err error

	if r.Type, err = selectType(p); err != nil {
		return commit.Record{}, err
	}
	if r.Scope, err = inputScope(p); err != nil {
		return commit.Record{}, err
	}
	if r.Description, err = inputDescription(p); err != nil {
		return commit.Record{}, err
	}
	if r.Body, err = inputBody(p); err != nil {
		return commit.Record{}, err
	}
	if r.BreakingChange, err = inputBreakingChange(p); err != nil {
		return commit.Record{}, err
	}
	if r.Issues, err = inputIssues(p); err != nil {
		return commit.Record{}, err
	}

	debug.Printf("collected record: %+v\n", r)
	return r, nil
}

func selectType(p Prompter) (string, error) {
	choices := make([]Choice, 0, len(commit.Types))
	for _, t := range commit.Types {
		choices = append(choices, Choice{Value: t.Tag, Description: t.Description})
	}
	return p.Select("Select the type of change:", choices)
}

func inputScope(p Prompter) (string, error) {
	scope, err := p.Text(TextRequest{
		Title: "Scope (optional, e.g. auth, ui, api):",
		Help:  "The module or component affected by this change",
	})
	if err != nil {
		return "", err
	}
	return commit.Optional(scope), nil
}

func inputDescription(p Prompter) (string, error) {
	description, err := p.Text(TextRequest{
		Title:    "Short description (required):",
		Help:     fmt.Sprintf("Imperative, present tense, at most %d characters", commit.MaxDescriptionLength),
		Validate: commit.ValidateDescription,
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(description), nil
}

// inputBody reads body lines until the first blank one.
func inputBody(p Prompter) (string, error) {
	add, err := Confirm(p, "Add a longer description?", false)
	if err != nil || !add {
		return "", err
	}

	var lines []string
	for {
		req := TextRequest{Title: fmt.Sprintf("Line %d:", len(lines)+1)}
		if len(lines) == 0 {
			req.Help = "Explain the motivation and approach; submit an empty line to finish"
		}
		line, err := p.Text(req)
		if err != nil {
			return "", err
		}
		if strings.TrimSpace(line) == "" {
			break
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n"), nil
}

func inputBreakingChange(p Prompter) (string, error) {
	breaking, err := Confirm(p, "Does this change break compatibility?", false)
	if err != nil || !breaking {
		return "", err
	}

	text, err := p.Text(TextRequest{
		Title: "Describe the breaking change:",
		Help:  "What is incompatible and how to migrate",
	})
	if err != nil {
		return "", err
	}
	return commit.Optional(text), nil
}

func inputIssues(p Prompter) (string, error) {
	link, err := Confirm(p, "Does this change close any issues?", false)
	if err != nil || !link {
		return "", err
	}

	issues, err := p.Text(TextRequest{
		Title: "Issue numbers (e.g. #123, 456):",
		Help:  "Separate multiple issues with commas",
	})
	if err != nil {
		return "", err
	}
	return commit.Optional(issues), nil
}
