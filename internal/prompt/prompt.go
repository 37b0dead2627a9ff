// Package prompt defines the interactive capability the field collector needs
// and the collector itself.
package prompt

import "errors"

// ErrCancelled is returned by a Prompter when the user aborts a prompt.
var ErrCancelled = errors.New("operation cancelled")

// Choice is a selectable option.
type Choice struct {
	Value       string
	Description string
}

// TextRequest describes a free text prompt.
type TextRequest struct {
	Title string
	Help  string
	// Default is returned when the user submits an empty answer.
	Default string
	// Validate, when set, must accept the answer before it is returned.
	// Rejections are shown to the user and the prompt stays open.
	Validate func(string) error
}

// Prompter asks the user questions. Every method returns ErrCancelled when the
// user aborts instead of answering.
type Prompter interface {
	Select(title string, choices []Choice) (string, error)
	Text(req TextRequest) (string, error)
	Confirm(title string, def bool) (bool, error)
}

// Confirm asks a yes/no question and treats cancellation as "no".
func Confirm(p Prompter, title string, def bool) (bool, error) {
	ok, err := p.Confirm(title, def)
	if errors.Is(err, ErrCancelled) {
		return false, nil
	}
	return ok, err
}
