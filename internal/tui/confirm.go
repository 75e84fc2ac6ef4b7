package tui

import (
	"errors"

	"github.com/charmbracelet/huh"
)

// Confirmer asks a yes/no question.
type Confirmer interface {
	Confirm(title, description string) (bool, error)
}

// Prompter implements Confirmer with a huh form.
type Prompter struct{}

// NewPrompter returns a Prompter.
func NewPrompter() *Prompter {
	return &Prompter{}
}

// Confirm shows a yes/no prompt defaulting to yes. Aborting the prompt
// (Ctrl+C) counts as "no".
func (p *Prompter) Confirm(title, description string) (bool, error) {
	confirmed := true
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Description(description).
				Affirmative("Write").
				Negative("Cancel").
				Value(&confirmed),
		),
	).WithTheme(huh.ThemeBase16())

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, nil
		}
		return false, err
	}
	return confirmed, nil
}

// AutoConfirm answers every question with a fixed value.
type AutoConfirm bool

// Confirm implements Confirmer.
func (a AutoConfirm) Confirm(string, string) (bool, error) {
	return bool(a), nil
}
