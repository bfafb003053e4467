// Package prompt asks the user for credentials and confirmations on the terminal
package prompt

import (
	"errors"
	"os"
	"strings"

	"charm.land/huh/v2"
	"github.com/mattn/go-isatty"
	"github.com/thenoetrevino/todolink/internal/services/tasklist"
)

// ErrNotInteractive is returned when input is needed but stdin is not a terminal
var ErrNotInteractive = errors.New("input required but stdin is not a terminal")

// Prompter collects input the CLI cannot get from flags or the environment
type Prompter interface {
	Username(suggested string) (string, error)
	Password(username string) (string, error)
	Confirm(title string) (bool, error)
}

// New returns a huh-backed prompter when stdin is a terminal, otherwise one that always fails
func New() Prompter {
	fd := os.Stdin.Fd()
	if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
		return &huhPrompter{}
	}
	return NonInteractive{}
}

type huhPrompter struct{}

func (p *huhPrompter) Username(suggested string) (string, error) {
	username := suggested
	err := huh.NewInput().
		Title("Username").
		Value(&username).
		Validate(required("username")).
		Run()
	return strings.TrimSpace(username), err
}

func (p *huhPrompter) Password(username string) (string, error) {
	var password string
	err := huh.NewInput().
		Title("Password for " + username).
		EchoMode(huh.EchoModePassword).
		Value(&password).
		Validate(required("password")).
		Run()
	return password, err
}

func (p *huhPrompter) Confirm(title string) (bool, error) {
	var ok bool
	err := huh.NewConfirm().
		Title(title).
		Affirmative("Delete").
		Negative("Cancel").
		Value(&ok).
		Run()
	return ok, err
}

func required(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return errors.New(field + " cannot be empty")
		}
		return nil
	}
}

// NonInteractive fails every prompt with ErrNotInteractive
type NonInteractive struct{}

func (NonInteractive) Username(string) (string, error) { return "", ErrNotInteractive }
func (NonInteractive) Password(string) (string, error) { return "", ErrNotInteractive }
func (NonInteractive) Confirm(string) (bool, error)    { return false, ErrNotInteractive }

// Scripted answers prompts with fixed values, for tests and scripted runs
type Scripted struct {
	User    string
	Pass    string
	Approve bool
	Asked   []string
}

func (s *Scripted) Username(suggested string) (string, error) {
	s.Asked = append(s.Asked, "username")
	if s.User == "" {
		return suggested, nil
	}
	return s.User, nil
}

func (s *Scripted) Password(string) (string, error) {
	s.Asked = append(s.Asked, "password")
	return s.Pass, nil
}

func (s *Scripted) Confirm(title string) (bool, error) {
	s.Asked = append(s.Asked, "confirm: "+title)
	return s.Approve, nil
}

// Confirmer adapts p to the task list's delete confirmation.
// A prompt that fails counts as declining.
func Confirmer(p Prompter) tasklist.Confirmer {
	return tasklist.ConfirmFunc(func(title string) bool {
		ok, err := p.Confirm(title)
		return err == nil && ok
	})
}
