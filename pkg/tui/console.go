package tui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
)

// RequiredMessage is printed when a required answer is left empty.
const RequiredMessage = "This field is required."

// Console is a Prompter that runs one accessible huh field per question.
// Accessible mode is line based, so the same Console serves an interactive
// terminal and piped input.
type Console struct {
	in    *lineReader
	out   io.Writer
	tty   *os.File
	newID func() string
}

// NewConsole creates a Console. When in is an interactive terminal,
// sensitive answers are read without echo.
func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:    &lineReader{r: in},
		out:   out,
		tty:   terminalFile(in),
		newID: NewIdentifier,
	}
}

// Input implements Prompter.
func (c *Console) Input(label string, opts ...InputOption) (string, error) {
	o := newInputOptions(opts)

	var value string
	field := huh.NewInput().
		Title(title(label)).
		Value(&value).
		Validate(func(s string) error {
			if !o.accepts(normalize(s)) {
				return errors.New(RequiredMessage)
			}
			return nil
		})

	if err := c.run(field, c.in); err != nil {
		return "", err
	}
	value = normalize(value)
	if value == "" && c.in.eof {
		return "", ErrInputClosed
	}

	resolved, _ := o.resolve(value, c.newID)
	return resolved, nil
}

// Sensitive implements Prompter.
func (c *Console) Sensitive(label string) (string, error) {
	var value string
	field := huh.NewInput().
		Title(title(label)).
		Value(&value).
		Validate(func(s string) error {
			if normalize(s) == "" {
				return errors.New(RequiredMessage)
			}
			return nil
		})

	// The password prompt reads the terminal file directly. lineReader
	// never reads past a line, so nothing typed ahead is lost.
	var in io.Reader = c.in
	if c.tty != nil {
		field = field.EchoMode(huh.EchoModePassword)
		in = c.tty
	}

	if err := c.run(field, in); err != nil {
		return "", err
	}
	value = normalize(value)
	if value == "" {
		return "", ErrInputClosed
	}
	return value, nil
}

// Confirm implements Prompter. The answer is free text so that only an
// explicit "yes" turns a feature on.
func (c *Console) Confirm(question string) (bool, error) {
	var answer string
	field := huh.NewInput().
		Title(question + " (yes/no):").
		Value(&answer)

	if err := c.run(field, c.in); err != nil {
		return false, err
	}
	if normalize(answer) == "" && c.in.eof {
		return false, ErrInputClosed
	}
	return IsYes(answer), nil
}

func (c *Console) run(field huh.Field, in io.Reader) error {
	form := huh.NewForm(huh.NewGroup(field)).
		WithTheme(Theme()).
		WithAccessible(true).
		WithInput(in).
		WithOutput(c.out)

	if err := form.Run(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	return nil
}

// title drops the trailing space of a prompt label; huh pads the title.
func title(label string) string {
	return strings.TrimRight(label, " ")
}

// normalize treats a whitespace-only answer as empty.
func normalize(s string) string {
	if strings.TrimSpace(s) == "" {
		return ""
	}
	return s
}

// lineReader hands out one byte per Read and remembers when the underlying
// reader ran dry. Each huh field scans its own lines, so a larger read
// would swallow the answers meant for the next question.
type lineReader struct {
	r   io.Reader
	eof bool
}

func (l *lineReader) Read(p []byte) (int, error) {
	if len(p) > 1 {
		p = p[:1]
	}
	n, err := l.r.Read(p)
	if errors.Is(err, io.EOF) {
		l.eof = true
	}
	return n, err
}
