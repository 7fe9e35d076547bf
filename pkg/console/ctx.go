package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrInvalidInput is returned by the typed prompts when a line cannot be parsed.
var ErrInvalidInput = errors.New("invalid input")

// Ctx carries the input and output of one console session and the action
// currently being dispatched.
type Ctx struct {
	in     *bufio.Scanner
	out    io.Writer
	action string
}

// NewCtx creates a session reading lines from in and writing to out.
func NewCtx(in io.Reader, out io.Writer) *Ctx {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 4096), 1<<20)
	return &Ctx{in: scanner, out: out}
}

// Action returns the title of the menu entry being run.
func (c *Ctx) Action() string {
	return c.action
}

func (c *Ctx) Writer() io.Writer {
	return c.out
}

func (c *Ctx) Printf(format string, args ...interface{}) {
	fmt.Fprintf(c.out, format, args...)
}

func (c *Ctx) Println(args ...interface{}) {
	fmt.Fprintln(c.out, args...)
}

// Prompt prints label and returns the next input line, trimmed. It returns
// io.EOF once the input is exhausted.
func (c *Ctx) Prompt(label string) (string, error) {
	fmt.Fprint(c.out, label)
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(c.in.Text()), nil
}

// PromptDefault is Prompt with a fallback for an empty line.
func (c *Ctx) PromptDefault(label, fallback string) (string, error) {
	s, err := c.Prompt(label)
	if err != nil {
		return "", err
	}
	if s == "" {
		return fallback, nil
	}
	return s, nil
}

func (c *Ctx) PromptInt(label string) (int, error) {
	s, err := c.Prompt(label)
	if err != nil {
		return 0, err
	}
	return ParseInt(s)
}

func (c *Ctx) PromptFloat(label string) (float64, error) {
	s, err := c.Prompt(label)
	if err != nil {
		return 0, err
	}
	return ParseFloat(s)
}

// Confirm asks a yes/no question; anything but y or yes is a no.
func (c *Ctx) Confirm(label string) (bool, error) {
	s, err := c.Prompt(label + " (y/N): ")
	if err != nil {
		return false, err
	}
	switch strings.ToLower(s) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// Choose lists options numbered from 1 and returns the zero-based index
// picked.
func (c *Ctx) Choose(label string, options []string) (int, error) {
	for i, opt := range options {
		c.Printf("  %d. %s\n", i+1, opt)
	}
	n, err := c.PromptInt(label)
	if err != nil {
		return 0, err
	}
	if n < 1 || n > len(options) {
		return 0, fmt.Errorf("%w: choose a number between 1 and %d", ErrInvalidInput, len(options))
	}
	return n - 1, nil
}

func ParseInt(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a whole number", ErrInvalidInput, s)
	}
	return n, nil
}

func ParseFloat(s string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidInput, s)
	}
	return f, nil
}
