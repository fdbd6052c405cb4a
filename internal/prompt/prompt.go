// Package prompt collects the init-time choices from the user.
package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"

	"dora-styles/internal/config"
)

// maxAttempts bounds how often an invalid answer is asked again.
const maxAttempts = 3

// Choices is everything init asks the user.
type Choices struct {
	UseAliases      bool
	StyleLanguage   config.StyleLanguage
	GlobalStylePath string
}

// Prompter returns the user's choices.
type Prompter interface {
	Collect(ctx context.Context) (Choices, error)
}

// DefaultGlobalStylePath is offered as the global stylesheet location for lang.
func DefaultGlobalStylePath(lang config.StyleLanguage) string {
	return "src/styles/global." + lang.Ext()
}

// Defaults answers every question with its default, without any I/O.
type Defaults struct{}

func (Defaults) Collect(context.Context) (Choices, error) {
	return Choices{
		UseAliases:      true,
		StyleLanguage:   config.SCSS,
		GlobalStylePath: DefaultGlobalStylePath(config.SCSS),
	}, nil
}

// IsInteractive reports whether f is attached to a terminal.
func IsInteractive(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Terminal asks the questions line by line on In/Out.
// An empty answer takes the default shown in brackets.
type Terminal struct {
	in  *bufio.Reader
	out io.Writer
}

// NewTerminal returns a Terminal prompter reading answers from in.
func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{in: bufio.NewReader(in), out: out}
}

var question = color.New(color.FgCyan, color.Bold).SprintFunc()

func (t *Terminal) Collect(ctx context.Context) (Choices, error) {
	var c Choices
	var err error

	if c.UseAliases, err = t.askBool(ctx, "Would you like to use path aliases (@/styles)?", true); err != nil {
		return c, err
	}
	if c.StyleLanguage, err = t.askLanguage(ctx); err != nil {
		return c, err
	}

	def := DefaultGlobalStylePath(c.StyleLanguage)
	msg := fmt.Sprintf("Enter the path for your global.%s file (relative to root)", c.StyleLanguage)
	if c.GlobalStylePath, err = t.ask(ctx, msg, def); err != nil {
		return c, err
	}
	return c, nil
}

func (t *Terminal) askBool(ctx context.Context, msg string, def bool) (bool, error) {
	hint := "y/N"
	if def {
		hint = "Y/n"
	}
	for i := 0; i < maxAttempts; i++ {
		answer, err := t.ask(ctx, fmt.Sprintf("%s (%s)", msg, hint), "")
		if err != nil {
			return false, err
		}
		switch strings.ToLower(answer) {
		case "":
			return def, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		fmt.Fprintln(t.out, "Please answer y or n.")
	}
	return false, errors.New("no valid answer for path aliases")
}

func (t *Terminal) askLanguage(ctx context.Context) (config.StyleLanguage, error) {
	names := make([]string, len(config.Languages))
	for i, l := range config.Languages {
		names[i] = string(l)
	}
	msg := fmt.Sprintf("Which styling language do you prefer? (%s)", strings.Join(names, "/"))

	for i := 0; i < maxAttempts; i++ {
		answer, err := t.ask(ctx, msg, string(config.Languages[0]))
		if err != nil {
			return "", err
		}
		lang, err := config.ParseStyleLanguage(answer)
		if err == nil {
			return lang, nil
		}
		fmt.Fprintln(t.out, err)
	}
	return "", errors.New("no valid style language chosen")
}

// ask prints msg and returns the trimmed answer, or def when the answer is empty.
// End of input is treated as an empty answer.
func (t *Terminal) ask(ctx context.Context, msg, def string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if def != "" {
		fmt.Fprintf(t.out, "%s %s [%s]: ", question("?"), msg, def)
	} else {
		fmt.Fprintf(t.out, "%s %s: ", question("?"), msg)
	}

	line, err := t.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read answer: %w", err)
	}
	if errors.Is(err, io.EOF) {
		fmt.Fprintln(t.out)
	}
	answer := strings.TrimSpace(line)
	if answer == "" {
		return def, nil
	}
	return answer, nil
}
