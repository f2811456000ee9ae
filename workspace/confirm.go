package workspace

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
)

// Confirmer answers a yes/no question.
type Confirmer interface {
	Confirm(message string) (bool, error)
}

// SurveyConfirmer asks on the terminal. Only "y" or "Y" confirms; any other
// answer, including an empty one, declines.
type SurveyConfirmer struct {
	Default bool
	// Stdio overrides the process standard streams when set.
	Stdio *terminal.Stdio
}

func (c SurveyConfirmer) Confirm(message string) (bool, error) {
	stdio := terminal.Stdio{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}
	if c.Stdio != nil {
		stdio = *c.Stdio
	}

	hint, def := " (y/N)", ""
	if c.Default {
		hint, def = " (Y/n)", "Y"
	}

	var answer string
	if isTerminal(stdio.In.Fd()) {
		prompt := &survey.Input{Message: message + hint, Default: def}
		if err := survey.AskOne(prompt, &answer, survey.WithStdio(stdio.In, stdio.Out, stdio.Err)); err != nil {
			return false, errors.WithStack(err)
		}
	} else {
		// survey queries the cursor position over stdin, which a pipe cannot answer.
		var err error
		if answer, err = readAnswer(stdio.In, stdio.Out, message+hint); err != nil {
			return false, err
		}
		if strings.TrimSpace(answer) == "" {
			answer = def
		}
	}
	return strings.EqualFold(strings.TrimSpace(answer), "y"), nil
}

func isTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// readAnswer reads one line. End of input counts as an empty answer.
func readAnswer(in io.Reader, out io.Writer, prompt string) (string, error) {
	fmt.Fprint(out, prompt+" ")
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", errors.WithStack(err)
	}
	return line, nil
}

// Answer is a fixed reply, for non-interactive runs.
type Answer bool

func (a Answer) Confirm(string) (bool, error) {
	return bool(a), nil
}
