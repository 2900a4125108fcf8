package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dmitrijs2005/pocketbank/internal/client/validation"
	"github.com/dmitrijs2005/pocketbank/internal/common"
	"golang.org/x/term"
)

// readPassword and isTerminal are test seams for golang.org/x/term.
var (
	readPassword = term.ReadPassword
	isTerminal   = term.IsTerminal
)

// GetSimpleText prints a prompt to w and reads a single line of input from reader.
// The trailing newline is trimmed. If EOF occurs after some input was read,
// the partial line is returned.
//
// Example prompt format:
//
//	Prompt text
//	> _
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// GetPassword prints prompt to w and reads a password. On a terminal the
// input is not echoed; otherwise a plain line is read from reader.
//
// The returned byte slice should be wiped by the caller when no longer needed.
func GetPassword(reader *bufio.Reader, prompt string, w io.Writer) ([]byte, error) {
	fd := int(os.Stdin.Fd())
	if !isTerminal(fd) {
		return readRawLine(reader, prompt, w)
	}

	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
		return nil, err
	}
	pw, err := readPassword(fd)
	fmt.Fprintln(w)
	if err != nil {
		return nil, err
	}
	return pw, nil
}

// readRawLine is GetSimpleText without trimming: only the line terminator
// is dropped, so a piped password keeps its surrounding spaces.
func readRawLine(reader *bufio.Reader, prompt string, w io.Writer) ([]byte, error) {
	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
		return nil, err
	}
	line, err := reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && len(line) > 0) {
		return nil, err
	}
	return []byte(strings.TrimRight(line, "\r\n")), nil
}

// getSimpleText and getPassword are indirections used to facilitate testing.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
)

// promptField asks for field until the value validates, printing the
// verdict after every attempt.
func (a *App) promptField(field validation.Field, prompt string) (string, error) {
	for {
		raw, err := getSimpleText(a.reader, prompt, a.out)
		if err != nil {
			return "", err
		}
		r := validation.Validate(field, raw)
		a.printResult(r)
		if r.OK() {
			return raw, nil
		}
	}
}

// promptSecret is promptField for passwords.
func (a *App) promptSecret(field validation.Field, prompt string) (string, error) {
	for {
		pw, err := getPassword(a.reader, prompt, a.out)
		if err != nil {
			return "", err
		}
		raw := string(pw)
		common.WipeByteArray(pw)

		r := validation.Validate(field, raw)
		a.printResult(r)
		if r.OK() {
			return raw, nil
		}
	}
}

func (a *App) printResult(r validation.Result) {
	mark := "x"
	switch r.Verdict {
	case validation.Valid:
		mark = "ok"
	case validation.Incomplete:
		mark = ".."
	}
	a.printf("  [%s] %s\n", mark, r.Message)
}
