package cli

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rdr(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

func stubTerminal(t *testing.T, terminal bool, pw []byte, err error) {
	t.Helper()
	origTerm, origRead := isTerminal, readPassword
	isTerminal = func(int) bool { return terminal }
	readPassword = func(int) ([]byte, error) { return pw, err }
	t.Cleanup(func() {
		isTerminal = origTerm
		readPassword = origRead
	})
}

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("  hello world \n"), "Name?", &out)
	require.NoError(t, err)
	assert.Equal(t, "hello world", got)
	assert.Equal(t, "Name?\n> ", out.String())
}

func TestGetSimpleTextEOF(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("lastline"), "Name?", &out)
	require.NoError(t, err)
	assert.Equal(t, "lastline", got)

	_, err = GetSimpleText(rdr(""), "Name?", &out)
	require.Error(t, err)
}

func TestGetPassword_Terminal(t *testing.T) {
	stubTerminal(t, true, []byte("s3cret!"), nil)

	var out bytes.Buffer
	pw, err := GetPassword(rdr("ignored\n"), "Password", &out)
	require.NoError(t, err)
	assert.Equal(t, []byte("s3cret!"), pw)
}

func TestGetPassword_TerminalError(t *testing.T) {
	stubTerminal(t, true, nil, errors.New("boom"))

	var out bytes.Buffer
	_, err := GetPassword(rdr(""), "Password", &out)
	require.Error(t, err)
}

func TestGetPassword_NotTerminalReadsLine(t *testing.T) {
	stubTerminal(t, false, nil, errors.New("must not be called"))

	var out bytes.Buffer
	pw, err := GetPassword(rdr("piped pw\n"), "Password", &out)
	require.NoError(t, err)
	assert.Equal(t, []byte("piped pw"), pw)
}

func TestGetPassword_NotTerminalKeepsSpaces(t *testing.T) {
	stubTerminal(t, false, nil, nil)

	var out bytes.Buffer
	pw, err := GetPassword(rdr("  pass word \r\n"), "Password", &out)
	require.NoError(t, err)
	assert.Equal(t, []byte("  pass word "), pw)

	pw, err = GetPassword(rdr(" tail"), "Password", &out)
	require.NoError(t, err)
	assert.Equal(t, []byte(" tail"), pw, "partial last line at EOF")

	_, err = GetPassword(rdr(""), "Password", &out)
	require.Error(t, err)
}

func TestPromptField_RepromptsUntilValid(t *testing.T) {
	var out bytes.Buffer
	a := &App{reader: rdr("98765\n98765abc10\n9876543210\n"), out: &out}

	got, err := a.promptField("phone", "Phone")
	require.NoError(t, err)
	assert.Equal(t, "9876543210", got)
	assert.Contains(t, out.String(), "[..] 5 digits remaining")
	assert.Contains(t, out.String(), "[x] Only numbers allowed")
	assert.Contains(t, out.String(), "[ok] Valid phone number")
}

func TestPromptField_EOF(t *testing.T) {
	var out bytes.Buffer
	a := &App{reader: rdr(""), out: &out}

	_, err := a.promptField("name", "Name")
	require.Error(t, err)
}
