package interpreter

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// IO is the machine's connection to the outside world. Reads block until a
// line is available; ok is false when the input is absent or malformed.
type IO interface {
	ReadNumber() (n int64, ok bool)
	ReadChar() (r rune, ok bool)
	WriteNumber(n int64) error
	WriteChar(r rune) error
}

// Console is a line based IO: every read consumes one input line and every
// write emits one output line.
type Console struct {
	in  *bufio.Reader
	out io.Writer

	// Prompt, when set, receives a prompt before every read.
	Prompt io.Writer
}

// NewConsole reads lines from r and writes lines to w.
func NewConsole(r io.Reader, w io.Writer) *Console {
	return &Console{in: bufio.NewReader(r), out: w}
}

func (c *Console) readLine(prompt string) (string, bool) {
	if c.Prompt != nil {
		fmt.Fprint(c.Prompt, prompt)
	}
	line, err := c.in.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", false
	}
	return strings.TrimRight(line, "\r\n"), true
}

func (c *Console) ReadNumber() (int64, bool) {
	line, ok := c.readLine("Reading number: ")
	if !ok {
		return 0, false
	}
	n, err := strconv.ParseInt(strings.TrimSpace(line), 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// ReadChar accepts a line holding exactly one character after NFC
// normalisation, so a letter followed by a combining mark counts as one.
func (c *Console) ReadChar() (rune, bool) {
	line, ok := c.readLine("Reading character: ")
	if !ok {
		return 0, false
	}
	line = norm.NFC.String(line)
	if utf8.RuneCountInString(line) != 1 {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(line)
	if r == utf8.RuneError {
		return 0, false
	}
	return r, true
}

func (c *Console) WriteNumber(n int64) error {
	_, err := fmt.Fprintln(c.out, n)
	return err
}

func (c *Console) WriteChar(r rune) error {
	_, err := fmt.Fprintln(c.out, string(r))
	return err
}
