package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"piet/internal/interpreter"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // program trapped or ran to the steps limit
	ExitFailure      = 1 // runtime failure such as division by zero
	ExitCommandError = 2 // bad flags, unreadable image or configuration
)

// ValidReports lists the accepted --report values. The empty string
// disables the report.
var ValidReports = []string{"", "text", "json", "yaml"}

// ExitError is an error carrying the process exit code.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitFailure if the error is not an ExitError.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// Report is the final state of a run.
type Report struct {
	Steps    int                    `json:"steps" yaml:"steps"`
	Reason   interpreter.StopReason `json:"reason" yaml:"reason"`
	Position [2]int                 `json:"position" yaml:"position,flow"`
	DP       string                 `json:"dp" yaml:"dp"`
	CC       string                 `json:"cc" yaml:"cc"`
	Stack    []int64                `json:"stack" yaml:"stack,flow"`
}

// NewReport captures the state of s after a run.
func NewReport(s *interpreter.Session, res interpreter.Result) Report {
	pos, p := s.Position(), s.Pointer()
	return Report{
		Steps:    res.Steps,
		Reason:   res.Reason,
		Position: [2]int{pos.X, pos.Y},
		DP:       p.DP.String(),
		CC:       p.CC.String(),
		Stack:    s.Stack(),
	}
}

// WriteReport writes r to w in the given format.
func WriteReport(w io.Writer, format string, r Report) error {
	switch format {
	case "":
		return nil
	case "text":
		_, err := fmt.Fprintf(w, "steps: %d\nreason: %s\nposition: (%d,%d)\ndp: %s\ncc: %s\nstack: %v\n",
			r.Steps, r.Reason, r.Position[0], r.Position[1], r.DP, r.CC, r.Stack)
		return err
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("invalid report format %q: must be one of %v", format, ValidReports[1:])
}
