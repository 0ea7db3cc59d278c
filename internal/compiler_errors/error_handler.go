package compiler_errors

import (
	"fmt"

	"github.com/google/uuid"
)

type CompilerError interface {
	GetMessage() string
	GetLine() int
}

// GenericError adapts a plain error message to the CompilerError interface
// for failures that carry no source position of their own.
type GenericError struct {
	Message string
	Line    int
}

func (e *GenericError) GetMessage() string { return e.Message }
func (e *GenericError) GetLine() int       { return e.Line }

func (e *GenericError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Message)
}

// Session is the diagnostics sink for one compile. Each compile creates its
// own session and threads it through the phases explicitly, so concurrent
// compiles never share state. The ID lets surrounding tooling correlate
// diagnostics from the same run.
type Session struct {
	id       uuid.UUID
	errors   []CompilerError
	warnings []warning
}

type warning struct {
	message string
	line    int
}

func NewSession() *Session {
	return &Session{
		id:       uuid.New(),
		errors:   make([]CompilerError, 0),
		warnings: make([]warning, 0),
	}
}

func (s *Session) ID() string {
	return s.id.String()
}

func (s *Session) AddError(err CompilerError) {
	s.errors = append(s.errors, err)
}

func (s *Session) AddWarning(line int, format string, args ...any) {
	s.warnings = append(s.warnings, warning{
		message: fmt.Sprintf(format, args...),
		line:    line,
	})
}

func (s *Session) HasErrors() bool {
	return len(s.errors) > 0
}

// Errors returns the recorded errors as user-facing strings, each prefixed
// with its source line.
func (s *Session) Errors() []string {
	messages := make([]string, len(s.errors))
	for i, err := range s.errors {
		messages[i] = fmt.Sprintf("line %d: %s", err.GetLine(), err.GetMessage())
	}

	return messages
}

func (s *Session) Warnings() []string {
	messages := make([]string, len(s.warnings))
	for i, w := range s.warnings {
		messages[i] = fmt.Sprintf("line %d: %s", w.line, w.message)
	}

	return messages
}
