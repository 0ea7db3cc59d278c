package compiler_errors_test

import (
	"strings"
	"testing"

	"github.com/bas2js/bas2js/internal/compiler_errors"
)

type stubError struct {
	message string
	line    int
}

func (e *stubError) GetMessage() string { return e.message }
func (e *stubError) GetLine() int       { return e.line }

func TestSessionCollectsErrorsInOrder(t *testing.T) {
	session := compiler_errors.NewSession()

	if session.HasErrors() {
		t.Fatal("fresh session should have no errors")
	}

	session.AddError(&stubError{message: "first", line: 3})
	session.AddError(&stubError{message: "second", line: 7})

	if !session.HasErrors() {
		t.Fatal("expected errors to be recorded")
	}

	errors := session.Errors()
	if len(errors) != 2 {
		t.Fatalf("expected 2 errors, got %d", len(errors))
	}
	if errors[0] != "line 3: first" {
		t.Errorf("unexpected first error: %q", errors[0])
	}
	if errors[1] != "line 7: second" {
		t.Errorf("unexpected second error: %q", errors[1])
	}
}

func TestSessionWarningsDoNotFailCompile(t *testing.T) {
	session := compiler_errors.NewSession()

	session.AddWarning(12, "skipped %d token(s)", 3)

	if session.HasErrors() {
		t.Error("warnings must not count as errors")
	}

	warnings := session.Warnings()
	if len(warnings) != 1 {
		t.Fatalf("expected 1 warning, got %d", len(warnings))
	}
	if !strings.Contains(warnings[0], "line 12") {
		t.Errorf("expected the warning to carry its line, got %q", warnings[0])
	}
}

func TestGenericErrorCarriesMessageAndLine(t *testing.T) {
	session := compiler_errors.NewSession()

	session.AddError(&compiler_errors.GenericError{Message: "unreadable input", Line: 1})

	if !session.HasErrors() {
		t.Fatal("expected the generic error to be recorded")
	}
	if got := session.Errors()[0]; got != "line 1: unreadable input" {
		t.Errorf("unexpected formatting: %q", got)
	}
}

func TestSessionIDsAreUnique(t *testing.T) {
	a := compiler_errors.NewSession()
	b := compiler_errors.NewSession()

	if a.ID() == "" {
		t.Fatal("expected a non-empty session id")
	}
	if a.ID() == b.ID() {
		t.Error("two sessions should not share an id")
	}
}
