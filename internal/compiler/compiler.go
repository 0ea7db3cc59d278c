package compiler

import (
	"time"

	"github.com/bas2js/bas2js/internal/ast"
	"github.com/bas2js/bas2js/internal/compiler_errors"
	"github.com/bas2js/bas2js/internal/emitter"
	"github.com/bas2js/bas2js/internal/lexer"
	"github.com/bas2js/bas2js/internal/parser"
)

const defaultModuleName = "Module1"

type Options struct {
	ModuleName string

	// Accepted for interface compatibility with the surrounding tooling;
	// source maps and optimization belong to collaborators, not this core.
	GenerateSourceMap bool
	Optimize          bool
}

// Metrics holds per-phase wall times, measured with the monotonic clock.
type Metrics struct {
	LexingTime  time.Duration
	ParsingTime time.Duration
	CodegenTime time.Duration
	TotalTime   time.Duration
}

type CompilationResult struct {
	Success    bool
	JavaScript string
	Errors     []string
	Warnings   []string
	AST        *ast.Module
	Metrics    Metrics
	SessionID  string
}

// Compile runs the tokenize → parse → generate pipeline over one VB6
// module. Every call gets fresh phase instances and a fresh diagnostics
// session, so concurrent compiles never share state.
func Compile(source string, opts Options) CompilationResult {
	session := compiler_errors.NewSession()

	moduleName := opts.ModuleName
	if moduleName == "" {
		moduleName = defaultModuleName
	}

	result := CompilationResult{
		SessionID: session.ID(),
	}

	start := time.Now()

	lx := lexer.NewLexer([]byte(source))
	tokens, err := lx.Tokenize()
	result.Metrics.LexingTime = time.Since(start)
	if err != nil {
		if ce, ok := err.(compiler_errors.CompilerError); ok {
			session.AddError(ce)
		} else {
			// A failed compile must always surface at least one error.
			session.AddError(&compiler_errors.GenericError{Message: err.Error(), Line: 1})
		}
		return finish(result, session, start)
	}

	sanitized := make([]lexer.Token, 0, len(tokens))
	for _, token := range tokens {
		if token.Kind == lexer.COMMENT {
			continue
		}
		sanitized = append(sanitized, token)
	}

	parseStart := time.Now()
	p := parser.NewParser(moduleName, lexer.NewTokenScanner(sanitized), session)
	module := p.Parse()
	result.Metrics.ParsingTime = time.Since(parseStart)

	if module == nil {
		return finish(result, session, start)
	}
	result.AST = module

	codegenStart := time.Now()
	result.JavaScript = emitter.NewEmitter().Emit(module)
	result.Metrics.CodegenTime = time.Since(codegenStart)

	result.Success = true
	return finish(result, session, start)
}

func finish(result CompilationResult, session *compiler_errors.Session, start time.Time) CompilationResult {
	result.Metrics.TotalTime = time.Since(start)
	result.Errors = session.Errors()
	result.Warnings = session.Warnings()

	if !result.Success {
		result.JavaScript = ""
	}

	return result
}
