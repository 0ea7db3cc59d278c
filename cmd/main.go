package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"github.com/sanity-io/litter"

	"github.com/bas2js/bas2js/internal/compiler"
	l "github.com/bas2js/bas2js/internal/lexer"
)

const (
	colorRed    = "\x1b[31m"
	colorYellow = "\x1b[33m"
	colorReset  = "\x1b[0m"
)

func main() {
	dumpAST := flag.Bool("dump-ast", false, "print the parsed module tree and exit")
	dumpTokens := flag.Bool("dump-tokens", false, "print the token stream and exit")
	showMetrics := flag.Bool("metrics", false, "print per-phase timings to stderr")
	moduleName := flag.String("module", "", "override the generated module name")
	output := flag.String("o", "", "write generated JavaScript to a file instead of stdout")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: bas2js [flags] <file.bas>")
		os.Exit(2)
	}

	fileName := flag.Arg(0)
	fileData, err := os.ReadFile(fileName)
	if err != nil {
		fmt.Fprintln(os.Stderr, errors.Wrap(err, "reading source"))
		os.Exit(1)
	}

	if *dumpTokens {
		tokens, err := l.NewLexer(fileData).Tokenize()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		for _, token := range tokens {
			fmt.Println(token.String())
		}
		return
	}

	result := compiler.Compile(string(fileData), compiler.Options{
		ModuleName: *moduleName,
	})

	colorize := isatty.IsTerminal(os.Stderr.Fd())
	for _, warning := range result.Warnings {
		printDiagnostic("warning", warning, colorYellow, colorize)
	}
	for _, compileError := range result.Errors {
		printDiagnostic("error", compileError, colorRed, colorize)
	}

	if *showMetrics {
		fmt.Fprintf(os.Stderr, "compiled %s of source (%s lines)\n",
			humanize.Bytes(uint64(len(fileData))),
			humanize.Comma(countLines(fileData)))
		fmt.Fprintf(os.Stderr, "lexing:  %v\n", result.Metrics.LexingTime)
		fmt.Fprintf(os.Stderr, "parsing: %v\n", result.Metrics.ParsingTime)
		fmt.Fprintf(os.Stderr, "codegen: %v\n", result.Metrics.CodegenTime)
		fmt.Fprintf(os.Stderr, "total:   %v\n", result.Metrics.TotalTime)
	}

	if !result.Success {
		os.Exit(1)
	}

	if *dumpAST {
		litter.Dump(result.AST)
		return
	}

	if *output != "" {
		if err := os.WriteFile(*output, []byte(result.JavaScript), 0o644); err != nil {
			fmt.Fprintln(os.Stderr, errors.Wrap(err, "writing output"))
			os.Exit(1)
		}
		return
	}

	fmt.Print(result.JavaScript)
}

func printDiagnostic(severity, message, color string, colorize bool) {
	if colorize {
		fmt.Fprintf(os.Stderr, "%s%s:%s %s\n", color, severity, colorReset, message)
		return
	}

	fmt.Fprintf(os.Stderr, "%s: %s\n", severity, message)
}

func countLines(data []byte) int64 {
	var lines int64 = 1
	for _, b := range data {
		if b == '\n' {
			lines++
		}
	}

	return lines
}
