// SPDX-License-Identifier: Apache-2.0
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"koi/internal/errors"
	"koi/internal/lexer"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: koi <file.koi>")
		os.Exit(1)
	}

	startTime := time.Now()
	path := os.Args[1]

	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read file: %v\n", err)
		os.Exit(1)
	}

	tokens, lexErrors := lexer.LexSource(string(source), lexer.DefaultConfig())

	reporter := errors.NewErrorReporter(path, string(source))
	for _, lexErr := range lexErrors {
		fmt.Print(reporter.FormatLexError(lexErr))
	}

	duration := time.Since(startTime)
	formattedDuration := formatDuration(duration)

	if len(lexErrors) == 0 {
		for _, tok := range tokens {
			fmt.Println(tok)
		}
		color.Green("Successfully lexed %s (%d tokens) in %s", path, len(tokens), formattedDuration)
	} else {
		color.Red("Lexing failed with %d error(s) after %s", len(lexErrors), formattedDuration)
		os.Exit(1)
	}
}

func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Minute:
		return fmt.Sprintf("%.2fmin", d.Minutes())
	case d >= time.Second:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d >= time.Millisecond:
		return fmt.Sprintf("%.1fms", float64(d.Nanoseconds())/1000000.0)
	case d >= time.Microsecond:
		return fmt.Sprintf("%.1fμs", float64(d.Nanoseconds())/1000.0)
	default:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	}
}
