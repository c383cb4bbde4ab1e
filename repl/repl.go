// Package repl SPDX-License-Identifier: Apache-2.0
package repl

import (
	"bufio"
	"fmt"
	"io"

	"github.com/fatih/color"
	"koi/internal/lexer"
)

const PROMPT = ">> "

// Start reads lines and prints the token stream for each one. Single lines
// have no block structure, so newline and indentation significance are
// switched off for the REPL.
func Start(in io.Reader) {
	config := lexer.DefaultConfig()
	config.NewlineSignificant = false
	config.IndentationSignificant = false

	scanner := bufio.NewScanner(in)

	for {
		fmt.Print(PROMPT)
		scanned := scanner.Scan()
		if !scanned {
			return
		}

		line := scanner.Text()
		tokens, lexErrors := lexer.LexSource(line, config)

		for _, lexErr := range lexErrors {
			color.Red("%s", lexErr.Error())
		}
		for _, tok := range tokens {
			if tok.Type == lexer.EOF {
				continue
			}
			fmt.Println(tok)
		}
	}
}
