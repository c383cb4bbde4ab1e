// SPDX-License-Identifier: Apache-2.0
package main

import (
	"log"
	"os"

	"github.com/tliron/commonlog"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"
	"koi/internal/lsp"
)

const lsName = "koi" // Name identifier for the language server

var (
	version = "0.0.1"        // Server version
	handler protocol.Handler // Protocol handler instance (wired up below)
)

func main() {
	// Configure debug logging (1 = debug level, nil = default logger)
	commonlog.Configure(1, nil)

	koiHandler := lsp.NewKoiHandler()

	// Wire up the handler with specific LSP method implementations
	handler = protocol.Handler{
		Initialize:                     koiHandler.Initialize,
		Initialized:                    koiHandler.Initialized,
		Shutdown:                       koiHandler.Shutdown,
		SetTrace:                       koiHandler.SetTrace,
		TextDocumentDidOpen:            koiHandler.TextDocumentDidOpen,
		TextDocumentDidClose:           koiHandler.TextDocumentDidClose,
		TextDocumentDidChange:          koiHandler.TextDocumentDidChange,
		TextDocumentCompletion:         koiHandler.TextDocumentCompletion,
		TextDocumentSemanticTokensFull: koiHandler.TextDocumentSemanticTokensFull,
	}

	s := server.NewServer(&handler, lsName, false)

	log.Println("Starting koi LSP server", version)

	// Serve over standard input/output (used by most editors for LSP)
	err := s.RunStdio()
	if err != nil {
		log.Println("Error starting koi LSP server:", err)
		os.Exit(1)
	}
}
