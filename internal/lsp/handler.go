package lsp

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"koi/internal/lexer"
)

// KoiHandler implements the LSP server handlers for the koi language. All
// analysis is lexical: diagnostics come straight from the scanner and
// semantic tokens are derived from the token stream.
type KoiHandler struct {
	mu      sync.RWMutex
	config  lexer.Config
	content map[string]string
	tokens  map[string][]lexer.Token
}

// NewKoiHandler creates and returns a new KoiHandler instance
func NewKoiHandler() *KoiHandler {
	return &KoiHandler{
		config:  lexer.DefaultConfig(),
		content: make(map[string]string),
		tokens:  make(map[string][]lexer.Token),
	}
}

// Initialize responds to the LSP client's initialize request and advertises the server's capabilities
func (h *KoiHandler) Initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	log.Println("LSP Initialize called")

	return &protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			TextDocumentSync: &protocol.TextDocumentSyncOptions{
				OpenClose: ptrBool(true), // notify on open/close events
				Change:    ptrSyncKind(protocol.TextDocumentSyncKindFull),
			},
			CompletionProvider: &protocol.CompletionOptions{
				ResolveProvider: ptrBool(false),
			},
			SemanticTokensProvider: &protocol.SemanticTokensOptions{
				Legend: protocol.SemanticTokensLegend{
					TokenTypes:     SemanticTokenTypes,
					TokenModifiers: SemanticTokenModifiers,
				},
				Full: ptrBool(true), // support full-document semantic token requests
			},
		},
	}, nil
}

// Initialized is called after the client receives the server's capabilities and completes initialization
func (h *KoiHandler) Initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	log.Println("koi LSP Initialized")
	return nil
}

// Shutdown handles the LSP shutdown request
func (h *KoiHandler) Shutdown(ctx *glsp.Context) error {
	log.Println("koi LSP Shutdown")
	return nil
}

// SetTrace handles trace level changes requested by the client
func (h *KoiHandler) SetTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	return nil
}

// TextDocumentDidOpen handles file open notifications from the editor
func (h *KoiHandler) TextDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	log.Printf("Opened file: %s\n", params.TextDocument.URI)

	diagnostics, err := h.updateTokens(params.TextDocument.URI)
	if err != nil {
		return fmt.Errorf("failed to lex document: %w", err)
	}

	sendDiagnosticNotification(ctx, params.TextDocument.URI, diagnostics)
	return nil
}

// TextDocumentDidClose handles file close notifications from the editor
func (h *KoiHandler) TextDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	log.Printf("Closed file: %s\n", params.TextDocument.URI)

	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return fmt.Errorf("failed to convert URI %s: %w", params.TextDocument.URI, err)
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.content, path)
	delete(h.tokens, path)

	return nil
}

// TextDocumentDidChange handles file change notifications from the editor
func (h *KoiHandler) TextDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	log.Printf("Changed file: %s\n", params.TextDocument.URI)

	diagnostics, err := h.updateTokens(params.TextDocument.URI)
	if err != nil {
		return fmt.Errorf("failed to lex document: %w", err)
	}

	sendDiagnosticNotification(ctx, params.TextDocument.URI, diagnostics)
	return nil
}

// TextDocumentCompletion offers the keyword table as completion items
func (h *KoiHandler) TextDocumentCompletion(ctx *glsp.Context, params *protocol.CompletionParams) (interface{}, error) {
	kind := protocol.CompletionItemKindKeyword
	var items []protocol.CompletionItem
	for keyword := range h.config.Keywords {
		items = append(items, protocol.CompletionItem{
			Label: keyword,
			Kind:  &kind,
		})
	}
	return &protocol.CompletionList{
		IsIncomplete: false,
		Items:        items,
	}, nil
}

// TextDocumentSemanticTokensFull handles semantic token requests for the entire document
func (h *KoiHandler) TextDocumentSemanticTokensFull(ctx *glsp.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	log.Println("TextDocumentSemanticTokensFull called for:", params.TextDocument.URI)

	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil, fmt.Errorf("failed to convert URI %s: %w", params.TextDocument.URI, err)
	}

	stream, err := h.getOrUpdateTokens(ctx, path, params.TextDocument.URI)
	if err != nil {
		return nil, err
	}

	tokens := collectSemanticTokens(stream)

	var data []uint32
	var prevLine, prevStart uint32

	// Encode tokens into LSP wire format (delta-line, delta-start compression)
	for _, token := range tokens {
		deltaLine := token.Line - prevLine
		var deltaStart uint32
		if deltaLine == 0 {
			deltaStart = token.StartChar - prevStart
		} else {
			deltaStart = token.StartChar
		}

		data = append(data, deltaLine, deltaStart, token.Length, uint32(token.TokenType), uint32(token.TokenModifiers))

		prevLine = token.Line
		prevStart = token.StartChar
	}

	return &protocol.SemanticTokens{
		Data: data,
	}, nil
}

func (h *KoiHandler) getOrUpdateTokens(ctx *glsp.Context, path string, rawURI protocol.DocumentUri) ([]lexer.Token, error) {
	h.mu.RLock()
	stream, ok := h.tokens[path]
	h.mu.RUnlock()

	if !ok {
		diagnostics, err := h.updateTokens(rawURI)
		if err != nil {
			return nil, err
		}

		h.mu.RLock()
		stream = h.tokens[path]
		h.mu.RUnlock()

		sendDiagnosticNotification(ctx, rawURI, diagnostics)
	}

	return stream, nil
}

// updateTokens re-lexes the document behind a URI and returns diagnostics
// for every lexical error. The diagnostics list is empty, never nil, for a
// clean document so stale squiggles get cleared on the client.
func (h *KoiHandler) updateTokens(rawURI protocol.DocumentUri) ([]protocol.Diagnostic, error) {
	path, err := uriToPath(rawURI)
	if err != nil {
		return nil, fmt.Errorf("failed to convert URI %s: %w", rawURI, err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}

	tokens, lexErrors := lexer.LexSource(string(content), h.config)

	h.mu.Lock()
	h.content[path] = string(content)
	h.tokens[path] = tokens
	h.mu.Unlock()

	return ConvertLexErrors(lexErrors), nil
}

// Convert URI to platform-local file path
func uriToPath(rawURI string) (string, error) {
	u, err := url.Parse(rawURI)
	if err != nil {
		return "", fmt.Errorf("invalid URI %s: %w", rawURI, err)
	}

	path := u.Path

	// On Windows, remove leading slash (e.g., /C:/...) -> C:/...
	if runtime.GOOS == "windows" && strings.HasPrefix(path, "/") && len(path) > 3 && path[2] == ':' {
		path = path[1:]
	}

	// Normalize to platform-specific separators
	return filepath.FromSlash(path), nil
}

func sendDiagnosticNotification(ctx *glsp.Context, uri protocol.URI, diagnostics []protocol.Diagnostic) {
	if ctx == nil || ctx.Notify == nil {
		return
	}
	log.Printf("Sending %d diagnostics for %s\n", len(diagnostics), uri)

	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

func ptrBool(b bool) *bool {
	return &b
}

func ptrSyncKind(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}
