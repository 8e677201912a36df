package codebase

import (
	"context"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/dhamidi/rfparse/project"
	"github.com/dhamidi/rfparse/robot"
	"github.com/spf13/afero"
	"github.com/tliron/commonlog"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	_ "github.com/tliron/commonlog/simple"
)

const lsName = "rfparse"

type LSPServer struct {
	codebase *Codebase
	watcher  *FileWatcher
	handler  protocol.Handler
	server   *server.Server
	version  string
	fs       afero.Fs
	log      commonlog.Logger
}

func NewLSPServer(version string) *LSPServer {
	ls := &LSPServer{
		version: version,
		fs:      afero.NewOsFs(),
		log:     commonlog.GetLogger("rfparse.lsp"),
	}

	ls.handler = protocol.Handler{
		Initialize:                     ls.initialize,
		Initialized:                    ls.initialized,
		Shutdown:                       ls.shutdown,
		SetTrace:                       ls.setTrace,
		TextDocumentDidOpen:            ls.textDocumentDidOpen,
		TextDocumentDidChange:          ls.textDocumentDidChange,
		TextDocumentDidClose:           ls.textDocumentDidClose,
		TextDocumentDidSave:            ls.textDocumentDidSave,
		TextDocumentHover:              ls.textDocumentHover,
		TextDocumentDocumentSymbol:     ls.textDocumentDocumentSymbol,
		TextDocumentSemanticTokensFull: ls.textDocumentSemanticTokensFull,
	}

	ls.server = server.NewServer(&ls.handler, lsName, false)

	return ls
}

func (ls *LSPServer) RunStdio() error {
	return ls.server.RunStdio()
}

func (ls *LSPServer) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	rootDir := "."
	if params.RootPath != nil && *params.RootPath != "" {
		rootDir = *params.RootPath
	} else if params.RootURI != nil && *params.RootURI != "" {
		if path, err := uriToPath(*params.RootURI); err == nil {
			rootDir = path
		}
	}

	proj, err := project.LoadFrom(ls.fs, rootDir)
	if err != nil {
		ls.log.Warningf("load project: %s; using defaults", err)
		proj = &project.Project{RootDir: rootDir, Config: project.DefaultConfig()}
	}
	ls.codebase = FromProject(proj, WithFs(ls.fs))

	capabilities := ls.handler.CreateServerCapabilities()

	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    intPtr(int(protocol.TextDocumentSyncKindFull)),
		Save: &protocol.SaveOptions{
			IncludeText: boolPtr(true),
		},
	}
	capabilities.SemanticTokensProvider = &protocol.SemanticTokensOptions{
		Legend: protocol.SemanticTokensLegend{
			TokenTypes:     SemanticTokenTypes,
			TokenModifiers: SemanticTokenModifiers,
		},
		Full: true,
	}

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    lsName,
			Version: &ls.version,
		},
	}, nil
}

func (ls *LSPServer) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	if err := ls.codebase.ScanAll(context.Background()); err != nil {
		ls.log.Warningf("scan %s: %s", ls.codebase.RootDir(), err)
	}
	ls.watcher = NewFileWatcher(ls.codebase)
	ls.watcher.Start()
	return nil
}

func (ls *LSPServer) shutdown(ctx *glsp.Context) error {
	if ls.watcher != nil {
		ls.watcher.Stop()
	}
	return nil
}

func (ls *LSPServer) setTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (ls *LSPServer) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil
	}
	info := ls.codebase.UpdateFile(path, []byte(params.TextDocument.Text))
	ls.publishDiagnostics(ctx, params.TextDocument.URI, info.File)
	return nil
}

func (ls *LSPServer) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil
	}
	if len(params.ContentChanges) > 0 {
		change := params.ContentChanges[len(params.ContentChanges)-1]
		if textChange, ok := change.(protocol.TextDocumentContentChangeEventWhole); ok {
			info := ls.codebase.UpdateFile(path, []byte(textChange.Text))
			ls.publishDiagnostics(ctx, params.TextDocument.URI, info.File)
		}
	}
	return nil
}

// textDocumentDidClose drops unsaved edits by rereading the file from disk.
func (ls *LSPServer) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil
	}
	if err := ls.codebase.ScanFile(path); err != nil {
		ls.codebase.RemoveFile(path)
	}
	return nil
}

func (ls *LSPServer) textDocumentDidSave(ctx *glsp.Context, params *protocol.DidSaveTextDocumentParams) error {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil
	}
	if params.Text != nil {
		ls.codebase.UpdateFile(path, []byte(*params.Text))
	} else if err := ls.codebase.ScanFile(path); err != nil {
		ls.log.Warningf("%s", err)
	}
	if info := ls.codebase.GetFile(path); info != nil {
		ls.publishDiagnostics(ctx, params.TextDocument.URI, info.File)
	}
	return nil
}

func (ls *LSPServer) textDocumentHover(ctx *glsp.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	info, tok := ls.tokenAt(params.TextDocument.URI, params.Position)
	if tok == nil {
		return nil, nil
	}
	r := tokenRange(info.File, tok)
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.MarkupKindMarkdown,
			Value: HoverText(ls.codebase, tok),
		},
		Range: &r,
	}, nil
}

func (ls *LSPServer) textDocumentDocumentSymbol(ctx *glsp.Context, params *protocol.DocumentSymbolParams) (any, error) {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil, nil
	}
	info := ls.codebase.GetFile(path)
	if info == nil {
		return nil, nil
	}
	return DocumentSymbols(info.File), nil
}

func (ls *LSPServer) textDocumentSemanticTokensFull(ctx *glsp.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil, nil
	}
	info := ls.codebase.GetFile(path)
	if info == nil {
		return nil, nil
	}
	return &protocol.SemanticTokens{Data: EncodeSemanticTokens(info.File)}, nil
}

func (ls *LSPServer) tokenAt(uri string, pos protocol.Position) (*FileInfo, *robot.Token) {
	path, err := uriToPath(uri)
	if err != nil {
		return nil, nil
	}
	info := ls.codebase.GetFile(path)
	if info == nil {
		return nil, nil
	}
	line := int(pos.Line) + 1
	l := info.File.Line(line)
	if l == nil {
		return nil, nil
	}
	return info, info.File.TokenAtPosition(line, ByteColumn(l.Text(), int(pos.Character)))
}

func (ls *LSPServer) publishDiagnostics(ctx *glsp.Context, uri string, f *robot.RobotFile) {
	diagnostics := []protocol.Diagnostic{}
	source := lsName
	for _, p := range Check(f) {
		severity := protocol.DiagnosticSeverityWarning
		if p.Severity == SeverityError {
			severity = protocol.DiagnosticSeverityError
		}
		diagnostics = append(diagnostics, protocol.Diagnostic{
			Range:    tokenRange(f, p.Token),
			Severity: &severity,
			Source:   &source,
			Message:  p.Message,
		})
	}
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

// HoverText describes a token: its tags, the rendered value of a declared
// variable and where a called user keyword is declared.
func HoverText(c *Codebase, tok *robot.Token) string {
	var b strings.Builder
	for i, t := range tok.Types {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "`%s`", t)
	}
	switch {
	case tok.Type().IsVariableDeclaration():
		if v := c.variableDeclaredBy(tok); v != nil {
			fmt.Fprintf(&b, "\n\n%s", v.Render())
		}
	case tok.Type().IsActionName():
		for _, loc := range c.FindKeyword(tok.Text) {
			fmt.Fprintf(&b, "\n\nkeyword %s declared in %s:%d", loc.Token.Text, filepath.Base(loc.Path), loc.Token.Pos.Line)
		}
	}
	return b.String()
}

func (c *Codebase) variableDeclaredBy(tok *robot.Token) *robot.Variable {
	for _, f := range c.Files() {
		for _, v := range f.File.Variables.Variables {
			if v.Declaration == tok {
				return v
			}
		}
	}
	return nil
}

func uriToPath(uri string) (string, error) {
	if strings.HasPrefix(uri, "file://") {
		parsed, err := url.Parse(uri)
		if err != nil {
			return "", err
		}
		return filepath.Clean(parsed.Path), nil
	}
	return uri, nil
}

func boolPtr(b bool) *bool {
	return &b
}

func intPtr(i int) *protocol.TextDocumentSyncKind {
	v := protocol.TextDocumentSyncKind(i)
	return &v
}
