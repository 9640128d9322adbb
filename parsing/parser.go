// Package parsing turns Kotlin source files into the declaration nodes that
// the renderer understands
package parsing

import (
	"context"
	"errors"
	"fmt"

	"github.com/NickyBoy89/ktsurface/decl"
	"github.com/NickyBoy89/ktsurface/nodeutil"
	log "github.com/sirupsen/logrus"
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/kotlin"
)

// ErrSyntax is returned when a source file could not be parsed cleanly
var ErrSyntax = errors.New("syntax error")

// Parser parses a single source file, where `name` is only used to identify
// the file in the result and in errors
type Parser interface {
	Parse(ctx context.Context, source []byte, name string) (*decl.File, error)
}

// KotlinParser parses Kotlin sources with tree-sitter
type KotlinParser struct{}

func NewKotlinParser() *KotlinParser {
	return &KotlinParser{}
}

// Parse creates a fresh tree-sitter parser for every file, so that no state is
// shared between two files
func (KotlinParser) Parse(ctx context.Context, source []byte, name string) (*decl.File, error) {
	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(kotlin.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, source)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", name, err)
	}
	defer tree.Close()

	root := tree.RootNode()
	if bad := nodeutil.FirstError(root); bad != nil {
		pos := bad.StartPoint()
		log.WithFields(log.Fields{
			"file":   name,
			"parsed": bad.Content(source),
		}).Debug("Syntax error")
		return nil, fmt.Errorf("%s:%d:%d: %w", name, pos.Row+1, pos.Column+1, ErrSyntax)
	}

	return ExtractDeclarations(root, source, name), nil
}
