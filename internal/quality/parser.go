//go:build cgo

package quality

import (
	"context"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"

	"gitai/internal/errors"
)

// Parser wraps tree-sitter with the Python grammar.
// A Parser is not safe for concurrent use.
type Parser struct {
	parser *sitter.Parser
}

// NewParser creates a new Python parser.
func NewParser() *Parser {
	p := sitter.NewParser()
	p.SetLanguage(python.GetLanguage())
	return &Parser{parser: p}
}

// Parse parses Python source and returns the module node.
// Source that tree-sitter can only recover with ERROR or MISSING nodes is
// reported as a ParseFailure, the same outcome as a SyntaxError. So is
// source the grammar accepts but Python 3 does not (see firstInvalidNode).
func (p *Parser) Parse(ctx context.Context, source []byte) (*sitter.Node, error) {
	tree, err := p.parser.ParseCtx(ctx, nil, source)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}

	root := tree.RootNode()
	var bad *sitter.Node
	if root.HasError() {
		bad = firstErrorNode(root)
		if bad == nil {
			bad = root
		}
	} else {
		bad = firstInvalidNode(root)
	}
	if bad != nil {
		return nil, errors.New(errors.ParseFailure, "invalid Python syntax", nil, nil).
			WithDetails(map[string]interface{}{"line": int(bad.StartPoint().Row) + 1})
	}

	return root, nil
}

// legacyStatementTypes are Python 2 statements the grammar still parses.
var legacyStatementTypes = map[string]bool{
	"print_statement": true,
	"exec_statement":  true,
}

// firstInvalidNode returns the first node of an error-free tree that Python 3
// rejects: a legacy print or exec statement, or a block without statements,
// which is how an unindented def body parses.
func firstInvalidNode(node *sitter.Node) *sitter.Node {
	switch t := node.Type(); {
	case legacyStatementTypes[t] && !isCallForm(node):
		return node
	case t == nodeBlock && len(statements(node)) == 0:
		return node
	}
	for i := 0; i < int(node.NamedChildCount()); i++ {
		if child := node.NamedChild(i); child != nil {
			if bad := firstInvalidNode(child); bad != nil {
				return bad
			}
		}
	}
	return nil
}

// isCallForm reports whether a print or exec statement has a single
// parenthesized argument, as in print("x"), which is also a Python 3 call.
func isCallForm(node *sitter.Node) bool {
	if node.NamedChildCount() != 1 {
		return false
	}
	switch node.NamedChild(0).Type() {
	case "parenthesized_expression", "tuple":
		return true
	}
	return false
}

// firstErrorNode returns the first ERROR or MISSING node in document order.
func firstErrorNode(node *sitter.Node) *sitter.Node {
	if node.Type() == "ERROR" || node.IsMissing() {
		return node
	}
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		if child == nil || !child.HasError() && !child.IsMissing() {
			continue
		}
		if bad := firstErrorNode(child); bad != nil {
			return bad
		}
	}
	return nil
}
