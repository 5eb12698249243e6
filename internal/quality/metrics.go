//go:build cgo

package quality

import (
	sitter "github.com/smacker/go-tree-sitter"
)

// Python node types (tree-sitter-python grammar).
const (
	nodeFunctionDefinition = "function_definition"
	nodeBlock              = "block"
	nodeComment            = "comment"
	nodeIdentifier         = "identifier"
	nodeString             = "string"
	nodeConcatenatedString = "concatenated_string"
	nodeBooleanOperator    = "boolean_operator"
	nodeTryStatement       = "try_statement"
	nodeExceptGroupClause  = "except_group_clause"
	nodeForStatement       = "for_statement"
	nodeAssignment         = "assignment"
	nodeAugmentedAssign    = "augmented_assignment"
	nodeAsyncKeyword       = "async"
)

// decisionNodeTypes add one path each to cyclomatic complexity. elif_clause
// is listed because each elif is a separate conditional branch.
var decisionNodeTypes = map[string]bool{
	"if_statement":           true,
	"elif_clause":            true,
	"while_statement":        true,
	nodeForStatement:         true,
	"conditional_expression": true,
	"assert_statement":       true,
	nodeTryStatement:         true,
	"except_clause":          true,
	nodeExceptGroupClause:    true,
}

// isAsync reports whether a def or for node carries the async keyword.
// async def and async for are distinct constructs and are not scored as
// plain functions or loops.
func isAsync(node *sitter.Node) bool {
	first := node.Child(0)
	return first != nil && first.Type() == nodeAsyncKeyword
}

// isFunctionNode reports whether node is a (non-async) def.
func isFunctionNode(node *sitter.Node) bool {
	return node.Type() == nodeFunctionDefinition && !isAsync(node)
}

// wrapperNodeTypes have no node of their own in Python's ast: a block is the
// statement list of its parent, and a decorated definition is the def itself.
var wrapperNodeTypes = map[string]bool{
	nodeBlock:              true,
	"decorated_definition": true,
	"else_clause":          true,
	"finally_clause":       true,
}

// findFunctions returns every def in the tree, including methods and nested
// functions, in breadth-first order. Wrapper nodes are replaced by their
// children so that statements sit at the same depth as in ast.walk.
func findFunctions(root *sitter.Node) []*sitter.Node {
	var result []*sitter.Node
	queue := []*sitter.Node{root}
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		if isFunctionNode(node) {
			result = append(result, node)
		}
		queue = appendUnwrapped(queue, node)
	}
	return result
}

func appendUnwrapped(queue []*sitter.Node, node *sitter.Node) []*sitter.Node {
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		switch {
		case child == nil:
		case wrapperNodeTypes[child.Type()]:
			queue = appendUnwrapped(queue, child)
		default:
			queue = append(queue, child)
		}
	}
	return queue
}

// walkBreadthFirst visits root and all of its descendants level by level.
func walkBreadthFirst(root *sitter.Node, visit func(*sitter.Node)) {
	queue := []*sitter.Node{root}
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		visit(node)
		for i := 0; i < int(node.ChildCount()); i++ {
			if child := node.Child(i); child != nil {
				queue = append(queue, child)
			}
		}
	}
}

// functionName extracts the function name from a def node.
func functionName(node *sitter.Node, source []byte) string {
	if nameNode := node.ChildByFieldName("name"); nameNode != nil {
		return nameNode.Content(source)
	}
	return "<unknown>"
}

// bodyStatements returns the statements of a def body, skipping comments.
func bodyStatements(node *sitter.Node) []*sitter.Node {
	body := node.ChildByFieldName("body")
	if body == nil {
		return nil
	}
	return statements(body)
}

// statements returns the named children of a block that are not comments.
func statements(block *sitter.Node) []*sitter.Node {
	stmts := make([]*sitter.Node, 0, block.NamedChildCount())
	for i := 0; i < int(block.NamedChildCount()); i++ {
		child := block.NamedChild(i)
		if child == nil || child.Type() == nodeComment {
			continue
		}
		stmts = append(stmts, child)
	}
	return stmts
}

// computeCyclomaticComplexity returns 1 plus one per decision point.
// Decisions inside nested functions count toward the enclosing function too.
func computeCyclomaticComplexity(node *sitter.Node) int {
	complexity := 1

	walkBreadthFirst(node, func(n *sitter.Node) {
		switch t := n.Type(); {
		case t == nodeBooleanOperator:
			// tree-sitter nests "a and b and c" as two binary nodes, so one per
			// node adds up to k-1 for a chain of k operands.
			complexity++
		case t == nodeForStatement && isAsync(n):
		case t == nodeTryStatement && hasChildOfType(n, nodeExceptGroupClause):
			// try/except* is its own construct; only its handlers count.
		case decisionNodeTypes[t]:
			complexity++
		}
	})

	return complexity
}

// computeMethodLength returns the number of lines from the def line to the
// last line on which any node of the final body statement starts.
// Statements before the last one are not inspected, so a long earlier
// statement followed by a short final one is under-counted.
func computeMethodLength(node *sitter.Node) int {
	stmts := bodyStatements(node)
	if len(stmts) == 0 {
		return 0
	}

	startLine := int(node.StartPoint().Row) + 1
	endLine := startLine
	if last := maxStartLine(stmts[len(stmts)-1]); last > endLine {
		endLine = last
	}

	return endLine - startLine + 1
}

// maxStartLine returns the greatest 1-based start line among node and its
// named descendants. Comments are skipped, anonymous tokens such as a closing
// bracket are skipped, and string literals are leaves, so only the lines on
// which syntactic elements begin are considered.
func maxStartLine(node *sitter.Node) int {
	maxLine := int(node.StartPoint().Row) + 1
	if node.Type() == nodeString || node.Type() == nodeConcatenatedString {
		return maxLine
	}
	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)
		if child == nil || child.Type() == nodeComment {
			continue
		}
		if line := maxStartLine(child); line > maxLine {
			maxLine = line
		}
	}
	return maxLine
}

// computeWorkingMemory returns the number of distinct variable names a reader
// has to track: plain assignment targets, augmented assignment targets and
// simple for-loop variables anywhere in the subtree (nested functions
// included), plus the function's own parameter names.
func computeWorkingMemory(node *sitter.Node, source []byte) int {
	variables := make(map[string]struct{})
	addIdentifier := func(target *sitter.Node) {
		if target != nil && target.Type() == nodeIdentifier {
			variables[target.Content(source)] = struct{}{}
		}
	}

	walkBreadthFirst(node, func(n *sitter.Node) {
		switch n.Type() {
		case nodeAssignment:
			// Annotated assignments (x: int = 1) are declarations, not plain assignments.
			if n.ChildByFieldName("type") == nil {
				addIdentifier(n.ChildByFieldName("left"))
			}
		case nodeAugmentedAssign:
			addIdentifier(n.ChildByFieldName("left"))
		case nodeForStatement:
			if !isAsync(n) {
				addIdentifier(n.ChildByFieldName("left"))
			}
		}
	})

	for _, name := range parameterNames(node, source) {
		variables[name] = struct{}{}
	}

	return len(variables)
}

// parameterNames returns every parameter name declared by a def, including
// *args, **kwargs, keyword-only and positional-only parameters.
func parameterNames(node *sitter.Node, source []byte) []string {
	params := node.ChildByFieldName("parameters")
	if params == nil {
		return nil
	}

	var names []string
	for i := 0; i < int(params.NamedChildCount()); i++ {
		if name := parameterName(params.NamedChild(i), source); name != "" {
			names = append(names, name)
		}
	}
	return names
}

func parameterName(param *sitter.Node, source []byte) string {
	if param == nil {
		return ""
	}
	switch param.Type() {
	case nodeIdentifier:
		return param.Content(source)
	case "default_parameter", "typed_default_parameter":
		if name := param.ChildByFieldName("name"); name != nil && name.Type() == nodeIdentifier {
			return name.Content(source)
		}
	case "typed_parameter", "list_splat_pattern", "dictionary_splat_pattern":
		// The name is the first named child: an identifier or, for typed
		// *args/**kwargs, a nested splat pattern.
		if inner := param.NamedChild(0); inner != nil && inner != param {
			return parameterName(inner, source)
		}
	}
	return ""
}

func hasChildOfType(node *sitter.Node, nodeType string) bool {
	for i := 0; i < int(node.NamedChildCount()); i++ {
		if child := node.NamedChild(i); child != nil && child.Type() == nodeType {
			return true
		}
	}
	return false
}
