package oracle

import (
	"fmt"
	"os"
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"
	typescript "github.com/tree-sitter/tree-sitter-typescript/bindings/go"
)

// Source is an immutable parsed snapshot of one TypeScript file. It owns the
// underlying syntax tree; callers must Close it when the extraction pass is
// done. Source implements Oracle.
type Source struct {
	path string
	src  []byte
	tree *sitter.Tree
	root *sitter.Node
}

// ParseFile reads and parses a TypeScript source file.
func ParseFile(path string) (*Source, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return Parse(path, source)
}

// Parse parses TypeScript source held in memory. The path is used for error
// reporting only.
func Parse(path string, source []byte) (*Source, error) {
	parser := sitter.NewParser()
	defer parser.Close()

	parser.SetLanguage(sitter.NewLanguage(typescript.LanguageTypescript()))

	tree := parser.Parse(source, nil)
	if tree == nil {
		return nil, fmt.Errorf("failed to parse typescript file: %s", path)
	}

	return &Source{
		path: path,
		src:  source,
		tree: tree,
		root: tree.RootNode(),
	}, nil
}

// Path returns the path the source was parsed from.
func (s *Source) Path() string {
	return s.path
}

// Close releases the underlying syntax tree. Nodes obtained from this Source
// are invalid afterwards.
func (s *Source) Close() {
	if s.tree != nil {
		s.tree.Close()
		s.tree = nil
	}
}

// Interfaces returns every interface declaration in the file in source order,
// whether or not it is wrapped in an export statement.
func (s *Source) Interfaces() []Node {
	var out []Node
	walkTree(s.root, func(n *sitter.Node) bool {
		if n.Kind() == "interface_declaration" {
			out = append(out, Node{inner: n})
		}
		return true
	})
	return out
}

// Name returns the declared name of an interface, member, or parameter node.
func (s *Source) Name(n Node) string {
	if n.IsZero() {
		return ""
	}

	switch n.inner.Kind() {
	case "required_parameter", "optional_parameter", "rest_parameter":
		return s.parameterName(n.inner)
	case "index_signature":
		// The bracket binding is an index parameter, not a member name.
		return ""
	}

	nameNode := n.inner.ChildByFieldName("name")
	if nameNode == nil {
		return ""
	}
	// String-literal property names keep their quotes in the tree.
	return strings.Trim(s.text(nameNode), "\"'")
}

// parameterName unwraps the parameter pattern, stripping rest syntax.
func (s *Source) parameterName(param *sitter.Node) string {
	pattern := param.ChildByFieldName("pattern")
	if pattern == nil {
		pattern = param.ChildByFieldName("name")
	}
	if pattern == nil {
		return ""
	}
	if pattern.Kind() == "rest_pattern" && pattern.NamedChildCount() > 0 {
		return s.text(pattern.NamedChild(0))
	}
	return s.text(pattern)
}

// Members returns the member declarations of an interface body in source
// order. Unnamed signature members are included; classification downstream
// decides inclusion.
func (s *Source) Members(iface Node) []Node {
	if iface.IsZero() {
		return nil
	}

	body := iface.inner.ChildByFieldName("body")
	if body == nil {
		return nil
	}

	var members []Node
	for i := uint(0); i < body.NamedChildCount(); i++ {
		child := body.NamedChild(i)
		switch child.Kind() {
		case "property_signature", "method_signature",
			"call_signature", "construct_signature", "index_signature":
			members = append(members, Node{inner: child})
		}
	}
	return members
}

// Modifiers returns the explicit modifier keywords written on a member.
func (s *Source) Modifiers(member Node) ModifierSet {
	var set ModifierSet
	if member.IsZero() {
		return set
	}

	for i := uint(0); i < member.inner.ChildCount(); i++ {
		child := member.inner.Child(i)
		switch child.Kind() {
		case "accessibility_modifier":
			switch s.text(child) {
			case "private":
				set.Private = true
			case "protected":
				set.Protected = true
			}
		case "static":
			set.Static = true
		case "readonly":
			set.Readonly = true
		}
	}
	return set
}

// IsOptional reports the trailing optional marker on a member or parameter.
func (s *Source) IsOptional(n Node) bool {
	if n.IsZero() {
		return false
	}

	switch n.inner.Kind() {
	case "optional_parameter":
		return true
	case "required_parameter", "rest_parameter":
		return false
	}

	// Members carry the marker as a direct "?" token after the name; the
	// direct-child scan cannot see markers nested inside the type.
	for i := uint(0); i < n.inner.ChildCount(); i++ {
		if n.inner.Child(i).Kind() == "?" {
			return true
		}
	}
	return false
}

// AccessorKind reports get/set accessor syntax on a member.
func (s *Source) AccessorKind(member Node) AccessorKind {
	if member.IsZero() || member.inner.Kind() != "method_signature" {
		return AccessorNone
	}

	for i := uint(0); i < member.inner.ChildCount(); i++ {
		switch member.inner.Child(i).Kind() {
		case "get":
			return AccessorGetter
		case "set":
			return AccessorSetter
		}
	}
	return AccessorNone
}

// HasParameters reports whether a member declares a parameter list.
func (s *Source) HasParameters(member Node) bool {
	if member.IsZero() {
		return false
	}
	return member.inner.ChildByFieldName("parameters") != nil
}

// Parameters returns the ordered parameter nodes of a signature.
func (s *Source) Parameters(sig Node) []Node {
	if sig.IsZero() {
		return nil
	}

	params := sig.inner.ChildByFieldName("parameters")
	if params == nil {
		return nil
	}

	var out []Node
	for i := uint(0); i < params.NamedChildCount(); i++ {
		child := params.NamedChild(i)
		switch child.Kind() {
		case "required_parameter", "optional_parameter", "rest_parameter":
			out = append(out, Node{inner: child})
		}
	}
	return out
}

// IsRestParameter reports rest syntax on a parameter node.
func (s *Source) IsRestParameter(param Node) bool {
	if param.IsZero() {
		return false
	}
	if param.inner.Kind() == "rest_parameter" {
		return true
	}
	pattern := param.inner.ChildByFieldName("pattern")
	return pattern != nil && pattern.Kind() == "rest_pattern"
}

// text extracts the source text covered by a node.
func (s *Source) text(n *sitter.Node) string {
	if n == nil {
		return ""
	}
	return string(s.src[n.StartByte():n.EndByte()])
}

// walkTree recursively walks a syntax tree and calls the visitor for each
// node. Returning false from the visitor skips the node's children.
func walkTree(node *sitter.Node, visitor func(*sitter.Node) bool) {
	if node == nil {
		return
	}

	if !visitor(node) {
		return
	}

	for i := uint(0); i < node.ChildCount(); i++ {
		walkTree(node.Child(i), visitor)
	}
}
