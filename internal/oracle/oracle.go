package oracle

import sitter "github.com/tree-sitter/go-tree-sitter"

// AccessorKind distinguishes get/set accessor syntax from plain members.
type AccessorKind int

const (
	AccessorNone AccessorKind = iota
	AccessorGetter
	AccessorSetter
)

// ModifierSet holds the explicit modifier keywords written on a member
// declaration.
type ModifierSet struct {
	Private   bool
	Protected bool
	Static    bool
	Readonly  bool
}

// Node is an opaque handle to a syntax node. Nodes are owned by the Source
// that produced them and are only valid until that Source is closed.
type Node struct {
	inner *sitter.Node
}

// IsZero reports whether the handle points at no node.
func (n Node) IsZero() bool {
	return n.inner == nil
}

// Oracle is the read-only AST and type-information facility the extraction
// core consumes. All operations are pure lookups over an immutable snapshot
// of one parsed source file; none of them mutate state, so an Oracle may be
// shared across goroutines freely.
type Oracle interface {
	// Interfaces returns every interface declaration in the file, in
	// source order.
	Interfaces() []Node

	// Name returns the declared name of an interface, member, or
	// parameter node. Unnamed nodes (call, construct, and index
	// signatures) yield "".
	Name(n Node) string

	// Members returns the member declarations of an interface in source
	// declaration order, including unnamed signature members.
	Members(iface Node) []Node

	// Modifiers returns the explicit modifier keywords on a member.
	Modifiers(member Node) ModifierSet

	// IsOptional reports whether a member or parameter carries the
	// trailing optional marker.
	IsOptional(n Node) bool

	// AccessorKind reports get/set accessor syntax on a member.
	AccessorKind(member Node) AccessorKind

	// HasParameters reports whether a member declares a parameter list,
	// i.e. is callable.
	HasParameters(member Node) bool

	// Parameters returns the ordered parameter nodes of a signature.
	Parameters(sig Node) []Node

	// IsRestParameter reports whether a parameter is declared with rest
	// syntax.
	IsRestParameter(param Node) bool

	// RenderType renders the resolved type of a node as a canonical
	// string: the declared type for properties and parameters, the
	// return type for signatures.
	RenderType(n Node) string

	// RenderOptionalType renders the declared type of an optional
	// non-rest parameter widened with an explicit "undefined" union arm.
	// Union arms are deduplicated set-style, so a type that already
	// includes undefined is not widened twice.
	RenderOptionalType(n Node) string
}
