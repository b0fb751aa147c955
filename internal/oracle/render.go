package oracle

import (
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"
)

// RenderType renders the resolved type of a node as a canonical string. For
// properties and parameters this is the declared type; for signature members
// it is the return type. A missing annotation renders as the checker's
// inferred default: "any" for data, "void" for returns.
func (s *Source) RenderType(n Node) string {
	if n.IsZero() {
		return ""
	}

	typeNode, isReturn := s.typeNode(n.inner)
	if typeNode == nil {
		if isReturn {
			return "void"
		}
		return "any"
	}
	return s.renderTypeNode(typeNode)
}

// RenderOptionalType renders the declared type widened with an explicit
// "undefined" union arm. Arms are collected set-style, so a declared
// "string | undefined" stays a two-arm union.
func (s *Source) RenderOptionalType(n Node) string {
	if n.IsZero() {
		return ""
	}

	typeNode, _ := s.typeNode(n.inner)
	if typeNode == nil {
		// The inferred any already includes undefined.
		return "any"
	}

	var arms []string
	if typeNode.Kind() == "union_type" {
		arms = s.unionArms(typeNode, nil)
	} else {
		arms = []string{s.renderTypeNode(typeNode)}
	}

	for _, arm := range arms {
		if arm == "undefined" {
			return strings.Join(arms, " | ")
		}
	}
	return strings.Join(append(arms, "undefined"), " | ")
}

// typeNode resolves the type annotation relevant to a node: the return-type
// annotation for signatures, the declared-type annotation otherwise. The
// second result reports which of the two was looked up.
func (s *Source) typeNode(n *sitter.Node) (*sitter.Node, bool) {
	switch n.Kind() {
	case "method_signature", "call_signature", "construct_signature", "function_signature":
		return unwrapAnnotation(n.ChildByFieldName("return_type")), true
	}

	if t := unwrapAnnotation(n.ChildByFieldName("type")); t != nil {
		return t, false
	}

	// Some parameter shapes expose the annotation as a plain child rather
	// than a field.
	for i := uint(0); i < n.NamedChildCount(); i++ {
		child := n.NamedChild(i)
		if child.Kind() == "type_annotation" {
			return unwrapAnnotation(child), false
		}
	}
	return nil, false
}

// unwrapAnnotation strips the ": " wrapper of a type_annotation node.
func unwrapAnnotation(ann *sitter.Node) *sitter.Node {
	if ann == nil {
		return nil
	}
	if ann.Kind() == "type_annotation" && ann.NamedChildCount() > 0 {
		return ann.NamedChild(0)
	}
	return ann
}

// renderTypeNode renders a type node canonically: structural forms are
// rebuilt from their grammar shape, unions are flattened and deduplicated,
// and everything else is re-spaced token by token so equivalent spellings
// render identically.
func (s *Source) renderTypeNode(n *sitter.Node) string {
	switch n.Kind() {
	case "union_type":
		return strings.Join(s.unionArms(n, nil), " | ")

	case "intersection_type":
		var parts []string
		for i := uint(0); i < n.NamedChildCount(); i++ {
			parts = append(parts, s.renderTypeNode(n.NamedChild(i)))
		}
		return strings.Join(parts, " & ")

	case "array_type":
		if n.NamedChildCount() > 0 {
			return s.renderTypeNode(n.NamedChild(0)) + "[]"
		}
		return normalizeSpacing(s.text(n))

	case "generic_type":
		if n.NamedChildCount() >= 2 {
			name := s.text(n.NamedChild(0))
			args := n.NamedChild(1)
			var parts []string
			for i := uint(0); i < args.NamedChildCount(); i++ {
				parts = append(parts, s.renderTypeNode(args.NamedChild(i)))
			}
			return name + "<" + strings.Join(parts, ", ") + ">"
		}
		return normalizeSpacing(s.text(n))

	case "parenthesized_type":
		if n.NamedChildCount() > 0 {
			return "(" + s.renderTypeNode(n.NamedChild(0)) + ")"
		}
		return normalizeSpacing(s.text(n))

	default:
		return normalizeSpacing(s.text(n))
	}
}

// unionArms flattens nested union arms into a duplicate-free, order-preserving
// list of canonical renderings.
func (s *Source) unionArms(n *sitter.Node, arms []string) []string {
	for i := uint(0); i < n.NamedChildCount(); i++ {
		child := n.NamedChild(i)
		if child.Kind() == "union_type" {
			arms = s.unionArms(child, arms)
			continue
		}
		arm := s.renderTypeNode(child)
		if !containsString(arms, arm) {
			arms = append(arms, arm)
		}
	}
	return arms
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}

// spacingReplacer tightens token spacing for type text that is not rebuilt
// structurally. The "> " pair is deliberately absent: stripping it would
// mangle the "=>" arrow in function types.
var spacingReplacer = strings.NewReplacer(
	" <", "<",
	"< ", "<",
	" >", ">",
	" [", "[",
	"[ ", "[",
	" ]", "]",
	" ,", ",",
	" .", ".",
	". ", ".",
	"( ", "(",
	" )", ")",
	" ;", ";",
)

// normalizeSpacing collapses whitespace runs and tightens punctuation so two
// spellings of the same type text render identically.
func normalizeSpacing(text string) string {
	out := strings.Join(strings.Fields(text), " ")
	for {
		next := spacingReplacer.Replace(out)
		if next == out {
			return next
		}
		out = next
	}
}
