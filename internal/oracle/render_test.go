package oracle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for canonical type rendering:
// - Stable output regardless of source whitespace
// - Arrays, generics, parenthesized types rendered structurally
// - Union arms flattened and deduplicated, order preserved
// - Return types rendered for signatures, declared types otherwise
// - Missing annotations fall back to the inferred defaults (any/void)
// - Optional widening appends an undefined arm exactly once

// propertyType parses an interface with a single property and renders its
// declared type.
func propertyType(t *testing.T, typeText string) string {
	t.Helper()
	src := parseSource(t, "interface T { value: "+typeText+"; }")
	members := src.Members(src.Interfaces()[0])
	require.Len(t, members, 1)
	return src.RenderType(members[0])
}

func TestRenderType_Canonicalization(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		typeText string
		want     string
	}{
		{"predefined", "string", "string"},
		{"array", "string[]", "string[]"},
		{"array with spaces", "string [ ]", "string[]"},
		{"generic", "Array<string>", "Array<string>"},
		{"generic with spaces", "Array< string >", "Array<string>"},
		{"generic multi-arg", "Map<string,number>", "Map<string, number>"},
		{"union", "string|number", "string | number"},
		{"union spaced", "string   |   number", "string | number"},
		{"union dedup", "string | number | string", "string | number"},
		{"nested union flattened", "string | (number)[] | boolean", "string | (number)[] | boolean"},
		{"union in generic stays nested", "Array<string | number>", "Array<string | number>"},
		{"intersection", "A&B", "A & B"},
		{"literal union", `"on" | "off"`, `"on" | "off"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, propertyType(t, tt.typeText))
		})
	}
}

func TestRenderType_EquivalentSpellingsAgree(t *testing.T) {
	t.Parallel()

	assert.Equal(t,
		propertyType(t, "Map< string , number >"),
		propertyType(t, "Map<string, number>"))
	assert.Equal(t,
		propertyType(t, "string|number"),
		propertyType(t, "string | number"))
}

func TestRenderType_SignatureReturnType(t *testing.T) {
	t.Parallel()

	src := parseSource(t, `
interface Api {
  fetch(url: string): Promise<string>;
  fire(event: string);
}
`)
	members := src.Members(src.Interfaces()[0])
	require.Len(t, members, 2)

	assert.Equal(t, "Promise<string>", src.RenderType(members[0]))
	// No return annotation renders as the inferred void
	assert.Equal(t, "void", src.RenderType(members[1]))
}

func TestRenderType_MissingPropertyAnnotation(t *testing.T) {
	t.Parallel()

	src := parseSource(t, `interface Loose { anything; }`)
	members := src.Members(src.Interfaces()[0])
	require.Len(t, members, 1)
	assert.Equal(t, "any", src.RenderType(members[0]))
}

func TestRenderOptionalType_AppendsUndefined(t *testing.T) {
	t.Parallel()

	src := parseSource(t, `
interface Opt {
  a(x?: string): void;
  b(x?: string | undefined): void;
  c(x?: string | number): void;
}
`)
	members := src.Members(src.Interfaces()[0])
	require.Len(t, members, 3)

	paramOf := func(m Node) Node {
		params := src.Parameters(m)
		require.Len(t, params, 1)
		return params[0]
	}

	assert.Equal(t, "string | undefined", src.RenderOptionalType(paramOf(members[0])))
	// Already-widened unions are not widened twice
	assert.Equal(t, "string | undefined", src.RenderOptionalType(paramOf(members[1])))
	assert.Equal(t, "string | number | undefined", src.RenderOptionalType(paramOf(members[2])))
}

func TestRenderType_Deterministic(t *testing.T) {
	t.Parallel()

	src := parseSource(t, `interface T { value: Map<string, Array<number | boolean>>; }`)
	member := src.Members(src.Interfaces()[0])[0]

	first := src.RenderType(member)
	second := src.RenderType(member)
	assert.Equal(t, first, second)
	assert.Equal(t, "Map<string, Array<number | boolean>>", first)
}
