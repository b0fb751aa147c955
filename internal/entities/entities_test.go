package entities

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The enum spellings and JSON field names are the wire contract the
// documentation renderer keys on; this pins them down.
func TestWireContract(t *testing.T) {
	t.Parallel()

	entry := DocEntry{
		Name:      "X",
		EntryType: EntryTypeInterface,
		Members: []MemberEntry{
			{
				Name:       "send",
				MemberType: MemberTypeMethod,
				MemberTags: []MemberTag{TagProtected, TagStatic, TagReadonly, TagOptional},
				ReturnType: "void",
				Params: []ParamEntry{
					{Name: "target", Type: "string | undefined", IsOptional: true},
				},
			},
		},
	}

	data, err := json.Marshal(entry)
	require.NoError(t, err)

	wire := string(data)
	assert.Contains(t, wire, `"entryType":"Interface"`)
	assert.Contains(t, wire, `"memberType":"Method"`)
	assert.Contains(t, wire, `"memberTags":["Protected","Static","Readonly","Optional"]`)
	assert.Contains(t, wire, `"returnType":"void"`)
	assert.Contains(t, wire, `"isOptional":true`)
	assert.Contains(t, wire, `"isRestParam":false`)
}

func TestEmptyMembersSerializeAsList(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(DocEntry{
		Name:      "Empty",
		EntryType: EntryTypeInterface,
		Members:   []MemberEntry{},
	})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"members":[]`)
}
