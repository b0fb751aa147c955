package entities

// EntryType identifies the kind of top-level declaration a DocEntry describes.
// The string values are the wire contract the documentation renderer keys on.
type EntryType string

const (
	EntryTypeInterface EntryType = "Interface"
)

// MemberType classifies one interface member.
type MemberType string

const (
	MemberTypeProperty MemberType = "Property"
	MemberTypeMethod   MemberType = "Method"
	MemberTypeGetter   MemberType = "Getter"
	MemberTypeSetter   MemberType = "Setter"
)

// MemberTag is an orthogonal modifier flag on a member. Absence of a tag
// denotes the public, non-static, non-readonly, non-optional state; that
// default is never materialized as a tag of its own.
type MemberTag string

const (
	TagProtected MemberTag = "Protected"
	TagStatic    MemberTag = "Static"
	TagReadonly  MemberTag = "Readonly"
	TagOptional  MemberTag = "Optional"
)

// DocEntry is the extracted record for one declaration. EntryType is the
// discriminant; Interface is the only variant produced by this engine, and
// Members is populated for it. Entries are value records, never mutated
// after construction.
type DocEntry struct {
	Name      string        `json:"name"`
	EntryType EntryType     `json:"entryType"`
	Members   []MemberEntry `json:"members"`
}

// MemberEntry is the extracted record for one interface member. MemberType
// is the discriminant: Property carries Type; Method, Getter, and Setter
// carry ReturnType and Params (Params is empty for getters).
//
// MemberTags is ordered and duplicate-free, always in the canonical order
// Protected, Static, Readonly, Optional regardless of how the modifiers
// were written in source.
type MemberEntry struct {
	Name       string       `json:"name"`
	MemberType MemberType   `json:"memberType"`
	MemberTags []MemberTag  `json:"memberTags"`
	Type       string       `json:"type,omitempty"`
	ReturnType string       `json:"returnType,omitempty"`
	Params     []ParamEntry `json:"params,omitempty"`
}

// ParamEntry describes one parameter of a method or setter signature.
// For a rest parameter, Type holds the full array type, not the element
// type. For an optional non-rest parameter, Type carries an explicit
// "| undefined" union arm.
type ParamEntry struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	IsOptional  bool   `json:"isOptional"`
	IsRestParam bool   `json:"isRestParam"`
}
