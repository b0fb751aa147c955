// Package extractor turns type-checked interface declarations into the
// normalized doc-entry records consumed by a downstream documentation
// renderer. The transform is total and stateless: every member accepted by
// the upstream checker is classifiable and renderable, and re-extracting
// unchanged input yields structurally identical entries.
package extractor

import (
	"github.com/tommygaessler/angular/internal/entities"
	"github.com/tommygaessler/angular/internal/oracle"
)

// ExtractInterface builds the doc entry for one interface declaration.
// Heritage clauses are ignored. Members appear in source declaration order
// among included members only; explicitly private members (including both
// halves of an accessor pair when either half is private) are dropped
// silently. An interface with no public members yields an empty member
// list, never an error.
func ExtractInterface(o oracle.Oracle, iface oracle.Node) entities.DocEntry {
	privateAccessors := privateAccessorNames(o, iface)

	members := []entities.MemberEntry{}
	for _, member := range o.Members(iface) {
		kind := classify(o, member, privateAccessors)
		if kind == KindExcluded {
			continue
		}
		members = append(members, buildMember(o, member, kind))
	}

	return entities.DocEntry{
		Name:      o.Name(iface),
		EntryType: entities.EntryTypeInterface,
		Members:   members,
	}
}

// buildMember assembles one member record for an already-classified member.
func buildMember(o oracle.Oracle, member oracle.Node, kind MemberKind) entities.MemberEntry {
	entry := entities.MemberEntry{
		Name:       o.Name(member),
		MemberTags: memberTags(o, member),
	}

	switch kind {
	case KindProperty:
		entry.MemberType = entities.MemberTypeProperty
		entry.Type = o.RenderType(member)
	case KindMethod:
		entry.MemberType = entities.MemberTypeMethod
		entry.ReturnType = o.RenderType(member)
		entry.Params = signatureParams(o, member)
	case KindGetter:
		entry.MemberType = entities.MemberTypeGetter
		entry.ReturnType = o.RenderType(member)
		entry.Params = []entities.ParamEntry{}
	case KindSetter:
		entry.MemberType = entities.MemberTypeSetter
		entry.ReturnType = o.RenderType(member)
		entry.Params = signatureParams(o, member)
	}
	return entry
}

// ExtractSource extracts a doc entry for every interface declaration in a
// parsed source file, in file order.
func ExtractSource(src *oracle.Source) []entities.DocEntry {
	entries := []entities.DocEntry{}
	for _, iface := range src.Interfaces() {
		entries = append(entries, ExtractInterface(src, iface))
	}
	return entries
}

// ExtractFile parses a TypeScript file and extracts its interface entries.
func ExtractFile(path string) ([]entities.DocEntry, error) {
	src, err := oracle.ParseFile(path)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	return ExtractSource(src), nil
}
