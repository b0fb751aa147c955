package extractor

import "github.com/tommygaessler/angular/internal/oracle"

// MemberKind is the classification outcome for one interface member.
type MemberKind int

const (
	KindExcluded MemberKind = iota
	KindProperty
	KindMethod
	KindGetter
	KindSetter
)

// classify decides a member's kind and inclusion. privateAccessors holds the
// accessor names carrying an explicit private modifier on either half of the
// pair; a private half excludes both halves. Priority: private wins over
// every other modifier, then accessor syntax, then callability.
func classify(o oracle.Oracle, member oracle.Node, privateAccessors map[string]bool) MemberKind {
	name := o.Name(member)
	if name == "" {
		// Call, construct, and index signatures cannot populate a
		// member name.
		return KindExcluded
	}

	if o.Modifiers(member).Private || privateAccessors[name] {
		return KindExcluded
	}

	switch o.AccessorKind(member) {
	case oracle.AccessorGetter:
		return KindGetter
	case oracle.AccessorSetter:
		return KindSetter
	}

	if o.HasParameters(member) {
		return KindMethod
	}
	return KindProperty
}

// privateAccessorNames collects the names of accessors declared private, so
// the matching half of each pair is excluded as well.
func privateAccessorNames(o oracle.Oracle, iface oracle.Node) map[string]bool {
	names := make(map[string]bool)
	for _, member := range o.Members(iface) {
		if o.AccessorKind(member) == oracle.AccessorNone {
			continue
		}
		if o.Modifiers(member).Private {
			names[o.Name(member)] = true
		}
	}
	return names
}
