package extractor

import (
	"github.com/tommygaessler/angular/internal/entities"
	"github.com/tommygaessler/angular/internal/oracle"
)

// memberTags derives the ordered modifier-tag list for one member. The order
// is canonical (Protected, Static, Readonly, Optional) regardless of how
// the modifiers were written in source, and each tag appears at most once.
func memberTags(o oracle.Oracle, member oracle.Node) []entities.MemberTag {
	mods := o.Modifiers(member)

	tags := []entities.MemberTag{}
	if mods.Protected {
		tags = append(tags, entities.TagProtected)
	}
	if mods.Static {
		tags = append(tags, entities.TagStatic)
	}
	if mods.Readonly {
		tags = append(tags, entities.TagReadonly)
	}
	if o.IsOptional(member) {
		tags = append(tags, entities.TagOptional)
	}
	return tags
}
