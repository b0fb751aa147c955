package extractor

import (
	"github.com/tommygaessler/angular/internal/entities"
	"github.com/tommygaessler/angular/internal/oracle"
)

// signatureParams builds ordered parameter records for one method or setter
// signature. A rest parameter keeps the full declared (array) type and is
// never marked optional; an optional non-rest parameter gets its declared
// type widened with an explicit "undefined" union arm.
func signatureParams(o oracle.Oracle, sig oracle.Node) []entities.ParamEntry {
	params := o.Parameters(sig)

	out := make([]entities.ParamEntry, 0, len(params))
	for _, param := range params {
		rest := o.IsRestParameter(param)
		optional := !rest && o.IsOptional(param)

		var paramType string
		if optional {
			paramType = o.RenderOptionalType(param)
		} else {
			paramType = o.RenderType(param)
		}

		out = append(out, entities.ParamEntry{
			Name:        o.Name(param),
			Type:        paramType,
			IsOptional:  optional,
			IsRestParam: rest,
		})
	}
	return out
}
