package plan

import "regmap-generator/internal/model"

// EffectiveAccess returns the declared access of a register, inferring it
// from the field declarations when absent: a register whose fields are
// all explicitly read-only is read-only, all explicitly write-only is
// write-only, and any other mix is read-write. A register with no field
// list is read-write.
func EffectiveAccess(r *model.Register) model.Access {
	if r.Info.Access != model.AccessUnspecified {
		return r.Info.Access
	}

	fields := r.Info.Fields
	if fields == nil {
		return model.AccessReadWrite
	}

	if allAccess(fields, model.AccessReadOnly) {
		return model.AccessReadOnly
	}

	if allAccess(fields, model.AccessWriteOnly) {
		return model.AccessWriteOnly
	}

	return model.AccessReadWrite
}

func allAccess(fields []model.Field, a model.Access) bool {
	for i := range fields {
		if fields[i].Access != a {
			return false
		}
	}

	return true
}
