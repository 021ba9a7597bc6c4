package validator

import (
	"github.com/tiglabs/sai-core/pkg/sai/metadata"
	"github.com/tiglabs/sai-core/pkg/sai/types"
)

// effectiveValue returns the value create would see for id: the value
// passed in this call, else the attribute's CONST default, else
// absent. Conditions and the buffer-profile exception both evaluate
// against this effective value, never the raw passed map (§4.4.1).
func effectiveValue(om *metadata.ObjectMeta, attrs AttrList, id metadata.AttrID) (types.Value, bool) {
	if val, ok := attrs[id]; ok {
		return val, true
	}
	m, ok := om.Attr(id)
	if !ok || m.DefaultKind != metadata.DefaultConst || m.Default == nil {
		return nil, false
	}
	return m.Default, true
}

// conditionMatches reports whether any of m's declared conditions is
// satisfied by the effective values in attrs (OR semantics).
func conditionMatches(om *metadata.ObjectMeta, m *metadata.AttrMeta, attrs AttrList) bool {
	for _, c := range m.Conditions {
		val, ok := effectiveValue(om, attrs, c.AttrID)
		if !ok {
			continue
		}
		switch vv := val.(type) {
		case types.S32:
			if int32(vv) == c.Value {
				return true
			}
		case types.Bool:
			if bool(vv) == (c.Value != 0) {
				return true
			}
		case types.U32:
			if int32(vv) == c.Value {
				return true
			}
		}
	}
	return false
}

// checkBufferProfileThreshold implements the BUFFER_PROFILE exception
// named in §4.4.1: SHARED_DYNAMIC_TH/SHARED_STATIC_TH are mandatory
// only when POOL_ID is set and the pool's stored (or defaulted)
// THRESHOLD_MODE matches the attribute's own mode.
func (v *Validator) checkBufferProfileThreshold(attrs AttrList, m *metadata.AttrMeta) *Error {
	poolVal, ok := attrs[metadata.BufferProfileAttrPoolID]
	if !ok {
		return nil
	}
	poolOID, ok := poolVal.(types.OIDValue)
	if !ok || types.OID(poolOID).IsNull() {
		return nil
	}

	mode := int32(metadata.ThresholdModeDynamic)
	poolMK := types.MetaKeyForOID(types.ObjectTypeBufferPool, types.OID(poolOID))
	if stored, ok := v.DB.GetPrev(poolMK, metadata.BufferPoolAttrThresholdMode); ok {
		if s, ok := stored.(types.S32); ok {
			mode = int32(s)
		}
	} else if pm, ok := v.Meta.Attr(types.ObjectTypeBufferPool, metadata.BufferPoolAttrThresholdMode); ok &&
		pm.DefaultKind == metadata.DefaultConst {
		if s, ok := pm.Default.(types.S32); ok {
			mode = int32(s)
		}
	}

	wantsDynamic := m.ID == metadata.BufferProfileAttrSharedDynamic
	modeMatches := (mode == int32(metadata.ThresholdModeDynamic)) == wantsDynamic
	_, present := attrs[m.ID]

	switch {
	case modeMatches && !present:
		return newErr(types.StatusMandatoryAttributeMissing, "%s: mandatory for the pool's threshold mode", m.ID)
	case !modeMatches && present:
		return newErr(types.StatusMandatoryAttributeMissing, "%s: not applicable to the pool's threshold mode", m.ID)
	default:
		return nil
	}
}
