package validator

import (
	"github.com/tiglabs/sai-core/pkg/sai/metadata"
	"github.com/tiglabs/sai-core/pkg/sai/types"
)

// checkAttrValue runs the per-attribute structural checks shared by
// pre_create and pre_set (§4.4.1/§4.4.5): type match, then a
// type-specific pass.
func (v *Validator) checkAttrValue(om *metadata.ObjectMeta, switchID types.OID, m *metadata.AttrMeta, val types.Value) *Error {
	if val.Type() != m.ValueType {
		return newErr(types.StatusInvalidParameter, "%s: value type %v does not match declared %v", m.ID, val.Type(), m.ValueType)
	}

	switch vv := val.(type) {
	case types.CharBuffer:
		if len(vv.Bytes) == 0 {
			return newErr(types.StatusInvalidParameter, "%s: char buffer must not be empty", m.ID)
		}
		if len(vv.Bytes) > 31 {
			return newErr(types.StatusInvalidParameter, "%s: char buffer longer than 31 bytes", m.ID)
		}

	case types.IPAddress:
		if vv.Family != types.AddrFamilyV4 && vv.Family != types.AddrFamilyV6 {
			return newErr(types.StatusInvalidParameter, "%s: invalid address family", m.ID)
		}

	case types.OIDValue:
		return v.checkOIDRef(m, switchID, types.OID(vv), allowNullFor(om, m))

	case types.OIDList:
		if err := checkListCount(m, len(vv.Items)); err != nil {
			return err
		}
		seen := make(map[types.OID]bool, len(vv.Items))
		for _, o := range vv.Items {
			if seen[o] {
				return newErr(types.StatusInvalidParameter, "%s: duplicate referent %s in list", m.ID, o)
			}
			seen[o] = true
			if err := v.checkOIDRef(m, switchID, o, allowNullFor(om, m)); err != nil {
				return err
			}
		}

	case types.S32:
		if m.IsEnum && m.Enum != nil && !m.Enum.IsMember(int32(vv)) {
			return newErr(types.StatusInvalidParameter, "%s: %d is not a declared enum member", m.ID, int32(vv))
		}

	case types.S32List:
		if err := checkListCount(m, len(vv.Items)); err != nil {
			return err
		}
		if m.IsEnumList && m.Enum != nil {
			for _, x := range vv.Items {
				if !m.Enum.IsMember(x) {
					return newErr(types.StatusInvalidParameter, "%s: %d is not a declared enum member", m.ID, x)
				}
			}
		}

	case types.U8List:
		if err := checkListCount(m, len(vv.Items)); err != nil {
			return err
		}
	case types.S8List:
		if err := checkListCount(m, len(vv.Items)); err != nil {
			return err
		}
	case types.U16List:
		if err := checkListCount(m, len(vv.Items)); err != nil {
			return err
		}
	case types.S16List:
		if err := checkListCount(m, len(vv.Items)); err != nil {
			return err
		}
	case types.U32List:
		if err := checkListCount(m, len(vv.Items)); err != nil {
			return err
		}
	case types.VlanList:
		if err := checkListCount(m, len(vv.Items)); err != nil {
			return err
		}

	case types.U32Range:
		if vv.Min > vv.Max {
			return newErr(types.StatusInvalidParameter, "%s: range min %d > max %d", m.ID, vv.Min, vv.Max)
		}
	case types.S32Range:
		if vv.Min > vv.Max {
			return newErr(types.StatusInvalidParameter, "%s: range min %d > max %d", m.ID, vv.Min, vv.Max)
		}

	case types.QosMapList:
		if err := checkListCount(m, len(vv.Items)); err != nil {
			return err
		}
	case types.TunnelMapList:
		if err := checkListCount(m, len(vv.Items)); err != nil {
			return err
		}

	case types.AclField:
		if vv.Enabled {
			if err := v.checkAclPrimitive(om, switchID, m, vv.Data); err != nil {
				return err
			}
			if err := v.checkAclPrimitive(om, switchID, m, vv.Mask); err != nil {
				return err
			}
		}
	case types.AclAction:
		if vv.Enabled {
			if err := v.checkAclPrimitive(om, switchID, m, vv.Data); err != nil {
				return err
			}
		}
	}
	return nil
}

func allowNullFor(om *metadata.ObjectMeta, m *metadata.AttrMeta) bool {
	return m.AllowNullObjectID || metadata.IsSchedulerGroupProfileNullException(om.ObjectType, m.ID)
}

func checkListCount(m *metadata.AttrMeta, count int) *Error {
	if count > types.MaxListCount {
		return newErr(types.StatusInvalidParameter, "%s: list count %d exceeds max %d", m.ID, count, types.MaxListCount)
	}
	return nil
}

// checkOIDRef validates one outgoing OID reference: null only if
// permitted, referent type in the allowed set, referent present in the
// DB, and in the same switch as the owning object (§4.4.1).
func (v *Validator) checkOIDRef(m *metadata.AttrMeta, switchID types.OID, oid types.OID, allowNull bool) *Error {
	if oid.IsNull() {
		if allowNull {
			return nil
		}
		return newErr(types.StatusInvalidParameter, "%s: NULL object id not permitted", m.ID)
	}
	ot := types.ObjectTypeOf(oid)
	if len(m.AllowedObjectTypes) > 0 {
		ok := false
		for _, at := range m.AllowedObjectTypes {
			if at == ot {
				ok = true
				break
			}
		}
		if !ok {
			return newErr(types.StatusInvalidParameter, "%s: referent %s has disallowed object type %s", m.ID, oid, ot)
		}
	}
	if !v.DB.RefExists(oid) {
		return newErr(types.StatusInvalidParameter, "%s: referent %s not found", m.ID, oid)
	}
	if types.SwitchIndexOf(oid) != types.SwitchIndexOf(switchID) {
		return newErr(types.StatusInvalidParameter, "%s: referent %s belongs to a different switch", m.ID, oid)
	}
	return nil
}

// checkAclPrimitive validates an ACL field/action payload, which is
// only OID-shaped for ACL attributes whose AclPrimitiveType is OID;
// every other primitive shape needs no referential check here (the
// codec already bounds its representable range).
func (v *Validator) checkAclPrimitive(om *metadata.ObjectMeta, switchID types.OID, m *metadata.AttrMeta, payload types.Value) *Error {
	if m.AclPrimitiveType != types.ValueTypeOID {
		return nil
	}
	oidv, ok := payload.(types.OIDValue)
	if !ok {
		return newErr(types.StatusInvalidParameter, "%s: ACL payload is not an object id", m.ID)
	}
	return v.checkOIDRef(m, switchID, types.OID(oidv), false)
}

// outgoingRefs returns every OID this attribute value references,
// mirroring post_create/post_set's ref-inc/ref-dec pass (§4.4.2,
// §4.4.6). ACL OID payloads are only counted when enable=true.
func outgoingRefs(m *metadata.AttrMeta, val types.Value) []types.OID {
	switch vv := val.(type) {
	case types.OIDValue:
		return []types.OID{types.OID(vv)}
	case types.OIDList:
		return append([]types.OID(nil), vv.Items...)
	case types.AclField:
		if vv.Enabled && m.AclPrimitiveType == types.ValueTypeOID {
			if oidv, ok := vv.Data.(types.OIDValue); ok {
				return []types.OID{types.OID(oidv)}
			}
		}
	case types.AclAction:
		if vv.Enabled && m.AclPrimitiveType == types.ValueTypeOID {
			if oidv, ok := vv.Data.(types.OIDValue); ok {
				return []types.OID{types.OID(oidv)}
			}
		}
	}
	return nil
}
