package validator

import (
	"github.com/tiglabs/sai-core/pkg/sai/metadata"
	"github.com/tiglabs/sai-core/pkg/sai/types"
)

// PreGet runs §4.4.7: attrs must be 1..=0x1000 ids, all registered, and
// the object must exist.
func (v *Validator) PreGet(mk types.MetaKey, ids []metadata.AttrID) *Error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if len(ids) == 0 || len(ids) > types.MaxListCount {
		return newErr(types.StatusInvalidParameter, "get %s: attribute count %d out of range", mk.ObjectType, len(ids))
	}
	om, ok := v.Meta.Object(mk.ObjectType)
	if !ok {
		return newErr(types.StatusInvalidParameter, "get: unknown object type %s", mk.ObjectType)
	}
	for _, id := range ids {
		if _, ok := om.Attr(id); !ok {
			return newErr(types.StatusInvalidParameter, "get %s: unknown attribute %s", mk.ObjectType, id)
		}
	}
	if !v.DB.Exists(mk) {
		return newErr(types.StatusItemNotFound, "get %s: not found", mk.ObjectType)
	}
	if !types.IsNonObjectID(mk.ObjectType) && types.ObjectTypeOf(mk.OID) != mk.ObjectType {
		return newErr(types.StatusInvalidParameter, "get %s: oid %s does not encode this object type", mk.ObjectType, mk.OID)
	}
	return nil
}

// PostGet runs §4.4.8 over the attribute values the driver produced:
// validate and deduplicate outgoing OID references, snoop unknown OIDs
// into the DB, and check enum membership. results is mutated in place
// (deduplication of an OID *list*'s items happens here; scalar OID
// attributes have nothing to deduplicate).
func (v *Validator) PostGet(mk types.MetaKey, switchID types.OID, results AttrList) *Error {
	v.mu.Lock()
	defer v.mu.Unlock()

	om, ok := v.Meta.Object(mk.ObjectType)
	if !ok {
		fatalf("post_get: no registry entry for known object type %s", mk.ObjectType)
	}

	for id, val := range results {
		m, ok := om.Attr(id)
		if !ok {
			fatalf("post_get: no registry entry for known attribute %s on %s", id, mk.ObjectType)
		}
		switch vv := val.(type) {
		case types.OIDValue:
			if err := v.snoopOID(m, switchID, types.OID(vv)); err != nil {
				return err
			}
		case types.OIDList:
			if err := checkListCount(m, len(vv.Items)); err != nil {
				return err
			}
			deduped := make([]types.OID, 0, len(vv.Items))
			seen := make(map[types.OID]bool, len(vv.Items))
			for _, o := range vv.Items {
				if seen[o] {
					continue
				}
				seen[o] = true
				if err := v.snoopOID(m, switchID, o); err != nil {
					return err
				}
				deduped = append(deduped, o)
			}
			results[id] = types.OIDList{Items: deduped}
		case types.S32:
			if m.IsEnum && m.Enum != nil && !m.Enum.IsMember(int32(vv)) {
				return newErr(types.StatusInvalidParameter, "get %s: %s: %d is not a declared enum member", mk.ObjectType, id, int32(vv))
			}
		case types.S32List:
			if err := checkListCount(m, len(vv.Items)); err != nil {
				return err
			}
			if m.IsEnumList && m.Enum != nil {
				for _, x := range vv.Items {
					if !m.Enum.IsMember(x) {
						return newErr(types.StatusInvalidParameter, "get %s: %s: %d is not a declared enum member", mk.ObjectType, id, x)
					}
				}
			}
		}
	}
	return nil
}

// snoopOID implements the "driver-internal children enter the shadow
// DB through get" rule (§4.4.8): a referent type/switch check, then a
// ref-count+object-hash entry is created for any OID not already
// tracked.
func (v *Validator) snoopOID(m *metadata.AttrMeta, switchID types.OID, oid types.OID) *Error {
	if oid.IsNull() {
		return nil
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
			return newErr(types.StatusInvalidParameter, "get: %s: referent %s has disallowed object type %s", m.ID, oid, ot)
		}
	}
	if types.SwitchIndexOf(oid) != types.SwitchIndexOf(switchID) {
		return newErr(types.StatusInvalidParameter, "get: %s: referent %s belongs to a different switch", m.ID, oid)
	}
	if v.DB.RefExists(oid) {
		return nil
	}
	if err := v.DB.RefInsert(oid); err != nil {
		fatalf("post_get: %v", err)
	}
	mk := types.MetaKeyForOID(ot, oid)
	if !v.DB.Exists(mk) {
		if err := v.DB.Create(mk); err != nil {
			fatalf("post_get: %v", err)
		}
	}
	return nil
}

// RefreshReadOnly recalculates a single READ-ONLY attribute (§4.4.9)
// via the driver-supplied callback and stores the result back into the
// AttrHash before the caller transfers it out.
func (v *Validator) RefreshReadOnly(mk types.MetaKey, switchID types.OID, id metadata.AttrID) (types.Value, *Error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.Refresh == nil {
		return nil, newErr(types.StatusNotImplemented, "get %s: %s: no read-only refresher installed", mk.ObjectType, id)
	}
	val, err := v.Refresh.RefreshReadOnly(mk, switchID, id)
	if err != nil {
		return nil, newErr(types.StatusNotImplemented, "get %s: %s: %v", mk.ObjectType, id, err)
	}
	if err := v.DB.Set(mk, id, val); err != nil {
		fatalf("refresh_read_only: %v", err)
	}
	return val, nil
}
