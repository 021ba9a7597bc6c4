package validator

import (
	"github.com/tiglabs/sai-core/pkg/sai/codec"
	"github.com/tiglabs/sai-core/pkg/sai/types"
)

// PreRemove runs §4.4.3: the object must exist, and for OID objects
// its reference count must be zero.
func (v *Validator) PreRemove(mk types.MetaKey) *Error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if !v.DB.Exists(mk) {
		return newErr(types.StatusItemNotFound, "remove %s: not found", mk.ObjectType)
	}
	if !types.IsNonObjectID(mk.ObjectType) {
		if types.ObjectTypeOf(mk.OID) != mk.ObjectType {
			return newErr(types.StatusInvalidParameter, "remove %s: oid %s does not encode this object type", mk.ObjectType, mk.OID)
		}
		if c := v.DB.RefCount(mk.OID); c != 0 {
			return newErr(types.StatusInvalidParameter, "remove %s: %s is still referenced (count %d)", mk.ObjectType, mk.OID, c)
		}
	}
	return nil
}

// PostRemove runs §4.4.4: ref-dec every outgoing reference the removed
// object held, erase it from the hash and the key index.
func (v *Validator) PostRemove(mk types.MetaKey) *Error {
	v.mu.Lock()
	defer v.mu.Unlock()

	om, ok := v.Meta.Object(mk.ObjectType)
	if !ok {
		fatalf("post_remove: no registry entry for known object type %s", mk.ObjectType)
	}

	attrs, ok := v.DB.GetAttrs(mk)
	if !ok {
		fatalf("post_remove: %s vanished between pre_remove and post_remove", mk.ObjectType)
	}
	for id, val := range attrs {
		m, ok := om.Attr(id)
		if !ok {
			fatalf("post_remove: no registry entry for known attribute %s on %s", id, mk.ObjectType)
		}
		v.DB.RefDecList(outgoingRefs(m, val))
	}

	if om.IsNonObjectID {
		nk := mk.NOIKey()
		for _, sm := range om.StructMembers {
			val, ok := nk.Member(sm.Name)
			if !ok {
				continue
			}
			if oidv, isOID := val.(types.OIDValue); isOID {
				v.DB.RefDec(types.OID(oidv))
			}
		}
	} else {
		if err := v.DB.RefRemove(mk.OID); err != nil {
			fatalf("post_remove: %v", err)
		}
	}

	if keys := keyAttrs(om); len(keys) > 0 {
		if composite, err := codec.SerializeCompositeKey(keys, attrs); err == nil {
			v.DB.KeyRemove(mk, composite)
		}
	}

	if err := v.DB.Remove(mk); err != nil {
		fatalf("post_remove: %v", err)
	}
	return nil
}
