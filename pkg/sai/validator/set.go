package validator

import (
	"github.com/tiglabs/sai-core/pkg/sai/metadata"
	"github.com/tiglabs/sai-core/pkg/sai/types"
)

// PreSet runs §4.4.5.
func (v *Validator) PreSet(mk types.MetaKey, switchID types.OID, id metadata.AttrID, val types.Value) *Error {
	v.mu.Lock()
	defer v.mu.Unlock()

	om, ok := v.Meta.Object(mk.ObjectType)
	if !ok {
		return newErr(types.StatusInvalidParameter, "set: unknown object type %s", mk.ObjectType)
	}
	m, ok := om.Attr(id)
	if !ok {
		return newErr(types.StatusInvalidParameter, "set %s: unknown attribute %s", mk.ObjectType, id)
	}
	if m.Flags.Has(metadata.FlagReadOnly) {
		return newErr(types.StatusInvalidParameter, "set %s: %s is read-only", mk.ObjectType, id)
	}
	if m.Flags.Has(metadata.FlagCreateOnly) {
		return newErr(types.StatusInvalidParameter, "set %s: %s is create-only", mk.ObjectType, id)
	}
	if m.Flags.Has(metadata.FlagKey) {
		return newErr(types.StatusInvalidParameter, "set %s: %s is a key attribute", mk.ObjectType, id)
	}
	if !v.DB.Exists(mk) {
		return newErr(types.StatusItemNotFound, "set %s: not found", mk.ObjectType)
	}
	if !types.IsNonObjectID(mk.ObjectType) && types.ObjectTypeOf(mk.OID) != mk.ObjectType {
		return newErr(types.StatusInvalidParameter, "set %s: oid %s does not encode this object type", mk.ObjectType, mk.OID)
	}
	return v.checkAttrValue(om, switchID, m, val)
}

// PostSet runs §4.4.6: ref-dec the previous OID-shaped value (if any),
// ref-inc the new one, then replace the stored attribute with a deep
// copy. Setting a value identical to the one already stored is a
// no-op for the ref-count table: the dec and inc on the same OID(s)
// cancel.
func (v *Validator) PostSet(mk types.MetaKey, id metadata.AttrID, val types.Value) *Error {
	v.mu.Lock()
	defer v.mu.Unlock()

	om, ok := v.Meta.Object(mk.ObjectType)
	if !ok {
		fatalf("post_set: no registry entry for known object type %s", mk.ObjectType)
	}
	m, ok := om.Attr(id)
	if !ok {
		fatalf("post_set: no registry entry for known attribute %s on %s", id, mk.ObjectType)
	}

	if prev, ok := v.DB.GetPrev(mk, id); ok {
		v.DB.RefDecList(outgoingRefs(m, prev))
	}
	v.DB.RefIncList(outgoingRefs(m, val))

	if err := v.DB.Set(mk, id, val); err != nil {
		fatalf("post_set: %v", err)
	}
	return nil
}
